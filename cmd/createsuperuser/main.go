// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command createsuperuser adds an account with unconditional admin rights.
// Database settings come from the environment or the CONFIG JSON file.
//
//	createsuperuser -username root -email root@example.com
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-yamdb/internal/config"
	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/internal/mailer"
	"github.com/MKhiriev/go-yamdb/internal/service"
	"github.com/MKhiriev/go-yamdb/internal/store"
)

func main() {
	fs := flag.NewFlagSet("createsuperuser", flag.ExitOnError)
	username := fs.String("username", "", "Username of the superuser")
	email := fs.String("email", "", "Email of the superuser")
	_ = fs.Parse(os.Args[1:])

	log := logger.NewLogger("createsuperuser")
	if err := run(context.Background(), *username, *email, log); err != nil {
		log.Fatal().Err(err).Msg("superuser was not created")
	}
}

func run(ctx context.Context, username, email string, log *logger.Logger) error {
	cfg, err := config.GetEnvConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	db, err := store.NewConnection(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	// no confirmation code is mailed for a superuser
	services, err := service.NewServices(store.NewStorages(db, log), mailer.NewLogMailer(log), cfg.App, nil, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	user, err := services.UserService.CreateSuperuser(log.WithContext(ctx), username, email)
	if err != nil {
		return err
	}

	fmt.Printf("Superuser %q created.\n", user.Username)
	return nil
}
