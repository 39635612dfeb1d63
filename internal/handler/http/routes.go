// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-yamdb/internal/policy"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const apiPrefix = "/api/v1"

// Init builds the chi router with the common middleware chain and every
// /api/v1 route. HEAD is answered by the matching GET route. Each route
// group carries the authorization rule that applies to it; object-level
// ownership is checked by the services.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		middleware.StripSlashes,
		middleware.GetHead,
		h.withTraceID,
		h.withLogging,
		withGZipRequests,
		middleware.Compress(5, "application/json"),
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route(apiPrefix, func(r chi.Router) {
		r.Use(h.identify)

		// routes without authorization
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/token", h.token)

		r.Route("/users", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(h.authorize(policy.Authenticated))
				r.Get("/me", h.getMe)
				r.Patch("/me", h.updateMe)
			})
			r.Group(func(r chi.Router) {
				r.Use(h.authorize(policy.AdminOnly))
				r.Get("/", h.listUsers)
				r.Post("/", h.createUser)
				r.Get("/{username}", h.getUser)
				r.Patch("/{username}", h.updateUser)
				r.Delete("/{username}", h.deleteUser)
			})
		})

		r.With(h.authorize(policy.AdminGatedWrite)).Route("/categories", slugRoutes(h, h.services.CategoryService))
		r.With(h.authorize(policy.AdminGatedWrite)).Route("/genres", slugRoutes(h, h.services.GenreService))

		r.Route("/titles", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(h.authorize(policy.AdminGatedWrite))
				r.Get("/", h.listTitles)
				r.Post("/", h.createTitle)
				r.Get("/{titleID}", h.getTitle)
				r.Patch("/{titleID}", h.updateTitle)
				r.Delete("/{titleID}", h.deleteTitle)
			})

			// ownership of a single review or comment is checked by the
			// services once the object is loaded
			r.Route("/{titleID}/reviews", func(r chi.Router) {
				r.Use(h.authorize(policy.AuthenticatedOrReadOnly))
				r.Get("/", h.listReviews)
				r.Post("/", h.createReview)
				r.Get("/{reviewID}", h.getReview)
				r.Patch("/{reviewID}", h.updateReview)
				r.Delete("/{reviewID}", h.deleteReview)

				r.Route("/{reviewID}/comments", func(r chi.Router) {
					r.Get("/", h.listComments)
					r.Post("/", h.createComment)
					r.Get("/{commentID}", h.getComment)
					r.Patch("/{commentID}", h.updateComment)
					r.Delete("/{commentID}", h.deleteComment)
				})
			})
		})
	})

	return router
}
