// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidConfirmationCode is returned by ExchangeToken when the code
	// does not verify. No state changes in that case.
	ErrInvalidConfirmationCode = errors.New("Invalid confirmation_code or username")

	// ErrConfirmationCodeResent is returned by Signup when the exact
	// (username, email) pair is already registered. A fresh code has been
	// mailed, but no record was created, so the write is reported as
	// rejected.
	ErrConfirmationCodeResent = errors.New("confirmation code sent to email")

	ErrTokenIsExpiredOrInvalid = errors.New("Given token not valid for any token type")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrInvalidPage is returned for a page number past the last page.
	ErrInvalidPage = errors.New("Invalid page.")

	ErrSendingConfirmationCode = errors.New("error sending confirmation code")
)
