// Package common defines shared constants and sentinel errors used across
// the account store. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Validation errors (structurally invalid arguments).
	ErrorInvalidInput = errors.New("invalid input")

	// Storage errors. Wraps driver/transaction failures so the transport
	// layer can tell a transient fault apart from a domain outcome.
	ErrorStorageUnavailable = errors.New("storage unavailable")

	// Non-fatal: timestamp reconciliation fell back to the current time.
	ErrorDegradedTimestamp = errors.New("degraded timestamp")
)
