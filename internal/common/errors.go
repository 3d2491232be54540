// Package common defines shared constants and sentinel errors used across
// the store, sending and shell layers of mailadmin. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Recipient errors.
	ErrInvalidRecipient = errors.New("invalid recipient")

	// Transport errors. A connect error is fatal to the current operation,
	// a send error only to the current message.
	ErrTransportConnect = errors.New("transport connect failed")
	ErrTransportSend    = errors.New("transport send failed")

	// Input errors.
	ErrResourceMissing = errors.New("resource missing")
	ErrMalformedInput  = errors.New("malformed input")

	// ErrAccessDenied is returned by the admin gate.
	ErrAccessDenied = errors.New("access denied")
)
