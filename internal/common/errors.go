// Package common holds the error kinds shared by repositories, services,
// and the HTTP boundary. Every failed core operation resolves to exactly
// one of these; the boundary maps each kind to a fixed status code.
package common

import "errors"

var (
	// ErrUnauthenticated marks a missing, unverifiable, or revoked token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUnauthorized marks a valid identity acting on another owner's resource.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound marks an absent row or an empty list result.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateTitle marks a second resource with the same title under one owner.
	ErrDuplicateTitle = errors.New("title already in use")
	// ErrDuplicateEmail marks a signup with an email that is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)
