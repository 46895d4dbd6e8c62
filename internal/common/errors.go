// Package common defines shared sentinel errors used across the SchulManager
// store and CLI layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrMalformedRecord = errors.New("malformed record")

	// Account policy errors. ErrInvalidCredentials deliberately covers both
	// unknown-user and wrong-password so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrReservedUsername   = errors.New("username is reserved")
	ErrSelfDelete         = errors.New("cannot delete the active account")
)
