package services

import "errors"

// ValidationError marks bad caller input; handlers map it to HTTP 400.
// Anything else coming out of a service is treated as a storage failure.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func invalid(msg string) error { return &ValidationError{Msg: msg} }

var (
	ErrSellerNotFound = errors.New("seller not found")
	ErrBookNotFound   = errors.New("book not found")
	ErrUploadNotFound = errors.New("file not found")
	ErrBadCreds       = errors.New("invalid email or password")
)
