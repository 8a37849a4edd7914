package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP status codes; everything else is treated as an internal error.
var (
	// ErrValidation marks rejected input. The wrapped message names the field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidStatus marks a lifecycle status outside the known set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords so login failures do not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
