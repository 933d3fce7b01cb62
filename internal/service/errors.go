package service

import "errors"

// ErrInvalidStatus is returned when an inquiry status is outside the known set.
var ErrInvalidStatus = errors.New("invalid status")

// ErrMissingRequired is wrapped with the name of the missing catalog field.
var ErrMissingRequired = errors.New("missing required field")

// ErrInvalidCredentials is returned for an unknown admin email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")
