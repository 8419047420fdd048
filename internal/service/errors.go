package service

import "errors"

var (
	// ErrUnauthorized means the operation needs an identity and none was
	// resolved from the request.
	ErrUnauthorized = errors.New("authentication credentials were not provided")
	// ErrForbidden means the identity is not the owner of the resource.
	ErrForbidden = errors.New("you do not have permission to perform this action")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("invalid credentials")
	ErrUnknownCategory     = errors.New("category does not exist")

	ErrTokenIssuance         = errors.New("failed to issue token")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
