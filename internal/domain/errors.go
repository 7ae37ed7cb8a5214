package domain

import "errors"

var (
	ErrSecretNotFound     = errors.New("secret not found")
	ErrCredentialNotFound = errors.New("credential not found")

	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("resource not found")
	ErrRequestRejected = errors.New("request rejected")
	ErrUnavailable     = errors.New("backend unavailable")
	ErrTimeout         = errors.New("request timed out")
	ErrBadResponse     = errors.New("malformed response")

	ErrLocalKeyNotFound = errors.New("local key not found")
)
