package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid employee id or password")
	ErrLoginNotAllowed    = errors.New("employee is not allowed to log in")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
