package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUserDoesNotExist      = errors.New("user does not exist")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmailDomainNotAllowed = errors.New("email domain not allowed")

	ErrResetTokenDoesNotExist = errors.New("reset token does not exist")
	ErrResetTokenExpired      = errors.New("reset token expired")
	ErrResetTokenSendFailed   = errors.New("could not send reset token")
)
