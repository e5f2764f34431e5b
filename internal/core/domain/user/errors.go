package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrUserDoesNotExist          = errors.New("user does not exist")
	ErrNotAuthenticated          = errors.New("not authenticated")
	ErrInvalidOrExpiredResetCode = errors.New("reset code is invalid or expired")
)
