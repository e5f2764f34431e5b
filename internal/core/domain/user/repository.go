package user

import (
	"context"
	c "passport/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email        c.Optional[c.Email]
	Name         string
	PasswordHash c.Optional[PasswordHash]
	CreatedAt    time.Time
}

// UserRepository is the port to the external user store. Lookup by
// email returns zero-or-one rows; mutations are single-statement
// updates, so the reset code and its timeout always change together.
type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	SetSessionToken(ctx context.Context, id ID, token SessionToken) error
	SetResetCode(ctx context.Context, id ID, code ResetCode, timeout time.Time) error
	ResetPassword(ctx context.Context, id ID, password PasswordHash) error
}
