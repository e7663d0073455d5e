package user

import (
	"context"
	c "schoolops/internal/core/domain/common"
)

type CreateUserInput struct {
	Name         c.Optional[string]
	Email        c.Email
	PasswordHash PasswordHash
	Role         Role
}

type UpdateUserInput struct {
	ID           ID
	Name         c.Optional[string]
	Email        c.Email
	PasswordHash PasswordHash
	Role         Role
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, input UpdateUserInput) error
	Delete(ctx context.Context, id ID) error
	// SetPasswordByEmail reports the affected row count: consuming a reset
	// token for a since-deleted user must not fail.
	SetPasswordByEmail(ctx context.Context, email c.Email, hash PasswordHash) (rowsAffected int64, err error)
}
