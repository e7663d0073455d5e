package user

import (
	"context"
	c "schoolops/internal/core/domain/common"
	"time"
)

type ResetToken string

// ResetTokenRecord associates a token with an email. The association is not a
// hard referential constraint: the user may be deleted while the token lives.
type ResetTokenRecord struct {
	ID        int64
	Email     c.Email
	Token     ResetToken
	ExpiresAt time.Time
}

type CreateResetTokenInput struct {
	Email     c.Email
	Token     ResetToken
	ExpiresAt time.Time
}

type ResetTokenRepository interface {
	Create(ctx context.Context, input CreateResetTokenInput) (ResetTokenRecord, error)
	GetByToken(ctx context.Context, token ResetToken) (ResetTokenRecord, error)
	DeleteByToken(ctx context.Context, token ResetToken) (rowsAffected int64, err error)
	PurgeExpired(ctx context.Context, now time.Time) (rowsAffected int64, err error)
}

type ResetTokenGenerator interface {
	GenerateResetToken() ResetToken
}

type ResetTokenSender interface {
	SendResetToken(ctx context.Context, email c.Email, token ResetToken) error
}
