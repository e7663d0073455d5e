package user

import (
	"context"
	"errors"
	"time"

	c "schoolops/internal/core/domain/common"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxResetTokenRepository struct {
	conn db.Connection
}

func NewPgxResetTokenRepository(conn db.Connection) *PgxResetTokenRepository {
	if conn == nil {
		panic("Argument conn must not be nil.")
	}
	return &PgxResetTokenRepository{conn: conn}
}

func (r *PgxResetTokenRepository) Create(
	ctx context.Context,
	input user.CreateResetTokenInput,
) (rec user.ResetTokenRecord, err error) {
	row := r.conn.QueryRow(
		ctx,
		`INSERT INTO reset_tokens (email, token, expires_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, email, token, expires_at`,
		string(input.Email),
		string(input.Token),
		input.ExpiresAt,
	)
	return decodeResetToken(row)
}

func (r *PgxResetTokenRepository) GetByToken(
	ctx context.Context,
	token user.ResetToken,
) (rec user.ResetTokenRecord, err error) {
	row := r.conn.QueryRow(
		ctx,
		`SELECT id, email, token, expires_at FROM reset_tokens WHERE token = $1`,
		string(token),
	)
	rec, err = decodeResetToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return rec, user.ErrResetTokenDoesNotExist
	}
	return rec, err
}

func (r *PgxResetTokenRepository) DeleteByToken(
	ctx context.Context,
	token user.ResetToken,
) (rowsAffected int64, err error) {
	tag, err := r.conn.Exec(ctx, `DELETE FROM reset_tokens WHERE token = $1`, string(token))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PgxResetTokenRepository) PurgeExpired(
	ctx context.Context,
	now time.Time,
) (rowsAffected int64, err error) {
	tag, err := r.conn.Exec(ctx, `DELETE FROM reset_tokens WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func decodeResetToken(row pgx.Row) (rec user.ResetTokenRecord, err error) {
	var (
		id        int64
		email     string
		token     string
		expiresAt time.Time
	)
	if err := row.Scan(&id, &email, &token, &expiresAt); err != nil {
		return rec, err
	}
	return user.ResetTokenRecord{
		ID:        id,
		Email:     c.Email(email),
		Token:     user.ResetToken(token),
		ExpiresAt: expiresAt,
	}, nil
}
