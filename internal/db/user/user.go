package user

import (
	"context"
	"database/sql"
	"errors"

	c "schoolops/internal/core/domain/common"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/db"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "users_email_idx"

type PgxUserRepository struct {
	conn db.Connection
}

func NewPgxRepository(conn db.Connection) *PgxUserRepository {
	if conn == nil {
		panic("Argument conn must not be nil.")
	}
	return &PgxUserRepository{conn: conn}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.conn.QueryRow(
		ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, email, password_hash, role`,
		encodeName(input.Name),
		string(input.Email),
		string(input.PasswordHash),
		string(input.Role),
	)
	u, err = decodeUser(row)

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		if pgerr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgerr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	return u, err
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.conn.QueryRow(
		ctx,
		`SELECT id, name, email, password_hash, role FROM users WHERE email = $1`,
		string(email),
	)
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.conn.Query(
		ctx,
		`SELECT id, name, email, password_hash, role FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := decodeUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) error {
	tag, err := r.conn.Exec(
		ctx,
		`UPDATE users SET name = $1, email = $2, password_hash = $3, role = $4 WHERE id = $5`,
		encodeName(input.Name),
		string(input.Email),
		string(input.PasswordHash),
		string(input.Role),
		int64(input.ID),
	)

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		if pgerr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgerr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) Delete(ctx context.Context, id user.ID) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM users WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) SetPasswordByEmail(
	ctx context.Context,
	email c.Email,
	hash user.PasswordHash,
) (rowsAffected int64, err error) {
	tag, err := r.conn.Exec(
		ctx,
		`UPDATE users SET password_hash = $1 WHERE email = $2`,
		string(hash),
		string(email),
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func encodeName(name c.Optional[string]) sql.NullString {
	return sql.NullString{String: name.Value, Valid: name.IsPresent}
}

func decodeUser(row pgx.Row) (u user.User, err error) {
	var (
		id           int64
		name         sql.NullString
		email        string
		passwordHash string
		role         string
	)
	if err := row.Scan(&id, &name, &email, &passwordHash, &role); err != nil {
		return u, err
	}
	return user.User{
		ID:           user.ID(id),
		Name:         c.NewOptional(name.String, name.Valid),
		Email:        c.Email(email),
		PasswordHash: user.PasswordHash(passwordHash),
		Role:         user.Role(role),
	}, nil
}
