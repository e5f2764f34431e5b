package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	c "passport/internal/core/domain/common"
	e "passport/internal/core/domain/errors"
	"passport/internal/core/domain/user"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userFields = `id, email, name, password_hash, api_token, created_at, reset_code, reset_code_timeout`

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func NewPgxRepository(db *pgxpool.Pool) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userFields,
		encodeEmail(input.Email),
		input.Name,
		encodePasswordHash(input.PasswordHash),
		input.CreatedAt,
	)
	u, err = decodeUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

// GetByEmail matches case-insensitively and returns at most one row.
func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userFields+` FROM "user" WHERE lower(email) = lower($1) LIMIT 1`,
		string(email),
	)
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) SetSessionToken(ctx context.Context, id user.ID, token user.SessionToken) error {
	ct, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET api_token = $2 WHERE id = $1`,
		int64(id),
		string(token),
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) SetResetCode(
	ctx context.Context,
	id user.ID,
	code user.ResetCode,
	timeout time.Time,
) error {
	ct, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET reset_code = $2, reset_code_timeout = $3 WHERE id = $1`,
		int64(id),
		string(code),
		timeout,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) ResetPassword(ctx context.Context, id user.ID, password user.PasswordHash) error {
	ct, err := r.db.Exec(
		ctx,
		`UPDATE "user"
		 SET password_hash = $2, reset_code = NULL, reset_code_timeout = NULL
		 WHERE id = $1`,
		int64(id),
		string(password),
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func encodeEmail(email c.Optional[c.Email]) sql.NullString {
	return sql.NullString{String: string(email.Value), Valid: email.IsPresent}
}

func encodePasswordHash(ph c.Optional[user.PasswordHash]) sql.NullString {
	return sql.NullString{String: string(ph.Value), Valid: ph.IsPresent}
}

func decodeUser(row pgx.Row) (u user.User, err error) {
	var (
		id               int64
		email            pgtype.Text
		name             string
		passwordHash     pgtype.Text
		apiToken         pgtype.Text
		createdAt        time.Time
		resetCode        pgtype.Text
		resetCodeTimeout pgtype.Timestamptz
	)
	err = row.Scan(&id, &email, &name, &passwordHash, &apiToken, &createdAt, &resetCode, &resetCodeTimeout)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:               user.ID(id),
		Email:            c.NewOptional(c.Email(email.String), email.Status == pgtype.Present),
		Name:             name,
		PasswordHash:     c.NewOptional(user.PasswordHash(passwordHash.String), passwordHash.Status == pgtype.Present),
		APIToken:         c.NewOptional(user.SessionToken(apiToken.String), apiToken.Status == pgtype.Present),
		CreatedAt:        createdAt,
		ResetCode:        c.NewOptional(user.ResetCode(resetCode.String), resetCode.Status == pgtype.Present),
		ResetCodeTimeout: c.NewOptional(resetCodeTimeout.Time, resetCodeTimeout.Status == pgtype.Present),
	}, nil
}
