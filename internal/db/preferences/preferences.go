package preferences

import (
	"context"
	"errors"
	"fmt"

	e "passport/internal/core/domain/errors"
	"passport/internal/core/domain/preferences"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Compiled-in templates used when no preference row overrides them.
var defaults = map[preferences.Key]string{
	preferences.KeyPasswordResetSubject: "Password reset instructions",
	preferences.KeyPasswordResetBody: "Hello {name},\n\n" +
		"Your password reset code is {code}. It expires at {expires}.\n\n" +
		"If you did not request a reset, you can ignore this message.",
}

type PgxPreferenceRepository struct {
	db *pgxpool.Pool
}

func NewPgxRepository(db *pgxpool.Pool) *PgxPreferenceRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxPreferenceRepository{db: db}
}

func (r *PgxPreferenceRepository) Get(ctx context.Context, key preferences.Key) (string, error) {
	var value string
	err := r.db.QueryRow(
		ctx,
		`SELECT value FROM preference WHERE key = $1`,
		string(key),
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		if fallback, ok := defaults[key]; ok {
			return fallback, nil
		}
		return "", fmt.Errorf("preference %s is not defined", key)
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
