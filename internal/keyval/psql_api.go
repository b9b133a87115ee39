package keyval

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PsqlApi struct {
	db *pgxpool.Pool
}

func NewPsqlApi(db *pgxpool.Pool) *PsqlApi {
	return &PsqlApi{db: db}
}

func (api *PsqlApi) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := api.db.QueryRow(
		ctx,
		`SELECT value FROM keyval WHERE key = $1;`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("keyval get %s: %w", key, err)
	}
	return value, nil
}

func (api *PsqlApi) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("keyval set: empty key")
	}
	_, err := api.db.Exec(
		ctx,
		`INSERT INTO keyval (key, value, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (key)
			DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("keyval set %s: %w", key, err)
	}
	return nil
}
