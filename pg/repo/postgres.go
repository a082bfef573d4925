package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"coachline.com/backoffice/pg/model"
)

// PostgreSQL error codes mapped to model errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// PostgresDB implements the model stores on a pgx pool.
type PostgresDB struct {
	pool *pgxpool.Pool
}

var (
	_ model.JobStore         = (*PostgresDB)(nil)
	_ model.MaintenanceStore = (*PostgresDB)(nil)
	_ model.PermissionStore  = (*PostgresDB)(nil)
	_ model.RoleStore        = (*PostgresDB)(nil)
)

func NewPostgresDB(pool *pgxpool.Pool) *PostgresDB {
	return &PostgresDB{pool: pool}
}

// Connect opens a pool and checks it with a ping.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// mapError translates driver errors into model errors.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", op, model.ErrConflict)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, model.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// expectOne turns a zero-row mutation into ErrNotFound.
func expectOne(op string, tag pgconn.CommandTag, err error) error {
	if err != nil {
		return mapError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}
	return nil
}
