package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/keoko/mots/internal/clock"
)

var ErrNotFound = errors.New("key not found")

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
	DriverName() string
}

type Repository struct {
	*KVR
}

func NewRepository(db QueryI, clk clock.Clock) Repository {
	return Repository{
		KVR: NewKVRepository(db, clk),
	}
}
