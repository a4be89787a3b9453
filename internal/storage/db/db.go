package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/keoko/mots/internal/config"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jmoiron/sqlx"
)

var schema = map[string]string{
	"sqlite3": `CREATE TABLE IF NOT EXISTS kv_store (
		owner_id   TEXT NOT NULL,
		name       TEXT NOT NULL,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		PRIMARY KEY (owner_id, name)
	)`,
	"postgres": `CREATE TABLE IF NOT EXISTS kv_store (
		owner_id   TEXT NOT NULL,
		name       TEXT NOT NULL,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (owner_id, name)
	)`,
	"mysql": `CREATE TABLE IF NOT EXISTS kv_store (
		owner_id   VARCHAR(64) NOT NULL,
		name       VARCHAR(64) NOT NULL,
		value      LONGTEXT NOT NULL,
		updated_at DATETIME NOT NULL,
		PRIMARY KEY (owner_id, name)
	)`,
}

func InitDB(cfg config.StorageConfig) (*sqlx.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	if cfg.Cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	}
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema[cfg.Driver]); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed create schema: %w", err)
	}

	return db, nil
}

func DSN(cfg config.StorageConfig) (string, error) {
	switch cfg.Driver {
	case "sqlite3":
		return cfg.Path, nil
	case "mysql":
		return cfg.DSN, nil
	case "postgres":
		return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
			cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, cfg.Conn.SSL), nil
	default:
		return "", fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
