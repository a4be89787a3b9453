package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/keoko/mots/internal/clock"
	"github.com/keoko/mots/internal/config"
	"github.com/keoko/mots/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.StorageConfig
		want    string
		wantErr bool
	}{
		{
			name: "sqlite",
			cfg:  config.StorageConfig{Driver: "sqlite3", Path: "mots.db"},
			want: "mots.db",
		},
		{
			name: "mysql",
			cfg:  config.StorageConfig{Driver: "mysql", DSN: "mots:pw@tcp(localhost:3306)/mots?parseTime=true"},
			want: "mots:pw@tcp(localhost:3306)/mots?parseTime=true",
		},
		{
			name: "postgres",
			cfg: config.StorageConfig{
				Driver: "postgres",
				Conn: config.DBConn{
					Host:     "localhost",
					Port:     "5432",
					User:     "mots",
					Password: "secret",
					Name:     "mots",
					SSL:      "disable",
				},
			},
			want: "host=localhost port=5432 dbname=mots user=mots password=secret sslmode=disable",
		},
		{
			name:    "memory has no dsn",
			cfg:     config.StorageConfig{Driver: "memory"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DSN(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchemaCoversDrivers(t *testing.T) {
	t.Parallel()

	for _, driver := range []string{"sqlite3", "postgres", "mysql"} {
		assert.Contains(t, schema[driver], "PRIMARY KEY (owner_id, name)", driver)
	}
}

func TestInitDB_SQLite(t *testing.T) {
	t.Parallel()

	cfg := config.StorageConfig{
		Driver: "sqlite3",
		Path:   filepath.Join(t.TempDir(), "mots.db"),
		Cfg:    config.DBCfg{MaxOpenConns: 1},
	}

	conn, err := InitDB(cfg)
	require.NoError(t, err)
	defer conn.Close()

	repo := repository.NewRepository(conn, clock.Real{})
	ctx := context.Background()

	_, err = repo.Get(ctx, "local", "progress")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Put(ctx, "local", "progress", []byte(`{"a":1}`)))
	require.NoError(t, repo.Put(ctx, "local", "progress", []byte(`{"a":2}`)))
	require.NoError(t, repo.Put(ctx, "tg:1", "progress", []byte(`{}`)))

	got, err := repo.Get(ctx, "local", "progress")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(got))

	owners, err := repo.Owners(ctx, "progress")
	require.NoError(t, err)
	assert.Equal(t, []string{"local", "tg:1"}, owners)

	// Reopening keeps the data and tolerates the existing schema.
	again, err := InitDB(cfg)
	require.NoError(t, err)
	defer again.Close()

	got, err = repository.NewRepository(again, clock.Real{}).Get(ctx, "local", "progress")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(got))
}

func TestInitDB_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := InitDB(config.StorageConfig{Driver: "memory"})
	require.Error(t, err)
}
