package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateUpMatchesModels(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, MigrateUp(cfg))
	require.NoError(t, MigrateUp(cfg))

	conn, err := Open(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(conn) })

	for _, model := range Models() {
		assert.True(t, conn.Migrator().HasTable(model), "missing table for %T", model)
	}
	assert.True(t, conn.Migrator().HasIndex(&Location{}, "idx_locations_name"))

	g := NewGateway(conn)
	result, err := Seed(context.Background(), g)
	require.NoError(t, err)
	assert.True(t, result.Seeded)
}

func TestDialect(t *testing.T) {
	cfg := testConfig(t)
	assert.Equal(t, DialectSQLite, Dialect(cfg))
	cfg.DatabaseURL = "postgres://localhost/mud"
	assert.Equal(t, DialectPostgres, Dialect(cfg))
	assert.Equal(t, "internal/db/migrations/postgres", MigrationsDir(DialectPostgres))
}
