package db

import (
	"path/filepath"
	"testing"

	"textmud/internal/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "mud.db")
	return cfg
}

func openTestDB(t *testing.T) (*gorm.DB, *Gateway) {
	t.Helper()
	conn, err := Open(testConfig(t), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(conn) })
	require.NoError(t, Migrate(conn))
	return conn, NewGateway(conn)
}
