package test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/gessotrack/backend/pkg/config"
	"github.com/google/uuid"
)

// SQLite returns the configuration for a SQLite database in a fresh file.
// The file is removed when the test finishes.
func SQLite(t *testing.T) config.Database {
	return config.Database{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), fmt.Sprintf("gesso-%s.db", uuid.New())),
	}
}
