// Package sqlite implements the SQLite solution archive for shootingstars.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/shootingstars/pkg/stars"
)

// dbFileName is the archive database file created inside the data directory.
const dbFileName = "solutions.db"

// Compile-time interface check: Backend must implement Archive.
var _ stars.Archive = (*Backend)(nil)

// Backend implements the Archive interface over a SQLite database.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   stars.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist and applies the schema. The database file is
// kept between runs; the archive is durable.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config stars.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return stars.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach releases the database handle. Idempotent: detaching a detached
// backend succeeds.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	err := b.db.Close()
	b.db = nil
	b.attached = false
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
