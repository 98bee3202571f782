// Package repository persists the GessoTrack domain models.
//
// A Repository is opened once at startup, shared by all components and closed on
// shutdown. Multi-step writes run through Transaction, which hands the callback a
// Repository bound to the transaction.
package repository

import (
	"context"
	"fmt"

	"github.com/gessotrack/backend/pkg/config"
	"github.com/gessotrack/backend/pkg/models"
	"gorm.io/gorm"
)

// Repository gives access to the persisted state.
type Repository struct {
	db *gorm.DB
}

// Open connects to the configured database and migrates it.
func Open(cfg config.Database) (*Repository, error) {
	db, err := models.Connect(cfg)
	if err != nil {
		return nil, err
	}

	return New(db), nil
}

// New wraps an already connected database.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.Close()
}

// Ping verifies that the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Transaction runs fn with a Repository bound to a database transaction.
//
// The transaction is committed when fn returns nil and rolled back otherwise.
// Calling Transaction on a transaction-bound Repository uses a savepoint.
func (r *Repository) Transaction(ctx context.Context, fn func(*Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}
