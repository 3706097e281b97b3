// Package store implements the document store over Badger.
package store

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/newsdeskapp/newsdesk-server/internal/domain"
)

// Store wraps a Badger database instance and exposes one collection per
// content type plus the user account records.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	Categories *Collection[domain.Category, *domain.Category]
	Articles   *Collection[domain.Article, *domain.Article]
}

// New opens the Badger database at path and initializes the collections.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	s := &Store{
		db:     db,
		logger: logger,
	}

	if s.Categories, err = NewCollection[domain.Category, *domain.Category](s, "category"); err != nil {
		db.Close()
		return nil, err
	}
	if s.Articles, err = NewCollection[domain.Article, *domain.Article](s, "article"); err != nil {
		db.Close()
		return nil, err
	}

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return s, nil
}

// Close releases collection sequences and closes the database.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	s.Categories.release()
	s.Articles.release()
	return s.db.Close()
}
