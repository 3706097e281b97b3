package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/newsdeskapp/newsdesk-server/internal/domain"
)

const (
	userPrefix        = "user:"
	userByEmailPrefix = "idx:users:email:" // For login lookups
)

// CreateUser creates a new user account.
// The email index is claimed in the same transaction as the record, so two
// concurrent registrations with the same address can't both land.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(userPrefix + user.ID)
	emailKey := []byte(userByEmailPrefix + normalizeEmail(user.Email))

	return s.db.Update(func(txn *badger.Txn) error {
		// Check if email is already in use.
		_, err := txn.Get(emailKey)
		if err == nil {
			return ErrEmailExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check email exists: %w", err)
		}

		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(emailKey, []byte(user.ID))
	})
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := []byte(userPrefix + id)

	var user domain.User
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email address.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	emailKey := []byte(userByEmailPrefix + normalizeEmail(email))

	var userID string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			userID = string(val)
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}

	return s.GetUser(ctx, userID)
}

// UpdateUser rewrites an existing user record. The email is immutable
// through the public surface, so the index needs no maintenance here.
func (s *Store) UpdateUser(ctx context.Context, user *domain.User) error {
	if _, err := s.GetUser(ctx, user.ID); err != nil {
		return err
	}

	user.UpdatedAt = time.Now()
	key := []byte(userPrefix + user.ID)

	return s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}
		return txn.Set(key, data)
	})
}

// normalizeEmail normalizes an email address for consistent lookups.
// Lowercases and trims whitespace.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
