package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"iter"

	"github.com/dgraph-io/badger/v4"

	"github.com/newsdeskapp/newsdesk-server/internal/domain"
)

// Record is the contract every stored content type satisfies through its
// embedded domain.Resource.
type Record interface {
	Meta() *domain.Resource
}

// RecordPtr constrains PT to be a pointer to T that satisfies Record.
type RecordPtr[T any] interface {
	*T
	Record
}

// Collection provides soft-delete-aware CRUD for one content type.
//
// Records are stored under monotonically increasing sequence keys, so key
// order is insertion order. A second key maps the public ID to the record
// key. Tombstoned records stay on disk but are invisible to every read
// path here; only UpdateOne writes them, which is how deletion happens.
type Collection[T any, PT RecordPtr[T]] struct {
	store *Store
	name  string
	seq   *badger.Sequence
}

// NewCollection creates a collection named name on the given store.
func NewCollection[T any, PT RecordPtr[T]](s *Store, name string) (*Collection[T, PT], error) {
	seq, err := s.db.GetSequence([]byte(name+":seq"), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s sequence: %w", name, err)
	}
	return &Collection[T, PT]{
		store: s,
		name:  name,
		seq:   seq,
	}, nil
}

// recKey builds the record key for sequence number n. Zero padding keeps
// byte order equal to numeric order, which is what iteration relies on.
func (c *Collection[T, PT]) recKey(n uint64) []byte {
	return fmt.Appendf(nil, "%s:rec:%020d", c.name, n)
}

func (c *Collection[T, PT]) recPrefix() []byte {
	return []byte(c.name + ":rec:")
}

func (c *Collection[T, PT]) idKey(id string) []byte {
	return []byte(c.name + ":id:" + id)
}

// Insert stores a new record under the next sequence key.
// Returns ErrAlreadyExists if the public ID is already taken.
func (c *Collection[T, PT]) Insert(ctx context.Context, rec PT) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id := rec.Meta().ID
	if id == "" {
		return fmt.Errorf("%s record has no ID", c.name)
	}

	n, err := c.seq.Next()
	if err != nil {
		return fmt.Errorf("failed to advance %s sequence: %w", c.name, err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", c.name, err)
	}

	recKey := c.recKey(n)
	idKey := c.idKey(id)

	return c.store.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(idKey)
		if err == nil {
			return ErrAlreadyExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("failed to check %s ID: %w", c.name, err)
		}

		if err := txn.Set(recKey, data); err != nil {
			return fmt.Errorf("failed to set %s record: %w", c.name, err)
		}
		if err := txn.Set(idKey, recKey); err != nil {
			return fmt.Errorf("failed to set %s ID key: %w", c.name, err)
		}
		return nil
	})
}

// FindOne retrieves an active record by public ID.
// Returns ErrNotFound for absent and tombstoned records alike.
func (c *Collection[T, PT]) FindOne(ctx context.Context, id string) (PT, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entity T
	err := c.store.db.View(func(txn *badger.Txn) error {
		recKey, err := c.resolveID(txn, id)
		if err != nil {
			return err
		}

		item, err := txn.Get(recKey)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get %s record: %w", c.name, err)
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &entity); err != nil {
				return fmt.Errorf("failed to unmarshal %s record: %w", c.name, err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	rec := PT(&entity)
	if rec.Meta().IsDeleted {
		return nil, ErrNotFound
	}
	return rec, nil
}

// UpdateOne rewrites the full record for an active public ID.
// CreatedAt is always re-asserted from the stored record, so callers can't
// move it even by accident. Returns ErrNotFound for absent or tombstoned
// records. Writing a record with IsDeleted set is how soft delete lands.
func (c *Collection[T, PT]) UpdateOne(ctx context.Context, rec PT) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.store.db.Update(func(txn *badger.Txn) error {
		recKey, err := c.resolveID(txn, rec.Meta().ID)
		if err != nil {
			return err
		}

		item, err := txn.Get(recKey)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get %s record: %w", c.name, err)
		}

		var existing T
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &existing)
		}); err != nil {
			return fmt.Errorf("failed to unmarshal %s record: %w", c.name, err)
		}
		if PT(&existing).Meta().IsDeleted {
			return ErrNotFound
		}

		rec.Meta().CreatedAt = PT(&existing).Meta().CreatedAt

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal %s record: %w", c.name, err)
		}
		return txn.Set(recKey, data)
	})
}

// FindPage returns up to limit active records after skipping skip active
// records, newest first. Tombstones never count toward skip or limit.
func (c *Collection[T, PT]) FindPage(ctx context.Context, skip, limit int) ([]PT, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []PT{}, nil
	}

	out := make([]PT, 0, limit)
	for rec, err := range c.all(true) {
		if err != nil {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if skip > 0 {
			skip--
			continue
		}
		out = append(out, rec)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Count returns the number of active records in the collection.
func (c *Collection[T, PT]) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	for _, err := range c.all(false) {
		if err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}

// All returns an iterator over every active record, newest first.
func (c *Collection[T, PT]) All(ctx context.Context) iter.Seq2[PT, error] {
	return func(yield func(PT, error) bool) {
		for rec, err := range c.all(true) {
			if ctx.Err() != nil {
				yield(nil, ctx.Err())
				return
			}
			if !yield(rec, err) {
				return
			}
		}
	}
}

// all iterates active records in descending insertion order.
func (c *Collection[T, PT]) all(prefetch bool) iter.Seq2[PT, error] {
	prefix := c.recPrefix()
	return func(yield func(PT, error) bool) {
		_ = c.store.db.View(func(txn *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = prefix
			opts.PrefetchValues = prefetch
			opts.Reverse = true

			it := txn.NewIterator(opts)
			defer it.Close()

			// In reverse mode the seek key must sit past every record key.
			seekKey := append(append([]byte{}, prefix...), 0xFF)

			for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
				var entity T
				err := it.Item().Value(func(val []byte) error {
					return json.Unmarshal(val, &entity)
				})
				if err != nil {
					yield(nil, fmt.Errorf("failed to read %s record: %w", c.name, err))
					return err
				}

				rec := PT(&entity)
				if rec.Meta().IsDeleted {
					continue
				}
				if !yield(rec, nil) {
					return nil // Consumer stopped early
				}
			}
			return nil
		})
	}
}

// resolveID maps a public ID to its record key inside txn.
func (c *Collection[T, PT]) resolveID(txn *badger.Txn, id string) ([]byte, error) {
	item, err := txn.Get(c.idKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve %s ID: %w", c.name, err)
	}

	var recKey []byte
	if err := item.Value(func(val []byte) error {
		recKey = append([]byte{}, val...)
		return nil
	}); err != nil {
		return nil, err
	}
	return recKey, nil
}

// release hands the unused tail of the sequence back to Badger.
func (c *Collection[T, PT]) release() {
	if c.seq != nil {
		c.seq.Release()
	}
}
