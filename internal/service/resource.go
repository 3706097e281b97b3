package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	domainerrors "github.com/newsdeskapp/newsdesk-server/internal/errors"
	"github.com/newsdeskapp/newsdesk-server/internal/store"
)

// Controller implements the soft-delete resource workflow shared by the
// category and news services: create with a fresh public ID, tombstone-aware
// reads, paginated lists, full-record updates and delete-as-rewrite.
//
// State machine per record: Active -(update)-> Active, Active -(delete)->
// Tombstoned, Tombstoned terminal. Every operation on a tombstone reports
// not found; the tombstone itself never changes again.
type Controller[T any, PT store.RecordPtr[T]] struct {
	coll   *store.Collection[T, PT]
	kind   string // Used in user-facing not-found messages
	logger *slog.Logger
}

// NewController creates a controller over one collection.
// kind is the user-facing resource name ("category", "news").
func NewController[T any, PT store.RecordPtr[T]](coll *store.Collection[T, PT], kind string, logger *slog.Logger) *Controller[T, PT] {
	return &Controller[T, PT]{
		coll:   coll,
		kind:   kind,
		logger: logger,
	}
}

// Create assigns a fresh public ID and inserts the record.
// The ID is a content-independent UUID, assigned exactly once.
func (c *Controller[T, PT]) Create(ctx context.Context, rec PT) error {
	rec.Meta().Init(uuid.NewString())
	if err := c.coll.Insert(ctx, rec); err != nil {
		return c.mapStoreError(err)
	}
	return nil
}

// Get fetches an active record by public ID.
func (c *Controller[T, PT]) Get(ctx context.Context, id string) (PT, error) {
	rec, err := c.coll.FindOne(ctx, id)
	if err != nil {
		return nil, c.mapStoreError(err)
	}
	return rec, nil
}

// List resolves the raw pagination request into one page of active records
// plus the metadata block. An empty page, including a page past the end,
// is reported as not found rather than an empty success.
func (c *Controller[T, PT]) List(ctx context.Context, rawPage, rawSize string) ([]PT, store.PageMeta, error) {
	req, err := store.ParsePageRequest(rawPage, rawSize)
	if err != nil {
		return nil, store.PageMeta{}, err
	}

	page, err := c.coll.FindPage(ctx, req.Skip(), req.Size)
	if err != nil {
		return nil, store.PageMeta{}, c.mapStoreError(err)
	}
	if len(page) == 0 {
		return nil, store.PageMeta{}, domainerrors.NotFound(c.kind + " not found")
	}

	total, err := c.coll.Count(ctx)
	if err != nil {
		return nil, store.PageMeta{}, c.mapStoreError(err)
	}

	return page, store.NewPageMeta(req, total), nil
}

// Save persists a modified record, stamping UpdatedAt.
func (c *Controller[T, PT]) Save(ctx context.Context, rec PT) error {
	rec.Meta().Touch()
	if err := c.coll.UpdateOne(ctx, rec); err != nil {
		return c.mapStoreError(err)
	}
	return nil
}

// Delete tombstones an active record by rewriting it whole with the
// deletion flag set. A concurrent update racing this write is superseded
// by whichever lands last; there is no version check.
func (c *Controller[T, PT]) Delete(ctx context.Context, id string) error {
	rec, err := c.Get(ctx, id)
	if err != nil {
		return err
	}

	rec.Meta().MarkDeleted()
	if err := c.coll.UpdateOne(ctx, rec); err != nil {
		return c.mapStoreError(err)
	}
	return nil
}

// mapStoreError turns store sentinels into the API error taxonomy.
// Anything unexpected from the store becomes a store failure, logged at
// the handler boundary and surfaced as a generic 500.
func (c *Controller[T, PT]) mapStoreError(err error) error {
	switch {
	case domainerrors.Is(err, store.ErrNotFound):
		return domainerrors.NotFound(c.kind + " not found")
	case domainerrors.Is(err, store.ErrAlreadyExists):
		return domainerrors.Conflict(c.kind + " already exists")
	default:
		return domainerrors.StoreUnavailable(err)
	}
}
