// Package domain contains the core content model types.
package domain

import "time"

// Resource provides the common identity and lifecycle fields shared by all
// stored content types. It gets embedded in any type that goes through the
// content store.
//
// UpdatedAt stays nil until the first mutation, so a nil value means the
// record has never changed since creation.
//
// Deletion is a soft delete: the record is rewritten in place with IsDeleted
// set, and every read path treats a marked record as if it does not exist.
// The tombstone is kept so the write is a plain full-record replacement.
type Resource struct {
	ID        string     `json:"id"`
	IsDeleted bool       `json:"is_deleted"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Meta returns the embedded resource fields. Types embedding Resource
// satisfy the store's record contract through this method.
func (r *Resource) Meta() *Resource {
	return r
}

// Init assigns the identity and stamps CreatedAt.
// Call this when creating a new resource.
func (r *Resource) Init(id string) {
	r.ID = id
	r.CreatedAt = time.Now()
	r.UpdatedAt = nil
}

// Touch stamps UpdatedAt with the current time.
// Call this whenever the resource changes.
func (r *Resource) Touch() {
	now := time.Now()
	r.UpdatedAt = &now
}

// MarkDeleted flags the resource as soft-deleted and touches UpdatedAt.
// All other fields stay in place; the record is rewritten whole.
func (r *Resource) MarkDeleted() {
	r.IsDeleted = true
	r.Touch()
}
