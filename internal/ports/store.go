package ports

import (
	"context"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// Store is the persistence port for one entity collection. Implemented by the
// store adapters (memory, badger, mongo); called by the lifecycle engine and
// the application services.
type Store[T any] interface {
	// Collection returns the descriptor the store was opened with.
	Collection() Collection[T]

	// FindByID returns the record with the given id. The boolean is false
	// when no record matches; that is not an error.
	FindByID(ctx context.Context, id string) (*T, bool, error)

	// FindAll returns every record in the collection, in id order.
	FindAll(ctx context.Context) ([]*T, error)

	// FindOne returns the record whose index values equal values. It is the
	// natural-key finder and is normally called with a unique index.
	FindOne(ctx context.Context, index string, values ...string) (*T, bool, error)

	// FindBy returns every record whose index values equal values.
	FindBy(ctx context.Context, index string, values ...string) ([]*T, error)

	// Insert stores a new record and assigns its id in place. Returns
	// domain.ErrConflict when a unique index already holds the record's
	// values.
	Insert(ctx context.Context, entity *T) error

	// Save overwrites an existing record. Returns domain.ErrNotFound when the
	// id is unknown and domain.ErrConflict on a unique index violation.
	Save(ctx context.Context, entity *T) error

	// DeleteByID removes the record with the given id. Deleting an absent id
	// is not an error.
	DeleteByID(ctx context.Context, id string) error
}

// Collection describes a stored entity type: its name, how to reach the
// shared Base of a record, and its secondary indexes.
type Collection[T any] struct {
	Name    string
	Base    func(*T) *domain.Base
	Indexes []Index[T]
}

// Index finds the index with the given name.
func (c Collection[T]) Index(name string) (Index[T], bool) {
	for _, idx := range c.Indexes {
		if idx.Name == name {
			return idx, true
		}
	}
	return Index[T]{}, false
}

// NaturalKey returns the first unique index, if the collection declares one.
func (c Collection[T]) NaturalKey() (Index[T], bool) {
	for _, idx := range c.Indexes {
		if idx.Unique {
			return idx, true
		}
	}
	return Index[T]{}, false
}

// Index is a secondary index over one or more fields. Fields holds the
// document paths (as stored in bson) and Values extracts the same fields
// from a record, in the same order. A record whose Values are all empty is
// left out of the index.
type Index[T any] struct {
	Name   string
	Fields []string
	Unique bool
	Values func(*T) []string
}

// Indexed reports whether v carries at least one non-empty index value.
func Indexed(v []string) bool {
	for _, s := range v {
		if s != "" {
			return true
		}
	}
	return false
}
