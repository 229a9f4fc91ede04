package memstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Store is a ports.Store backed by one memdb table.
type Store[T any] struct {
	db   *memdb.MemDB
	coll ports.Collection[T]
}

// Compile-time check that Store implements ports.Store.
var _ ports.Store[struct{}] = (*Store[struct{}])(nil)

// New returns a store over the table of coll in db. The table must have been
// created with Table(coll).
func New[T any](db *memdb.MemDB, coll ports.Collection[T]) *Store[T] {
	return &Store[T]{db: db, coll: coll}
}

// Collection returns the collection descriptor.
func (s *Store[T]) Collection() ports.Collection[T] { return s.coll }

// FindByID returns a copy of the record with the given id.
func (s *Store[T]) FindByID(_ context.Context, id string) (*T, bool, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(s.coll.Name, idIndex, id)
	if err != nil {
		return nil, false, fmt.Errorf("memstore %s: %w", s.coll.Name, err)
	}
	if raw == nil {
		return nil, false, nil
	}
	v, err := clone(raw.(*T))
	return v, err == nil, err
}

// FindAll returns copies of every record in id order.
func (s *Store[T]) FindAll(_ context.Context) ([]*T, error) {
	return s.get(idIndex)
}

// FindOne returns a copy of the first record whose index values match.
func (s *Store[T]) FindOne(_ context.Context, index string, values ...string) (*T, bool, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(s.coll.Name, index, toArgs(values)...)
	if err != nil {
		return nil, false, fmt.Errorf("memstore %s by %s: %w", s.coll.Name, index, err)
	}
	if raw == nil {
		return nil, false, nil
	}
	v, err := clone(raw.(*T))
	return v, err == nil, err
}

// FindBy returns copies of every record whose index values match.
func (s *Store[T]) FindBy(_ context.Context, index string, values ...string) ([]*T, error) {
	return s.get(index, toArgs(values)...)
}

// Insert assigns a fresh id to entity and stores a copy of it.
func (s *Store[T]) Insert(_ context.Context, entity *T) error {
	id := store.NewID()

	v, err := clone(entity)
	if err != nil {
		return err
	}
	s.coll.Base(v).ID = id

	if err := s.write(v, ""); err != nil {
		return err
	}
	s.coll.Base(entity).ID = id
	return nil
}

// Save replaces the stored record with a copy of entity.
func (s *Store[T]) Save(_ context.Context, entity *T) error {
	id := s.coll.Base(entity).ID

	v, err := clone(entity)
	if err != nil {
		return err
	}
	return s.write(v, id)
}

// DeleteByID removes the record with the given id, if present.
func (s *Store[T]) DeleteByID(_ context.Context, id string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(s.coll.Name, idIndex, id)
	if err != nil {
		return fmt.Errorf("memstore %s: %w", s.coll.Name, err)
	}
	if raw == nil {
		return nil
	}
	if err := txn.Delete(s.coll.Name, raw); err != nil {
		return fmt.Errorf("memstore %s delete %s: %w", s.coll.Name, id, err)
	}
	txn.Commit()
	return nil
}

// write inserts v inside a write transaction. A non-empty existingID means v
// replaces a record that must already exist. Unique indexes are checked here
// because memdb itself overwrites on a unique key collision.
func (s *Store[T]) write(v *T, existingID string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if existingID != "" {
		raw, err := txn.First(s.coll.Name, idIndex, existingID)
		if err != nil {
			return fmt.Errorf("memstore %s: %w", s.coll.Name, err)
		}
		if raw == nil {
			return &domain.NotFoundError{Entity: s.coll.Name, ID: existingID}
		}
	}

	selfID := s.coll.Base(v).ID
	for _, idx := range s.coll.Indexes {
		if !idx.Unique {
			continue
		}
		values := idx.Values(v)
		if !ports.Indexed(values) {
			continue
		}
		raw, err := txn.First(s.coll.Name, idx.Name, toArgs(values)...)
		if err != nil {
			return fmt.Errorf("memstore %s by %s: %w", s.coll.Name, idx.Name, err)
		}
		if raw != nil && s.coll.Base(raw.(*T)).ID != selfID {
			return fmt.Errorf("%w: %s %s %v already taken", domain.ErrConflict, s.coll.Name, idx.Name, values)
		}
	}

	if err := txn.Insert(s.coll.Name, v); err != nil {
		return fmt.Errorf("memstore %s write %s: %w", s.coll.Name, selfID, err)
	}
	txn.Commit()
	return nil
}

func (s *Store[T]) get(index string, args ...any) ([]*T, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(s.coll.Name, index, args...)
	if err != nil {
		return nil, fmt.Errorf("memstore %s by %s: %w", s.coll.Name, index, err)
	}

	var out []*T
	for raw := it.Next(); raw != nil; raw = it.Next() {
		v, err := clone(raw.(*T))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func toArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

func clone[T any](v *T) (*T, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("memstore: encoding %T: %w", v, err)
	}
	out := new(T)
	if err := json.Unmarshal(b, out); err != nil {
		return nil, fmt.Errorf("memstore: decoding %T: %w", v, err)
	}
	return out, nil
}
