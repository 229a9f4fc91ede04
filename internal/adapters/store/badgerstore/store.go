package badgerstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Store is a ports.Store over one collection's key space in a badger DB.
type Store[T any] struct {
	db   *badger.DB
	coll ports.Collection[T]
}

// Compile-time check that Store implements ports.Store.
var _ ports.Store[struct{}] = (*Store[struct{}])(nil)

// New returns a store for coll.
func New[T any](db *badger.DB, coll ports.Collection[T]) *Store[T] {
	return &Store[T]{db: db, coll: coll}
}

// Collection returns the collection descriptor.
func (s *Store[T]) Collection() ports.Collection[T] { return s.coll }

// FindByID returns the record with the given id.
func (s *Store[T]) FindByID(_ context.Context, id string) (*T, bool, error) {
	var v *T
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		v, err = s.read(txn, id)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return v, v != nil, nil
}

// FindAll returns every record in id order.
func (s *Store[T]) FindAll(_ context.Context) ([]*T, error) {
	var out []*T
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: s.docPrefix()})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			raw, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			v, err := decode[T](raw)
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger %s scan: %w", s.coll.Name, err)
	}
	return out, nil
}

// FindOne returns the first record whose index values match.
func (s *Store[T]) FindOne(ctx context.Context, index string, values ...string) (*T, bool, error) {
	idx, ok := s.coll.Index(index)
	if !ok {
		return nil, false, fmt.Errorf("badger %s: unknown index %q", s.coll.Name, index)
	}
	if !idx.Unique {
		all, err := s.FindBy(ctx, index, values...)
		if err != nil || len(all) == 0 {
			return nil, false, err
		}
		return all[0], true, nil
	}

	var v *T
	err := s.db.View(func(txn *badger.Txn) error {
		id, err := getString(txn, s.uniqueKey(index, values))
		if err != nil || id == "" {
			return err
		}
		v, err = s.read(txn, id)
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("badger %s by %s: %w", s.coll.Name, index, err)
	}
	return v, v != nil, nil
}

// FindBy returns every record whose index values match, in id order.
func (s *Store[T]) FindBy(ctx context.Context, index string, values ...string) ([]*T, error) {
	idx, ok := s.coll.Index(index)
	if !ok {
		return nil, fmt.Errorf("badger %s: unknown index %q", s.coll.Name, index)
	}
	if idx.Unique {
		v, found, err := s.FindOne(ctx, index, values...)
		if err != nil || !found {
			return nil, err
		}
		return []*T{v}, nil
	}

	var out []*T
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := s.indexPrefix(index, values)
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			id := string(bytes.TrimPrefix(it.Item().Key(), prefix))
			v, err := s.read(txn, id)
			if err != nil {
				return err
			}
			if v != nil {
				out = append(out, v)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger %s by %s: %w", s.coll.Name, index, err)
	}
	return out, nil
}

// Insert assigns a fresh id to entity and stores it.
func (s *Store[T]) Insert(_ context.Context, entity *T) error {
	b := s.coll.Base(entity)
	prev := b.ID
	b.ID = store.NewID()

	err := s.update(func(txn *badger.Txn) error {
		return s.write(txn, entity, nil)
	})
	if err != nil {
		b.ID = prev
		return err
	}
	return nil
}

// Save overwrites the stored record and moves its index entries.
func (s *Store[T]) Save(_ context.Context, entity *T) error {
	id := s.coll.Base(entity).ID
	return s.update(func(txn *badger.Txn) error {
		old, err := s.read(txn, id)
		if err != nil {
			return err
		}
		if old == nil {
			return &domain.NotFoundError{Entity: s.coll.Name, ID: id}
		}
		return s.write(txn, entity, old)
	})
}

// DeleteByID removes the record with the given id and its index entries.
func (s *Store[T]) DeleteByID(_ context.Context, id string) error {
	return s.update(func(txn *badger.Txn) error {
		old, err := s.read(txn, id)
		if err != nil || old == nil {
			return err
		}
		if err := s.unindex(txn, old); err != nil {
			return err
		}
		return txn.Delete(s.docKey(id))
	})
}

// update runs fn in a read-write transaction. A transaction conflict means a
// concurrent writer touched the same keys, which for index keys is a lost
// uniqueness race.
func (s *Store[T]) update(fn func(txn *badger.Txn) error) error {
	err := s.db.Update(fn)
	if errors.Is(err, badger.ErrConflict) {
		return fmt.Errorf("%w: concurrent write to %s", domain.ErrConflict, s.coll.Name)
	}
	return err
}

// write stores v and its index entries. old is the previously stored version
// whose entries are removed first; nil on insert.
func (s *Store[T]) write(txn *badger.Txn, v *T, old *T) error {
	id := s.coll.Base(v).ID

	if old != nil {
		if err := s.unindex(txn, old); err != nil {
			return err
		}
	}

	for _, idx := range s.coll.Indexes {
		values := idx.Values(v)
		if !ports.Indexed(values) {
			continue
		}
		if !idx.Unique {
			if err := txn.Set(append(s.indexPrefix(idx.Name, values), id...), nil); err != nil {
				return err
			}
			continue
		}

		key := s.uniqueKey(idx.Name, values)
		owner, err := getString(txn, key)
		if err != nil {
			return err
		}
		if owner != "" && owner != id {
			return fmt.Errorf("%w: %s %s %v already taken", domain.ErrConflict, s.coll.Name, idx.Name, values)
		}
		if err := txn.Set(key, []byte(id)); err != nil {
			return err
		}
	}

	raw, err := bson.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s %s: %w", s.coll.Name, id, err)
	}
	return txn.Set(s.docKey(id), raw)
}

func (s *Store[T]) unindex(txn *badger.Txn, old *T) error {
	id := s.coll.Base(old).ID
	for _, idx := range s.coll.Indexes {
		values := idx.Values(old)
		if !ports.Indexed(values) {
			continue
		}
		key := s.uniqueKey(idx.Name, values)
		if !idx.Unique {
			key = append(s.indexPrefix(idx.Name, values), id...)
		}
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store[T]) read(txn *badger.Txn, id string) (*T, error) {
	item, err := txn.Get(s.docKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s %s: %w", s.coll.Name, id, err)
	}
	raw, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	return decode[T](raw)
}

func (s *Store[T]) docPrefix() []byte {
	return []byte(s.coll.Name + "/d/")
}

func (s *Store[T]) docKey(id string) []byte {
	return append(s.docPrefix(), id...)
}

func (s *Store[T]) uniqueKey(index string, values []string) []byte {
	return []byte(s.coll.Name + "/u/" + index + "/" + strings.Join(values, "\x00"))
}

func (s *Store[T]) indexPrefix(index string, values []string) []byte {
	return []byte(s.coll.Name + "/i/" + index + "/" + strings.Join(values, "\x00") + "\x00/")
}

func getString(txn *badger.Txn, key []byte) (string, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	v, err := item.ValueCopy(nil)
	return string(v), err
}

func decode[T any](raw []byte) (*T, error) {
	v := new(T)
	if err := bson.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("decoding %T: %w", v, err)
	}
	return v, nil
}
