// Package memstore implements ports.Store on hashicorp/go-memdb. Every
// collection is a memdb table; the store keeps deep copies so callers never
// share memory with stored records.
package memstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-memdb"

	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

const idIndex = "id"

// Schema is the memdb table schema of one collection. Build a database from
// several with NewDB.
type Schema interface {
	table() *memdb.TableSchema
}

type tableSchema[T any] struct {
	coll ports.Collection[T]
}

// Table returns the memdb schema for coll.
func Table[T any](coll ports.Collection[T]) Schema {
	return tableSchema[T]{coll: coll}
}

func (s tableSchema[T]) table() *memdb.TableSchema {
	indexes := map[string]*memdb.IndexSchema{
		idIndex: {
			Name:   idIndex,
			Unique: true,
			Indexer: &valuesIndexer[T]{values: func(v *T) []string {
				return []string{s.coll.Base(v).ID}
			}},
		},
	}
	for _, idx := range s.coll.Indexes {
		indexes[idx.Name] = &memdb.IndexSchema{
			Name:         idx.Name,
			Unique:       idx.Unique,
			AllowMissing: true,
			Indexer:      &valuesIndexer[T]{values: idx.Values},
		}
	}
	return &memdb.TableSchema{Name: s.coll.Name, Indexes: indexes}
}

// NewDB creates an in-memory database holding one table per schema.
func NewDB(tables ...Schema) (*memdb.MemDB, error) {
	schema := &memdb.DBSchema{Tables: make(map[string]*memdb.TableSchema, len(tables))}
	for _, t := range tables {
		ts := t.table()
		schema.Tables[ts.Name] = ts
	}
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("creating memdb: %w", err)
	}
	return db, nil
}

// valuesIndexer is a memdb.SingleIndexer over the values an index extracts
// from a record. Compound values are joined with NUL.
type valuesIndexer[T any] struct {
	values func(*T) []string
}

func (x *valuesIndexer[T]) FromObject(raw any) (bool, []byte, error) {
	v, ok := raw.(*T)
	if !ok {
		return false, nil, fmt.Errorf("memstore: unexpected object %T", raw)
	}
	vals := x.values(v)
	if !ports.Indexed(vals) {
		return false, nil, nil
	}
	return true, encodeKey(vals), nil
}

func (x *valuesIndexer[T]) FromArgs(args ...any) ([]byte, error) {
	if len(args) == 0 {
		return nil, errors.New("memstore: index lookup needs at least one value")
	}
	vals := make([]string, len(args))
	for i, a := range args {
		s, ok := a.(string)
		if !ok {
			return nil, fmt.Errorf("memstore: index argument %d must be a string, got %T", i, a)
		}
		vals[i] = s
	}
	return encodeKey(vals), nil
}

func encodeKey(vals []string) []byte {
	return []byte(strings.Join(vals, "\x00") + "\x00")
}
