// Package mongostore implements ports.Store on MongoDB. Each collection maps
// to a Mongo collection of the same name; indexes declared on the collection
// descriptor are created by EnsureIndexes.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Connect opens a client and verifies it with a ping.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}
	return client, nil
}

// Health pings the primary.
type Health struct {
	Client *mongo.Client
}

// Name returns the checker name.
func (Health) Name() string { return "store" }

// HealthCheck pings the primary.
func (h Health) HealthCheck(ctx context.Context) error {
	return h.Client.Ping(ctx, readpref.Primary())
}

// Store is a ports.Store over one Mongo collection.
type Store[T any] struct {
	c    *mongo.Collection
	coll ports.Collection[T]
}

// Compile-time check that Store implements ports.Store.
var _ ports.Store[struct{}] = (*Store[struct{}])(nil)

// New returns a store for coll in db.
func New[T any](db *mongo.Database, coll ports.Collection[T]) *Store[T] {
	return &Store[T]{c: db.Collection(coll.Name), coll: coll}
}

// EnsureIndexes creates the collection's declared indexes. Unique indexes
// are partial so records with an empty natural key are not constrained.
func (s *Store[T]) EnsureIndexes(ctx context.Context) error {
	if len(s.coll.Indexes) == 0 {
		return nil
	}
	models := make([]mongo.IndexModel, 0, len(s.coll.Indexes))
	for _, idx := range s.coll.Indexes {
		keys := bson.D{}
		for _, f := range idx.Fields {
			keys = append(keys, bson.E{Key: f, Value: 1})
		}
		opts := options.Index().SetName(idx.Name)
		if idx.Unique {
			filter := bson.D{}
			for _, f := range idx.Fields {
				filter = append(filter, bson.E{Key: f, Value: bson.D{{Key: "$gt", Value: ""}}})
			}
			opts = opts.SetUnique(true).SetPartialFilterExpression(filter)
		}
		models = append(models, mongo.IndexModel{Keys: keys, Options: opts})
	}
	if _, err := s.c.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("creating %s indexes: %w", s.coll.Name, err)
	}
	return nil
}

// Collection returns the collection descriptor.
func (s *Store[T]) Collection() ports.Collection[T] { return s.coll }

// FindByID returns the record with the given id.
func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, bool, error) {
	return s.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

// FindAll returns every record in id order.
func (s *Store[T]) FindAll(ctx context.Context) ([]*T, error) {
	return s.find(ctx, bson.D{})
}

// FindOne returns the first record whose index fields equal values.
func (s *Store[T]) FindOne(ctx context.Context, index string, values ...string) (*T, bool, error) {
	filter, err := s.filter(index, values)
	if err != nil {
		return nil, false, err
	}
	return s.findOne(ctx, filter)
}

// FindBy returns every record whose index fields equal values.
func (s *Store[T]) FindBy(ctx context.Context, index string, values ...string) ([]*T, error) {
	filter, err := s.filter(index, values)
	if err != nil {
		return nil, err
	}
	return s.find(ctx, filter)
}

// Insert assigns a fresh id to entity and inserts it.
func (s *Store[T]) Insert(ctx context.Context, entity *T) error {
	b := s.coll.Base(entity)
	prev := b.ID
	b.ID = store.NewID()

	if _, err := s.c.InsertOne(ctx, entity); err != nil {
		b.ID = prev
		return s.wrap("insert", err)
	}
	return nil
}

// Save replaces the stored record.
func (s *Store[T]) Save(ctx context.Context, entity *T) error {
	id := s.coll.Base(entity).ID
	res, err := s.c.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, entity)
	if err != nil {
		return s.wrap("replace", err)
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Entity: s.coll.Name, ID: id}
	}
	return nil
}

// DeleteByID removes the record with the given id, if present.
func (s *Store[T]) DeleteByID(ctx context.Context, id string) error {
	if _, err := s.c.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return s.wrap("delete", err)
	}
	return nil
}

func (s *Store[T]) findOne(ctx context.Context, filter bson.D) (*T, bool, error) {
	v := new(T)
	err := s.c.FindOne(ctx, filter).Decode(v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, s.wrap("find", err)
	}
	return v, true, nil
}

func (s *Store[T]) find(ctx context.Context, filter bson.D) ([]*T, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, s.wrap("find", err)
	}
	var out []*T
	if err := cur.All(ctx, &out); err != nil {
		return nil, s.wrap("decode", err)
	}
	return out, nil
}

func (s *Store[T]) filter(index string, values []string) (bson.D, error) {
	idx, ok := s.coll.Index(index)
	if !ok {
		return nil, fmt.Errorf("mongo %s: unknown index %q", s.coll.Name, index)
	}
	if len(values) != len(idx.Fields) {
		return nil, fmt.Errorf("mongo %s: index %q takes %d values, got %d", s.coll.Name, index, len(idx.Fields), len(values))
	}
	filter := make(bson.D, 0, len(values))
	for i, f := range idx.Fields {
		filter = append(filter, bson.E{Key: f, Value: values[i]})
	}
	return filter, nil
}

func (s *Store[T]) wrap(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrConflict, s.coll.Name, op, err)
	}
	return fmt.Errorf("mongo %s %s: %w", s.coll.Name, op, err)
}
