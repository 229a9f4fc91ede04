// Package appctx provides the request-scoped context used by orchestration
// services.
//
// A RequestContext memoizes lookups for the life of one request and stages
// multi-record writes as actions that Commit runs in order, rolling back the
// completed ones when a later action fails. Committing a schedule is the
// canonical use:
//
//	rc := appctx.FromContextOrNew(ctx)
//	owner, err := appctx.GetOrFetch(rc, "lead:"+id, loadLead)
//
//	rc.AddGroup(inserts...)    // todo inserts run in parallel
//	rc.AddAction(linkOwner)    // owner save runs last
//
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// Compile-time check that RequestContext implements domain.WriteStager.
var _ domain.WriteStager = (*RequestContext)(nil)

// ErrAlreadyCommitted is returned when AddAction, AddGroup, Stage or Commit
// is called on a RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is passed to AddAction, AddGroup
// or Stage.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext wraps a context.Context with a lookup cache and a queue of
// staged actions. The cache is meant for the request goroutine; the queue may
// be appended to concurrently.
type RequestContext struct {
	context.Context

	cache map[string]cacheEntry

	queueMu   sync.Mutex
	items     []actionItem
	committed bool
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
type cacheEntry struct {
	value any
	err   error
}

type contextKey struct{}

// New creates an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, if any.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(contextKey{}).(*RequestContext)
	return rc, ok && rc != nil
}

// FromContextOrNew returns the RequestContext stored in ctx, or a fresh one
// when the caller runs outside an HTTP request.
func FromContextOrNew(ctx context.Context) *RequestContext {
	if rc, ok := FromContext(ctx); ok {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns the cached value for key, or calls fetchFn and caches
// its result. Errors are cached too, so a failed lookup is not repeated
// within the request.
//
// The same key must always be used with the same type T; a mismatch returns
// ErrTypeMismatch.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Forget drops key from the cache.
func (rc *RequestContext) Forget(key string) {
	delete(rc.cache, key)
}

// DataProvider binds a cache key to its fetch function.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Get is GetOrFetch with the provider's key and fetch function.
func (p *DataProvider[T]) Get(rc *RequestContext) (T, error) {
	return GetOrFetch(rc, p.key, p.fetchFn)
}

// Stage caches entity under key and queues action, so later lookups in the
// same request see the pending write.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.cache[key] = cacheEntry{value: entity}
	rc.items = append(rc.items, &singleAction{action: action})
	return nil
}

// Execute runs action immediately, outside the commit queue.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}
