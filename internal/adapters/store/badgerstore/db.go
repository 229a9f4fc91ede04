// Package badgerstore implements ports.Store on dgraph-io/badger. Records are
// BSON documents under "<collection>/d/<id>"; unique indexes map
// "<collection>/u/<index>/<values>" to an id and other indexes keep one empty
// key per record under "<collection>/i/<index>/<values>/<id>".
package badgerstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v3"
)

// Options configures Open.
type Options struct {
	// Dir is the data directory. Ignored when InMemory is set.
	Dir      string
	InMemory bool
	Logger   *slog.Logger
}

// Open opens a badger database.
func Open(opts Options) (*badger.DB, error) {
	bopts := badger.DefaultOptions(opts.Dir).WithInMemory(opts.InMemory)
	if opts.InMemory {
		bopts = bopts.WithDir("").WithValueDir("")
	}
	if opts.Logger != nil {
		bopts = bopts.WithLogger(slogAdapter{opts.Logger})
	} else {
		bopts = bopts.WithLogger(nil)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("opening badger: %w", err)
	}
	return db, nil
}

// Health reports whether the database is open.
type Health struct {
	DB *badger.DB
}

// Name returns the checker name.
func (Health) Name() string { return "store" }

// HealthCheck fails once the database has been closed.
func (h Health) HealthCheck(_ context.Context) error {
	if h.DB.IsClosed() {
		return errors.New("badger database is closed")
	}
	return nil
}

// slogAdapter routes badger's printf-style logging into slog. Badger's info
// output is chatty, so it is logged at debug.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Errorf(format string, args ...any) {
	a.logger.Error(trim(format, args...), slog.String("component", "badger"))
}

func (a slogAdapter) Warningf(format string, args ...any) {
	a.logger.Warn(trim(format, args...), slog.String("component", "badger"))
}

func (a slogAdapter) Infof(format string, args ...any) {
	a.logger.Debug(trim(format, args...), slog.String("component", "badger"))
}

func (a slogAdapter) Debugf(format string, args ...any) {
	a.logger.Debug(trim(format, args...), slog.String("component", "badger"))
}

func trim(format string, args ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
