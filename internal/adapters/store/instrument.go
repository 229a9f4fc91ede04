package store

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/pipeline-crm/internal/platform/telemetry"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Instrumented wraps a ports.Store with a span and a duration measurement
// per operation.
type Instrumented[T any] struct {
	next     ports.Store[T]
	tracer   trace.Tracer
	duration metric.Float64Histogram
}

// Instrument decorates next. A nil duration histogram disables metrics.
func Instrument[T any](next ports.Store[T], tracer trace.Tracer, duration metric.Float64Histogram) *Instrumented[T] {
	return &Instrumented[T]{next: next, tracer: tracer, duration: duration}
}

// Collection returns the wrapped store's collection.
func (s *Instrumented[T]) Collection() ports.Collection[T] { return s.next.Collection() }

// FindByID traces the wrapped FindByID.
func (s *Instrumented[T]) FindByID(ctx context.Context, id string) (v *T, found bool, err error) {
	ctx, done := s.start(ctx, "FindByID", attribute.String("entity.id", id))
	defer func() { done(err) }()
	return s.next.FindByID(ctx, id)
}

// FindAll traces the wrapped FindAll.
func (s *Instrumented[T]) FindAll(ctx context.Context) (v []*T, err error) {
	ctx, done := s.start(ctx, "FindAll")
	defer func() { done(err) }()
	return s.next.FindAll(ctx)
}

// FindOne traces the wrapped FindOne.
func (s *Instrumented[T]) FindOne(ctx context.Context, index string, values ...string) (v *T, found bool, err error) {
	ctx, done := s.start(ctx, "FindOne", attribute.String("store.index", index))
	defer func() { done(err) }()
	return s.next.FindOne(ctx, index, values...)
}

// FindBy traces the wrapped FindBy.
func (s *Instrumented[T]) FindBy(ctx context.Context, index string, values ...string) (v []*T, err error) {
	ctx, done := s.start(ctx, "FindBy", attribute.String("store.index", index))
	defer func() { done(err) }()
	return s.next.FindBy(ctx, index, values...)
}

// Insert traces the wrapped Insert.
func (s *Instrumented[T]) Insert(ctx context.Context, entity *T) (err error) {
	ctx, done := s.start(ctx, "Insert")
	defer func() { done(err) }()
	return s.next.Insert(ctx, entity)
}

// Save traces the wrapped Save.
func (s *Instrumented[T]) Save(ctx context.Context, entity *T) (err error) {
	ctx, done := s.start(ctx, "Save", attribute.String("entity.id", s.next.Collection().Base(entity).ID))
	defer func() { done(err) }()
	return s.next.Save(ctx, entity)
}

// DeleteByID traces the wrapped DeleteByID.
func (s *Instrumented[T]) DeleteByID(ctx context.Context, id string) (err error) {
	ctx, done := s.start(ctx, "DeleteByID", attribute.String("entity.id", id))
	defer func() { done(err) }()
	return s.next.DeleteByID(ctx, id)
}

func (s *Instrumented[T]) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	coll := s.next.Collection().Name
	base := []attribute.KeyValue{
		telemetry.AttrStoreCollection.String(coll),
		telemetry.AttrStoreOperation.String(op),
	}

	ctx, span := s.tracer.Start(ctx, "store."+coll+"."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(base, attrs...)...),
	)
	start := time.Now()

	return ctx, func(err error) {
		result := "success"
		if err != nil {
			result = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		if s.duration != nil {
			s.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
				append(base, telemetry.AttrResult.String(result))...,
			))
		}
	}
}
