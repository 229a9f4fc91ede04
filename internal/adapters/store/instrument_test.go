package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store"
	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store/memstore"
	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/company"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/telemetry"
)

func TestNewID_Monotonic(t *testing.T) {
	t.Parallel()

	prev := store.NewID()
	for range 100 {
		next := store.NewID()
		if next <= prev {
			t.Fatalf("NewID() = %q after %q, want increasing ids", next, prev)
		}
		prev = next
	}
}

func TestInstrument_RecordsSpansAndDuration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	metrics, err := telemetry.NewMetrics(mp, "test")
	require.NoError(t, err)

	db, err := memstore.NewDB(memstore.Table(storetest.Collection))
	require.NoError(t, err)
	s := store.Instrument(memstore.New(db, storetest.Collection), tp.Tracer("test"), metrics.StoreOperationDuration)

	require.NoError(t, s.Insert(ctx, &company.Company{Name: "Acme"}))
	err = s.Insert(ctx, &company.Company{Name: "Acme"})
	require.True(t, errors.Is(err, domain.ErrConflict))

	ended := spans.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "store.companies.Insert", ended[0].Name())
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
	assert.Equal(t, codes.Error, ended[1].Status().Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	var points uint64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "store.operation.duration" {
				continue
			}
			hist, ok := m.Data.(metricdata.Histogram[float64])
			require.True(t, ok)
			for _, dp := range hist.DataPoints {
				points += dp.Count
			}
		}
	}
	assert.Equal(t, uint64(2), points)
}
