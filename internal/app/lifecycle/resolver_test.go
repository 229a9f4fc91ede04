package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store/memstore"
	"github.com/jsamuelsen11/pipeline-crm/internal/app"
	"github.com/jsamuelsen11/pipeline-crm/internal/app/lifecycle"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/company"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
)

func TestSharedResolver_ReusesByNaturalKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newCompanyStore(t)
	r, err := lifecycle.NewSharedResolver(store, clock)
	require.NoError(t, err)

	first := &company.Company{Name: "Acme", Industry: "retail"}
	firstCalled := false
	require.NoError(t, r.OnSave(ctx, first, func(*company.Company) { firstCalled = true }))

	assert.False(t, firstCalled, "continuation is not called for a fresh insert")
	require.NotEmpty(t, first.ID)
	assert.Equal(t, fixedNow, first.Created)

	second := &company.Company{Name: "Acme", Industry: "something else"}
	var resolved *company.Company
	require.NoError(t, r.OnSave(ctx, second, func(c *company.Company) { resolved = c }))

	require.NotNil(t, resolved)
	assert.Equal(t, first.ID, resolved.ID)
	assert.Equal(t, "retail", resolved.Industry, "the stored record wins over the discarded child")
	assert.Empty(t, second.ID)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSharedResolver_IdentifiedChildIsSaved(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newCompanyStore(t)
	r, err := lifecycle.NewSharedResolver(store, clock)
	require.NoError(t, err)

	c := &company.Company{Name: "Acme"}
	c.StampCreated(fixedNow.Add(-time.Hour))
	require.NoError(t, store.Insert(ctx, c))

	c.Industry = "logistics"
	var resolved *company.Company
	require.NoError(t, r.OnSave(ctx, c, func(v *company.Company) { resolved = v }))

	assert.Same(t, c, resolved)
	stored, _, err := store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "logistics", stored.Industry)
	assert.Equal(t, fixedNow, stored.Updated)
	assert.Equal(t, fixedNow.Add(-time.Hour), stored.Created)
}

func TestSharedResolver_NilChild(t *testing.T) {
	t.Parallel()

	r, err := lifecycle.NewSharedResolver(newCompanyStore(t), clock)
	require.NoError(t, err)

	err = r.OnSave(context.Background(), nil, func(*company.Company) { t.Error("continuation called for nil child") })
	assert.NoError(t, err)
}

func TestSharedResolver_Refresh(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newCompanyStore(t)
	r, err := lifecycle.NewSharedResolver(store, clock)
	require.NoError(t, err)

	canonical := &company.Company{Name: "Acme", Headcount: 60}
	require.NoError(t, store.Insert(ctx, canonical))

	tests := []struct {
		name          string
		child         *company.Company
		wantHeadcount int
		wantCalled    bool
	}{
		{name: "stale copy", child: &company.Company{Base: domain.Base{ID: canonical.ID}, Name: "Acme", Headcount: 50}, wantHeadcount: 60, wantCalled: true},
		{name: "unidentified", child: &company.Company{Name: "Acme", Headcount: 50}},
		{name: "unknown id", child: &company.Company{Base: domain.Base{ID: "gone"}, Name: "Acme", Headcount: 50}},
		{name: "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *company.Company
			require.NoError(t, r.Refresh(ctx, tt.child, func(c *company.Company) { got = c }))

			assert.Equal(t, tt.wantCalled, got != nil)
			if tt.wantCalled {
				assert.Equal(t, tt.wantHeadcount, got.Headcount)
			}
		})
	}

	stored, _, err := store.FindByID(ctx, canonical.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, stored.Headcount, "refresh never writes")
	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestNewSharedResolver_RequiresNaturalKey(t *testing.T) {
	t.Parallel()

	db, err := memstore.NewDB(memstore.Table(app.TodoCollection))
	require.NoError(t, err)

	_, err = lifecycle.NewSharedResolver(memstore.New(db, app.TodoCollection), clock)
	assert.Error(t, err)
}

func newTodoResolver(t *testing.T) (*lifecycle.StrongResolver[todo.Form, todo.Todo], *lifecycle.Engine[todo.Form, todo.Todo]) {
	t.Helper()
	db, err := memstore.NewDB(memstore.Table(app.TodoCollection))
	require.NoError(t, err)

	e, err := lifecycle.NewEngine(lifecycle.Config[todo.Form, todo.Todo]{
		Entity:    todo.EntityName,
		Store:     memstore.New(db, app.TodoCollection),
		Projector: todo.Projector{},
		Clock:     clock,
	}, lifecycle.WithHooks(todo.Hooks{Now: clock}))
	require.NoError(t, err)
	return lifecycle.NewStrongResolver(e), e
}

func TestStrongResolver_InsertsUnidentified(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r, e := newTodoResolver(t)

	var linked []string
	link := func(td *todo.Todo) { linked = append(linked, td.ID) }

	// Identical content is never deduplicated.
	a := &todo.Todo{OwnerID: "p1", Note: "call"}
	b := &todo.Todo{OwnerID: "p1", Note: "call"}
	require.NoError(t, r.OnSave(ctx, a, link))
	require.NoError(t, r.OnSave(ctx, b, link))

	require.Len(t, linked, 2)
	assert.NotEqual(t, linked[0], linked[1])

	stored, err := e.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.StatusPending, stored.Status, "insert hooks run")
	assert.Equal(t, fixedNow, stored.Created)
}

func TestStrongResolver_IdentifiedChild(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r, e := newTodoResolver(t)

	created, err := e.Create(ctx, todo.Form{OwnerID: "p1", Scheduled: domain.Ptr(fixedNow)})
	require.NoError(t, err)

	var got *todo.Todo
	require.NoError(t, r.OnSave(ctx, &todo.Todo{Base: domain.Base{ID: created.ID}}, func(td *todo.Todo) { got = td }))
	require.NotNil(t, got)
	assert.Equal(t, "p1", got.OwnerID, "continuation receives the stored record")

	stale := &todo.Todo{Base: domain.Base{ID: "01HSTALE000000000000000000"}}
	err = r.OnSave(ctx, stale, func(*todo.Todo) { t.Error("continuation called for a stale id") })
	assert.NoError(t, err, "a stale id is skipped silently")
}
