// Package storetest is a conformance suite for ports.Store adapters.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/company"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Index names of Collection.
const (
	IndexName     = "name"
	IndexIndustry = "industry"
)

// Collection is the descriptor the suite runs against: companies with a
// unique name and a non-unique industry index.
var Collection = ports.Collection[company.Company]{
	Name: "companies",
	Base: func(c *company.Company) *domain.Base { return &c.Base },
	Indexes: []ports.Index[company.Company]{
		{
			Name: IndexName, Fields: []string{"name"}, Unique: true,
			Values: func(c *company.Company) []string { return []string{c.Name} },
		},
		{
			Name: IndexIndustry, Fields: []string{"industry"},
			Values: func(c *company.Company) []string { return []string{c.Industry} },
		},
	},
}

// Opener returns an empty store over Collection.
type Opener func(t *testing.T) ports.Store[company.Company]

// Run runs the suite. Every subtest opens its own store.
func Run(t *testing.T, open Opener) {
	t.Helper()

	ctx := context.Background()
	stamp := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	t.Run("insert assigns id", func(t *testing.T) {
		s := open(t)
		c := &company.Company{Name: "Acme", Headcount: 50}
		c.StampCreated(stamp)

		require.NoError(t, s.Insert(ctx, c))
		require.NotEmpty(t, c.ID)

		got, found, err := s.FindByID(ctx, c.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Acme", got.Name)
		assert.Equal(t, 50, got.Headcount)
		assert.True(t, got.Created.Equal(stamp), "Created = %v, want %v", got.Created, stamp)
	})

	t.Run("find by id miss", func(t *testing.T) {
		s := open(t)
		got, found, err := s.FindByID(ctx, "01HZZZZZZZZZZZZZZZZZZZZZZZ")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, got)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		s := open(t)
		c := &company.Company{Name: "Acme"}
		require.NoError(t, s.Insert(ctx, c))

		c.Name = "mutated after insert"
		got, _, err := s.FindByID(ctx, c.ID)
		require.NoError(t, err)
		got.Industry = "mutated after read"

		again, _, err := s.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme", again.Name)
		assert.Empty(t, again.Industry)
	})

	t.Run("unique index rejects duplicate insert", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Insert(ctx, &company.Company{Name: "Acme"}))

		err := s.Insert(ctx, &company.Company{Name: "Acme"})
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("Insert(duplicate) error = %v, want ErrConflict", err)
		}

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("empty natural key is not constrained", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Insert(ctx, &company.Company{Industry: "retail"}))
		require.NoError(t, s.Insert(ctx, &company.Company{Industry: "retail"}))

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("find one by natural key", func(t *testing.T) {
		s := open(t)
		c := &company.Company{Name: "Acme"}
		require.NoError(t, s.Insert(ctx, c))

		got, found, err := s.FindOne(ctx, IndexName, "Acme")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, c.ID, got.ID)

		_, found, err = s.FindOne(ctx, IndexName, "Globex")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("save moves index entries", func(t *testing.T) {
		s := open(t)
		c := &company.Company{Name: "Acme", Industry: "retail"}
		require.NoError(t, s.Insert(ctx, c))

		c.Name = "Acme Corp"
		c.Industry = "logistics"
		require.NoError(t, s.Save(ctx, c))

		_, found, err := s.FindOne(ctx, IndexName, "Acme")
		require.NoError(t, err)
		assert.False(t, found, "old natural key must be released")

		got, found, err := s.FindOne(ctx, IndexName, "Acme Corp")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, c.ID, got.ID)

		retail, err := s.FindBy(ctx, IndexIndustry, "retail")
		require.NoError(t, err)
		assert.Empty(t, retail)

		require.NoError(t, s.Insert(ctx, &company.Company{Name: "Acme"}), "released key is reusable")
	})

	t.Run("save conflicting natural key", func(t *testing.T) {
		s := open(t)
		a := &company.Company{Name: "Acme"}
		b := &company.Company{Name: "Globex"}
		require.NoError(t, s.Insert(ctx, a))
		require.NoError(t, s.Insert(ctx, b))

		b.Name = "Acme"
		if err := s.Save(ctx, b); !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("Save(conflict) error = %v, want ErrConflict", err)
		}

		got, _, err := s.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Globex", got.Name)
	})

	t.Run("save unknown id", func(t *testing.T) {
		s := open(t)
		c := &company.Company{Base: domain.Base{ID: "missing"}, Name: "Acme"}
		if err := s.Save(ctx, c); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Save(unknown) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("find by non-unique index", func(t *testing.T) {
		s := open(t)
		a := &company.Company{Name: "Acme", Industry: "retail"}
		b := &company.Company{Name: "Globex", Industry: "retail"}
		c := &company.Company{Name: "Initech", Industry: "software"}
		for _, v := range []*company.Company{a, b, c} {
			require.NoError(t, s.Insert(ctx, v))
		}

		got, err := s.FindBy(ctx, IndexIndustry, "retail")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.ElementsMatch(t, []string{a.ID, b.ID}, []string{got[0].ID, got[1].ID})
	})

	t.Run("find all in creation order", func(t *testing.T) {
		s := open(t)
		names := []string{"Acme", "Globex", "Initech"}
		for _, n := range names {
			require.NoError(t, s.Insert(ctx, &company.Company{Name: n}))
		}

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		got := make([]string, 0, len(all))
		for _, c := range all {
			got = append(got, c.Name)
		}
		assert.Equal(t, names, got)
	})

	t.Run("delete removes record and index entries", func(t *testing.T) {
		s := open(t)
		c := &company.Company{Name: "Acme", Industry: "retail"}
		require.NoError(t, s.Insert(ctx, c))

		require.NoError(t, s.DeleteByID(ctx, c.ID))
		require.NoError(t, s.DeleteByID(ctx, c.ID), "deleting twice is not an error")

		_, found, err := s.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.False(t, found)

		_, found, err = s.FindOne(ctx, IndexName, "Acme")
		require.NoError(t, err)
		assert.False(t, found)

		byIndustry, err := s.FindBy(ctx, IndexIndustry, "retail")
		require.NoError(t, err)
		assert.Empty(t, byIndustry)
	})
}
