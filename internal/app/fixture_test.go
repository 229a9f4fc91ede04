package app

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store/memstore"
)

var fixedNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newEngines builds every engine over a fresh in-memory database. wrap may
// replace stores before the engines are built.
func newEngines(t *testing.T, wrap ...func(*Stores)) *Engines {
	t.Helper()

	db, err := memstore.NewDB(
		memstore.Table(AccountCollection),
		memstore.Table(CompanyCollection),
		memstore.Table(PersonCollection),
		memstore.Table(LeadCollection),
		memstore.Table(ProspectCollection),
		memstore.Table(CampaignCollection),
		memstore.Table(SequenceCollection),
		memstore.Table(StepCollection),
		memstore.Table(TodoCollection),
		memstore.Table(InteractionCollection),
	)
	require.NoError(t, err)

	stores := Stores{
		Accounts:     memstore.New(db, AccountCollection),
		Companies:    memstore.New(db, CompanyCollection),
		People:       memstore.New(db, PersonCollection),
		Leads:        memstore.New(db, LeadCollection),
		Prospects:    memstore.New(db, ProspectCollection),
		Campaigns:    memstore.New(db, CampaignCollection),
		Sequences:    memstore.New(db, SequenceCollection),
		Steps:        memstore.New(db, StepCollection),
		Todos:        memstore.New(db, TodoCollection),
		Interactions: memstore.New(db, InteractionCollection),
	}
	for _, w := range wrap {
		w(&stores)
	}

	e, err := NewEngines(stores, clock, discardLogger())
	require.NoError(t, err)
	return e
}
