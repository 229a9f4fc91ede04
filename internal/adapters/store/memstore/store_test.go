package memstore_test

import (
	"testing"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store/memstore"
	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/company"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

func TestStore_Conformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) ports.Store[company.Company] {
		t.Helper()
		db, err := memstore.NewDB(memstore.Table(storetest.Collection))
		if err != nil {
			t.Fatalf("NewDB() error = %v", err)
		}
		return memstore.New(db, storetest.Collection)
	})
}

func TestFindOne_UnknownIndex(t *testing.T) {
	t.Parallel()

	db, err := memstore.NewDB(memstore.Table(storetest.Collection))
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	s := memstore.New(db, storetest.Collection)

	if _, _, err := s.FindOne(t.Context(), "no-such-index", "x"); err == nil {
		t.Error("FindOne on an unknown index should fail")
	}
}
