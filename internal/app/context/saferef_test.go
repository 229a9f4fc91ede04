package appctx_test

import (
	"sync"
	"testing"

	appctx "github.com/jsamuelsen11/pipeline-crm/internal/app/context"
)

func TestSafeRef_GetSet(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef("PENDING")
	if got := ref.Get(); got != "PENDING" {
		t.Fatalf("Get() = %q, want PENDING", got)
	}
	ref.Set("SCHEDULED")
	if got := ref.Get(); got != "SCHEDULED" {
		t.Errorf("Get() after Set = %q, want SCHEDULED", got)
	}
}

func TestSafeRef_ConcurrentSlots(t *testing.T) {
	t.Parallel()

	const n = 64
	ref := appctx.NewRef(make([]string, n))

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref.Update(func(s *[]string) { (*s)[i] = "todo" })
			_ = ref.Get()
		}()
	}
	wg.Wait()

	for i, v := range ref.Get() {
		if v != "todo" {
			t.Fatalf("slot %d = %q, want todo", i, v)
		}
	}
}

func TestSafeRef_ConcurrentUpdates(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef(0)
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref.Update(func(v *int) { *v++ })
		}()
	}
	wg.Wait()

	if got := ref.Get(); got != 100 {
		t.Errorf("Get() = %d, want 100", got)
	}
}
