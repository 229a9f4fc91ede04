package todo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
)

var fixedNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestHooks_BeforeInsert_DefaultsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   todo.Status
		want todo.Status
	}{
		{"absent becomes pending", "", todo.StatusPending},
		{"explicit kept", todo.StatusScheduled, todo.StatusScheduled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			td := &todo.Todo{Status: tt.in}
			if err := (todo.Hooks{Now: clock}).BeforeInsert(context.Background(), todo.Form{}, td); err != nil {
				t.Fatalf("BeforeInsert() error = %v", err)
			}
			if td.Status != tt.want {
				t.Errorf("Status = %q, want %q", td.Status, tt.want)
			}
		})
	}
}

func TestHooks_BeforeSave_CompletionDateCoupling(t *testing.T) {
	t.Parallel()

	earlier := fixedNow.Add(-72 * time.Hour)

	tests := []struct {
		name   string
		status todo.Status
		prior  *time.Time
		want   *time.Time
	}{
		{"completed stamps now", todo.StatusCompleted, nil, &fixedNow},
		{"completed keeps existing stamp", todo.StatusCompleted, &earlier, &earlier},
		{"pending clears", todo.StatusPending, &earlier, nil},
		{"in progress clears", todo.StatusInProgress, &earlier, nil},
		{"cancelled stays unset", todo.StatusCancelled, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			td := &todo.Todo{Status: tt.status, CompletionDate: tt.prior}
			if err := (todo.Hooks{Now: clock}).BeforeSave(context.Background(), td); err != nil {
				t.Fatalf("BeforeSave() error = %v", err)
			}
			switch {
			case tt.want == nil && td.CompletionDate != nil:
				t.Errorf("CompletionDate = %v, want nil", *td.CompletionDate)
			case tt.want != nil && td.CompletionDate == nil:
				t.Errorf("CompletionDate = nil, want %v", *tt.want)
			case tt.want != nil && !td.CompletionDate.Equal(*tt.want):
				t.Errorf("CompletionDate = %v, want %v", *td.CompletionDate, *tt.want)
			}
		})
	}
}

func TestProjector_MergeIgnoresCompletionDate(t *testing.T) {
	t.Parallel()

	stored := &todo.Todo{Status: todo.StatusPending, Note: "call back", Assignee: "u1"}
	forged := fixedNow
	todo.Projector{}.Merge(stored, todo.Form{Note: "call Tuesday", CompletionDate: &forged})

	if stored.CompletionDate != nil {
		t.Error("Merge() copied CompletionDate from the form")
	}
	if stored.Note != "call Tuesday" {
		t.Errorf("Note = %q, want %q", stored.Note, "call Tuesday")
	}
	if stored.Assignee != "u1" {
		t.Errorf("Assignee = %q, want untouched %q", stored.Assignee, "u1")
	}
}

func TestProjector_RoundTripKeepsManualFlag(t *testing.T) {
	t.Parallel()

	p := todo.Projector{}
	f := todo.Form{OwnerID: "p1", Scheduled: &fixedNow, Manual: domain.Ptr(true)}

	got := p.ToTransfer(p.ToEntity(f))
	if !got.IsManual() {
		t.Error("IsManual() = false after round trip, want true")
	}
	if got.Scheduled == nil || !got.Scheduled.Equal(fixedNow) {
		t.Errorf("Scheduled = %v, want %v", got.Scheduled, fixedNow)
	}
}
