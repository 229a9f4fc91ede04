package app

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/pipeline-crm/internal/app/fanout"
	"github.com/jsamuelsen11/pipeline-crm/internal/app/lifecycle"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
)

// claimChild makes parentID the parent of a child linked by id. A child held
// by another parent is rejected under key; an orphan is adopted and saved so
// the parent index finds it.
func claimChild[F, T any](ctx context.Context, children *lifecycle.Engine[F, T], child *T, childID string, parent *string, parentID, key string) error {
	switch *parent {
	case parentID:
		return nil
	case "":
		*parent = parentID
		if err := children.Save(ctx, child); err != nil {
			return fmt.Errorf("adopting %s %s: %w", children.Entity(), childID, err)
		}
		return nil
	default:
		return &domain.RuleError{
			Key:  key,
			Args: []any{childID, *parent},
			Kind: domain.ErrConflict,
		}
	}
}

// linkedTodos loads the todos behind ids concurrently and returns them in
// schedule order. Ids whose todo no longer exists are skipped.
func linkedTodos(ctx context.Context, todos *lifecycle.Engine[todo.Form, todo.Todo], maxWorkers int, ids []string) ([]*todo.Todo, error) {
	results := fanout.Run(ctx, max(maxWorkers, 1), ids, func(ctx context.Context, id string) (*todo.Todo, error) {
		t, _, err := todos.Store().FindByID(ctx, id)
		return t, err
	})

	out := make([]*todo.Todo, 0, len(results))
	for i, r := range results {
		if r.Err != nil {
			return nil, fmt.Errorf("loading todo %s: %w", ids[i], r.Err)
		}
		if r.Value != nil {
			out = append(out, r.Value)
		}
	}
	slices.SortStableFunc(out, func(a, b *todo.Todo) int { return a.Scheduled.Compare(b.Scheduled) })
	return out, nil
}

func todoForms(todos []*todo.Todo) []todo.Form {
	p := todo.Projector{}
	forms := make([]todo.Form, 0, len(todos))
	for _, t := range todos {
		forms = append(forms, p.ToTransfer(t))
	}
	return forms
}

// byPosition orders values by an integer key.
func byPosition[T any](key func(T) int) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}
