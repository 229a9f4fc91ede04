// Package report defines the account report aggregate handed to the remote
// renderer.
package report

import (
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain/account"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/prospect"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
)

// AccountReport is a point-in-time view of an account's pipeline.
type AccountReport struct {
	Account     *account.Account
	Leads       []*lead.Lead
	Prospects   []*prospect.Prospect
	OpenTodos   []*todo.Todo
	GeneratedAt time.Time
	Locale      string
}

// Summary counts the report contents.
type Summary struct {
	Leads     int
	Prospects int
	OpenTodos int
	Overdue   int
}

// Summarize counts leads, prospects and open todos. A todo is overdue when
// its scheduled time is before GeneratedAt.
func (r *AccountReport) Summarize() Summary {
	s := Summary{
		Leads:     len(r.Leads),
		Prospects: len(r.Prospects),
		OpenTodos: len(r.OpenTodos),
	}
	for _, t := range r.OpenTodos {
		if !t.Scheduled.IsZero() && t.Scheduled.Before(r.GeneratedAt) {
			s.Overdue++
		}
	}
	return s
}
