package report

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain/company"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/person"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/prospect"
	domainreport "github.com/jsamuelsen11/pipeline-crm/internal/domain/report"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
)

// ToAccountReportDTO converts an aggregate into the renderer's request body.
// Slices are never nil so the renderer always sees arrays.
func ToAccountReportDTO(r *domainreport.AccountReport) AccountReportDTO {
	sum := r.Summarize()
	out := AccountReportDTO{
		Locale:      r.Locale,
		GeneratedAt: formatTime(r.GeneratedAt),
		Summary: SummaryDTO{
			Leads:     int64(sum.Leads),
			Prospects: int64(sum.Prospects),
			OpenTodos: int64(sum.OpenTodos),
			Overdue:   int64(sum.Overdue),
		},
		Leads:     make([]ContactDTO, 0, len(r.Leads)),
		Prospects: make([]ContactDTO, 0, len(r.Prospects)),
		OpenTodos: make([]TodoDTO, 0, len(r.OpenTodos)),
	}

	if a := r.Account; a != nil {
		out.Account = AccountDTO{
			ID:            a.ID,
			Name:          a.Name,
			Description:   a.Description,
			OwnerID:       a.OwnerID,
			Collaborators: append([]string{}, a.Collaborators...),
		}
	}
	for _, l := range r.Leads {
		out.Leads = append(out.Leads, leadContact(l))
	}
	for _, p := range r.Prospects {
		out.Prospects = append(out.Prospects, prospectContact(p))
	}
	for _, t := range r.OpenTodos {
		out.OpenTodos = append(out.OpenTodos, toTodoDTO(t, r.GeneratedAt))
	}
	return out
}

func leadContact(l *lead.Lead) ContactDTO {
	c := ContactDTO{
		ID:          l.ID,
		Personality: string(l.Personality),
		Status:      string(l.Status),
	}
	withPerson(&c, l.Person)
	c.Company = companyName(l.Company)
	return c
}

// prospectContact prefers the scraped profile name and headline over the
// linked person record.
func prospectContact(p *prospect.Prospect) ContactDTO {
	c := ContactDTO{
		ID:          p.ID,
		Personality: string(p.Personality),
	}
	withPerson(&c, p.Person)
	if p.Name != "" {
		c.Name = p.Name
	}
	if p.Headline != "" {
		c.Title = p.Headline
	}
	c.ProfileURL = p.LinkedInURL
	c.Company = companyName(p.Company)
	return c
}

func withPerson(c *ContactDTO, p *person.Person) {
	if p == nil {
		return
	}
	c.Name = strings.TrimSpace(p.FirstName + " " + p.LastName)
	c.Title = p.Title
	c.Email = p.Email
	c.ProfileURL = p.LinkedInURL
}

func companyName(c *company.Company) string {
	if c == nil {
		return ""
	}
	return c.Name
}

func toTodoDTO(t *todo.Todo, now time.Time) TodoDTO {
	return TodoDTO{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		Scheduled: formatTime(t.Scheduled),
		Channel:   string(t.Channel),
		Type:      string(t.Type),
		Status:    string(t.Status),
		Assignee:  t.Assignee,
		Note:      t.Note,
		Link:      t.Link,
		Overdue:   !t.Scheduled.IsZero() && t.Scheduled.Before(now),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
