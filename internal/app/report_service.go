package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/pipeline-crm/internal/app/fanout"
	"github.com/jsamuelsen11/pipeline-crm/internal/app/lifecycle"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/account"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/prospect"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/report"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Compile-time check that ReportService implements ports.ReportService.
var _ ports.ReportService = (*ReportService)(nil)

// ReportService aggregates an account's pipeline and hands it to the remote
// renderer.
type ReportService struct {
	accounts   *lifecycle.Engine[account.Form, account.Account]
	leads      *lifecycle.Engine[lead.Form, lead.Lead]
	prospects  *lifecycle.Engine[prospect.Form, prospect.Prospect]
	todos      *lifecycle.Engine[todo.Form, todo.Todo]
	client     ports.ReportClient
	maxWorkers int
	logger     *slog.Logger
}

// NewReportService creates a ReportService.
func NewReportService(
	accounts *lifecycle.Engine[account.Form, account.Account],
	leads *lifecycle.Engine[lead.Form, lead.Lead],
	prospects *lifecycle.Engine[prospect.Form, prospect.Prospect],
	todos *lifecycle.Engine[todo.Form, todo.Todo],
	client ports.ReportClient,
	maxWorkers int,
	logger *slog.Logger,
) *ReportService {
	return &ReportService{
		accounts:   accounts,
		leads:      leads,
		prospects:  prospects,
		todos:      todos,
		client:     client,
		maxWorkers: max(maxWorkers, 1),
		logger:     logger.With(slog.String("service", "report")),
	}
}

// AccountReport renders the account's leads, prospects and open todos.
func (s *ReportService) AccountReport(ctx context.Context, accountID, locale string) ([]byte, error) {
	s.logger.InfoContext(ctx, "rendering account report",
		slog.String("account_id", accountID),
		slog.String("locale", locale),
	)

	r, err := s.build(ctx, accountID, locale)
	if err != nil {
		logFailure(ctx, s.logger, "AccountReport", err, slog.String("account_id", accountID))
		return nil, err
	}

	pdf, err := s.client.RenderAccountReport(ctx, r)
	if err != nil {
		logFailure(ctx, s.logger, "AccountReport", err, slog.String("account_id", accountID))
		return nil, fmt.Errorf("rendering report: %w", err)
	}

	sum := r.Summarize()
	s.logger.InfoContext(ctx, "account report rendered",
		slog.String("account_id", accountID),
		slog.Int("leads", sum.Leads),
		slog.Int("prospects", sum.Prospects),
		slog.Int("open_todos", sum.OpenTodos),
		slog.Int("bytes", len(pdf)),
	)
	return pdf, nil
}

func (s *ReportService) build(ctx context.Context, accountID, locale string) (*report.AccountReport, error) {
	acct, err := s.accounts.Load(ctx, accountID)
	if err != nil {
		return nil, err
	}
	leads, err := s.leads.Store().FindBy(ctx, IndexAccount, accountID)
	if err != nil {
		return nil, fmt.Errorf("loading leads: %w", err)
	}
	prospects, err := s.prospects.Store().FindBy(ctx, IndexAccount, accountID)
	if err != nil {
		return nil, fmt.Errorf("loading prospects: %w", err)
	}

	owners := make([]string, 0, len(leads)+len(prospects))
	for _, l := range leads {
		owners = append(owners, l.ID)
	}
	for _, p := range prospects {
		owners = append(owners, p.ID)
	}

	open, err := s.openTodos(ctx, owners)
	if err != nil {
		return nil, err
	}

	return &report.AccountReport{
		Account:     acct,
		Leads:       leads,
		Prospects:   prospects,
		OpenTodos:   open,
		GeneratedAt: s.todos.Now(),
		Locale:      locale,
	}, nil
}

// openTodos loads the todos of every owner concurrently and keeps the open
// ones in schedule order.
func (s *ReportService) openTodos(ctx context.Context, owners []string) ([]*todo.Todo, error) {
	results := fanout.Run(ctx, s.maxWorkers, owners, func(ctx context.Context, owner string) ([]*todo.Todo, error) {
		return s.todos.Store().FindBy(ctx, IndexOwner, owner)
	})

	var open []*todo.Todo
	for i, r := range results {
		if r.Err != nil {
			return nil, fmt.Errorf("loading todos for %s: %w", owners[i], r.Err)
		}
		for _, t := range r.Value {
			if t.Status.IsOpen() {
				open = append(open, t)
			}
		}
	}
	slices.SortStableFunc(open, func(a, b *todo.Todo) int { return a.Scheduled.Compare(b.Scheduled) })
	return open, nil
}
