// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/account"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/company"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/interaction"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/person"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/sequence"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/i18n"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Accounts     *handlers.EntityHandler[account.Form]
	Companies    *handlers.EntityHandler[company.Form]
	People       *handlers.EntityHandler[person.Form]
	Steps        *handlers.EntityHandler[sequence.StepForm]
	Interactions *handlers.EntityHandler[interaction.Form]
	Leads        *handlers.LeadHandler
	Prospects    *handlers.ProspectHandler
	Campaigns    *handlers.CampaignHandler
	Sequences    *handlers.SequenceHandler
	Todos        *handlers.TodoHandler
	Schedule     *handlers.ScheduleHandler
	Reports      *handlers.ReportHandler
	Health       *handlers.HealthHandler
}

// crud is the route set every entity shares.
type crud interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func mountCRUD(r chi.Router, h crud) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown routes and
// methods are answered with problem responses like any other failure.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, dto.NewStatusResponse(r, http.StatusNotFound, i18n.KeyNotFoundRoute))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, dto.NewStatusResponse(r, http.StatusMethodNotAllowed, i18n.KeyMethodNotAllowed))
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			mountCRUD(r, h.Accounts)
			r.Get("/{id}/report", h.Reports.AccountReport)
		})
		r.Route("/companies", func(r chi.Router) { mountCRUD(r, h.Companies) })
		r.Route("/people", func(r chi.Router) { mountCRUD(r, h.People) })
		r.Route("/steps", func(r chi.Router) { mountCRUD(r, h.Steps) })
		r.Route("/interactions", func(r chi.Router) { mountCRUD(r, h.Interactions) })

		r.Route("/leads", func(r chi.Router) {
			mountCRUD(r, h.Leads)
			r.Get("/{id}/todos", h.Leads.ListTodos)
			r.Post("/{id}/schedule/preview", h.Schedule.Preview(ports.TargetLead))
			r.Post("/{id}/schedule/commit", h.Schedule.Commit(ports.TargetLead))
		})

		r.Route("/prospects", func(r chi.Router) {
			mountCRUD(r, h.Prospects)
			r.Get("/{id}/todos", h.Prospects.ListTodos)
			r.Get("/{id}/interactions", h.Prospects.ListInteractions)
			r.Post("/{id}/interactions", h.Prospects.AddInteraction)
			r.Post("/{id}/schedule/preview", h.Schedule.Preview(ports.TargetProspect))
			r.Post("/{id}/schedule/commit", h.Schedule.Commit(ports.TargetProspect))
		})

		r.Route("/campaigns", func(r chi.Router) {
			mountCRUD(r, h.Campaigns)
			r.Post("/{id}/prospects", h.Campaigns.AddProspect)
		})

		r.Route("/sequences", func(r chi.Router) {
			mountCRUD(r, h.Sequences)
			r.Get("/{id}/steps", h.Sequences.ListSteps)
			r.Post("/{id}/steps", h.Sequences.AddStep)
			r.Put("/{id}/users", h.Sequences.SetUsers)
		})

		r.Route("/todos", func(r chi.Router) {
			mountCRUD(r, h.Todos)
			r.Patch("/", h.Todos.BulkUpdate)
		})
	})

	return r
}
