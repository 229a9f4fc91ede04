package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/company"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/person"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
)

func TestLeadService_Create_ReusesCompanyByName(t *testing.T) {
	t.Parallel()
	e := newEngines(t)
	svc := NewLeadService(e.Leads, e.Todos, 4, discardLogger())
	ctx := t.Context()

	first, err := svc.Create(ctx, lead.Form{
		AccountID: "acct-1",
		Company:   &company.Form{Name: "Acme", Headcount: domain.Ptr(50)},
		Person:    &person.Form{FirstName: "Ada", LinkedInURL: "https://linkedin.com/in/ada"},
	})
	require.NoError(t, err)
	second, err := svc.Create(ctx, lead.Form{
		AccountID: "acct-1",
		Company:   &company.Form{Name: "Acme"},
		Person:    &person.Form{FirstName: "Ada", LinkedInURL: "https://linkedin.com/in/ada"},
	})
	require.NoError(t, err)

	assert.Equal(t, first.Company.ID, second.Company.ID, "company reused by name")
	assert.Equal(t, first.Person.ID, second.Person.ID, "person reused by LinkedIn URL")
	assert.Equal(t, 50, domain.Deref(second.Company.Headcount), "canonical record replaces the embedded copy")
	assert.Equal(t, lead.StatusNew, second.Status)

	companies, err := e.Companies.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}

func TestLeadService_ListTodos(t *testing.T) {
	t.Parallel()
	e := newEngines(t)
	svc := NewLeadService(e.Leads, e.Todos, 2, discardLogger())
	ctx := t.Context()

	l, err := svc.Create(ctx, lead.Form{AccountID: "acct-1"})
	require.NoError(t, err)

	late := fixedNow.AddDate(0, 0, 3)
	early := fixedNow.AddDate(0, 0, 1)
	a, err := e.Todos.Create(ctx, todo.Form{OwnerID: l.ID, Scheduled: &late})
	require.NoError(t, err)
	b, err := e.Todos.Create(ctx, todo.Form{OwnerID: l.ID, Scheduled: &early})
	require.NoError(t, err)

	stored, err := e.Leads.Load(ctx, l.ID)
	require.NoError(t, err)
	stored.TodoIDs = []string{a.ID, "stale", b.ID}
	require.NoError(t, e.Leads.Save(ctx, stored))

	got, err := svc.ListTodos(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, got, 2, "stale ids are skipped")
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)

	_, err = svc.ListTodos(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLeadService_Update_SwitchesCompanyByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		company       string
		wantExisting  bool
		wantCompanies int
	}{
		{name: "existing company", company: "Globex", wantExisting: true, wantCompanies: 2},
		{name: "new company", company: "Initech", wantCompanies: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEngines(t)
			svc := NewLeadService(e.Leads, e.Todos, 4, discardLogger())
			ctx := t.Context()

			acme, err := svc.Create(ctx, lead.Form{AccountID: "acct-1", Company: &company.Form{Name: "Acme", Headcount: domain.Ptr(50)}})
			require.NoError(t, err)
			globex, err := svc.Create(ctx, lead.Form{AccountID: "acct-1", Company: &company.Form{Name: "Globex", Headcount: domain.Ptr(200)}})
			require.NoError(t, err)

			got, err := svc.Update(ctx, acme.ID, lead.Form{Company: &company.Form{Name: tt.company}})
			require.NoError(t, err)

			require.NotNil(t, got.Company)
			assert.Equal(t, tt.company, got.Company.Name)
			assert.NotEqual(t, acme.Company.ID, got.Company.ID, "the lead moves to another company")
			if tt.wantExisting {
				assert.Equal(t, globex.Company.ID, got.Company.ID)
				assert.Equal(t, 200, domain.Deref(got.Company.Headcount))
			}

			stored, err := e.Companies.FindByID(ctx, acme.Company.ID)
			require.NoError(t, err)
			assert.Equal(t, "Acme", stored.Name, "the previous company is not renamed")
			assert.Equal(t, 50, domain.Deref(stored.Headcount))

			companies, err := e.Companies.FindAll(ctx)
			require.NoError(t, err)
			assert.Len(t, companies, tt.wantCompanies)
		})
	}
}

func TestLeadService_SharedCompanyIsNotReverted(t *testing.T) {
	t.Parallel()
	e := newEngines(t)
	svc := NewLeadService(e.Leads, e.Todos, 4, discardLogger())
	ctx := t.Context()

	first, err := svc.Create(ctx, lead.Form{AccountID: "acct-1", Company: &company.Form{Name: "Acme", Headcount: domain.Ptr(50)}})
	require.NoError(t, err)
	second, err := svc.Create(ctx, lead.Form{AccountID: "acct-1", Company: &company.Form{Name: "Acme"}})
	require.NoError(t, err)
	companyID := first.Company.ID

	// Loaded before the other lead edits the company.
	stale, err := e.Leads.Load(ctx, first.ID)
	require.NoError(t, err)

	_, err = svc.Update(ctx, second.ID, lead.Form{Company: &company.Form{Headcount: domain.Ptr(60)}})
	require.NoError(t, err)

	requireHeadcount := func(t *testing.T, want int) {
		t.Helper()
		stored, err := e.Companies.FindByID(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, want, domain.Deref(stored.Headcount))
	}
	requireHeadcount(t, 60)

	got, err := svc.Update(ctx, first.ID, lead.Form{Notes: "met at the fair"})
	require.NoError(t, err)
	requireHeadcount(t, 60)
	assert.Equal(t, 60, domain.Deref(got.Company.Headcount), "the embedded copy is refreshed")

	require.NoError(t, e.Leads.Save(ctx, stale))
	requireHeadcount(t, 60)
	assert.Equal(t, 60, stale.Company.Headcount)

	got, err = svc.Update(ctx, first.ID, lead.Form{Company: &company.Form{Industry: "retail"}})
	require.NoError(t, err)
	requireHeadcount(t, 60)
	assert.Equal(t, "retail", got.Company.Industry)
	assert.Equal(t, companyID, got.Company.ID)
}
