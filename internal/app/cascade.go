package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/pipeline-crm/internal/app/lifecycle"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/company"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/person"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/prospect"
)

// PartyResolvers persists the company and person embedded in leads and
// prospects, swapping each embedded copy for the canonical stored record.
//
// Shared records are written only when a create or update form carries
// them. Every other save just re-reads them, so an embedded copy that went
// stale while another owner edited the record never overwrites it.
type PartyResolvers struct {
	Companies *lifecycle.SharedResolver[company.Company]
	People    *lifecycle.SharedResolver[person.Person]
}

func (r PartyResolvers) resolveCompany(ctx context.Context, c **company.Company) error {
	if err := r.Companies.OnSave(ctx, *c, func(v *company.Company) { *c = v }); err != nil {
		return fmt.Errorf("resolving company: %w", err)
	}
	return nil
}

func (r PartyResolvers) resolvePerson(ctx context.Context, p **person.Person) error {
	if err := r.People.OnSave(ctx, *p, func(v *person.Person) { *p = v }); err != nil {
		return fmt.Errorf("resolving person: %w", err)
	}
	return nil
}

// insert resolves both references of a new owner.
func (r PartyResolvers) insert(ctx context.Context, c **company.Company, p **person.Person) error {
	if err := r.resolveCompany(ctx, c); err != nil {
		return err
	}
	return r.resolvePerson(ctx, p)
}

// update resolves the references the form carried. The form is re-applied
// to the stored record first, since the embedded copy it was merged into may
// be stale.
func (r PartyResolvers) update(ctx context.Context, c **company.Company, cf *company.Form, p **person.Person, pf *person.Form) error {
	if cf != nil {
		if err := r.Companies.Refresh(ctx, *c, func(v *company.Company) { *c = v }); err != nil {
			return fmt.Errorf("refreshing company: %w", err)
		}
		company.MergeRef(c, cf)
		if err := r.resolveCompany(ctx, c); err != nil {
			return err
		}
	}
	if pf != nil {
		if err := r.People.Refresh(ctx, *p, func(v *person.Person) { *p = v }); err != nil {
			return fmt.Errorf("refreshing person: %w", err)
		}
		person.MergeRef(p, pf)
		if err := r.resolvePerson(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// refresh swaps both embedded copies for the stored records.
func (r PartyResolvers) refresh(ctx context.Context, c **company.Company, p **person.Person) error {
	if err := r.Companies.Refresh(ctx, *c, func(v *company.Company) { *c = v }); err != nil {
		return fmt.Errorf("refreshing company: %w", err)
	}
	if err := r.People.Refresh(ctx, *p, func(v *person.Person) { *p = v }); err != nil {
		return fmt.Errorf("refreshing person: %w", err)
	}
	return nil
}

// LeadCascade is the lead hook that resolves the lead's company and person.
type LeadCascade struct {
	PartyResolvers
}

// BeforeInsert stores or reuses the embedded company and person.
func (h LeadCascade) BeforeInsert(ctx context.Context, _ lead.Form, l *lead.Lead) error {
	return h.insert(ctx, &l.Company, &l.Person)
}

// BeforeUpdate writes the company and person the form carried.
func (h LeadCascade) BeforeUpdate(ctx context.Context, f lead.Form, l *lead.Lead) error {
	return h.update(ctx, &l.Company, f.Company, &l.Person, f.Person)
}

// BeforeSave refreshes the embedded company and person.
func (h LeadCascade) BeforeSave(ctx context.Context, l *lead.Lead) error {
	return h.refresh(ctx, &l.Company, &l.Person)
}

// ProspectCascade is the prospect hook that resolves the prospect's company
// and person.
type ProspectCascade struct {
	PartyResolvers
}

// BeforeInsert stores or reuses the embedded company and person.
func (h ProspectCascade) BeforeInsert(ctx context.Context, _ prospect.Form, p *prospect.Prospect) error {
	return h.insert(ctx, &p.Company, &p.Person)
}

// BeforeUpdate writes the company and person the form carried.
func (h ProspectCascade) BeforeUpdate(ctx context.Context, f prospect.Form, p *prospect.Prospect) error {
	return h.update(ctx, &p.Company, f.Company, &p.Person, f.Person)
}

// BeforeSave refreshes the embedded company and person.
func (h ProspectCascade) BeforeSave(ctx context.Context, p *prospect.Prospect) error {
	return h.refresh(ctx, &p.Company, &p.Person)
}
