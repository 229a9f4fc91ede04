package app

import (
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/pipeline-crm/internal/app/lifecycle"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/account"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/campaign"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/company"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/interaction"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/person"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/prospect"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/sequence"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Stores holds one store per collection.
type Stores struct {
	Accounts     ports.Store[account.Account]
	Companies    ports.Store[company.Company]
	People       ports.Store[person.Person]
	Leads        ports.Store[lead.Lead]
	Prospects    ports.Store[prospect.Prospect]
	Campaigns    ports.Store[campaign.Campaign]
	Sequences    ports.Store[sequence.Sequence]
	Steps        ports.Store[sequence.Step]
	Todos        ports.Store[todo.Todo]
	Interactions ports.Store[interaction.Interaction]
}

// Engines holds the lifecycle engine of every entity, with hooks and
// cascades registered.
type Engines struct {
	Accounts     *lifecycle.Engine[account.Form, account.Account]
	Companies    *lifecycle.Engine[company.Form, company.Company]
	People       *lifecycle.Engine[person.Form, person.Person]
	Leads        *lifecycle.Engine[lead.Form, lead.Lead]
	Prospects    *lifecycle.Engine[prospect.Form, prospect.Prospect]
	Campaigns    *lifecycle.Engine[campaign.Form, campaign.Campaign]
	Sequences    *lifecycle.Engine[sequence.Form, sequence.Sequence]
	Steps        *lifecycle.Engine[sequence.StepForm, sequence.Step]
	Todos        *lifecycle.Engine[todo.Form, todo.Todo]
	Interactions *lifecycle.Engine[interaction.Form, interaction.Interaction]
}

// NewEngines builds the engines over s. A nil clock means UTC wall time.
func NewEngines(s Stores, clock domain.Clock, logger *slog.Logger) (*Engines, error) {
	companies, err := lifecycle.NewSharedResolver(s.Companies, clock)
	if err != nil {
		return nil, err
	}
	people, err := lifecycle.NewSharedResolver(s.People, clock)
	if err != nil {
		return nil, err
	}
	parties := PartyResolvers{Companies: companies, People: people}

	var e Engines
	build := func(name string, err error) error {
		if err != nil {
			return fmt.Errorf("building %s engine: %w", name, err)
		}
		return nil
	}

	e.Accounts, err = lifecycle.NewEngine(lifecycle.Config[account.Form, account.Account]{
		Entity: account.EntityName, Store: s.Accounts, Projector: account.Projector{},
		Exists: lifecycle.NaturalKey[account.Form](s.Accounts, account.Projector{}),
		Clock:  clock, Logger: logger,
	})
	if err := build(account.EntityName, err); err != nil {
		return nil, err
	}

	e.Companies, err = lifecycle.NewEngine(lifecycle.Config[company.Form, company.Company]{
		Entity: company.EntityName, Store: s.Companies, Projector: company.Projector{},
		Exists: lifecycle.NaturalKey[company.Form](s.Companies, company.Projector{}),
		Clock:  clock, Logger: logger,
	})
	if err := build(company.EntityName, err); err != nil {
		return nil, err
	}

	e.People, err = lifecycle.NewEngine(lifecycle.Config[person.Form, person.Person]{
		Entity: person.EntityName, Store: s.People, Projector: person.Projector{},
		Exists: lifecycle.NaturalKey[person.Form](s.People, person.Projector{}),
		Clock:  clock, Logger: logger,
	})
	if err := build(person.EntityName, err); err != nil {
		return nil, err
	}

	e.Leads, err = lifecycle.NewEngine(lifecycle.Config[lead.Form, lead.Lead]{
		Entity: lead.EntityName, Store: s.Leads, Projector: lead.Projector{},
		Clock: clock, Logger: logger,
	}, lifecycle.WithHooks(lead.Hooks{}, LeadCascade{parties}))
	if err := build(lead.EntityName, err); err != nil {
		return nil, err
	}

	e.Prospects, err = lifecycle.NewEngine(lifecycle.Config[prospect.Form, prospect.Prospect]{
		Entity: prospect.EntityName, Store: s.Prospects, Projector: prospect.Projector{},
		Exists: lifecycle.NaturalKey[prospect.Form](s.Prospects, prospect.Projector{}),
		Clock:  clock, Logger: logger,
	}, lifecycle.WithHooks(ProspectCascade{parties}))
	if err := build(prospect.EntityName, err); err != nil {
		return nil, err
	}

	e.Campaigns, err = lifecycle.NewEngine(lifecycle.Config[campaign.Form, campaign.Campaign]{
		Entity: campaign.EntityName, Store: s.Campaigns, Projector: campaign.Projector{},
		Exists: lifecycle.NaturalKey[campaign.Form](s.Campaigns, campaign.Projector{}),
		Clock:  clock, Logger: logger,
	}, lifecycle.WithHooks(campaign.Hooks{Now: clock}))
	if err := build(campaign.EntityName, err); err != nil {
		return nil, err
	}

	e.Sequences, err = lifecycle.NewEngine(lifecycle.Config[sequence.Form, sequence.Sequence]{
		Entity: sequence.EntityName, Store: s.Sequences, Projector: sequence.Projector{},
		Clock: clock, Logger: logger,
	}, lifecycle.WithHooks(sequence.Hooks{Now: clock}))
	if err := build(sequence.EntityName, err); err != nil {
		return nil, err
	}

	e.Steps, err = lifecycle.NewEngine(lifecycle.Config[sequence.StepForm, sequence.Step]{
		Entity: sequence.StepEntityName, Store: s.Steps, Projector: sequence.StepProjector{},
		Clock: clock, Logger: logger,
	})
	if err := build(sequence.StepEntityName, err); err != nil {
		return nil, err
	}

	e.Todos, err = lifecycle.NewEngine(lifecycle.Config[todo.Form, todo.Todo]{
		Entity: todo.EntityName, Store: s.Todos, Projector: todo.Projector{},
		Clock: clock, Logger: logger,
	}, lifecycle.WithHooks(todo.Hooks{Now: clock}))
	if err := build(todo.EntityName, err); err != nil {
		return nil, err
	}

	e.Interactions, err = lifecycle.NewEngine(lifecycle.Config[interaction.Form, interaction.Interaction]{
		Entity: interaction.EntityName, Store: s.Interactions, Projector: interaction.Projector{},
		Clock: clock, Logger: logger,
	}, lifecycle.WithHooks(interaction.Hooks{Now: clock}))
	if err := build(interaction.EntityName, err); err != nil {
		return nil, err
	}

	return &e, nil
}
