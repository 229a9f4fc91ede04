package app

import (
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

// Index names shared by services and store adapters.
const (
	IndexName          = "name"
	IndexLinkedInURL   = "linkedin_url"
	IndexComponentName = "component_name"
	IndexAccount       = "account"
	IndexSequence      = "sequence"
	IndexOwner         = "owner"
)

func accountIndex[T any](accountID func(*T) string) ports.Index[T] {
	return ports.Index[T]{
		Name:   IndexAccount,
		Fields: []string{"account_id"},
		Values: func(v *T) []string { return []string{accountID(v)} },
	}
}

// Collection descriptors. Unique indexes are the natural keys.
var (
	AccountCollection = ports.Collection[account.Account]{
		Name: "accounts",
		Base: func(a *account.Account) *domain.Base { return &a.Base },
		Indexes: []ports.Index[account.Account]{{
			Name: IndexName, Fields: []string{"name"}, Unique: true,
			Values: func(a *account.Account) []string { return []string{a.Name} },
		}},
	}

	CompanyCollection = ports.Collection[company.Company]{
		Name: "companies",
		Base: func(c *company.Company) *domain.Base { return &c.Base },
		Indexes: []ports.Index[company.Company]{{
			Name: IndexName, Fields: []string{"name"}, Unique: true,
			Values: func(c *company.Company) []string { return []string{c.Name} },
		}},
	}

	PersonCollection = ports.Collection[person.Person]{
		Name: "people",
		Base: func(p *person.Person) *domain.Base { return &p.Base },
		Indexes: []ports.Index[person.Person]{{
			Name: IndexLinkedInURL, Fields: []string{"linkedin_url"}, Unique: true,
			Values: func(p *person.Person) []string { return []string{p.LinkedInURL} },
		}},
	}

	LeadCollection = ports.Collection[lead.Lead]{
		Name: "leads",
		Base: func(l *lead.Lead) *domain.Base { return &l.Base },
		Indexes: []ports.Index[lead.Lead]{
			accountIndex(func(l *lead.Lead) string { return l.AccountID }),
		},
	}

	ProspectCollection = ports.Collection[prospect.Prospect]{
		Name: "prospects",
		Base: func(p *prospect.Prospect) *domain.Base { return &p.Base },
		Indexes: []ports.Index[prospect.Prospect]{
			{
				Name: IndexLinkedInURL, Fields: []string{"linkedin_url"}, Unique: true,
				Values: func(p *prospect.Prospect) []string { return []string{p.LinkedInURL} },
			},
			accountIndex(func(p *prospect.Prospect) string { return p.AccountID }),
		},
	}

	CampaignCollection = ports.Collection[campaign.Campaign]{
		Name: "campaigns",
		Base: func(c *campaign.Campaign) *domain.Base { return &c.Base },
		Indexes: []ports.Index[campaign.Campaign]{
			{
				Name: IndexComponentName, Fields: []string{"component_id", "name"}, Unique: true,
				Values: func(c *campaign.Campaign) []string { return []string{c.ComponentID, c.Name} },
			},
			accountIndex(func(c *campaign.Campaign) string { return c.AccountID }),
		},
	}

	SequenceCollection = ports.Collection[sequence.Sequence]{
		Name: "sequences",
		Base: func(s *sequence.Sequence) *domain.Base { return &s.Base },
		Indexes: []ports.Index[sequence.Sequence]{
			accountIndex(func(s *sequence.Sequence) string { return s.AccountID }),
		},
	}

	StepCollection = ports.Collection[sequence.Step]{
		Name: "steps",
		Base: func(s *sequence.Step) *domain.Base { return &s.Base },
		Indexes: []ports.Index[sequence.Step]{{
			Name: IndexSequence, Fields: []string{"sequence_id"},
			Values: func(s *sequence.Step) []string { return []string{s.SequenceID} },
		}},
	}

	TodoCollection = ports.Collection[todo.Todo]{
		Name: "todos",
		Base: func(t *todo.Todo) *domain.Base { return &t.Base },
		Indexes: []ports.Index[todo.Todo]{{
			Name: IndexOwner, Fields: []string{"owner_id"},
			Values: func(t *todo.Todo) []string { return []string{t.OwnerID} },
		}},
	}

	InteractionCollection = ports.Collection[interaction.Interaction]{
		Name: "interactions",
		Base: func(i *interaction.Interaction) *domain.Base { return &i.Base },
		Indexes: []ports.Index[interaction.Interaction]{{
			Name: IndexOwner, Fields: []string{"owner_id"},
			Values: func(i *interaction.Interaction) []string { return []string{i.OwnerID} },
		}},
	}
)
