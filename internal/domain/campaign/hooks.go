package campaign

import (
	"context"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// Hooks defaults campaign state on insert and prospect link state on every
// save.
type Hooks struct {
	Now domain.Clock
}

// BeforeInsert defaults an absent status to NOT_STARTED and an absent start
// date to now.
func (h Hooks) BeforeInsert(_ context.Context, _ Form, c *Campaign) error {
	if c.Status == "" {
		c.Status = StatusNotStarted
	}
	if c.StartDate.IsZero() {
		c.StartDate = h.Now.OrDefault()()
	}
	return nil
}

// BeforeSave fills unset prospect links. A link without a status inherits the
// campaign's current status.
func (h Hooks) BeforeSave(_ context.Context, c *Campaign) error {
	now := h.Now.OrDefault()
	for i := range c.Prospects {
		p := &c.Prospects[i]
		if p.Status == "" {
			p.Status = c.Status
		}
		if p.Added.IsZero() {
			p.Added = now()
		}
	}
	return nil
}
