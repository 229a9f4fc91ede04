package domain

import (
	"strings"
	"time"
)

// Base carries the identity and bookkeeping timestamps shared by every
// persisted entity. ID is assigned by the store on insert; Created and
// Updated are stamped by the lifecycle engine in UTC.
type Base struct {
	ID      string    `json:"id" bson:"_id"`
	Created time.Time `json:"created" bson:"created"`
	Updated time.Time `json:"updated" bson:"updated"`
}

// HasID reports whether the entity has been persisted.
func (b *Base) HasID() bool {
	return strings.TrimSpace(b.ID) != ""
}

// StampCreated sets both timestamps to now.
func (b *Base) StampCreated(now time.Time) {
	b.Created = now
	b.Updated = now
}

// StampUpdated sets the update timestamp to now.
func (b *Base) StampUpdated(now time.Time) {
	b.Updated = now
}

// Clock returns the current time. Engines and hooks take a Clock so tests can
// pin time.
type Clock func() time.Time

// UTCNow is the production Clock.
func UTCNow() time.Time {
	return time.Now().UTC()
}

// OrDefault returns c, or UTCNow when c is nil.
func (c Clock) OrDefault() Clock {
	if c == nil {
		return UTCNow
	}
	return c
}
