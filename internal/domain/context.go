package domain

import "context"

// Action represents a single executable operation with rollback capability.
// Multi-record writes (for example persisting a batch of scheduled todos and
// linking them to their owner) are staged as Actions so that a failure part
// way through can undo the writes that already happened.
type Action interface {
	// Execute performs the action. The context carries cancellation and
	// deadline signals that the implementation should respect.
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// Rollback is only called if Execute returned nil.
	Rollback(ctx context.Context) error

	// Description returns a short label for logging (e.g. "insert todo").
	Description() string
}

// WriteStager is the domain's view of the application-layer request context.
// Services stage actions on it and the caller commits them in order.
type WriteStager interface {
	// AddAction queues an action for execution during Commit.
	AddAction(action Action) error

	// Commit executes the queued actions in order and rolls back the
	// completed ones if any action fails.
	Commit(ctx context.Context) error
}
