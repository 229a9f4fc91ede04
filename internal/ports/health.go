package ports

import "context"

// HealthChecker reports the health of one dependency, such as the entity
// store or the report renderer.
type HealthChecker interface {
	// Name identifies the dependency in readiness output.
	Name() string

	// HealthCheck returns nil when healthy. It must honor ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns each checker's result by name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
