// Package ports holds the interfaces the hexagon is built around. The app
// layer implements the service ports that HTTP handlers call. Outbound
// adapters implement Store, ReportClient and HealthChecker for the app layer
// and the readiness probe.
package ports
