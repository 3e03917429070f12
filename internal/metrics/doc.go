// Package metrics provides Prometheus metrics for monitoring.
//
// Key metrics:
//   - Solve outcomes per distribution family
//   - Root finder iterations per successful solve
//   - Last equilibrium spread per family
//
// All metrics live on a private registry exposed through Handler.
// A nil *Metrics is valid and records nothing.
package metrics
