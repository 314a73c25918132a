/*
Package observability turns cipherkit lifecycle events into prometheus metrics.

Metrics.Hooks returns domain.LifecycleHooks that can be passed to the engine
and to every session. Metrics.Summary reads the registry back so the shell can
show counters without exposing an HTTP endpoint.
*/
package observability
