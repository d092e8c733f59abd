/*
Package observability exposes Prometheus collectors for the exhaustive search.

The collectors are registered on a caller-supplied prometheus.Registerer so tests and
embedders can use an isolated registry instead of the global default.
*/
package observability
