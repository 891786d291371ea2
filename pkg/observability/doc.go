/*
Package observability exports engine activity as Prometheus metrics.

Metrics implements the engine's render hook, so wiring it is one option:

	m := observability.NewMetrics(prometheus.NewRegistry())
	eng := tessera.New(tessera.WithHooks(m.Hooks()))
*/
package observability
