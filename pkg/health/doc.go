// Package health serves liveness and readiness probes.
//
// LivenessHandler always answers OK while the process runs.
// ReadinessHandler runs named checks in parallel under a shared timeout and
// answers 503 when any of them fails:
//
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "redis":        redis.Healthcheck(client),
//	    "dictionaries": loaderCheck,
//	}))
//
// Responses are plain text unless the client asks for JSON with
// "Accept: application/json" or "?format=json".
package health
