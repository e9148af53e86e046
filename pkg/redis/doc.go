// Package redis opens the go-redis client behind the shared page cache.
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"), redis.WithRetry(5, time.Second))
//	if err != nil {
//		return err
//	}
//
// [Healthcheck] plugs into the readiness endpoint and [Shutdown] into the
// server's shutdown hooks.
package redis
