// Package cache provides a generic key-value cache with in-memory and Redis
// backends behind one interface.
//
// The site uses it twice: translator dictionaries live in a Memory cache for
// the life of the process, and rendered pages go to whichever backend the
// deployment configures.
//
//	pages := cache.NewMemory[Page](cache.WithTTL(5*time.Minute), cache.WithCapacity(512))
//	defer pages.Close()
//
//	p, err := cache.GetOrSet(ctx, pages, "/es/blog", func(ctx context.Context) (Page, time.Duration, error) {
//		return render(ctx, "/es/blog")
//	})
//
// TTL semantics for Set:
//   - positive: the entry expires after the duration
//   - zero: the backend's default TTL applies
//   - negative: the entry never expires
//
// GetOrSet collapses concurrent misses for the same key into one call.
package cache
