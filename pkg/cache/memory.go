package cache

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// MemoryOption configures a Memory cache.
type MemoryOption func(*memoryConfig)

type memoryConfig struct {
	ttl      time.Duration
	sweep    time.Duration
	capacity int
}

// Memory is an in-process LRU cache with TTL expiry.
// A background goroutine sweeps expired entries until Close is called.
type Memory[V any] struct {
	cfg   memoryConfig
	mu    sync.Mutex
	index map[string]*list.Element
	order *list.List // front is most recently used
	stop  chan struct{}

	closed    bool
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type memoryItem[V any] struct {
	key     string
	value   V
	expires time.Time // zero never expires
}

func (it *memoryItem[V]) expired(now time.Time) bool {
	return !it.expires.IsZero() && now.After(it.expires)
}

// WithTTL sets the TTL used when Set is called with zero. Default one hour.
func WithTTL(d time.Duration) MemoryOption {
	return func(c *memoryConfig) { c.ttl = d }
}

// WithSweepInterval sets how often expired entries are purged. Zero
// disables the sweeper. Default one minute.
func WithSweepInterval(d time.Duration) MemoryOption {
	return func(c *memoryConfig) { c.sweep = d }
}

// WithCapacity bounds the number of entries. The least recently used entry
// is evicted on overflow. Zero means unbounded.
func WithCapacity(n int) MemoryOption {
	return func(c *memoryConfig) { c.capacity = max(n, 0) }
}

// NewMemory creates a Memory cache.
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	cfg := memoryConfig{ttl: time.Hour, sweep: time.Minute}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Memory[V]{
		cfg:   cfg,
		index: make(map[string]*list.Element),
		order: list.New(),
		stop:  make(chan struct{}),
	}

	if cfg.sweep > 0 {
		go m.sweeper()
	}

	return m
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	el, ok := m.index[key]
	if !ok {
		m.misses.Add(1)
		return zero, ErrNotFound
	}

	it := el.Value.(*memoryItem[V])
	if it.expired(time.Now()) {
		m.remove(el)
		m.misses.Add(1)
		return zero, ErrNotFound
	}

	m.order.MoveToFront(el)
	m.hits.Add(1)
	return it.value, nil
}

func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if ttl == 0 {
		ttl = m.cfg.ttl
	}
	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}

	if el, ok := m.index[key]; ok {
		it := el.Value.(*memoryItem[V])
		it.value, it.expires = value, expires
		m.order.MoveToFront(el)
		return nil
	}

	if m.cfg.capacity > 0 && m.order.Len() >= m.cfg.capacity {
		if last := m.order.Back(); last != nil {
			m.remove(last)
			m.evictions.Add(1)
		}
	}

	m.index[key] = m.order.PushFront(&memoryItem[V]{key: key, value: value, expires: expires})
	return nil
}

func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if el, ok := m.index[key]; ok {
		m.remove(el)
	}
	return nil
}

func (m *Memory[V]) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	clear(m.index)
	m.order.Init()
	return nil
}

// Close stops the sweeper. It is safe to call more than once.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.stop)
	}
	return nil
}

// Len returns the number of stored entries, expired ones included until
// they are swept.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

func (m *Memory[V]) Stats() Stats {
	return Stats{
		Hits:      m.hits.Load(),
		Misses:    m.misses.Load(),
		Evictions: m.evictions.Load(),
	}
}

func (m *Memory[V]) sweeper() {
	t := time.NewTicker(m.cfg.sweep)
	defer t.Stop()

	for {
		select {
		case <-m.stop:
			return
		case now := <-t.C:
			m.purge(now)
		}
	}
}

func (m *Memory[V]) purge(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for el := m.order.Back(); el != nil; {
		prev := el.Prev()
		if el.Value.(*memoryItem[V]).expired(now) {
			m.remove(el)
		}
		el = prev
	}
}

// remove must be called with mu held.
func (m *Memory[V]) remove(el *list.Element) {
	m.order.Remove(el)
	delete(m.index, el.Value.(*memoryItem[V]).key)
}

var _ Cache[string] = (*Memory[string])(nil)
