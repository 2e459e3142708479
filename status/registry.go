package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Registry holds named run counters and gauges
// Writers are the tick systems; readers may sample from any goroutine
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	gauges   map[string]*Gauge
}

func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		gauges:   make(map[string]*Gauge),
	}
}

// lookup returns the entry for key, creating it under the write lock on first use
func lookup[T any](mu *sync.RWMutex, items map[string]*T, key string) *T {
	mu.RLock()
	ptr, ok := items[key]
	mu.RUnlock()
	if ok {
		return ptr
	}

	mu.Lock()
	defer mu.Unlock()
	if ptr, ok := items[key]; ok {
		return ptr
	}
	ptr = new(T)
	items[key] = ptr
	return ptr
}

// Counter returns the counter for key; the pointer stays valid across Reset
func (r *Registry) Counter(key string) *atomic.Int64 {
	return lookup(&r.mu, r.counters, key)
}

// Gauge returns the gauge for key; the pointer stays valid across Reset
func (r *Registry) Gauge(key string) *Gauge {
	return lookup(&r.mu, r.gauges, key)
}

// Inc adds one to a counter
func (r *Registry) Inc(key string) {
	r.Counter(key).Add(1)
}

// Metric is one sampled value
type Metric struct {
	Key   string
	Value float64
}

// Metrics samples every registered value in key order
func (r *Registry) Metrics() []Metric {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Metric, 0, len(r.counters)+len(r.gauges))
	for k, c := range r.counters {
		out = append(out, Metric{Key: k, Value: float64(c.Load())})
	}
	for k, g := range r.gauges {
		out = append(out, Metric{Key: k, Value: g.Get()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Reset zeroes every value without dropping registrations
func (r *Registry) Reset() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.counters {
		c.Store(0)
	}
	for _, g := range r.gauges {
		g.Set(0)
	}
}
