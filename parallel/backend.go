package parallel

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hupe1980/crystio/resource"
)

// ErrBackendUnavailable is returned when a named backend is not registered
// or cannot be created in this process.
var ErrBackendUnavailable = errors.New("parallel backend unavailable")

// Task processes the item at index i. Tasks run concurrently under a parallel
// backend and must only write state owned by index i.
type Task func(ctx context.Context, i int) error

// Backend executes tasks over partitioned indices.
type Backend interface {
	Name() string
	// Run calls task for every index in chunks. The first error cancels the
	// remaining work and is returned.
	Run(ctx context.Context, chunks [][]int, task Task) error
}

// Config is passed to backend factories.
type Config struct {
	// Controller supplies worker slots; nil means resource.Shared().
	Controller *resource.Controller
	// NumJobs bounds concurrently running chunks; 0 or anything above the
	// controller's worker slots means one per slot.
	NumJobs int
}

// Factory creates a backend.
type Factory func(Config) (Backend, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a backend available by name. Registering a name twice panics.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("parallel: backend %q registered twice", name))
	}
	registry[name] = f
}

// Lookup creates the backend registered under name.
func Lookup(name string, cfg Config) (Backend, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendUnavailable, name)
	}
	b, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBackendUnavailable, name, err)
	}
	return b, nil
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	serial := func(Config) (Backend, error) { return Serial{}, nil }
	Register("", serial)
	Register(SerialName, serial)
	Register(PoolName, func(cfg Config) (Backend, error) { return NewPool(cfg), nil })
}

// Partition splits [0, n) into at most k contiguous, near-equal chunks.
// Earlier chunks receive the remainder.
func Partition(n, k int) [][]int {
	if n <= 0 {
		return nil
	}
	k = max(1, min(k, n))
	chunks := make([][]int, 0, k)
	size, rem := n/k, n%k
	start := 0
	for c := range k {
		end := start + size
		if c < rem {
			end++
		}
		chunk := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			chunk = append(chunk, i)
		}
		chunks = append(chunks, chunk)
		start = end
	}
	return chunks
}
