package reportpdf

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one converter is available.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// converterPool hands out pdfConverter instances to concurrent requests.
// Each converter owns its browser or subprocess, so checkouts never
// share one. Converters are built lazily on first acquire; starting a
// browser takes seconds and most deployments never need the full pool.
type converterPool struct {
	size    int
	factory func() pdfConverter

	idle chan pdfConverter

	mu      sync.Mutex
	all     []pdfConverter
	created int
	closed  bool
}

// newConverterPool creates a pool holding at most n converters built by
// factory.
func newConverterPool(n int, factory func() pdfConverter) *converterPool {
	if n < 1 {
		n = 1
	}

	return &converterPool{
		size:    n,
		factory: factory,
		idle:    make(chan pdfConverter, n),
		all:     make([]pdfConverter, 0, n),
	}
}

// Acquire checks a converter out of the pool. It prefers an idle one,
// builds a fresh one while the pool is below capacity, and otherwise
// blocks until a checkout comes back.
func (p *converterPool) Acquire() pdfConverter {
	select {
	case conv := <-p.idle:
		return conv
	default:
	}

	if conv := p.build(); conv != nil {
		return conv
	}

	return <-p.idle
}

// build constructs a new converter, or returns nil when the pool is
// already at capacity. The factory runs outside the lock because
// browser startup is slow.
func (p *converterPool) build() pdfConverter {
	p.mu.Lock()
	if p.created == p.size {
		p.mu.Unlock()
		return nil
	}
	p.created++
	p.mu.Unlock()

	conv := p.factory()

	p.mu.Lock()
	p.all = append(p.all, conv)
	p.mu.Unlock()

	return conv
}

// Release checks a converter back in. After Close it is a no-op, since
// the idle channel is gone and the converter has already been shut down.
func (p *converterPool) Release(conv pdfConverter) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	p.idle <- conv
}

// Close shuts down every converter ever built, draining browsers and
// subprocesses. Errors are joined so one bad shutdown does not hide the
// rest.
func (p *converterPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.idle)
	all := p.all
	p.mu.Unlock()

	var errs []error
	for _, conv := range all {
		errs = append(errs, conv.Close())
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *converterPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size: an explicit worker count
// wins, otherwise half the available CPUs clamped to [MinPoolSize,
// MaxPoolSize]. automaxprocs keeps GOMAXPROCS aligned with container
// CPU quotas, so the derived value respects cgroup limits.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	return min(max(runtime.GOMAXPROCS(0)/cpuDivisor, MinPoolSize), MaxPoolSize)
}
