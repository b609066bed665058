// Package parallel runs independent jobs on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs indexed jobs on a fixed number of goroutines.
//
// Run splits its index range into one span per worker. A worker claims
// indices from its own span and, once that is used up, from the spans of
// the others, so a few slow jobs do not hold up the rest.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	tasks   chan task
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// task asks a worker to work on b starting from span home.
type task struct {
	b    *batch
	home int
}

// batch is one Run call.
type batch struct {
	fn    func(i int)
	spans []span
	wg    sync.WaitGroup
}

// span is a half-open range of indices claimed one at a time.
type span struct {
	next atomic.Int64
	end  int64
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &WorkerPool{
		workers: workers,
		tasks:   make(chan task, workers),
	}
	p.wg.Add(workers)
	for range workers {
		go func() {
			defer p.wg.Done()
			for t := range p.tasks {
				t.b.work(t.home)
			}
		}()
	}
	return p
}

func newBatch(n, parts int, fn func(i int)) *batch {
	b := &batch{fn: fn, spans: make([]span, parts)}
	for k := range b.spans {
		b.spans[k].next.Store(int64(k * n / parts))
		b.spans[k].end = int64((k + 1) * n / parts)
	}
	return b
}

// claim returns the next unclaimed index of s.
func (s *span) claim() (int, bool) {
	i := s.next.Add(1) - 1
	if i >= s.end {
		return 0, false
	}
	return int(i), true
}

// work runs every index it can claim, visiting spans from home onwards.
func (b *batch) work(home int) {
	defer b.wg.Done()
	for k := range b.spans {
		s := &b.spans[(home+k)%len(b.spans)]
		for i, ok := s.claim(); ok; i, ok = s.claim() {
			b.fn(i)
		}
	}
}

// Run calls fn(i) for every i in [0, n) across the workers and waits for
// all calls to return. On a closed pool the calls run on the caller's
// goroutine.
func (p *WorkerPool) Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		for i := range n {
			fn(i)
		}
		return
	}
	b := newBatch(n, min(p.workers, n), fn)
	b.wg.Add(len(b.spans))
	for home := range b.spans {
		p.tasks <- task{b: b, home: home}
	}
	p.mu.RUnlock()

	b.wg.Wait()
}

// Workers returns the number of workers.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Close stops the workers after the running batches finish. It is safe to
// call more than once.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()
	p.wg.Wait()
}
