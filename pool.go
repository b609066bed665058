package poly

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/poly/internal/parallel"
)

// Pool hands out stroker instances for use on one goroutine at a time.
//
// Extruders are not safe for concurrent use. Code that strokes from several
// goroutines checks an instance out with Get, uses it, and returns it with
// Put instead of sharing one.
//
// Thread safety: All methods are safe for concurrent use.
type Pool[S Stroker] struct {
	mu      sync.Mutex
	free    []S
	newFunc func() S
	maxSize int // max idle instances kept
}

// NewPool returns a pool creating instances with newFunc and keeping at
// most maxIdle of them between uses. A maxIdle of 0 means unlimited.
//
// Example:
//
//	pool := poly.NewPool(func() *poly.Extruder {
//	    return poly.NewExtruder(poly.WithJoint(poly.JointRound))
//	}, 8)
func NewPool[S Stroker](newFunc func() S, maxIdle int) *Pool[S] {
	return &Pool[S]{newFunc: newFunc, maxSize: maxIdle}
}

// Get returns an idle instance or creates a new one. The instance has no
// input and no result; its settings are those it was created with or last
// given.
func (p *Pool[S]) Get() S {
	p.mu.Lock()
	if n := len(p.free); n > 0 {
		s := p.free[n-1]
		var zero S
		p.free[n-1] = zero
		p.free = p.free[:n-1]
		p.mu.Unlock()
		return s
	}
	p.mu.Unlock()
	return p.newFunc()
}

// Put resets s and keeps it for reuse. If the pool already holds maxIdle
// instances, s is discarded.
func (p *Pool[S]) Put(s S) {
	s.Reset()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.maxSize > 0 && len(p.free) >= p.maxSize {
		return
	}
	p.free = append(p.free, s)
}

// Idle returns the number of instances waiting in the pool.
func (p *Pool[S]) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// Stroke checks out an instance, strokes points with it and returns the
// result, putting the instance back afterwards.
func (p *Pool[S]) Stroke(points []Point, closed bool, width float64) (Polygon, error) {
	s := p.Get()
	defer p.Put(s)

	s.Set(points, closed)
	if err := s.Calculate(width); err != nil {
		return Polygon{}, err
	}
	return s.Polygon(), nil
}

// StrokeAll strokes every polyline of paths on its own instance, spread
// over workers goroutines, and returns one result per polyline in input
// order. A workers value of 0 or less uses GOMAXPROCS.
//
// Failed polylines leave an empty result; their errors are joined.
func (p *Pool[S]) StrokeAll(paths PathSet, width float64, workers int) ([]Polygon, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	out := make([]Polygon, len(paths))
	errs := make([]error, len(paths))

	wp := parallel.NewWorkerPool(min(workers, len(paths)))
	defer wp.Close()
	wp.Run(len(paths), func(i int) {
		s := p.Get()
		defer p.Put(s)

		s.SetPaths(paths[i : i+1])
		if err := s.Calculate(width); err != nil {
			errs[i] = fmt.Errorf("polyline %d: %w", i, err)
			out[i] = Polygon{Kind: Solid}
			return
		}
		out[i] = s.Polygon()
	})

	Logger().Debug("poly: stroked path set",
		"paths", len(paths),
		"workers", wp.Workers())
	return out, errors.Join(errs...)
}
