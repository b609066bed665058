package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()
	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}

	def := NewWorkerPool(-1)
	defer def.Close()
	if want := runtime.GOMAXPROCS(0); def.Workers() != want {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", def.Workers(), want)
	}
}

func TestWorkerPool_Run(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	const n = 200
	var hits [n]atomic.Int32
	pool.Run(n, func(i int) { hits[i].Add(1) })
	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("job %d ran %d times, want 1", i, got)
		}
	}
}

func TestWorkerPool_RunUneven(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	var count atomic.Int64
	pool.Run(20, func(i int) {
		if i == 0 {
			time.Sleep(20 * time.Millisecond)
		}
		count.Add(1)
	})
	if got := count.Load(); got != 20 {
		t.Errorf("completed %d jobs, want 20", got)
	}
}

func TestWorkerPool_RunAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	var count atomic.Int64
	pool.Run(5, func(int) { count.Add(1) })
	if got := count.Load(); got != 5 {
		t.Errorf("completed %d jobs on a closed pool, want 5", got)
	}
	pool.Run(0, func(int) { t.Error("called with n = 0") })
}

func TestWorkerPool_TakesOverBlockedSpan(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	// Job 0 holds its worker until every other job is done, which needs
	// the second worker to take over the rest of job 0's span.
	var done atomic.Int64
	release := make(chan struct{})
	pool.Run(20, func(i int) {
		if i == 0 {
			select {
			case <-release:
			case <-time.After(5 * time.Second):
				t.Error("jobs behind a blocked job were not taken over")
			}
			return
		}
		if done.Add(1) == 19 {
			close(release)
		}
	})
}

func TestNewBatchSpans(t *testing.T) {
	b := newBatch(10, 3, func(int) {})
	want := [][2]int64{{0, 3}, {3, 6}, {6, 10}}
	for k, s := range want {
		if got := b.spans[k].next.Load(); got != s[0] || b.spans[k].end != s[1] {
			t.Errorf("span %d = [%d, %d), want [%d, %d)", k, got, b.spans[k].end, s[0], s[1])
		}
	}

	var seen []int
	b.wg.Add(1)
	b.fn = func(i int) { seen = append(seen, i) }
	b.work(2)
	if len(seen) != 10 || seen[0] != 6 || seen[4] != 0 {
		t.Errorf("work(2) order = %v, want span 2 first, then 0 and 1", seen)
	}
}
