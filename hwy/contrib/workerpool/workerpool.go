// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs data-parallel loops on a fixed set of long-lived
// goroutines.
//
// The linalg batch functions (TransformBatch, NormalizeBatch, RotateBatch)
// split large slices of vectors across a shared Pool instead of spawning
// goroutines per call:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(points), func(start, end int) {
//	    for i := start; i < end; i++ {
//	        out[i] = m.MulVec(points[i])
//	    }
//	})
//
// Every ParallelFor variant blocks until all of its work has finished. The
// calling goroutine runs every share no worker has picked up, so loops may be
// nested inside other loops on the same pool. A closed pool keeps working:
// loops then run on the calling goroutine.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent workers shared by many parallel loops.
type Pool struct {
	numWorkers int
	tasks      chan *loop

	// mu is held for reading while a loop submits tasks and for writing by
	// Close, so tasks are never sent on a closed channel.
	mu     sync.RWMutex
	closed bool
}

// loop is one ParallelFor call split into shares. Workers and the caller
// claim shares from next until all are taken.
type loop struct {
	fn     func(share int)
	shares int64
	next   atomic.Int64
	done   sync.WaitGroup
}

// runShares runs unclaimed shares until none are left.
func (l *loop) runShares() {
	for {
		s := l.next.Add(1) - 1
		if s >= l.shares {
			return
		}
		l.fn(int(s))
		l.done.Done()
	}
}

// New starts a pool of numWorkers goroutines. numWorkers <= 0 means
// runtime.GOMAXPROCS(0).
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan *loop, numWorkers*2),
	}
	for range numWorkers {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	for l := range p.tasks {
		l.runShares()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued tasks have drained. It is safe to
// call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
}

// dispatch runs fn for shares 0..workers-1 on the pool and the calling
// goroutine and waits for all of them. It returns false without running
// anything when the pool is closed or only one worker would be used; the
// caller then runs the loop inline.
//
// Submission never blocks: when the queue is full the caller keeps the
// remaining shares for itself.
func (p *Pool) dispatch(workers int, fn func(worker int)) bool {
	if workers <= 1 {
		return false
	}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	l := &loop{fn: fn, shares: int64(workers)}
	l.done.Add(workers)
submit:
	for range workers - 1 {
		select {
		case p.tasks <- l:
		default:
			break submit
		}
	}
	p.mu.RUnlock()
	l.runShares()
	l.done.Wait()
	return true
}

// ParallelFor calls fn over contiguous ranges that together cover [0, n).
// Each worker gets at most one range of about n/NumWorkers indices.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	chunk := (n + workers - 1) / workers
	workers = (n + chunk - 1) / chunk
	ok := p.dispatch(workers, func(w int) {
		start := w * chunk
		fn(start, min(start+chunk, n))
	})
	if !ok {
		fn(0, n)
	}
}

// ParallelForAtomic calls fn(i) for every i in [0, n). Workers claim
// indices one at a time from a shared counter, which balances uneven work.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched is ParallelForAtomic claiming batchSize indices
// per counter update. fn receives [start, end) ranges of at most batchSize
// indices. batchSize <= 0 is treated as 1.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	batches := (n + batchSize - 1) / batchSize
	var next atomic.Int64
	ok := p.dispatch(min(p.numWorkers, batches), func(int) {
		for {
			b := int(next.Add(1)) - 1
			if b >= batches {
				return
			}
			start := b * batchSize
			fn(start, min(start+batchSize, n))
		}
	})
	if !ok {
		for start := 0; start < n; start += batchSize {
			fn(start, min(start+batchSize, n))
		}
	}
}
