package render

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines reused across render passes.
//
// Each worker pulls from its own queue and steals from the others when it
// runs dry, so a band that happens to be expensive (deep interior) does not
// leave the remaining workers idle.
//
// WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()

	done chan struct{}
	wg   sync.WaitGroup

	running atomic.Bool
	busy    atomic.Int32
}

// NewWorkerPool starts a pool. If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

// Workers returns the number of goroutines in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Busy returns how many workers are executing work right now.
func (p *WorkerPool) Busy() int {
	return int(p.busy.Load())
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case work := <-own:
			p.run(work)
		default:
			if stolen := p.steal(id); stolen != nil {
				p.run(stolen)
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case work := <-own:
				p.run(work)
			}
		}
	}
}

func (p *WorkerPool) run(work func()) {
	if work == nil {
		return
	}
	p.busy.Add(1)
	defer p.busy.Add(-1)
	work()
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			p.run(work)
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll runs every work item and returns once all of them finished.
// Items are dealt round-robin to the worker queues. Returns false without
// running anything if the pool is closed.
func (p *WorkerPool) ExecuteAll(work []func()) bool {
	if !p.running.Load() {
		return false
	}
	if len(work) == 0 {
		return true
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for i, fn := range work {
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			fn()
		}
	}
	wg.Wait()
	return true
}

// Close stops the workers after they finish queued work. Close must not
// race with ExecuteAll; callers serialize the two.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}
