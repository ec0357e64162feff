package parallel

import (
	"runtime"
	"sync"
)

// Pool runs submitted tasks on a fixed set of workers. A single-worker
// pool degenerates to inline execution, so callers never branch on
// concurrency.
type Pool struct {
	wg    sync.WaitGroup
	tasks chan func()
	stop  func()
}

// Start launches a pool with the given number of workers. Values below
// one mean one worker per available CPU.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{stop: func() {}}
	if numWorkers == 1 {
		return pool
	}

	pool.tasks = make(chan func(), numWorkers)
	for i := 0; i < numWorkers; i++ {
		pool.wg.Add(1)
		go func() {
			defer pool.wg.Done()
			for f := range pool.tasks {
				f()
			}
		}()
	}
	pool.stop = sync.OnceFunc(func() { close(pool.tasks) })

	return pool
}

// Submit queues a task. It blocks while all workers are busy and the
// queue is full.
func (p *Pool) Submit(f func()) {
	if p.tasks == nil {
		f()
		return
	}
	p.tasks <- f
}

// Wait stops accepting tasks and blocks until queued ones finish.
// Submit must not be called after Wait.
func (p *Pool) Wait() {
	p.stop()
	p.wg.Wait()
}
