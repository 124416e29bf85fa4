package assets

import (
	"runtime"
	"sync"
)

// workerPool runs fetch/decode jobs on a fixed set of goroutines so startup
// loading can overlap network or disk latency across assets.
type workerPool struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
}

func newWorkerPool(numWorkers int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

func (wp *workerPool) start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

func (wp *workerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
			wp.wg.Done()
		case <-wp.quit:
			return
		}
	}
}

func (wp *workerPool) submit(job func()) {
	wp.wg.Add(1)
	wp.jobQueue <- job
}

func (wp *workerPool) wait() {
	wp.wg.Wait()
}

func (wp *workerPool) stop() {
	close(wp.quit)
}
