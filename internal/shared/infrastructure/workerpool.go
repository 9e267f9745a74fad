package infrastructure

import (
	"context"
	"fmt"
	"sync"
)

// Task représente une tâche à exécuter
type Task func(ctx context.Context) error

// WorkerPool exécute des tâches en parallèle et s'arrête à la première erreur
type WorkerPool struct {
	workerCount int
	tasks       chan Task
	firstErr    chan error
	wg          sync.WaitGroup
	parent      context.Context
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewWorkerPool crée un nouveau pool de workers lié au contexte parent
func NewWorkerPool(ctx context.Context, workerCount int) *WorkerPool {
	if workerCount <= 0 {
		workerCount = 1
	}
	poolCtx, cancel := context.WithCancel(ctx)
	return &WorkerPool{
		workerCount: workerCount,
		tasks:       make(chan Task, workerCount*2),
		firstErr:    make(chan error, 1),
		parent:      ctx,
		ctx:         poolCtx,
		cancel:      cancel,
	}
}

// worker est la routine d'exécution des tâches
func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.ctx.Done():
			return
		case task, ok := <-wp.tasks:
			if !ok {
				return
			}
			if err := task(wp.ctx); err != nil {
				select {
				case wp.firstErr <- err:
					// les autres tâches n'ont plus d'intérêt
					wp.cancel()
				default:
				}
			}
		}
	}
}

// Start démarre les workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

// Submit soumet une tâche au pool
func (wp *WorkerPool) Submit(task Task) error {
	select {
	case <-wp.ctx.Done():
		return fmt.Errorf("worker pool is stopped")
	case wp.tasks <- task:
		return nil
	}
}

// Wait ferme la file, attend la fin des workers et retourne la première erreur
func (wp *WorkerPool) Wait() error {
	close(wp.tasks)
	wp.wg.Wait()
	wp.cancel()

	select {
	case err := <-wp.firstErr:
		return err
	default:
	}
	return wp.parent.Err()
}
