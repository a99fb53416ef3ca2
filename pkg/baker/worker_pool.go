package baker

import (
	"context"
	"image"
	"runtime"
	"sync"
)

// TileFunc fills the pixels inside bounds. Calls for disjoint bounds may run concurrently.
type TileFunc func(bounds image.Rectangle)

// TileTask represents a tile baking task for the worker pool
type TileTask struct {
	Ctx    context.Context
	Tile   *Tile
	TaskID int // For deterministic ordering
}

// TileResult contains the result from baking a tile
type TileResult struct {
	TaskID int
	Pixels int
	Error  error
}

// WorkerPool manages parallel tile baking
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile tasks
type Worker struct {
	ID          int
	render      TileFunc
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a worker pool able to hold maxTasks queued tasks and results
func NewWorkerPool(render TileFunc, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTasks),   // Buffer for all tiles
		resultQueue: make(chan TileResult, maxTasks), // Buffer for all results
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			render:      render,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for queued tasks to finish and shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if task.Ctx != nil && task.Ctx.Err() != nil {
			w.resultQueue <- TileResult{TaskID: task.TaskID, Error: task.Ctx.Err()}
			continue
		}

		// Each tile has non-overlapping bounds, so writing to the shared image is safe
		w.render(task.Tile.Bounds)

		w.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Pixels: task.Tile.Bounds.Dx() * task.Tile.Bounds.Dy(),
		}
	}
}
