package pool

import (
	"context"
	"sync"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// DefaultQueueSize is the per-user buffer used when no size is configured
const DefaultQueueSize = 100

// ConversionJob is the work executed for one queued submission
type ConversionJob func(ctx context.Context) (*usecase.ConversionResult, error)

// UserQueue processes submissions of the same user one at a time, in arrival order.
// Submissions of different users run concurrently. A user's worker exits once its
// queue drains, so idle users hold no goroutine.
type UserQueue struct {
	logger    coreport.Logger
	queueSize int

	mu      sync.Mutex
	queues  map[string]*userQueue
	closed  bool
	workers sync.WaitGroup
}

type userQueue struct {
	jobs    chan *queuedJob
	pending int // guarded by UserQueue.mu
}

type queuedJob struct {
	ctx        context.Context
	run        ConversionJob
	resultChan chan jobResult
}

type jobResult struct {
	result *usecase.ConversionResult
	err    error
}

// NewUserQueue creates a new per-user queue
func NewUserQueue(logger coreport.Logger, queueSize int) *UserQueue {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &UserQueue{
		logger:    logger,
		queueSize: queueSize,
		queues:    make(map[string]*userQueue),
	}
}

// Submit enqueues job behind earlier submissions of the same user and waits for its result
func (q *UserQueue) Submit(ctx context.Context, userID string, job ConversionJob) (*usecase.ConversionResult, error) {
	queue, err := q.acquire(userID)
	if err != nil {
		return nil, err
	}

	req := &queuedJob{
		ctx:        ctx,
		run:        job,
		resultChan: make(chan jobResult, 1),
	}

	select {
	case queue.jobs <- req:
	case <-ctx.Done():
		if q.release(userID, queue) {
			// No job is buffered once pending hits zero, so the idle worker can be stopped
			close(queue.jobs)
		}
		q.logger.Warn("Context canceled while enqueueing conversion", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	select {
	case res := <-req.resultChan:
		return res.result, res.err
	case <-ctx.Done():
		q.logger.Warn("Context canceled while waiting for conversion result", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// acquire returns the user's queue, starting a worker when needed, and counts the caller as pending
func (q *UserQueue) acquire(userID string) (*userQueue, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, errs.ErrShuttingDown
	}

	queue, ok := q.queues[userID]
	if !ok {
		queue = &userQueue{jobs: make(chan *queuedJob, q.queueSize)}
		q.queues[userID] = queue
		q.workers.Add(1)
		go q.work(userID, queue)
		q.logger.Debug("Started conversion queue worker", map[string]any{"user_id": userID})
	}
	queue.pending++
	return queue, nil
}

// release drops one pending submission and reports whether the worker should stop
func (q *UserQueue) release(userID string, queue *userQueue) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	queue.pending--
	if queue.pending > 0 {
		return false
	}
	delete(q.queues, userID)
	return true
}

func (q *UserQueue) work(userID string, queue *userQueue) {
	defer q.workers.Done()

	for req := range queue.jobs {
		// The caller already gave up, skip rather than commit a result nobody sees
		if err := req.ctx.Err(); err != nil {
			req.resultChan <- jobResult{err: err}
		} else {
			result, err := req.run(req.ctx)
			req.resultChan <- jobResult{result: result, err: err}
		}

		if q.release(userID, queue) {
			q.logger.Debug("Conversion queue worker stopped", map[string]any{"user_id": userID})
			return
		}
	}
}

// Shutdown rejects new submissions and waits for queued ones to finish
func (q *UserQueue) Shutdown() {
	q.logger.Info("Shutting down conversion queue", nil)

	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.workers.Wait()
	q.logger.Info("Conversion queue shut down successfully", nil)
}
