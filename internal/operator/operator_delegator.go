package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-fx/internal/operator/actions"
)

const queueSize = 1000

// ErrStopped is returned by Process once the delegator has been stopped.
var ErrStopped = errors.New("operator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage    WriterSource
	logger     *logrus.Logger
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
	// stop tells workers to exit; done is closed after they have.
	stop chan struct{}
	done chan struct{}
}

func NewOperatorDelegator(s WriterSource, numWorkers int, logger *logrus.Logger) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		storage:    s,
		logger:     logger,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue, d.stop, d.logger)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop waits for in-progress actions to finish. Items still queued are
// answered with ErrStopped.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.stop)
		d.wg.Wait()
		close(d.done)
	})
}

// Process enqueues action and waits for a worker to perform it in its own
// database transaction.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	select {
	case <-d.stop:
		return ErrStopped
	default:
	}

	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	select {
	case d.queue <- item:
	case <-d.stop:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-d.done:
		// a worker may have answered just before exiting
		select {
		case resp := <-respCh:
			return resp.err
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}
