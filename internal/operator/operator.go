package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-fx/internal/operator/actions"
	"github.com/carson-networks/budget-fx/internal/storage"
)

// WriterSource opens a writer bound to a fresh database transaction.
type WriterSource interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage WriterSource
	queue   chan ActionItem
	stop    <-chan struct{}
	logger  *logrus.Logger
}

func NewOperator(s WriterSource, queue chan ActionItem, stop <-chan struct{}, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		stop:    stop,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits once stop is closed.
func (o *Operator) Run() {
	for {
		select {
		case <-o.stop:
			return
		case item := <-o.queue:
			o.processItem(item)
		}
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rbErr := writer.Rollback(item.ctx); rbErr != nil {
			o.logger.WithError(rbErr).Error("Operator.processItem.rollback")
		}
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(item.ctx); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	// The write is durable at this point; hook failures are logged, not returned.
	if hook, ok := item.action.(actions.IAfterCommit); ok {
		if err := hook.AfterCommit(item.ctx); err != nil {
			o.logger.WithError(err).Warn("Operator.processItem.afterCommit")
		}
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
