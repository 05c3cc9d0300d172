package operator

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/flow-server/internal/operator/actions"
	"github.com/carson-networks/flow-server/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	store storage.RowStore
	queue chan ActionItem
}

func NewOperator(s storage.RowStore, queue chan ActionItem) *Operator {
	return &Operator{
		store: s,
		queue: queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

// processItem skips items whose requester gave up while they were queued. A started
// write runs to completion regardless of the request.
func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	start := time.Now()
	err := item.action.Perform(context.WithoutCancel(item.ctx), o.store)
	entry := logrus.WithFields(logrus.Fields{
		"action":     item.action.Name(),
		"durationMs": time.Since(start).Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Error("Operator.processItem.Error")
		item.response <- ActionItemResponse{err: err}
		return
	}

	entry.Info("Operator.processItem.Complete")
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
