package service

import (
	"context"
	"time"

	"github.com/carson-networks/flow-server/internal/operator/actions"
	"github.com/carson-networks/flow-server/internal/storage"
)

// actionProcessor runs a store write and reports its result.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Workspace   *Workspace
	Transaction *TransactionService
	Journal     *JournalService
}

// NewService creates a new Service over store. Writes go through processor and
// "today" is the calendar day of now().
func NewService(store storage.RowStore, processor actionProcessor, now func() time.Time) *Service {
	ws := NewWorkspace(store, now)
	return &Service{
		Workspace:   ws,
		Transaction: NewTransactionService(ws, processor, now),
		Journal:     NewJournalService(ws, processor, now),
	}
}

// ClockIn returns a clock reading the current time in loc.
func ClockIn(loc *time.Location) func() time.Time {
	return func() time.Time {
		return time.Now().In(loc)
	}
}
