package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/flow-server/internal/operator/actions"
	"github.com/carson-networks/flow-server/internal/record"
	"github.com/carson-networks/flow-server/internal/storage"
)

// directProcessor performs actions inline instead of through the worker queue.
type directProcessor struct {
	store storage.RowStore
}

func (p directProcessor) Process(ctx context.Context, action actions.IAction) error {
	return action.Perform(ctx, p.store)
}

var testNow = time.Date(2024, 5, 10, 21, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

// newTestService returns a service whose workspace has already loaded snapshot.
func newTestService(t *testing.T, snapshot *record.Snapshot) (*Service, *storage.MockRowStore) {
	t.Helper()
	store := storage.NewMockRowStore(t)
	svc := NewService(store, directProcessor{store: store}, fixedClock)

	if snapshot != nil {
		store.EXPECT().Fetch(mock.Anything).Return(snapshot, nil).Once()
		require.NoError(t, svc.Workspace.Refresh(context.Background()))
	}
	return svc, store
}
