package actions

import (
	"context"

	"github.com/carson-networks/flow-server/internal/storage"
)

// IAction is one write against the row store, run by an operator worker.
type IAction interface {
	Name() string
	Perform(ctx context.Context, store storage.RowStore) error
}
