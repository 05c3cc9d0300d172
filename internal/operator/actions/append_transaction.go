package actions

import (
	"context"

	"github.com/carson-networks/flow-server/internal/record"
	"github.com/carson-networks/flow-server/internal/storage"
)

type AppendTransaction struct {
	Transaction record.TransactionRecord
}

func (a *AppendTransaction) Name() string {
	return "AppendTransaction"
}

// Perform sends the row without its local temporary ID; the store assigns the real one.
func (a *AppendTransaction) Perform(ctx context.Context, store storage.RowStore) error {
	txn := a.Transaction
	txn.ID = ""
	return store.AppendTransaction(ctx, txn)
}
