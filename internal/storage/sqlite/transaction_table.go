package sqlite

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/flow-server/internal/record"
)

const transactionsTable = "transactions"

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// Insert appends a transaction row and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, txn record.TransactionRecord) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	q := sqlite.Insert(
		im.Into(transactionsTable, "id", "txn_date", "txn_type", "category", "amount", "from_account", "to_account", "notes"),
		im.Values(sqlite.Arg(
			id.String(),
			record.DateKey(txn.Date),
			string(txn.Type),
			txn.Category,
			amountToColumn(txn.Amount),
			txn.FromAccount,
			txn.ToAccount,
			txn.Notes,
		)),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return "", err
	}
	return id.String(), nil
}

// List returns every transaction in append order.
func (t *TransactionsTable) List(ctx context.Context) ([]*Transaction, error) {
	q := sqlite.Select(
		sm.Columns("seq", "id", "txn_date", "txn_type", "category", "amount", "from_account", "to_account", "notes"),
		sm.From(transactionsTable),
		sm.OrderBy("seq").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Transaction]())
}
