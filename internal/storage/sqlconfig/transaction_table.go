package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/flow-server/internal/record"
)

const transactionsTable = "transactions"

var transactionColumns = []string{
	"id", "txn_date", "txn_type", "category", "amount", "from_account", "to_account", "notes", "created_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// Insert appends a transaction row and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, txn record.TransactionRecord) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into(transactionsTable, "id", "txn_date", "txn_type", "category", "amount", "from_account", "to_account", "notes"),
		im.Values(psql.Arg(
			id,
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
		return uuid.Nil, err
	}
	return id, nil
}

// List returns every transaction in append order.
func (t *TransactionsTable) List(ctx context.Context) ([]*Transaction, error) {
	columns := make([]any, len(transactionColumns))
	for i, c := range transactionColumns {
		columns[i] = c
	}

	q := psql.Select(
		sm.Columns(columns...),
		sm.From(transactionsTable),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Transaction]())
}
