package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/flow-server/internal/record"
)

// Transaction represents a transactions table row.
type Transaction struct {
	ID          uuid.UUID           `db:"id"`
	Date        string              `db:"txn_date"`
	Type        string              `db:"txn_type"`
	Category    string              `db:"category"`
	Amount      decimal.NullDecimal `db:"amount"`
	FromAccount string              `db:"from_account"`
	ToAccount   string              `db:"to_account"`
	Notes       string              `db:"notes"`
	CreatedAt   time.Time           `db:"created_at"`
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ITransactionTable interface {
	Insert(ctx context.Context, txn record.TransactionRecord) (uuid.UUID, error)
	List(ctx context.Context) ([]*Transaction, error)
}

func transactionToRecord(row *Transaction) record.TransactionRecord {
	amount := record.Amount{}
	if row.Amount.Valid {
		amount = record.NewAmount(row.Amount.Decimal)
	}
	return record.TransactionRecord{
		Date:        row.Date,
		Type:        record.TransactionType(row.Type),
		Category:    row.Category,
		Amount:      amount,
		FromAccount: row.FromAccount,
		ToAccount:   row.ToAccount,
		Notes:       row.Notes,
		ID:          row.ID.String(),
	}
}

func amountToColumn(a record.Amount) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: a.Value, Valid: a.Valid}
}
