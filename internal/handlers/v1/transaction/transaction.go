package transaction

import "github.com/carson-networks/flow-server/internal/record"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id,omitempty" doc:"Store-assigned ID, tmp- prefixed until the next refresh"`
	Date        string `json:"date" doc:"YYYY-MM-DD transaction date"`
	Type        string `json:"type" doc:"Income, Expense or Transfer"`
	Category    string `json:"category" doc:"Free-form category"`
	Amount      string `json:"amount" doc:"Decimal amount, empty when the stored amount is not a number"`
	FromAccount string `json:"fromAccount" doc:"Source account"`
	ToAccount   string `json:"toAccount" doc:"Destination account"`
	Notes       string `json:"notes,omitempty" doc:"Free-form notes"`
}

func fromRecord(rec record.TransactionRecord) Transaction {
	txn := Transaction{
		ID:          rec.ID,
		Date:        rec.Date,
		Type:        string(rec.Type),
		Category:    rec.Category,
		FromAccount: rec.FromAccount,
		ToAccount:   rec.ToAccount,
		Notes:       rec.Notes,
	}
	if rec.Amount.Valid {
		txn.Amount = rec.Amount.Value.String()
	}
	return txn
}
