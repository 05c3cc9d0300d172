package record

// TransactionType is the kind of money movement a row describes.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "Income"
	TransactionTypeExpense  TransactionType = "Expense"
	TransactionTypeTransfer TransactionType = "Transfer"
)

// Known reports whether t is one of the three supported transaction types.
func (t TransactionType) Known() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// DefaultAccounts returns the from/to labels a new transaction of type t starts with.
func DefaultAccounts(t TransactionType) (from string, to string) {
	switch t {
	case TransactionTypeIncome:
		return CounterpartyExternal, AccountIdle.String()
	case TransactionTypeTransfer:
		return AccountIdle.String(), AccountStocks.String()
	default:
		return AccountIdle.String(), CounterpartyExternal
	}
}

// TransactionRecord is one append-only row of the transactions sheet.
type TransactionRecord struct {
	Date        string          `json:"date"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      Amount          `json:"amount"`
	FromAccount string          `json:"fromAccount"`
	ToAccount   string          `json:"toAccount"`
	Notes       string          `json:"notes,omitempty"`
	// ID is assigned by the store at append time and may be empty on local rows.
	ID string `json:"id,omitempty"`
}
