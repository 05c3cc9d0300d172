package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/flow-server/internal/record"
)

// WealthPoint is the net wealth right after one applied transaction.
type WealthPoint struct {
	Date   string          `json:"date"`
	Wealth decimal.Decimal `json:"wealth"`
}

// Result is the derived state of a full replay.
type Result struct {
	Balances      Balances
	NetWealth     decimal.Decimal
	WealthHistory []WealthPoint
}

// Slice is one entry of the asset allocation view.
type Slice struct {
	Account record.Account
	Value   decimal.Decimal
}

// Replay recomputes balances and the wealth trend from the full transaction set.
// Records are applied in ascending date order; same-date records keep their input order.
// Records with a missing, non-numeric or zero amount are skipped. Records with an unknown
// type change nothing but still add a history point.
func Replay(records []record.TransactionRecord) Result {
	sorted := sortByDate(records)

	var balances Balances
	for i := range balances {
		balances[i] = decimal.Zero
	}
	history := make([]WealthPoint, 0, len(sorted))

	for _, rec := range sorted {
		if !rec.Amount.Usable() {
			continue
		}
		amount := rec.Amount.Value

		switch rec.Type {
		case record.TransactionTypeIncome:
			balances.credit(rec.ToAccount, amount)
		case record.TransactionTypeExpense:
			balances.debit(rec.FromAccount, amount)
		case record.TransactionTypeTransfer:
			balances.debit(rec.FromAccount, amount)
			balances.credit(rec.ToAccount, amount)
		}

		history = append(history, WealthPoint{Date: rec.Date, Wealth: balances.Total()})
	}

	return Result{
		Balances:      balances,
		NetWealth:     balances.Total(),
		WealthHistory: history,
	}
}

// Allocation returns the accounts holding a positive balance, in account order.
func (r Result) Allocation() []Slice {
	var slices []Slice
	for _, a := range record.Accounts() {
		if v := r.Balances.Get(a); v.IsPositive() {
			slices = append(slices, Slice{Account: a, Value: v})
		}
	}
	return slices
}

// sortByDate orders a copy of records by canonical date. Records whose date cannot be
// parsed sort after every dated record and keep their relative order.
func sortByDate(records []record.TransactionRecord) []record.TransactionRecord {
	type keyed struct {
		key string
		ok  bool
		rec record.TransactionRecord
	}
	items := make([]keyed, len(records))
	for i, rec := range records {
		key, err := record.CanonicalDate(rec.Date)
		items[i] = keyed{key: key, ok: err == nil, rec: rec}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.key < b.key
	})

	sorted := make([]record.TransactionRecord, len(items))
	for i, it := range items {
		sorted[i] = it.rec
	}
	return sorted
}
