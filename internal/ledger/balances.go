package ledger

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/flow-server/internal/record"
)

// Balances holds one signed running total per balance account.
type Balances [record.AccountCount]decimal.Decimal

// Get returns the balance of a.
func (b Balances) Get(a record.Account) decimal.Decimal {
	return b[a]
}

// Total is the sum of all balances.
func (b Balances) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range b {
		total = total.Add(v)
	}
	return total
}

// ByLabel returns the balances keyed by account label.
func (b Balances) ByLabel() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, record.AccountCount)
	for _, a := range record.Accounts() {
		m[a.String()] = b[a]
	}
	return m
}

func (b Balances) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.ByLabel())
}

func (b *Balances) credit(label string, amount decimal.Decimal) {
	if a, ok := record.ParseAccount(label); ok {
		b[a] = b[a].Add(amount)
	}
}

func (b *Balances) debit(label string, amount decimal.Decimal) {
	if a, ok := record.ParseAccount(label); ok {
		b[a] = b[a].Sub(amount)
	}
}
