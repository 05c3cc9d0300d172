package record

// Account is one of the fixed balance accumulators tracked by the ledger.
type Account int8

const (
	AccountIdle Account = iota
	AccountStocks
	AccountMutualFunds
	AccountBusiness
	AccountIntraday
	AccountOthers

	AccountCount = int(AccountOthers) + 1
)

// Counterparty labels can be selected on a transaction but never hold a balance.
const (
	CounterpartyExternal = "External"
	CounterpartyPersonal = "Personal"
)

var accountLabels = [AccountCount]string{
	AccountIdle:        "Idle",
	AccountStocks:      "Stocks",
	AccountMutualFunds: "Mutual Funds",
	AccountBusiness:    "Business",
	AccountIntraday:    "Intraday",
	AccountOthers:      "Others",
}

// Accounts returns every balance account in display order.
func Accounts() []Account {
	accounts := make([]Account, AccountCount)
	for i := range accounts {
		accounts[i] = Account(i)
	}
	return accounts
}

func (a Account) String() string {
	if a < 0 || int(a) >= AccountCount {
		return "Unknown"
	}
	return accountLabels[a]
}

// ParseAccount resolves a row label to a balance account.
// Counterparties and unknown labels report false.
func ParseAccount(label string) (Account, bool) {
	for i, l := range accountLabels {
		if l == label {
			return Account(i), true
		}
	}
	return 0, false
}

// IsSelectableAccount reports whether label may appear in the from/to fields of a new transaction.
func IsSelectableAccount(label string) bool {
	if _, ok := ParseAccount(label); ok {
		return true
	}
	return label == CounterpartyExternal || label == CounterpartyPersonal
}
