package ledger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/flow-server/internal/record"
)

func TestBalances_IgnoreUnknownLabels(t *testing.T) {
	var b Balances
	for i := range b {
		b[i] = dec("0")
	}
	b.credit("Idle", dec("10"))
	b.credit("External", dec("99"))
	b.debit("Personal", dec("99"))
	b.debit("Mutual Funds", dec("3"))

	assert.True(t, b.Get(record.AccountIdle).Equal(dec("10")))
	assert.True(t, b.Get(record.AccountMutualFunds).Equal(dec("-3")))
	assert.True(t, b.Total().Equal(dec("7")))
}

func TestBalances_MarshalByLabel(t *testing.T) {
	result := Replay([]record.TransactionRecord{
		txn("2024-01-01", record.TransactionTypeIncome, "12.5", "", "Intraday"),
	})

	out, err := json.Marshal(result.Balances)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Len(t, decoded, record.AccountCount)
	assert.Equal(t, "12.5", decoded["Intraday"])
	assert.Equal(t, "0", decoded["Mutual Funds"])
}
