package ledger

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/flow-server/internal/record"
)

func txn(date string, typ record.TransactionType, amount string, from string, to string) record.TransactionRecord {
	return record.TransactionRecord{
		Date:        date,
		Type:        typ,
		Amount:      record.ParseAmount(amount),
		FromAccount: from,
		ToAccount:   to,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestReplay_SortsByDate(t *testing.T) {
	result := Replay([]record.TransactionRecord{
		txn("2024-01-02", record.TransactionTypeIncome, "1000", "", "Idle"),
		txn("2024-01-01", record.TransactionTypeExpense, "200", "Idle", ""),
	})

	assert.True(t, result.Balances.Get(record.AccountIdle).Equal(dec("800")))
	assert.True(t, result.NetWealth.Equal(dec("800")))
	require.Len(t, result.WealthHistory, 2)
	assert.Equal(t, "2024-01-01", result.WealthHistory[0].Date)
	assert.True(t, result.WealthHistory[0].Wealth.Equal(dec("-200")))
	assert.Equal(t, "2024-01-02", result.WealthHistory[1].Date)
	assert.True(t, result.WealthHistory[1].Wealth.Equal(dec("800")))
}

func TestReplay_Empty(t *testing.T) {
	result := Replay(nil)

	assert.True(t, result.NetWealth.IsZero())
	assert.Empty(t, result.WealthHistory)
	for _, a := range record.Accounts() {
		assert.True(t, result.Balances.Get(a).IsZero())
	}
	assert.Empty(t, result.Allocation())
}

func TestReplay_PermutationInvariant(t *testing.T) {
	records := []record.TransactionRecord{
		txn("2024-01-01", record.TransactionTypeIncome, "5000", "External", "Idle"),
		txn("2024-01-03", record.TransactionTypeTransfer, "1500", "Idle", "Stocks"),
		txn("2024-01-03", record.TransactionTypeTransfer, "700.25", "Idle", "Mutual Funds"),
		txn("2024-01-04", record.TransactionTypeExpense, "99.99", "Idle", "External"),
		txn("2024-01-05", record.TransactionTypeIncome, "abc", "External", "Idle"),
		txn("2024-01-06", record.TransactionTypeExpense, "10", "Business", "External"),
		txn("2024-01-02", record.TransactionTypeIncome, "300", "External", "Intraday"),
	}
	expected := Replay(records)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]record.TransactionRecord(nil), records...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Replay(shuffled)
		for _, a := range record.Accounts() {
			assert.True(t, expected.Balances.Get(a).Equal(got.Balances.Get(a)), a.String())
		}
		assert.True(t, expected.NetWealth.Equal(got.NetWealth))
		assert.Len(t, got.WealthHistory, 6)
	}
}

func TestReplay_NetWealthIsSumOfBalances(t *testing.T) {
	result := Replay([]record.TransactionRecord{
		txn("2024-01-01", record.TransactionTypeIncome, "100", "", "Idle"),
		txn("2024-01-02", record.TransactionTypeIncome, "50.5", "", "Others"),
		txn("2024-01-03", record.TransactionTypeExpense, "20", "Stocks", ""),
	})
	assert.True(t, result.NetWealth.Equal(result.Balances.Total()))
	assert.True(t, result.NetWealth.Equal(dec("130.5")))
}

func TestReplay_SkipsUnusableAmounts(t *testing.T) {
	result := Replay([]record.TransactionRecord{
		txn("2024-01-01", record.TransactionTypeIncome, "", "", "Idle"),
		txn("2024-01-02", record.TransactionTypeIncome, "0", "", "Idle"),
		txn("2024-01-03", record.TransactionTypeIncome, "NaN-ish", "", "Idle"),
		txn("2024-01-04", record.TransactionTypeIncome, "10", "", "Idle"),
	})

	require.Len(t, result.WealthHistory, 1)
	assert.Equal(t, "2024-01-04", result.WealthHistory[0].Date)
	assert.True(t, result.NetWealth.Equal(dec("10")))
}

func TestReplay_PartialTransfer(t *testing.T) {
	result := Replay([]record.TransactionRecord{
		txn("2024-01-01", record.TransactionTypeTransfer, "250", "Idle", "Savings"),
		txn("2024-01-02", record.TransactionTypeTransfer, "100", "Wallet", "Business"),
	})

	assert.True(t, result.Balances.Get(record.AccountIdle).Equal(dec("-250")))
	assert.True(t, result.Balances.Get(record.AccountBusiness).Equal(dec("100")))
	assert.True(t, result.NetWealth.Equal(dec("-150")))
	assert.Len(t, result.WealthHistory, 2)
}

func TestReplay_UnknownTypeStillRecordsPoint(t *testing.T) {
	result := Replay([]record.TransactionRecord{
		txn("2024-01-01", record.TransactionTypeIncome, "100", "", "Idle"),
		txn("2024-01-02", "Refund", "40", "Idle", "Idle"),
	})

	require.Len(t, result.WealthHistory, 2)
	assert.True(t, result.WealthHistory[1].Wealth.Equal(dec("100")))
}

func TestReplay_SameDateKeepsInputOrder(t *testing.T) {
	result := Replay([]record.TransactionRecord{
		txn("2024-01-01", record.TransactionTypeIncome, "100", "", "Idle"),
		txn("2024-01-01", record.TransactionTypeExpense, "30", "Idle", ""),
		txn("2024-01-01", record.TransactionTypeIncome, "5", "", "Idle"),
	})

	require.Len(t, result.WealthHistory, 3)
	assert.True(t, result.WealthHistory[0].Wealth.Equal(dec("100")))
	assert.True(t, result.WealthHistory[1].Wealth.Equal(dec("70")))
	assert.True(t, result.WealthHistory[2].Wealth.Equal(dec("75")))
}

func TestReplay_UndatedRecordsApplyLast(t *testing.T) {
	result := Replay([]record.TransactionRecord{
		txn("someday", record.TransactionTypeExpense, "10", "Idle", ""),
		txn("2024-01-05", record.TransactionTypeIncome, "100", "", "Idle"),
		txn("2024-01-01T12:00:00Z", record.TransactionTypeIncome, "1", "", "Idle"),
	})

	require.Len(t, result.WealthHistory, 3)
	assert.Equal(t, "2024-01-01T12:00:00Z", result.WealthHistory[0].Date)
	assert.Equal(t, "2024-01-05", result.WealthHistory[1].Date)
	assert.Equal(t, "someday", result.WealthHistory[2].Date)
	assert.True(t, result.WealthHistory[2].Wealth.Equal(dec("91")))
}

func TestResult_Allocation(t *testing.T) {
	result := Replay([]record.TransactionRecord{
		txn("2024-01-01", record.TransactionTypeIncome, "100", "", "Idle"),
		txn("2024-01-02", record.TransactionTypeIncome, "40", "", "Others"),
		txn("2024-01-03", record.TransactionTypeExpense, "5", "Stocks", ""),
	})

	slices := result.Allocation()
	require.Len(t, slices, 2)
	assert.Equal(t, record.AccountIdle, slices[0].Account)
	assert.Equal(t, record.AccountOthers, slices[1].Account)
	assert.True(t, slices[1].Value.Equal(dec("40")))
}
