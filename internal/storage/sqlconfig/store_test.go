package sqlconfig

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/flow-server/internal/record"
)

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) Insert(ctx context.Context, txn record.TransactionRecord) (uuid.UUID, error) {
	args := m.Called(ctx, txn)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context) ([]*Transaction, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*Transaction)
	return rows, args.Error(1)
}

type mockJournalTable struct {
	mock.Mock
}

func (m *mockJournalTable) Upsert(ctx context.Context, entry record.JournalRecord) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockJournalTable) List(ctx context.Context) ([]*JournalEntry, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*JournalEntry)
	return rows, args.Error(1)
}

func TestTransactionToRecord(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	rec := transactionToRecord(&Transaction{
		ID:          id,
		Date:        "2024-01-01",
		Type:        "Transfer",
		Category:    "Invest",
		Amount:      decimal.NewNullDecimal(decimal.RequireFromString("99.5")),
		FromAccount: "Idle",
		ToAccount:   "Stocks",
		CreatedAt:   time.Now(),
	})

	assert.Equal(t, id.String(), rec.ID)
	assert.Equal(t, record.TransactionTypeTransfer, rec.Type)
	assert.True(t, rec.Amount.Valid)
	assert.True(t, rec.Amount.Value.Equal(decimal.RequireFromString("99.5")))

	missing := transactionToRecord(&Transaction{ID: id})
	assert.False(t, missing.Amount.Valid)
}

func TestAmountToColumn(t *testing.T) {
	assert.False(t, amountToColumn(record.Amount{}).Valid)
	col := amountToColumn(record.ParseAmount("12"))
	assert.True(t, col.Valid)
	assert.True(t, col.Decimal.Equal(decimal.RequireFromString("12")))
}

func TestJournalToRecord(t *testing.T) {
	rec := journalToRecord(&JournalEntry{
		EntryDate:   "2024-01-02",
		TextEntry:   "ok",
		Diet:        3,
		StockMarket: -2,
		Mood:        9,
	})

	assert.Equal(t, "2024-01-02", rec.Date)
	assert.Equal(t, record.Rating(3), rec.Habits.Get(record.HabitDiet))
	assert.Equal(t, record.Rating(-2), rec.Habits.Get(record.HabitStockMarket))
	assert.Equal(t, record.Rating(0), rec.Habits.Get(record.HabitMood))
}

func TestHabitColumnsMatchRatings(t *testing.T) {
	entry := &JournalEntry{Diet: 1, Fitness: 2, Productive: 3, Business: -1, StockMarket: -2, Tech: 1, Md: 2, Mood: 3, Social: -1}
	rec := journalToRecord(entry)
	assert.Equal(t, record.Rating(2), rec.Habits.Get(record.HabitFitness))
	assert.Equal(t, record.Rating(-1), rec.Habits.Get(record.HabitBusiness))
	assert.Equal(t, record.Rating(-1), rec.Habits.Get(record.HabitSocial))
	assert.Equal(t, "stock_market", habitColumns[record.HabitStockMarket])
}

func TestStore_Fetch(t *testing.T) {
	txns := new(mockTransactionTable)
	journal := new(mockJournalTable)
	store := &Store{Transactions: txns, Journal: journal}

	txns.On("List", mock.Anything).Return([]*Transaction{
		{ID: uuid.Must(uuid.NewV4()), Date: "2024-01-01", Type: "Income", Amount: decimal.NewNullDecimal(decimal.NewFromInt(5)), ToAccount: "Idle"},
	}, nil)
	journal.On("List", mock.Anything).Return([]*JournalEntry{{EntryDate: "2024-01-01", Tech: 2}}, nil)

	snapshot, err := store.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Transactions, 1)
	require.Len(t, snapshot.Journal, 1)
	assert.Equal(t, record.Rating(2), snapshot.Journal[0].Habits.Get(record.HabitTech))
	assert.NoError(t, store.Close())
}

func TestStore_FetchError(t *testing.T) {
	txns := new(mockTransactionTable)
	store := &Store{Transactions: txns, Journal: new(mockJournalTable)}
	txns.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := store.Fetch(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestStore_Writes(t *testing.T) {
	txns := new(mockTransactionTable)
	journal := new(mockJournalTable)
	store := &Store{Transactions: txns, Journal: journal}

	txn := record.TransactionRecord{Date: "2024-01-01", Type: record.TransactionTypeIncome, Amount: record.ParseAmount("5")}
	entry := record.JournalRecord{Date: "2024-01-01", Text: "x"}
	txns.On("Insert", mock.Anything, txn).Return(uuid.Must(uuid.NewV4()), nil)
	journal.On("Upsert", mock.Anything, entry).Return(errors.New("deadlock"))

	assert.NoError(t, store.AppendTransaction(context.Background(), txn))
	assert.EqualError(t, store.UpsertJournal(context.Background(), entry), "deadlock")
	txns.AssertExpectations(t)
	journal.AssertExpectations(t)
}
