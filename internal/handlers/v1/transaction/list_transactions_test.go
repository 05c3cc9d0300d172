package transaction

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/flow-server/internal/record"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(search string) []record.TransactionRecord {
	args := m.Called(search)
	txns, _ := args.Get(0).([]record.TransactionRecord)
	return txns
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListTransactions_Empty(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", "").Return(nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transaction")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_WithSearch(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", "rent").Return([]record.TransactionRecord{
		{
			ID:          "r-2",
			Date:        "2024-02-01",
			Type:        record.TransactionTypeExpense,
			Category:    "Rent",
			Amount:      record.ParseAmount("900"),
			FromAccount: "Idle",
			ToAccount:   "External",
		},
		{
			ID:       "r-1",
			Date:     "2024-01-01",
			Type:     record.TransactionTypeExpense,
			Category: "Rent",
			Amount:   record.ParseAmount("not a number"),
		},
	})

	resp := newListTestAPI(t, mockSvc).Get("/v1/transaction?search=rent")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	if assert.Len(t, body.Transactions, 2) {
		assert.Equal(t, "r-2", body.Transactions[0].ID)
		assert.Equal(t, "900", body.Transactions[0].Amount)
		assert.Equal(t, "Expense", body.Transactions[0].Type)
		assert.Empty(t, body.Transactions[1].Amount)
	}
	mockSvc.AssertExpectations(t)
}
