package transaction

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/flow-server/internal/record"
	"github.com/carson-networks/flow-server/internal/service"
	"github.com/carson-networks/flow-server/internal/storage"
)

type mockTransactionCreator struct {
	mock.Mock
}

func (m *mockTransactionCreator) CreateTransaction(ctx context.Context, txn record.TransactionRecord) (record.TransactionRecord, error) {
	args := m.Called(ctx, txn)
	created, _ := args.Get(0).(record.TransactionRecord)
	return created, args.Error(1)
}

func newTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Date:        "2024-03-01",
			Type:        "Transfer",
			Category:    "Invest",
			Amount:      "250.75",
			FromAccount: "Idle",
			ToAccount:   "Mutual Funds",
			Notes:       "SIP",
		},
	}

	txn, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-01", txn.Date)
	assert.Equal(t, record.TransactionTypeTransfer, txn.Type)
	assert.Equal(t, "Invest", txn.Category)
	assert.True(t, txn.Amount.Valid)
	assert.True(t, txn.Amount.Value.Equal(decimal.RequireFromString("250.75")))
	assert.Equal(t, "Idle", txn.FromAccount)
	assert.Equal(t, "Mutual Funds", txn.ToAccount)
	assert.Equal(t, "SIP", txn.Notes)
	assert.Empty(t, txn.ID)
}

func TestParseCreateTransactionInput_InvalidAmount(t *testing.T) {
	for _, amount := range []string{"abc", "0", "-5"} {
		t.Run(amount, func(t *testing.T) {
			_, err := parseCreateTransactionInput(&CreateTransactionInput{
				Body: CreateTransactionBody{Type: "Expense", Category: "Food", Amount: amount},
			})
			assert.Error(t, err)
		})
	}
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(txn record.TransactionRecord) bool {
		return txn.Type == record.TransactionTypeExpense &&
			txn.Category == "Food" &&
			txn.Amount.Value.Equal(decimal.RequireFromString("12.50")) &&
			txn.FromAccount == "" && txn.ToAccount == ""
	})).Return(record.TransactionRecord{
		ID:          "tmp-1",
		Date:        "2024-01-02",
		Type:        record.TransactionTypeExpense,
		Category:    "Food",
		Amount:      record.ParseAmount("12.50"),
		FromAccount: "Idle",
		ToAccount:   "External",
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Type:     "Expense",
		Category: "Food",
		Amount:   "12.50",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tmp-1", body.ID)
	assert.Equal(t, "12.5", body.Amount)
	assert.Equal(t, "Idle", body.FromAccount)
	assert.Equal(t, "External", body.ToAccount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", map[string]any{
		"type": "Expense",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_UnknownType(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Type:     "Gift",
		Category: "Misc",
		Amount:   "10",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_NonPositiveAmount(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Type:     "Income",
		Category: "Salary",
		Amount:   "0",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_ValidationFailure(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: unknown account %q", service.ErrInvalidTransaction, "Savings"))

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Type:        "Expense",
		Category:    "Food",
		Amount:      "1",
		FromAccount: "Savings",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_StoreFailure(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, &storage.StoreError{Op: "append_transaction", Message: "sheet is locked"})

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Type:     "Expense",
		Category: "Food",
		Amount:   "1",
	})

	assert.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Contains(t, resp.Body.String(), "sheet is locked")
	mockSvc.AssertExpectations(t)
}
