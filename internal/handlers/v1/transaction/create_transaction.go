package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/flow-server/internal/handlers"
	"github.com/carson-networks/flow-server/internal/logging"
	"github.com/carson-networks/flow-server/internal/record"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Date        string `json:"date,omitempty" doc:"YYYY-MM-DD transaction date, defaults to today"`
	Type        string `json:"type" required:"true" enum:"Income,Expense,Transfer" doc:"Transaction type"`
	Category    string `json:"category" required:"true" minLength:"1" doc:"Free-form category"`
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount"`
	FromAccount string `json:"fromAccount,omitempty" doc:"Source account, defaults by type"`
	ToAccount   string `json:"toAccount,omitempty" doc:"Destination account, defaults by type"`
	Notes       string `json:"notes,omitempty" doc:"Free-form notes"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, txn record.TransactionRecord) (record.TransactionRecord, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Appends a transaction. It is visible in every view before the store confirms it.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput turns the request body into a record.
// Account defaults and date normalisation are left to the service.
func parseCreateTransactionInput(input *CreateTransactionInput) (record.TransactionRecord, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return record.TransactionRecord{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.IsPositive() {
		return record.TransactionRecord{}, huma.NewError(http.StatusBadRequest, "amount must be positive")
	}

	return record.TransactionRecord{
		Date:        input.Body.Date,
		Type:        record.TransactionType(input.Body.Type),
		Category:    input.Body.Category,
		Amount:      record.NewAmount(amount),
		FromAccount: input.Body.FromAccount,
		ToAccount:   input.Body.ToAccount,
		Notes:       input.Body.Notes,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	txn, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	created, err := h.TransactionService.CreateTransaction(ctx, txn)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.ServiceError(err, "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", created.ID)
	}
	return &CreateTransactionOutput{Status: http.StatusCreated, Body: fromRecord(created)}, nil
}
