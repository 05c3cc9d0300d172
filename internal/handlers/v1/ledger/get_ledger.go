package ledger

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/flow-server/internal/ledger"
	"github.com/carson-networks/flow-server/internal/logging"
	"github.com/carson-networks/flow-server/internal/record"
)

// Balance is one account's balance.
type Balance struct {
	Account string `json:"account" doc:"Account label"`
	Balance string `json:"balance" doc:"Decimal balance"`
}

// WealthPoint is the net wealth right after one applied transaction.
type WealthPoint struct {
	Date   string `json:"date" doc:"Date of the transaction"`
	Wealth string `json:"wealth" doc:"Decimal net wealth"`
}

// LedgerBody is the response body for the ledger.
type LedgerBody struct {
	Balances      []Balance     `json:"balances" doc:"Balance of every account in fixed order"`
	NetWealth     string        `json:"netWealth" doc:"Sum of all balances"`
	WealthHistory []WealthPoint `json:"wealthHistory" doc:"Net wealth after each applied transaction, oldest first"`
	Allocation    []Balance     `json:"allocation" doc:"Accounts with a positive balance"`
}

// GetLedgerOutput is the Huma output for the ledger.
type GetLedgerOutput struct {
	Body LedgerBody
}

type ledgerReplayer interface {
	Ledger() ledger.Result
}

// GetLedgerHandler handles GET /v1/ledger.
type GetLedgerHandler struct {
	TransactionService ledgerReplayer
}

func NewGetLedgerHandler(svc ledgerReplayer) *GetLedgerHandler {
	return &GetLedgerHandler{TransactionService: svc}
}

func (h *GetLedgerHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-ledger",
		Method:      http.MethodGet,
		Path:        "/v1/ledger",
		Summary:     "Get ledger",
		Description: "Replays every transaction into account balances, net wealth and the wealth trend.",
		Tags:        []string{"Ledger"},
	}, h.handle)
}

func (h *GetLedgerHandler) handle(ctx context.Context, _ *struct{}) (*GetLedgerOutput, error) {
	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("replayMs")
	}
	result := h.TransactionService.Ledger()
	if stopTimer != nil {
		stopTimer()
	}
	if logData != nil {
		logData.AddData("historyPoints", len(result.WealthHistory))
	}

	return &GetLedgerOutput{Body: toBody(result)}, nil
}

func toBody(result ledger.Result) LedgerBody {
	body := LedgerBody{
		Balances:      make([]Balance, 0, record.AccountCount),
		NetWealth:     result.NetWealth.String(),
		WealthHistory: make([]WealthPoint, len(result.WealthHistory)),
		Allocation:    []Balance{},
	}
	for _, account := range record.Accounts() {
		body.Balances = append(body.Balances, Balance{
			Account: account.String(),
			Balance: result.Balances.Get(account).String(),
		})
	}
	for i, point := range result.WealthHistory {
		body.WealthHistory[i] = WealthPoint{Date: point.Date, Wealth: point.Wealth.String()}
	}
	for _, slice := range result.Allocation() {
		body.Allocation = append(body.Allocation, Balance{
			Account: slice.Account.String(),
			Balance: slice.Value.String(),
		})
	}
	return body
}
