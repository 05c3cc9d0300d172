package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/flow-server/internal/ledger"
	"github.com/carson-networks/flow-server/internal/operator/actions"
	"github.com/carson-networks/flow-server/internal/record"
)

const tempIDPrefix = "tmp-"

var ErrInvalidTransaction = errors.New("invalid transaction")

// TransactionService handles transaction business logic.
type TransactionService struct {
	workspace *Workspace
	processor actionProcessor
	now       func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(ws *Workspace, processor actionProcessor, now func() time.Time) *TransactionService {
	return &TransactionService{workspace: ws, processor: processor, now: now}
}

// CreateTransaction validates txn, shows it in every view immediately under a temporary
// ID and appends it to the row store. A failed append is withdrawn from the view.
func (s *TransactionService) CreateTransaction(ctx context.Context, txn record.TransactionRecord) (record.TransactionRecord, error) {
	txn, err := s.normalize(txn)
	if err != nil {
		return record.TransactionRecord{}, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return record.TransactionRecord{}, err
	}
	txn.ID = tempIDPrefix + id.String()

	staged := txn
	mutationID := s.workspace.stage(mutation{transaction: &staged})

	if err := s.processor.Process(ctx, &actions.AppendTransaction{Transaction: txn}); err != nil {
		s.workspace.discard(mutationID)
		return record.TransactionRecord{}, err
	}
	s.workspace.confirm(mutationID)

	return txn, nil
}

func (s *TransactionService) normalize(txn record.TransactionRecord) (record.TransactionRecord, error) {
	if !txn.Type.Known() {
		return txn, fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, txn.Type)
	}

	defaultFrom, defaultTo := record.DefaultAccounts(txn.Type)
	if txn.FromAccount == "" {
		txn.FromAccount = defaultFrom
	}
	if txn.ToAccount == "" {
		txn.ToAccount = defaultTo
	}
	for _, label := range []string{txn.FromAccount, txn.ToAccount} {
		if !record.IsSelectableAccount(label) {
			return txn, fmt.Errorf("%w: unknown account %q", ErrInvalidTransaction, label)
		}
	}

	txn.Category = strings.TrimSpace(txn.Category)
	if txn.Category == "" {
		return txn, fmt.Errorf("%w: category is required", ErrInvalidTransaction)
	}
	if !txn.Amount.Valid || !txn.Amount.Value.IsPositive() {
		return txn, fmt.Errorf("%w: amount must be a positive number", ErrInvalidTransaction)
	}

	if strings.TrimSpace(txn.Date) == "" {
		txn.Date = record.FormatDate(s.now())
	} else {
		date, err := record.CanonicalDate(txn.Date)
		if err != nil {
			return txn, fmt.Errorf("%w: date %q", ErrInvalidTransaction, txn.Date)
		}
		txn.Date = date
	}
	return txn, nil
}

// ListTransactions returns the transactions whose category or notes contain search
// (case-insensitive), newest date first. An empty search matches everything.
func (s *TransactionService) ListTransactions(search string) []record.TransactionRecord {
	needle := strings.ToLower(strings.TrimSpace(search))

	var matched []record.TransactionRecord
	for _, txn := range s.workspace.View().Transactions {
		if needle == "" ||
			strings.Contains(strings.ToLower(txn.Category), needle) ||
			strings.Contains(strings.ToLower(txn.Notes), needle) {
			matched = append(matched, txn)
		}
	}

	// undated rows go last
	sort.SliceStable(matched, func(i, j int) bool {
		a, errA := record.CanonicalDate(matched[i].Date)
		b, errB := record.CanonicalDate(matched[j].Date)
		if (errA == nil) != (errB == nil) {
			return errA == nil
		}
		return a > b
	})
	return matched
}

// Ledger replays the current transaction view.
func (s *TransactionService) Ledger() ledger.Result {
	return ledger.Replay(s.workspace.View().Transactions)
}
