package remote

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/carson-networks/flow-server/internal/record"
)

// cell is a spreadsheet value that may arrive as a string, number, boolean or null.
type cell string

func (c *cell) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		*c = cell(t)
	case float64:
		*c = cell(strconv.FormatFloat(t, 'f', -1, 64))
	case bool:
		*c = cell(strconv.FormatBool(t))
	default:
		*c = ""
	}
	return nil
}

type wireTransaction struct {
	Date        cell          `json:"date"`
	Type        cell          `json:"type"`
	Category    cell          `json:"category"`
	Amount      record.Amount `json:"amount"`
	FromAccount cell          `json:"fromAccount"`
	ToAccount   cell          `json:"toAccount"`
	Notes       cell          `json:"notes"`
	ID          cell          `json:"id"`
}

type wireJournal struct {
	Date   cell          `json:"date"`
	Text   cell          `json:"text"`
	Habits record.Habits `json:"habits"`
}

type wireSnapshot struct {
	Transactions []wireTransaction `json:"transactions"`
	Journal      []wireJournal     `json:"journal"`
}

func (w wireSnapshot) toSnapshot(loc *time.Location) *record.Snapshot {
	snapshot := &record.Snapshot{
		Transactions: make([]record.TransactionRecord, 0, len(w.Transactions)),
		Journal:      make([]record.JournalRecord, 0, len(w.Journal)),
	}
	for _, t := range w.Transactions {
		snapshot.Transactions = append(snapshot.Transactions, record.TransactionRecord{
			Date:        rowDate(string(t.Date), loc),
			Type:        record.TransactionType(strings.TrimSpace(string(t.Type))),
			Category:    string(t.Category),
			Amount:      t.Amount,
			FromAccount: strings.TrimSpace(string(t.FromAccount)),
			ToAccount:   strings.TrimSpace(string(t.ToAccount)),
			Notes:       string(t.Notes),
			ID:          string(t.ID),
		})
	}
	for _, j := range w.Journal {
		snapshot.Journal = append(snapshot.Journal, record.JournalRecord{
			Date:   rowDate(string(j.Date), loc),
			Text:   string(j.Text),
			Habits: j.Habits,
		})
	}
	return snapshot
}

// rowDate canonicalises a sheet date, keeping the raw text when it cannot be parsed.
func rowDate(raw string, loc *time.Location) string {
	if d, err := record.CanonicalDateIn(raw, loc); err == nil {
		return d
	}
	return raw
}

func newWireTransaction(txn record.TransactionRecord) map[string]any {
	return map[string]any{
		"date":        record.DateKey(txn.Date),
		"type":        txn.Type,
		"category":    txn.Category,
		"amount":      txn.Amount,
		"fromAccount": txn.FromAccount,
		"toAccount":   txn.ToAccount,
		"notes":       txn.Notes,
	}
}
