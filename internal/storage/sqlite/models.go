package sqlite

import (
	"context"
	"database/sql"

	"github.com/carson-networks/flow-server/internal/record"
)

// Transaction represents a transactions table row. Seq keeps append order.
type Transaction struct {
	Seq         int64          `db:"seq"`
	ID          string         `db:"id"`
	Date        string         `db:"txn_date"`
	Type        string         `db:"txn_type"`
	Category    string         `db:"category"`
	Amount      sql.NullString `db:"amount"`
	FromAccount string         `db:"from_account"`
	ToAccount   string         `db:"to_account"`
	Notes       string         `db:"notes"`
}

type ITransactionTable interface {
	Insert(ctx context.Context, txn record.TransactionRecord) (string, error)
	List(ctx context.Context) ([]*Transaction, error)
}

func transactionToRecord(row *Transaction) record.TransactionRecord {
	txn := record.TransactionRecord{
		ID:          row.ID,
		Date:        row.Date,
		Type:        record.TransactionType(row.Type),
		Category:    row.Category,
		FromAccount: row.FromAccount,
		ToAccount:   row.ToAccount,
		Notes:       row.Notes,
	}
	if row.Amount.Valid {
		txn.Amount = record.ParseAmount(row.Amount.String)
	}
	return txn
}

// Amounts are stored as decimal text so no precision is lost.
func amountToColumn(a record.Amount) sql.NullString {
	if !a.Valid {
		return sql.NullString{}
	}
	return sql.NullString{String: a.Value.String(), Valid: true}
}

// JournalEntry represents a journal table row. EntryDate is the primary key.
type JournalEntry struct {
	EntryDate   string `db:"entry_date"`
	TextEntry   string `db:"text_entry"`
	Diet        int    `db:"diet"`
	Fitness     int    `db:"fitness"`
	Productive  int    `db:"productive"`
	Business    int    `db:"business"`
	StockMarket int    `db:"stock_market"`
	Tech        int    `db:"tech"`
	Md          int    `db:"md"`
	Mood        int    `db:"mood"`
	Social      int    `db:"social"`
}

type IJournalTable interface {
	Upsert(ctx context.Context, entry record.JournalRecord) error
	List(ctx context.Context) ([]*JournalEntry, error)
}

var habitColumns = [record.HabitCount]string{
	record.HabitDiet:        "diet",
	record.HabitFitness:     "fitness",
	record.HabitProductive:  "productive",
	record.HabitBusiness:    "business",
	record.HabitStockMarket: "stock_market",
	record.HabitTech:        "tech",
	record.HabitMd:          "md",
	record.HabitMood:        "mood",
	record.HabitSocial:      "social",
}

func journalToRecord(row *JournalEntry) record.JournalRecord {
	entry := record.JournalRecord{Date: row.EntryDate, Text: row.TextEntry}
	ratings := [record.HabitCount]int{
		row.Diet, row.Fitness, row.Productive, row.Business, row.StockMarket, row.Tech, row.Md, row.Mood, row.Social,
	}
	for i, v := range ratings {
		entry.Habits.Set(record.HabitID(i), record.RatingFrom(v))
	}
	return entry
}
