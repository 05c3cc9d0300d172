package sqlconfig

import (
	"context"

	"github.com/carson-networks/flow-server/internal/record"
)

// JournalEntry represents a journal table row. EntryDate is the primary key.
type JournalEntry struct {
	EntryDate   string `db:"entry_date"`
	TextEntry   string `db:"text_entry"`
	Diet        int16  `db:"diet"`
	Fitness     int16  `db:"fitness"`
	Productive  int16  `db:"productive"`
	Business    int16  `db:"business"`
	StockMarket int16  `db:"stock_market"`
	Tech        int16  `db:"tech"`
	Md          int16  `db:"md"`
	Mood        int16  `db:"mood"`
	Social      int16  `db:"social"`
}

// IJournalTable defines the interface for journal storage operations.
type IJournalTable interface {
	Upsert(ctx context.Context, entry record.JournalRecord) error
	List(ctx context.Context) ([]*JournalEntry, error)
}

// habitColumns lists the rating columns in record.HabitID order.
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

func (j *JournalEntry) ratings() [record.HabitCount]int16 {
	return [record.HabitCount]int16{
		j.Diet, j.Fitness, j.Productive, j.Business, j.StockMarket, j.Tech, j.Md, j.Mood, j.Social,
	}
}

func journalToRecord(row *JournalEntry) record.JournalRecord {
	entry := record.JournalRecord{Date: row.EntryDate, Text: row.TextEntry}
	for i, v := range row.ratings() {
		entry.Habits.Set(record.HabitID(i), record.RatingFrom(int(v)))
	}
	return entry
}
