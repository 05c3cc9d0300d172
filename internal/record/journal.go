package record

// JournalRecord is one row of the journal sheet. Date is unique across rows.
type JournalRecord struct {
	Date   string `json:"date"`
	Text   string `json:"text"`
	Habits Habits `json:"habits"`
}

// EmptyJournalRecord is the entry shown for a date with no row: no text and every habit at 0.
func EmptyJournalRecord(date string) JournalRecord {
	return JournalRecord{Date: date}
}

// Snapshot is the full set of raw rows read from the row store.
type Snapshot struct {
	Transactions []TransactionRecord `json:"transactions"`
	Journal      []JournalRecord     `json:"journal"`
}
