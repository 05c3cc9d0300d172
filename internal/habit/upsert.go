package habit

import "github.com/carson-networks/flow-server/internal/record"

// Upsert returns a new journal in which candidate replaces the entry for the same
// calendar date, or is appended when no such entry exists. Dates are compared in
// canonical form and the stored candidate carries its canonical date. The input
// slice is not modified.
func Upsert(journal []record.JournalRecord, candidate record.JournalRecord) (updated []record.JournalRecord, replaced bool) {
	key := record.DateKey(candidate.Date)
	candidate.Date = key

	updated = make([]record.JournalRecord, len(journal), len(journal)+1)
	copy(updated, journal)

	for i, entry := range updated {
		if record.DateKey(entry.Date) == key {
			updated[i] = candidate
			return updated, true
		}
	}
	return append(updated, candidate), false
}
