package habit

import (
	"time"

	"github.com/carson-networks/flow-server/internal/record"
)

// MaxStreakLookback caps how many days a streak walk inspects.
const MaxStreakLookback = 365

// Streaks holds the current streak length per habit.
type Streaks [record.HabitCount]int

// Get returns the streak for id.
func (s Streaks) Get(id record.HabitID) int {
	return s[id]
}

// CurrentStreaks computes every habit's run of positive ratings ending today.
// today is interpreted in its own location. A today rated exactly 0 is treated as
// not yet logged and the walk continues from yesterday; a negative today ends it.
func CurrentStreaks(journal []record.JournalRecord, today time.Time) Streaks {
	byDate := indexByDate(journal)
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	var streaks Streaks
	for _, id := range record.HabitIDs() {
		streaks[id] = walkStreak(byDate, id, start)
	}
	return streaks
}

func walkStreak(byDate map[string]record.JournalRecord, id record.HabitID, start time.Time) int {
	streak := 0
	day := start
	for i := 0; i < MaxStreakLookback; i++ {
		val := ratingOn(byDate, id, day)
		switch {
		case val > 0:
			streak++
		case i == 0 && val == 0:
		default:
			return streak
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func ratingOn(byDate map[string]record.JournalRecord, id record.HabitID, day time.Time) record.Rating {
	entry, ok := byDate[record.FormatDate(day)]
	if !ok {
		return 0
	}
	return entry.Habits.Get(id)
}

// indexByDate keys journal rows by canonical date. Later duplicates win.
func indexByDate(journal []record.JournalRecord) map[string]record.JournalRecord {
	byDate := make(map[string]record.JournalRecord, len(journal))
	for _, entry := range journal {
		byDate[record.DateKey(entry.Date)] = entry
	}
	return byDate
}
