package habit

import (
	"time"

	"github.com/carson-networks/flow-server/internal/record"
)

// CalendarDay is one cell of a habit's yearly grid.
type CalendarDay struct {
	Date   string
	Rating record.Rating
}

// Calendar is a habit's rating for every day of one year. LeadingBlanks is the
// weekday of 1 January (Sunday = 0), so a week-column grid starts on a Sunday.
type Calendar struct {
	Habit         record.HabitID
	Year          int
	LeadingBlanks int
	Days          []CalendarDay
}

// YearCalendar builds the grid for one habit and year.
func YearCalendar(journal []record.JournalRecord, id record.HabitID, year int) Calendar {
	byDate := indexByDate(journal)
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(1, 0, 0)

	cal := Calendar{
		Habit:         id,
		Year:          year,
		LeadingBlanks: int(first.Weekday()),
	}
	for day := first; day.Before(next); day = day.AddDate(0, 0, 1) {
		cal.Days = append(cal.Days, CalendarDay{
			Date:   record.FormatDate(day),
			Rating: ratingOn(byDate, id, day),
		})
	}
	return cal
}
