package journal

import (
	"fmt"

	"github.com/carson-networks/flow-server/internal/habit"
	"github.com/carson-networks/flow-server/internal/record"
)

// FlowScore is the day's aggregate habit score.
type FlowScore struct {
	Score    int    `json:"score" doc:"Sum of ratings plus the completion bonus"`
	Complete bool   `json:"complete" doc:"Every habit has a non-zero rating"`
	Tier     string `json:"tier" enum:"Excellent,Good,Keep Going" doc:"Descriptive tier of the score"`
}

// Entry is the API response model for a journal entry.
type Entry struct {
	Date   string         `json:"date" doc:"YYYY-MM-DD entry date"`
	Text   string         `json:"text" doc:"Free-form journal text"`
	Habits map[string]int `json:"habits" doc:"Rating of every habit, -2 to 3"`
	Flow   FlowScore      `json:"flow" doc:"Flow score of the day"`
}

func fromRecord(rec record.JournalRecord) Entry {
	habits := make(map[string]int, record.HabitCount)
	for _, id := range record.HabitIDs() {
		habits[id.Key()] = int(rec.Habits.Get(id))
	}
	return Entry{
		Date:   rec.Date,
		Text:   rec.Text,
		Habits: habits,
		Flow:   fromFlow(habit.Flow(rec.Habits)),
	}
}

func fromFlow(score habit.FlowScore) FlowScore {
	return FlowScore{Score: score.Score, Complete: score.Complete, Tier: string(score.Tier)}
}

// parseHabits converts request ratings. Habits left out are rated 0.
func parseHabits(raw map[string]int) (record.Habits, error) {
	var habits record.Habits
	for key, value := range raw {
		id, ok := record.ParseHabitID(key)
		if !ok {
			return habits, fmt.Errorf("unknown habit %q", key)
		}
		if value < int(record.RatingMin) || value > int(record.RatingMax) {
			return habits, fmt.Errorf("rating %d for %q is outside %d..%d", value, key, record.RatingMin, record.RatingMax)
		}
		habits.Set(id, record.Rating(value))
	}
	return habits, nil
}
