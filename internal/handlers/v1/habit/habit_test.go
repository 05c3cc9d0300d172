package habit

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/flow-server/internal/habit"
	"github.com/carson-networks/flow-server/internal/record"
	"github.com/carson-networks/flow-server/internal/service"
)

// fakeJournal answers from a fixed journal and a fixed today.
type fakeJournal struct {
	today   time.Time
	journal []record.JournalRecord
}

func (f fakeJournal) Today() string {
	return record.FormatDate(f.today)
}

func (f fakeJournal) Streaks() habit.Streaks {
	return habit.CurrentStreaks(f.journal, f.today)
}

func (f fakeJournal) Flow(date string) (habit.FlowScore, error) {
	key, err := record.CanonicalDate(date)
	if err != nil {
		return habit.FlowScore{}, service.ErrInvalidDate
	}
	for _, entry := range f.journal {
		if entry.Date == key {
			return habit.Flow(entry.Habits), nil
		}
	}
	return habit.Flow(record.Habits{}), nil
}

func (f fakeJournal) Calendar(id record.HabitID, year int) habit.Calendar {
	return habit.YearCalendar(f.journal, id, year)
}

func newTestAPI(t *testing.T, svc fakeJournal) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewStreaksHandler(svc).Register(api)
	NewFlowHandler(svc).Register(api)
	NewCalendarHandler(svc).Register(api)
	NewNextRatingHandler().Register(api)
	return api
}

func day(date string, diet record.Rating) record.JournalRecord {
	var habits record.Habits
	habits.Set(record.HabitDiet, diet)
	return record.JournalRecord{Date: date, Habits: habits}
}

func TestHTTP_Streaks(t *testing.T) {
	svc := fakeJournal{
		today: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		journal: []record.JournalRecord{
			day("2024-03-07", 1),
			day("2024-03-08", 2),
			day("2024-03-09", 3),
		},
	}

	resp := newTestAPI(t, svc).Get("/v1/habit/streaks")
	require.Equal(t, http.StatusOK, resp.Code)

	var body StreaksBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2024-03-10", body.Today)
	require.Len(t, body.Streaks, record.HabitCount)
	assert.Equal(t, Streak{Habit: "diet", Label: "Diet", Streak: 3}, body.Streaks[0])
	assert.Equal(t, 0, body.Streaks[1].Streak)
}

func TestHTTP_Flow(t *testing.T) {
	svc := fakeJournal{journal: []record.JournalRecord{day("2024-03-09", 3)}}

	resp := newTestAPI(t, svc).Get("/v1/habit/flow/2024-03-09")
	require.Equal(t, http.StatusOK, resp.Code)

	var body FlowBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, FlowBody{Date: "2024-03-09", Score: 3, Complete: false, Tier: "Keep Going"}, body)
}

func TestHTTP_Flow_InvalidDate(t *testing.T) {
	resp := newTestAPI(t, fakeJournal{}).Get("/v1/habit/flow/someday")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_Calendar(t *testing.T) {
	svc := fakeJournal{
		today:   time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		journal: []record.JournalRecord{day("2024-01-02", -1)},
	}

	resp := newTestAPI(t, svc).Get("/v1/habit/calendar/diet")
	require.Equal(t, http.StatusOK, resp.Code)

	var body CalendarBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2024, body.Year)
	assert.Equal(t, 1, body.LeadingBlanks)
	assert.Len(t, body.Days, 366)
	assert.Equal(t, CalendarDay{Date: "2024-01-02", Rating: -1}, body.Days[1])
}

func TestHTTP_Calendar_ExplicitYear(t *testing.T) {
	resp := newTestAPI(t, fakeJournal{}).Get("/v1/habit/calendar/mood?year=2023")
	require.Equal(t, http.StatusOK, resp.Code)

	var body CalendarBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2023, body.Year)
	assert.Equal(t, "Mood", body.Label)
	assert.Len(t, body.Days, 365)
}

func TestHTTP_Calendar_UnknownHabit(t *testing.T) {
	resp := newTestAPI(t, fakeJournal{}).Get("/v1/habit/calendar/sleep")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_NextRating(t *testing.T) {
	api := newTestAPI(t, fakeJournal{})
	cases := map[int]int{0: 1, 1: 2, 2: 3, 3: -2, -2: -1, -1: 0}
	for current, expected := range cases {
		resp := api.Post("/v1/habit/rating/next", NextRatingBody{Rating: current})
		require.Equal(t, http.StatusOK, resp.Code)

		var body NextRatingResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, expected, body.Next, "after %d", current)
	}
}

func TestHTTP_NextRating_OutOfRange(t *testing.T) {
	resp := newTestAPI(t, fakeJournal{}).Post("/v1/habit/rating/next", NextRatingBody{Rating: 7})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
