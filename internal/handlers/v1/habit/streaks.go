package habit

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/flow-server/internal/habit"
	"github.com/carson-networks/flow-server/internal/record"
)

type streakCounter interface {
	Today() string
	Streaks() habit.Streaks
}

// Streak is the current streak of one habit.
type Streak struct {
	Habit  string `json:"habit" doc:"Habit key"`
	Label  string `json:"label" doc:"Display label"`
	Streak int    `json:"streak" minimum:"0" doc:"Consecutive positive days ending today"`
}

type StreaksBody struct {
	Today   string   `json:"today" doc:"Day the streaks end on"`
	Streaks []Streak `json:"streaks" doc:"Every habit in fixed order"`
}

type StreaksOutput struct {
	Body StreaksBody
}

// StreaksHandler handles GET /v1/habit/streaks.
type StreaksHandler struct {
	JournalService streakCounter
}

func NewStreaksHandler(svc streakCounter) *StreaksHandler {
	return &StreaksHandler{JournalService: svc}
}

func (h *StreaksHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-habit-streaks",
		Method:      http.MethodGet,
		Path:        "/v1/habit/streaks",
		Summary:     "Get habit streaks",
		Description: "Counts the consecutive positively rated days of every habit. An unrated today does not break a streak.",
		Tags:        []string{"Habits"},
	}, h.handle)
}

func (h *StreaksHandler) handle(_ context.Context, _ *struct{}) (*StreaksOutput, error) {
	streaks := h.JournalService.Streaks()
	body := StreaksBody{
		Today:   h.JournalService.Today(),
		Streaks: make([]Streak, 0, record.HabitCount),
	}
	for _, id := range record.HabitIDs() {
		body.Streaks = append(body.Streaks, Streak{
			Habit:  id.Key(),
			Label:  id.Label(),
			Streak: streaks.Get(id),
		})
	}
	return &StreaksOutput{Body: body}, nil
}
