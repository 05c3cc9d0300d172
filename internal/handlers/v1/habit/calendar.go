package habit

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/flow-server/internal/habit"
	"github.com/carson-networks/flow-server/internal/record"
)

type calendarBuilder interface {
	Today() string
	Calendar(id record.HabitID, year int) habit.Calendar
}

type CalendarInput struct {
	Habit string `path:"habit" doc:"Habit key, e.g. diet or stockMarket"`
	Year  int    `query:"year" minimum:"0" maximum:"9999" doc:"Calendar year, defaults to the current year"`
}

type CalendarDay struct {
	Date   string `json:"date" doc:"YYYY-MM-DD"`
	Rating int    `json:"rating" doc:"Rating on that day, 0 when unrated"`
}

type CalendarBody struct {
	Habit         string        `json:"habit" doc:"Habit key"`
	Label         string        `json:"label" doc:"Display label"`
	Year          int           `json:"year" doc:"Calendar year"`
	LeadingBlanks int           `json:"leadingBlanks" doc:"Weekday of 1 January, Sunday is 0"`
	Days          []CalendarDay `json:"days" doc:"Every day of the year in order"`
}

type CalendarOutput struct {
	Body CalendarBody
}

// CalendarHandler handles GET /v1/habit/calendar/{habit}.
type CalendarHandler struct {
	JournalService calendarBuilder
}

func NewCalendarHandler(svc calendarBuilder) *CalendarHandler {
	return &CalendarHandler{JournalService: svc}
}

func (h *CalendarHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-habit-calendar",
		Method:      http.MethodGet,
		Path:        "/v1/habit/calendar/{habit}",
		Summary:     "Get habit calendar",
		Description: "Returns one habit's rating for every day of a year.",
		Tags:        []string{"Habits"},
	}, h.handle)
}

func (h *CalendarHandler) handle(_ context.Context, input *CalendarInput) (*CalendarOutput, error) {
	id, ok := record.ParseHabitID(input.Habit)
	if !ok {
		return nil, huma.Error404NotFound("unknown habit " + strconv.Quote(input.Habit))
	}

	year := input.Year
	if year == 0 {
		year = currentYear(h.JournalService.Today())
	}

	cal := h.JournalService.Calendar(id, year)
	body := CalendarBody{
		Habit:         id.Key(),
		Label:         id.Label(),
		Year:          cal.Year,
		LeadingBlanks: cal.LeadingBlanks,
		Days:          make([]CalendarDay, len(cal.Days)),
	}
	for i, day := range cal.Days {
		body.Days[i] = CalendarDay{Date: day.Date, Rating: int(day.Rating)}
	}
	return &CalendarOutput{Body: body}, nil
}

func currentYear(today string) int {
	if len(today) < 4 {
		return 0
	}
	year, _ := strconv.Atoi(today[:4])
	return year
}
