package journal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/flow-server/internal/handlers"
	"github.com/carson-networks/flow-server/internal/logging"
	"github.com/carson-networks/flow-server/internal/record"
)

type journalWriter interface {
	SaveEntry(ctx context.Context, entry record.JournalRecord) (record.JournalRecord, error)
}

// SaveEntryBody is the request body for saving a day.
type SaveEntryBody struct {
	Text   string         `json:"text" maxLength:"20000" doc:"Free-form journal text"`
	Habits map[string]int `json:"habits,omitempty" doc:"Habit ratings keyed by habit, missing habits are 0"`
}

type SaveEntryInput struct {
	Date string `path:"date" doc:"YYYY-MM-DD entry date, must be today"`
	Body SaveEntryBody
}

type SaveEntryOutput struct {
	Body Entry
}

// SaveEntryHandler handles PUT /v1/journal/{date}.
type SaveEntryHandler struct {
	JournalService journalWriter
}

func NewSaveEntryHandler(svc journalWriter) *SaveEntryHandler {
	return &SaveEntryHandler{JournalService: svc}
}

func (h *SaveEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "save-journal-entry",
		Method:      http.MethodPut,
		Path:        "/v1/journal/{date}",
		Summary:     "Save journal entry",
		Description: "Creates or replaces the entry for today. Other dates are read-only.",
		Tags:        []string{"Journal"},
	}, h.handle)
}

func (h *SaveEntryHandler) handle(ctx context.Context, input *SaveEntryInput) (*SaveEntryOutput, error) {
	habits, err := parseHabits(input.Body.Habits)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, err.Error())
	}

	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("date", input.Date)
	}

	saved, err := h.JournalService.SaveEntry(ctx, record.JournalRecord{
		Date:   input.Date,
		Text:   input.Body.Text,
		Habits: habits,
	})
	if err != nil {
		return nil, handlers.ServiceError(err, "failed to save journal entry")
	}
	return &SaveEntryOutput{Body: fromRecord(saved)}, nil
}
