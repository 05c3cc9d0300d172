package journal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/flow-server/internal/handlers"
	"github.com/carson-networks/flow-server/internal/logging"
	"github.com/carson-networks/flow-server/internal/record"
)

type journalReader interface {
	Today() string
	Journal() []record.JournalRecord
	Entry(date string) (record.JournalRecord, bool, error)
}

// ListJournalBody is the response body for listing the journal.
type ListJournalBody struct {
	Today   string  `json:"today" doc:"The only date that can be saved"`
	Entries []Entry `json:"entries" doc:"Every journal entry, oldest first"`
}

type ListJournalOutput struct {
	Body ListJournalBody
}

// GetEntryInput is the Huma input for reading one day.
type GetEntryInput struct {
	Date string `path:"date" doc:"YYYY-MM-DD entry date"`
}

// GetEntryBody is the response body for one day.
type GetEntryBody struct {
	Entry
	Exists   bool `json:"exists" doc:"A row exists for this date"`
	Editable bool `json:"editable" doc:"The date is today and can be saved"`
}

type GetEntryOutput struct {
	Body GetEntryBody
}

// GetJournalHandler handles GET /v1/journal and GET /v1/journal/{date}.
type GetJournalHandler struct {
	JournalService journalReader
}

func NewGetJournalHandler(svc journalReader) *GetJournalHandler {
	return &GetJournalHandler{JournalService: svc}
}

func (h *GetJournalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-journal",
		Method:      http.MethodGet,
		Path:        "/v1/journal",
		Summary:     "List journal",
		Description: "Returns every journal entry with its flow score.",
		Tags:        []string{"Journal"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "get-journal-entry",
		Method:      http.MethodGet,
		Path:        "/v1/journal/{date}",
		Summary:     "Get journal entry",
		Description: "Returns the entry for a date. Dates without a row read as an empty entry.",
		Tags:        []string{"Journal"},
	}, h.get)
}

func (h *GetJournalHandler) list(ctx context.Context, _ *struct{}) (*ListJournalOutput, error) {
	journal := h.JournalService.Journal()
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("entryCount", len(journal))
	}

	body := ListJournalBody{
		Today:   h.JournalService.Today(),
		Entries: make([]Entry, len(journal)),
	}
	for i, rec := range journal {
		body.Entries[i] = fromRecord(rec)
	}
	return &ListJournalOutput{Body: body}, nil
}

func (h *GetJournalHandler) get(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error) {
	rec, exists, err := h.JournalService.Entry(input.Date)
	if err != nil {
		return nil, handlers.ServiceError(err, "failed to read journal entry")
	}
	return &GetEntryOutput{Body: GetEntryBody{
		Entry:    fromRecord(rec),
		Exists:   exists,
		Editable: rec.Date == h.JournalService.Today(),
	}}, nil
}
