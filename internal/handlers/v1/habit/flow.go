package habit

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/flow-server/internal/habit"
	"github.com/carson-networks/flow-server/internal/handlers"
)

type flowScorer interface {
	Flow(date string) (habit.FlowScore, error)
}

type FlowInput struct {
	Date string `path:"date" doc:"YYYY-MM-DD day to score"`
}

type FlowBody struct {
	Date     string `json:"date" doc:"Scored day"`
	Score    int    `json:"score" doc:"Sum of ratings plus the completion bonus"`
	Complete bool   `json:"complete" doc:"Every habit has a non-zero rating"`
	Tier     string `json:"tier" enum:"Excellent,Good,Keep Going" doc:"Descriptive tier of the score"`
}

type FlowOutput struct {
	Body FlowBody
}

// FlowHandler handles GET /v1/habit/flow/{date}.
type FlowHandler struct {
	JournalService flowScorer
}

func NewFlowHandler(svc flowScorer) *FlowHandler {
	return &FlowHandler{JournalService: svc}
}

func (h *FlowHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-flow-score",
		Method:      http.MethodGet,
		Path:        "/v1/habit/flow/{date}",
		Summary:     "Get flow score",
		Description: "Scores one day's habit ratings.",
		Tags:        []string{"Habits"},
	}, h.handle)
}

func (h *FlowHandler) handle(_ context.Context, input *FlowInput) (*FlowOutput, error) {
	score, err := h.JournalService.Flow(input.Date)
	if err != nil {
		return nil, handlers.ServiceError(err, "failed to score day")
	}
	return &FlowOutput{Body: FlowBody{
		Date:     input.Date,
		Score:    score.Score,
		Complete: score.Complete,
		Tier:     string(score.Tier),
	}}, nil
}
