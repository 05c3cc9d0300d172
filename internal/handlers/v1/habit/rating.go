package habit

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/flow-server/internal/habit"
	"github.com/carson-networks/flow-server/internal/record"
)

type NextRatingBody struct {
	Rating int `json:"rating" minimum:"-2" maximum:"3" doc:"Current rating"`
}

type NextRatingInput struct {
	Body NextRatingBody
}

type NextRatingResponse struct {
	Rating int `json:"rating" doc:"Current rating"`
	Next   int `json:"next" doc:"Rating after one tap"`
}

type NextRatingOutput struct {
	Body NextRatingResponse
}

// NextRatingHandler handles POST /v1/habit/rating/next.
type NextRatingHandler struct{}

func NewNextRatingHandler() *NextRatingHandler {
	return &NextRatingHandler{}
}

func (h *NextRatingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "next-habit-rating",
		Method:      http.MethodPost,
		Path:        "/v1/habit/rating/next",
		Summary:     "Next habit rating",
		Description: "Advances a rating one step through the fixed cycle 0, 1, 2, 3, -2, -1.",
		Tags:        []string{"Habits"},
	}, h.handle)
}

func (h *NextRatingHandler) handle(_ context.Context, input *NextRatingInput) (*NextRatingOutput, error) {
	next := habit.NextRating(record.Rating(input.Body.Rating))
	return &NextRatingOutput{Body: NextRatingResponse{
		Rating: input.Body.Rating,
		Next:   int(next),
	}}, nil
}
