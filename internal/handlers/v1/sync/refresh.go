package sync

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/flow-server/internal/handlers"
	"github.com/carson-networks/flow-server/internal/logging"
	"github.com/carson-networks/flow-server/internal/service"
)

type workspaceRefresher interface {
	Refresh(ctx context.Context) error
	Status() service.WorkspaceStatus
}

type RefreshBody struct {
	Loaded   bool   `json:"loaded" doc:"A snapshot has been fetched"`
	LoadedAt string `json:"loadedAt,omitempty" format:"date-time" doc:"Time of the last successful fetch"`
	Pending  int    `json:"pending" doc:"Writes not yet reflected in a fetched snapshot"`
}

type RefreshOutput struct {
	Body RefreshBody
}

// RefreshHandler handles POST /v1/sync/refresh.
type RefreshHandler struct {
	Workspace workspaceRefresher
}

func NewRefreshHandler(ws workspaceRefresher) *RefreshHandler {
	return &RefreshHandler{Workspace: ws}
}

func (h *RefreshHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh-workspace",
		Method:      http.MethodPost,
		Path:        "/v1/sync/refresh",
		Summary:     "Refresh from store",
		Description: "Re-fetches every row from the store. On failure the previous view is kept.",
		Tags:        []string{"Sync"},
	}, h.handle)
}

func (h *RefreshHandler) handle(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("refreshMs")
	}
	err := h.Workspace.Refresh(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.ServiceError(err, "failed to refresh")
	}

	st := h.Workspace.Status()
	body := RefreshBody{Loaded: st.Loaded, Pending: st.Pending}
	if st.Loaded {
		body.LoadedAt = st.LoadedAt.Format(time.RFC3339)
	}
	return &RefreshOutput{Body: body}, nil
}
