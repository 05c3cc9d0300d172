package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/flow-server/internal/logging"
	"github.com/carson-networks/flow-server/internal/service"
)

type statusReporter interface {
	Status() service.WorkspaceStatus
}

type statusBody struct {
	Loaded   bool   `json:"loaded"`
	LoadedAt string `json:"loadedAt,omitempty"`
	Pending  int    `json:"pending"`
}

type Handler struct {
	Workspace statusReporter
}

func NewHandler(ws statusReporter) Handler {
	return Handler{Workspace: ws}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	st := h.Workspace.Status()
	body := statusBody{Loaded: st.Loaded, Pending: st.Pending}
	if st.Loaded {
		body.LoadedAt = st.LoadedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	logData.AddData("pending", st.Pending)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(body)
}
