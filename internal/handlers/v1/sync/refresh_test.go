package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/flow-server/internal/service"
	"github.com/carson-networks/flow-server/internal/storage"
)

type mockWorkspace struct {
	mock.Mock
}

func (m *mockWorkspace) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockWorkspace) Status() service.WorkspaceStatus {
	st, _ := m.Called().Get(0).(service.WorkspaceStatus)
	return st
}

func newTestAPI(t *testing.T, ws workspaceRefresher) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewRefreshHandler(ws).Register(api)
	return api
}

func TestHTTP_Refresh_Success(t *testing.T) {
	ws := new(mockWorkspace)
	ws.On("Refresh", mock.Anything).Return(nil)
	ws.On("Status").Return(service.WorkspaceStatus{
		Loaded:   true,
		LoadedAt: time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		Pending:  1,
	})

	resp := newTestAPI(t, ws).Post("/v1/sync/refresh")
	require.Equal(t, http.StatusOK, resp.Code)

	var body RefreshBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, RefreshBody{Loaded: true, LoadedAt: "2024-05-01T08:30:00Z", Pending: 1}, body)
	ws.AssertExpectations(t)
}

func TestHTTP_Refresh_StoreFailure(t *testing.T) {
	ws := new(mockWorkspace)
	ws.On("Refresh", mock.Anything).Return(&storage.StoreError{Op: "fetch", Message: "timeout"})

	resp := newTestAPI(t, ws).Post("/v1/sync/refresh")

	assert.Equal(t, http.StatusBadGateway, resp.Code)
	ws.AssertNotCalled(t, "Status")
}
