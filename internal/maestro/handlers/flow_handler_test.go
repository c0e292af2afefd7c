package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flexspace/internal/maestro/service"
	"flexspace/pkg/client"
	"flexspace/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *FlowHandler {
	log := logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.TEXT,
		Service: "test",
	})
	svc := service.NewMaestroService(client.NewClient(), log)
	return NewFlowHandler(svc, log)
}

func TestListFlows(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/maestro/flows", nil)
	rec := httptest.NewRecorder()
	h.ListFlows(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListFlowsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Flows, "search_free_rooms")
	assert.Contains(t, resp.Flows, "room_day")
	assert.Contains(t, resp.Flows, "create_booking")
	assert.Contains(t, resp.Flows, "quote_recurring")
}

func TestListFlows_MethodNotAllowed(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/maestro/flows", nil)
	rec := httptest.NewRecorder()
	h.ListFlows(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestExecuteFlow_UnknownFlow(t *testing.T) {
	h := newTestHandler()

	body := `{"flow":"teleport_room","input":{}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/maestro/execute", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.ExecuteFlow(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ExecuteFlowResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "unknown flow")
}

func TestExecuteFlow_MissingFlowName(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/maestro/execute", bytes.NewBufferString(`{"input":{}}`))
	rec := httptest.NewRecorder()
	h.ExecuteFlow(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExecuteFlow_InvalidJSON(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/maestro/execute", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ExecuteFlow(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
