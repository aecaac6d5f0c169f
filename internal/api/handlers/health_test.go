package handlers

import (
	"context"
	"net/http"
	"testing"

	"valuation-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestHealthReportsUnreachableDatabase(t *testing.T) {
	h := testutils.SetupHTTPTest()
	handler := NewHealthHandler(testutils.OfflineDB(t), map[string]Pinger{
		"lock": PingFunc(func(context.Context) error { return nil }),
	})
	h.Router.GET("/health", handler.Health)
	h.Router.GET("/health/ready", handler.Ready)

	var resp HealthResponse
	recorder := h.MakeRequest(http.MethodGet, "/health", nil)
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &resp)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Contains(t, resp.Services["database"], "error")
	assert.Equal(t, "healthy", resp.Services["lock"])

	recorder = h.MakeRequest(http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestLive(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.GET("/health/live", NewHealthHandler(testutils.OfflineDB(t), nil).Live)

	recorder := h.MakeRequest(http.MethodGet, "/health/live", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"alive":true`)
}
