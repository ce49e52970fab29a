package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func performHealthCheck(t *testing.T, checker func() bool) HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	NewHealthController(checker).Check(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var response HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return response
}

func TestHealthCheck(t *testing.T) {
	t.Run("reports durable persistence when storage is up", func(t *testing.T) {
		response := performHealthCheck(t, func() bool { return true })
		if response.Status != "ok" {
			t.Errorf("expected status ok, got %q", response.Status)
		}
		if response.Storage != "connected" {
			t.Errorf("expected storage connected, got %q", response.Storage)
		}
		if response.Persistence != "durable" {
			t.Errorf("expected durable persistence, got %q", response.Persistence)
		}
	})

	t.Run("degrades without failing when storage is down", func(t *testing.T) {
		response := performHealthCheck(t, func() bool { return false })
		if response.Status != "degraded" {
			t.Errorf("expected status degraded, got %q", response.Status)
		}
		if response.Persistence != "memory-only" {
			t.Errorf("expected memory-only persistence, got %q", response.Persistence)
		}
	})

	t.Run("missing checker counts as storage down", func(t *testing.T) {
		response := performHealthCheck(t, nil)
		if response.Storage != "disconnected" {
			t.Errorf("expected storage disconnected, got %q", response.Storage)
		}
	})
}
