package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/angelmondragon/quotation-service/pkg/config"
	"github.com/angelmondragon/quotation-service/pkg/types"
)

func TestIndex(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Name: "Quotation Microservice", Version: "1.0.0"}}
	resp := httptest.NewRecorder()
	Index(cfg).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var body types.StatusMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Quotation Microservice" || body.Status != "running" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestHealth(t *testing.T) {
	fixed := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	resp := httptest.NewRecorder()
	Health(func() time.Time { return fixed }).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var body types.HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "healthy" || body.Timestamp != "2024-05-01T10:00:00Z" {
		t.Fatalf("unexpected body %+v", body)
	}
}
