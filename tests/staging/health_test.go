//go:build staging

package staging

import (
	"net/http"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/healthz", nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestReadyCheck(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/readyz", nil)

	// Readiness depends on the record store being reachable from staging
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d (body: %s)", resp.StatusCode, body)
	}
}

func TestVersion(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/version", nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d (body: %s)", resp.StatusCode, body)
	}
}
