package meta

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestExamplesEndpoint(t *testing.T) {
	r := chi.NewRouter()
	New().RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/examples", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var examples []string
	if err := json.Unmarshal(resp.Body.Bytes(), &examples); err != nil {
		t.Fatalf("decode examples: %v", err)
	}
	if len(examples) == 0 {
		t.Fatal("expected non-empty example list")
	}
}

func TestAboutEndpoint(t *testing.T) {
	r := chi.NewRouter()
	New().RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "MindScan") {
		t.Fatal("about text missing product name")
	}
}
