package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/langcode/langcode/internal/history"
	"github.com/langcode/langcode/internal/storage/sqlite"
	"github.com/langcode/langcode/pkg/types"
)

// testServer creates a Server with a temp SQLite DB for testing.
func testServer(t *testing.T, apiKey string) (*Server, *http.ServeMux) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "langcode-api-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	tmpFile.Close()
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Init(context.Background()); err != nil {
		t.Fatal(err)
	}

	s := &Server{
		store:      store,
		historyMgr: history.NewManager(store),
		recording:  true,
		apiKey:     apiKey,
	}

	return s, s.routes()
}

func TestHealthEndpoint(t *testing.T) {
	_, mux := testServer(t, "")

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("health: status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]string
	json.NewDecoder(w.Body).Decode(&resp)
	if resp["status"] != "ok" {
		t.Errorf("health: status = %q, want %q", resp["status"], "ok")
	}
}

func TestLookupTag(t *testing.T) {
	_, mux := testServer(t, "")

	req := httptest.NewRequest("GET", "/v1/lookup?q=es-MX", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("lookup: status = %d, want %d; body = %s", w.Code, http.StatusOK, w.Body.String())
	}

	var res types.Resolution
	json.NewDecoder(w.Body).Decode(&res)
	if res.Tag != "es-MX" {
		t.Errorf("lookup: tag = %q, want %q", res.Tag, "es-MX")
	}
	if res.LikelyScript != "Latn" {
		t.Errorf("lookup: likely_script = %q, want %q", res.LikelyScript, "Latn")
	}
}

func TestLookupSimple(t *testing.T) {
	_, mux := testServer(t, "")

	req := httptest.NewRequest("GET", "/v1/lookup?q=Spanish&simple=true", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("lookup simple: status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]string
	json.NewDecoder(w.Body).Decode(&resp)
	if resp["tag"] != "es" {
		t.Errorf("lookup simple: tag = %q, want %q", resp["tag"], "es")
	}
	if resp["result"] == "" {
		t.Error("lookup simple: empty result")
	}
}

func TestLookupMissingQuery(t *testing.T) {
	_, mux := testServer(t, "")

	req := httptest.NewRequest("GET", "/v1/lookup", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("lookup no q: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, mux := testServer(t, "")

	req := httptest.NewRequest("GET", "/v1/lookup?q=notalanguage", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("lookup unknown: status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
}

func TestLookupRecordsHistory(t *testing.T) {
	s, mux := testServer(t, "")

	req := httptest.NewRequest("GET", "/v1/lookup?q=fr", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("lookup: status = %d, want %d", w.Code, http.StatusOK)
	}

	entries, err := s.historyMgr.List(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("history: got %d entries, want 1", len(entries))
	}
	if entries[0].Tag != "fr" {
		t.Errorf("history: tag = %q, want %q", entries[0].Tag, "fr")
	}
}

func TestHistoryEndpoints(t *testing.T) {
	_, mux := testServer(t, "")

	// Record two lookups
	for _, q := range []string{"es", "de"} {
		req := httptest.NewRequest("GET", "/v1/lookup?q="+q, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("lookup %s: status = %d", q, w.Code)
		}
	}

	// List
	req := httptest.NewRequest("GET", "/v1/history", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("history list: status = %d", w.Code)
	}

	var entries []types.HistoryEntry
	json.NewDecoder(w.Body).Decode(&entries)
	if len(entries) != 2 {
		t.Fatalf("history list: got %d entries, want 2", len(entries))
	}

	// Get by ID
	req = httptest.NewRequest("GET", "/v1/history/"+entries[0].ID, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("history get: status = %d", w.Code)
	}

	// Delete by ID
	req = httptest.NewRequest("DELETE", "/v1/history/"+entries[0].ID, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("history delete: status = %d", w.Code)
	}

	// Clear
	req = httptest.NewRequest("DELETE", "/v1/history", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("history clear: status = %d", w.Code)
	}

	var cleared map[string]int64
	json.NewDecoder(w.Body).Decode(&cleared)
	if cleared["removed"] != 1 {
		t.Errorf("history clear: removed = %d, want 1", cleared["removed"])
	}
}

func TestHistoryGetNotFound(t *testing.T) {
	_, mux := testServer(t, "")

	req := httptest.NewRequest("GET", "/v1/history/nonexistent", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("history get missing: status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAuthMiddleware(t *testing.T) {
	_, mux := testServer(t, "secret")

	// No key
	req := httptest.NewRequest("GET", "/v1/lookup?q=es", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no key: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	// Wrong key
	req = httptest.NewRequest("GET", "/v1/lookup?q=es", nil)
	req.Header.Set("X-API-Key", "wrong")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong key: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	// Bearer token
	req = httptest.NewRequest("GET", "/v1/lookup?q=es", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("bearer: status = %d, want %d", w.Code, http.StatusOK)
	}

	// X-API-Key header
	req = httptest.NewRequest("GET", "/v1/lookup?q=es", nil)
	req.Header.Set("X-API-Key", "secret")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("x-api-key: status = %d, want %d", w.Code, http.StatusOK)
	}

	// Health stays open
	req = httptest.NewRequest("GET", "/health", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("health with auth: status = %d, want %d", w.Code, http.StatusOK)
	}
}
