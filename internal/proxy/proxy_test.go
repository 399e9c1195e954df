package proxy

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleWeatherMissingParameters(t *testing.T) {
	s := New("secret", "http://unused.invalid", nil, discardLogger())

	for _, target := range []string{
		"/api/weather",
		"/api/weather?lat=35.0", // lon missing
		"/api/weather?lon=139.0",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decode error: %v", target, err)
		}
		if body["error"] != "missing parameters" {
			t.Fatalf("%s: unexpected error body: %v", target, body)
		}
	}
}

func TestHandleWeatherMissingCredential(t *testing.T) {
	s := New("", "http://unused.invalid", nil, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/weather?q=Tokyo", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["error"] != "credential not configured" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestHandleWeatherForwardsAndRelaysPayload(t *testing.T) {
	const payload = `{"current":{"condition":{"code":1000,"text":"晴れ"},"wind_kph":4.3}}`
	var gotQuery map[string][]string
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer provider.Close()

	s := New("secret-key", provider.URL, provider.Client(), discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/weather?q=Tokyo", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != payload {
		t.Fatalf("payload not relayed verbatim: %s", rec.Body.String())
	}
	if got := gotQuery["key"]; len(got) != 1 || got[0] != "secret-key" {
		t.Fatalf("expected key forwarded to provider, got %v", got)
	}
	if got := gotQuery["q"]; len(got) != 1 || got[0] != "Tokyo" {
		t.Fatalf("expected q forwarded, got %v", got)
	}
	if got := gotQuery["lang"]; len(got) != 1 || got[0] != "ja" {
		t.Fatalf("expected lang=ja, got %v", got)
	}
}

func TestHandleWeatherCoordsBecomeProviderQuery(t *testing.T) {
	var providerQ string
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		providerQ = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer provider.Close()

	s := New("secret", provider.URL, provider.Client(), discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/weather?lat=35.6812&lon=139.7671", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if providerQ != "35.6812,139.7671" {
		t.Fatalf("unexpected provider q: %q", providerQ)
	}
}

func TestHandleWeatherRelaysProviderErrorStatus(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":1006,"message":"No matching location found."}}`, http.StatusBadRequest)
	}))
	defer provider.Close()

	s := New("secret", provider.URL, provider.Client(), discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/weather?q=Nowhereville", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want provider's 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "provider request failed") {
		t.Fatalf("expected generic error body, got: %s", rec.Body.String())
	}
}

func TestHandleWeatherProviderUnreachable(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	provider.Close()

	s := New("secret", provider.URL, nil, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/weather?q=Tokyo", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}
