package proxy

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// DefaultProviderURL is WeatherAPI's current-conditions endpoint.
const DefaultProviderURL = "https://api.weatherapi.com/v1/current.json"

// Server proxies weather requests to the provider, holding the API key
// server-side so the client never sees it.
type Server struct {
	apiKey      string
	providerURL string
	httpClient  *http.Client
	log         *slog.Logger
	router      chi.Router
}

func New(apiKey, providerURL string, httpClient *http.Client, log *slog.Logger) *Server {
	if providerURL == "" {
		providerURL = DefaultProviderURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		apiKey:      apiKey,
		providerURL: providerURL,
		httpClient:  httpClient,
		log:         log,
		router:      chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Get("/api/weather", s.handleWeather)
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	if s.apiKey == "" {
		s.log.Error("weather api key not configured")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "credential not configured"})
		return
	}

	q := r.URL.Query().Get("q")
	lat := r.URL.Query().Get("lat")
	lon := r.URL.Query().Get("lon")
	if q == "" && (lat == "" || lon == "") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing parameters"})
		return
	}

	query := url.Values{}
	query.Set("key", s.apiKey)
	if q != "" {
		query.Set("q", q)
	} else {
		query.Set("q", lat+","+lon)
	}
	query.Set("lang", "ja")
	query.Set("aqi", "no")

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, s.providerURL+"?"+query.Encode(), nil)
	if err != nil {
		s.log.Error("build provider request", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "provider request failed"})
		return
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Error("provider request", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "provider request failed"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Relay the provider's status with a generic body; the key never
		// appears in anything we return.
		writeJSON(w, resp.StatusCode, map[string]string{"error": "provider request failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, resp.Body); err != nil {
		s.log.Error("relay provider payload", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
