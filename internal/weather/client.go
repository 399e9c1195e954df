package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ErrUnavailable is the sentinel for any gateway failure: transport error,
// non-2xx status, malformed payload. Callers substitute a fallback record
// instead of surfacing it to the user.
var ErrUnavailable = errors.New("weather: no data available")

type providerPayload struct {
	Current struct {
		Condition struct {
			Code int    `json:"code"`
			Text string `json:"text"`
		} `json:"condition"`
		WindKph float64 `json:"wind_kph"`
	} `json:"current"`
}

// Client fetches current weather through the trainy-proxy endpoint, which
// holds the provider credential server-side.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// FetchByName fetches weather for a free-text place name.
func (c *Client) FetchByName(ctx context.Context, place string) (Report, error) {
	query := url.Values{}
	query.Set("q", place)
	return c.fetch(ctx, query)
}

// FetchByCoords fetches weather for a latitude/longitude pair.
func (c *Client) FetchByCoords(ctx context.Context, lat, lon float64) (Report, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', 4, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', 4, 64))
	return c.fetch(ctx, query)
}

// Fetch resolves a saved location into the right entry point.
func (c *Client) Fetch(ctx context.Context, loc Location) (Report, error) {
	if lat, lon, ok := loc.Coords(); ok {
		return c.FetchByCoords(ctx, lat, lon)
	}
	return c.FetchByName(ctx, string(loc))
}

func (c *Client) fetch(ctx context.Context, query url.Values) (Report, error) {
	endpoint := c.baseURL + "/api/weather?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var payload providerPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if payload.Current.Condition.Text == "" && payload.Current.Condition.Code == 0 {
		return Report{}, fmt.Errorf("%w: empty payload", ErrUnavailable)
	}

	return BuildReport(payload.Current.Condition.Code, payload.Current.Condition.Text, payload.Current.WindKph), nil
}
