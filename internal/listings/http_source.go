package listings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"carmatch-service/internal/models"
)

// HTTPSource queries a remote listings feed that speaks the same
// GET /listings?north&south&east&west contract this service exposes.
type HTTPSource struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewHTTPSource creates a client for the feed at baseURL. apiKey, when
// set, is sent as a bearer token.
func NewHTTPSource(baseURL, apiKey string) *HTTPSource {
	return &HTTPSource{
		apiKey:  apiKey,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// feedResponse is the subset of the feed's response we read.
type feedResponse struct {
	Data []models.CarListing `json:"data"`
}

// InBounds implements Source. Results are re-checked against b so a
// lenient feed cannot leak listings on or outside the edges.
func (s *HTTPSource) InBounds(ctx context.Context, b models.Bounds) ([]models.CarListing, error) {
	q := url.Values{}
	q.Set("north", strconv.FormatFloat(b.North, 'f', -1, 64))
	q.Set("south", strconv.FormatFloat(b.South, 'f', -1, 64))
	q.Set("east", strconv.FormatFloat(b.East, 'f', -1, 64))
	q.Set("west", strconv.FormatFloat(b.West, 'f', -1, 64))
	endpoint := s.baseURL + "/listings?" + q.Encode()

	slog.Debug("fetching listings feed", "url", endpoint)
	resp, err := s.doGet(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode listings response: %w", err)
	}
	return narrow(result.Data, b), nil
}

func (s *HTTPSource) doGet(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("listings feed returned status %d: %s", resp.StatusCode, string(body))
	}
	return resp, nil
}
