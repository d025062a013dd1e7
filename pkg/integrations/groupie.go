package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yair/groupie-tracker/pkg/domain"
)

const DefaultBaseURL = "https://groupietrackers.herokuapp.com/api"

// GroupieClient reads artists and relations from the Groupie Trackers API,
// either directly or through this server's own /proxy routes.
type GroupieClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

type GroupieConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

func NewGroupieClient(config GroupieConfig) (*GroupieClient, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("groupie base URL must be http(s): %q", config.BaseURL)
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "GroupieTracker/1.0"
	}

	return &GroupieClient{
		baseURL:   baseURL,
		userAgent: config.UserAgent,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

func (c *GroupieClient) BaseURL() string {
	return c.baseURL
}

func (c *GroupieClient) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	var artists []domain.Artist
	if err := c.getJSON(ctx, c.baseURL+"/artists", &artists); err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	if artists == nil {
		artists = []domain.Artist{}
	}
	return artists, nil
}

func (c *GroupieClient) GetRelation(ctx context.Context, artistID int) (domain.RelationMap, error) {
	var relation domain.Relation
	if err := c.getJSON(ctx, fmt.Sprintf("%s/relation/%d", c.baseURL, artistID), &relation); err != nil {
		return nil, fmt.Errorf("get relation %d: %w", artistID, err)
	}
	if relation.DatesLocations == nil {
		relation.DatesLocations = domain.RelationMap{}
	}
	return relation.DatesLocations, nil
}

// Open issues a raw GET for path under the base URL and hands the response
// to the caller, who must close the body. Used by the proxy routes.
func (c *GroupieClient) Open(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+strings.TrimLeft(path, "/"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailure, err)
	}
	return resp, nil
}

func (c *GroupieClient) getJSON(ctx context.Context, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &domain.StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", domain.ErrFetchFailure, err)
		}
		return fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}

	return nil
}
