package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tripvoice/internal/apierrors"
	"tripvoice/internal/observability"
)

const searchPath = "/search/photos"

// MaxPerPage is the documented maximum page size of the Unsplash search API.
const MaxPerPage = 30

// queryQualifiers is appended to every destination query to bias results
// toward travel photography.
const queryQualifiers = "travel destination landmark"

// SearchResult is one photo record as returned by the Unsplash search API.
type SearchResult struct {
	ID             string `json:"id"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Regular string `json:"regular"`
		Small   string `json:"small"`
	} `json:"urls"`
	User struct {
		Name  string `json:"name"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"user"`
	Links struct {
		DownloadLocation string `json:"download_location"`
	} `json:"links"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// Client handles photo search against the Unsplash API
type Client struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a new Unsplash photo search client
func NewClient(accessKey, baseURL string, logger *observability.Logger) *Client {
	return &Client{
		accessKey: accessKey,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// IsConfigured returns true if the access key is set
func (c *Client) IsConfigured() bool {
	return c.accessKey != ""
}

// SearchPhotos searches landscape travel photos for a destination. perPage is
// clamped to [1, MaxPerPage] before the request is sent.
func (c *Client) SearchPhotos(ctx context.Context, destination string, perPage int) ([]SearchResult, error) {
	if !c.IsConfigured() {
		c.logger.Error(ctx, "missing Unsplash configuration", errors.New("UNSPLASH_ACCESS_KEY is empty"))
		return nil, apierrors.ConfigurationUnavailable("Photo search is currently unavailable")
	}

	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if perPage < 1 {
		perPage = 1
	}

	params := url.Values{}
	params.Set("query", destination+" "+queryQualifiers)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", "landscape")
	params.Set("content_filter", "high")
	params.Set("order_by", "relevance")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+params.Encode(), nil)
	if err != nil {
		c.logger.Error(ctx, "failed to create Unsplash request", err)
		return nil, apierrors.InternalError(fmt.Errorf("failed to create photo search request: %w", err))
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "destination", Value: destination},
		observability.Field{Key: "per_page", Value: perPage},
	)
	c.logger.Info(ctx, "Searching Unsplash photos")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "network error when calling Unsplash API", err)
		return nil, apierrors.NetworkError("Network error connecting to photo service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error(ctx, "Unsplash API returned error status", fmt.Errorf("status %d", resp.StatusCode))
		return nil, apierrors.ProviderError(resp.StatusCode, fmt.Sprintf("Photo service error (status %d)", resp.StatusCode))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Error(ctx, "invalid JSON response from Unsplash API", err)
		return nil, apierrors.DecodeError("Invalid response from photo service", err)
	}

	return result.Results, nil
}
