package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"tripvoice/internal/apierrors"
	"tripvoice/internal/observability"
)

const callPath = "/call"

// CallDetails is the normalized result of a successful call creation.
type CallDetails struct {
	WebsocketURL string
	CallID       string
}

// callRequest is the fixed payload sent to the call-creation endpoint.
// Transport is always websocket with raw 16-bit little-endian PCM at 16 kHz.
type callRequest struct {
	AssistantID string        `json:"assistantId"`
	Transport   callTransport `json:"transport"`
}

type callTransport struct {
	Provider    string      `json:"provider"`
	AudioFormat audioFormat `json:"audioFormat"`
}

type audioFormat struct {
	Format     string `json:"format"`
	Container  string `json:"container"`
	SampleRate int    `json:"sampleRate"`
}

type callResponse struct {
	ID        string `json:"id"`
	Transport *struct {
		WebsocketCallURL string `json:"websocketCallUrl"`
	} `json:"transport"`
}

// Client handles call creation against the Vapi API
type Client struct {
	privateKey  string
	assistantID string
	baseURL     string
	httpClient  *http.Client
	logger      *observability.Logger
}

// NewClient creates a new Vapi call-creation client
func NewClient(privateKey, assistantID, baseURL string, logger *observability.Logger) *Client {
	return &Client{
		privateKey:  privateKey,
		assistantID: assistantID,
		baseURL:     baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// IsConfigured returns true if both the private key and assistant id are set
func (c *Client) IsConfigured() bool {
	return c.privateKey != "" && c.assistantID != ""
}

// CreateCall creates a websocket call with the configured assistant and
// returns the transport endpoint. A single attempt, no retries.
func (c *Client) CreateCall(ctx context.Context) (CallDetails, error) {
	if !c.IsConfigured() {
		c.logger.Error(ctx, "missing Vapi configuration", errors.New("VAPI_PRIVATE_KEY or VAPI_ASSISTANT_ID is empty"))
		return CallDetails{}, apierrors.ConfigurationError(
			"Vapi configuration is incomplete. Check VAPI_PRIVATE_KEY and VAPI_ASSISTANT_ID.")
	}

	payload := callRequest{
		AssistantID: c.assistantID,
		Transport: callTransport{
			Provider: "vapi.websocket",
			AudioFormat: audioFormat{
				Format:     "pcm_s16le",
				Container:  "raw",
				SampleRate: 16000,
			},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to marshal Vapi call request", err)
		return CallDetails{}, apierrors.InternalError(fmt.Errorf("failed to prepare call request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+callPath, bytes.NewBuffer(jsonPayload))
	if err != nil {
		c.logger.Error(ctx, "failed to create Vapi call request", err)
		return CallDetails{}, apierrors.InternalError(fmt.Errorf("failed to create call request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.privateKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info(ctx, "Creating new Vapi call")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "network error when calling Vapi API", err)
		return CallDetails{}, apierrors.NetworkError("Network error connecting to Vapi API", err)
	}
	defer resp.Body.Close()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "vapi_status", Value: resp.StatusCode},
	)
	c.logger.Info(ctx, "Vapi API response received")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error(ctx, "failed to read Vapi response body", err)
		return CallDetails{}, apierrors.NetworkError("Network error connecting to Vapi API", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.logger.Error(ctx, "Vapi API returned error status", fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
		return CallDetails{}, apierrors.ProviderError(resp.StatusCode, fmt.Sprintf("Vapi API error: %s", string(body)))
	}

	var result callResponse
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Error(ctx, "invalid JSON response from Vapi API", err)
		return CallDetails{}, apierrors.DecodeError("Invalid response from Vapi API", err)
	}

	if result.Transport == nil || result.Transport.WebsocketCallURL == "" {
		c.logger.Error(ctx, "invalid response from Vapi API", errors.New("missing transport.websocketCallUrl"))
		return CallDetails{}, apierrors.MalformedResponse("Invalid response from Vapi API")
	}

	callID := result.ID
	if callID == "" {
		callID = "unknown"
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_id", Value: callID},
	)
	c.logger.Info(ctx, "Call created successfully")

	return CallDetails{
		WebsocketURL: result.Transport.WebsocketCallURL,
		CallID:       callID,
	}, nil
}
