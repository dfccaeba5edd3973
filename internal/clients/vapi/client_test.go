package vapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"tripvoice/internal/apierrors"
	"tripvoice/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCall_MissingConfigurationMakesNoNetworkCall(t *testing.T) {
	var requestCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
	}))
	defer server.Close()

	tests := []struct {
		name        string
		privateKey  string
		assistantID string
	}{
		{name: "missing private key", privateKey: "", assistantID: "assistant-123"},
		{name: "missing assistant id", privateKey: "sk-test", assistantID: ""},
		{name: "missing both", privateKey: "", assistantID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.privateKey, tt.assistantID, server.URL, observability.NewLogger())

			_, err := client.CreateCall(context.Background())

			var apiErr *apierrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, apierrors.KindConfiguration, apiErr.Kind)
			assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
			assert.Equal(t, int32(0), atomic.LoadInt32(&requestCount))
		})
	}
}

func TestCreateCall_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/call", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "assistant-123", payload["assistantId"])

		transport, ok := payload["transport"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "vapi.websocket", transport["provider"])

		audioFormat, ok := transport["audioFormat"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "pcm_s16le", audioFormat["format"])
		assert.Equal(t, "raw", audioFormat["container"])
		assert.Equal(t, float64(16000), audioFormat["sampleRate"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"call-42","transport":{"websocketCallUrl":"wss://example.com/call-42"}}`))
	}))
	defer server.Close()

	client := NewClient("sk-test", "assistant-123", server.URL, observability.NewLogger())

	details, err := client.CreateCall(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "wss://example.com/call-42", details.WebsocketURL)
	assert.Equal(t, "call-42", details.CallID)
}

func TestCreateCall_CallIDDefaultsToUnknown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transport":{"websocketCallUrl":"wss://example.com/anon"}}`))
	}))
	defer server.Close()

	client := NewClient("sk-test", "assistant-123", server.URL, observability.NewLogger())

	details, err := client.CreateCall(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "unknown", details.CallID)
}

func TestCreateCall_ProviderErrorStatusPassthrough(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"message":"assistant not found"}`},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"invalid key"}`},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"message":"slow down"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient("sk-test", "assistant-123", server.URL, observability.NewLogger())

			_, err := client.CreateCall(context.Background())

			var apiErr *apierrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, apierrors.KindProvider, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Contains(t, apiErr.Message, "Vapi API error")
		})
	}
}

func TestCreateCall_MissingWebsocketURLIsMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no transport object", body: `{"id":"call-42"}`},
		{name: "transport without url", body: `{"id":"call-42","transport":{}}`},
		{name: "empty url", body: `{"id":"call-42","transport":{"websocketCallUrl":""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient("sk-test", "assistant-123", server.URL, observability.NewLogger())

			_, err := client.CreateCall(context.Background())

			var apiErr *apierrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, apierrors.KindProvider, apiErr.Kind)
			assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
			assert.Equal(t, "Invalid response from Vapi API", apiErr.Message)
		})
	}
}

func TestCreateCall_InvalidJSONIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient("sk-test", "assistant-123", server.URL, observability.NewLogger())

	_, err := client.CreateCall(context.Background())

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindDecode, apiErr.Kind)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestCreateCall_TransportFailureIsNetworkError(t *testing.T) {
	// A server that is immediately closed guarantees a connection error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient("sk-test", "assistant-123", server.URL, observability.NewLogger())

	_, err := client.CreateCall(context.Background())

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindNetwork, apiErr.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestCreateCall_CanceledContextIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient("sk-test", "assistant-123", server.URL, observability.NewLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.CreateCall(ctx)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindNetwork, apiErr.Kind)
}
