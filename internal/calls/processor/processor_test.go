package processor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripvoice/internal/apierrors"
	"tripvoice/internal/clients/vapi"
	"tripvoice/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCall_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"call-7","transport":{"websocketCallUrl":"wss://relay.example/call-7"}}`))
	}))
	defer server.Close()

	logger := observability.NewLogger()
	p := New(vapi.NewClient("sk-test", "assistant-123", server.URL, logger), logger)

	result, err := p.CreateCall(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CallResult{
		WebsocketURL: "wss://relay.example/call-7",
		CallID:       "call-7",
		Status:       "created",
	}, result)
}

func TestCreateCall_ClientErrorsPassThrough(t *testing.T) {
	logger := observability.NewLogger()
	p := New(vapi.NewClient("", "", "http://unused.example", logger), logger)

	_, err := p.CreateCall(context.Background())

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindConfiguration, apiErr.Kind)
}
