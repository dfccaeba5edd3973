package processor

import (
	"context"

	"tripvoice/internal/clients/vapi"
	"tripvoice/internal/observability"
)

// CallResult is the normalized outcome of a successful call creation.
type CallResult struct {
	WebsocketURL string `json:"url"`
	CallID       string `json:"callId"`
	Status       string `json:"status"`
}

// CallProcessor brokers voice-call creation through the Vapi client.
type CallProcessor struct {
	vapiClient *vapi.Client
	logger     *observability.Logger
}

func New(vapiClient *vapi.Client, logger *observability.Logger) *CallProcessor {
	return &CallProcessor{
		vapiClient: vapiClient,
		logger:     logger,
	}
}

// CreateCall creates one websocket voice call and returns its transport
// endpoint. All failure modes surface as apierrors kinds from the client.
func (p *CallProcessor) CreateCall(ctx context.Context) (CallResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "create_call"},
	)

	details, err := p.vapiClient.CreateCall(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to create call", err)
		return CallResult{}, err
	}

	return CallResult{
		WebsocketURL: details.WebsocketURL,
		CallID:       details.CallID,
		Status:       "created",
	}, nil
}
