package handler

import (
	"net/http"

	"tripvoice/internal/apierrors"
	"tripvoice/internal/destinations/processor"
	"tripvoice/internal/observability"

	"github.com/gin-gonic/gin"
)

type ExtractRequest struct {
	Text string `json:"text"`
}

type ExtractResponse struct {
	Destinations []string `json:"destinations"`
}

type Handler struct {
	destinationProcessor *processor.DestinationProcessor
	logger               *observability.Logger
}

func New(destinationProcessor *processor.DestinationProcessor, logger *observability.Logger) Handler {
	return Handler{
		destinationProcessor: destinationProcessor,
		logger:               logger,
	}
}

// HandleExtract scans the submitted text for known destinations. Empty text
// yields an empty list, never an error.
func (h Handler) HandleExtract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	destinations := h.destinationProcessor.Extract(req.Text)
	if destinations == nil {
		destinations = []string{}
	}

	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "operation", Value: "extract_destinations"},
		observability.Field{Key: "destination_count", Value: len(destinations)},
	)
	h.logger.Info(ctx, "Destinations extracted")

	c.JSON(http.StatusOK, ExtractResponse{Destinations: destinations})
}
