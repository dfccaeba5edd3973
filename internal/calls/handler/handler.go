package handler

import (
	"net/http"

	"tripvoice/internal/apierrors"
	"tripvoice/internal/calls/processor"
	"tripvoice/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	callProcessor *processor.CallProcessor
	logger        *observability.Logger
}

func New(callProcessor *processor.CallProcessor, logger *observability.Logger) Handler {
	return Handler{
		callProcessor: callProcessor,
		logger:        logger,
	}
}

// HandleCreateCall creates a new voice call and returns the websocket
// endpoint the client should connect to.
func (h Handler) HandleCreateCall(c *gin.Context) {
	result, err := h.callProcessor.CreateCall(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
