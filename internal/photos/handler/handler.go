package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"tripvoice/internal/apierrors"
	"tripvoice/internal/observability"
	"tripvoice/internal/photos/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	photoProcessor *processor.PhotoProcessor
	logger         *observability.Logger
}

func New(photoProcessor *processor.PhotoProcessor, logger *observability.Logger) Handler {
	return Handler{
		photoProcessor: photoProcessor,
		logger:         logger,
	}
}

// HandleFetchPhotos returns photos for the destination in the path. The
// optional count query parameter defaults to 6; the client clamps it to the
// provider maximum.
func (h Handler) HandleFetchPhotos(c *gin.Context) {
	destination := c.Param("destination")

	count := processor.DefaultPhotoCount
	if countParam := c.Query("count"); countParam != "" {
		parsed, err := strconv.Atoi(countParam)
		if err != nil {
			apierrors.RespondWithValidationError(c, fmt.Errorf("invalid count parameter %q: %w", countParam, err))
			return
		}
		count = parsed
	}

	result, err := h.photoProcessor.FetchPhotos(c.Request.Context(), destination, count)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
