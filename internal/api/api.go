package api

import (
	"net/http"

	callHandler "tripvoice/internal/calls/handler"
	"tripvoice/internal/config"
	destinationHandler "tripvoice/internal/destinations/handler"
	photoHandler "tripvoice/internal/photos/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router             *gin.RouterGroup
	config             *config.Config
	callHandler        callHandler.Handler
	destinationHandler destinationHandler.Handler
	photoHandler       photoHandler.Handler
}

func New(
	router *gin.RouterGroup,
	cfg *config.Config,
	callHandler callHandler.Handler,
	destinationHandler destinationHandler.Handler,
	photoHandler photoHandler.Handler,
) API {
	return API{
		router:             router,
		config:             cfg,
		callHandler:        callHandler,
		destinationHandler: destinationHandler,
		photoHandler:       photoHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.router.GET("/health", a.handleHealth)
	a.router.GET("/config", a.handleConfig)
	// Legacy path kept for clients of the original relay.
	a.router.GET("/make_call", a.callHandler.HandleCreateCall)

	apiGroup := a.router.Group("/api")
	{
		apiGroup.GET("/calls", a.callHandler.HandleCreateCall)
		apiGroup.POST("/destinations/extract", a.destinationHandler.HandleExtract)
		apiGroup.GET("/destinations/:destination/photos", a.photoHandler.HandleFetchPhotos)
	}
}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"vapiConfigured":     a.config.VapiConfigured(),
		"unsplashConfigured": a.config.UnsplashConfigured(),
	})
}

// handleConfig reports which credentials are present. Secret values are
// never exposed, only their presence.
func (a *API) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"hasPrivateKey":  a.config.Vapi.PrivateKey != "",
		"hasAssistantId": a.config.Vapi.AssistantID != "",
		"hasUnsplashKey": a.config.Unsplash.AccessKey != "",
		"baseUrl":        a.config.Vapi.BaseURL,
	})
}
