package endpoints

import (
	"jobboard"
	"jobboard/internal/realtime"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type websocketHandler struct {
	hub    *realtime.Hub
	logger zerolog.Logger
	config jobboard.AppConfig
}

// WebSocketHandler exposes the live notification stream. The token travels
// as a query parameter, so this route skips the header-based middleware and
// authenticates inside the upgrade.
func WebSocketHandler(router *graceful.Graceful, hub *realtime.Hub) {
	h := &websocketHandler{
		hub:    hub,
		logger: jobboard.Logger,
		config: jobboard.GetConfig(),
	}

	router.GET("/api/v1/ws", h.handleWebSocket)
}

func (slf *websocketHandler) handleWebSocket(c *gin.Context) {
	realtime.ServeWS(slf.hub, slf.config.JWTConfig.Secret, c.Writer, c.Request)
}
