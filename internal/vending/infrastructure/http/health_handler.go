package http

import (
	"net/http"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	pinger Pinger
	logger logging.Logger
}

func NewHealthHandler(pinger Pinger, logger logging.Logger) *HealthHandler {
	return &HealthHandler{
		pinger: pinger,
		logger: logger,
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Error("database ping failed", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
