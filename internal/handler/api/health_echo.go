package api

import (
	"net/http"
	"time"

	"github.com/arunsingh-creator/CodeBloom/internal/usecase"
	xlogger "github.com/arunsingh-creator/CodeBloom/pkg/logger"

	"github.com/labstack/echo/v4"
)

// HealthEchoHandler serves the root and health endpoints.
type HealthEchoHandler struct {
	logger    *xlogger.Logger
	predictor *usecase.CyclePredictor
	chat      *usecase.ChatService
	chatModel string
	version   string
}

func NewHealthEchoHandler(logger *xlogger.Logger, predictor *usecase.CyclePredictor, chat *usecase.ChatService, chatModel, version string) *HealthEchoHandler {
	return &HealthEchoHandler{
		logger:    logger,
		predictor: predictor,
		chat:      chat,
		chatModel: chatModel,
		version:   version,
	}
}

func (h *HealthEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
}

func (h *HealthEchoHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "online",
		"service":   "Combined Reproductive Health API",
		"version":   h.version,
		"timestamp": time.Now().Format(time.RFC3339),
		"features": map[string]string{
			"chatbot":          "Available at /api/chat",
			"cycle_prediction": "Available at /api/predict",
			"pcos_risk":        "Available at /api/pcos/risk-assessment",
		},
		"health": "/health",
	})
}

func (h *HealthEchoHandler) Health(c echo.Context) error {
	chatConfigured := h.chat.Configured()
	modelReady := h.predictor.ModelReady()

	chatStatus := "not configured"
	if chatConfigured {
		chatStatus = "operational"
	}
	predictorStatus := "model unavailable"
	if modelReady {
		predictorStatus = "operational"
	}

	h.logger.Debug("health check",
		xlogger.Bool("chat_configured", chatConfigured),
		xlogger.Bool("model_ready", modelReady),
	)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"chatbot": map[string]interface{}{
			"status":     chatStatus,
			"configured": chatConfigured,
			"model":      h.chatModel,
		},
		"cycle_predictor": map[string]interface{}{
			"status": predictorStatus,
			"ready":  modelReady,
		},
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
