package api

import (
	"errors"

	models "github.com/arunsingh-creator/CodeBloom/internal/domain/models"
	"github.com/arunsingh-creator/CodeBloom/internal/services/ratelimit"
	"github.com/arunsingh-creator/CodeBloom/internal/usecase"
	xhttp "github.com/arunsingh-creator/CodeBloom/pkg/http"
	xlogger "github.com/arunsingh-creator/CodeBloom/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChatEchoHandler serves the reproductive health chatbot endpoint. The
// upstream model is rate limited per client IP.
type ChatEchoHandler struct {
	logger *xlogger.Logger
	chat   *usecase.ChatService
	rl     *ratelimit.Limiter
}

func NewChatEchoHandler(logger *xlogger.Logger, chat *usecase.ChatService, rl *ratelimit.Limiter) *ChatEchoHandler {
	return &ChatEchoHandler{logger: logger, chat: chat, rl: rl}
}

func (h *ChatEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/chat", h.Chat)
}

func (h *ChatEchoHandler) Chat(c echo.Context) error {
	req := &models.ChatRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if !h.rl.Allow(c.RealIP()) {
		h.logger.Warn("chat rate limited", xlogger.String("remote", c.RealIP()))
		return xhttp.AppErrorResponse(c,
			xhttp.TooManyRequestsError("too many chat requests, slow down"))
	}

	res, err := h.chat.Respond(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("chat usecase error", xlogger.Error(err))
		if errors.Is(err, usecase.ErrChatNotConfigured) {
			return xhttp.AppErrorResponse(c, xhttp.UnavailableError(err.Error()).WithError(err))
		}
		return xhttp.AppErrorResponse(c, xhttp.InternalError("chat service failed").WithError(err))
	}

	return xhttp.SuccessResponse(c, res)
}
