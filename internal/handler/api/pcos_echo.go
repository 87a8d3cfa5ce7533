package api

import (
	models "github.com/arunsingh-creator/CodeBloom/internal/domain/models"
	"github.com/arunsingh-creator/CodeBloom/internal/services/assessment"
	xhttp "github.com/arunsingh-creator/CodeBloom/pkg/http"
	xlogger "github.com/arunsingh-creator/CodeBloom/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PCOSEchoHandler serves the PCOS risk screening endpoint.
type PCOSEchoHandler struct {
	logger *xlogger.Logger
}

func NewPCOSEchoHandler(logger *xlogger.Logger) *PCOSEchoHandler {
	return &PCOSEchoHandler{logger: logger}
}

func (h *PCOSEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/pcos/risk-assessment", h.Assess)
}

func (h *PCOSEchoHandler) Assess(c echo.Context) error {
	req := &models.PCOSRiskRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := assessment.CalculateRisk(*req)
	h.logger.Info("pcos assessment served",
		xlogger.Int("risk_score", res.RiskScore),
		xlogger.String("risk_level", res.RiskLevel),
	)
	return xhttp.SuccessResponse(c, res)
}
