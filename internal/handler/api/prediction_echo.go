package api

import (
	"errors"

	models "github.com/arunsingh-creator/CodeBloom/internal/domain/models"
	"github.com/arunsingh-creator/CodeBloom/internal/ml"
	"github.com/arunsingh-creator/CodeBloom/internal/usecase"
	xhttp "github.com/arunsingh-creator/CodeBloom/pkg/http"
	xlogger "github.com/arunsingh-creator/CodeBloom/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictionEchoHandler serves the cycle prediction endpoints.
type PredictionEchoHandler struct {
	logger    *xlogger.Logger
	predictor *usecase.CyclePredictor
}

func NewPredictionEchoHandler(logger *xlogger.Logger, predictor *usecase.CyclePredictor) *PredictionEchoHandler {
	return &PredictionEchoHandler{logger: logger, predictor: predictor}
}

func (h *PredictionEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/predict", h.Predict)
	g.POST("/predict/enhanced", h.PredictEnhanced)
}

func (h *PredictionEchoHandler) Predict(c echo.Context) error {
	req := &models.PredictRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.predictor.Predict(c.Request().Context(), req.PastCycles, req.LastPeriodDate, req.Framework)
	if err != nil {
		h.logger.Error("predict usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, translatePredictError(err))
	}

	return xhttp.SuccessResponse(c, models.NewPredictionResponse(res))
}

func (h *PredictionEchoHandler) PredictEnhanced(c echo.Context) error {
	req := &models.EnhancedPredictRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	history := make(models.CycleHistory, 0, len(req.CycleRecords))
	for i, payload := range req.CycleRecords {
		rec, err := payload.ToRecord()
		if err != nil {
			return xhttp.AppErrorResponse(c,
				xhttp.BadRequestErrorf("cycle_records[%d]: %v", i, err))
		}
		history = append(history, rec)
	}

	res, err := h.predictor.PredictEnhanced(c.Request().Context(), history, req.LastPeriodDate, req.Framework)
	if err != nil {
		h.logger.Error("predict enhanced usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, translatePredictError(err))
	}

	return xhttp.SuccessResponse(c, models.NewEnhancedPredictionResponse(res))
}

// translatePredictError maps pipeline errors onto HTTP statuses. Input
// problems become 400s; a missing model is a 503; anything the validated
// input cannot explain is a 500.
func translatePredictError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrModelUnavailable):
		return xhttp.UnavailableError(err.Error()).WithError(err)
	case errors.Is(err, ml.ErrEmptySequence), errors.Is(err, ml.ErrDimensionMismatch):
		return xhttp.InternalError(err.Error()).WithError(err)
	default:
		return xhttp.BadRequestError(err.Error()).WithError(err)
	}
}
