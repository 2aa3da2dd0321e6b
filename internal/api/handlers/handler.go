package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"leasescore/internal/api/models"
	"leasescore/internal/engine"
	"leasescore/internal/model"
	"leasescore/internal/observability"
	"leasescore/internal/report"
	"leasescore/internal/store"
)

// DealHandler serves evaluation, stored results and reports.
type DealHandler struct {
	engine    *engine.Engine
	store     store.Store
	assembler *report.Assembler
	metrics   *observability.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewDealHandler creates a deal handler. A nil now uses time.Now.
func NewDealHandler(st store.Store, m *observability.Metrics, logger *slog.Logger, now func() time.Time) *DealHandler {
	if now == nil {
		now = time.Now
	}
	return &DealHandler{
		engine:    engine.New(),
		store:     st,
		assembler: report.NewAssembler(now),
		metrics:   m,
		logger:    logger,
		now:       now,
	}
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// respondEvalError maps an engine error to a response.
func respondEvalError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, models.CodeInvalidInput, err.Error())
		return
	}
	respondError(c, http.StatusInternalServerError, models.CodeInternalError, err.Error())
}

// respondStoreError maps a store error to a response.
func (h *DealHandler) respondStoreError(c *gin.Context, id string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, models.CodeNotFound, "no result with id "+id)
		return
	}
	h.logger.Error("store operation failed", "id", id, "error", err)
	respondError(c, http.StatusInternalServerError, models.CodeStoreError, "result store unavailable")
}
