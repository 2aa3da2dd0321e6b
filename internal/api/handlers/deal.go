package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leasescore/internal/api/models"
	"leasescore/internal/model"
	"leasescore/internal/report"
	"leasescore/internal/store"
)

// Evaluate handles POST /api/v1/evaluate
func (h *DealHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}

	res, ok := h.evaluate(c, req.Deal)
	if !ok {
		return
	}

	rec := store.NewRecord(req.Name, res, h.now())
	if err := h.store.Put(c.Request.Context(), rec); err != nil {
		h.respondStoreError(c, rec.ID, err)
		return
	}
	h.logger.Info("deal evaluated", "id", rec.ID, "rating", res.Score.DealRating, "score", res.Score.TotalScore)

	c.JSON(http.StatusCreated, toResponse(rec))
}

// GetResult handles GET /api/v1/results/:id
func (h *DealHandler) GetResult(c *gin.Context) {
	rec, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toResponse(rec))
}

// DeleteResult handles DELETE /api/v1/results/:id
func (h *DealHandler) DeleteResult(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.respondStoreError(c, id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ResultReport handles GET /api/v1/results/:id/report?format=md|html|csv|json
func (h *DealHandler) ResultReport(c *gin.Context) {
	format, ok := h.format(c)
	if !ok {
		return
	}
	rec, ok := h.load(c)
	if !ok {
		return
	}
	h.render(c, rec.Result, format)
}

// Report handles POST /api/v1/report. The deal is evaluated and rendered without being stored.
func (h *DealHandler) Report(c *gin.Context) {
	format, ok := h.format(c)
	if !ok {
		return
	}
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}
	res, ok := h.evaluate(c, req.Deal)
	if !ok {
		return
	}
	h.render(c, res, format)
}

func (h *DealHandler) evaluate(c *gin.Context, in model.DealInputs) (*model.EvaluationResult, bool) {
	res, err := h.engine.Evaluate(in)
	if err != nil {
		respondEvalError(c, err)
		return nil, false
	}
	if h.metrics != nil {
		h.metrics.ObserveEvaluation(string(res.Score.DealRating))
	}
	return res, true
}

func (h *DealHandler) load(c *gin.Context) (*store.Record, bool) {
	id := c.Param("id")
	if !store.ValidID(id) {
		respondError(c, http.StatusNotFound, models.CodeNotFound, "no result with id "+id)
		return nil, false
	}
	rec, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		h.respondStoreError(c, id, err)
		return nil, false
	}
	return rec, true
}

func (h *DealHandler) format(c *gin.Context) (report.Format, bool) {
	f, ok := report.ParseFormat(c.Query("format"))
	if !ok {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, "format must be one of md, html, csv, json")
	}
	return f, ok
}

func (h *DealHandler) render(c *gin.Context, res *model.EvaluationResult, f report.Format) {
	out, err := h.assembler.Build(res).Render(f)
	if err != nil {
		h.logger.Error("render report", "format", f, "error", err)
		respondError(c, http.StatusInternalServerError, models.CodeRenderError, err.Error())
		return
	}
	c.Data(http.StatusOK, f.ContentType(), out)
}

func toResponse(rec *store.Record) models.ResultResponse {
	return models.ResultResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		CreatedAt: rec.CreatedAt,
		Result:    rec.Result,
	}
}
