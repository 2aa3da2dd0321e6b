package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leasescore/internal/api/models"
	"leasescore/internal/benchmark"
	"leasescore/internal/hints"
	"leasescore/internal/leasemath"
	"leasescore/internal/optimize"
	"leasescore/internal/rates"
	"leasescore/internal/risk"
	"leasescore/internal/scoring"
)

// Hints handles POST /api/v1/hints
func Hints(c *gin.Context) {
	var req models.HintsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}
	if req.Field == "" {
		c.JSON(http.StatusOK, models.HintsResponse{Hints: hints.All(req.Deal)})
		return
	}
	h, err := hints.ForField(req.Field, req.Deal)
	if errors.Is(err, hints.ErrUnknownField) {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, models.HintsResponse{Hints: []hints.Hint{h}})
}

// Convert handles GET /api/v1/convert?money_factor=x or ?apr=y
func Convert(c *gin.Context) {
	mf, hasMF := c.GetQuery("money_factor")
	apr, hasAPR := c.GetQuery("apr")
	if hasMF == hasAPR {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, "exactly one of money_factor or apr is required")
		return
	}

	raw, name := mf, "money_factor"
	if hasAPR {
		raw, name = apr, "apr"
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, name+" must be a non-negative number")
		return
	}

	if hasMF {
		c.JSON(http.StatusOK, models.ConvertResponse{MoneyFactor: v, APRPercent: rates.APRFromMoneyFactor(v)})
		return
	}
	c.JSON(http.StatusOK, models.ConvertResponse{MoneyFactor: rates.MoneyFactorFromAPR(v), APRPercent: v})
}

// Benchmarks handles GET /api/v1/benchmarks
func Benchmarks(c *gin.Context) {
	c.JSON(http.StatusOK, models.BenchmarksResponse{
		Market: benchmark.Market,
		Thresholds: map[string]float64{
			"high_apr_percent":             scoring.HighAPR,
			"low_apr_percent":              scoring.LowAPR,
			"target_payment_ratio_percent": optimize.TargetPaymentRatio * 100,
			"target_discount_percent":      optimize.TargetDiscount * 100,
			"target_apr_percent":           optimize.TargetAPRPercent,
			"annual_mileage":               leasemath.AnnualMileage,
			"standard_mileage_limit":       risk.StandardMileageLimit,
			"cost_to_own_limit_percent":    risk.CostToOwnLimit,
		},
	})
}
