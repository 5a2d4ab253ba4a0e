package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collegescope/api/internal/app/services"
	"github.com/collegescope/api/internal/middleware"
	"github.com/collegescope/api/internal/pkg/helpers"
)

// AggregationController handles the grouped and bucketed analytics
// endpoints.
type AggregationController struct {
	aggregationService *services.AggregationService
}

// NewAggregationController creates a new AggregationController
func NewAggregationController(aggregationService *services.AggregationService) *AggregationController {
	return &AggregationController{
		aggregationService: aggregationService,
	}
}

// GetStateAggregation returns per-state metrics
// @Summary Per-state metrics
// @Description Average, minimum, and maximum cost, earnings, and completion rate per state
// @Tags aggregations
// @Produce json
// @Param state query string false "Restrict to one state"
// @Param year query int false "Data year"
// @Success 200 {object} dto.StateAggregationResponse "Per-state rows"
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /aggregations/state [get]
func (c *AggregationController) GetStateAggregation(ctx *gin.Context) {
	year, err := queryYear(ctx)
	if err != nil {
		badParam(ctx, "year", err.Error())
		return
	}

	resp, err := c.aggregationService.StateAggregation(ctx, ctx.Query("state"), year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetROI ranks schools by return on investment
// @Summary ROI ranking
// @Description Top schools by return on investment, optionally restricted by state, ownership, or major
// @Tags aggregations
// @Produce json
// @Param state query string false "Restrict to one state"
// @Param ownership query int false "Restrict to one ownership sector"
// @Param major query string false "Restrict to schools strong in one major"
// @Param year query int false "Data year"
// @Success 200 {object} dto.ROIResponse "Ranked schools"
// @Failure 400 {object} dto.ErrorResponse "Invalid ownership, major, or year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /aggregations/roi [get]
func (c *AggregationController) GetROI(ctx *gin.Context) {
	ownership, err := queryOwnership(ctx)
	if err != nil {
		badParam(ctx, "ownership", err.Error())
		return
	}
	year, err := queryYear(ctx)
	if err != nil {
		badParam(ctx, "year", err.Error())
		return
	}

	resp, err := c.aggregationService.ROI(ctx, ctx.Query("state"), ownership, ctx.Query("major"), year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetEarningsDistribution returns the earnings histogram
// @Summary Earnings distribution
// @Description Histogram of ten-year median earnings across schools
// @Tags aggregations
// @Produce json
// @Param state query string false "Restrict to one state"
// @Param major query string false "Restrict to schools strong in one major"
// @Param year query int false "Data year"
// @Success 200 {object} dto.DistributionResponse "Labeled buckets"
// @Failure 400 {object} dto.ErrorResponse "Invalid major or year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /aggregations/earnings-distribution [get]
func (c *AggregationController) GetEarningsDistribution(ctx *gin.Context) {
	year, err := queryYear(ctx)
	if err != nil {
		badParam(ctx, "year", err.Error())
		return
	}

	resp, err := c.aggregationService.EarningsDistribution(ctx, ctx.Query("state"), ctx.Query("major"), year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetCostVsEarnings returns the cost-vs-earnings scatter
// @Summary Cost versus earnings
// @Description Scatter of net price against ten-year median earnings, schools with both figures only
// @Tags aggregations
// @Produce json
// @Param state query string false "Restrict to one state"
// @Param ownership query int false "Restrict to one ownership sector"
// @Param limit query int false "Maximum points (default 200, max 500)"
// @Param year query int false "Data year"
// @Success 200 {object} dto.ScatterResponse "Scatter points"
// @Failure 400 {object} dto.ErrorResponse "Invalid ownership, limit, or year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /aggregations/cost-vs-earnings [get]
func (c *AggregationController) GetCostVsEarnings(ctx *gin.Context) {
	ownership, err := queryOwnership(ctx)
	if err != nil {
		badParam(ctx, "ownership", err.Error())
		return
	}
	limit, err := helpers.ClampLimit(ctx.Query("limit"), services.ScatterDefaultSize, services.ScatterMaxSize)
	if err != nil {
		badParam(ctx, "limit", err.Error())
		return
	}
	year, err := queryYear(ctx)
	if err != nil {
		badParam(ctx, "year", err.Error())
		return
	}

	resp, err := c.aggregationService.CostVsEarnings(ctx, ctx.Query("state"), ownership, limit, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetCompletionRates returns grouped completion statistics
// @Summary Completion rates by group
// @Description Completion-rate statistics grouped by state, ownership, or predominant degree level
// @Tags aggregations
// @Produce json
// @Param group_by query string false "state (default), ownership, or degree_level"
// @Param year query int false "Data year"
// @Success 200 {object} dto.CompletionRatesResponse "Grouped rows"
// @Failure 400 {object} dto.ErrorResponse "Unknown group_by value or invalid year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /aggregations/completion-rates [get]
func (c *AggregationController) GetCompletionRates(ctx *gin.Context) {
	year, err := queryYear(ctx)
	if err != nil {
		badParam(ctx, "year", err.Error())
		return
	}

	resp, err := c.aggregationService.CompletionRates(ctx, ctx.Query("group_by"), year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSummary returns the dataset-wide rollup
// @Summary Dataset summary
// @Description Dataset-wide school count and national averages for the default data year
// @Tags aggregations
// @Produce json
// @Success 200 {object} dto.DatasetSummary "Summary"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /aggregations/summary [get]
func (c *AggregationController) GetSummary(ctx *gin.Context) {
	resp, err := c.aggregationService.Summary(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
