package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/collegescope/api/internal/app/models/dto"
	"github.com/collegescope/api/internal/app/services"
	"github.com/collegescope/api/internal/middleware"
)

// AnalyticsController handles the composite analytics endpoints.
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetStateAnalytics returns the analytics bundle for one state
// @Summary State analytics bundle
// @Description Summary, ownership breakdown, top-ten lists, distributions, and the full school list for one state
// @Tags analytics
// @Produce json
// @Param code path string true "Two-letter state code"
// @Param year query int false "Data year"
// @Success 200 {object} dto.StateAnalyticsResponse "State bundle"
// @Failure 400 {object} dto.ErrorResponse "Missing state code or invalid year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/state/{code} [get]
func (c *AnalyticsController) GetStateAnalytics(ctx *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(ctx.Param("code")))
	year, err := queryYear(ctx)
	if err != nil {
		badParam(ctx, "year", err.Error())
		return
	}

	resp, err := c.analyticsService.StateAnalytics(ctx, code, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetStateComparison returns the cross-state comparison
// @Summary State comparison
// @Description One rollup row per state, including ownership sector counts
// @Tags analytics
// @Produce json
// @Param year query int false "Data year"
// @Success 200 {object} dto.StateComparisonResponse "Per-state rollups"
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/state-comparison [get]
func (c *AnalyticsController) GetStateComparison(ctx *gin.Context) {
	year, err := queryYear(ctx)
	if err != nil {
		badParam(ctx, "year", err.Error())
		return
	}

	resp, err := c.analyticsService.StateComparison(ctx, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSchoolAnalytics returns one school's analytics view
// @Summary School analytics
// @Description One school's metrics with ROI, completion by race, state and national baselines, and the historical trend
// @Tags analytics
// @Produce json
// @Param id path int true "School ID"
// @Param year query int false "Data year"
// @Success 200 {object} dto.SchoolAnalyticsResponse "School analytics"
// @Failure 400 {object} dto.ErrorResponse "Invalid school ID or year"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/school/{id} [get]
func (c *AnalyticsController) GetSchoolAnalytics(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid school ID")
		errorDetail = errorDetail.WithDetails("School ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	year, err := queryYear(ctx)
	if err != nil {
		badParam(ctx, "year", err.Error())
		return
	}

	resp, err := c.analyticsService.SchoolAnalytics(ctx, id, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAvailableYears lists the dataset years
// @Summary Available data years
// @Description Lists the years present in the outcome records and the default year
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.YearsResponse "Years"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/available-years [get]
func (c *AnalyticsController) GetAvailableYears(ctx *gin.Context) {
	resp, err := c.analyticsService.AvailableYears(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
