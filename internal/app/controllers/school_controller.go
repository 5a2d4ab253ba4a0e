package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/collegescope/api/internal/app/models/dto"
	"github.com/collegescope/api/internal/app/services"
	"github.com/collegescope/api/internal/middleware"
	"github.com/collegescope/api/internal/pkg/helpers"
)

// SchoolController handles institution listing, search, comparison, and
// detail endpoints.
type SchoolController struct {
	schoolService *services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService *services.SchoolService) *SchoolController {
	return &SchoolController{
		schoolService: schoolService,
	}
}

// FilterSchools filters institutions by criteria
// @Summary Filter schools
// @Description Filters institutions by state, cost, earnings, admission rate, completion rate, ownership, degree level, size, and major. Accepts criteria as query parameters (GET) or a JSON body (POST).
// @Tags schools
// @Accept json
// @Produce json
// @Param state query string false "Two-letter state code"
// @Param cost_min query number false "Minimum annual net price"
// @Param cost_max query number false "Maximum annual net price"
// @Param earnings_min query number false "Minimum 10-year median earnings"
// @Param admission_rate_max query number false "Maximum admission rate"
// @Param completion_rate_min query number false "Minimum completion rate"
// @Param ownership query int false "Ownership code (1 public, 2 private nonprofit, 3 for-profit)"
// @Param degree_level query int false "Predominant degree level (1-4)"
// @Param major query string false "Major taxonomy code"
// @Param sort_by query string false "Sort field (size, name, cost, earnings, admission_rate, completion_rate)"
// @Param sort_order query string false "asc or desc"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.SchoolListResponse "Matching schools"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter criteria"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/filter [get]
func (c *SchoolController) FilterSchools(ctx *gin.Context) {
	var req dto.SchoolFilterRequest
	var err error
	if ctx.Request.Method == http.MethodPost {
		err = ctx.ShouldBindJSON(&req)
	} else {
		err = ctx.ShouldBindQuery(&req)
	}
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter criteria")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.schoolService.Filter(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SearchSchools runs a text search over school names
// @Summary Search schools
// @Description Full-text search over school names and aliases, ranked by relevance
// @Tags schools
// @Produce json
// @Param q query string true "Search query"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.SearchResponse "Search results"
// @Failure 400 {object} dto.ErrorResponse "Missing search query"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/search [get]
func (c *SchoolController) SearchSchools(ctx *gin.Context) {
	q := strings.TrimSpace(ctx.Query("q"))
	if q == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeMissingParameter, "Search query is required").WithField("q")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	page, limit := helpers.ParsePageLimit(ctx)

	resp, err := c.schoolService.Search(ctx, q, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CompareSchools compares a bounded set of schools
// @Summary Compare schools
// @Description Returns merged detail views for up to 10 schools. Accepts ids as a comma-separated query parameter (GET) or a JSON body (POST).
// @Tags schools
// @Accept json
// @Produce json
// @Param ids query string false "Comma-separated school ids (GET form)"
// @Param year query int false "Data year"
// @Param request body dto.CompareRequest false "School ids (POST form)"
// @Success 200 {object} dto.CompareResponse "Comparison rows"
// @Failure 400 {object} dto.ErrorResponse "Too many or missing ids"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/compare [get]
func (c *SchoolController) CompareSchools(ctx *gin.Context) {
	var ids []int
	var year *int

	if ctx.Request.Method == http.MethodPost {
		var req dto.CompareRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid comparison request")
			errorDetail = errorDetail.WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		ids = req.IDs
		year = req.Year
	} else {
		parsed, err := parseIDList(ctx.Query("ids"))
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "ids must be a comma-separated list of numbers").WithField("ids")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		ids = parsed
		year, err = queryYear(ctx)
		if err != nil {
			badParam(ctx, "year", err.Error())
			return
		}
	}

	resp, err := c.schoolService.Compare(ctx, ids, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSchoolByID retrieves the merged detail view for one school
// @Summary Get school by ID
// @Description Retrieves one school with its satellite records merged for the requested data year
// @Tags schools
// @Produce json
// @Param id path int true "School ID"
// @Param year query int false "Data year"
// @Param include_history query bool false "Include the multi-year outcome history"
// @Success 200 {object} dto.SchoolDetail "School detail"
// @Failure 400 {object} dto.ErrorResponse "Invalid school ID"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{id} [get]
func (c *SchoolController) GetSchoolByID(ctx *gin.Context) {
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
	includeHistory := ctx.Query("include_history") == "true"

	resp, err := c.schoolService.Detail(ctx, id, year, includeHistory)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetStates lists the states present in the dataset
// @Summary List states
// @Description Lists every state present in the dataset with its school count
// @Tags schools
// @Produce json
// @Success 200 {object} dto.StatesResponse "States with counts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/states [get]
func (c *SchoolController) GetStates(ctx *gin.Context) {
	resp, err := c.schoolService.States(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
