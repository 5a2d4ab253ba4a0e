package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/collegescope/api/internal/app/models/dto"
	"github.com/collegescope/api/internal/app/services"
	"github.com/collegescope/api/internal/middleware"
)

// ProgramController handles field-of-study endpoints.
type ProgramController struct {
	programService *services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService *services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

// GetTrends returns the earnings trend for one CIP code
// @Summary Program earnings trend
// @Description Per-year average earnings and debt for one CIP-coded program across all schools offering it
// @Tags programs
// @Produce json
// @Param cip_code query string true "CIP code"
// @Param start_year query int false "First year of the window"
// @Param end_year query int false "Last year of the window"
// @Success 200 {object} dto.ProgramTrendsResponse "Trend points"
// @Failure 400 {object} dto.ErrorResponse "Missing CIP code or invalid window"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/trends [get]
func (c *ProgramController) GetTrends(ctx *gin.Context) {
	cipCode := ctx.Query("cip_code")
	if cipCode == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeMissingParameter, "cip_code is required").WithField("cip_code")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	startYear, err := queryIntWindow(ctx, "start_year")
	if err != nil {
		badParam(ctx, "start_year", err.Error())
		return
	}
	endYear, err := queryIntWindow(ctx, "end_year")
	if err != nil {
		badParam(ctx, "end_year", err.Error())
		return
	}

	resp, err := c.programService.Trends(ctx, cipCode, startYear, endYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CompareBySchools compares one program across schools
// @Summary Compare a program across schools
// @Description Returns one CIP-coded program's earnings and debt at each of up to 20 schools
// @Tags programs
// @Accept json
// @Produce json
// @Param request body dto.ProgramCompareRequest true "CIP code and school ids"
// @Success 200 {object} dto.ProgramCompareResponse "Per-school rows"
// @Failure 400 {object} dto.ErrorResponse "Too many ids or missing CIP code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/compare [post]
func (c *ProgramController) CompareBySchools(ctx *gin.Context) {
	var req dto.ProgramCompareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid comparison request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.programService.Compare(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetMajors lists the major taxonomy
// @Summary List major fields
// @Description Lists the degree-mix taxonomy codes accepted by the major filter, with display names
// @Tags programs
// @Produce json
// @Success 200 {object} dto.MajorsResponse "Major taxonomy"
// @Router /programs/majors [get]
func (c *ProgramController) GetMajors(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.programService.Majors())
}

// GetCipCodes lists the CIP code reference
// @Summary List CIP codes
// @Description Static reference list of common CIP codes with titles
// @Tags programs
// @Produce json
// @Success 200 {object} dto.CipCodesResponse "CIP codes"
// @Router /programs/cip-codes [get]
func (c *ProgramController) GetCipCodes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.programService.CipCodes())
}

// GetSchoolPrograms returns one school's program data
// @Summary Get a school's programs
// @Description Degree shares by major plus the field-of-study entries for one school and year
// @Tags programs
// @Produce json
// @Param id path int true "School ID"
// @Param year query int false "Data year"
// @Success 200 {object} dto.SchoolProgramsResponse "Program data"
// @Failure 400 {object} dto.ErrorResponse "Invalid school ID"
// @Failure 404 {object} dto.ErrorResponse "School or program data not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/school/{id} [get]
func (c *ProgramController) GetSchoolPrograms(ctx *gin.Context) {
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

	resp, err := c.programService.SchoolPrograms(ctx, id, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
