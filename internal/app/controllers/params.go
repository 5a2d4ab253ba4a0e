package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/collegescope/api/internal/app/models/dto"
)

// parseIDList splits a comma-separated id list.
func parseIDList(raw string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// queryYear reads the optional year query parameter. A present but
// malformed value is an error, not a silent fallback to the default year.
func queryYear(ctx *gin.Context) (*int, error) {
	raw := ctx.Query("year")
	if raw == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return nil, fmt.Errorf("year must be a positive number")
	}
	return &year, nil
}

// queryOwnership reads the optional ownership query parameter.
func queryOwnership(ctx *gin.Context) (*int, error) {
	raw := ctx.Query("ownership")
	if raw == "" {
		return nil, nil
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("ownership must be a number")
	}
	return &code, nil
}

// queryIntWindow reads an optional integer query parameter such as
// start_year or end_year. Absent means zero.
func queryIntWindow(ctx *gin.Context, name string) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%s must be a positive number", name)
	}
	return value, nil
}

// badParam writes the standard 400 envelope for a malformed query parameter.
func badParam(ctx *gin.Context, name, message string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).WithField(name)
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
