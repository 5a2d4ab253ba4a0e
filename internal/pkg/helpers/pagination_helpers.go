package helpers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
	DefaultPage  = 1 // Pages are 1-based
)

// ParsePageLimit extracts and validates pagination parameters from the request.
func ParsePageLimit(c *gin.Context) (page, limit int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limitStr := c.DefaultQuery("limit", "20")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return page, limit
}

// Skip converts a 1-based page number to a document offset.
func Skip(page, limit int) int64 {
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return int64((page - 1) * limit)
}

// ClampLimit bounds a caller-supplied limit for non-paged endpoints. An
// absent value falls back to def; a malformed or non-positive value is a
// caller error; an oversized value is clamped to max.
func ClampLimit(value string, def, max int) (int, error) {
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("limit must be a positive number")
	}
	if n > max {
		return max, nil
	}
	return n, nil
}
