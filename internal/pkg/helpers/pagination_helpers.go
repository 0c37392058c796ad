package helpers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/placement/studentms/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 0 // Pages are zero-indexed
)

// Sort directions accepted by paged queries.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries from a
// zero-indexed page number.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 || size > MaxPageSize {
		limit = DefaultPageSize
	} else {
		limit = size
	}

	if page < 0 {
		page = DefaultPage
	}

	offset = uint64(page) * uint64(limit)
	return offset, limit
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page is the zero-indexed page number.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 0 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

// ParsePaginationParams extracts and validates pagination parameters from the request.
func ParsePaginationParams(c *gin.Context) (page, size int) {
	pageStr := c.DefaultQuery("page", "0")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		page = DefaultPage
	}

	sizeStr := c.DefaultQuery("size", "10")
	size, err = strconv.Atoi(sizeStr)
	if err != nil || size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}

	return page, size
}

// NormalizeSortDirection maps a direction parameter to ASC or DESC.
// Any unrecognized value falls back to ascending.
func NormalizeSortDirection(direction string) string {
	if strings.EqualFold(direction, "desc") {
		return SortDesc
	}
	return SortAsc
}
