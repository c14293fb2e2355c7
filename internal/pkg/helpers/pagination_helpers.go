package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/models/dto"
)

const (
	DefaultPageSize = 5
	DefaultPage     = 1 // Default page is 1-based
)

// TotalPages returns max(1, ceil(totalItems/size)).
func TotalPages(totalItems, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if totalItems <= 0 {
		return 1
	}
	return (totalItems + size - 1) / size
}

// ClampPage moves page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < DefaultPage {
		return DefaultPage
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// CalculateSliceIndices returns the half-open range [start, end) of a 1-based page,
// clamped to [0, totalItems].
func CalculateSliceIndices(page, size, totalItems int) (start, end int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	start = (page - 1) * size
	end = start + size

	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return start, end
}

// Paginate returns the items of the given 1-based page.
func Paginate[T any](items []T, page, size int) []T {
	start, end := CalculateSliceIndices(page, size, len(items))
	return items[start:end]
}

// NewPaginationInfo creates a PaginationInfo DTO with the page clamped into range.
func NewPaginationInfo(totalItems, filteredItems, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = DefaultPageSize
	}
	totalPages := TotalPages(filteredItems, size)

	return dto.PaginationInfo{
		CurrentPage:   ClampPage(page, totalPages),
		TotalPages:    totalPages,
		PageSize:      size,
		TotalItems:    totalItems,
		FilteredItems: filteredItems,
	}
}

// ParsePage reads the 1-based page from the query. It is 0 when absent so
// callers can keep their current page; unparsable values mean page 1.
func ParsePage(c *gin.Context) int {
	raw, ok := c.GetQuery("page")
	if !ok {
		return 0
	}
	if p, err := strconv.Atoi(raw); err == nil && p >= 1 {
		return p
	}
	return DefaultPage
}
