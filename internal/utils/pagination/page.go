package pagination

import (
	"math"

	"github.com/SscSPs/pos_monedas/internal/core/domain"
)

// MaxPageNumber is the largest page whose offset fits in an int for the given page size.
func MaxPageNumber(pageSize int) int {
	if pageSize <= 0 {
		return math.MaxInt
	}
	return math.MaxInt/pageSize + 1
}

// Offset returns the number of rows to skip for a 1-based page.
// Callers must keep PageNumber within MaxPageNumber(PageSize).
func Offset(params domain.PaginationParams) int {
	return (params.PageNumber - 1) * params.PageSize
}

// TotalPages returns ceil(total / pageSize). A non-positive page size yields 0.
func TotalPages(total int64, pageSize int) int64 {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	size := int64(pageSize)
	return (total + size - 1) / size
}

// NewPagination builds the pagination block for a requested page of a result set.
func NewPagination(params domain.PaginationParams, total int64) domain.Pagination {
	return domain.Pagination{
		TotalElement:    total,
		PageSize:        params.PageSize,
		PageNumber:      params.PageNumber,
		HasMoreElements: int64(params.PageNumber) < TotalPages(total, params.PageSize),
	}
}

// SinglePage describes an unpaginated result of n elements as one page.
func SinglePage(n int) domain.Pagination {
	return domain.Pagination{
		TotalElement:    int64(n),
		PageSize:        n,
		PageNumber:      1,
		HasMoreElements: false,
	}
}
