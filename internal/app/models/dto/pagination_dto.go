package dto

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
	// FilteredItems counts records left after search and filters.
	FilteredItems int `json:"filteredItems"`
}

// PageResponse is one rendered page of a resource list.
type PageResponse[T any] struct {
	Items      []T               `json:"items"`
	Pagination PaginationInfo    `json:"pagination"`
	Filters    map[string]string `json:"filters,omitempty"`
}
