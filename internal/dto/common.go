package dto

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Pagination is the offset-based envelope used by the emotion log listing.
type Pagination struct {
	Total      int64 `json:"total"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	TotalPages int   `json:"total_pages"`
}

// PagePagination is the page-based envelope used by the comfort wall and
// challenge listings.
type PagePagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// TotalPages computes ceil(total/limit). A limit of zero or less yields zero
// pages instead of a division error.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
