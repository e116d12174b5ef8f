package domain

// PaginationParams selects a page of results. PageNumber starts at 1.
type PaginationParams struct {
	PageNumber int `validate:"min=1"`
	PageSize   int `validate:"min=1,max=500"`
}

// Pagination describes the page returned alongside a list payload.
type Pagination struct {
	TotalElement    int64 `json:"totalElement"`
	PageSize        int   `json:"pageSize"`
	PageNumber      int   `json:"pageNumber"`
	HasMoreElements bool  `json:"hasMoreElements"`
}

// CurrencyPage is a page of currencies together with its pagination block.
type CurrencyPage struct {
	Currencies []Currency
	Pagination Pagination
}
