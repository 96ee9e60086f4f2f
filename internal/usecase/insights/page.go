package insights

// DefaultPageSize is the fixed page size used when the caller does not
// override it
const DefaultPageSize = 10

// Page is one page of an aggregated report. The input page index is
// 0-based; the Page field reported back to callers is 1-based.
type Page struct {
	Page        int   `json:"page"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	Rows        []Row `json:"rows"`
}

// Paginate slices rows into the requested 0-based page.
// An out-of-range page yields an empty row list with the true page count,
// never an error.
func Paginate(rows []Row, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	totalPages := (len(rows) + pageSize - 1) / pageSize

	start := page * pageSize
	end := start + pageSize
	pageRows := []Row{}
	if start < len(rows) {
		if end > len(rows) {
			end = len(rows)
		}
		pageRows = rows[start:end]
	}

	return Page{
		Page:        page + 1,
		TotalPages:  totalPages,
		HasNextPage: page+1 < totalPages,
		Rows:        pageRows,
	}
}
