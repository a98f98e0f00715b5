package catalog

// Page es una porción de la colección filtrada y ordenada
type Page[T any] struct {
	Items      []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalCount int `json:"total"`
}

// Paginate divide en páginas numeradas desde 1. Las páginas fuera de rango
// se ajustan a la primera o la última y un tamaño menor que uno cuenta como uno.
func Paginate[T any](records []T, pageSize, pageNumber int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := min(start+pageSize, total)
	items := make([]T, 0, end-start)
	if start < end {
		items = append(items, records[start:end]...)
	}

	return Page[T]{
		Items:      items,
		Page:       pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalCount: total,
	}
}
