package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	DefaultPageSize = 9
	MaxPageSize     = 100
)

// Query reúne filtro, orden y página de una vista
type Query struct {
	Filter   FilterState
	Sort     SortKey
	Page     int
	PageSize int
}

// NewQuery devuelve la primera página sin filtros y con el orden por defecto
func NewQuery(pageSize int) Query {
	return Query{Sort: DefaultSort, Page: 1, PageSize: pageSize}.Sanitize()
}

// Sanitize normaliza el filtro y ajusta los parámetros de paginación
func (q Query) Sanitize() Query {
	q.Filter = q.Filter.Normalize()
	if q.Sort == "" {
		q.Sort = DefaultSort
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > MaxPageSize {
		q.PageSize = DefaultPageSize
	}
	return q
}

// Key es una representación estable para claves de caché
func (q Query) Key() string {
	q = q.Sanitize()
	var b strings.Builder
	fmt.Fprintf(&b, "q:%s_sort:%s_p%d_s%d", strings.ToLower(q.Filter.Query), q.Sort, q.Page, q.PageSize)
	for _, facet := range slices.Sorted(maps.Keys(q.Filter.Facets)) {
		fmt.Fprintf(&b, "_%s:%s", facet, strings.Join(q.Filter.Facets[facet], "|"))
	}
	return b.String()
}

// Apply filtra, ordena y pagina la colección completa
func Apply[T Sortable](records []T, q Query) Page[T] {
	q = q.Sanitize()
	filtered := Filter(records, q.Filter)
	return Paginate(Sort(filtered, q.Sort), q.PageSize, q.Page)
}
