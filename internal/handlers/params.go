package handlers

import (
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"industrial-catalog/internal/catalog"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// ListParams son los parámetros de consulta de un listado
type ListParams struct {
	Query        string   `schema:"q"`
	Categories   []string `schema:"category"`
	Materials    []string `schema:"material"`
	Applications []string `schema:"application"`
	Sort         string   `schema:"sort"`
	Page         int      `schema:"page"`
	PageSize     int      `schema:"page_size"`
}

// parseListQuery decodifica la query string en un catalog.Query saneado
func parseListQuery(values url.Values, defaultPageSize int) (catalog.Query, error) {
	params := ListParams{Page: 1, PageSize: defaultPageSize}
	if err := decoder.Decode(&params, values); err != nil {
		return catalog.Query{}, &catalog.ValidationError{Message: err.Error()}
	}

	sortKey, err := catalog.ParseSortKey(params.Sort)
	if err != nil {
		return catalog.Query{}, err
	}

	facets := map[catalog.Facet][]string{}
	addFacet(facets, catalog.FacetCategories, params.Categories)
	addFacet(facets, catalog.FacetMaterials, params.Materials)
	addFacet(facets, catalog.FacetApplications, params.Applications)

	q := catalog.Query{
		Filter:   catalog.FilterState{Query: params.Query, Facets: facets},
		Sort:     sortKey,
		Page:     params.Page,
		PageSize: params.PageSize,
	}
	return q.Sanitize(), nil
}

// addFacet acepta valores repetidos o separados por coma; "All" no filtra
func addFacet(facets map[catalog.Facet][]string, facet catalog.Facet, raw []string) {
	for _, item := range raw {
		for _, v := range strings.Split(item, ",") {
			v = strings.TrimSpace(v)
			if v == "" || strings.EqualFold(v, "all") {
				continue
			}
			facets[facet] = append(facets[facet], v)
		}
	}
}
