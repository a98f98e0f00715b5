package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Facet es una dimensión de clasificación de un registro
type Facet string

const (
	FacetCategories   Facet = "categories"
	FacetMaterials    Facet = "materials"
	FacetApplications Facet = "applications"
)

// Record es cualquier registro que el motor de filtros puede evaluar.
// FacetValues devuelve false cuando el tipo no tiene esa faceta.
type Record interface {
	GetID() int
	SearchText() []string
	FacetValues(f Facet) ([]string, bool)
}

// Vocabulary contiene los valores seleccionables de cada faceta
type Vocabulary map[Facet][]string

// FilterState es la búsqueda de texto más los valores de faceta seleccionados.
// Un conjunto vacío significa que la faceta no restringe nada.
type FilterState struct {
	Query  string
	Facets map[Facet][]string
}

// IsEmpty indica si no hay ninguna restricción activa
func (fs FilterState) IsEmpty() bool {
	if strings.TrimSpace(fs.Query) != "" {
		return false
	}
	for _, values := range fs.Facets {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// Normalize limpia espacios, descarta vacíos y duplicados y ordena cada
// conjunto para que estados iguales generen la misma clave.
func (fs FilterState) Normalize() FilterState {
	out := FilterState{Query: strings.TrimSpace(fs.Query)}
	for facet, values := range fs.Facets {
		set := make([]string, 0, len(values))
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v == "" || slices.Contains(set, v) {
				continue
			}
			set = append(set, v)
		}
		if len(set) == 0 {
			continue
		}
		slices.Sort(set)
		if out.Facets == nil {
			out.Facets = make(map[Facet][]string)
		}
		out.Facets[facet] = set
	}
	return out
}

// Validate verifica que cada faceta activa exista en el vocabulario
// y solo use valores permitidos.
func (fs FilterState) Validate(vocab Vocabulary) error {
	for facet, values := range fs.Facets {
		if len(values) == 0 {
			continue
		}
		allowed, ok := vocab[facet]
		if !ok {
			return &ValidationError{Field: string(facet), Message: "unknown facet"}
		}
		for _, v := range values {
			if !slices.Contains(allowed, v) {
				return &ValidationError{Field: string(facet), Message: "unknown value " + strings.TrimSpace(v)}
			}
		}
	}
	return nil
}

// Matches indica si el registro cumple la búsqueda y todas las facetas activas
func Matches(r Record, fs FilterState) bool {
	if q := strings.TrimSpace(fs.Query); q != "" && !matchesQuery(r.SearchText(), q) {
		return false
	}
	for facet, selected := range fs.Facets {
		if len(selected) == 0 {
			continue
		}
		values, ok := r.FacetValues(facet)
		if !ok || !intersects(values, selected) {
			return false
		}
	}
	return true
}

// Filter devuelve los registros que coinciden, en su orden original
func Filter[T Record](records []T, fs FilterState) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if Matches(r, fs) {
			out = append(out, r)
		}
	}
	return out
}

func matchesQuery(fields []string, query string) bool {
	fold := cases.Fold()
	needle := fold.String(query)
	for _, field := range fields {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}

func intersects(values, selected []string) bool {
	for _, v := range values {
		if slices.Contains(selected, v) {
			return true
		}
	}
	return false
}
