package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selecciona el orden del resultado
type SortKey string

const (
	SortNewest SortKey = "newest"
	SortOldest SortKey = "oldest"
	SortTitle  SortKey = "title"

	DefaultSort = SortNewest
)

// Sortable expone la fecha y el título usados para ordenar
type Sortable interface {
	Record
	SortTime() time.Time
	SortTitle() string
}

// ParseSortKey convierte el valor recibido en SortKey; vacío equivale a DefaultSort
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case "":
		return DefaultSort, nil
	case SortNewest, SortOldest, SortTitle:
		return key, nil
	default:
		return "", &ValidationError{Field: "sort", Message: "unsupported sort key " + s}
	}
}

// Comparator ordena registros por una clave. Los empates se resuelven por id ascendente.
// No es seguro para uso concurrente: el collator mantiene buffers internos.
type Comparator[T Sortable] struct {
	key      SortKey
	collator *collate.Collator
}

func NewComparator[T Sortable](key SortKey) *Comparator[T] {
	c := &Comparator[T]{key: key}
	if key == SortTitle {
		c.collator = collate.New(language.English, collate.IgnoreCase)
	}
	return c
}

// Compare devuelve -1, 0 o 1
func (c *Comparator[T]) Compare(a, b T) int {
	var order int
	switch c.key {
	case SortNewest:
		order = b.SortTime().Compare(a.SortTime())
	case SortOldest:
		order = a.SortTime().Compare(b.SortTime())
	case SortTitle:
		order = c.collator.CompareString(a.SortTitle(), b.SortTitle())
	}
	if order != 0 {
		return order
	}
	return cmp.Compare(a.GetID(), b.GetID())
}

// Compare ordena dos registros con un comparador temporal
func Compare[T Sortable](a, b T, key SortKey) int {
	return NewComparator[T](key).Compare(a, b)
}

// Sort devuelve una copia ordenada
func Sort[T Sortable](records []T, key SortKey) []T {
	out := slices.Clone(records)
	slices.SortStableFunc(out, NewComparator[T](key).Compare)
	return out
}
