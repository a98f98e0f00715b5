// Package controller mantiene el estado de una vista de catálogo:
// carga, filtros, orden y página actual.
package controller

import (
	"context"
	"errors"
	"slices"
	"sync"

	"go.uber.org/zap"

	"industrial-catalog/internal/catalog"
)

// State es la fase de carga de la vista
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// ErrSuperseded lo devuelve una carga reemplazada por otra más reciente
var ErrSuperseded = errors.New("load superseded by a newer request")

//go:generate mockgen -destination=mock_loader_test.go -package=controller . Loader

// Loader entrega la colección completa de una entidad
type Loader[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
}

// View es una instantánea inmutable del estado visible
type View[T any] struct {
	State     State
	Err       error
	Query     catalog.Query
	Page      catalog.Page[T]
	Available int
}

// ViewController orquesta carga → filtro → orden → paginación.
// Cada cambio recalcula todo desde la colección cruda.
type ViewController[T catalog.Sortable] struct {
	mu     sync.Mutex
	loader Loader[T]
	logger *zap.Logger

	state  State
	err    error
	raw    []T
	query  catalog.Query
	page   catalog.Page[T]
	gen    uint64
	cancel context.CancelFunc
}

func New[T catalog.Sortable](loader Loader[T], pageSize int, logger *zap.Logger) *ViewController[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	vc := &ViewController[T]{
		loader: loader,
		logger: logger,
		state:  StateIdle,
		query:  catalog.NewQuery(pageSize),
	}
	vc.recompute()
	return vc
}

// Load cancela cualquier carga en curso y pide la colección de nuevo.
// Si otra carga empieza antes de que ésta termine, devuelve ErrSuperseded
// sin tocar el estado.
func (vc *ViewController[T]) Load(ctx context.Context) error {
	vc.mu.Lock()
	if vc.cancel != nil {
		vc.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	vc.gen++
	gen := vc.gen
	vc.cancel = cancel
	vc.state = StateLoading
	vc.err = nil
	vc.mu.Unlock()
	defer cancel()

	records, err := vc.loader.GetAll(ctx)

	vc.mu.Lock()
	defer vc.mu.Unlock()
	if gen != vc.gen {
		vc.logger.Debug("discarding stale load", zap.Uint64("generation", gen))
		return ErrSuperseded
	}
	vc.cancel = nil

	if err != nil {
		vc.state = StateFailed
		vc.err = err
		vc.raw = nil
		vc.recompute()
		vc.logger.Warn("collection load failed", zap.Error(err))
		return err
	}

	vc.state = StateReady
	vc.raw = records
	vc.recompute()
	return nil
}

// Retry vuelve a cargar después de un fallo
func (vc *ViewController[T]) Retry(ctx context.Context) error {
	return vc.Load(ctx)
}

// Close cancela la carga en curso, si hay una
func (vc *ViewController[T]) Close() {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	if vc.cancel != nil {
		vc.cancel()
		vc.cancel = nil
	}
	vc.gen++
}

// SetQuery cambia el texto de búsqueda
func (vc *ViewController[T]) SetQuery(text string) {
	vc.update(func(q *catalog.Query) { q.Filter.Query = text })
}

// SetFacet reemplaza los valores seleccionados de una faceta
func (vc *ViewController[T]) SetFacet(facet catalog.Facet, values []string) {
	vc.update(func(q *catalog.Query) {
		q.Filter.Facets = cloneFacets(q.Filter.Facets)
		q.Filter.Facets[facet] = slices.Clone(values)
	})
}

// ToggleFacet agrega o quita un valor de una faceta
func (vc *ViewController[T]) ToggleFacet(facet catalog.Facet, value string) {
	vc.update(func(q *catalog.Query) {
		q.Filter.Facets = cloneFacets(q.Filter.Facets)
		values := q.Filter.Facets[facet]
		if i := slices.Index(values, value); i >= 0 {
			q.Filter.Facets[facet] = slices.Delete(values, i, i+1)
			return
		}
		q.Filter.Facets[facet] = append(values, value)
	})
}

// SetSort cambia el orden
func (vc *ViewController[T]) SetSort(key catalog.SortKey) {
	vc.update(func(q *catalog.Query) { q.Sort = key })
}

// ClearFilters borra búsqueda y facetas; el orden se mantiene
func (vc *ViewController[T]) ClearFilters() {
	vc.update(func(q *catalog.Query) { q.Filter = catalog.FilterState{} })
}

// SetPage cambia de página sin tocar los filtros
func (vc *ViewController[T]) SetPage(page int) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.query.Page = page
	vc.recompute()
}

// Restore instala una consulta completa, incluida su página
func (vc *ViewController[T]) Restore(q catalog.Query) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	q.Filter.Facets = cloneFacets(q.Filter.Facets)
	vc.query = q.Sanitize()
	vc.recompute()
}

// View devuelve el estado actual
func (vc *ViewController[T]) View() View[T] {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return View[T]{
		State:     vc.state,
		Err:       vc.err,
		Query:     vc.query,
		Page:      vc.page,
		Available: len(vc.raw),
	}
}

// Collection devuelve una copia de la colección cruda cargada
func (vc *ViewController[T]) Collection() []T {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return slices.Clone(vc.raw)
}

// update aplica un cambio de filtro u orden y vuelve a la página 1
func (vc *ViewController[T]) update(change func(q *catalog.Query)) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	change(&vc.query)
	vc.query.Page = 1
	vc.recompute()
}

func (vc *ViewController[T]) recompute() {
	vc.query = vc.query.Sanitize()
	vc.page = catalog.Apply(vc.raw, vc.query)
	// Apply ajusta páginas fuera de rango
	vc.query.Page = vc.page.Page
}

func cloneFacets(in map[catalog.Facet][]string) map[catalog.Facet][]string {
	out := make(map[catalog.Facet][]string, len(in))
	for k, v := range in {
		out[k] = slices.Clone(v)
	}
	return out
}
