package repository

import (
	"context"
	"slices"
	"sync"
)

// Memory es un repositorio en memoria sembrado con fixtures.
// Cada instancia es dueña de sus registros. lastID nunca baja, así un id
// borrado no se vuelve a asignar.
type Memory[T Entity[T]] struct {
	mu      sync.RWMutex
	entity  string
	records []T
	lastID  int
}

// NewMemory crea un repositorio con una copia de seed
func NewMemory[T Entity[T]](entity string, seed []T) *Memory[T] {
	return &Memory[T]{
		entity:  entity,
		records: cloneAll(seed),
		lastID:  nextID(seed) - 1,
	}
}

// GetAll devuelve una copia de todos los registros en orden de inserción
func (m *Memory[T]) GetAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Entity: m.entity, Err: err}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneAll(m.records), nil
}

// GetByID busca un registro por ID
func (m *Memory[T]) GetByID(ctx context.Context, id int) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, &LoadError{Entity: m.entity, Err: err}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return zero, &NotFoundError{Entity: m.entity, ID: id}
	}
	return m.records[i].Clone(), nil
}

// Create agrega un registro con un id nuevo
func (m *Memory[T]) Create(ctx context.Context, record T) (T, error) {
	if err := ctx.Err(); err != nil {
		return record, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID = max(m.lastID, nextID(m.records)-1) + 1
	record = record.WithID(m.lastID)
	m.records = append(m.records, record.Clone())
	return record, nil
}

// Update reemplaza el registro conservando su id
func (m *Memory[T]) Update(ctx context.Context, id int, record T) (T, error) {
	if err := ctx.Err(); err != nil {
		return record, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		var zero T
		return zero, &NotFoundError{Entity: m.entity, ID: id}
	}
	record = record.WithID(id)
	m.records[i] = record.Clone()
	return record, nil
}

// Delete elimina un registro
func (m *Memory[T]) Delete(ctx context.Context, id int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false, &NotFoundError{Entity: m.entity, ID: id}
	}
	m.records = slices.Delete(m.records, i, i+1)
	return true, nil
}

func (m *Memory[T]) indexOf(id int) int {
	return slices.IndexFunc(m.records, func(r T) bool { return r.GetID() == id })
}

// cloneAll copia cada registro; los llamadores nunca ven la memoria interna
func cloneAll[T Entity[T]](records []T) []T {
	out := make([]T, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
