package repository

import (
	"context"
	"errors"
	"fmt"
)

// Entity es un registro tipado con id entero asignado externamente
type Entity[T any] interface {
	GetID() int
	WithID(id int) T
	// Clone devuelve una copia que no comparte slices ni mapas
	Clone() T
}

// Repository es el cargador de colecciones que usan todas las vistas.
// Lo implementan tanto los fixtures en memoria como MongoDB.
type Repository[T Entity[T]] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, id int, record T) (T, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// ErrNotFound coincide con cualquier NotFoundError vía errors.Is
var ErrNotFound = errors.New("record not found")

// NotFoundError indica un id inexistente
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// LoadError envuelve fallos de transporte, decodificación o validación al cargar
type LoadError struct {
	Entity string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load %s: %v", e.Entity, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsNotFound indica si err es un NotFoundError
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsLoadError indica si err es un LoadError
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// nextID asigna max(existente) + 1, empezando en 1
func nextID[T Entity[T]](records []T) int {
	maxID := 0
	for _, r := range records {
		maxID = max(maxID, r.GetID())
	}
	return maxID + 1
}
