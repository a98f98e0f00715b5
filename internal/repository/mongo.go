package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"industrial-catalog/internal/models"
)

const (
	readTimeout  = 3 * time.Second
	writeTimeout = 5 * time.Second
	listTimeout  = 10 * time.Second

	createAttempts = 3
)

// Mongo guarda una entidad en una colección de MongoDB con _id entero
// y borrado lógico por is_deleted.
type Mongo[T Entity[T]] struct {
	entity     string
	collection *mongo.Collection
}

func NewMongo[T Entity[T]](entity string, collection *mongo.Collection) *Mongo[T] {
	return &Mongo[T]{
		entity:     entity,
		collection: collection,
	}
}

func notDeleted(extra bson.M) bson.M {
	filter := bson.M{"is_deleted": bson.M{"$ne": true}}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

// GetAll lista todos los registros activos ordenados por id
func (r *Mongo[T]) GetAll(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, notDeleted(nil), opts)
	if err != nil {
		return nil, &LoadError{Entity: r.entity, Err: err}
	}
	defer cursor.Close(ctx)

	records := make([]T, 0)
	if err = cursor.All(ctx, &records); err != nil {
		return nil, &LoadError{Entity: r.entity, Err: err}
	}

	// Validar en el borde de carga
	for _, rec := range records {
		if err := checkLoaded(rec); err != nil {
			return nil, &LoadError{Entity: r.entity, Err: err}
		}
	}
	return records, nil
}

// GetByID obtiene un registro por ID
func (r *Mongo[T]) GetByID(ctx context.Context, id int) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var record T
	err := r.collection.FindOne(ctx, notDeleted(bson.M{"_id": id})).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return record, &NotFoundError{Entity: r.entity, ID: id}
		}
		return record, &LoadError{Entity: r.entity, Err: err}
	}
	if err := checkLoaded(record); err != nil {
		return record, &LoadError{Entity: r.entity, Err: err}
	}
	return record, nil
}

// Create inserta un registro con id = max + 1, reintentando ante colisiones
func (r *Mongo[T]) Create(ctx context.Context, record T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var err error
	for attempt := 0; attempt < createAttempts; attempt++ {
		var id int
		id, err = r.nextID(ctx)
		if err != nil {
			return record, err
		}
		record = record.WithID(id)
		_, err = r.collection.InsertOne(ctx, record)
		if err == nil {
			return record, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return record, err
		}
	}
	return record, fmt.Errorf("could not allocate %s id: %w", r.entity, err)
}

// nextID incluye los borrados lógicos para no reutilizar ids
func (r *Mongo[T]) nextID(ctx context.Context) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetProjection(bson.M{"_id": 1})

	var last struct {
		ID int `bson:"_id"`
	}
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.ID + 1, nil
}

// Update reemplaza un registro activo
func (r *Mongo[T]) Update(ctx context.Context, id int, record T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	record = record.WithID(id)
	result, err := r.collection.ReplaceOne(ctx, notDeleted(bson.M{"_id": id}), record)
	if err != nil {
		return record, err
	}
	if result.MatchedCount == 0 {
		var zero T
		return zero, &NotFoundError{Entity: r.entity, ID: id}
	}
	return record, nil
}

// Delete marca un registro como eliminado
func (r *Mongo[T]) Delete(ctx context.Context, id int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"is_deleted": true,
			"deleted_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, notDeleted(bson.M{"_id": id}), update)
	if err != nil {
		return false, err
	}
	if result.MatchedCount == 0 {
		return false, &NotFoundError{Entity: r.entity, ID: id}
	}
	return true, nil
}

// Seed inserta o reemplaza los registros conservando sus ids
func (r *Mongo[T]) Seed(ctx context.Context, records []T) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(records))
	for _, rec := range records {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": rec.GetID()}).
			SetReplacement(rec).
			SetUpsert(true))
	}
	if len(writes) == 0 {
		return 0, nil
	}
	result, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}
	return int(result.UpsertedCount + result.ModifiedCount), nil
}

func checkLoaded[T Entity[T]](rec T) error {
	if rec.GetID() <= 0 {
		return fmt.Errorf("record without id")
	}
	return models.Validate(rec)
}
