// Package store arma los repositorios de todas las entidades según la
// fuente de datos configurada.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"industrial-catalog/internal/config"
	"industrial-catalog/internal/database"
	"industrial-catalog/internal/fixtures"
	"industrial-catalog/internal/models"
	"industrial-catalog/internal/repository"
)

// Nombres de entidad, usados también como colecciones y prefijos de caché
const (
	Products       = "products"
	News           = "news"
	Downloads      = "downloads"
	Certifications = "certifications"
	Testimonials   = "testimonials"
	Capabilities   = "capabilities"
)

type Store struct {
	Products       repository.Repository[models.Product]
	News           repository.Repository[models.NewsArticle]
	Downloads      repository.Repository[models.Download]
	Certifications repository.Repository[models.Certification]
	Testimonials   repository.Repository[models.Testimonial]
	Capabilities   repository.Repository[models.Capability]

	client *mongo.Client
}

// Open elige entre fixtures en memoria y MongoDB
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.DataSource {
	case config.DataSourceMongo:
		client, err := database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		logger.Info("using mongo data source", zap.String("db", cfg.MongoDB))
		s := NewMongo(client.Database(cfg.MongoDB))
		s.client = client
		return s, nil
	case config.DataSourceFixture:
		set, err := fixtures.LoadAll()
		if err != nil {
			return nil, err
		}
		logger.Info("using fixture data source", zap.Int("products", len(set.Products)))
		return NewFixture(set), nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
}

// NewFixture crea repositorios en memoria sembrados con set
func NewFixture(set *fixtures.Set) *Store {
	return &Store{
		Products:       repository.NewMemory(Products, set.Products),
		News:           repository.NewMemory(News, set.News),
		Downloads:      repository.NewMemory(Downloads, set.Downloads),
		Certifications: repository.NewMemory(Certifications, set.Certifications),
		Testimonials:   repository.NewMemory(Testimonials, set.Testimonials),
		Capabilities:   repository.NewMemory(Capabilities, set.Capabilities),
	}
}

// NewMongo crea repositorios sobre las colecciones de db
func NewMongo(db *mongo.Database) *Store {
	return &Store{
		Products:       repository.NewMongo[models.Product](Products, db.Collection(Products)),
		News:           repository.NewMongo[models.NewsArticle](News, db.Collection(News)),
		Downloads:      repository.NewMongo[models.Download](Downloads, db.Collection(Downloads)),
		Certifications: repository.NewMongo[models.Certification](Certifications, db.Collection(Certifications)),
		Testimonials:   repository.NewMongo[models.Testimonial](Testimonials, db.Collection(Testimonials)),
		Capabilities:   repository.NewMongo[models.Capability](Capabilities, db.Collection(Capabilities)),
	}
}

// Close desconecta MongoDB si corresponde
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// SeedMongo copia los fixtures a db conservando los ids
func SeedMongo(ctx context.Context, db *mongo.Database, set *fixtures.Set) (map[string]int, error) {
	counts := make(map[string]int)
	var err error
	if counts[Products], err = seed(ctx, db, Products, set.Products); err != nil {
		return counts, err
	}
	if counts[News], err = seed(ctx, db, News, set.News); err != nil {
		return counts, err
	}
	if counts[Downloads], err = seed(ctx, db, Downloads, set.Downloads); err != nil {
		return counts, err
	}
	if counts[Certifications], err = seed(ctx, db, Certifications, set.Certifications); err != nil {
		return counts, err
	}
	if counts[Testimonials], err = seed(ctx, db, Testimonials, set.Testimonials); err != nil {
		return counts, err
	}
	if counts[Capabilities], err = seed(ctx, db, Capabilities, set.Capabilities); err != nil {
		return counts, err
	}
	return counts, nil
}

func seed[T repository.Entity[T]](ctx context.Context, db *mongo.Database, name string, records []T) (int, error) {
	n, err := repository.NewMongo[T](name, db.Collection(name)).Seed(ctx, records)
	if err != nil {
		return n, fmt.Errorf("seed %s: %w", name, err)
	}
	return n, nil
}
