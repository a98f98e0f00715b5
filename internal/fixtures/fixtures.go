// Package fixtures carga los datos de ejemplo del sitio embebidos en el binario.
package fixtures

import (
	"embed"
	"fmt"

	"github.com/bytedance/sonic"

	"industrial-catalog/internal/models"
)

//go:embed data/*.json
var files embed.FS

type identified interface {
	GetID() int
}

// Load decodifica data/<name>.json y valida cada registro
func Load[T identified](name string) ([]T, error) {
	raw, err := files.ReadFile("data/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", name, err)
	}

	var records []T
	if err := sonic.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", name, err)
	}

	seen := make(map[int]bool, len(records))
	for i, rec := range records {
		id := rec.GetID()
		if id <= 0 {
			return nil, fmt.Errorf("fixture %s: record %d has no id", name, i)
		}
		if seen[id] {
			return nil, fmt.Errorf("fixture %s: duplicate id %d", name, id)
		}
		seen[id] = true
		if err := models.Validate(rec); err != nil {
			return nil, fmt.Errorf("fixture %s: record %d: %w", name, id, err)
		}
	}
	return records, nil
}

// Set agrupa todas las colecciones de ejemplo
type Set struct {
	Products       []models.Product
	News           []models.NewsArticle
	Downloads      []models.Download
	Certifications []models.Certification
	Testimonials   []models.Testimonial
	Capabilities   []models.Capability
}

// LoadAll carga todas las colecciones
func LoadAll() (*Set, error) {
	var (
		s   Set
		err error
	)
	if s.Products, err = Load[models.Product]("products"); err != nil {
		return nil, err
	}
	if s.News, err = Load[models.NewsArticle]("news"); err != nil {
		return nil, err
	}
	if s.Downloads, err = Load[models.Download]("downloads"); err != nil {
		return nil, err
	}
	if s.Certifications, err = Load[models.Certification]("certifications"); err != nil {
		return nil, err
	}
	if s.Testimonials, err = Load[models.Testimonial]("testimonials"); err != nil {
		return nil, err
	}
	if s.Capabilities, err = Load[models.Capability]("capabilities"); err != nil {
		return nil, err
	}
	return &s, nil
}
