package models

import (
	"maps"
	"slices"
	"time"

	"industrial-catalog/internal/catalog"
)

var (
	ProductCategories = []string{
		"Precision Parts",
		"Industrial Components",
		"Custom Fabrication",
		"Assemblies",
		"Tooling",
	}
	Materials = []string{
		"Steel",
		"Aluminum",
		"Stainless Steel",
		"Brass",
		"Copper",
		"Titanium",
		"Plastics",
	}
	Applications = []string{
		"Automotive",
		"Aerospace",
		"Medical",
		"Industrial",
		"Electronics",
		"Construction",
	}

	ProductVocabulary = catalog.Vocabulary{
		catalog.FacetCategories:   ProductCategories,
		catalog.FacetMaterials:    Materials,
		catalog.FacetApplications: Applications,
	}
)

// Product representa un componente del catálogo
type Product struct {
	ID             int               `json:"id" bson:"_id"`
	Name           string            `json:"name" bson:"name" binding:"required"`
	Category       string            `json:"category" bson:"category" binding:"required"`
	Description    string            `json:"description" bson:"description"`
	Materials      []string          `json:"materials" bson:"materials"`
	Applications   []string          `json:"applications" bson:"applications"`
	Images         []string          `json:"images,omitempty" bson:"images,omitempty" binding:"omitempty,dive,url"`
	Specifications map[string]string `json:"specifications,omitempty" bson:"specifications,omitempty"`
	UpdatedAt      time.Time         `json:"updated_at" bson:"updated_at"`
}

func (p Product) GetID() int { return p.ID }

func (p Product) WithID(id int) Product {
	p.ID = id
	return p
}

// Clone copia también slices y mapa para no compartir memoria con el original
func (p Product) Clone() Product {
	p.Materials = slices.Clone(p.Materials)
	p.Applications = slices.Clone(p.Applications)
	p.Images = slices.Clone(p.Images)
	p.Specifications = maps.Clone(p.Specifications)
	return p
}

func (p Product) SearchText() []string {
	return []string{p.Name, p.Description, p.Category}
}

func (p Product) FacetValues(f catalog.Facet) ([]string, bool) {
	switch f {
	case catalog.FacetCategories:
		return []string{p.Category}, true
	case catalog.FacetMaterials:
		return p.Materials, true
	case catalog.FacetApplications:
		return p.Applications, true
	}
	return nil, false
}

func (p Product) SortTime() time.Time { return p.UpdatedAt }
func (p Product) SortTitle() string   { return p.Name }
