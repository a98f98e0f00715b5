package models

import (
	"slices"
	"time"

	"industrial-catalog/internal/catalog"
)

type Testimonial struct {
	ID          int    `json:"id" bson:"_id"`
	Company     string `json:"company" bson:"company" binding:"required"`
	Logo        string `json:"logo,omitempty" bson:"logo,omitempty"`
	Testimonial string `json:"testimonial" bson:"testimonial" binding:"required"`
	ClientName  string `json:"client_name" bson:"client_name"`
	ClientTitle string `json:"client_title" bson:"client_title"`
	Rating      int    `json:"rating" bson:"rating" binding:"min=0,max=5"`
	ProjectType string `json:"project_type" bson:"project_type"`
}

func (t Testimonial) GetID() int { return t.ID }

func (t Testimonial) WithID(id int) Testimonial {
	t.ID = id
	return t
}

func (t Testimonial) Clone() Testimonial { return t }

func (t Testimonial) SearchText() []string {
	return []string{t.Company, t.Testimonial, t.ClientName}
}

// FacetValues usa el tipo de proyecto como categoría
func (t Testimonial) FacetValues(f catalog.Facet) ([]string, bool) {
	if f == catalog.FacetCategories {
		return []string{t.ProjectType}, true
	}
	return nil, false
}

// Sin fecha propia: los órdenes por fecha quedan por id.
func (t Testimonial) SortTime() time.Time { return time.Time{} }
func (t Testimonial) SortTitle() string   { return t.Company }

// TestimonialVocabulary arma el vocabulario de categorías con los tipos
// de proyecto presentes en la colección.
func TestimonialVocabulary(items []Testimonial) catalog.Vocabulary {
	types := make([]string, 0, len(items))
	for _, t := range items {
		if t.ProjectType != "" && !slices.Contains(types, t.ProjectType) {
			types = append(types, t.ProjectType)
		}
	}
	return catalog.Vocabulary{catalog.FacetCategories: types}
}
