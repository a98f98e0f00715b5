package models

import (
	"slices"
	"time"

	"industrial-catalog/internal/catalog"
)

// Capability es un servicio de fabricación de la página de capacidades
type Capability struct {
	ID          int      `json:"id" bson:"_id"`
	Title       string   `json:"title" bson:"title" binding:"required"`
	Description string   `json:"description" bson:"description"`
	Icon        string   `json:"icon,omitempty" bson:"icon,omitempty"`
	Equipment   []string `json:"equipment,omitempty" bson:"equipment,omitempty"`
	Capacity    string   `json:"capacity,omitempty" bson:"capacity,omitempty"`
}

func (c Capability) GetID() int { return c.ID }

func (c Capability) WithID(id int) Capability {
	c.ID = id
	return c
}

func (c Capability) Clone() Capability {
	c.Equipment = slices.Clone(c.Equipment)
	return c
}

func (c Capability) SearchText() []string {
	return []string{c.Title, c.Description}
}

func (c Capability) FacetValues(catalog.Facet) ([]string, bool) { return nil, false }

func (c Capability) SortTime() time.Time { return time.Time{} }
func (c Capability) SortTitle() string   { return c.Title }
