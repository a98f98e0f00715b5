package models

import (
	"time"

	"industrial-catalog/internal/catalog"
)

type Certification struct {
	ID         int       `json:"id" bson:"_id"`
	Name       string    `json:"name" bson:"name" binding:"required"`
	Issuer     string    `json:"issuer" bson:"issuer"`
	ValidUntil time.Time `json:"valid_until" bson:"valid_until" binding:"required"`
	Logo       string    `json:"logo,omitempty" bson:"logo,omitempty"`
}

// IsValid indica si la certificación sigue vigente en now
func (c Certification) IsValid(now time.Time) bool {
	return c.ValidUntil.After(now)
}

func (c Certification) GetID() int { return c.ID }

func (c Certification) WithID(id int) Certification {
	c.ID = id
	return c
}

func (c Certification) Clone() Certification { return c }

func (c Certification) SearchText() []string {
	return []string{c.Name, c.Issuer}
}

func (c Certification) FacetValues(catalog.Facet) ([]string, bool) { return nil, false }

func (c Certification) SortTime() time.Time { return c.ValidUntil }
func (c Certification) SortTitle() string   { return c.Name }
