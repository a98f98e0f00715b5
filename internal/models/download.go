package models

import (
	"time"

	"github.com/dustin/go-humanize"

	"industrial-catalog/internal/catalog"
)

var DownloadVocabulary = catalog.Vocabulary{
	catalog.FacetCategories: ProductCategories,
}

// Download es un documento del centro de descargas
type Download struct {
	ID          int       `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title" binding:"required"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category" binding:"required"`
	Type        string    `json:"type" bson:"type"`
	FileSize    int64     `json:"file_size" bson:"file_size" binding:"gte=0"`
	URL         string    `json:"url" bson:"url" binding:"required,url"`
	LastUpdated time.Time `json:"last_updated" bson:"last_updated"`
}

func (d Download) GetID() int { return d.ID }

func (d Download) WithID(id int) Download {
	d.ID = id
	return d
}

func (d Download) Clone() Download { return d }

func (d Download) SearchText() []string {
	return []string{d.Title, d.Description, d.Category}
}

func (d Download) FacetValues(f catalog.Facet) ([]string, bool) {
	if f == catalog.FacetCategories {
		return []string{d.Category}, true
	}
	return nil, false
}

func (d Download) SortTime() time.Time { return d.LastUpdated }
func (d Download) SortTitle() string   { return d.Title }

// SizeLabel formatea FileSize para mostrar, p. ej. "2.4 MiB"
func (d Download) SizeLabel() string {
	if d.FileSize <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(d.FileSize))
}
