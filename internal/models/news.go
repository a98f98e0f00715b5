package models

import (
	"time"

	"industrial-catalog/internal/catalog"
)

var (
	NewsCategories = []string{
		"Company News",
		"Industry Updates",
		"Product Announcements",
		"Press Releases",
	}

	NewsVocabulary = catalog.Vocabulary{
		catalog.FacetCategories: NewsCategories,
	}
)

type NewsArticle struct {
	ID            int       `json:"id" bson:"_id"`
	Title         string    `json:"title" bson:"title" binding:"required"`
	Excerpt       string    `json:"excerpt" bson:"excerpt"`
	Category      string    `json:"category" bson:"category" binding:"required"`
	Author        string    `json:"author" bson:"author"`
	PublishedAt   time.Time `json:"published_at" bson:"published_at" binding:"required"`
	FeaturedImage string    `json:"featured_image,omitempty" bson:"featured_image,omitempty" binding:"omitempty,url"`
	Content       string    `json:"content,omitempty" bson:"content,omitempty"`
}

func (n NewsArticle) GetID() int { return n.ID }

func (n NewsArticle) WithID(id int) NewsArticle {
	n.ID = id
	return n
}

func (n NewsArticle) Clone() NewsArticle { return n }

func (n NewsArticle) SearchText() []string {
	return []string{n.Title, n.Excerpt, n.Category}
}

func (n NewsArticle) FacetValues(f catalog.Facet) ([]string, bool) {
	if f == catalog.FacetCategories {
		return []string{n.Category}, true
	}
	return nil, false
}

func (n NewsArticle) SortTime() time.Time { return n.PublishedAt }
func (n NewsArticle) SortTitle() string   { return n.Title }
