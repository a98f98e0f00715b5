package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"industrial-catalog/internal/catalog"
	"industrial-catalog/internal/models"
)

func TestLoadAll(t *testing.T) {
	set, err := LoadAll()
	require.NoError(t, err)

	assert.Len(t, set.Products, 8)
	assert.Len(t, set.News, 10)
	assert.Len(t, set.Downloads, 6)
	assert.Len(t, set.Certifications, 5)
	assert.Len(t, set.Testimonials, 4)
	assert.Len(t, set.Capabilities, 5)

	assert.Equal(t, "CNC Machined Steel Bracket", set.Products[0].Name)
	assert.Equal(t, int64(2516582), set.Downloads[0].FileSize)
}

func TestFixturesUseControlledVocabulary(t *testing.T) {
	set, err := LoadAll()
	require.NoError(t, err)

	for _, p := range set.Products {
		fs := catalog.FilterState{Facets: map[catalog.Facet][]string{
			catalog.FacetCategories:   {p.Category},
			catalog.FacetMaterials:    p.Materials,
			catalog.FacetApplications: p.Applications,
		}}
		assert.NoError(t, fs.Validate(models.ProductVocabulary), "product %d", p.ID)
	}
	for _, n := range set.News {
		assert.Contains(t, models.NewsCategories, n.Category, "news %d", n.ID)
	}
	for _, d := range set.Downloads {
		assert.Contains(t, models.ProductCategories, d.Category, "download %d", d.ID)
	}
}

func TestLoad_MissingFixture(t *testing.T) {
	_, err := Load[models.Product]("nope")
	assert.Error(t, err)
}
