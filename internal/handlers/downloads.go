package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"industrial-catalog/internal/models"
	"industrial-catalog/internal/repository"
)

// CategoryCount es una pestaña del centro de descargas
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type DownloadCategoriesHandler struct {
	repo   repository.Repository[models.Download]
	logger *zap.Logger
}

func NewDownloadCategoriesHandler(repo repository.Repository[models.Download], logger *zap.Logger) *DownloadCategoriesHandler {
	return &DownloadCategoriesHandler{repo: repo, logger: logger}
}

// GET /v1/categories/downloads
func (h *DownloadCategoriesHandler) List(c *gin.Context) {
	downloads, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "downloads", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": CountByCategory(downloads, models.ProductCategories)})
}

// CountByCategory cuenta descargas por categoría, empezando por "all"
func CountByCategory(downloads []models.Download, categories []string) []CategoryCount {
	counts := make(map[string]int, len(categories))
	for _, d := range downloads {
		counts[d.Category]++
	}
	out := make([]CategoryCount, 0, len(categories)+1)
	out = append(out, CategoryCount{Category: "all", Count: len(downloads)})
	for _, cat := range categories {
		out = append(out, CategoryCount{Category: cat, Count: counts[cat]})
	}
	return out
}
