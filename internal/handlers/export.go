package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"industrial-catalog/internal/catalog"
	"industrial-catalog/internal/export"
	"industrial-catalog/internal/models"
	"industrial-catalog/internal/repository"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	products repository.Repository[models.Product]
	logger   *zap.Logger
}

func NewExportHandler(products repository.Repository[models.Product], logger *zap.Logger) *ExportHandler {
	return &ExportHandler{products: products, logger: logger}
}

// GET /v1/exports/products.xlsx
// Acepta los mismos filtros y orden que el listado, sin paginar.
func (h *ExportHandler) Products(c *gin.Context) {
	query, err := parseListQuery(c.Request.URL.Query(), catalog.DefaultPageSize)
	if err == nil {
		err = query.Filter.Validate(models.ProductVocabulary)
	}
	if err != nil {
		respondError(c, h.logger, "products", err)
		return
	}

	products, err := h.products.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "products", err)
		return
	}
	products = catalog.Sort(catalog.Filter(products, query.Filter), query.Sort)

	var buf bytes.Buffer
	if err := export.WriteProducts(&buf, products); err != nil {
		respondError(c, h.logger, "products", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
