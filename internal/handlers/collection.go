package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"industrial-catalog/internal/cache"
	"industrial-catalog/internal/catalog"
	"industrial-catalog/internal/controller"
	"industrial-catalog/internal/metrics"
	"industrial-catalog/internal/models"
	"industrial-catalog/internal/repository"
)

// Record es lo que necesita un handler de colección: filtrable, ordenable
// y persistible.
type Record[T any] interface {
	catalog.Sortable
	WithID(id int) T
	Clone() T
}

// ListResponse es la respuesta paginada de un listado
type ListResponse struct {
	Data       any `json:"data"`
	Total      int `json:"total"`
	Available  int `json:"available"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// SuccessResponse acompaña operaciones sin cuerpo propio
type SuccessResponse struct {
	Message string `json:"message"`
}

// Options ajusta el comportamiento de un CollectionHandler
type Options[T any] struct {
	// Vocabulary fija los valores de faceta aceptados
	Vocabulary catalog.Vocabulary
	// VocabularyFrom lo calcula a partir de la colección cargada
	VocabularyFrom func(records []T) catalog.Vocabulary
	// Present transforma cada registro antes de responder
	Present func(record T) any
	// PageSize por defecto cuando la consulta no lo indica
	PageSize int
	// CacheTTL de listados y detalle
	CacheTTL time.Duration
}

// CollectionHandler expone el CRUD y el listado filtrado de una entidad
type CollectionHandler[T Record[T]] struct {
	entity string
	repo   repository.Repository[T]
	cache  cache.Store
	logger *zap.Logger
	opts   Options[T]
}

func NewCollectionHandler[T Record[T]](entity string, repo repository.Repository[T], store cache.Store, logger *zap.Logger, opts Options[T]) *CollectionHandler[T] {
	if opts.PageSize < 1 {
		opts.PageSize = catalog.DefaultPageSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 2 * time.Minute
	}
	return &CollectionHandler[T]{
		entity: entity,
		repo:   repo,
		cache:  store,
		logger: logger.With(zap.String("entity", entity)),
		opts:   opts,
	}
}

// Entity es el nombre de la colección, usado en rutas y claves de caché
func (h *CollectionHandler[T]) Entity() string {
	return h.entity
}

// GET /v1/<entity>
func (h *CollectionHandler[T]) List(c *gin.Context) {
	ctx := c.Request.Context()
	metrics.ListRequests.WithLabelValues(h.entity).Inc()

	query, err := parseListQuery(c.Request.URL.Query(), h.opts.PageSize)
	if err != nil {
		respondError(c, h.logger, h.entity, err)
		return
	}
	if h.opts.Vocabulary != nil {
		if err := query.Filter.Validate(h.opts.Vocabulary); err != nil {
			respondError(c, h.logger, h.entity, err)
			return
		}
	}

	cacheKey := h.listKey(query)
	var cached ListResponse
	if found, err := h.cache.Get(ctx, cacheKey, &cached); err != nil {
		h.logger.Warn("cache read failed", zap.String("key", cacheKey), zap.Error(err))
	} else if found {
		metrics.CacheHits.WithLabelValues(h.entity).Inc()
		c.JSON(http.StatusOK, cached)
		return
	}
	metrics.CacheMisses.WithLabelValues(h.entity).Inc()

	vc := controller.New[T](h.repo, query.PageSize, h.logger)
	defer vc.Close()
	if err := vc.Load(ctx); err != nil {
		respondError(c, h.logger, h.entity, err)
		return
	}

	if h.opts.VocabularyFrom != nil {
		if err := query.Filter.Validate(h.opts.VocabularyFrom(vc.Collection())); err != nil {
			respondError(c, h.logger, h.entity, err)
			return
		}
	}

	vc.Restore(query)
	view := vc.View()
	metrics.CollectionSize.WithLabelValues(h.entity).Set(float64(view.Available))

	response := ListResponse{
		Data:       h.presentAll(view.Page.Items),
		Total:      view.Page.TotalCount,
		Available:  view.Available,
		Page:       view.Page.Page,
		PageSize:   view.Page.PageSize,
		TotalPages: view.Page.TotalPages,
	}

	if err := h.cache.Set(ctx, cacheKey, response, h.opts.CacheTTL); err != nil {
		h.logger.Warn("cache write failed", zap.String("key", cacheKey), zap.Error(err))
	}
	c.JSON(http.StatusOK, response)
}

// GET /v1/<entity>/:id
func (h *CollectionHandler[T]) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	cacheKey := h.itemKey(id)
	var cached any
	if found, err := h.cache.Get(ctx, cacheKey, &cached); err != nil {
		h.logger.Warn("cache read failed", zap.String("key", cacheKey), zap.Error(err))
	} else if found {
		c.JSON(http.StatusOK, cached)
		return
	}

	record, err := h.repo.GetByID(ctx, id)
	if err != nil {
		respondError(c, h.logger, h.entity, err)
		return
	}

	body := h.present(record)
	if err := h.cache.Set(ctx, cacheKey, body, h.opts.CacheTTL); err != nil {
		h.logger.Warn("cache write failed", zap.String("key", cacheKey), zap.Error(err))
	}
	c.JSON(http.StatusOK, body)
}

// POST /v1/<entity>
func (h *CollectionHandler[T]) Create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.repo.Create(c.Request.Context(), record.WithID(0))
	if err != nil {
		respondError(c, h.logger, h.entity, err)
		return
	}
	metrics.Writes.WithLabelValues(h.entity, "create").Inc()
	h.invalidate(c.Request.Context(), created.GetID())

	c.JSON(http.StatusCreated, h.present(created))
}

// PATCH /v1/<entity>/:id
// El cuerpo se aplica sobre el registro guardado: los campos ausentes se conservan.
func (h *CollectionHandler[T]) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	stored, err := h.repo.GetByID(ctx, id)
	if err != nil {
		respondError(c, h.logger, h.entity, err)
		return
	}
	// el cuerpo se decodifica sobre una copia: si la validación falla,
	// el registro guardado queda intacto
	record := stored.Clone()
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.repo.Update(ctx, id, record)
	if err != nil {
		respondError(c, h.logger, h.entity, err)
		return
	}
	metrics.Writes.WithLabelValues(h.entity, "update").Inc()
	h.invalidate(ctx, id)

	c.JSON(http.StatusOK, h.present(updated))
}

// DELETE /v1/<entity>/:id
func (h *CollectionHandler[T]) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if _, err := h.repo.Delete(ctx, id); err != nil {
		respondError(c, h.logger, h.entity, err)
		return
	}
	metrics.Writes.WithLabelValues(h.entity, "delete").Inc()
	h.invalidate(ctx, id)

	c.JSON(http.StatusOK, SuccessResponse{Message: fmt.Sprintf("%s %d deleted", h.entity, id)})
}

// --- Métodos auxiliares ---

func (h *CollectionHandler[T]) parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + h.entity + " ID"})
		return 0, false
	}
	return id, true
}

func (h *CollectionHandler[T]) listKey(q catalog.Query) string {
	return fmt.Sprintf("%s:list:%s", h.entity, q.Key())
}

func (h *CollectionHandler[T]) itemKey(id int) string {
	return fmt.Sprintf("%s:item:%d", h.entity, id)
}

// invalidate borra el detalle y todos los listados de la entidad
func (h *CollectionHandler[T]) invalidate(ctx context.Context, id int) {
	if err := h.cache.Delete(ctx, h.itemKey(id)); err != nil {
		h.logger.Warn("cache invalidation failed", zap.Error(err))
	}
	if err := h.cache.DeleteByPrefix(ctx, h.entity+":list:"); err != nil {
		h.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}

func (h *CollectionHandler[T]) present(record T) any {
	if h.opts.Present == nil {
		return record
	}
	return h.opts.Present(record)
}

func (h *CollectionHandler[T]) presentAll(records []T) []any {
	out := make([]any, 0, len(records))
	for _, r := range records {
		out = append(out, h.present(r))
	}
	return out
}

// CertificationView agrega la vigencia calculada
type CertificationView struct {
	models.Certification
	IsValid bool `json:"is_valid"`
}

// PresentCertification calcula is_valid con el reloj dado
func PresentCertification(now func() time.Time) func(models.Certification) any {
	return func(cert models.Certification) any {
		return CertificationView{Certification: cert, IsValid: cert.IsValid(now())}
	}
}

// DownloadView agrega el tamaño legible
type DownloadView struct {
	models.Download
	SizeLabel string `json:"size_label"`
}

func PresentDownload(d models.Download) any {
	return DownloadView{Download: d, SizeLabel: d.SizeLabel()}
}
