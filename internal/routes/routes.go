package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"industrial-catalog/internal/cache"
	"industrial-catalog/internal/catalog"
	"industrial-catalog/internal/handlers"
	"industrial-catalog/internal/inquiry"
	"industrial-catalog/internal/models"
	"industrial-catalog/internal/store"
)

// Deps agrupa lo que necesitan los handlers
type Deps struct {
	Store    *store.Store
	Cache    cache.Store
	Inquiry  *inquiry.Service
	Logger   *zap.Logger
	PageSize int
	CacheTTL time.Duration
	Now      func() time.Time
}

func RegisterRoutes(router *gin.Engine, deps Deps) {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")

	registerCollection(v1, handlers.NewCollectionHandler(store.Products, deps.Store.Products, deps.Cache, deps.Logger,
		handlers.Options[models.Product]{
			Vocabulary: models.ProductVocabulary,
			PageSize:   deps.PageSize,
			CacheTTL:   deps.CacheTTL,
		}))
	registerCollection(v1, handlers.NewCollectionHandler(store.News, deps.Store.News, deps.Cache, deps.Logger,
		handlers.Options[models.NewsArticle]{
			Vocabulary: models.NewsVocabulary,
			PageSize:   deps.PageSize,
			CacheTTL:   deps.CacheTTL,
		}))
	registerCollection(v1, handlers.NewCollectionHandler(store.Downloads, deps.Store.Downloads, deps.Cache, deps.Logger,
		handlers.Options[models.Download]{
			Vocabulary: models.DownloadVocabulary,
			Present:    handlers.PresentDownload,
			PageSize:   deps.PageSize,
			CacheTTL:   deps.CacheTTL,
		}))
	registerCollection(v1, handlers.NewCollectionHandler(store.Certifications, deps.Store.Certifications, deps.Cache, deps.Logger,
		handlers.Options[models.Certification]{
			Vocabulary: noFacets,
			Present:    handlers.PresentCertification(deps.Now),
			PageSize:   deps.PageSize,
			// la vigencia depende del reloj
			CacheTTL: min(deps.CacheTTL, time.Minute),
		}))
	registerCollection(v1, handlers.NewCollectionHandler(store.Testimonials, deps.Store.Testimonials, deps.Cache, deps.Logger,
		handlers.Options[models.Testimonial]{
			VocabularyFrom: models.TestimonialVocabulary,
			PageSize:       deps.PageSize,
			CacheTTL:       deps.CacheTTL,
		}))
	registerCollection(v1, handlers.NewCollectionHandler(store.Capabilities, deps.Store.Capabilities, deps.Cache, deps.Logger,
		handlers.Options[models.Capability]{
			Vocabulary: noFacets,
			PageSize:   deps.PageSize,
			CacheTTL:   deps.CacheTTL,
		}))

	home := handlers.NewHomeHandler(deps.Store, deps.Logger, deps.Now)
	v1.GET("/home", home.Get)

	categories := handlers.NewDownloadCategoriesHandler(deps.Store.Downloads, deps.Logger)
	v1.GET("/categories/downloads", categories.List)

	exports := handlers.NewExportHandler(deps.Store.Products, deps.Logger)
	v1.GET("/exports/products.xlsx", exports.Products)

	inquiries := handlers.NewInquiryHandler(deps.Inquiry, deps.Logger)
	v1.POST("/inquiries", inquiries.Create)
}

// noFacets rechaza cualquier faceta en entidades que no las tienen
var noFacets = catalog.Vocabulary{}

func registerCollection[T handlers.Record[T]](v1 *gin.RouterGroup, h *handlers.CollectionHandler[T]) {
	group := v1.Group("/" + h.Entity())
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

// NewRouter crea el engine de gin con middlewares y rutas
func NewRouter(deps Deps) *gin.Engine {
	binding.Validator = handlers.NewValidator()

	router := gin.New()
	router.Use(handlers.RequestLogger(deps.Logger), gin.Recovery())
	RegisterRoutes(router, deps)
	return router
}
