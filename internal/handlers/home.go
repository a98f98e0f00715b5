package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"industrial-catalog/internal/catalog"
	"industrial-catalog/internal/models"
	"industrial-catalog/internal/store"
)

const (
	homeProducts       = 6
	homeNews           = 6
	homeCertifications = 4
)

// HomeResponse reúne las secciones de la página de inicio
type HomeResponse struct {
	Products       []models.Product     `json:"products"`
	News           []models.NewsArticle `json:"news"`
	Testimonials   []models.Testimonial `json:"testimonials"`
	Certifications []CertificationView  `json:"certifications"`
	Capabilities   []models.Capability  `json:"capabilities"`
}

type HomeHandler struct {
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewHomeHandler(s *store.Store, logger *zap.Logger, now func() time.Time) *HomeHandler {
	return &HomeHandler{store: s, logger: logger, now: now}
}

// GET /v1/home
// Carga las colecciones en paralelo; el primer error cancela el resto.
func (h *HomeHandler) Get(c *gin.Context) {
	g, ctx := errgroup.WithContext(c.Request.Context())
	var resp HomeResponse

	g.Go(func() error {
		products, err := h.store.Products.GetAll(ctx)
		if err != nil {
			return err
		}
		resp.Products = firstN(products, homeProducts)
		return nil
	})
	g.Go(func() error {
		news, err := h.store.News.GetAll(ctx)
		if err != nil {
			return err
		}
		resp.News = firstN(catalog.Sort(news, catalog.SortNewest), homeNews)
		return nil
	})
	g.Go(func() error {
		testimonials, err := h.store.Testimonials.GetAll(ctx)
		resp.Testimonials = testimonials
		return err
	})
	g.Go(func() error {
		certs, err := h.store.Certifications.GetAll(ctx)
		if err != nil {
			return err
		}
		now := h.now()
		for _, cert := range firstN(certs, homeCertifications) {
			resp.Certifications = append(resp.Certifications, CertificationView{
				Certification: cert,
				IsValid:       cert.IsValid(now),
			})
		}
		return nil
	})
	g.Go(func() error {
		capabilities, err := h.store.Capabilities.GetAll(ctx)
		resp.Capabilities = capabilities
		return err
	})

	if err := g.Wait(); err != nil {
		respondError(c, h.logger, "home", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
