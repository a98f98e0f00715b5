package routes

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"industrial-catalog/internal/cache"
	"industrial-catalog/internal/fixtures"
	"industrial-catalog/internal/inquiry"
	"industrial-catalog/internal/models"
	"industrial-catalog/internal/repository"
	"industrial-catalog/internal/store"
)

var now = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu   sync.Mutex
	sent []models.Inquiry
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, inq models.Inquiry) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, inq)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// failingRepo simula un backend caído
type failingRepo[T repository.Entity[T]] struct{}

func (failingRepo[T]) GetAll(context.Context) ([]T, error) {
	return nil, &repository.LoadError{Entity: "products", Err: errors.New("connection refused")}
}

func (failingRepo[T]) GetByID(context.Context, int) (T, error) {
	var zero T
	return zero, &repository.LoadError{Entity: "products", Err: errors.New("connection refused")}
}

func (failingRepo[T]) Create(_ context.Context, r T) (T, error) { return r, errors.New("read only") }
func (failingRepo[T]) Update(_ context.Context, _ int, r T) (T, error) {
	return r, errors.New("read only")
}
func (failingRepo[T]) Delete(context.Context, int) (bool, error) {
	return false, errors.New("read only")
}

type testServer struct {
	router    *gin.Engine
	store     *store.Store
	publisher *recordingPublisher
}

func newTestServer(t *testing.T, setup ...func(*store.Store)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	set, err := fixtures.LoadAll()
	require.NoError(t, err)

	st := store.NewFixture(set)
	for _, fn := range setup {
		fn(st)
	}
	mem := cache.NewMemory(time.Minute, 0)
	t.Cleanup(func() { mem.Close() })

	pub := &recordingPublisher{}
	logger := zap.NewNop()

	router := NewRouter(Deps{
		Store:    st,
		Cache:    mem,
		Inquiry:  inquiry.NewService(pub, logger),
		Logger:   logger,
		PageSize: 9,
		CacheTTL: time.Minute,
		Now:      func() time.Time { return now },
	})
	return &testServer{router: router, store: st, publisher: pub}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type listBody struct {
	Data       []map[string]any `json:"data"`
	Total      int              `json:"total"`
	Available  int              `json:"available"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func listIDs(body listBody) []int {
	out := make([]int, 0, len(body.Data))
	for _, item := range body.Data {
		out = append(out, int(item["id"].(float64)))
	}
	return out
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)

	s.do(t, http.MethodGet, "/v1/products", "")
	w = s.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "catalog_list_requests_total")
}

func TestListProducts(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name      string
		path      string
		wantIDs   []int
		wantTotal int
		wantPage  int
		wantPages int
	}{
		{"default newest first", "/v1/products", []int{8, 7, 2, 6, 1, 5, 3, 4}, 8, 1, 1},
		{"category", "/v1/products?category=Tooling", []int{7, 4}, 2, 1, 1},
		{"all means no constraint", "/v1/products?category=All", nil, 8, 1, 1},
		{"and across facets", "/v1/products?category=Precision+Parts&material=Titanium&sort=oldest", []int{3, 8}, 2, 1, 1},
		{"or within a facet", "/v1/products?material=Brass&material=Plastics", []int{7, 5}, 2, 1, 1},
		{"comma separated values", "/v1/products?application=Aerospace,Medical&sort=title", []int{8, 7, 3}, 3, 1, 1},
		{"case insensitive search", "/v1/products?q=STEEL", []int{1}, 1, 1, 1},
		{"page clamps", "/v1/products?page_size=3&page=99", []int{3, 4}, 8, 3, 3},
		{"no matches", "/v1/products?q=unobtainium", []int{}, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			body := decode[listBody](t, w)
			assert.Equal(t, tt.wantTotal, body.Total)
			assert.Equal(t, 8, body.Available)
			assert.Equal(t, tt.wantPage, body.Page)
			assert.Equal(t, tt.wantPages, body.TotalPages)
			if tt.wantIDs != nil {
				assert.Equal(t, tt.wantIDs, listIDs(body))
			}
		})
	}
}

func TestListProducts_Invalid(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{
		"/v1/products?category=Widgets",
		"/v1/products?material=Wood",
		"/v1/products?sort=price",
		"/v1/products?page=abc",
		"/v1/certifications?category=ISO",
		"/v1/testimonials?category=Mining",
		"/v1/testimonials?material=Steel",
	} {
		w := s.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), `"error"`, path)
	}
}

func TestListTestimonials_ProjectTypeCategory(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/v1/testimonials?category=Assembly", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[listBody](t, w)
	assert.Equal(t, []int{3}, listIDs(body))
}

func TestListCertifications_Validity(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/v1/certifications?sort=title", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[listBody](t, w)
	require.Len(t, body.Data, 5)

	valid := map[string]bool{}
	for _, item := range body.Data {
		valid[item["name"].(string)] = item["is_valid"].(bool)
	}
	assert.False(t, valid["ISO 14001:2015"])
	assert.True(t, valid["ISO 9001:2015"])
	assert.Equal(t, "AS9100D", body.Data[0]["name"])
}

func TestListDownloads_SizeLabel(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/v1/downloads?category=Precision+Parts&sort=newest", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[listBody](t, w)
	assert.Equal(t, []int{1, 6}, listIDs(body))
	assert.Equal(t, "2.4 MiB", body.Data[0]["size_label"])
}

func TestGetProduct(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/v1/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	product := decode[models.Product](t, w)
	assert.Equal(t, "CNC Machined Steel Bracket", product.Name)

	// segunda lectura desde el caché
	w = s.do(t, http.MethodGet, "/v1/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CNC Machined Steel Bracket", decode[models.Product](t, w).Name)

	w = s.do(t, http.MethodGet, "/v1/products/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/v1/products/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductCRUD_InvalidatesCache(t *testing.T) {
	s := newTestServer(t)

	// calienta el caché del listado
	w := s.do(t, http.MethodGet, "/v1/products?category=Tooling", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 2, decode[listBody](t, w).Total)

	w = s.do(t, http.MethodPost, "/v1/products", `{"id":77,"name":"Trim Die","category":"Tooling","materials":["Steel"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Product](t, w)
	assert.Equal(t, 9, created.ID)

	w = s.do(t, http.MethodGet, "/v1/products?category=Tooling", "")
	assert.Equal(t, 3, decode[listBody](t, w).Total)

	w = s.do(t, http.MethodPatch, "/v1/products/9", `{"description":"Progressive trim die"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Product](t, w)
	assert.Equal(t, "Trim Die", updated.Name)
	assert.Equal(t, "Progressive trim die", updated.Description)
	assert.Equal(t, []string{"Steel"}, updated.Materials)

	w = s.do(t, http.MethodGet, "/v1/products?q=progressive+trim", "")
	assert.Equal(t, []int{9}, listIDs(decode[listBody](t, w)))

	w = s.do(t, http.MethodDelete, "/v1/products/9", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/v1/products/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(t, http.MethodGet, "/v1/products?category=Tooling", "")
	assert.Equal(t, 2, decode[listBody](t, w).Total)

	w = s.do(t, http.MethodDelete, "/v1/products/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductWrites_Invalid(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/v1/products", `{"category":"Tooling"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/v1/products", `{"name":"X","category":"Tooling","images":["not a url"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPatch, "/v1/products/1", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPatch, "/v1/products/9999", `{"name":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/v1/testimonials", `{"company":"Acme","testimonial":"Great","rating":9}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchRejectedLeavesRecordUntouched(t *testing.T) {
	s := newTestServer(t)
	before, err := s.store.Products.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotEmpty(t, before.Specifications)

	w := s.do(t, http.MethodPatch, "/v1/products/1",
		`{"materials":["Brass"],"specifications":{"Tolerance":"changed"},"images":["not a url"]}`)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	after, err := s.store.Products.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, []string{"Steel", "Stainless Steel"}, after.Materials)
}

func TestCanceledRequestIsNotALoadFailure(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, 499, w.Code)
}

func TestLoadFailureIsUnavailable(t *testing.T) {
	s := newTestServer(t, func(st *store.Store) {
		st.Products = failingRepo[models.Product]{}
	})

	w := s.do(t, http.MethodGet, "/v1/products", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "failed to load products")

	w = s.do(t, http.MethodGet, "/v1/home", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHome(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/v1/home", "")
	require.Equal(t, http.StatusOK, w.Code)

	var home struct {
		Products       []models.Product     `json:"products"`
		News           []models.NewsArticle `json:"news"`
		Testimonials   []models.Testimonial `json:"testimonials"`
		Certifications []struct {
			Name    string `json:"name"`
			IsValid bool   `json:"is_valid"`
		} `json:"certifications"`
		Capabilities []models.Capability `json:"capabilities"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &home))

	assert.Len(t, home.Products, 6)
	require.Len(t, home.News, 6)
	assert.Equal(t, 1, home.News[0].ID)
	assert.Len(t, home.Testimonials, 4)
	require.Len(t, home.Certifications, 4)
	assert.False(t, home.Certifications[3].IsValid)
	assert.Len(t, home.Capabilities, 5)
}

func TestDownloadCategories(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/v1/categories/downloads", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []struct {
			Category string `json:"category"`
			Count    int    `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 6)
	assert.Equal(t, "all", body.Data[0].Category)
	assert.Equal(t, 6, body.Data[0].Count)
	assert.Equal(t, "Precision Parts", body.Data[1].Category)
	assert.Equal(t, 2, body.Data[1].Count)
}

func TestExportProducts(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/v1/exports/products.xlsx?category=Tooling&sort=title", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "products.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Products")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Injection Mold Insert", rows[1][1])
	assert.Equal(t, "Progressive Stamping Die", rows[2][1])

	w = s.do(t, http.MethodGet, "/v1/exports/products.xlsx?material=Wood", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInquiries(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/v1/inquiries", `{
		"kind": "contact",
		"name": "Ana Ruiz",
		"email": "ana@example.com",
		"company": "Ruiz Metals",
		"topic": "product",
		"message": "Do you stock 316 stainless brackets?"
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[map[string]string](t, w)
	assert.Equal(t, "Thank you for your inquiry! We will get back to you soon.", resp["message"])
	assert.NotEmpty(t, resp["id"])

	w = s.do(t, http.MethodPost, "/v1/inquiries", `{
		"kind": "quote",
		"name": "Jordan Lee",
		"email": "jordan@example.com",
		"company": "Lee Robotics",
		"phone": "+1 555 010 3000",
		"topic": "prototyping",
		"message": "Ten prototype housings"
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Quote request submitted successfully! We'll contact you within 24 hours.", decode[map[string]string](t, w)["message"])

	require.Len(t, s.publisher.sent, 2)
	assert.Equal(t, resp["id"], s.publisher.sent[0].ID)
}

func TestInquiries_Rejected(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{
		`{"kind":"quote","name":"J","email":"j@example.com","company":"C","topic":"prototyping","message":"m"}`,
		`{"kind":"contact","name":"J","email":"not-an-email","company":"C","topic":"product","message":"m"}`,
		`{"kind":"contact","name":"J","email":"j@example.com","company":"C","topic":"prototyping","message":"m"}`,
		`{"kind":"contact","name":"J","email":"j@example.com","company":"C","phone":"call me","topic":"other","message":"m"}`,
		`not json`,
	} {
		w := s.do(t, http.MethodPost, "/v1/inquiries", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, s.publisher.sent)

	s.publisher.err = errors.New("broker down")
	w := s.do(t, http.MethodPost, "/v1/inquiries", `{"kind":"contact","name":"J","email":"j@example.com","company":"C","topic":"other","message":"m"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
