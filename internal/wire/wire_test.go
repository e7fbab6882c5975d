package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"travel-agency/internal/booking"
	"travel-agency/internal/catalog"
	"travel-agency/internal/data/entity"
	"travel-agency/internal/remote"
	"travel-agency/internal/usecase"
	"travel-agency/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// contentBackend is a minimal in-memory stand-in for the REST backend.
type contentBackend struct {
	mu          sync.Mutex
	collections map[string][]map[string]any
	homepage    json.RawMessage
	nextID      int
	calls       atomic.Int32
	fail        atomic.Bool
}

func newContentBackend() *contentBackend {
	return &contentBackend{
		collections: map[string][]map[string]any{
			"destinations": {
				{"id": "d1", "name": "Goa", "country": "India"},
				{"id": "d2", "name": "Lisbon", "country": "Portugal"},
			},
			"categories": {
				{"id": "c1", "name": "Beach", "description": "", "color": "blue", "icon": "Sun"},
			},
		},
	}
}

func (b *contentBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.calls.Add(1)
	if b.fail.Load() {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if strings.HasSuffix(r.URL.Path, "/homepage") {
		if r.Method == http.MethodPut {
			var raw json.RawMessage
			_ = json.NewDecoder(r.Body).Decode(&raw)
			b.homepage = raw
		}
		if b.homepage == nil {
			http.NotFound(w, r)
			return
		}
		w.Write(b.homepage)
		return
	}

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/"), "/")
	name := parts[0]
	items := b.collections[name]

	switch {
	case r.Method == http.MethodGet && len(parts) == 1:
		if items == nil {
			items = []map[string]any{}
		}
		json.NewEncoder(w).Encode(items)
	case r.Method == http.MethodPost && len(parts) == 1:
		var item map[string]any
		_ = json.NewDecoder(r.Body).Decode(&item)
		b.nextID++
		item["id"] = "n" + strconv.Itoa(b.nextID)
		b.collections[name] = append(items, item)
		json.NewEncoder(w).Encode(item)
	case r.Method == http.MethodDelete && len(parts) == 2:
		for i, item := range items {
			if item["id"] == parts[1] {
				b.collections[name] = append(items[:i], items[i+1:]...)
				break
			}
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "unsupported", http.StatusMethodNotAllowed)
	}
}

type testApp struct {
	router  http.Handler
	backend *contentBackend
}

func newTestApp(t *testing.T, burst int, opts ...func(*utils.Config)) *testApp {
	t.Helper()
	log := zap.NewNop()

	backend := newContentBackend()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	seed, err := catalog.NewSeedSource()
	require.NoError(t, err)
	store := catalog.NewStore(nil, nil)
	require.NoError(t, catalog.Load(context.Background(), store, seed, log))

	client := remote.NewClient(srv.URL, 2*time.Second, log)
	config := &utils.Config{
		App:     utils.AppConfig{HomeCountry: "India"},
		Booking: utils.BookingConfig{SessionTTL: time.Minute},
		HTTP: utils.HTTPConfig{
			AllowedOrigins: []string{"*"},
			RateLimitRPS:   0.001,
			RateLimitBurst: burst,
		},
	}
	for _, opt := range opts {
		opt(config)
	}

	app := Wiring(usecase.Deps{
		Store:        store,
		Source:       seed,
		Packages:     remote.NewResource[entity.Package](client, "/api/packages", log),
		Destinations: remote.NewResource[entity.Destination](client, "/api/destinations", log),
		Categories:   remote.NewResource[entity.Category](client, "/api/categories", log),
		Homepage:     remote.NewHomepageClient(client),
		Submitter:    booking.LocalSubmitter{},
	}, config, log)
	app.Service.Init(context.Background(), log)

	return &testApp{router: app.Router, backend: backend}
}

func (a *testApp) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var res utils.Response
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	}
	return rec, res
}

func dataMap(t *testing.T, res utils.Response) map[string]any {
	t.Helper()
	m, ok := res.Data.(map[string]any)
	require.True(t, ok, "data is %T", res.Data)
	return m
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t, 5)
	rec, res := app.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, res.Status)
}

func TestRouter_PackageListing(t *testing.T) {
	app := newTestApp(t, 5)

	rec, res := app.do(t, http.MethodGet, "/api/packages?category=Beach&sort=price-low", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	items := dataMap(t, res)["data"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, 6.0, items[0].(map[string]any)["id"])
	assert.Equal(t, 1.0, items[1].(map[string]any)["id"])
}

func TestRouter_UnknownPackageLinksBack(t *testing.T) {
	app := newTestApp(t, 5)

	rec, res := app.do(t, http.MethodGet, "/api/packages/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, res.Status)
	assert.Equal(t, "/packages", dataMap(t, res)["back"])

	rec, res = app.do(t, http.MethodGet, "/api/blog/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "/blog", dataMap(t, res)["back"])
}

func TestRouter_DuplicateDestinationNeverReachesBackend(t *testing.T) {
	app := newTestApp(t, 5)
	before := app.backend.calls.Load()

	rec, _ := app.do(t, http.MethodPost, "/api/admin/destinations", map[string]string{
		"name": " goa ", "country": "INDIA",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, before, app.backend.calls.Load())

	rec, res := app.do(t, http.MethodPost, "/api/admin/destinations", map[string]string{
		"name": "Kerala", "country": "India",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "national", dataMap(t, res)["scope"])
	assert.Equal(t, 1.0, dataMap(t, res)["packagesCount"])
}

func TestRouter_DeleteGuards(t *testing.T) {
	app := newTestApp(t, 5)

	rec, _ := app.do(t, http.MethodDelete, "/api/admin/destinations/d1", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = app.do(t, http.MethodDelete, "/api/admin/destinations/d2", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = app.do(t, http.MethodDelete, "/api/admin/categories/c1", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = app.do(t, http.MethodDelete, "/api/admin/categories/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_CategoryValidation(t *testing.T) {
	app := newTestApp(t, 5)

	rec, res := app.do(t, http.MethodPost, "/api/admin/categories", map[string]string{
		"name": "Cruise", "color": "magenta", "icon": "Rocket",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	raw, err := json.Marshal(res.Errors)
	require.NoError(t, err)
	var fields []utils.FieldError
	require.NoError(t, json.Unmarshal(raw, &fields))
	require.Len(t, fields, 2)
	assert.Equal(t, "color", fields[0].Field)
	assert.Equal(t, "icon", fields[1].Field)
}

func TestRouter_BackendFailureIsRetryable(t *testing.T) {
	app := newTestApp(t, 5)
	app.backend.fail.Store(true)

	rec, res := app.do(t, http.MethodGet, "/api/admin/destinations", nil)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, true, dataMap(t, res)["retryable"])

	app.backend.fail.Store(false)
	rec, res = app.do(t, http.MethodGet, "/api/admin/destinations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, res.Data, 2)
}

func TestRouter_HomepageRollback(t *testing.T) {
	app := newTestApp(t, 5)

	doc := usecase.DefaultHomepage()
	doc.Hero.Title = "Monsoon Offers"
	rec, _ := app.do(t, http.MethodPut, "/api/admin/homepage", doc)
	require.Equal(t, http.StatusOK, rec.Code)

	app.backend.fail.Store(true)
	doc.Hero.Title = "Never Saved"
	rec, _ = app.do(t, http.MethodPut, "/api/admin/homepage", doc)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	rec, res := app.do(t, http.MethodGet, "/api/homepage", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	content := dataMap(t, res)["content"].(map[string]any)
	assert.Equal(t, "Monsoon Offers", content["hero"].(map[string]any)["title"])
}

func TestRouter_BookingFlow(t *testing.T) {
	app := newTestApp(t, 5)

	rec, res := app.do(t, http.MethodPost, "/api/bookings", map[string]int{"packageId": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := dataMap(t, res)["id"].(string)
	base := "/api/bookings/" + id

	rec, res = app.do(t, http.MethodPatch, base, map[string]any{
		"firstName": "Asha", "lastName": "Rao", "email": "asha@example.com",
		"phone": "9876543210", "travelers": 2, "departureDate": "2025-03-01",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	price := dataMap(t, res)["price"].(map[string]any)
	assert.Equal(t, 2858.0, price["total"])

	app.do(t, http.MethodPost, base+"/next", nil)
	rec, _ = app.do(t, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = app.do(t, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	app.do(t, http.MethodPatch, base, map[string]any{"agreeToTerms": true})
	rec, res = app.do(t, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "submitted", dataMap(t, res)["step"])

	rec, _ = app.do(t, http.MethodGet, base+"/confirmation.pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	rec, _ = app.do(t, http.MethodGet, "/api/bookings/"+utils.GenerateUUID().String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_BookingStartIsRateLimited(t *testing.T) {
	app := newTestApp(t, 1)

	rec, _ := app.do(t, http.MethodPost, "/api/bookings", map[string]int{"packageId": 2})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = app.do(t, http.MethodPost, "/api/bookings", map[string]int{"packageId": 2})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func (a *testApp) startFrom(forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"packageId":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec.Code
}

func TestRouter_ForwardedForIgnoredWithoutTrustedProxy(t *testing.T) {
	app := newTestApp(t, 1)

	assert.Equal(t, http.StatusCreated, app.startFrom("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, app.startFrom("203.0.113.2"))
}

func TestRouter_ForwardedForHonouredBehindTrustedProxy(t *testing.T) {
	app := newTestApp(t, 1, func(c *utils.Config) { c.HTTP.TrustProxy = true })

	assert.Equal(t, http.StatusCreated, app.startFrom("203.0.113.1"))
	assert.Equal(t, http.StatusCreated, app.startFrom("203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, app.startFrom("203.0.113.1"))
}
