package shopapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mengsruy/webstore/config"
	"github.com/mengsruy/webstore/internal/app"
	"github.com/mengsruy/webstore/internal/webserver"
)

type recordingSink struct {
	mu   sync.Mutex
	sent []string
}

func (r *recordingSink) Send(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, text)
	return nil
}

func (r *recordingSink) last(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		t.Fatal("no notification delivered")
	}
	return r.sent[len(r.sent)-1]
}

func newTestServer(t *testing.T) (*echo.Echo, *recordingSink) {
	t.Helper()
	cfg := config.DefaultAppConfig()
	application := app.NewApplication(cfg)
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	application.OverrideDB(db)

	ws := webserver.Init(application)
	sink := &recordingSink{}
	RegisterRoutes(sink)
	return ws.Root(), sink
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHomeBootstrapsAndLists(t *testing.T) {
	e, _ := newTestServer(t)

	rec := get(e, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Wireless Headphones")
	assert.Contains(t, body, "Ergonomic Chair")

	// a second visit must not duplicate the seed rows
	rec = get(e, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, strings.Count(body, "Ergonomic Chair"),
		strings.Count(rec.Body.String(), "Ergonomic Chair"))
}

func TestProductDetail(t *testing.T) {
	e, _ := newTestServer(t)
	get(e, "/") // bootstrap

	rec := get(e, "/product/1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wireless Headphones")

	assert.Equal(t, http.StatusNotFound, get(e, "/product/999").Code)
	assert.Equal(t, http.StatusNotFound, get(e, "/product/abc").Code)
}

func TestSearch(t *testing.T) {
	e, _ := newTestServer(t)
	get(e, "/")

	rec := get(e, "/search?q=camera")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mirrorless Camera")
	assert.NotContains(t, rec.Body.String(), "Ergonomic Chair")

	// blank query yields an empty result page, not an error
	rec = get(e, "/search?q=++")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Mirrorless Camera")
}

func TestOrderSubmitRedirectsAndNotifies(t *testing.T) {
	e, sink := newTestServer(t)
	get(e, "/")

	form := url.Values{
		"name":       {"Dara"},
		"email":      {"dara@example.com"},
		"phone":      {"555-0101"},
		"note":       {"leave at door"},
		"order_json": {`{"items":[{"title":"Wireless Headphones","qty":1,"price":99.99}],"total":99.99}`},
	}
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/order/complete", rec.Header().Get("Location"))

	text := sink.last(t)
	assert.Contains(t, text, "🛒 *New Order*")
	assert.Contains(t, text, "*Name:* Dara")
	assert.Contains(t, text, "Wireless Headphones × 1 = $99.99")
	assert.Contains(t, text, "*Total:* $99.99")
}

func TestOrderCompletePage(t *testing.T) {
	e, _ := newTestServer(t)
	assert.Equal(t, http.StatusOK, get(e, "/order/complete").Code)
}
