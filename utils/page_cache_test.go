package utils

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

func newCachedEngine(pc *PageCache, status *int, renders *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	key := func(c *gin.Context) string { return c.Request.URL.RequestURI() + "|" + c.GetHeader("X-Viewer") }
	r.Any("/", pc.Handler(key), func(c *gin.Context) {
		*renders++
		c.String(*status, "render "+strconv.Itoa(*renders))
	})
	return r
}

func get(r http.Handler, method, target, viewer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("X-Viewer", viewer)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPageCache_Window(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_000_000, 0)}
	pc := NewPageCache(20 * time.Second)
	pc.Now = clock.Now
	status, renders := http.StatusOK, 0
	r := newCachedEngine(pc, &status, &renders)

	assert.Equal(t, "render 1", get(r, http.MethodGet, "/", "").Body.String())

	clock.now = clock.now.Add(19 * time.Second)
	w := get(r, http.MethodGet, "/", "")
	assert.Equal(t, "render 1", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, 1, renders)

	clock.now = clock.now.Add(2 * time.Second)
	assert.Equal(t, "render 2", get(r, http.MethodGet, "/", "").Body.String())
}

func TestPageCache_Keys(t *testing.T) {
	pc := NewPageCache(time.Minute)
	status, renders := http.StatusOK, 0
	r := newCachedEngine(pc, &status, &renders)

	get(r, http.MethodGet, "/", "")
	get(r, http.MethodGet, "/?page=2", "")
	get(r, http.MethodGet, "/", "7")
	get(r, http.MethodGet, "/", "7")
	assert.Equal(t, 3, renders)
	assert.Equal(t, 3, pc.Len())

	pc.Clear()
	assert.Equal(t, 0, pc.Len())
	get(r, http.MethodGet, "/", "")
	assert.Equal(t, 4, renders)
}

func TestPageCache_SkipsNonGetAndErrors(t *testing.T) {
	pc := NewPageCache(time.Minute)
	status, renders := http.StatusOK, 0
	r := newCachedEngine(pc, &status, &renders)

	get(r, http.MethodPost, "/", "")
	get(r, http.MethodPost, "/", "")
	assert.Equal(t, 2, renders)
	assert.Equal(t, 0, pc.Len())

	status = http.StatusInternalServerError
	get(r, http.MethodGet, "/", "")
	get(r, http.MethodGet, "/", "")
	assert.Equal(t, 4, renders)
	assert.Equal(t, 0, pc.Len())
}

func TestPageCache_Disabled(t *testing.T) {
	pc := NewPageCache(0)
	status, renders := http.StatusOK, 0
	r := newCachedEngine(pc, &status, &renders)
	get(r, http.MethodGet, "/", "")
	get(r, http.MethodGet, "/", "")
	assert.Equal(t, 2, renders)
}

func TestCacheRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/page", (&CacheRouter{}).Handler(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/media", (&CacheRouter{CacheTime: 3600}).Handler(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	assert.Equal(t, "no-cache", get(r, http.MethodGet, "/page", "").Header().Get("Cache-Control"))
	assert.Equal(t, "private, max-age=3600", get(r, http.MethodGet, "/media", "").Header().Get("Cache-Control"))
	assert.Equal(t, "Cookie", get(r, http.MethodGet, "/page", "").Header().Get("Vary"))
	assert.Equal(t, "", (&CacheRouter{CacheTime: CacheCustom}).HeaderValue())
}

func TestPageCache_SweepsExpired(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_000_000, 0)}
	pc := NewPageCache(20 * time.Second)
	pc.Now = clock.Now
	status, renders := http.StatusOK, 0
	r := newCachedEngine(pc, &status, &renders)

	for i := 0; i < 50; i++ {
		get(r, http.MethodGet, "/?junk="+strconv.Itoa(i), "")
	}
	assert.Equal(t, 50, pc.Len())

	clock.now = clock.now.Add(time.Hour)
	get(r, http.MethodGet, "/", "")
	assert.Equal(t, 1, pc.Len())
}

func TestPageCache_MaxPages(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_000_000, 0)}
	pc := NewPageCache(20 * time.Second)
	pc.Now = clock.Now
	pc.MaxPages = 5
	status, renders := http.StatusOK, 0
	r := newCachedEngine(pc, &status, &renders)

	for i := 0; i < 20; i++ {
		get(r, http.MethodGet, "/?junk="+strconv.Itoa(i), "")
	}
	assert.Equal(t, 5, pc.Len())

	// a full cache still serves fresh renders
	assert.Equal(t, "render 21", get(r, http.MethodGet, "/?other", "").Body.String())

	clock.now = clock.now.Add(21 * time.Second)
	get(r, http.MethodGet, "/?after", "")
	assert.Equal(t, 1, pc.Len())
}
