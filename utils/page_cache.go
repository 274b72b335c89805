package utils

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
)

type cachedPage struct {
	status      int
	contentType string
	body        []byte
	expires     time.Time
}

// DefaultMaxPages caps the number of pages a PageCache holds at once
const DefaultMaxPages = 1000

// PageCache keeps rendered GET responses for a fixed time.
// Nothing invalidates an entry before it expires.
// Expired entries are swept on store, at most once per TTL.
type PageCache struct {
	TTL      time.Duration
	Now      func() time.Time
	MaxPages int
	pages    cmap.ConcurrentMap[string, cachedPage]

	sweepMutex sync.Mutex
	nextSweep  time.Time
}

func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		TTL:      ttl,
		Now:      time.Now,
		MaxPages: DefaultMaxPages,
		pages:    cmap.New[cachedPage](),
	}
}

// sweep drops every expired page
func (pc *PageCache) sweep(now time.Time, force bool) {
	pc.sweepMutex.Lock()
	defer pc.sweepMutex.Unlock()
	if !force && now.Before(pc.nextSweep) {
		return
	}
	pc.nextSweep = now.Add(pc.TTL)
	for item := range pc.pages.IterBuffered() {
		if !now.Before(item.Val.expires) {
			pc.pages.RemoveCb(item.Key, func(key string, v cachedPage, exists bool) bool {
				return exists && !now.Before(v.expires)
			})
		}
	}
}

func (pc *PageCache) store(key string, page cachedPage) {
	now := pc.Now()
	pc.sweep(now, false)
	if pc.MaxPages > 0 && pc.pages.Count() >= pc.MaxPages {
		pc.sweep(now, true)
		if pc.pages.Count() >= pc.MaxPages {
			return
		}
	}
	pc.pages.Set(key, page)
}

type cacheWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *cacheWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Handler serves cached copies of successful GET responses, keyed by keyFunc
func (pc *PageCache) Handler(keyFunc func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || pc.TTL <= 0 {
			c.Next()
			return
		}
		key := keyFunc(c)
		if page, ok := pc.pages.Get(key); ok {
			if pc.Now().Before(page.expires) {
				c.Data(page.status, page.contentType, page.body)
				c.Abort()
				return
			}
			pc.pages.Remove(key)
		}

		w := &cacheWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()
		c.Writer = w.ResponseWriter

		if w.Status() == http.StatusOK {
			pc.store(key, cachedPage{
				status:      http.StatusOK,
				contentType: w.Header().Get("Content-Type"),
				body:        w.body.Bytes(),
				expires:     pc.Now().Add(pc.TTL),
			})
		}
	}
}

func (pc *PageCache) Len() int {
	return pc.pages.Count()
}

func (pc *PageCache) Clear() {
	pc.pages.Clear()
}
