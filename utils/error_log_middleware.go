package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const errorLogBodyLimit = 512

// errorLogWriter copies the body of failed responses into the log
type errorLogWriter struct {
	gin.ResponseWriter
	method string
	path   string
}

func (w *errorLogWriter) logBody(b []byte) {
	status := w.Status()
	if status < http.StatusInternalServerError {
		return
	}
	if len(b) > errorLogBodyLimit {
		b = b[:errorLogBodyLimit]
	}
	log.Printf("[DEBUG ERROR]: %s %s, Status %d, Body: %s", w.method, w.path, status, b)
}

func (w *errorLogWriter) Write(b []byte) (int, error) {
	w.logBody(b)
	return w.ResponseWriter.Write(b)
}

func (w *errorLogWriter) WriteString(s string) (int, error) {
	w.logBody([]byte(s))
	return w.ResponseWriter.WriteString(s)
}

// ErrorLogMiddleware logs 5xx response bodies, it doesn't work with GZIP
func ErrorLogMiddleware(c *gin.Context) {
	c.Writer = &errorLogWriter{
		ResponseWriter: c.Writer,
		method:         c.Request.Method,
		path:           c.Request.URL.Path,
	}
	c.Next()
}
