package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	etagHeader = "ETag"
)

// ContentETag is a short fingerprint of a response body
func ContentETag(body []byte) string {
	sum := sha256.Sum256(body)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}

// IsNotModified sets the ETag and answers 304 when the client already has this version
func IsNotModified(c *gin.Context, etag string) bool {
	c.Header("cache-control", "private, max-age=1")
	c.Header(etagHeader, etag)
	if c.Request.Header.Get("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	return false
}
