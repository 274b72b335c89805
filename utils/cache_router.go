package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	CacheNoCache = 0
	CacheCustom  = -1
)

// CacheRouter tells browsers how long they may keep the responses of the routes it wraps
type CacheRouter struct {
	CacheTime int // seconds, defaults to CacheNoCache = 0
}

// HeaderValue is the Cache-Control value, empty for CacheCustom
func (cr *CacheRouter) HeaderValue() string {
	switch cr.CacheTime {
	case CacheCustom:
		return ""
	case CacheNoCache:
		return "no-cache"
	}
	return "private, max-age=" + strconv.Itoa(cr.CacheTime)
}

func (cr *CacheRouter) Handler() gin.HandlerFunc {
	value := cr.HeaderValue()
	return func(c *gin.Context) {
		if value != "" {
			c.Header("Cache-Control", value)
			// pages differ per logged in user
			c.Header("Vary", "Cookie")
		}
		c.Next()
	}
}
