package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	CacheNoCache = 0
	CacheCustom  = -1
)

// CacheRouter sets the cache-control header. Pages depend on the session so they
// are never cached, media files are immutable and can be cached for CacheTime seconds.
type CacheRouter struct {
	CacheTime int // defaults to CacheNoCache = 0
}

func (cr *CacheRouter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cr.CacheTime != CacheCustom {
			if cr.CacheTime == CacheNoCache {
				c.Header("cache-control", "private, no-cache")
			} else {
				c.Header("cache-control", "public, max-age="+strconv.Itoa(cr.CacheTime))
			}
		}
		c.Next()
	}
}
