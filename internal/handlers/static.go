package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// ServeStatic resolves any non-API path against the site directory. Directory
// paths fall through to index.html, traversal outside the root is rejected,
// and HTML is never cached while hashed assets are cached forever.
func (a *API) ServeStatic(c *gin.Context) {
	urlPath := c.Request.URL.Path
	if strings.HasPrefix(urlPath, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if strings.HasSuffix(urlPath, "/") {
		urlPath += "index.html"
	}

	base, err := filepath.Abs(a.SiteDir)
	if err != nil {
		c.String(http.StatusInternalServerError, "Server error")
		return
	}
	target := filepath.Join(base, urlPath)
	if target != base && !strings.HasPrefix(target, base+string(filepath.Separator)) {
		c.String(http.StatusBadRequest, "Bad request")
		return
	}

	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	ext := strings.ToLower(filepath.Ext(target))
	if ct, ok := mimeTypes[ext]; ok {
		c.Header("Content-Type", ct)
	}
	if ext == ".html" {
		c.Header("Cache-Control", "no-cache")
	} else {
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
	}
	c.File(target)
}
