package handlers

import (
	"net/http"
	"time"

	"altura_store/internal/catalog"

	"github.com/gin-gonic/gin"
)

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"name": "ALTURA",
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

// Products serves the catalog document verbatim. It is re-read on every call
// so a regenerated site is picked up without a restart.
func (a *API) Products(c *gin.Context) {
	cat, err := catalog.Load(a.CatalogPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", cat.Raw())
}
