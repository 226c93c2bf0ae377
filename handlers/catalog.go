package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"handyhub/services/catalog"
)

// CatalogHandler serves the service catalog endpoints.
type CatalogHandler struct {
	Catalog catalog.Provider
}

// NewCatalogHandler returns a CatalogHandler backed by the given provider.
func NewCatalogHandler(provider catalog.Provider) *CatalogHandler {
	return &CatalogHandler{Catalog: provider}
}

// ListServices returns the full catalog, optionally filtered by category.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, gin.H{"services": h.Catalog.ListByCategory(category)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": h.Catalog.ListServices()})
}

// GetService returns a single catalog service by id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}
	svc, ok := h.Catalog.GetService(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}
