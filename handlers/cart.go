package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"handyhub/middleware"
	"handyhub/models"
	"handyhub/services/cart"
	"handyhub/services/catalog"
	"handyhub/services/pricing"
)

// CartHandler serves the shopping cart endpoints.
type CartHandler struct {
	Engine  cart.Engine
	Catalog catalog.Provider
}

// NewCartHandler returns a CartHandler over the given engine and catalog.
func NewCartHandler(engine cart.Engine, provider catalog.Provider) *CartHandler {
	return &CartHandler{Engine: engine, Catalog: provider}
}

func (h *CartHandler) respondCart(c *gin.Context, entries []models.CartEntry) {
	c.JSON(http.StatusOK, gin.H{
		"cart":  entries,
		"quote": pricing.ComputeQuote(entries),
	})
}

// GetCart returns the current cart with its pricing quote.
func (h *CartHandler) GetCart(c *gin.Context) {
	entries := h.Engine.Get(c.Request.Context(), middleware.ClientID(c))
	h.respondCart(c, entries)
}

// AddToCart replaces a service's selection in the cart. Item prices and
// names are snapshotted from the catalog, never trusted from the client.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var input struct {
		ServiceID int `json:"serviceId" binding:"required"`
		Items     []struct {
			ID       int `json:"id" binding:"required"`
			Quantity int `json:"quantity"`
		} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	svc, ok := h.Catalog.GetService(input.ServiceID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	selection := make([]models.SelectedItem, 0, len(input.Items))
	for _, in := range input.Items {
		if in.Quantity < 1 {
			continue
		}
		item, ok := svc.Item(in.ID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item does not belong to service"})
			return
		}
		selection = append(selection, models.SelectedItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: in.Quantity,
		})
	}
	if len(selection) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no items selected"})
		return
	}

	entries := h.Engine.AddOrReplaceSelection(c.Request.Context(), middleware.ClientID(c), svc, selection)
	h.respondCart(c, entries)
}

// ChangeQuantity adjusts a single item's quantity by a signed delta.
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	var input struct {
		ServiceID int `json:"serviceId" binding:"required"`
		ItemID    int `json:"itemId" binding:"required"`
		Change    int `json:"change" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	entries := h.Engine.ChangeQuantity(c.Request.Context(), middleware.ClientID(c), input.ServiceID, input.ItemID, input.Change)
	h.respondCart(c, entries)
}

// RemoveService drops a service's whole selection from the cart.
func (h *CartHandler) RemoveService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	entries := h.Engine.RemoveService(c.Request.Context(), middleware.ClientID(c), serviceID)
	h.respondCart(c, entries)
}
