package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"handyhub/middleware"
	"handyhub/models"
	"handyhub/services/checkout"
	"handyhub/services/pricing"
)

// CheckoutHandler serves the checkout workflow endpoints.
type CheckoutHandler struct {
	Checkout checkout.Service
}

// NewCheckoutHandler returns a CheckoutHandler over the given service.
func NewCheckoutHandler(svc checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{Checkout: svc}
}

// respondCheckoutError maps workflow errors onto HTTP responses. A missing
// staged booking sends the client back to the cart page.
func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrNoPendingBooking):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "redirect": "/book/cart"})
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrInvalidTransition),
		errors.Is(err, checkout.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrDateInPast),
		errors.Is(err, checkout.ErrInvalidDate),
		errors.Is(err, checkout.ErrInvalidTimeSlot),
		errors.Is(err, checkout.ErrNotesTooLong),
		errors.Is(err, models.ErrInvalidAddress):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *CheckoutHandler) respondSession(c *gin.Context, session *models.CheckoutSession, entries []models.CartEntry) {
	body := gin.H{"session": session}
	if entries != nil {
		body["pendingBooking"] = entries
		body["quote"] = pricing.ComputeQuote(entries)
	}
	c.JSON(http.StatusOK, body)
}

// StartCheckout stages the cart and opens the workflow at the datetime step.
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	session, entries, err := h.Checkout.Start(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	h.respondSession(c, session, entries)
}

// GetCheckout returns the current workflow state.
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	session, entries, err := h.Checkout.Current(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	h.respondSession(c, session, entries)
}

// SubmitDateTime records the service date and arrival slot.
func (h *CheckoutHandler) SubmitDateTime(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Checkout.SubmitDateTime(c.Request.Context(), middleware.ClientID(c), input.Date, input.Time)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	h.respondSession(c, session, nil)
}

// SubmitAddress records the service address and optional notes.
func (h *CheckoutHandler) SubmitAddress(c *gin.Context) {
	var input struct {
		Address models.Address `json:"address" binding:"required"`
		Notes   string         `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Checkout.SubmitAddress(c.Request.Context(), middleware.ClientID(c), input.Address, input.Notes)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	h.respondSession(c, session, nil)
}

// CheckoutBack steps the workflow one step backwards.
func (h *CheckoutHandler) CheckoutBack(c *gin.Context) {
	session, err := h.Checkout.Back(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	h.respondSession(c, session, nil)
}

// ConfirmBooking performs the final submission and returns the booking.
func (h *CheckoutHandler) ConfirmBooking(c *gin.Context) {
	booking, err := h.Checkout.Confirm(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}
