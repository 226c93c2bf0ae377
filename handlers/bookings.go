package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"handyhub/database/repository/bookingrepo"
	"handyhub/middleware"
	"handyhub/models"
	"handyhub/services/ledger"
)

// BookingHandler serves the booking ledger endpoints.
type BookingHandler struct {
	Ledger ledger.Service
}

// NewBookingHandler returns a BookingHandler over the given ledger service.
func NewBookingHandler(svc ledger.Service) *BookingHandler {
	return &BookingHandler{Ledger: svc}
}

// ListBookings returns the client's bookings, newest first. An optional
// ?status= query narrows the list to one ledger status.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.IsValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking status"})
		return
	}

	bookings, err := h.Ledger.ListBookings(c.Request.Context(), middleware.ClientID(c), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings", "details": err.Error()})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking returns one booking by its reference, scoped to the client.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.Ledger.GetBooking(c.Request.Context(), middleware.ClientID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, bookingrepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// CancelBooking cancels a pending or confirmed booking.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	booking, err := h.Ledger.CancelBooking(c.Request.Context(), middleware.ClientID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, bookingrepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, ledger.ErrNotCancellable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}
