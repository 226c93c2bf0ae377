package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	ListServicesHandler gin.HandlerFunc
	GetServiceHandler   gin.HandlerFunc

	// Cart endpoints
	GetCartHandler        gin.HandlerFunc
	AddToCartHandler      gin.HandlerFunc
	ChangeQuantityHandler gin.HandlerFunc
	RemoveServiceHandler  gin.HandlerFunc

	// Checkout endpoints
	StartCheckoutHandler  gin.HandlerFunc
	GetCheckoutHandler    gin.HandlerFunc
	SubmitDateTimeHandler gin.HandlerFunc
	SubmitAddressHandler  gin.HandlerFunc
	CheckoutBackHandler   gin.HandlerFunc
	ConfirmBookingHandler gin.HandlerFunc

	// Booking ledger endpoints
	ListBookingsHandler  gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc
}
