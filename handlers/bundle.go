package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the HTTP handlers wired together in main.
type HandlerBundle struct {
	// Health endpoint.
	Health gin.HandlerFunc

	// Catalog endpoints.
	ListMenus     gin.HandlerFunc
	ListMenuItems gin.HandlerFunc

	// Booking endpoint.
	SubmitBooking gin.HandlerFunc
}
