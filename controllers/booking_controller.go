// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hsquare-backend/models"
	"hsquare-backend/services"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

// RoomEntry is one room line of a multi-room booking request; order of
// the array is the billing order on the invoice. Quantity nil defaults to
// 1; an explicit 0 stays 0 and yields an informational zero-amount line.
type RoomEntry struct {
	RoomID   uint `json:"room_id" binding:"required"`
	Quantity *int `json:"quantity"`
}

type CreateBookingRequest struct {
	UserID       uint   `json:"user_id" binding:"required"`
	PropertyID   uint   `json:"property_id" binding:"required"`
	BookingTime  string `json:"booking_time"`
	CheckinDate  string `json:"checkin_date" binding:"required"`
	CheckoutDate string `json:"checkout_date" binding:"required"`

	// hourly bookings only
	CheckinTime  *string `json:"checkin_time,omitempty"`
	CheckoutTime *string `json:"checkout_time,omitempty"`

	NumberOfGuests int `json:"number_of_guests"`
	NumberOfRooms  int `json:"number_of_rooms"`

	RoomID *uint       `json:"room,omitempty"`
	Rooms  []RoomEntry `json:"rooms,omitempty"`

	PaymentType string `json:"payment_type"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// service-level validation failures are prefixed "validation:" and map to 400
func isValidationError(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "validation:")
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return 0, false
	}
	return uint(id), true
}

// GET /api/bookings
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.BookingSvc.GetAllWithRelations()
	if err != nil {
		log.Printf("failed to list bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.BookingSvc.GetBookingDetails(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.Printf("failed to load booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve booking"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("booking payload binding error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "details": err.Error()})
		return
	}

	selections := make([]models.RoomSelection, 0, len(req.Rooms))
	for _, entry := range req.Rooms {
		qty := 1
		if entry.Quantity != nil {
			qty = *entry.Quantity
		}
		selections = append(selections, models.RoomSelection{RoomID: entry.RoomID, Quantity: qty})
	}

	booking, err := bc.BookingSvc.CreateBooking(services.CreateBookingInput{
		UserID:         req.UserID,
		PropertyID:     req.PropertyID,
		BookingTime:    models.Granularity(req.BookingTime),
		CheckinDate:    req.CheckinDate,
		CheckoutDate:   req.CheckoutDate,
		CheckinTime:    req.CheckinTime,
		CheckoutTime:   req.CheckoutTime,
		NumberOfGuests: req.NumberOfGuests,
		NumberOfRooms:  req.NumberOfRooms,
		RoomID:         req.RoomID,
		RoomSelections: selections,
		PaymentType:    req.PaymentType,
	})
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("failed to create booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// PATCH /api/bookings/:id/status
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	if err := bc.BookingSvc.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.Printf("failed to update booking %d status: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DELETE /api/bookings/:id
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := bc.BookingSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.Printf("failed to delete booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "booking deleted"})
}
