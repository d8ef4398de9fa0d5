// controllers/invoice_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"hsquare-backend/config"
	"hsquare-backend/models"
	"hsquare-backend/services"

	"github.com/gin-gonic/gin"
)

// InvoiceProvider computes the invoice for one booking.
type InvoiceProvider interface {
	InvoiceForBooking(bookingID uint) (*models.InvoiceResult, error)
}

// InvoiceController exposes the booking-to-invoice computation. Figures
// are recomputed from current room rates on every request; nothing is
// persisted here.
type InvoiceController struct {
	BookingSvc InvoiceProvider
}

func NewInvoiceController(svc InvoiceProvider) *InvoiceController {
	return &InvoiceController{BookingSvc: svc}
}

// GET /api/bookings/:id/invoice
func (ic *InvoiceController) GetBookingInvoice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	ic.renderInvoice(c, id)
}

// GET /api/invoices/:number, lookup by "HSQ-<id>" invoice number.
func (ic *InvoiceController) GetInvoiceByNumber(c *gin.Context) {
	bookingID, err := services.ResolveBookingIDFromInvoiceNo(config.DB, c.Param("number"))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ic.renderInvoice(c, bookingID)
}

func (ic *InvoiceController) renderInvoice(c *gin.Context, bookingID uint) {
	invoice, err := ic.BookingSvc.InvoiceForBooking(bookingID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, services.ErrMalformedBookingDates):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			log.Printf("invoice computation failed for booking %d: %v", bookingID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, invoice)
}
