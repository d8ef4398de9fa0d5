package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// ResolveBookingIDFromInvoiceNo maps an invoice number ("HSQ-42") back to
// its booking id and confirms the booking exists.
func ResolveBookingIDFromInvoiceNo(db *gorm.DB, invoiceNo string) (uint, error) {
	invoiceNo = strings.TrimSpace(strings.ToUpper(invoiceNo))
	if invoiceNo == "" {
		return 0, errors.New("empty invoice number")
	}

	raw := strings.TrimPrefix(invoiceNo, "HSQ-")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid invoice number %q", invoiceNo)
	}

	var out struct {
		ID uint `gorm:"column:id"`
	}
	if err := db.Raw("SELECT id FROM bookings WHERE id = ? AND deleted_at IS NULL LIMIT 1", id).Scan(&out).Error; err != nil {
		return 0, fmt.Errorf("db query failed: %w", err)
	}
	if out.ID == 0 {
		return 0, ErrBookingNotFound
	}
	return out.ID, nil
}
