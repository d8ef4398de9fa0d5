package models

import "time"

// Granularity is the billing unit a booking is priced in.
type Granularity string

const (
	GranularityHourly  Granularity = "hourly"
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

// Valid reports whether g is one of the four billing granularities.
func (g Granularity) Valid() bool {
	switch g {
	case GranularityHourly, GranularityDaily, GranularityMonthly, GranularityYearly:
		return true
	}
	return false
}

// LineItem is the computed charge for one room entry of a booking.
// Line items are built once per invoice computation and never mutated;
// they are owned by the InvoiceResult that contains them.
type LineItem struct {
	RoomID   uint   `json:"room_id"`
	RoomName string `json:"room_name"`
	Quantity int    `json:"quantity"`

	BaseRate            float64 `json:"base_rate"`
	DiscountPercent     float64 `json:"discount_percent"`
	DiscountedUnitPrice float64 `json:"discounted_unit_price"`

	DurationUnits int    `json:"duration_units"`
	DurationLabel string `json:"duration_label"`

	Amount float64 `json:"amount"`

	TaxRate   float64 `json:"tax_rate"`
	TaxAmount float64 `json:"tax_amount"`

	// set when the room has no usable rate for the booking granularity;
	// the line is still emitted with a zero amount
	RateUnavailable bool `json:"rate_unavailable,omitempty"`
}

// InvoiceResult is the full financial statement for one booking. It is
// recomputed from current room rates on every call and never cached;
// callers that need a frozen historical invoice must persist it.
type InvoiceResult struct {
	InvoiceNumber string    `json:"invoice_number"`
	IssueDate     time.Time `json:"issue_date"`

	BookingID uint `json:"booking_id"`

	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserMobile string `json:"user_mobile"`

	PropertyName string       `json:"property_name"`
	PropertyType PropertyType `json:"property_type"`

	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`

	LineItems []LineItem `json:"line_items"`

	Subtotal            float64 `json:"subtotal"`
	TotalTax            float64 `json:"total_tax"`
	CGST                float64 `json:"cgst"`
	SGST                float64 `json:"sgst"`
	GrandTotal          float64 `json:"grand_total"`
	EffectiveTaxPercent float64 `json:"effective_tax_percent"`

	// recoverable per-line data-quality issues, never silently dropped
	Warnings []string `json:"warnings,omitempty"`

	// true when no line item could be constructed at all
	NoBillableRooms bool `json:"no_billable_rooms,omitempty"`
}
