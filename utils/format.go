package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InvoiceNumber derives the document number shown on an invoice from the
// booking id.
func InvoiceNumber(bookingID uint) string {
	return fmt.Sprintf("HSQ-%d", bookingID)
}

// FormatStatus renders a snake_case status for display:
// "checked_in" -> "Checked In".
func FormatStatus(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return "N/A"
	}
	words := strings.Split(status, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// FormatPaymentType renders a payment method for display ("upi" -> "UPI").
func FormatPaymentType(paymentType string) string {
	paymentType = strings.TrimSpace(paymentType)
	if paymentType == "" {
		return "N/A"
	}
	return strings.ToUpper(paymentType)
}

// FormatDate renders a date as "02 Jan 2006". Unparsable input is returned
// unchanged so a bad value still shows up somewhere visible.
func FormatDate(value string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02 Jan 2006")
		}
	}
	return value
}

// FormatClockTime renders an "HH:MM:SS" clock string as "3:00 PM".
// Malformed input degrades to "12:00 PM", the property-wide default
// check-in time.
func FormatClockTime(clock string) string {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "12:00 PM"
	}
	switch {
	case hour == 0:
		return "12:00 AM"
	case hour < 12:
		return fmt.Sprintf("%d:00 AM", hour)
	case hour == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
}
