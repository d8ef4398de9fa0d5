package utils

import "testing"

func TestInvoiceNumber(t *testing.T) {
	if got := InvoiceNumber(42); got != "HSQ-42" {
		t.Errorf("InvoiceNumber(42) = %q, want HSQ-42", got)
	}
}

func TestFormatStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"checked_in", "Checked In"},
		{"pending", "Pending"},
		{"CONFIRMED", "Confirmed"},
		{"no_show_charged", "No Show Charged"},
		{"", "N/A"},
		{"  ", "N/A"},
	}
	for _, tt := range tests {
		if got := FormatStatus(tt.in); got != tt.want {
			t.Errorf("FormatStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPaymentType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"upi", "UPI"},
		{"card", "CARD"},
		{"Cash", "CASH"},
		{"", "N/A"},
	}
	for _, tt := range tests {
		if got := FormatPaymentType(tt.in); got != tt.want {
			t.Errorf("FormatPaymentType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-03-15", "15 Mar 2026"},
		{"2026-03-15T10:30:00Z", "15 Mar 2026"},
		{"yesterday", "yesterday"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatClockTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00:00", "12:00 AM"},
		{"09:00:00", "9:00 AM"},
		{"12:00:00", "12:00 PM"},
		{"15:00:00", "3:00 PM"},
		{"23:00:00", "11:00 PM"},
		{"not a time", "12:00 PM"},
		{"", "12:00 PM"},
	}
	for _, tt := range tests {
		if got := FormatClockTime(tt.in); got != tt.want {
			t.Errorf("FormatClockTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
