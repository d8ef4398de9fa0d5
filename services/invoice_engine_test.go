package services

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"hsquare-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const floatTolerance = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }
func uintPtr(v uint) *uint        { return &v }

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func testRoom(id uint, name string) models.Room {
	return models.Room{Model: gorm.Model{ID: id}, PropertyID: 1, Name: name}
}

func fixedClockEngine() *InvoiceEngine {
	return &InvoiceEngine{
		Now: func() time.Time { return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC) },
	}
}

func TestTaxRateForUnitPrice(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		want      float64
	}{
		{"well below threshold", 1200, TaxRateLow},
		{"just below threshold", 4999.99, TaxRateLow},
		{"exactly at threshold", 5000, TaxRateHigh},
		{"above threshold", 6500, TaxRateHigh},
		{"zero", 0, TaxRateLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaxRateForUnitPrice(tt.unitPrice); got != tt.want {
				t.Errorf("TaxRateForUnitPrice(%v) = %v, want %v", tt.unitPrice, got, tt.want)
			}
		})
	}
}

func TestResolveStayDuration(t *testing.T) {
	tests := []struct {
		name         string
		granularity  models.Granularity
		checkin      *time.Time
		checkout     *time.Time
		checkinTime  *string
		checkoutTime *string
		wantUnits    int
		wantLabel    string
		wantYears    int
	}{
		{
			name:        "hourly same day",
			granularity: models.GranularityHourly,
			checkin:     datePtr(2026, time.January, 10),
			checkout:    datePtr(2026, time.January, 10),
			checkinTime: strPtr("10:00:00"), checkoutTime: strPtr("14:00:00"),
			wantUnits: 4, wantLabel: "4 hours",
		},
		{
			name:        "hourly overnight wraparound",
			granularity: models.GranularityHourly,
			checkin:     datePtr(2026, time.January, 10),
			checkout:    datePtr(2026, time.January, 11),
			checkinTime: strPtr("22:00:00"), checkoutTime: strPtr("02:00:00"),
			wantUnits: 4, wantLabel: "4 hours",
		},
		{
			name:        "hourly single hour singular label",
			granularity: models.GranularityHourly,
			checkin:     datePtr(2026, time.January, 10),
			checkout:    datePtr(2026, time.January, 10),
			checkinTime: strPtr("09:00:00"), checkoutTime: strPtr("10:00:00"),
			wantUnits: 1, wantLabel: "1 hour",
		},
		{
			name:        "daily two nights",
			granularity: models.GranularityDaily,
			checkin:     datePtr(2026, time.January, 1),
			checkout:    datePtr(2026, time.January, 3),
			wantUnits:   2, wantLabel: "2 nights",
		},
		{
			name:        "daily one night singular",
			granularity: models.GranularityDaily,
			checkin:     datePtr(2026, time.January, 1),
			checkout:    datePtr(2026, time.January, 2),
			wantUnits:   1, wantLabel: "1 night",
		},
		{
			name:        "monthly thirty days",
			granularity: models.GranularityMonthly,
			checkin:     datePtr(2026, time.January, 1),
			checkout:    datePtr(2026, time.January, 31),
			wantUnits:   1, wantLabel: "1 month",
		},
		{
			name:        "monthly ninety days",
			granularity: models.GranularityMonthly,
			checkin:     datePtr(2026, time.January, 1),
			checkout:    datePtr(2026, time.April, 1),
			wantUnits:   3, wantLabel: "3 months",
		},
		{
			name:        "monthly short stay rounds to zero months",
			granularity: models.GranularityMonthly,
			checkin:     datePtr(2026, time.January, 1),
			checkout:    datePtr(2026, time.January, 11),
			wantUnits:   0, wantLabel: "0 months",
		},
		{
			name:        "yearly full year",
			granularity: models.GranularityYearly,
			checkin:     datePtr(2026, time.January, 1),
			checkout:    datePtr(2027, time.January, 1),
			wantUnits:   1, wantLabel: "1 year", wantYears: 1,
		},
		{
			name:        "yearly short stay clamps display to one year",
			granularity: models.GranularityYearly,
			checkin:     datePtr(2026, time.January, 1),
			checkout:    datePtr(2026, time.April, 11),
			wantUnits:   1, wantLabel: "1 year", wantYears: 0,
		},
		{
			name:        "yearly two years",
			granularity: models.GranularityYearly,
			checkin:     datePtr(2026, time.January, 1),
			checkout:    datePtr(2028, time.January, 1),
			wantUnits:   2, wantLabel: "2 years", wantYears: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveStayDuration(tt.granularity, tt.checkin, tt.checkout, tt.checkinTime, tt.checkoutTime)
			if err != nil {
				t.Fatalf("ResolveStayDuration error: %v", err)
			}
			if got.Units != tt.wantUnits {
				t.Errorf("Units = %d, want %d", got.Units, tt.wantUnits)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Years != tt.wantYears {
				t.Errorf("Years = %d, want %d", got.Years, tt.wantYears)
			}
		})
	}
}

func TestResolveStayDurationErrors(t *testing.T) {
	tests := []struct {
		name         string
		granularity  models.Granularity
		checkin      *time.Time
		checkout     *time.Time
		checkinTime  *string
		checkoutTime *string
	}{
		{name: "missing checkin date", granularity: models.GranularityDaily, checkout: datePtr(2026, time.January, 3)},
		{name: "missing checkout date", granularity: models.GranularityDaily, checkin: datePtr(2026, time.January, 1)},
		{
			name:        "hourly missing clock times",
			granularity: models.GranularityHourly,
			checkin:     datePtr(2026, time.January, 1),
			checkout:    datePtr(2026, time.January, 1),
		},
		{
			name:        "hourly unparsable clock time",
			granularity: models.GranularityHourly,
			checkin:     datePtr(2026, time.January, 1),
			checkout:    datePtr(2026, time.January, 1),
			checkinTime: strPtr("whenever"), checkoutTime: strPtr("14:00:00"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveStayDuration(tt.granularity, tt.checkin, tt.checkout, tt.checkinTime, tt.checkoutTime)
			if !errors.Is(err, ErrMalformedBookingDates) {
				t.Fatalf("want ErrMalformedBookingDates, got %v", err)
			}
		})
	}
}

func TestSelectRoomRateFallbackOrder(t *testing.T) {
	tests := []struct {
		name        string
		room        models.Room
		granularity models.Granularity
		wantRate    float64
		wantOK      bool
	}{
		{
			name: "hourly uses hourly rate",
			room: models.Room{HourlyRate: floatPtr(500), MonthlyRate: floatPtr(9000)},

			granularity: models.GranularityHourly,
			wantRate:    500, wantOK: true,
		},
		{
			name:        "hourly falls back to monthly",
			room:        models.Room{DailyRate: floatPtr(3000), MonthlyRate: floatPtr(9000)},
			granularity: models.GranularityHourly,
			wantRate:    9000, wantOK: true,
		},
		{
			name:        "daily uses daily rate",
			room:        models.Room{DailyRate: floatPtr(3000), MonthlyRate: floatPtr(9000)},
			granularity: models.GranularityDaily,
			wantRate:    3000, wantOK: true,
		},
		{
			name:        "daily falls back to monthly",
			room:        models.Room{MonthlyRate: floatPtr(9000), YearlyRate: floatPtr(90000)},
			granularity: models.GranularityDaily,
			wantRate:    9000, wantOK: true,
		},
		{
			name:        "yearly prefers monthly rate over yearly rate",
			room:        models.Room{MonthlyRate: floatPtr(9000), YearlyRate: floatPtr(90000)},
			granularity: models.GranularityYearly,
			wantRate:    9000, wantOK: true,
		},
		{
			name:        "yearly uses yearly rate when monthly absent",
			room:        models.Room{YearlyRate: floatPtr(90000)},
			granularity: models.GranularityYearly,
			wantRate:    90000, wantOK: true,
		},
		{
			name:        "monthly without monthly rate is unavailable",
			room:        models.Room{DailyRate: floatPtr(3000), YearlyRate: floatPtr(90000)},
			granularity: models.GranularityMonthly,
			wantOK:      false,
		},
		{
			name:        "no rates at all",
			room:        models.Room{},
			granularity: models.GranularityDaily,
			wantOK:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, ok := SelectRoomRate(&tt.room, tt.granularity)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && rate != tt.wantRate {
				t.Errorf("rate = %v, want %v", rate, tt.wantRate)
			}
		})
	}
}

func hostelMonthlyBooking() (*models.Booking, *models.Property, []models.Room) {
	room := testRoom(1, "6-Bed Mixed Dorm")
	room.MonthlyRate = floatPtr(10000)

	booking := &models.Booking{
		ID:             7,
		PropertyID:     1,
		RoomID:         uintPtr(1),
		BookingTime:    models.GranularityMonthly,
		CheckinDate:    datePtr(2026, time.January, 1),
		CheckoutDate:   datePtr(2026, time.January, 31),
		NumberOfGuests: 3,
		NumberOfRooms:  1,
		Status:         "checked_in",
		PaymentType:    "upi",
	}
	property := &models.Property{Name: "Hsquare Backpackers Bandra", PropertyType: models.PropertyHostel}
	return booking, property, []models.Room{room}
}

func TestComputeHostelMonthlyScalesByGuests(t *testing.T) {
	booking, property, rooms := hostelMonthlyBooking()

	result, err := fixedClockEngine().Compute(booking, property, rooms)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if len(result.LineItems) != 1 {
		t.Fatalf("got %d line items, want 1", len(result.LineItems))
	}

	line := result.LineItems[0]
	if !almostEqual(line.Amount, 30000) {
		t.Errorf("hostel monthly amount = %v, want 30000 (rate x guests)", line.Amount)
	}
}

func TestComputeHotelMonthlyDoesNotScaleByGuests(t *testing.T) {
	booking, _, rooms := hostelMonthlyBooking()
	property := &models.Property{Name: "Hsquare Suites Andheri", PropertyType: models.PropertyHotel}

	result, err := fixedClockEngine().Compute(booking, property, rooms)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	line := result.LineItems[0]
	if !almostEqual(line.Amount, 10000) {
		t.Errorf("hotel monthly amount = %v, want 10000 (guest count not applied)", line.Amount)
	}
}

func TestComputeMultiRoomMixedTaxTiers(t *testing.T) {
	cheap := testRoom(1, "Standard Queen")
	cheap.DailyRate = floatPtr(3000)
	pricey := testRoom(2, "Deluxe King")
	pricey.DailyRate = floatPtr(6000)

	booking := &models.Booking{
		ID:             12,
		PropertyID:     1,
		BookingTime:    models.GranularityDaily,
		CheckinDate:    datePtr(2026, time.February, 1),
		CheckoutDate:   datePtr(2026, time.February, 3),
		NumberOfGuests: 2,
		RoomSelections: datatypes.JSON([]byte(`[{"1":1},{"2":1}]`)),
		Status:         "confirmed",
		PaymentType:    "card",
	}
	property := &models.Property{Name: "Hsquare Suites Andheri", PropertyType: models.PropertyHotel}

	result, err := fixedClockEngine().Compute(booking, property, []models.Room{cheap, pricey})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if len(result.LineItems) != 2 {
		t.Fatalf("got %d line items, want 2", len(result.LineItems))
	}

	// line order follows the booking entry order
	if result.LineItems[0].RoomID != 1 || result.LineItems[1].RoomID != 2 {
		t.Fatalf("line order = %d,%d, want 1,2", result.LineItems[0].RoomID, result.LineItems[1].RoomID)
	}

	// each room is taxed under its own tier, never the aggregate
	if result.LineItems[0].TaxRate != TaxRateLow {
		t.Errorf("cheap room tax rate = %v, want %v", result.LineItems[0].TaxRate, TaxRateLow)
	}
	if result.LineItems[1].TaxRate != TaxRateHigh {
		t.Errorf("pricey room tax rate = %v, want %v", result.LineItems[1].TaxRate, TaxRateHigh)
	}

	if !almostEqual(result.Subtotal, 18000) {
		t.Errorf("subtotal = %v, want 18000", result.Subtotal)
	}
	if !almostEqual(result.TotalTax, 2460) {
		t.Errorf("total tax = %v, want 2460", result.TotalTax)
	}
	wantEffective := 2460.0 / 18000.0 * 100
	if !almostEqual(result.EffectiveTaxPercent, wantEffective) {
		t.Errorf("effective tax percent = %v, want %v", result.EffectiveTaxPercent, wantEffective)
	}
	if !almostEqual(result.GrandTotal, 20460) {
		t.Errorf("grand total = %v, want 20460", result.GrandTotal)
	}
}

func TestComputeDiscountAppliedBeforeTierCheck(t *testing.T) {
	room := testRoom(1, "Deluxe King")
	room.DailyRate = floatPtr(2000)
	room.Discount = floatPtr(25)

	booking := &models.Booking{
		ID:           3,
		PropertyID:   1,
		RoomID:       uintPtr(1),
		BookingTime:  models.GranularityDaily,
		CheckinDate:  datePtr(2026, time.March, 1),
		CheckoutDate: datePtr(2026, time.March, 2),
	}
	property := &models.Property{PropertyType: models.PropertyHotel}

	result, err := fixedClockEngine().Compute(booking, property, []models.Room{room})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	line := result.LineItems[0]
	if !almostEqual(line.DiscountedUnitPrice, 1500) {
		t.Errorf("discounted unit price = %v, want 1500", line.DiscountedUnitPrice)
	}
	if line.TaxRate != TaxRateLow {
		t.Errorf("tax rate = %v, want %v (tier decided on discounted unit price)", line.TaxRate, TaxRateLow)
	}
}

func TestComputeTierUsesUnitPriceNotExtendedAmount(t *testing.T) {
	room := testRoom(1, "Standard Queen")
	room.DailyRate = floatPtr(3000)

	booking := &models.Booking{
		ID:            4,
		PropertyID:    1,
		RoomID:        uintPtr(1),
		NumberOfRooms: 2,
		BookingTime:   models.GranularityDaily,
		CheckinDate:   datePtr(2026, time.March, 1),
		CheckoutDate:  datePtr(2026, time.March, 4),
	}
	property := &models.Property{PropertyType: models.PropertyHotel}

	result, err := fixedClockEngine().Compute(booking, property, []models.Room{room})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	line := result.LineItems[0]
	// 3000 x 2 rooms x 3 nights = 18000 extended, but the tier input is 3000
	if !almostEqual(line.Amount, 18000) {
		t.Errorf("amount = %v, want 18000", line.Amount)
	}
	if line.TaxRate != TaxRateLow {
		t.Errorf("tax rate = %v, want %v (unit price below threshold)", line.TaxRate, TaxRateLow)
	}
}

func TestComputeZeroQuantityLine(t *testing.T) {
	room := testRoom(1, "Standard Queen")
	room.DailyRate = floatPtr(3000)

	booking := &models.Booking{
		ID:             5,
		PropertyID:     1,
		BookingTime:    models.GranularityDaily,
		CheckinDate:    datePtr(2026, time.March, 1),
		CheckoutDate:   datePtr(2026, time.March, 3),
		RoomSelections: datatypes.JSON([]byte(`[{"1":0}]`)),
	}
	property := &models.Property{PropertyType: models.PropertyHotel}

	result, err := fixedClockEngine().Compute(booking, property, []models.Room{room})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	line := result.LineItems[0]
	if line.Amount != 0 || line.TaxAmount != 0 {
		t.Errorf("zero-quantity line amount/tax = %v/%v, want 0/0", line.Amount, line.TaxAmount)
	}
	if result.NoBillableRooms {
		t.Error("zero-quantity line should still count as a line item")
	}
}

func TestComputeRateUnavailableDegradesPerLine(t *testing.T) {
	noHourly := testRoom(1, "Day-Use Cabin")
	noHourly.DailyRate = floatPtr(2500) // no hourly and no monthly rate

	booking := &models.Booking{
		ID:           6,
		PropertyID:   1,
		RoomID:       uintPtr(1),
		BookingTime:  models.GranularityHourly,
		CheckinDate:  datePtr(2026, time.March, 1),
		CheckoutDate: datePtr(2026, time.March, 1),
		CheckinTime:  strPtr("10:00:00"),
		CheckoutTime: strPtr("14:00:00"),
	}
	property := &models.Property{PropertyType: models.PropertyHotel}

	result, err := fixedClockEngine().Compute(booking, property, []models.Room{noHourly})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if len(result.LineItems) != 1 {
		t.Fatalf("got %d line items, want 1 (flagged, not dropped)", len(result.LineItems))
	}
	line := result.LineItems[0]
	if !line.RateUnavailable {
		t.Error("line should carry the rate-unavailable marker")
	}
	if line.Amount != 0 || line.TaxAmount != 0 {
		t.Errorf("unavailable-rate line amount/tax = %v/%v, want 0/0", line.Amount, line.TaxAmount)
	}
	if len(result.Warnings) == 0 {
		t.Error("rate-unavailable condition must surface as a warning")
	}
}

func TestComputeUnknownRoomSkippedWithWarning(t *testing.T) {
	room := testRoom(1, "Standard Queen")
	room.DailyRate = floatPtr(3000)

	booking := &models.Booking{
		ID:             8,
		PropertyID:     1,
		BookingTime:    models.GranularityDaily,
		CheckinDate:    datePtr(2026, time.March, 1),
		CheckoutDate:   datePtr(2026, time.March, 3),
		RoomSelections: datatypes.JSON([]byte(`[{"1":1},{"99":2}]`)),
	}
	property := &models.Property{PropertyType: models.PropertyHotel}

	result, err := fixedClockEngine().Compute(booking, property, []models.Room{room})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if len(result.LineItems) != 1 {
		t.Fatalf("got %d line items, want 1 (unknown room skipped)", len(result.LineItems))
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "99") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings %v should mention the missing room id", result.Warnings)
	}
}

func TestComputeEmptyBookingYieldsZeroInvoice(t *testing.T) {
	booking := &models.Booking{
		ID:           9,
		PropertyID:   1,
		BookingTime:  models.GranularityDaily,
		CheckinDate:  datePtr(2026, time.March, 1),
		CheckoutDate: datePtr(2026, time.March, 3),
	}
	property := &models.Property{PropertyType: models.PropertyHotel}

	result, err := fixedClockEngine().Compute(booking, property, nil)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if !result.NoBillableRooms {
		t.Error("NoBillableRooms should be set")
	}
	if result.Subtotal != 0 || result.TotalTax != 0 || result.GrandTotal != 0 || result.EffectiveTaxPercent != 0 {
		t.Errorf("zero invoice expected, got subtotal=%v tax=%v grand=%v effective=%v",
			result.Subtotal, result.TotalTax, result.GrandTotal, result.EffectiveTaxPercent)
	}
	if len(result.Warnings) == 0 {
		t.Error("no-billable-rooms condition must surface as a warning")
	}
}

func TestComputeMalformedDatesFailWholeInvoice(t *testing.T) {
	room := testRoom(1, "Standard Queen")
	room.DailyRate = floatPtr(3000)
	property := &models.Property{PropertyType: models.PropertyHotel}

	booking := &models.Booking{
		ID:          10,
		PropertyID:  1,
		RoomID:      uintPtr(1),
		BookingTime: models.GranularityDaily,
		// both dates missing
	}

	_, err := fixedClockEngine().Compute(booking, property, []models.Room{room})
	if !errors.Is(err, ErrMalformedBookingDates) {
		t.Fatalf("want ErrMalformedBookingDates, got %v", err)
	}
}

func TestComputeYearlyChargesAtLeastOneYear(t *testing.T) {
	room := testRoom(1, "Annual Studio")
	room.YearlyRate = floatPtr(80000) // no monthly rate, so the yearly rate applies

	booking := &models.Booking{
		ID:           11,
		PropertyID:   1,
		RoomID:       uintPtr(1),
		BookingTime:  models.GranularityYearly,
		CheckinDate:  datePtr(2026, time.January, 1),
		CheckoutDate: datePtr(2026, time.April, 11),
	}
	property := &models.Property{PropertyType: models.PropertyHotel}

	result, err := fixedClockEngine().Compute(booking, property, []models.Room{room})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	line := result.LineItems[0]
	if !almostEqual(line.Amount, 80000) {
		t.Errorf("yearly amount = %v, want 80000 (at least one year charged)", line.Amount)
	}
	if line.TaxRate != TaxRateHigh {
		t.Errorf("tax rate = %v, want %v", line.TaxRate, TaxRateHigh)
	}
}

func TestComputeIdempotence(t *testing.T) {
	booking, property, rooms := hostelMonthlyBooking()
	engine := fixedClockEngine()

	first, err := engine.Compute(booking, property, rooms)
	if err != nil {
		t.Fatalf("first Compute error: %v", err)
	}
	second, err := engine.Compute(booking, property, rooms)
	if err != nil {
		t.Fatalf("second Compute error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must yield identical invoice results")
	}
}

func TestComputeTotalDecomposition(t *testing.T) {
	cheap := testRoom(1, "Standard Queen")
	cheap.DailyRate = floatPtr(4999.99)
	boundary := testRoom(2, "Deluxe King")
	boundary.DailyRate = floatPtr(5000)
	discounted := testRoom(3, "Suite")
	discounted.DailyRate = floatPtr(8000)
	discounted.Discount = floatPtr(15)

	booking := &models.Booking{
		ID:             13,
		PropertyID:     1,
		BookingTime:    models.GranularityDaily,
		CheckinDate:    datePtr(2026, time.May, 1),
		CheckoutDate:   datePtr(2026, time.May, 4),
		RoomSelections: datatypes.JSON([]byte(`[{"1":2},{"2":1},{"3":1}]`)),
	}
	property := &models.Property{PropertyType: models.PropertyHotel}

	result, err := fixedClockEngine().Compute(booking, property, []models.Room{cheap, boundary, discounted})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	// boundary tier: exactly 5000 is the high tier, 4999.99 the low one
	if result.LineItems[0].TaxRate != TaxRateLow {
		t.Errorf("4999.99 unit price tax rate = %v, want %v", result.LineItems[0].TaxRate, TaxRateLow)
	}
	if result.LineItems[1].TaxRate != TaxRateHigh {
		t.Errorf("5000 unit price tax rate = %v, want %v", result.LineItems[1].TaxRate, TaxRateHigh)
	}

	if !almostEqual(result.GrandTotal, result.Subtotal+result.TotalTax) {
		t.Errorf("grand total %v != subtotal %v + tax %v", result.GrandTotal, result.Subtotal, result.TotalTax)
	}
	if !almostEqual(result.TotalTax, result.CGST+result.SGST) {
		t.Errorf("total tax %v != CGST %v + SGST %v", result.TotalTax, result.CGST, result.SGST)
	}
	if !almostEqual(result.CGST, result.SGST) {
		t.Errorf("CGST %v and SGST %v must be equal halves", result.CGST, result.SGST)
	}

	var sumAmounts, sumTaxes float64
	for _, line := range result.LineItems {
		sumAmounts += line.Amount
		sumTaxes += line.TaxAmount
	}
	if !almostEqual(result.Subtotal, sumAmounts) {
		t.Errorf("subtotal %v != sum of line amounts %v", result.Subtotal, sumAmounts)
	}
	if !almostEqual(result.TotalTax, sumTaxes) {
		t.Errorf("total tax %v != sum of line taxes %v", result.TotalTax, sumTaxes)
	}
}

func TestComputePassThroughFields(t *testing.T) {
	booking, property, rooms := hostelMonthlyBooking()
	booking.User = models.HsUser{Name: "Asha Rao", Email: "asha@example.com", Mobile: "+919800000000"}

	result, err := fixedClockEngine().Compute(booking, property, rooms)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if result.InvoiceNumber != "HSQ-7" {
		t.Errorf("invoice number = %q, want HSQ-7", result.InvoiceNumber)
	}
	if result.PaymentMethod != "UPI" {
		t.Errorf("payment method = %q, want UPI", result.PaymentMethod)
	}
	if result.PaymentStatus != "Checked In" {
		t.Errorf("payment status = %q, want Checked In", result.PaymentStatus)
	}
	if result.UserName != "Asha Rao" || result.UserEmail != "asha@example.com" {
		t.Errorf("user pass-through = %q/%q", result.UserName, result.UserEmail)
	}
	if result.IssueDate.IsZero() {
		t.Error("issue date must be stamped")
	}
}
