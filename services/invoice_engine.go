package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"hsquare-backend/models"
	"hsquare-backend/utils"
)

// ErrMalformedBookingDates is fatal to the whole computation: a defaulted
// duration of zero would corrupt every downstream total.
var ErrMalformedBookingDates = errors.New("malformed booking dates")

// Tax tier rule: accommodation priced under the threshold per billing unit
// is taxed at the low rate, everything at or above it at the high rate.
// The threshold compares the *discounted unit price*, never the extended
// line amount.
const (
	TaxTierThreshold = 5000.0
	TaxRateLow       = 0.05
	TaxRateHigh      = 0.18
)

// TaxRateForUnitPrice maps a discounted per-unit price to its tax rate.
// Exactly 5000 lands in the high tier.
func TaxRateForUnitPrice(unitPrice float64) float64 {
	if unitPrice < TaxTierThreshold {
		return TaxRateLow
	}
	return TaxRateHigh
}

// StayDuration is the billed duration of a booking.
type StayDuration struct {
	Units int
	Label string

	// Years is the days/365 derivation consumed only by the yearly line
	// amount rule. It is kept separate from Units on purpose: the two
	// derivations differ for monthly bookings and must not be merged.
	Years int
}

// ResolveStayDuration converts check-in/check-out data plus the booking
// granularity into a billed unit count and a display label.
func ResolveStayDuration(
	granularity models.Granularity,
	checkinDate, checkoutDate *time.Time,
	checkinTime, checkoutTime *string,
) (StayDuration, error) {

	if checkinDate == nil || checkoutDate == nil {
		return StayDuration{}, fmt.Errorf("%w: check-in or check-out date missing", ErrMalformedBookingDates)
	}

	days := math.Abs(checkoutDate.Sub(*checkinDate).Hours() / 24)
	years := int(math.Round(days / 365))

	switch granularity {
	case models.GranularityHourly:
		if checkinTime == nil || checkoutTime == nil {
			return StayDuration{}, fmt.Errorf("%w: hourly booking missing check-in or check-out time", ErrMalformedBookingDates)
		}
		inHour, err := parseClockHour(*checkinTime)
		if err != nil {
			return StayDuration{}, fmt.Errorf("%w: %v", ErrMalformedBookingDates, err)
		}
		outHour, err := parseClockHour(*checkoutTime)
		if err != nil {
			return StayDuration{}, fmt.Errorf("%w: %v", ErrMalformedBookingDates, err)
		}

		// overnight wraparound: 22:00 -> 02:00 is 4 hours
		hours := outHour - inHour
		if outHour <= inHour {
			hours = (24 - inHour) + outHour
		}
		return StayDuration{Units: hours, Label: pluralUnits(hours, "hour", false), Years: years}, nil

	case models.GranularityDaily:
		nights := int(math.Ceil(days))
		return StayDuration{Units: nights, Label: pluralUnits(nights, "night", false), Years: years}, nil

	case models.GranularityMonthly:
		// days/30 approximation, not calendar-month aware
		months := int(math.Round(days / 30))
		return StayDuration{Units: months, Label: pluralUnits(months, "month", true), Years: years}, nil

	case models.GranularityYearly:
		display := years
		if display < 1 {
			display = 1
		}
		return StayDuration{Units: display, Label: pluralUnits(display, "year", true), Years: years}, nil
	}

	return StayDuration{}, fmt.Errorf("unsupported billing granularity %q", granularity)
}

// pluralUnits renders "3 nights" style labels. The hourly/daily labels
// only pluralise above 1, the monthly/yearly labels pluralise everything
// except exactly 1 (so "0 months"), matching the invoice layouts callers
// already render.
func pluralUnits(n int, unit string, strictOne bool) string {
	plural := n > 1
	if strictOne {
		plural = n != 1
	}
	if plural {
		return fmt.Sprintf("%d %ss", n, unit)
	}
	return fmt.Sprintf("%d %s", n, unit)
}

func parseClockHour(clock string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	return hour, nil
}

type rateKind string

const (
	rateHourly  rateKind = "hourly"
	rateDaily   rateKind = "daily"
	rateMonthly rateKind = "monthly"
	rateYearly  rateKind = "yearly"
)

// rateFallback is the declared rate resolution order per granularity.
// Note the monthly rate is consulted for yearly bookings ahead of the
// yearly rate; product has been asked to confirm that ordering, until
// then it stays as the billing history expects.
var rateFallback = map[models.Granularity][]rateKind{
	models.GranularityHourly:  {rateHourly, rateMonthly},
	models.GranularityDaily:   {rateDaily, rateMonthly},
	models.GranularityMonthly: {rateMonthly},
	models.GranularityYearly:  {rateMonthly, rateYearly},
}

// SelectRoomRate resolves the applicable rate for a room under the given
// granularity. ok is false when no rate in the fallback chain is present;
// the caller still emits the line, flagged, with a zero amount.
func SelectRoomRate(room *models.Room, granularity models.Granularity) (float64, bool) {
	for _, kind := range rateFallback[granularity] {
		var rate *float64
		switch kind {
		case rateHourly:
			rate = room.HourlyRate
		case rateDaily:
			rate = room.DailyRate
		case rateMonthly:
			rate = room.MonthlyRate
		case rateYearly:
			rate = room.YearlyRate
		}
		if rate != nil {
			return *rate, true
		}
	}
	return 0, false
}

// lineInput carries everything a line amount rule may consume.
type lineInput struct {
	UnitPrice float64
	Quantity  int
	Duration  StayDuration
	Guests    int
}

type amountRule func(lineInput) float64

type amountKey struct {
	Granularity  models.Granularity
	PropertyType models.PropertyType
}

// amountRules selects the extended-amount formula per (granularity,
// property type). Hostel monthly stays bill per bed, so the amount scales
// by guest count; yearly stays always charge at least one full year.
// Everything else multiplies price by quantity and duration.
var amountRules = map[amountKey]amountRule{
	{models.GranularityMonthly, models.PropertyHostel}: func(in lineInput) float64 {
		return in.UnitPrice * float64(in.Quantity) * float64(in.Duration.Units) * float64(in.Guests)
	},
	{models.GranularityYearly, models.PropertyHotel}:  yearlyAmount,
	{models.GranularityYearly, models.PropertyHostel}: yearlyAmount,
}

func yearlyAmount(in lineInput) float64 {
	years := in.Duration.Years
	if years < 1 {
		years = 1
	}
	return in.UnitPrice * float64(in.Quantity) * float64(years)
}

func defaultAmount(in lineInput) float64 {
	return in.UnitPrice * float64(in.Quantity) * float64(in.Duration.Units)
}

func lineAmountFor(granularity models.Granularity, propertyType models.PropertyType, in lineInput) float64 {
	if rule, ok := amountRules[amountKey{granularity, propertyType}]; ok {
		return rule(in)
	}
	return defaultAmount(in)
}

// InvoiceEngine turns a booking snapshot into a line-itemised, tax-correct
// invoice. The computation is pure: it never reads the database, never
// caches, and consults the clock only for the issue-date stamp, so two
// calls with identical inputs produce identical figures.
type InvoiceEngine struct {
	Now func() time.Time
}

func NewInvoiceEngine() *InvoiceEngine {
	return &InvoiceEngine{Now: time.Now}
}

// Compute builds the invoice for one booking from the property and room
// rows it is handed. Rates are always the current ones; nothing is
// snapshotted, so a historical invoice must be persisted by the caller.
//
// Date/structural problems fail the whole call. Per-room data-quality
// problems degrade per line and are reported on the Warnings list.
func (e *InvoiceEngine) Compute(
	booking *models.Booking,
	property *models.Property,
	rooms []models.Room,
) (*models.InvoiceResult, error) {

	if booking == nil || property == nil {
		return nil, errors.New("booking and property are required")
	}

	granularity := booking.BookingTime
	if granularity == "" {
		granularity = models.GranularityDaily
	}
	if !granularity.Valid() {
		return nil, fmt.Errorf("unsupported billing granularity %q", granularity)
	}

	duration, err := ResolveStayDuration(
		granularity,
		booking.CheckinDate, booking.CheckoutDate,
		booking.CheckinTime, booking.CheckoutTime,
	)
	if err != nil {
		return nil, err
	}

	selections, err := booking.Selections()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBookingDates, err)
	}

	guests := booking.NumberOfGuests
	if guests <= 0 {
		guests = 1
	}

	roomsByID := make(map[uint]*models.Room, len(rooms))
	for i := range rooms {
		roomsByID[rooms[i].ID] = &rooms[i]
	}

	result := &models.InvoiceResult{
		InvoiceNumber: utils.InvoiceNumber(booking.ID),
		BookingID:     booking.ID,
		UserName:      booking.User.Name,
		UserEmail:     booking.User.Email,
		UserMobile:    booking.User.Mobile,
		PropertyName:  property.Name,
		PropertyType:  property.PropertyType,
		PaymentMethod: utils.FormatPaymentType(booking.PaymentType),
		PaymentStatus: utils.FormatStatus(booking.Status),
	}
	if e.Now != nil {
		result.IssueDate = e.Now()
	} else {
		result.IssueDate = time.Now()
	}

	lines := make([]models.LineItem, 0, len(selections))
	for _, sel := range selections {
		room, ok := roomsByID[sel.RoomID]
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("room %d is not part of the property's room collection; line skipped", sel.RoomID))
			continue
		}

		line := models.LineItem{
			RoomID:        room.ID,
			RoomName:      room.Name,
			Quantity:      sel.Quantity,
			DurationUnits: duration.Units,
			DurationLabel: duration.Label,
		}

		rate, available := SelectRoomRate(room, granularity)
		if !available {
			line.RateUnavailable = true
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("room %d (%s) has no usable rate for %s billing; amount set to 0", room.ID, room.Name, granularity))
			lines = append(lines, line)
			continue
		}

		discount := room.DiscountPercent()
		unitPrice := rate * (1 - discount/100)

		line.BaseRate = rate
		line.DiscountPercent = discount
		line.DiscountedUnitPrice = unitPrice
		line.Amount = lineAmountFor(granularity, property.PropertyType, lineInput{
			UnitPrice: unitPrice,
			Quantity:  sel.Quantity,
			Duration:  duration,
			Guests:    guests,
		})
		line.TaxRate = TaxRateForUnitPrice(unitPrice)
		line.TaxAmount = line.Amount * line.TaxRate

		lines = append(lines, line)
	}

	result.LineItems = lines

	for _, line := range lines {
		result.Subtotal += line.Amount
		result.TotalTax += line.TaxAmount
	}
	result.CGST = result.TotalTax / 2
	result.SGST = result.TotalTax / 2
	result.GrandTotal = result.Subtotal + result.TotalTax
	if result.Subtotal > 0 {
		result.EffectiveTaxPercent = result.TotalTax / result.Subtotal * 100
	}

	if len(lines) == 0 {
		result.NoBillableRooms = true
		result.Warnings = append(result.Warnings, "no billable rooms on this booking")
	}

	return result, nil
}
