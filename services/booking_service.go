// services/booking_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hsquare-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking_not_found")

// BookingService wraps *gorm.DB and owns booking persistence plus the
// booking -> invoice entry point.
type BookingService struct {
	DB     *gorm.DB
	Engine *InvoiceEngine
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, Engine: NewInvoiceEngine()}
}

// CreateBookingInput is the validated shape CreateBooking consumes.
// Either RoomID (single room, NumberOfRooms copies) or RoomSelections
// (ordered multi-room entries) must be set.
type CreateBookingInput struct {
	UserID         uint
	PropertyID     uint
	BookingTime    models.Granularity
	CheckinDate    string
	CheckoutDate   string
	CheckinTime    *string
	CheckoutTime   *string
	NumberOfGuests int
	NumberOfRooms  int
	RoomID         *uint
	RoomSelections []models.RoomSelection
	PaymentType    string
}

func parseBookingDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC3339", value)
}

// CreateBooking validates the referenced user/property/rooms and creates
// the booking in one transaction.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	granularity := in.BookingTime
	if granularity == "" {
		granularity = models.GranularityDaily
	}
	if !granularity.Valid() {
		return nil, fmt.Errorf("validation: unsupported booking_time %q", in.BookingTime)
	}
	if granularity == models.GranularityHourly && (in.CheckinTime == nil || in.CheckoutTime == nil) {
		return nil, errors.New("validation: hourly bookings require checkin_time and checkout_time")
	}

	checkin, err := parseBookingDate(in.CheckinDate)
	if err != nil {
		return nil, fmt.Errorf("validation: check-in: %w", err)
	}
	checkout, err := parseBookingDate(in.CheckoutDate)
	if err != nil {
		return nil, fmt.Errorf("validation: check-out: %w", err)
	}
	if checkin == nil || checkout == nil {
		return nil, errors.New("validation: checkin_date and checkout_date are required")
	}
	if !checkout.After(*checkin) && granularity != models.GranularityHourly {
		return nil, errors.New("validation: check-out must be after check-in")
	}

	guests := in.NumberOfGuests
	if guests <= 0 {
		guests = 1
	}

	var user models.HsUser
	if err := s.DB.First(&user, in.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("validation: user not found")
		}
		return nil, fmt.Errorf("db error checking user: %w", err)
	}

	var property models.Property
	if err := s.DB.First(&property, in.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("validation: property not found")
		}
		return nil, fmt.Errorf("db error checking property: %w", err)
	}

	// collect referenced room ids for existence + ownership checks
	roomIDs := make([]uint, 0, len(in.RoomSelections)+1)
	if in.RoomID != nil {
		roomIDs = append(roomIDs, *in.RoomID)
	}
	for _, sel := range in.RoomSelections {
		if sel.Quantity < 0 {
			return nil, fmt.Errorf("validation: negative quantity for room %d", sel.RoomID)
		}
		roomIDs = append(roomIDs, sel.RoomID)
	}
	if len(roomIDs) == 0 {
		return nil, errors.New("validation: no room provided")
	}
	for _, rid := range roomIDs {
		var room models.Room
		if err := s.DB.Where("property_id = ?", in.PropertyID).First(&room, rid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("validation: room %d not found on property %d", rid, in.PropertyID)
			}
			return nil, fmt.Errorf("db error checking room %d: %w", rid, err)
		}
	}

	var selectionsJSON datatypes.JSON
	if len(in.RoomSelections) > 0 {
		entries := make([]map[string]int, 0, len(in.RoomSelections))
		for _, sel := range in.RoomSelections {
			entries = append(entries, map[string]int{fmt.Sprintf("%d", sel.RoomID): sel.Quantity})
		}
		raw, mErr := json.Marshal(entries)
		if mErr != nil {
			return nil, fmt.Errorf("failed to encode room selections: %w", mErr)
		}
		selectionsJSON = datatypes.JSON(raw)
	}

	rooms := in.NumberOfRooms
	if rooms <= 0 {
		rooms = 1
	}

	booking := &models.Booking{
		UserID:         in.UserID,
		PropertyID:     in.PropertyID,
		RoomID:         in.RoomID,
		BookingTime:    granularity,
		CheckinDate:    checkin,
		CheckoutDate:   checkout,
		CheckinTime:    in.CheckinTime,
		CheckoutTime:   in.CheckoutTime,
		NumberOfGuests: guests,
		NumberOfRooms:  rooms,
		RoomSelections: selectionsJSON,
		Status:         "pending",
		PaymentType:    in.PaymentType,
	}
	if booking.PaymentType == "" {
		booking.PaymentType = "upi"
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetBookingDetails(booking.ID)
}

// GetBookingDetails loads a booking with its user, property and the
// property's room collection.
func (s *BookingService) GetBookingDetails(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("User").Preload("Property.Rooms").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking details: %w", err)
	}
	return &booking, nil
}

// GetAllWithRelations lists bookings, newest first.
func (s *BookingService) GetAllWithRelations() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("User").
		Preload("Property").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

// UpdateStatus moves a booking through its lifecycle (pending, confirmed,
// checked_in, checked_out, cancelled, completed, no_show).
func (s *BookingService) UpdateStatus(bookingID uint, status string) error {
	res := s.DB.Model(&models.Booking{}).Where("id = ?", bookingID).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update booking status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete soft-deletes a booking.
func (s *BookingService) Delete(bookingID uint) error {
	res := s.DB.Delete(&models.Booking{}, bookingID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// InvoiceForBooking loads the booking snapshot and runs the computation
// engine over it. Figures always come from current room rates; nothing is
// read from or written to any invoice table.
func (s *BookingService) InvoiceForBooking(bookingID uint) (*models.InvoiceResult, error) {
	booking, err := s.GetBookingDetails(bookingID)
	if err != nil {
		return nil, err
	}
	return s.Engine.Compute(booking, &booking.Property, booking.Property.Rooms)
}
