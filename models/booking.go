package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID     uint  `gorm:"index;column:user_id" json:"user_id"`
	PropertyID uint  `gorm:"index;column:property_id" json:"property_id"`
	RoomID     *uint `gorm:"column:room_id;index" json:"room,omitempty"`

	// hourly | daily | monthly | yearly
	BookingTime Granularity `gorm:"column:booking_time;size:20;default:daily" json:"booking_time"`

	CheckinDate  *time.Time `gorm:"column:checkin_date" json:"checkin_date,omitempty"`
	CheckoutDate *time.Time `gorm:"column:checkout_date" json:"checkout_date,omitempty"`

	// clock times, "15:00:00" style, hourly bookings only
	CheckinTime  *string `gorm:"column:checkin_time;size:16" json:"checkin_time,omitempty"`
	CheckoutTime *string `gorm:"column:checkout_time;size:16" json:"checkout_time,omitempty"`

	NumberOfGuests int `gorm:"column:number_of_guests;default:1" json:"number_of_guests"`
	NumberOfRooms  int `gorm:"column:number_of_rooms;default:1" json:"number_of_rooms"`

	// multi-room bookings: JSON array of {"<room id>": quantity} entries,
	// the array order is the billing order on the invoice
	RoomSelections datatypes.JSON `gorm:"column:booking_room_types" json:"booking_room_types,omitempty"`

	Status      string `gorm:"column:status;size:20;default:pending" json:"status"`
	PaymentType string `gorm:"column:payment_type;size:20;default:upi" json:"payment_type"`

	User     HsUser   `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"property,omitempty"`
}

// RoomSelection is one billable room entry of a booking.
type RoomSelection struct {
	RoomID   uint `json:"room_id"`
	Quantity int  `json:"quantity"`
}

// Selections expands a booking into its ordered room entries. Multi-room
// bookings come from the RoomSelections JSON column; single-room bookings
// fall back to RoomID with NumberOfRooms as quantity (default 1).
func (b *Booking) Selections() ([]RoomSelection, error) {
	if len(b.RoomSelections) > 0 {
		var raw []map[string]int
		if err := json.Unmarshal(b.RoomSelections, &raw); err != nil {
			return nil, fmt.Errorf("invalid booking_room_types payload: %w", err)
		}
		out := make([]RoomSelection, 0, len(raw))
		for _, entry := range raw {
			keys := make([]string, 0, len(entry))
			for k := range entry {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				var id uint
				if _, err := fmt.Sscanf(k, "%d", &id); err != nil {
					return nil, fmt.Errorf("invalid room id %q in booking_room_types", k)
				}
				out = append(out, RoomSelection{RoomID: id, Quantity: entry[k]})
			}
		}
		return out, nil
	}

	if b.RoomID != nil {
		qty := b.NumberOfRooms
		if qty <= 0 {
			qty = 1
		}
		return []RoomSelection{{RoomID: *b.RoomID, Quantity: qty}}, nil
	}

	return nil, nil
}
