package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	PropertyID uint   `gorm:"index;column:property_id" json:"property_id"`
	Name       string `json:"name" gorm:"size:255"`

	// Rates are optional per billing granularity. A room only needs the
	// rates for the granularities it is actually booked under; missing
	// rates degrade to a flagged zero-amount invoice line.
	HourlyRate  *float64 `json:"hourly_rate,omitempty" gorm:"column:hourly_rate"`
	DailyRate   *float64 `json:"daily_rate,omitempty" gorm:"column:daily_rate"`
	MonthlyRate *float64 `json:"monthly_rate,omitempty" gorm:"column:monthly_rate"`
	YearlyRate  *float64 `json:"yearly_rate,omitempty" gorm:"column:yearly_rate"`

	// percentage, 0-100; absent means no discount
	Discount *float64 `json:"discount,omitempty" gorm:"column:discount"`

	MaxOccupancy int    `json:"max_occupancy" gorm:"column:max_occupancy;default:2"`
	Description  string `json:"description" gorm:"type:text"`

	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"-"`
}

// DiscountPercent returns the room discount, defaulting to 0 when absent.
func (r *Room) DiscountPercent() float64 {
	if r.Discount == nil {
		return 0
	}
	return *r.Discount
}
