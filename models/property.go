package models

import (
	"gorm.io/gorm"
)

// PropertyType changes how monthly line amounts are computed: hostel
// monthly stays bill per bed (scaled by guest count), hotel stays do not.
type PropertyType string

const (
	PropertyHotel  PropertyType = "hotel"
	PropertyHostel PropertyType = "hostel"
)

type Property struct {
	gorm.Model

	Name         string       `json:"name" gorm:"size:255"`
	Description  string       `json:"description" gorm:"type:text"`
	Location     string       `json:"location" gorm:"size:500"`
	Area         string       `json:"area" gorm:"size:255"`
	City         string       `json:"city" gorm:"size:100"`
	State        string       `json:"state" gorm:"size:100"`
	Country      string       `json:"country" gorm:"size:100"`
	PropertyType PropertyType `json:"property_type" gorm:"column:property_type;size:20;default:hotel"`

	Rooms []Room `gorm:"foreignKey:PropertyID" json:"rooms"`
}
