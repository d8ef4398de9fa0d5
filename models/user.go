package models

import (
	"gorm.io/gorm"
)

type HsUser struct {
	gorm.Model

	Name   string `json:"name" gorm:"size:255"`
	Email  string `json:"email" gorm:"uniqueIndex;size:255"`
	Mobile string `json:"mobile" gorm:"size:20"`
}
