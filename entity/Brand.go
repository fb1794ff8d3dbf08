package entity

import (
	"gorm.io/gorm"
)

type Brand struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`

	Products []Product `json:"-"`
}
