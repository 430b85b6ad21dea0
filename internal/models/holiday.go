package models

import (
	"time"
)

// Holiday is one declared organizational holiday.
type Holiday struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Date      time.Time `gorm:"type:date;uniqueIndex" json:"date"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}
