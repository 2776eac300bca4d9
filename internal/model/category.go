package model

import "time"

// Category is a shared, globally unique grouping for clothes. Categories are
// not per-user; any caller may register one and none are ever deleted.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
