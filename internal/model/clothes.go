package model

import (
	"slices"
	"time"
)

// SeasonList is the unordered set of season labels a clothes record applies
// to. Persisted as a JSON array column.
type SeasonList []string

// Contains reports whether season is a member of the set.
func (s SeasonList) Contains(season string) bool {
	return slices.Contains(s, season)
}

// Clothes represents a single clothing item. Every record belongs to exactly
// one user; UserID is set at creation and never changes.
type Clothes struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"not null;index"`
	CategoryID uint       `json:"category_id" gorm:"not null;index"`
	TypeID     uint       `json:"type_id" gorm:"not null;index"`
	Name       string     `json:"name" gorm:"size:255;not null"`
	Color      string     `json:"color" gorm:"size:50"`
	Season     SeasonList `json:"season" gorm:"type:json;serializer:json"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relations, preloaded for the denormalized list/detail view.
	Category Category `json:"-" gorm:"foreignKey:CategoryID"`
	Type     Type     `json:"-" gorm:"foreignKey:TypeID"`
}

// TableName keeps the uninflectable plural explicit.
func (Clothes) TableName() string {
	return "clothes"
}

// OwnedBy reports whether user is the record's owner. This predicate gates
// every single-record read and write.
func (c *Clothes) OwnedBy(user *User) bool {
	return user != nil && c.UserID == user.ID
}
