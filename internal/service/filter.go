package service

import (
	"strings"

	"wardrobe/internal/model"
)

// ClothesFilter narrows a user's clothes. Each set field is an independent
// constraint and the constraints combine as a conjunction; zero values impose
// no constraint. The corpus per user is small, so filtering happens in memory
// over the single list-by-owner read.
type ClothesFilter struct {
	Season     string
	Color      string
	CategoryID uint
	TypeID     uint
}

// Apply returns the records matching every set constraint.
func (f ClothesFilter) Apply(items []model.Clothes) []model.Clothes {
	matched := make([]model.Clothes, 0, len(items))
	for i := range items {
		if f.Matches(&items[i]) {
			matched = append(matched, items[i])
		}
	}
	return matched
}

// Matches reports whether a single record satisfies the filter. Color
// comparison is case-insensitive; season matches on set membership.
func (f ClothesFilter) Matches(c *model.Clothes) bool {
	if f.Season != "" && !c.Season.Contains(f.Season) {
		return false
	}
	if f.Color != "" && !strings.EqualFold(c.Color, f.Color) {
		return false
	}
	if f.CategoryID != 0 && c.CategoryID != f.CategoryID {
		return false
	}
	if f.TypeID != 0 && c.TypeID != f.TypeID {
		return false
	}
	return true
}
