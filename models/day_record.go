package models

import "time"

// DayRecord holds the cumulative nutrition totals for one calendar day.
// There is at most one row per date; writes go through an atomic upsert
// keyed on the date column.
type DayRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Date          string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"date"` // YYYY-MM-DD, local time
	TotalCalories float64   `gorm:"not null;default:0" json:"totalCalories"`
	TotalProtein  float64   `gorm:"not null;default:0" json:"totalProtein"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}
