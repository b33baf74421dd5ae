package ds

import "time"

// Setting is one key/value row of company configuration. Structured values
// (for example operating hours) are stored JSON-encoded.
type Setting struct {
	ID        uint      `gorm:"primaryKey"`
	Key       string    `gorm:"column:setting_key;type:varchar(100);unique;not null"`
	Value     string    `gorm:"column:setting_value;type:text"`
	UpdatedAt time.Time `gorm:"not null"`
}
