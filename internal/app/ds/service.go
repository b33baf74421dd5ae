package ds

import "time"

// Service types offered by the company.
const (
	ServiceTypeTravel   = "Travel"
	ServiceTypeLogistik = "Logistik"
	ServiceTypeCharter  = "Charter"
)

// Service is a catalog entry (travel route, logistics line or charter offer).
type Service struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Type        string    `gorm:"type:varchar(50);not null"` // Travel, Logistik, Charter
	Route       string    `gorm:"type:varchar(255);not null"`
	Price       int64     `gorm:"not null"` // price per passenger, whole currency units
	Description string    `gorm:"type:text"`
	Image       *string   `gorm:"type:varchar(500)"` // Nullable
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
