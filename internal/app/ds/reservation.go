package ds

import "time"

// Reservation statuses. Any status may move to any other, the admin panel
// drives the transitions.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Reservation is a booking submitted by a customer for one service.
// TotalPrice is frozen at creation time, later price changes on the
// service do not touch existing reservations.
type Reservation struct {
	ID              uint      `gorm:"primaryKey"`
	ServiceID       uint      `gorm:"not null;index"`
	CustomerName    string    `gorm:"type:varchar(255);not null"`
	CustomerEmail   string    `gorm:"type:varchar(255);not null"`
	CustomerPhone   string    `gorm:"type:varchar(50);not null"`
	TravelDate      time.Time `gorm:"type:date;not null"`
	Passengers      int       `gorm:"not null;default:1"`
	PickupLocation  *string   `gorm:"type:text"`
	DropoffLocation *string   `gorm:"type:text"`
	Notes           *string   `gorm:"type:text"`
	PaymentMethod   string    `gorm:"type:varchar(50);not null"`
	TotalPrice      int64     `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`

	Service Service `gorm:"foreignKey:ServiceID"`
}
