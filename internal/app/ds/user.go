package ds

import "time"

// User is an admin account. Accounts are bootstrapped on first start and
// never mutated through the API.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Password  string    `gorm:"type:varchar(255);not null"` // bcrypt hash
	Role      string    `gorm:"type:varchar(50);not null;default:'admin'"`
	CreatedAt time.Time `gorm:"not null"`
}
