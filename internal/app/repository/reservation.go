package repository

import (
	"strings"
	"time"

	"novitatravel/internal/app/ds"

	"gorm.io/gorm"
)

// ReservationRow is a reservation denormalized with the name and route of
// its service for list views. The join is a LEFT JOIN, so both fields are
// empty when the service row is gone.
type ReservationRow struct {
	ID              uint
	ServiceID       uint
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	TravelDate      time.Time
	Passengers      int
	PickupLocation  *string
	DropoffLocation *string
	Notes           *string
	PaymentMethod   string
	TotalPrice      int64
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ServiceName     string
	ServiceRoute    string
}

// ListReservations returns one page of reservations joined with service
// name/route, newest first. The search term matches customer name, email
// and phone.
func (r *Repository) ListReservations(page, limit int, search, status string) ([]ReservationRow, int64, error) {
	filtered := func() *gorm.DB {
		q := r.db.Model(&ds.Reservation{})
		if search != "" {
			term := "%" + strings.ToLower(search) + "%"
			q = q.Where(
				"LOWER(customer_name) LIKE ? OR LOWER(customer_email) LIKE ? OR LOWER(customer_phone) LIKE ?",
				term, term, term,
			)
		}
		if status != "" {
			q = q.Where("reservations.status = ?", status)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []ReservationRow
	err := filtered().
		Select("reservations.*, COALESCE(services.name, '') AS service_name, COALESCE(services.route, '') AS service_route").
		Joins("LEFT JOIN services ON services.id = reservations.service_id").
		Order("reservations.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *Repository) CreateReservation(reservation *ds.Reservation) error {
	return r.db.Create(reservation).Error
}

func (r *Repository) UpdateReservationStatus(id uint, status string) error {
	res := r.db.Model(&ds.Reservation{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) DeleteReservation(id uint) error {
	res := r.db.Delete(&ds.Reservation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
