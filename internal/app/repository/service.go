package repository

import (
	"errors"
	"strings"

	"novitatravel/internal/app/ds"

	"gorm.io/gorm"
)

// ErrServiceHasReservations blocks deletion of a service that is still
// referenced by at least one reservation.
var ErrServiceHasReservations = errors.New("cannot delete service with existing reservations")

// ListServices returns one page of the catalog ordered by creation time
// descending, plus the total row count for the active filter. The search
// term matches name, route and description case-insensitively.
func (r *Repository) ListServices(page, limit int, search, serviceType string) ([]ds.Service, int64, error) {
	filtered := func() *gorm.DB {
		q := r.db.Model(&ds.Service{})
		if search != "" {
			term := "%" + strings.ToLower(search) + "%"
			q = q.Where(
				"LOWER(name) LIKE ? OR LOWER(route) LIKE ? OR LOWER(description) LIKE ?",
				term, term, term,
			)
		}
		if serviceType != "" {
			q = q.Where("type = ?", serviceType)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var services []ds.Service
	err := filtered().
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&services).Error
	if err != nil {
		return nil, 0, err
	}

	return services, total, nil
}

func (r *Repository) GetServiceByID(id uint) (*ds.Service, error) {
	var service ds.Service
	err := r.db.First(&service, id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *Repository) CreateService(service *ds.Service) error {
	return r.db.Create(service).Error
}

// UpdateService replaces the mutable fields of an existing service. Zero
// values (empty description, cleared image, inactive flag) are written
// through, this is a full replace, not a patch.
func (r *Repository) UpdateService(service *ds.Service) error {
	res := r.db.Model(&ds.Service{}).
		Where("id = ?", service.ID).
		Select("name", "type", "route", "price", "description", "image", "is_active").
		Updates(service)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteService removes a service row after checking that no reservation
// references it. The check and the delete are separate statements, two
// concurrent deletes can both pass the check (accepted for this system).
func (r *Repository) DeleteService(id uint) error {
	var count int64
	err := r.db.Model(&ds.Reservation{}).Where("service_id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrServiceHasReservations
	}

	res := r.db.Delete(&ds.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
