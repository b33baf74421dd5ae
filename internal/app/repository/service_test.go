package repository

import (
	"fmt"
	"testing"
	"time"

	"novitatravel/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedServices(t *testing.T, repo *Repository, n int) []ds.Service {
	t.Helper()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	services := make([]ds.Service, n)
	for i := 0; i < n; i++ {
		services[i] = ds.Service{
			Name:      fmt.Sprintf("Travel Route %02d", i),
			Type:      ds.ServiceTypeTravel,
			Route:     fmt.Sprintf("Samarinda - Kota %02d", i),
			Price:     int64(50000 + i*1000),
			IsActive:  true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.CreateService(&services[i]))
	}
	return services
}

func TestCreateAndGetService(t *testing.T) {
	repo := newTestRepository(t)

	image := "img-123-abcd.jpg"
	service := ds.Service{
		Name:        "Travel Samarinda - Balikpapan",
		Type:        ds.ServiceTypeTravel,
		Route:       "Samarinda - Balikpapan",
		Price:       75000,
		Description: "Layanan travel nyaman",
		Image:       &image,
		IsActive:    true,
	}
	require.NoError(t, repo.CreateService(&service))
	require.NotZero(t, service.ID)

	got, err := repo.GetServiceByID(service.ID)
	require.NoError(t, err)
	assert.Equal(t, service.Name, got.Name)
	assert.Equal(t, service.Type, got.Type)
	assert.Equal(t, service.Route, got.Route)
	assert.Equal(t, service.Price, got.Price)
	assert.Equal(t, service.Description, got.Description)
	require.NotNil(t, got.Image)
	assert.Equal(t, image, *got.Image)
	assert.True(t, got.IsActive)
}

func TestGetServiceNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetServiceByID(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListServicesPagination(t *testing.T) {
	repo := newTestRepository(t)
	const n, pageSize = 23, 10
	seedServices(t, repo, n)

	wantPages := (n + pageSize - 1) / pageSize

	seen := map[uint]bool{}
	var lastCreated time.Time
	for page := 1; page <= wantPages; page++ {
		services, total, err := repo.ListServices(page, pageSize, "", "")
		require.NoError(t, err)
		assert.EqualValues(t, n, total)

		for _, s := range services {
			assert.False(t, seen[s.ID], "service %d returned twice", s.ID)
			seen[s.ID] = true
			if !lastCreated.IsZero() {
				assert.False(t, s.CreatedAt.After(lastCreated), "results not ordered newest first")
			}
			lastCreated = s.CreatedAt
		}
	}
	assert.Len(t, seen, n, "concatenated pages must cover every service exactly once")

	beyond, _, err := repo.ListServices(wantPages+1, pageSize, "", "")
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestListServicesSearchAndTypeFilter(t *testing.T) {
	repo := newTestRepository(t)

	services := []ds.Service{
		{Name: "Travel Samarinda - Balikpapan", Type: ds.ServiceTypeTravel, Route: "Samarinda - Balikpapan", Price: 75000, IsActive: true},
		{Name: "Pengiriman Barang Express", Type: ds.ServiceTypeLogistik, Route: "Samarinda - Balikpapan", Price: 25000, IsActive: true},
		{Name: "Charter Bus Wisata", Type: ds.ServiceTypeCharter, Route: "Flexible Route", Price: 800000, Description: "Sewa bus study tour", IsActive: true},
	}
	for i := range services {
		require.NoError(t, repo.CreateService(&services[i]))
	}

	// Case-insensitive substring over name, route and description.
	found, total, err := repo.ListServices(1, 10, "BALIKPAPAN", "")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, found, 2)

	found, total, err = repo.ListServices(1, 10, "study tour", "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Charter Bus Wisata", found[0].Name)

	// Exact type filter.
	found, total, err = repo.ListServices(1, 10, "", ds.ServiceTypeLogistik)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Pengiriman Barang Express", found[0].Name)

	// Combined.
	found, _, err = repo.ListServices(1, 10, "balikpapan", ds.ServiceTypeTravel)
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "Travel Samarinda - Balikpapan", found[0].Name)
}

func TestUpdateServiceFullReplace(t *testing.T) {
	repo := newTestRepository(t)

	image := "img-1.jpg"
	service := ds.Service{
		Name:        "Travel Samarinda - Bontang",
		Type:        ds.ServiceTypeTravel,
		Route:       "Samarinda - Bontang",
		Price:       100000,
		Description: "old",
		Image:       &image,
		IsActive:    true,
	}
	require.NoError(t, repo.CreateService(&service))

	// Zero values must be written through: empty description, cleared
	// image, inactive flag.
	updated := ds.Service{
		ID:       service.ID,
		Name:     "Travel Samarinda - Bontang Express",
		Type:     ds.ServiceTypeTravel,
		Route:    "Samarinda - Bontang",
		Price:    120000,
		IsActive: false,
	}
	require.NoError(t, repo.UpdateService(&updated))

	got, err := repo.GetServiceByID(service.ID)
	require.NoError(t, err)
	assert.Equal(t, "Travel Samarinda - Bontang Express", got.Name)
	assert.EqualValues(t, 120000, got.Price)
	assert.Empty(t, got.Description)
	assert.Nil(t, got.Image)
	assert.False(t, got.IsActive)
}

func TestUpdateServiceNotFound(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.UpdateService(&ds.Service{ID: 42, Name: "x", Type: ds.ServiceTypeTravel, Route: "y"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteServiceReferentialGuard(t *testing.T) {
	repo := newTestRepository(t)

	service := ds.Service{Name: "Travel A", Type: ds.ServiceTypeTravel, Route: "X-Y", Price: 75000, IsActive: true}
	require.NoError(t, repo.CreateService(&service))

	reservation := ds.Reservation{
		ServiceID:     service.ID,
		CustomerName:  "Budi",
		CustomerEmail: "budi@example.com",
		CustomerPhone: "08123",
		TravelDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Passengers:    3,
		PaymentMethod: "cash",
		TotalPrice:    225000,
		Status:        ds.StatusPending,
	}
	require.NoError(t, repo.CreateReservation(&reservation))

	err := repo.DeleteService(service.ID)
	assert.ErrorIs(t, err, ErrServiceHasReservations)

	// Still present.
	_, err = repo.GetServiceByID(service.ID)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteReservation(reservation.ID))
	require.NoError(t, repo.DeleteService(service.ID))

	_, err = repo.GetServiceByID(service.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteServiceNotFound(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.DeleteService(99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
