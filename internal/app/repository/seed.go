package repository

import (
	"encoding/json"

	"novitatravel/internal/app/ds"
	"novitatravel/internal/app/role"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

// EnsureAdmin creates the bootstrap admin account when no admin exists.
// The password is stored as a bcrypt hash.
func (r *Repository) EnsureAdmin(email, password string) error {
	var count int64
	err := r.db.Model(&ds.User{}).Where("role = ?", string(role.Admin)).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.CreateUser(email, string(hash), string(role.Admin))
	if err != nil {
		return err
	}

	logrus.Infof("Default admin user created: %s", email)
	return nil
}

// SeedDefaults inserts the default company settings (only keys that are
// missing) and, when the catalog is empty, a set of sample services.
func (r *Repository) SeedDefaults() error {
	operatingHours, _ := json.Marshal(map[string]string{
		"weekdays": "06:00 - 22:00",
		"weekends": "07:00 - 20:00",
	})

	defaultSettings := []ds.Setting{
		{Key: "companyName", Value: "PT NOVITA TRAVEL"},
		{Key: "address", Value: "Jl. Mugirejo, Mugirejo, Kec. Sungai Pinang, Kota Samarinda, Kalimantan Timur 75119"},
		{Key: "phone", Value: "+62 123 456 789"},
		{Key: "email", Value: "info@novitatravel.com"},
		{Key: "whatsapp", Value: "+62 812 3456 789"},
		{Key: "facebook", Value: "Novita Transpot Samarinda"},
		{Key: "operatingHours", Value: string(operatingHours)},
		{Key: "aboutUs", Value: "PT Novita Travel adalah perusahaan transportasi terpercaya yang telah melayani masyarakat Kalimantan Timur sejak 2010."},
		{Key: "vision", Value: "Menjadi perusahaan transportasi dan logistik terdepan di Kalimantan Timur."},
		{Key: "mission", Value: "Memberikan layanan transportasi yang aman, nyaman, dan terpercaya."},
	}

	for _, setting := range defaultSettings {
		err := r.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoNothing: true,
		}).Create(&setting).Error
		if err != nil {
			return err
		}
	}

	var count int64
	if err := r.db.Model(&ds.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sampleServices := []ds.Service{
		{Name: "Travel Samarinda - Balikpapan", Type: ds.ServiceTypeTravel, Route: "Samarinda - Balikpapan", Price: 75000, Description: "Layanan travel nyaman dengan AC dan driver berpengalaman untuk rute Samarinda - Balikpapan. Berangkat setiap hari mulai pukul 06:00 WIB.", IsActive: true},
		{Name: "Travel Samarinda - Bontang", Type: ds.ServiceTypeTravel, Route: "Samarinda - Bontang", Price: 100000, Description: "Layanan travel door to door untuk rute Samarinda - Bontang. Armada terawat dengan fasilitas lengkap.", IsActive: true},
		{Name: "Pengiriman Barang Express", Type: ds.ServiceTypeLogistik, Route: "Samarinda - Balikpapan", Price: 25000, Description: "Layanan pengiriman barang cepat dan aman. Barang sampai di hari yang sama untuk pengiriman sebelum jam 12 siang.", IsActive: true},
		{Name: "Charter Bus Wisata", Type: ds.ServiceTypeCharter, Route: "Flexible Route", Price: 800000, Description: "Sewa bus untuk keperluan wisata, study tour, atau acara perusahaan. Kapasitas 25-45 penumpang dengan driver berpengalaman.", IsActive: true},
		{Name: "Travel Samarinda - Kutai Kartanegara", Type: ds.ServiceTypeTravel, Route: "Samarinda - Kutai Kartanegara", Price: 50000, Description: "Layanan travel ekonomis untuk rute Samarinda - Kutai Kartanegara. Berangkat setiap 2 jam sekali.", IsActive: true},
		{Name: "Pengiriman Dokumen Same Day", Type: ds.ServiceTypeLogistik, Route: "Dalam Kota Samarinda", Price: 15000, Description: "Layanan pengiriman dokumen penting di hari yang sama. Garansi sampai tepat waktu dengan tracking real-time.", IsActive: true},
	}

	for i := range sampleServices {
		if err := r.db.Create(&sampleServices[i]).Error; err != nil {
			return err
		}
	}

	logrus.Info("Sample services inserted")
	return nil
}
