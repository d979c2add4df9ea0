package repositories

import (
	"github.com/linskybing/syncbridge-go/db"
	"github.com/linskybing/syncbridge-go/models"
)

type LicenseRepo interface {
	FindByKey(key string) (models.License, error)
	Create(l *models.License) error
	Save(l *models.License) error
}

type DBLicenseRepo struct{}

func (r *DBLicenseRepo) FindByKey(key string) (models.License, error) {
	var lic models.License
	err := db.DB.Where("license_key = ?", key).First(&lic).Error
	return lic, err
}

func (r *DBLicenseRepo) Create(l *models.License) error {
	return db.DB.Create(l).Error
}

func (r *DBLicenseRepo) Save(l *models.License) error {
	return db.DB.Save(l).Error
}
