package repositories

import (
	"github.com/linskybing/syncbridge-go/db"
	"github.com/linskybing/syncbridge-go/models"
)

type FileRepo interface {
	FindByID(id uint) (models.File, error)
	ListByMessage(messageID uint) ([]models.File, error)
	Create(f *models.File) error
	Delete(f *models.File) error
}

type DBFileRepo struct{}

func (r *DBFileRepo) FindByID(id uint) (models.File, error) {
	var file models.File
	err := db.DB.First(&file, id).Error
	return file, err
}

func (r *DBFileRepo) ListByMessage(messageID uint) ([]models.File, error) {
	var files []models.File
	err := db.DB.Where("message_id = ?", messageID).Find(&files).Error
	return files, err
}

func (r *DBFileRepo) Create(f *models.File) error {
	return db.DB.Create(f).Error
}

func (r *DBFileRepo) Delete(f *models.File) error {
	return db.DB.Delete(f).Error
}
