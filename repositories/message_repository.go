package repositories

import (
	"github.com/linskybing/syncbridge-go/db"
	"github.com/linskybing/syncbridge-go/models"
)

type MessageRepo interface {
	ListByBlock(blockID uint) ([]models.Message, error)
	FindByID(id uint) (models.Message, error)
	Create(m *models.Message) error
	Save(m *models.Message) error
	Delete(m *models.Message) error
}

type DBMessageRepo struct{}

func (r *DBMessageRepo) ListByBlock(blockID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := db.DB.Where("block_id = ?", blockID).Preload("Files").Order("created_at asc").Find(&msgs).Error
	return msgs, err
}

func (r *DBMessageRepo) FindByID(id uint) (models.Message, error) {
	var msg models.Message
	err := db.DB.Preload("Files").First(&msg, id).Error
	return msg, err
}

func (r *DBMessageRepo) Create(m *models.Message) error {
	return db.DB.Create(m).Error
}

func (r *DBMessageRepo) Save(m *models.Message) error {
	return db.DB.Save(m).Error
}

func (r *DBMessageRepo) Delete(m *models.Message) error {
	return db.DB.Delete(m).Error
}
