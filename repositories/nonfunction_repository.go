package repositories

import (
	"github.com/linskybing/syncbridge-go/db"
	"github.com/linskybing/syncbridge-go/models"
)

type NonFunctionRepo interface {
	ListByForm(formID uint) ([]models.NonFunction, error)
	FindByID(id uint) (models.NonFunction, error)
	Create(nf *models.NonFunction) error
	Save(nf *models.NonFunction) error
	Delete(nf *models.NonFunction) error
}

type DBNonFunctionRepo struct{}

func (r *DBNonFunctionRepo) ListByForm(formID uint) ([]models.NonFunction, error) {
	var nfs []models.NonFunction
	err := db.DB.Where("form_id = ?", formID).Order("id asc").Find(&nfs).Error
	return nfs, err
}

func (r *DBNonFunctionRepo) FindByID(id uint) (models.NonFunction, error) {
	var nf models.NonFunction
	err := db.DB.First(&nf, id).Error
	return nf, err
}

func (r *DBNonFunctionRepo) Create(nf *models.NonFunction) error {
	return db.DB.Create(nf).Error
}

func (r *DBNonFunctionRepo) Save(nf *models.NonFunction) error {
	return db.DB.Save(nf).Error
}

func (r *DBNonFunctionRepo) Delete(nf *models.NonFunction) error {
	return db.DB.Delete(nf).Error
}
