package repositories

import (
	"github.com/linskybing/syncbridge-go/db"
	"github.com/linskybing/syncbridge-go/models"
)

type FunctionRepo interface {
	ListByForm(formID uint) ([]models.Function, error)
	FindByID(id uint) (models.Function, error)
	Create(fn *models.Function) error
	Save(fn *models.Function) error
	Delete(fn *models.Function) error
}

type DBFunctionRepo struct{}

func (r *DBFunctionRepo) ListByForm(formID uint) ([]models.Function, error) {
	var fns []models.Function
	err := db.DB.Where("form_id = ?", formID).Order("id asc").Find(&fns).Error
	return fns, err
}

func (r *DBFunctionRepo) FindByID(id uint) (models.Function, error) {
	var fn models.Function
	err := db.DB.First(&fn, id).Error
	return fn, err
}

func (r *DBFunctionRepo) Create(fn *models.Function) error {
	return db.DB.Create(fn).Error
}

func (r *DBFunctionRepo) Save(fn *models.Function) error {
	return db.DB.Save(fn).Error
}

func (r *DBFunctionRepo) Delete(fn *models.Function) error {
	return db.DB.Delete(fn).Error
}
