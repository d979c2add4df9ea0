package repositories

import (
	"github.com/linskybing/syncbridge-go/db"
	"github.com/linskybing/syncbridge-go/models"
)

type UserRepo interface {
	FindByEmail(email string) (models.User, error)
	FindByID(id uint) (models.User, error)
	Create(u *models.User) error
	Save(u *models.User) error
}

type DBUserRepo struct{}

func (r *DBUserRepo) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := db.DB.Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *DBUserRepo) FindByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) Create(u *models.User) error {
	return db.DB.Create(u).Error
}

func (r *DBUserRepo) Save(u *models.User) error {
	return db.DB.Save(u).Error
}
