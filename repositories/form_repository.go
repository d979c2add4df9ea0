package repositories

import (
	"github.com/linskybing/syncbridge-go/db"
	"github.com/linskybing/syncbridge-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FormRepo persists forms. Mutate is the serialization point for the
// lifecycle state machine: it runs fn against the form row under a
// row-level write lock and commits form + side effects as one
// transaction.
type FormRepo interface {
	FindByID(id uint) (models.Form, error)
	FindMainBySubformID(subID uint) (models.Form, error)
	ListForUser(user *models.User, page, pageSize int, availableOnly bool) ([]models.Form, int64, error)
	Create(f *models.Form) error
	Save(f *models.Form) error
	Delete(f *models.Form) error
	Mutate(id uint, fn func(tx *gorm.DB, f *models.Form) error) (models.Form, error)
	GetLocked(tx *gorm.DB, id uint) (models.Form, error)
	CreateTx(tx *gorm.DB, f *models.Form) error
	SaveTx(tx *gorm.DB, f *models.Form) error
	DeleteTx(tx *gorm.DB, f *models.Form) error
	ReplaceLineItems(tx *gorm.DB, dstFormID, srcFormID uint) error
}

type DBFormRepo struct{}

func (r *DBFormRepo) FindByID(id uint) (models.Form, error) {
	var form models.Form
	err := db.DB.First(&form, id).Error
	return form, err
}

func (r *DBFormRepo) FindMainBySubformID(subID uint) (models.Form, error) {
	var form models.Form
	err := db.DB.Where("subform_id = ?", subID).First(&form).Error
	return form, err
}

func (r *DBFormRepo) ListForUser(user *models.User, page, pageSize int, availableOnly bool) ([]models.Form, int64, error) {
	query := db.DB.Model(&models.Form{})

	switch {
	case user.HasRole(models.UserRoleClient):
		query = query.Where("user_id = ?", user.ID)
	case user.HasRole(models.UserRoleDeveloper):
		if availableOnly {
			query = query.Where("status = ?", models.FormStatusAvailable)
		} else {
			query = query.Where("developer_id = ? AND status IN ?", user.ID, []models.FormStatus{
				models.FormStatusProcessing,
				models.FormStatusRewrite,
				models.FormStatusEnd,
				models.FormStatusError,
			})
		}
	default:
		if availableOnly {
			query = query.Where("status = ?", models.FormStatusAvailable)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	var forms []models.Form
	err := query.Order("created_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&forms).Error
	return forms, total, err
}

func (r *DBFormRepo) Create(f *models.Form) error {
	return db.DB.Create(f).Error
}

func (r *DBFormRepo) Save(f *models.Form) error {
	return db.DB.Save(f).Error
}

func (r *DBFormRepo) Delete(f *models.Form) error {
	return db.DB.Delete(f).Error
}

func (r *DBFormRepo) Mutate(id uint, fn func(tx *gorm.DB, f *models.Form) error) (models.Form, error) {
	var form models.Form
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		form, err = r.GetLocked(tx, id)
		if err != nil {
			return err
		}
		if err := fn(tx, &form); err != nil {
			return err
		}
		return tx.Save(&form).Error
	})
	return form, err
}

func (r *DBFormRepo) GetLocked(tx *gorm.DB, id uint) (models.Form, error) {
	var form models.Form
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&form, id).Error
	return form, err
}

func (r *DBFormRepo) CreateTx(tx *gorm.DB, f *models.Form) error {
	return tx.Create(f).Error
}

func (r *DBFormRepo) SaveTx(tx *gorm.DB, f *models.Form) error {
	return tx.Save(f).Error
}

func (r *DBFormRepo) DeleteTx(tx *gorm.DB, f *models.Form) error {
	return tx.Delete(f).Error
}

// ReplaceLineItems drops the destination form's line items and copies
// the source form's onto it, resetting the changed markers.
func (r *DBFormRepo) ReplaceLineItems(tx *gorm.DB, dstFormID, srcFormID uint) error {
	if err := tx.Where("form_id = ?", dstFormID).Delete(&models.Function{}).Error; err != nil {
		return err
	}
	if err := tx.Where("form_id = ?", dstFormID).Delete(&models.NonFunction{}).Error; err != nil {
		return err
	}

	var fns []models.Function
	if err := tx.Where("form_id = ?", srcFormID).Find(&fns).Error; err != nil {
		return err
	}
	for i := range fns {
		fn := fns[i]
		fn.ID = 0
		fn.FormID = dstFormID
		fn.Changed = false
		if err := tx.Create(&fn).Error; err != nil {
			return err
		}
	}

	var nfs []models.NonFunction
	if err := tx.Where("form_id = ?", srcFormID).Find(&nfs).Error; err != nil {
		return err
	}
	for i := range nfs {
		nf := nfs[i]
		nf.ID = 0
		nf.FormID = dstFormID
		nf.Changed = false
		if err := tx.Create(&nf).Error; err != nil {
			return err
		}
	}
	return nil
}
