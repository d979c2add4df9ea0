package services

import (
	"errors"

	"github.com/linskybing/syncbridge-go/dto"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/repositories"
	"github.com/linskybing/syncbridge-go/utils"
	"gorm.io/gorm"
)

// FunctionService manages the functional requirement line items of a
// form. Items created on a subform are marked changed so the diff is
// visible before a merge.
type FunctionService struct {
	repos *repositories.Repos
}

func NewFunctionService(repos *repositories.Repos) *FunctionService {
	return &FunctionService{repos: repos}
}

func (s *FunctionService) ListByForm(user *models.User, formID uint) ([]models.Function, error) {
	form, err := s.repos.Form.FindByID(formID)
	if err != nil {
		return nil, notFound(err)
	}
	if err := canViewForm(&form, user); err != nil {
		return nil, err
	}
	return s.repos.Function.ListByForm(formID)
}

func (s *FunctionService) Create(user *models.User, formID uint, input dto.CreateFunctionDTO) (models.Function, error) {
	form, err := s.repos.Form.FindByID(formID)
	if err != nil {
		return models.Function{}, notFound(err)
	}
	if err := canAddItem(&form, user); err != nil {
		return models.Function{}, err
	}

	fn := models.Function{
		FormID:      form.ID,
		Name:        input.Name,
		Choice:      models.FunctionChoice(input.Choice),
		Description: input.Description,
		Status:      form.Status,
		Changed:     form.Kind == models.FormKindSub,
	}
	if err := s.repos.Function.Create(&fn); err != nil {
		return models.Function{}, err
	}
	utils.LogAudit(s.repos.Audit, "function", fn.ID, "create", &user.ID, nil, &fn)
	return fn, nil
}

func (s *FunctionService) Update(user *models.User, id uint, input dto.UpdateFunctionDTO) (models.Function, error) {
	fn, err := s.repos.Function.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Function{}, ErrFunctionNotFound
		}
		return models.Function{}, err
	}
	form, err := s.repos.Form.FindByID(fn.FormID)
	if err != nil {
		return models.Function{}, notFound(err)
	}
	if err := canEditItem(&form, user); err != nil {
		return models.Function{}, err
	}

	old := fn
	if input.Name != nil {
		fn.Name = *input.Name
	}
	if input.Choice != nil {
		fn.Choice = models.FunctionChoice(*input.Choice)
	}
	if input.Description != nil {
		fn.Description = *input.Description
	}
	if input.Changed != nil {
		fn.Changed = *input.Changed
	} else if form.Kind == models.FormKindSub {
		fn.Changed = true
	}

	if err := s.repos.Function.Save(&fn); err != nil {
		return models.Function{}, err
	}
	utils.LogAudit(s.repos.Audit, "function", fn.ID, "update", &user.ID, &old, &fn)
	return fn, nil
}

func (s *FunctionService) Delete(user *models.User, id uint) error {
	fn, err := s.repos.Function.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFunctionNotFound
		}
		return err
	}
	form, err := s.repos.Form.FindByID(fn.FormID)
	if err != nil {
		return notFound(err)
	}
	if err := canEditItem(&form, user); err != nil {
		return err
	}
	if err := s.repos.Function.Delete(&fn); err != nil {
		return err
	}
	utils.LogAudit(s.repos.Audit, "function", fn.ID, "delete", &user.ID, &fn, nil)
	return nil
}
