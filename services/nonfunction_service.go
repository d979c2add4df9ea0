package services

import (
	"errors"

	"github.com/linskybing/syncbridge-go/dto"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/repositories"
	"github.com/linskybing/syncbridge-go/utils"
	"gorm.io/gorm"
)

type NonFunctionService struct {
	repos *repositories.Repos
}

func NewNonFunctionService(repos *repositories.Repos) *NonFunctionService {
	return &NonFunctionService{repos: repos}
}

func (s *NonFunctionService) ListByForm(user *models.User, formID uint) ([]models.NonFunction, error) {
	form, err := s.repos.Form.FindByID(formID)
	if err != nil {
		return nil, notFound(err)
	}
	if err := canViewForm(&form, user); err != nil {
		return nil, err
	}
	return s.repos.NonFunction.ListByForm(formID)
}

func (s *NonFunctionService) Create(user *models.User, formID uint, input dto.CreateNonFunctionDTO) (models.NonFunction, error) {
	form, err := s.repos.Form.FindByID(formID)
	if err != nil {
		return models.NonFunction{}, notFound(err)
	}
	if err := canAddItem(&form, user); err != nil {
		return models.NonFunction{}, err
	}

	nf := models.NonFunction{
		FormID:      form.ID,
		Name:        input.Name,
		Level:       models.NonFunctionLevel(input.Level),
		Description: input.Description,
		Status:      form.Status,
		Changed:     form.Kind == models.FormKindSub,
	}
	if err := s.repos.NonFunction.Create(&nf); err != nil {
		return models.NonFunction{}, err
	}
	utils.LogAudit(s.repos.Audit, "nonfunction", nf.ID, "create", &user.ID, nil, &nf)
	return nf, nil
}

func (s *NonFunctionService) Update(user *models.User, id uint, input dto.UpdateNonFunctionDTO) (models.NonFunction, error) {
	nf, err := s.repos.NonFunction.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NonFunction{}, ErrFunctionNotFound
		}
		return models.NonFunction{}, err
	}
	form, err := s.repos.Form.FindByID(nf.FormID)
	if err != nil {
		return models.NonFunction{}, notFound(err)
	}
	if err := canEditItem(&form, user); err != nil {
		return models.NonFunction{}, err
	}

	old := nf
	if input.Name != nil {
		nf.Name = *input.Name
	}
	if input.Level != nil {
		nf.Level = models.NonFunctionLevel(*input.Level)
	}
	if input.Description != nil {
		nf.Description = *input.Description
	}
	if input.Changed != nil {
		nf.Changed = *input.Changed
	} else if form.Kind == models.FormKindSub {
		nf.Changed = true
	}

	if err := s.repos.NonFunction.Save(&nf); err != nil {
		return models.NonFunction{}, err
	}
	utils.LogAudit(s.repos.Audit, "nonfunction", nf.ID, "update", &user.ID, &old, &nf)
	return nf, nil
}

func (s *NonFunctionService) Delete(user *models.User, id uint) error {
	nf, err := s.repos.NonFunction.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFunctionNotFound
		}
		return err
	}
	form, err := s.repos.Form.FindByID(nf.FormID)
	if err != nil {
		return notFound(err)
	}
	if err := canEditItem(&form, user); err != nil {
		return err
	}
	if err := s.repos.NonFunction.Delete(&nf); err != nil {
		return err
	}
	utils.LogAudit(s.repos.Audit, "nonfunction", nf.ID, "delete", &user.ID, &nf, nil)
	return nil
}
