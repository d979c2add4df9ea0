package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/syncbridge-go/dto"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/repositories"
	"github.com/linskybing/syncbridge-go/utils"
	"gorm.io/gorm"
)

type UserService struct {
	repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{repos: repos}
}

func (s *UserService) Register(input dto.RegisterDTO) (models.User, error) {
	if _, err := s.repos.User.FindByEmail(input.Email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        input.Email,
		PasswordHash: hash,
		DisplayName:  input.DisplayName,
		IsActive:     true,
	}
	if err := s.repos.User.Create(&user); err != nil {
		return models.User{}, err
	}
	utils.LogAudit(s.repos.Audit, "user", user.ID, "create", &user.ID, nil,
		map[string]any{"email": user.Email})
	return user, nil
}

func (s *UserService) Login(input dto.LoginDTO) (models.User, error) {
	user, err := s.repos.User.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if !user.IsActive || !utils.VerifyPassword(user.PasswordHash, input.Password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUser(id uint) (models.User, error) {
	user, err := s.repos.User.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// ActivateLicense consumes an unused key and grants its role to the
// caller. A user's role is set once; re-activation with another key
// overwrites it, which is how a client account becomes a developer one.
func (s *UserService) ActivateLicense(user *models.User, input dto.ActivateLicenseDTO) (models.User, error) {
	lic, err := s.repos.License.FindByKey(input.LicenseKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrLicenseNotFound
		}
		return models.User{}, err
	}
	if lic.Status != models.LicenseStatusUnused {
		return models.User{}, ErrLicenseNotUnused
	}

	now := time.Now()
	lic.Status = models.LicenseStatusActive
	lic.UserID = &user.ID
	lic.ActivatedAt = &now
	if err := s.repos.License.Save(&lic); err != nil {
		return models.User{}, err
	}

	role := lic.Role
	user.Role = &role
	if err := s.repos.User.Save(user); err != nil {
		return models.User{}, err
	}
	utils.LogAudit(s.repos.Audit, "license", lic.ID, "update", &user.ID,
		map[string]any{"status": models.LicenseStatusUnused},
		map[string]any{"status": lic.Status, "user_id": user.ID})
	return *user, nil
}

// CreateLicense mints a fresh key for the given role. Admin only,
// enforced at the route.
func (s *UserService) CreateLicense(role models.UserRole, expiresAt *time.Time) (models.License, error) {
	lic := models.License{
		LicenseKey: uuid.NewString(),
		Role:       role,
		Status:     models.LicenseStatusUnused,
		ExpiresAt:  expiresAt,
	}
	if err := s.repos.License.Create(&lic); err != nil {
		return models.License{}, err
	}
	return lic, nil
}
