package services

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/syncbridge-go/dto"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/repositories"
	"github.com/linskybing/syncbridge-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------

func setupUserServiceMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo, *mock_repositories.MockLicenseRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	mockLicense := mock_repositories.NewMockLicenseRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil).AnyTimes()

	repos := &repositories.Repos{
		User:    mockUser,
		License: mockLicense,
		Audit:   mockAudit,
	}
	svc := NewUserService(repos)
	return svc, mockUser, mockLicense
}

// --------------------- Register ---------------------

func TestRegister_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByEmail("alice@test.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		u.ID = 1
		return nil
	})

	user, err := svc.Register(dto.RegisterDTO{
		Email: "alice@test.com", Password: "123456", DisplayName: "Alice",
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice@test.com", user.Email)
	assert.Nil(t, user.Role, "a fresh account has no role until a license is activated")
	assert.True(t, user.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("123456")))
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByEmail("alice@test.com").Return(models.User{ID: 1}, nil)

	_, err := svc.Register(dto.RegisterDTO{Email: "alice@test.com", Password: "123456", DisplayName: "Alice"})
	assert.Equal(t, ErrEmailTaken, err)
}

// --------------------- Login ---------------------

func TestLogin_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{ID: 1, Email: "bob@test.com", PasswordHash: string(hashed), IsActive: true}
	mockUser.EXPECT().FindByEmail("bob@test.com").Return(user, nil)

	got, err := svc.Login(dto.LoginDTO{Email: "bob@test.com", Password: "123456"})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), got.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{ID: 1, Email: "bob@test.com", PasswordHash: string(hashed), IsActive: true}
	mockUser.EXPECT().FindByEmail("bob@test.com").Return(user, nil)

	_, err := svc.Login(dto.LoginDTO{Email: "bob@test.com", Password: "wrong"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByEmail("nobody@test.com").Return(models.User{}, gorm.ErrRecordNotFound)

	_, err := svc.Login(dto.LoginDTO{Email: "nobody@test.com", Password: "123456"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{ID: 1, Email: "bob@test.com", PasswordHash: string(hashed), IsActive: false}
	mockUser.EXPECT().FindByEmail("bob@test.com").Return(user, nil)

	_, err := svc.Login(dto.LoginDTO{Email: "bob@test.com", Password: "123456"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- ActivateLicense ---------------------

func TestActivateLicense_GrantsRole(t *testing.T) {
	svc, mockUser, mockLicense := setupUserServiceMocks(t)
	user := models.User{ID: 1, Email: "carol@test.com", IsActive: true}

	lic := models.License{ID: 7, LicenseKey: "key-1", Role: models.UserRoleDeveloper, Status: models.LicenseStatusUnused}
	mockLicense.EXPECT().FindByKey("key-1").Return(lic, nil)
	mockLicense.EXPECT().Save(gomock.Any()).DoAndReturn(func(l *models.License) error {
		assert.Equal(t, models.LicenseStatusActive, l.Status)
		assert.Equal(t, uint(1), *l.UserID)
		assert.NotNil(t, l.ActivatedAt)
		return nil
	})
	mockUser.EXPECT().Save(gomock.Any()).Return(nil)

	updated, err := svc.ActivateLicense(&user, dto.ActivateLicenseDTO{LicenseKey: "key-1"})
	assert.NoError(t, err)
	if assert.NotNil(t, updated.Role) {
		assert.Equal(t, models.UserRoleDeveloper, *updated.Role)
	}
}

func TestActivateLicense_UsedKeyRejected(t *testing.T) {
	svc, _, mockLicense := setupUserServiceMocks(t)
	user := models.User{ID: 1, IsActive: true}

	lic := models.License{ID: 7, LicenseKey: "key-1", Role: models.UserRoleClient, Status: models.LicenseStatusActive}
	mockLicense.EXPECT().FindByKey("key-1").Return(lic, nil)

	_, err := svc.ActivateLicense(&user, dto.ActivateLicenseDTO{LicenseKey: "key-1"})
	assert.Equal(t, ErrLicenseNotUnused, err)
}

func TestActivateLicense_UnknownKey(t *testing.T) {
	svc, _, mockLicense := setupUserServiceMocks(t)
	user := models.User{ID: 1, IsActive: true}

	mockLicense.EXPECT().FindByKey("missing").Return(models.License{}, gorm.ErrRecordNotFound)

	_, err := svc.ActivateLicense(&user, dto.ActivateLicenseDTO{LicenseKey: "missing"})
	assert.Equal(t, ErrLicenseNotFound, err)
}

// --------------------- CreateLicense ---------------------

func TestCreateLicense_MintsUnusedKey(t *testing.T) {
	svc, _, mockLicense := setupUserServiceMocks(t)

	mockLicense.EXPECT().Create(gomock.Any()).DoAndReturn(func(l *models.License) error {
		l.ID = 9
		return nil
	})

	lic, err := svc.CreateLicense(models.UserRoleClient, nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, lic.LicenseKey)
	assert.Equal(t, models.LicenseStatusUnused, lic.Status)
	assert.Equal(t, models.UserRoleClient, lic.Role)
}

func TestCreateLicense_RepoError(t *testing.T) {
	svc, _, mockLicense := setupUserServiceMocks(t)

	mockLicense.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))

	_, err := svc.CreateLicense(models.UserRoleDeveloper, nil)
	assert.Error(t, err)
}
