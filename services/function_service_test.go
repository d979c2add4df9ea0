package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/syncbridge-go/dto"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/repositories"
	"github.com/linskybing/syncbridge-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
)

func setupFunctionServiceMocks(t *testing.T) (*FunctionService, *mock_repositories.MockFormRepo, *mock_repositories.MockFunctionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	mockFn := mock_repositories.NewMockFunctionRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil).AnyTimes()

	repos := &repositories.Repos{Form: mockForm, Function: mockFn, Audit: mockAudit}
	return NewFunctionService(repos), mockForm, mockFn
}

func TestFunctionCreate_InheritsFormStatus(t *testing.T) {
	svc, mockForm, mockFn := setupFunctionServiceMocks(t)
	client := roleUser(1, models.UserRoleClient)
	form := mainform(1, models.FormStatusPreview)

	mockForm.EXPECT().FindByID(uint(1)).Return(*form, nil)
	mockFn.EXPECT().Create(gomock.Any()).DoAndReturn(func(fn *models.Function) error {
		fn.ID = 3
		return nil
	})

	fn, err := svc.Create(client, 1, dto.CreateFunctionDTO{
		Name: "login", Choice: "commercial", Description: "SSO login",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.FormStatusPreview, fn.Status)
	assert.Equal(t, models.FunctionChoiceCommercial, fn.Choice)
	assert.False(t, fn.Changed)
}

func TestFunctionCreate_OnSubformMarksChanged(t *testing.T) {
	svc, mockForm, mockFn := setupFunctionServiceMocks(t)
	dev := roleUser(2, models.UserRoleDeveloper)
	sub := models.Form{ID: 42, Kind: models.FormKindSub, UserID: 1, CreatedBy: 2, Status: models.FormStatusRewrite}

	mockForm.EXPECT().FindByID(uint(42)).Return(sub, nil)
	mockFn.EXPECT().Create(gomock.Any()).Return(nil)

	fn, err := svc.Create(dev, 42, dto.CreateFunctionDTO{
		Name: "export", Choice: "enterprise", Description: "CSV export",
	})
	assert.NoError(t, err)
	assert.True(t, fn.Changed, "items added during negotiation show up in the diff")
	assert.Equal(t, models.FormStatusRewrite, fn.Status)
}

func TestFunctionCreate_StrangerForbidden(t *testing.T) {
	svc, mockForm, _ := setupFunctionServiceMocks(t)
	stranger := roleUser(9, models.UserRoleClient)
	form := mainform(1, models.FormStatusPreview)

	mockForm.EXPECT().FindByID(uint(1)).Return(*form, nil)

	_, err := svc.Create(stranger, 1, dto.CreateFunctionDTO{Name: "x", Choice: "lightweight", Description: "y"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestFunctionUpdate_ClientLockedAfterPublish(t *testing.T) {
	svc, mockForm, mockFn := setupFunctionServiceMocks(t)
	client := roleUser(1, models.UserRoleClient)

	fn := models.Function{ID: 3, FormID: 1, Name: "login", Choice: models.FunctionChoiceCommercial}
	form := boundMainform(1, 2, models.FormStatusProcessing)

	mockFn.EXPECT().FindByID(uint(3)).Return(fn, nil)
	mockForm.EXPECT().FindByID(uint(1)).Return(*form, nil)

	name := "login v2"
	_, err := svc.Update(client, 3, dto.UpdateFunctionDTO{Name: &name})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestFunctionUpdate_OnSubformMarksChanged(t *testing.T) {
	svc, mockForm, mockFn := setupFunctionServiceMocks(t)
	dev := roleUser(2, models.UserRoleDeveloper)

	fn := models.Function{ID: 3, FormID: 42, Name: "login", Choice: models.FunctionChoiceCommercial}
	sub := models.Form{ID: 42, Kind: models.FormKindSub, UserID: 1, CreatedBy: 2, Status: models.FormStatusRewrite}

	mockFn.EXPECT().FindByID(uint(3)).Return(fn, nil)
	mockForm.EXPECT().FindByID(uint(42)).Return(sub, nil)
	mockFn.EXPECT().Save(gomock.Any()).Return(nil)

	choice := "enterprise"
	got, err := svc.Update(dev, 3, dto.UpdateFunctionDTO{Choice: &choice})
	assert.NoError(t, err)
	assert.Equal(t, models.FunctionChoiceEnterprise, got.Choice)
	assert.True(t, got.Changed)
}

func TestFunctionDelete_Success(t *testing.T) {
	svc, mockForm, mockFn := setupFunctionServiceMocks(t)
	client := roleUser(1, models.UserRoleClient)

	fn := models.Function{ID: 3, FormID: 1}
	form := mainform(1, models.FormStatusPreview)

	mockFn.EXPECT().FindByID(uint(3)).Return(fn, nil)
	mockForm.EXPECT().FindByID(uint(1)).Return(*form, nil)
	mockFn.EXPECT().Delete(gomock.Any()).Return(nil)

	assert.NoError(t, svc.Delete(client, 3))
}
