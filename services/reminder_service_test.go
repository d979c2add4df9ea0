package services

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/syncbridge-go/config"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/repositories"
	"github.com/linskybing/syncbridge-go/repositories/mock_repositories"
	"github.com/linskybing/syncbridge-go/utils"
	"github.com/stretchr/testify/assert"
)

func setupReminderServiceMocks(t *testing.T) (*ReminderService, *mock_repositories.MockFormRepo, *mock_repositories.MockUserRepo, *mock_repositories.MockBlockRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	mockBlock := mock_repositories.NewMockBlockRepo(ctrl)

	repos := &repositories.Repos{Form: mockForm, User: mockUser, Block: mockBlock}
	return NewReminderService(repos), mockForm, mockUser, mockBlock
}

func TestProcessDueBlocks_SendsAndMarks(t *testing.T) {
	svc, mockForm, mockUser, mockBlock := setupReminderServiceMocks(t)

	config.ReminderUrgentMinutes = 5
	config.ReminderNormalHours = 48

	stale := time.Now().Add(-3 * time.Hour)
	block := models.Block{ID: 5, FormID: 1, Priority: models.BlockPriorityUrgent, LastMessageAt: &stale}
	form := *boundMainform(1, 2, models.FormStatusProcessing)
	form.Title = "CRM rebuild"

	mockBlock.EXPECT().ListDue(gomock.Any(), gomock.Any()).Return([]models.Block{block}, nil)
	mockForm.EXPECT().FindByID(uint(1)).Return(form, nil)
	mockUser.EXPECT().FindByID(uint(1)).Return(models.User{ID: 1, Email: "client@test.com"}, nil)
	mockUser.EXPECT().FindByID(uint(2)).Return(models.User{ID: 2, Email: "dev@test.com"}, nil)
	mockBlock.EXPECT().Save(gomock.Any()).DoAndReturn(func(b *models.Block) error {
		assert.True(t, b.ReminderSent)
		return nil
	})

	var sentTo []string
	oldSend := utils.SendMail
	utils.SendMail = func(recipients []string, subject, htmlBody string) error {
		sentTo = recipients
		return nil
	}
	defer func() { utils.SendMail = oldSend }()

	assert.NoError(t, svc.ProcessDueBlocks(time.Now()))
	assert.Equal(t, []string{"client@test.com", "dev@test.com"}, sentTo)
}

func TestProcessDueBlocks_SendFailureDoesNotMark(t *testing.T) {
	svc, mockForm, mockUser, mockBlock := setupReminderServiceMocks(t)

	stale := time.Now().Add(-72 * time.Hour)
	block := models.Block{ID: 5, FormID: 1, Priority: models.BlockPriorityNormal, LastMessageAt: &stale}
	form := *mainform(1, models.FormStatusAvailable)

	mockBlock.EXPECT().ListDue(gomock.Any(), gomock.Any()).Return([]models.Block{block}, nil)
	mockForm.EXPECT().FindByID(uint(1)).Return(form, nil)
	mockUser.EXPECT().FindByID(uint(1)).Return(models.User{ID: 1, Email: "client@test.com"}, nil)

	oldSend := utils.SendMail
	utils.SendMail = func(recipients []string, subject, htmlBody string) error {
		return assert.AnError
	}
	defer func() { utils.SendMail = oldSend }()

	// No Save expected: the block stays due for the next sweep.
	assert.NoError(t, svc.ProcessDueBlocks(time.Now()))
}
