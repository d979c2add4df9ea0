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

func setupMessageServiceMocks(t *testing.T) (*MessageService, *mock_repositories.MockFormRepo, *mock_repositories.MockBlockRepo, *mock_repositories.MockMessageRepo, *captureBroadcaster) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	mockBlock := mock_repositories.NewMockBlockRepo(ctrl)
	mockMsg := mock_repositories.NewMockMessageRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil).AnyTimes()

	bc := &captureBroadcaster{}
	repos := &repositories.Repos{Form: mockForm, Block: mockBlock, Message: mockMsg, Audit: mockAudit}
	return NewMessageService(repos, bc), mockForm, mockBlock, mockMsg, bc
}

func TestPostMessage_TouchesBlockClock(t *testing.T) {
	svc, mockForm, mockBlock, mockMsg, bc := setupMessageServiceMocks(t)
	client := roleUser(1, models.UserRoleClient)

	block := models.Block{ID: 5, FormID: 1, Type: models.BlockTypeGeneral, Priority: models.BlockPriorityNormal, ReminderSent: true}
	form := boundMainform(1, 2, models.FormStatusProcessing)

	mockBlock.EXPECT().FindByID(uint(5)).Return(block, nil)
	mockForm.EXPECT().FindByID(uint(1)).Return(*form, nil)
	mockMsg.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Message) error {
		m.ID = 11
		return nil
	})
	mockBlock.EXPECT().Save(gomock.Any()).DoAndReturn(func(b *models.Block) error {
		assert.NotNil(t, b.LastMessageAt)
		assert.False(t, b.ReminderSent, "fresh activity re-arms the reminder")
		return nil
	})

	msg, err := svc.PostMessage(client, 5, dto.CreateMessageDTO{TextContent: "any progress?"})
	assert.NoError(t, err)
	assert.Equal(t, uint(11), msg.ID)
	assert.Equal(t, uint(1), msg.UserID)

	if assert.Len(t, bc.events, 1) {
		assert.Equal(t, "message.created", bc.events[0].Event)
		assert.Equal(t, []string{"form:1"}, bc.rooms)
	}
}

func TestPostMessage_OutsiderForbidden(t *testing.T) {
	svc, mockForm, mockBlock, _, _ := setupMessageServiceMocks(t)
	stranger := roleUser(9, models.UserRoleClient)

	block := models.Block{ID: 5, FormID: 1}
	form := boundMainform(1, 2, models.FormStatusProcessing)

	mockBlock.EXPECT().FindByID(uint(5)).Return(block, nil)
	mockForm.EXPECT().FindByID(uint(1)).Return(*form, nil)

	_, err := svc.PostMessage(stranger, 5, dto.CreateMessageDTO{TextContent: "hi"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateMessage_SenderOnly(t *testing.T) {
	svc, _, _, mockMsg, _ := setupMessageServiceMocks(t)
	client := roleUser(1, models.UserRoleClient)

	msg := models.Message{ID: 11, BlockID: 5, UserID: 2, TextContent: "original"}
	mockMsg.EXPECT().FindByID(uint(11)).Return(msg, nil)

	_, err := svc.UpdateMessage(client, 11, dto.UpdateMessageDTO{TextContent: "edited"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteMessage_SenderDeletes(t *testing.T) {
	svc, _, _, mockMsg, _ := setupMessageServiceMocks(t)
	client := roleUser(1, models.UserRoleClient)

	msg := models.Message{ID: 11, BlockID: 5, UserID: 1}
	mockMsg.EXPECT().FindByID(uint(11)).Return(msg, nil)
	mockMsg.EXPECT().Delete(gomock.Any()).Return(nil)

	assert.NoError(t, svc.DeleteMessage(client, 11))
}

func TestGetOrCreateBlock_DefaultsPriority(t *testing.T) {
	svc, mockForm, mockBlock, _, _ := setupMessageServiceMocks(t)
	client := roleUser(1, models.UserRoleClient)
	form := mainform(1, models.FormStatusPreview)

	mockForm.EXPECT().FindByID(uint(1)).Return(*form, nil)
	mockBlock.EXPECT().
		GetOrCreate(uint(1), models.BlockTypeGeneral, nil, models.BlockPriorityNormal).
		Return(models.Block{ID: 5, FormID: 1, Type: models.BlockTypeGeneral, Priority: models.BlockPriorityNormal}, nil)

	block, err := svc.GetOrCreateBlock(client, 1, dto.CreateBlockDTO{Type: "general"})
	assert.NoError(t, err)
	assert.Equal(t, models.BlockPriorityNormal, block.Priority)
}
