package services

import (
	"errors"
	"time"

	"github.com/linskybing/syncbridge-go/dto"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/repositories"
	"github.com/linskybing/syncbridge-go/utils"
	"gorm.io/gorm"
)

// MessageService runs the per-form discussion blocks. Posting a
// message touches the block's activity clock, which is what the
// reminder scheduler keys off.
type MessageService struct {
	repos       *repositories.Repos
	broadcaster Broadcaster
}

func NewMessageService(repos *repositories.Repos, broadcaster Broadcaster) *MessageService {
	return &MessageService{repos: repos, broadcaster: broadcaster}
}

func (s *MessageService) blockForm(blockID uint) (models.Block, models.Form, error) {
	block, err := s.repos.Block.FindByID(blockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Block{}, models.Form{}, ErrBlockNotFound
		}
		return models.Block{}, models.Form{}, err
	}
	form, err := s.repos.Form.FindByID(block.FormID)
	if err != nil {
		return models.Block{}, models.Form{}, notFound(err)
	}
	return block, form, nil
}

func (s *MessageService) GetOrCreateBlock(user *models.User, formID uint, input dto.CreateBlockDTO) (models.Block, error) {
	form, err := s.repos.Form.FindByID(formID)
	if err != nil {
		return models.Block{}, notFound(err)
	}
	if err := canAccessBlock(&form, user); err != nil {
		return models.Block{}, err
	}

	priority := models.BlockPriorityNormal
	if input.Priority != "" {
		priority = models.BlockPriority(input.Priority)
	}
	return s.repos.Block.GetOrCreate(formID, models.BlockType(input.Type), input.TargetID, priority)
}

func (s *MessageService) ListBlocks(user *models.User, formID uint) ([]models.Block, error) {
	form, err := s.repos.Form.FindByID(formID)
	if err != nil {
		return nil, notFound(err)
	}
	if err := canAccessBlock(&form, user); err != nil {
		return nil, err
	}
	return s.repos.Block.ListByForm(formID)
}

func (s *MessageService) ListMessages(user *models.User, blockID uint) ([]models.Message, error) {
	block, form, err := s.blockForm(blockID)
	if err != nil {
		return nil, err
	}
	if err := canAccessBlock(&form, user); err != nil {
		return nil, err
	}
	return s.repos.Message.ListByBlock(block.ID)
}

func (s *MessageService) PostMessage(user *models.User, blockID uint, input dto.CreateMessageDTO) (models.Message, error) {
	block, form, err := s.blockForm(blockID)
	if err != nil {
		return models.Message{}, err
	}
	if err := canAccessBlock(&form, user); err != nil {
		return models.Message{}, err
	}

	msg := models.Message{
		BlockID:     block.ID,
		UserID:      user.ID,
		TextContent: input.TextContent,
	}
	if err := s.repos.Message.Create(&msg); err != nil {
		return models.Message{}, err
	}

	now := time.Now()
	block.LastMessageAt = &now
	block.ReminderSent = false
	if err := s.repos.Block.Save(&block); err != nil {
		return models.Message{}, err
	}

	s.broadcaster.Broadcast(FormRoom(form.ID), FormEvent{
		Event:  "message.created",
		FormID: form.ID,
		Payload: map[string]any{
			"block_id":   block.ID,
			"message_id": msg.ID,
			"user_id":    user.ID,
		},
	})
	return msg, nil
}

func (s *MessageService) UpdateMessage(user *models.User, id uint, input dto.UpdateMessageDTO) (models.Message, error) {
	msg, err := s.repos.Message.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Message{}, ErrMessageNotFound
		}
		return models.Message{}, err
	}
	if msg.UserID != user.ID {
		return models.Message{}, ErrForbidden
	}

	old := msg
	msg.TextContent = input.TextContent
	if err := s.repos.Message.Save(&msg); err != nil {
		return models.Message{}, err
	}
	utils.LogAudit(s.repos.Audit, "message", msg.ID, "update", &user.ID, &old, &msg)
	return msg, nil
}

func (s *MessageService) DeleteMessage(user *models.User, id uint) error {
	msg, err := s.repos.Message.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		return err
	}
	if msg.UserID != user.ID {
		return ErrForbidden
	}
	if err := s.repos.Message.Delete(&msg); err != nil {
		return err
	}
	utils.LogAudit(s.repos.Audit, "message", msg.ID, "delete", &user.ID, &msg, nil)
	return nil
}
