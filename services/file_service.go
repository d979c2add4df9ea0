package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/google/uuid"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/repositories"
	"github.com/linskybing/syncbridge-go/utils"
	"gorm.io/gorm"
)

// FileService stores message attachments in the object bucket and
// keeps their metadata rows alongside. Access follows the message's
// block, which follows the form.
type FileService struct {
	repos *repositories.Repos
}

func NewFileService(repos *repositories.Repos) *FileService {
	return &FileService{repos: repos}
}

func (s *FileService) messageForm(messageID uint) (models.Message, models.Form, error) {
	msg, err := s.repos.Message.FindByID(messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Message{}, models.Form{}, ErrMessageNotFound
		}
		return models.Message{}, models.Form{}, err
	}
	block, err := s.repos.Block.FindByID(msg.BlockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Message{}, models.Form{}, ErrBlockNotFound
		}
		return models.Message{}, models.Form{}, err
	}
	form, err := s.repos.Form.FindByID(block.FormID)
	if err != nil {
		return models.Message{}, models.Form{}, notFound(err)
	}
	return msg, form, nil
}

func (s *FileService) Upload(ctx context.Context, user *models.User, messageID uint, fileName, contentType string, size int64, content io.Reader) (models.File, error) {
	msg, form, err := s.messageForm(messageID)
	if err != nil {
		return models.File{}, err
	}
	if err := canAccessBlock(&form, user); err != nil {
		return models.File{}, err
	}

	key := fmt.Sprintf("forms/%d/messages/%d/%s%s", form.ID, msg.ID, uuid.NewString(), path.Ext(fileName))
	if err := utils.UploadObject(ctx, key, contentType, content, size); err != nil {
		return models.File{}, err
	}

	file := models.File{
		MessageID:   msg.ID,
		FileName:    fileName,
		FileType:    contentType,
		FileSize:    size,
		StoragePath: key,
	}
	if err := s.repos.File.Create(&file); err != nil {
		// Keep the bucket consistent with the metadata table.
		if rmErr := utils.DeleteObject(ctx, key); rmErr != nil {
			log.Printf("orphaned object %s: %v", key, rmErr)
		}
		return models.File{}, err
	}
	utils.LogAudit(s.repos.Audit, "file", file.ID, "create", &user.ID, nil, &file)
	return file, nil
}

func (s *FileService) Download(ctx context.Context, user *models.User, fileID uint) (models.File, io.ReadCloser, error) {
	file, err := s.repos.File.FindByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.File{}, nil, ErrFileNotFound
		}
		return models.File{}, nil, err
	}
	_, form, err := s.messageForm(file.MessageID)
	if err != nil {
		return models.File{}, nil, err
	}
	if err := canAccessBlock(&form, user); err != nil {
		return models.File{}, nil, err
	}

	rc, err := utils.DownloadObject(ctx, file.StoragePath)
	if err != nil {
		return models.File{}, nil, err
	}
	return file, rc, nil
}

func (s *FileService) Delete(ctx context.Context, user *models.User, fileID uint) error {
	file, err := s.repos.File.FindByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFileNotFound
		}
		return err
	}
	msg, _, err := s.messageForm(file.MessageID)
	if err != nil {
		return err
	}
	if msg.UserID != user.ID {
		return ErrForbidden
	}

	if err := utils.DeleteObject(ctx, file.StoragePath); err != nil {
		return err
	}
	if err := s.repos.File.Delete(&file); err != nil {
		return err
	}
	utils.LogAudit(s.repos.Audit, "file", file.ID, "delete", &user.ID, &file, nil)
	return nil
}
