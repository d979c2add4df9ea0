package repositories

import (
	"time"

	"github.com/linskybing/syncbridge-go/db"
	"github.com/linskybing/syncbridge-go/models"
)

type BlockRepo interface {
	GetOrCreate(formID uint, blockType models.BlockType, targetID *uint, priority models.BlockPriority) (models.Block, error)
	FindByID(id uint) (models.Block, error)
	ListByForm(formID uint) ([]models.Block, error)
	Save(b *models.Block) error
	// ListDue returns blocks whose last message is older than the
	// deadline for their priority and that have no reminder sent yet.
	ListDue(urgentBefore, normalBefore time.Time) ([]models.Block, error)
}

type DBBlockRepo struct{}

func (r *DBBlockRepo) GetOrCreate(formID uint, blockType models.BlockType, targetID *uint, priority models.BlockPriority) (models.Block, error) {
	var block models.Block
	query := db.DB.Where("form_id = ? AND type = ?", formID, blockType)
	if targetID != nil {
		query = query.Where("target_id = ?", *targetID)
	} else {
		query = query.Where("target_id IS NULL")
	}
	if err := query.First(&block).Error; err == nil {
		return block, nil
	}

	block = models.Block{
		FormID:   formID,
		Type:     blockType,
		TargetID: targetID,
		Priority: priority,
	}
	err := db.DB.Create(&block).Error
	return block, err
}

func (r *DBBlockRepo) FindByID(id uint) (models.Block, error) {
	var block models.Block
	err := db.DB.First(&block, id).Error
	return block, err
}

func (r *DBBlockRepo) ListByForm(formID uint) ([]models.Block, error) {
	var blocks []models.Block
	err := db.DB.Where("form_id = ?", formID).Order("created_at asc").Find(&blocks).Error
	return blocks, err
}

func (r *DBBlockRepo) Save(b *models.Block) error {
	return db.DB.Save(b).Error
}

func (r *DBBlockRepo) ListDue(urgentBefore, normalBefore time.Time) ([]models.Block, error) {
	var blocks []models.Block
	err := db.DB.
		Where("reminder_sent = ?", false).
		Where(
			db.DB.Where("priority = ? AND last_message_at <= ?", models.BlockPriorityUrgent, urgentBefore).
				Or("priority = ? AND last_message_at <= ?", models.BlockPriorityNormal, normalBefore),
		).
		Find(&blocks).Error
	return blocks, err
}
