package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/linskybing/syncbridge-go/config"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/repositories"
	"github.com/linskybing/syncbridge-go/utils"
)

// ReminderService nudges both parties of a form when a discussion
// block has gone quiet: urgent blocks after a few minutes, normal
// blocks after a couple of days. Each block gets at most one reminder
// until someone posts again.
type ReminderService struct {
	repos *repositories.Repos
}

func NewReminderService(repos *repositories.Repos) *ReminderService {
	return &ReminderService{repos: repos}
}

// ProcessDueBlocks sends reminders for every stale block. Failures on
// one block do not stop the sweep.
func (s *ReminderService) ProcessDueBlocks(now time.Time) error {
	urgentBefore := now.Add(-time.Duration(config.ReminderUrgentMinutes) * time.Minute)
	normalBefore := now.Add(-time.Duration(config.ReminderNormalHours) * time.Hour)

	blocks, err := s.repos.Block.ListDue(urgentBefore, normalBefore)
	if err != nil {
		return err
	}

	for i := range blocks {
		block := blocks[i]
		if err := s.remind(&block); err != nil {
			log.Printf("reminder for block %d failed: %v", block.ID, err)
			continue
		}
		block.ReminderSent = true
		if err := s.repos.Block.Save(&block); err != nil {
			log.Printf("marking block %d reminded failed: %v", block.ID, err)
		}
	}
	return nil
}

func (s *ReminderService) remind(block *models.Block) error {
	form, err := s.repos.Form.FindByID(block.FormID)
	if err != nil {
		return err
	}

	var recipients []string
	if owner, err := s.repos.User.FindByID(form.UserID); err == nil {
		recipients = append(recipients, owner.Email)
	}
	if form.DeveloperID != nil {
		if dev, err := s.repos.User.FindByID(*form.DeveloperID); err == nil {
			recipients = append(recipients, dev.Email)
		}
	}

	subject := fmt.Sprintf("[SyncBridge] Discussion on %q is waiting for a reply", form.Title)
	body := fmt.Sprintf(
		"<p>A %s-priority discussion block on form <b>%s</b> (#%d) has had no activity past its deadline.</p>"+
			"<p>Please follow up so the work order can move forward.</p>",
		block.Priority, form.Title, form.ID,
	)
	return utils.SendMail(recipients, subject, body)
}

// StartLoop sweeps on the configured interval until ctx is cancelled.
func (s *ReminderService) StartLoop(ctx context.Context) {
	interval := time.Duration(config.ReminderCheckIntervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := s.ProcessDueBlocks(now); err != nil {
				log.Printf("reminder sweep failed: %v", err)
			}
		}
	}
}
