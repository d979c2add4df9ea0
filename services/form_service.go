package services

import (
	"errors"

	"github.com/linskybing/syncbridge-go/dto"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/repositories"
	"github.com/linskybing/syncbridge-go/utils"
	"gorm.io/gorm"
)

// FormService owns the work-order lifecycle: the status state machine,
// the bilateral approval votes, and the subform negotiation/merge
// protocol. Every status or vote mutation runs inside a row-locked
// transaction on the form; audit and broadcast happen after commit and
// never fail the operation.
type FormService struct {
	repos       *repositories.Repos
	broadcaster Broadcaster
}

func NewFormService(repos *repositories.Repos, broadcaster Broadcaster) *FormService {
	return &FormService{repos: repos, broadcaster: broadcaster}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFormNotFound
	}
	return err
}

func (s *FormService) GetForm(user *models.User, id uint) (models.Form, error) {
	form, err := s.repos.Form.FindByID(id)
	if err != nil {
		return models.Form{}, notFound(err)
	}
	if err := canViewForm(&form, user); err != nil {
		return models.Form{}, err
	}
	return form, nil
}

func (s *FormService) ListForms(user *models.User, page, pageSize int, availableOnly bool) ([]models.Form, int64, error) {
	return s.repos.Form.ListForUser(user, page, pageSize, availableOnly)
}

// CreateMainform opens a new work order in preview. Clients only.
func (s *FormService) CreateMainform(user *models.User, input dto.CreateFormDTO) (models.Form, error) {
	if !user.HasRole(models.UserRoleClient) {
		return models.Form{}, ErrForbidden
	}
	form := models.Form{
		Kind:         models.FormKindMain,
		UserID:       user.ID,
		CreatedBy:    user.ID,
		Title:        input.Title,
		Message:      input.Message,
		Budget:       input.Budget,
		ExpectedTime: input.ExpectedTime,
		Status:       models.FormStatusPreview,
	}
	if err := s.repos.Form.Create(&form); err != nil {
		return models.Form{}, err
	}
	utils.LogAudit(s.repos.Audit, "form", form.ID, "create", &user.ID, nil, &form)
	return form, nil
}

func (s *FormService) UpdateForm(user *models.User, id uint, input dto.UpdateFormDTO) (models.Form, error) {
	form, err := s.repos.Form.FindByID(id)
	if err != nil {
		return models.Form{}, notFound(err)
	}
	if err := canUpdateForm(&form, user); err != nil {
		return models.Form{}, err
	}

	old := form
	if input.Title != nil {
		form.Title = *input.Title
	}
	if input.Message != nil {
		form.Message = *input.Message
	}
	if input.Budget != nil {
		form.Budget = *input.Budget
	}
	if input.ExpectedTime != nil {
		form.ExpectedTime = *input.ExpectedTime
	}

	if err := s.repos.Form.Save(&form); err != nil {
		return models.Form{}, err
	}
	utils.LogAudit(s.repos.Audit, "form", form.ID, "update", &user.ID, &old, &form)
	return form, nil
}

// RequestTransition drives the status state machine. A unilateral
// transition commits immediately; a bilateral one records the caller's
// vote and commits once both parties have voted for the same target.
func (s *FormService) RequestTransition(user *models.User, formID uint, to models.FormStatus) (models.Form, TransitionOutcome, error) {
	var (
		outcome  TransitionOutcome
		oldState models.FormStatus
		oldFlags int
	)
	form, err := s.repos.Form.Mutate(formID, func(tx *gorm.DB, f *models.Form) error {
		if f.Kind != models.FormKindMain {
			return ErrInvalidState
		}
		oldState = f.Status
		oldFlags = f.ApprovalFlags()
		var err error
		outcome, err = applyTransition(f, user, to)
		return err
	})
	if err != nil {
		return models.Form{}, "", notFound(err)
	}

	if outcome == TransitionCommitted {
		utils.LogAudit(s.repos.Audit, "form", form.ID, "status_change", &user.ID,
			map[string]any{"status": oldState},
			map[string]any{"status": form.Status})
		s.broadcaster.Broadcast(FormRoom(form.ID), FormEvent{
			Event:  "form.status",
			FormID: form.ID,
			Status: string(form.Status),
		})
	} else {
		utils.LogAudit(s.repos.Audit, "form", form.ID, "approval_vote", &user.ID,
			map[string]any{"approval_flags": oldFlags},
			map[string]any{"approval_flags": form.ApprovalFlags()})
		s.broadcaster.Broadcast(FormRoom(form.ID), FormEvent{
			Event:         "form.approval",
			FormID:        form.ID,
			Status:        string(form.Status),
			ApprovalFlags: form.ApprovalFlags(),
		})
	}
	return form, outcome, nil
}

// CreateSubform spawns an amendment proposal under the mainform. The
// parent is forced into rewrite; any pending votes on it become moot.
func (s *FormService) CreateSubform(user *models.User, mainID uint, input dto.CreateFormDTO) (models.Form, error) {
	var sub models.Form
	main, err := s.repos.Form.Mutate(mainID, func(tx *gorm.DB, main *models.Form) error {
		if err := canCreateSubform(main, user); err != nil {
			return err
		}

		sub = models.Form{
			Kind:         models.FormKindSub,
			UserID:       main.UserID,
			DeveloperID:  main.DeveloperID,
			CreatedBy:    user.ID,
			Title:        input.Title,
			Message:      input.Message,
			Budget:       input.Budget,
			ExpectedTime: input.ExpectedTime,
			Status:       models.FormStatusRewrite,
		}
		if err := s.repos.Form.CreateTx(tx, &sub); err != nil {
			return err
		}

		main.SubformID = &sub.ID
		main.Status = models.FormStatusRewrite
		resetApproval(main)
		return nil
	})
	if err != nil {
		return models.Form{}, notFound(err)
	}

	utils.LogAudit(s.repos.Audit, "form", sub.ID, "create", &user.ID, nil, &sub)
	s.broadcaster.Broadcast(FormRoom(main.ID), FormEvent{
		Event:   "form.subform_created",
		FormID:  main.ID,
		Status:  string(main.Status),
		Payload: map[string]any{"subform_id": sub.ID},
	})
	return sub, nil
}

// MergeSubform folds the subform back into its parent: content and
// line items are taken over (changed markers cleared), the link is
// dropped, the parent returns to processing with a clean approval
// slate, and the subform row is destroyed. All of it is one
// transaction on the locked parent row.
func (s *FormService) MergeSubform(user *models.User, mainID uint) (models.Form, error) {
	var subID uint
	main, err := s.repos.Form.Mutate(mainID, func(tx *gorm.DB, main *models.Form) error {
		if main.Kind != models.FormKindMain {
			return ErrInvalidState
		}
		if main.SubformID == nil {
			return ErrSubformNotFound
		}
		if err := canMergeSubform(main, user); err != nil {
			return err
		}

		sub, err := s.repos.Form.GetLocked(tx, *main.SubformID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubformNotFound
			}
			return err
		}
		subID = sub.ID

		main.Title = sub.Title
		main.Message = sub.Message
		main.Budget = sub.Budget
		main.ExpectedTime = sub.ExpectedTime

		if err := s.repos.Form.ReplaceLineItems(tx, main.ID, sub.ID); err != nil {
			return err
		}

		main.SubformID = nil
		main.Status = models.FormStatusProcessing
		resetApproval(main)

		return s.repos.Form.DeleteTx(tx, &sub)
	})
	if err != nil {
		return models.Form{}, notFound(err)
	}

	utils.LogAudit(s.repos.Audit, "form", main.ID, "merge_subform", &user.ID,
		map[string]any{"subform_id": subID},
		map[string]any{"merged": true, "status": main.Status})
	s.broadcaster.Broadcast(FormRoom(main.ID), FormEvent{
		Event:  "form.merged",
		FormID: main.ID,
		Status: string(main.Status),
	})
	return main, nil
}

// DeleteForm removes a mainform (owner only, preview only) or discards
// a subform (creator only). Discarding a subform unlinks the parent
// and moves it to processing, or to error when the caller flags the
// negotiation as failed.
func (s *FormService) DeleteForm(user *models.User, id uint, negotiationFailed bool) error {
	form, err := s.repos.Form.FindByID(id)
	if err != nil {
		return notFound(err)
	}
	if err := canDeleteForm(&form, user); err != nil {
		return err
	}

	if form.Kind == models.FormKindMain {
		if err := s.repos.Form.Delete(&form); err != nil {
			return err
		}
		utils.LogAudit(s.repos.Audit, "form", form.ID, "delete", &user.ID, &form, nil)
		return nil
	}

	main, err := s.repos.Form.FindMainBySubformID(form.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		parent, err := s.repos.Form.Mutate(main.ID, func(tx *gorm.DB, parent *models.Form) error {
			parent.SubformID = nil
			if negotiationFailed {
				parent.Status = models.FormStatusError
			} else {
				parent.Status = models.FormStatusProcessing
			}
			resetApproval(parent)
			return s.repos.Form.DeleteTx(tx, &form)
		})
		if err != nil {
			return err
		}
		s.broadcaster.Broadcast(FormRoom(parent.ID), FormEvent{
			Event:  "form.subform_discarded",
			FormID: parent.ID,
			Status: string(parent.Status),
		})
	} else if err := s.repos.Form.Delete(&form); err != nil {
		// Orphaned subform, no parent link left to maintain.
		return err
	}

	utils.LogAudit(s.repos.Audit, "form", form.ID, "delete", &user.ID, &form, nil)
	return nil
}
