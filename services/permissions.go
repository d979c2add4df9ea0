package services

import "github.com/linskybing/syncbridge-go/models"

// Access rules shared by the form, line-item, and messaging services.
// All of them answer in terms of the error taxonomy: ErrForbidden for
// role/binding failures, ErrInvalidState for status gates.

func canViewForm(f *models.Form, u *models.User) error {
	switch {
	case u.HasRole(models.UserRoleClient):
		if f.UserID != u.ID && f.CreatedBy != u.ID {
			return ErrForbidden
		}
	case u.HasRole(models.UserRoleDeveloper):
		if f.Kind == models.FormKindMain {
			if f.Status != models.FormStatusAvailable && !f.IsBoundDeveloper(u) {
				return ErrForbidden
			}
		} else {
			if f.CreatedBy != u.ID && !f.IsBoundDeveloper(u) {
				return ErrForbidden
			}
		}
	default:
		return ErrForbidden
	}
	return nil
}

func canUpdateForm(f *models.Form, u *models.User) error {
	if f.Kind == models.FormKindSub {
		// Only the subform creator edits the amendment proposal.
		if f.CreatedBy != u.ID {
			return ErrForbidden
		}
		return nil
	}

	switch {
	case u.HasRole(models.UserRoleClient):
		if f.UserID != u.ID {
			return ErrForbidden
		}
		if f.Status != models.FormStatusPreview && f.Status != models.FormStatusAvailable {
			return ErrInvalidState
		}
	case u.HasRole(models.UserRoleDeveloper):
		if !f.IsBoundDeveloper(u) {
			return ErrForbidden
		}
		if f.Status != models.FormStatusProcessing && f.Status != models.FormStatusRewrite {
			return ErrInvalidState
		}
	default:
		return ErrForbidden
	}
	return nil
}

func canDeleteForm(f *models.Form, u *models.User) error {
	if f.Kind == models.FormKindMain {
		if !u.HasRole(models.UserRoleClient) || f.UserID != u.ID {
			return ErrForbidden
		}
		if f.Status != models.FormStatusPreview {
			return ErrInvalidState
		}
		return nil
	}
	if f.CreatedBy != u.ID {
		return ErrForbidden
	}
	return nil
}

func canCreateSubform(main *models.Form, u *models.User) error {
	if main.Kind != models.FormKindMain {
		return ErrInvalidState
	}
	if main.SubformID != nil {
		return ErrInvalidState
	}
	switch main.Status {
	case models.FormStatusAvailable, models.FormStatusProcessing, models.FormStatusRewrite:
	default:
		return ErrInvalidState
	}
	switch {
	case u.HasRole(models.UserRoleClient):
		if main.UserID != u.ID {
			return ErrForbidden
		}
	case u.HasRole(models.UserRoleDeveloper):
		if !main.IsBoundDeveloper(u) {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}
	return nil
}

func canMergeSubform(main *models.Form, u *models.User) error {
	if !main.IsOwner(u) && !main.IsBoundDeveloper(u) {
		return ErrForbidden
	}
	return nil
}

func canAddItem(f *models.Form, u *models.User) error {
	if f.Kind == models.FormKindMain {
		if u.HasRole(models.UserRoleClient) && f.UserID != u.ID {
			return ErrForbidden
		}
		if u.HasRole(models.UserRoleDeveloper) && !f.IsBoundDeveloper(u) && f.Status != models.FormStatusAvailable {
			return ErrForbidden
		}
		if !u.HasRole(models.UserRoleClient) && !u.HasRole(models.UserRoleDeveloper) {
			return ErrForbidden
		}
		return nil
	}
	if f.CreatedBy != u.ID {
		return ErrForbidden
	}
	return nil
}

func canEditItem(f *models.Form, u *models.User) error {
	if f.Kind == models.FormKindMain {
		switch {
		case u.HasRole(models.UserRoleClient):
			if f.UserID != u.ID {
				return ErrForbidden
			}
			if f.Status != models.FormStatusPreview && f.Status != models.FormStatusAvailable {
				return ErrInvalidState
			}
		case u.HasRole(models.UserRoleDeveloper):
			if !f.IsBoundDeveloper(u) {
				return ErrForbidden
			}
		default:
			return ErrForbidden
		}
		return nil
	}
	if f.CreatedBy != u.ID {
		return ErrForbidden
	}
	return nil
}

func canAccessBlock(f *models.Form, u *models.User) error {
	switch {
	case u.HasRole(models.UserRoleClient):
		if f.UserID != u.ID {
			return ErrForbidden
		}
	case u.HasRole(models.UserRoleDeveloper):
		if !f.IsBoundDeveloper(u) && f.Status != models.FormStatusAvailable {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}
	return nil
}
