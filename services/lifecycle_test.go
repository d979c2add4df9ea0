package services

import (
	"testing"

	"github.com/linskybing/syncbridge-go/models"
	"github.com/stretchr/testify/assert"
)

func roleUser(id uint, role models.UserRole) *models.User {
	r := role
	return &models.User{ID: id, Role: &r, IsActive: true}
}

func mainform(owner uint, status models.FormStatus) *models.Form {
	return &models.Form{
		ID:     1,
		Kind:   models.FormKindMain,
		UserID: owner,
		Status: status,
	}
}

func boundMainform(owner, dev uint, status models.FormStatus) *models.Form {
	f := mainform(owner, status)
	f.DeveloperID = &dev
	return f
}

// --------------------- transition table ---------------------

func TestApplyTransition_RejectsUnknownPairs(t *testing.T) {
	client := roleUser(1, models.UserRoleClient)
	dev := roleUser(2, models.UserRoleDeveloper)

	cases := []struct {
		name  string
		form  *models.Form
		actor *models.User
		to    models.FormStatus
	}{
		{"preview to processing", mainform(1, models.FormStatusPreview), client, models.FormStatusProcessing},
		{"preview to end", mainform(1, models.FormStatusPreview), client, models.FormStatusEnd},
		{"available to end", boundMainform(1, 2, models.FormStatusAvailable), dev, models.FormStatusEnd},
		{"processing to available", boundMainform(1, 2, models.FormStatusProcessing), dev, models.FormStatusAvailable},
		{"processing to preview", boundMainform(1, 2, models.FormStatusProcessing), client, models.FormStatusPreview},
		{"rewrite to end", boundMainform(1, 2, models.FormStatusRewrite), dev, models.FormStatusEnd},
		{"end is terminal", boundMainform(1, 2, models.FormStatusEnd), client, models.FormStatusProcessing},
		{"error is terminal", boundMainform(1, 2, models.FormStatusError), client, models.FormStatusRewrite},
		{"self transition", boundMainform(1, 2, models.FormStatusProcessing), dev, models.FormStatusProcessing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := *tc.form
			_, err := applyTransition(tc.form, tc.actor, tc.to)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, before, *tc.form, "rejected transition must not touch the form")
		})
	}
}

func TestApplyTransition_PreviewToAvailable(t *testing.T) {
	client := roleUser(1, models.UserRoleClient)
	form := mainform(1, models.FormStatusPreview)

	outcome, err := applyTransition(form, client, models.FormStatusAvailable)
	assert.NoError(t, err)
	assert.Equal(t, TransitionCommitted, outcome)
	assert.Equal(t, models.FormStatusAvailable, form.Status)
	assert.Equal(t, 0, form.ApprovalFlags())

	// Replaying the same request after the commit has nothing to do.
	_, err = applyTransition(form, client, models.FormStatusAvailable)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.FormStatusAvailable, form.Status)
}

func TestApplyTransition_PublishRequiresOwner(t *testing.T) {
	stranger := roleUser(9, models.UserRoleClient)
	dev := roleUser(2, models.UserRoleDeveloper)
	form := mainform(1, models.FormStatusPreview)

	_, err := applyTransition(form, stranger, models.FormStatusAvailable)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = applyTransition(form, dev, models.FormStatusAvailable)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, models.FormStatusPreview, form.Status)
}

func TestApplyTransition_DeveloperTakeBinds(t *testing.T) {
	dev := roleUser(2, models.UserRoleDeveloper)
	form := mainform(1, models.FormStatusAvailable)

	outcome, err := applyTransition(form, dev, models.FormStatusProcessing)
	assert.NoError(t, err)
	assert.Equal(t, TransitionCommitted, outcome)
	assert.Equal(t, models.FormStatusProcessing, form.Status)
	if assert.NotNil(t, form.DeveloperID) {
		assert.Equal(t, uint(2), *form.DeveloperID)
	}
}

func TestApplyTransition_TakeRejectedWhenBoundElsewhere(t *testing.T) {
	other := roleUser(3, models.UserRoleDeveloper)
	form := boundMainform(1, 2, models.FormStatusAvailable)

	_, err := applyTransition(form, other, models.FormStatusProcessing)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, models.FormStatusAvailable, form.Status)
	assert.Equal(t, uint(2), *form.DeveloperID)
}

func TestApplyTransition_ClientCannotTake(t *testing.T) {
	client := roleUser(1, models.UserRoleClient)
	form := mainform(1, models.FormStatusAvailable)

	_, err := applyTransition(form, client, models.FormStatusProcessing)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApplyTransition_UnilateralRewrite(t *testing.T) {
	client := roleUser(1, models.UserRoleClient)
	dev := roleUser(2, models.UserRoleDeveloper)

	for _, actor := range []*models.User{client, dev} {
		form := boundMainform(1, 2, models.FormStatusProcessing)
		outcome, err := applyTransition(form, actor, models.FormStatusRewrite)
		assert.NoError(t, err)
		assert.Equal(t, TransitionCommitted, outcome)
		assert.Equal(t, models.FormStatusRewrite, form.Status)
	}
}

func TestApplyTransition_UnilateralRewriteClearsPendingVotes(t *testing.T) {
	client := roleUser(1, models.UserRoleClient)
	dev := roleUser(2, models.UserRoleDeveloper)
	form := boundMainform(1, 2, models.FormStatusProcessing)

	outcome, err := applyTransition(form, dev, models.FormStatusEnd)
	assert.NoError(t, err)
	assert.Equal(t, TransitionPending, outcome)
	assert.Equal(t, 1, form.ApprovalFlags())

	// The unilateral move overrides the half-finished vote.
	outcome, err = applyTransition(form, client, models.FormStatusRewrite)
	assert.NoError(t, err)
	assert.Equal(t, TransitionCommitted, outcome)
	assert.Equal(t, models.FormStatusRewrite, form.Status)
	assert.Equal(t, 0, form.ApprovalFlags())
	assert.Nil(t, form.ApprovalTarget)
}

// --------------------- bilateral voting ---------------------

func TestApplyTransition_BilateralEndVoteFlow(t *testing.T) {
	client := roleUser(1, models.UserRoleClient)
	dev := roleUser(2, models.UserRoleDeveloper)
	form := boundMainform(1, 2, models.FormStatusProcessing)

	outcome, err := applyTransition(form, dev, models.FormStatusEnd)
	assert.NoError(t, err)
	assert.Equal(t, TransitionPending, outcome)
	assert.Equal(t, models.FormStatusProcessing, form.Status)
	assert.Equal(t, 1, form.ApprovalFlags())

	// Re-voting the same way is a no-op and stays pending.
	outcome, err = applyTransition(form, dev, models.FormStatusEnd)
	assert.NoError(t, err)
	assert.Equal(t, TransitionPending, outcome)
	assert.Equal(t, 1, form.ApprovalFlags())

	outcome, err = applyTransition(form, client, models.FormStatusEnd)
	assert.NoError(t, err)
	assert.Equal(t, TransitionCommitted, outcome)
	assert.Equal(t, models.FormStatusEnd, form.Status)
	assert.Equal(t, 0, form.ApprovalFlags())
	assert.Nil(t, form.ApprovalTarget)
}

func TestApplyTransition_BilateralRewriteToProcessing(t *testing.T) {
	client := roleUser(1, models.UserRoleClient)
	dev := roleUser(2, models.UserRoleDeveloper)
	form := boundMainform(1, 2, models.FormStatusRewrite)

	outcome, err := applyTransition(form, client, models.FormStatusProcessing)
	assert.NoError(t, err)
	assert.Equal(t, TransitionPending, outcome)
	assert.Equal(t, 2, form.ApprovalFlags())

	outcome, err = applyTransition(form, dev, models.FormStatusProcessing)
	assert.NoError(t, err)
	assert.Equal(t, TransitionCommitted, outcome)
	assert.Equal(t, models.FormStatusProcessing, form.Status)
}

func TestCastVote_CompetingTargetsConflict(t *testing.T) {
	form := boundMainform(1, 2, models.FormStatusProcessing)
	form.DeveloperApproved = true
	target := models.FormStatusEnd
	form.ApprovalTarget = &target

	// A vote aimed at a different pending target is refused outright
	// and the recorded vote state is untouched.
	_, err := castVote(form, models.UserRoleClient, models.FormStatusRewrite)
	assert.ErrorIs(t, err, ErrApprovalConflict)
	assert.Equal(t, 1, form.ApprovalFlags())
	assert.Equal(t, models.FormStatusEnd, *form.ApprovalTarget)
}

func TestCastVote_SameRoleIdempotent(t *testing.T) {
	form := boundMainform(1, 2, models.FormStatusProcessing)

	outcome, err := castVote(form, models.UserRoleDeveloper, models.FormStatusEnd)
	assert.NoError(t, err)
	assert.Equal(t, votePending, outcome)

	outcome, err = castVote(form, models.UserRoleDeveloper, models.FormStatusEnd)
	assert.NoError(t, err)
	assert.Equal(t, votePending, outcome)
	assert.Equal(t, 1, form.ApprovalFlags())
}

func TestApplyTransition_StrangerCannotVote(t *testing.T) {
	stranger := roleUser(7, models.UserRoleDeveloper)
	form := boundMainform(1, 2, models.FormStatusProcessing)

	_, err := applyTransition(form, stranger, models.FormStatusEnd)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, 0, form.ApprovalFlags())
}

func TestApplyTransition_RewriteToErrorUnilateral(t *testing.T) {
	client := roleUser(1, models.UserRoleClient)
	form := boundMainform(1, 2, models.FormStatusRewrite)
	form.ClientApproved = true
	target := models.FormStatusProcessing
	form.ApprovalTarget = &target

	outcome, err := applyTransition(form, client, models.FormStatusError)
	assert.NoError(t, err)
	assert.Equal(t, TransitionCommitted, outcome)
	assert.Equal(t, models.FormStatusError, form.Status)
	assert.Equal(t, 0, form.ApprovalFlags())
	assert.Nil(t, form.ApprovalTarget)
}
