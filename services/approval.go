package services

import "github.com/linskybing/syncbridge-go/models"

type voteOutcome int

const (
	votePending voteOutcome = iota
	voteCommitted
)

// castVote records one party's consent toward the pending bilateral
// transition aimed at target. Re-voting with the same role and target
// is a no-op and stays pending; requesting a different target while
// votes are partially cast is rejected.
func castVote(f *models.Form, role models.UserRole, target models.FormStatus) (voteOutcome, error) {
	if f.ApprovalTarget != nil && *f.ApprovalTarget != target {
		return votePending, ErrApprovalConflict
	}
	if f.ApprovalTarget == nil {
		t := target
		f.ApprovalTarget = &t
	}

	switch role {
	case models.UserRoleClient:
		f.ClientApproved = true
	case models.UserRoleDeveloper:
		f.DeveloperApproved = true
	default:
		return votePending, ErrForbidden
	}

	if f.ClientApproved && f.DeveloperApproved {
		return voteCommitted, nil
	}
	return votePending, nil
}

// resetApproval clears the vote bits and the pending target. Called on
// every committed transition and whenever a subform create/merge/delete
// restarts the negotiation.
func resetApproval(f *models.Form) {
	f.ClientApproved = false
	f.DeveloperApproved = false
	f.ApprovalTarget = nil
}
