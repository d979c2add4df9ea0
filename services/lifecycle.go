package services

import "github.com/linskybing/syncbridge-go/models"

type TransitionOutcome string

const (
	TransitionCommitted TransitionOutcome = "committed"
	TransitionPending   TransitionOutcome = "awaiting_other_party"
)

// applyTransition runs the lifecycle state machine against f in
// memory: table lookup, eligibility, then unilateral commit or
// bilateral vote. First failure wins and leaves f untouched. The
// caller is responsible for persisting f atomically.
func applyTransition(f *models.Form, actor *models.User, to models.FormStatus) (TransitionOutcome, error) {
	rule, ok := lookupTransition(f.Status, to)
	if !ok {
		return "", ErrInvalidTransition
	}

	switch rule.Eligibility {
	case eligClientOwner:
		if !f.IsOwner(actor) {
			return "", ErrForbidden
		}
	case eligDeveloperTake:
		if !actor.HasRole(models.UserRoleDeveloper) {
			return "", ErrForbidden
		}
		// Taking an order already bound to someone else is not allowed.
		if f.DeveloperID != nil && *f.DeveloperID != actor.ID {
			return "", ErrForbidden
		}
	case eligBoundParty:
		if !f.IsOwner(actor) && !f.IsBoundDeveloper(actor) {
			return "", ErrForbidden
		}
	}

	if rule.Mode == TransitionBilateral {
		outcome, err := castVote(f, *actor.Role, to)
		if err != nil {
			return "", err
		}
		if outcome == votePending {
			return TransitionPending, nil
		}
		f.Status = to
		resetApproval(f)
		return TransitionCommitted, nil
	}

	if rule.Eligibility == eligDeveloperTake && f.DeveloperID == nil {
		id := actor.ID
		f.DeveloperID = &id
	}
	f.Status = to
	resetApproval(f)
	return TransitionCommitted, nil
}
