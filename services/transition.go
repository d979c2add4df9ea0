package services

import "github.com/linskybing/syncbridge-go/models"

type TransitionMode string

const (
	// TransitionUnilateral commits as soon as one eligible party
	// requests it.
	TransitionUnilateral TransitionMode = "unilateral"
	// TransitionBilateral needs an approval vote from both the owning
	// client and the bound developer before it commits.
	TransitionBilateral TransitionMode = "bilateral"
)

type eligibility int

const (
	// eligClientOwner: only the owning client may request.
	eligClientOwner eligibility = iota
	// eligDeveloperTake: a developer takes an open order; binds the
	// caller as the form's developer if none is bound yet.
	eligDeveloperTake
	// eligBoundParty: the owning client or the bound developer.
	eligBoundParty
)

type transitionRule struct {
	Mode        TransitionMode
	Eligibility eligibility
}

// transitionTable is the single source of truth for legal status
// transitions. Terminal statuses (end, error) have no entries.
var transitionTable = map[models.FormStatus]map[models.FormStatus]transitionRule{
	models.FormStatusPreview: {
		models.FormStatusAvailable: {TransitionUnilateral, eligClientOwner},
	},
	models.FormStatusAvailable: {
		models.FormStatusProcessing: {TransitionUnilateral, eligDeveloperTake},
	},
	models.FormStatusProcessing: {
		models.FormStatusRewrite: {TransitionUnilateral, eligBoundParty},
		models.FormStatusEnd:     {TransitionBilateral, eligBoundParty},
	},
	models.FormStatusRewrite: {
		models.FormStatusProcessing: {TransitionBilateral, eligBoundParty},
		models.FormStatusError:      {TransitionUnilateral, eligBoundParty},
	},
}

func lookupTransition(from, to models.FormStatus) (transitionRule, bool) {
	rules, ok := transitionTable[from]
	if !ok {
		return transitionRule{}, false
	}
	rule, ok := rules[to]
	return rule, ok
}
