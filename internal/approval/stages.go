// Package approval is the authoritative approval state machine for all four
// request kinds. Everything in it is a pure function over a record's
// approval trail and a viewer identity: no I/O, no persistence, safe to call
// repeatedly from handlers, services and tests.
package approval

import "hrportal/internal/model"

// Stage is one approval checkpoint in a request's chain. The string values
// double as the path fragments of the stage action endpoints, so the route
// set and the policy table are driven by the same enum.
type Stage string

const (
	StageDivHead Stage = "div-head"
	StageHRD     Stage = "hrd"
	StageFinance Stage = "finance"
	StageAdmin   Stage = "admin"
)

// chains holds the ordered stage list per request kind. This table is the
// single source of the business rule; narrower deployments restrict it, they
// do not replace it.
var chains = map[model.Kind][]Stage{
	model.KindPersonalLeave:   {StageDivHead},
	model.KindInTownTravel:    {StageDivHead},
	model.KindAnnualLeave:     {StageDivHead, StageHRD},
	model.KindOutOfTownTravel: {StageDivHead, StageHRD, StageFinance, StageAdmin},
}

// Chain returns the ordered stage list for a kind. The returned slice must
// not be mutated.
func Chain(k model.Kind) []Stage {
	return chains[k]
}

// ParseStage resolves an endpoint path fragment to a stage.
func ParseStage(s string) (Stage, bool) {
	switch Stage(s) {
	case StageDivHead, StageHRD, StageFinance, StageAdmin:
		return Stage(s), true
	}
	return "", false
}

// decision reads the trail field belonging to a stage.
func decision(t model.ApprovalTrail, stage Stage) model.Decision {
	switch stage {
	case StageDivHead:
		return t.DivHead
	case StageHRD:
		return t.HRD
	case StageFinance:
		return t.Finance
	case StageAdmin:
		return t.Admin
	}
	return model.DecisionNone
}

// setDecision writes the trail field belonging to a stage.
func setDecision(t *model.ApprovalTrail, stage Stage, d model.Decision) {
	switch stage {
	case StageDivHead:
		t.DivHead = d
	case StageHRD:
		t.HRD = d
	case StageFinance:
		t.Finance = d
	case StageAdmin:
		t.Admin = d
	}
}
