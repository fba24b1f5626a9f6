package approval

import (
	"fmt"

	"hrportal/internal/model"
)

// Action is a stage decision a viewer can take. The string values double as
// endpoint path fragments ("deny" on the wire maps to ActionReject).
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// ParseAction resolves an endpoint path fragment to an action. The wire
// contract uses "deny" for rejections.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "approve":
		return ActionApprove, true
	case "deny", "reject":
		return ActionReject, true
	}
	return "", false
}

// AllowedActions returns the actions the viewer may take on the record right
// now. Empty for terminal records, for viewers the policy does not name as
// the current stage's actor, and for the requester themselves.
func AllowedActions(r model.Request, v model.ViewerIdentity) []Action {
	stage, ok := CurrentStage(r.Kind(), *r.Trail())
	if !ok {
		return nil
	}
	if !CanActAtStage(v, r.RequestDivision(), stage) {
		return nil
	}
	if v.Name != "" && v.Name == r.RequesterName() {
		// Approvers never act on their own submissions.
		return nil
	}
	return []Action{ActionApprove, ActionReject}
}

// Apply records a stage decision and returns the updated trail. It only
// validates stage currency; the policy check belongs to the caller, which
// also owns persisting the result. The input trail is never mutated.
//
// A rejection short-circuits the chain: later stages stay undecided and the
// derived status is rejected immediately.
func Apply(k model.Kind, t model.ApprovalTrail, stage Stage, action Action, actor string) (model.ApprovalTrail, error) {
	current, ok := CurrentStage(k, t)
	if !ok {
		return t, &StaleStateError{Attempted: stage}
	}
	if current != stage {
		return t, &StaleStateError{Attempted: stage, Current: current}
	}

	out := t
	switch action {
	case ActionApprove:
		setDecision(&out, stage, model.DecisionApproved)
	case ActionReject:
		setDecision(&out, stage, model.DecisionRejected)
	default:
		return t, fmt.Errorf("unknown action %q", action)
	}
	out.ApprovedBy = actor
	out.Status = DeriveStatus(k, out)
	return out, nil
}
