package approval

import "hrportal/internal/model"

// pendingMarker is the overall status reported while a given stage is the
// first undecided one in the chain.
var pendingMarker = map[Stage]model.ApprovalStatus{
	StageDivHead: model.StatusPending,
	StageHRD:     model.StatusPendingHRD,
	StageFinance: model.StatusPendingFinance,
	StageAdmin:   model.StatusPendingAdmin,
}

// DeriveStatus projects the per-stage decisions onto the overall approval
// status. The status is never stored independently: any rejected stage makes
// the whole record rejected, the first undecided stage names the pending
// marker, and a fully approved chain is approved.
func DeriveStatus(k model.Kind, t model.ApprovalTrail) model.ApprovalStatus {
	for _, stage := range Chain(k) {
		switch decision(t, stage) {
		case model.DecisionRejected:
			return model.StatusRejected
		case model.DecisionNone:
			return pendingMarker[stage]
		}
	}
	return model.StatusApproved
}

// CurrentStage returns the first stage in the kind's chain that has no
// decision yet. ok is false when the record is terminal: either a stage was
// rejected or every required stage is approved.
func CurrentStage(k model.Kind, t model.ApprovalTrail) (stage Stage, ok bool) {
	for _, s := range Chain(k) {
		switch decision(t, s) {
		case model.DecisionRejected:
			return "", false
		case model.DecisionNone:
			return s, true
		}
	}
	return "", false
}

// Terminal reports whether no stage can act on the record anymore.
func Terminal(k model.Kind, t model.ApprovalTrail) bool {
	_, ok := CurrentStage(k, t)
	return !ok
}
