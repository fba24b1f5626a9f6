package approval

import (
	"testing"

	"hrportal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAdvancesThroughTheChain(t *testing.T) {
	trail := model.ApprovalTrail{Status: model.StatusPending}

	for _, stage := range Chain(model.KindOutOfTownTravel) {
		next, err := Apply(model.KindOutOfTownTravel, trail, stage, ActionApprove, "approver")
		require.NoError(t, err)
		trail = next
	}

	assert.Equal(t, model.StatusApproved, trail.Status)
	assert.Equal(t, model.DecisionApproved, trail.DivHead)
	assert.Equal(t, model.DecisionApproved, trail.HRD)
	assert.Equal(t, model.DecisionApproved, trail.Finance)
	assert.Equal(t, model.DecisionApproved, trail.Admin)
	assert.True(t, Terminal(model.KindOutOfTownTravel, trail))
}

func TestApplyRejectShortCircuits(t *testing.T) {
	// Out-of-town travel rejected at Finance: earlier approvals stand,
	// Admin stays undecided, and the record is terminally rejected.
	trail := model.ApprovalTrail{
		DivHead: model.DecisionApproved,
		HRD:     model.DecisionApproved,
	}

	next, err := Apply(model.KindOutOfTownTravel, trail, StageFinance, ActionReject, "finance head")
	require.NoError(t, err)

	assert.Equal(t, model.DecisionRejected, next.Finance)
	assert.Equal(t, model.DecisionNone, next.Admin)
	assert.Equal(t, model.StatusRejected, next.Status)
	assert.True(t, Terminal(model.KindOutOfTownTravel, next))

	for _, v := range []model.ViewerIdentity{
		viewer(model.RoleAdmin, "GENERAL"),
		viewer(model.RoleDivHead, "HRD & GA"),
		viewer(model.RoleDivHead, "FINANCE"),
	} {
		rec := &model.OutOfTownTravelRequest{Name: "requester", Division: "OPS", ApprovalTrail: next}
		assert.Empty(t, AllowedActions(rec, v), "terminal record must offer no actions to %s/%s", v.Role, v.Division)
	}
}

func TestApplyStaleStageFails(t *testing.T) {
	trail := model.ApprovalTrail{Status: model.StatusPending}

	// Acting at Finance while DivHead is still undecided.
	_, err := Apply(model.KindOutOfTownTravel, trail, StageFinance, ActionApprove, "finance head")
	var stale *StaleStateError
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, StageFinance, stale.Attempted)
	assert.Equal(t, StageDivHead, stale.Current)

	// Re-acting at an already resolved stage.
	trail.DivHead = model.DecisionApproved
	_, err = Apply(model.KindAnnualLeave, trail, StageDivHead, ActionApprove, "div head")
	require.ErrorAs(t, err, &stale)

	// Acting on a terminal record.
	trail = model.ApprovalTrail{DivHead: model.DecisionRejected}
	_, err = Apply(model.KindPersonalLeave, trail, StageDivHead, ActionApprove, "div head")
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, Stage(""), stale.Current)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	trail := model.ApprovalTrail{Status: model.StatusPending}
	_, err := Apply(model.KindAnnualLeave, trail, StageDivHead, ActionApprove, "div head")
	require.NoError(t, err)
	assert.Equal(t, model.DecisionNone, trail.DivHead)
	assert.Equal(t, model.StatusPending, trail.Status)
}

func TestAnnualLeaveTwoStageScenario(t *testing.T) {
	// OPS staff submits cuti; the OPS div head approves, then the HRD & GA
	// head finishes the chain.
	rec := &model.AnnualLeaveRequest{Name: "staffer", Division: "OPS"}
	rec.Status = model.StatusPending

	stage, ok := CurrentStage(rec.Kind(), rec.ApprovalTrail)
	require.True(t, ok)
	assert.Equal(t, StageDivHead, stage)

	opsHead := viewer(model.RoleDivHead, "OPS")
	assert.ElementsMatch(t, []Action{ActionApprove, ActionReject}, AllowedActions(rec, opsHead))

	trail, err := Apply(rec.Kind(), rec.ApprovalTrail, StageDivHead, ActionApprove, opsHead.Name)
	require.NoError(t, err)
	rec.ApprovalTrail = trail

	assert.Equal(t, model.DecisionApproved, rec.DivHead)
	assert.Equal(t, model.StatusPendingHRD, rec.Status)
	stage, ok = CurrentStage(rec.Kind(), rec.ApprovalTrail)
	require.True(t, ok)
	assert.Equal(t, StageHRD, stage)

	// The OPS head is not the HRD-stage actor.
	assert.Empty(t, AllowedActions(rec, opsHead))

	hrdHead := viewer(model.RoleDivHead, "HRD & GA")
	assert.ElementsMatch(t, []Action{ActionApprove, ActionReject}, AllowedActions(rec, hrdHead))

	trail, err = Apply(rec.Kind(), rec.ApprovalTrail, StageHRD, ActionApprove, hrdHead.Name)
	require.NoError(t, err)
	rec.ApprovalTrail = trail

	assert.Equal(t, model.DecisionApproved, rec.HRD)
	assert.Equal(t, model.StatusApproved, rec.Status)
	assert.True(t, Terminal(rec.Kind(), rec.ApprovalTrail))
}

func TestAllowedActionsSelfApprovalBan(t *testing.T) {
	rec := &model.PersonalLeaveRequest{Name: "Head of Ops", Division: "OPS"}
	rec.Status = model.StatusPending

	self := model.ViewerIdentity{Name: "Head of Ops", Role: model.RoleDivHead, Division: "OPS"}
	assert.Empty(t, AllowedActions(rec, self))

	other := model.ViewerIdentity{Name: "Other Head", Role: model.RoleDivHead, Division: "OPS"}
	assert.NotEmpty(t, AllowedActions(rec, other))
}

func TestParseAction(t *testing.T) {
	cases := []struct {
		in   string
		want Action
		ok   bool
	}{
		{"approve", ActionApprove, true},
		{"deny", ActionReject, true},
		{"reject", ActionReject, true},
		{"escalate", "", false},
	}
	for _, tt := range cases {
		got, ok := ParseAction(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
