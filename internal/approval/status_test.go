package approval

import (
	"testing"

	"hrportal/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatusPendingMarkers(t *testing.T) {
	cases := []struct {
		name  string
		kind  model.Kind
		trail model.ApprovalTrail
		want  model.ApprovalStatus
	}{
		{"fresh personal leave", model.KindPersonalLeave, model.ApprovalTrail{}, model.StatusPending},
		{"fresh annual leave", model.KindAnnualLeave, model.ApprovalTrail{}, model.StatusPending},
		{"annual leave past div head", model.KindAnnualLeave,
			model.ApprovalTrail{DivHead: model.DecisionApproved}, model.StatusPendingHRD},
		{"out of town past hrd", model.KindOutOfTownTravel,
			model.ApprovalTrail{DivHead: model.DecisionApproved, HRD: model.DecisionApproved}, model.StatusPendingFinance},
		{"out of town past finance", model.KindOutOfTownTravel,
			model.ApprovalTrail{DivHead: model.DecisionApproved, HRD: model.DecisionApproved, Finance: model.DecisionApproved}, model.StatusPendingAdmin},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.kind, tt.trail))
		})
	}
}

func TestDeriveStatusApprovedOnlyWhenAllStagesApproved(t *testing.T) {
	for _, kind := range model.Kinds {
		trail := model.ApprovalTrail{}
		for _, stage := range Chain(kind) {
			assert.NotEqual(t, model.StatusApproved, DeriveStatus(kind, trail),
				"%s must not be approved before stage %s decides", kind, stage)
			setDecision(&trail, stage, model.DecisionApproved)
		}
		assert.Equal(t, model.StatusApproved, DeriveStatus(kind, trail), "%s with full chain approved", kind)
	}
}

func TestDeriveStatusRejectionWinsRegardlessOfLaterStages(t *testing.T) {
	for _, kind := range model.Kinds {
		for _, rejectAt := range Chain(kind) {
			trail := model.ApprovalTrail{}
			for _, stage := range Chain(kind) {
				if stage == rejectAt {
					setDecision(&trail, stage, model.DecisionRejected)
					break
				}
				setDecision(&trail, stage, model.DecisionApproved)
			}
			assert.Equal(t, model.StatusRejected, DeriveStatus(kind, trail),
				"%s rejected at %s", kind, rejectAt)
		}
	}
}

func TestCurrentStageWalksTheChain(t *testing.T) {
	trail := model.ApprovalTrail{}
	for _, want := range Chain(model.KindOutOfTownTravel) {
		stage, ok := CurrentStage(model.KindOutOfTownTravel, trail)
		assert.True(t, ok)
		assert.Equal(t, want, stage)
		setDecision(&trail, want, model.DecisionApproved)
	}

	_, ok := CurrentStage(model.KindOutOfTownTravel, trail)
	assert.False(t, ok, "fully approved chain must be terminal")
	assert.True(t, Terminal(model.KindOutOfTownTravel, trail))
}

func TestCurrentStageTerminalAfterRejection(t *testing.T) {
	trail := model.ApprovalTrail{DivHead: model.DecisionRejected}
	_, ok := CurrentStage(model.KindAnnualLeave, trail)
	assert.False(t, ok)
	assert.True(t, Terminal(model.KindAnnualLeave, trail))
}

func TestChainLengths(t *testing.T) {
	assert.Len(t, Chain(model.KindPersonalLeave), 1)
	assert.Len(t, Chain(model.KindInTownTravel), 1)
	assert.Len(t, Chain(model.KindAnnualLeave), 2)
	assert.Len(t, Chain(model.KindOutOfTownTravel), 4)
	assert.Nil(t, Chain(model.Kind("unknown")))
}
