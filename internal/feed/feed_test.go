package feed

import (
	"testing"
	"time"

	"hrportal/internal/approval"
	"hrportal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day int) time.Time {
	return time.Date(2024, time.March, day, 9, 0, 0, 0, time.UTC)
}

func sampleRecords() []model.Request {
	cuti := &model.AnnualLeaveRequest{
		ID: 1, Name: "Ana", Division: "OPS", CutiType: "annual", Purpose: "family visit",
		CreatedAt: at(2),
	}
	cuti.Status = model.StatusPending

	sppd := &model.OutOfTownTravelRequest{
		ID: 2, Name: "Budi", Division: "OPS", Destination: "Surabaya", Purpose: "client audit",
		CreatedAt: at(5),
	}
	sppd.Status = model.StatusPending

	done := &model.InTownTravelRequest{
		ID: 3, Name: "Citra", Division: "OPS", Purpose: "bank errand",
		CreatedAt: at(3),
	}
	done.DivHead = model.DecisionApproved
	done.Status = model.StatusApproved

	return []model.Request{cuti, sppd, done}
}

func TestBuildSortsNewestFirst(t *testing.T) {
	items := Build(model.ViewerIdentity{Role: model.RoleStaff}, sampleRecords(), Filters{})
	require.Len(t, items, 3)
	assert.Equal(t, uint(2), items[0].ID)
	assert.Equal(t, uint(3), items[1].ID)
	assert.Equal(t, uint(1), items[2].ID)
}

func TestBuildFilterByKind(t *testing.T) {
	items := Build(model.ViewerIdentity{}, sampleRecords(), Filters{Kind: model.KindAnnualLeave})
	require.Len(t, items, 1)
	assert.Equal(t, model.KindAnnualLeave, items[0].Kind)
}

func TestBuildFilterByStatus(t *testing.T) {
	items := Build(model.ViewerIdentity{}, sampleRecords(), Filters{Status: model.StatusApproved})
	require.Len(t, items, 1)
	assert.Equal(t, uint(3), items[0].ID)
}

func TestBuildFilterBySearch(t *testing.T) {
	// Case-insensitive substring across name/purpose/destination fields.
	items := Build(model.ViewerIdentity{}, sampleRecords(), Filters{Search: "surabaya"})
	require.Len(t, items, 1)
	assert.Equal(t, uint(2), items[0].ID)

	items = Build(model.ViewerIdentity{}, sampleRecords(), Filters{Search: "ana"})
	require.Len(t, items, 1)
	assert.Equal(t, "Ana", items[0].Name)
}

func TestBuildFiltersAreConjunctive(t *testing.T) {
	items := Build(model.ViewerIdentity{}, sampleRecords(), Filters{
		Search: "audit",
		Kind:   model.KindAnnualLeave,
	})
	assert.Empty(t, items, "search matches the travel record but kind filter excludes it")
}

func TestBuildAttachesActionsForTheViewer(t *testing.T) {
	opsHead := model.ViewerIdentity{Name: "Head of Ops", Role: model.RoleDivHead, Division: "OPS"}
	items := Build(opsHead, sampleRecords(), Filters{})
	require.Len(t, items, 3)

	byID := map[uint][]approval.Action{}
	for _, item := range items {
		byID[item.ID] = item.Actions
	}

	assert.ElementsMatch(t, []approval.Action{approval.ActionApprove, approval.ActionReject}, byID[1])
	assert.ElementsMatch(t, []approval.Action{approval.ActionApprove, approval.ActionReject}, byID[2])
	assert.Empty(t, byID[3], "terminal record offers no actions")
}

func TestBuildEmptyInput(t *testing.T) {
	items := Build(model.ViewerIdentity{}, nil, Filters{})
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
