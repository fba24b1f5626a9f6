package approval

import "hrportal/internal/model"

// policy maps each stage to the rule deciding whether a viewer may act
// there. A new role/stage rule is one entry in this table, not another
// conditional scattered through handlers.
//
// Two deliberate overrides are part of the rule set:
//   - a div_head of "HRD & GA" acts at the HRD stage (and the DivHead stage)
//     for every division, modelling the HRD head's company-wide mandate;
//   - admin may act at any stage as a fallback.
var policy = map[Stage]func(v model.ViewerIdentity, recordDivision string) bool{
	StageDivHead: func(v model.ViewerIdentity, recordDivision string) bool {
		if v.Role == model.RoleAdmin {
			return true
		}
		return v.Role == model.RoleDivHead &&
			(model.SameDivision(v.Division, recordDivision) || model.SameDivision(v.Division, model.DivisionHRD))
	},
	StageHRD: func(v model.ViewerIdentity, _ string) bool {
		if v.Role == model.RoleAdmin {
			return true
		}
		return v.Role == model.RoleDivHead && model.SameDivision(v.Division, model.DivisionHRD)
	},
	StageFinance: func(v model.ViewerIdentity, _ string) bool {
		if v.Role == model.RoleAdmin {
			return true
		}
		return v.Role == model.RoleDivHead && model.SameDivision(v.Division, model.DivisionFinance)
	},
	StageAdmin: func(v model.ViewerIdentity, _ string) bool {
		return v.Role == model.RoleAdmin
	},
}

// CanActAtStage reports whether the viewer is the actor for a stage on a
// record of the given division. Total: unknown stages are simply false.
func CanActAtStage(v model.ViewerIdentity, recordDivision string, stage Stage) bool {
	rule, ok := policy[stage]
	if !ok {
		return false
	}
	return rule(v, recordDivision)
}
