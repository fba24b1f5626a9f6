package model

import "time"

// Kind identifies one of the four request form types.
type Kind string

const (
	KindPersonalLeave   Kind = "personal_leave"
	KindAnnualLeave     Kind = "annual_leave"
	KindInTownTravel    Kind = "in_town_travel"
	KindOutOfTownTravel Kind = "out_of_town_travel"
)

// Kinds lists every request kind in registration order.
var Kinds = []Kind{KindPersonalLeave, KindAnnualLeave, KindInTownTravel, KindOutOfTownTravel}

// Collection returns the API path segment a kind's records are served under.
// These segments are fixed by the existing frontend contract.
func (k Kind) Collection() string {
	switch k {
	case KindPersonalLeave:
		return "private"
	case KindAnnualLeave:
		return "cuti"
	case KindInTownTravel:
		return "dinasDalamKota"
	case KindOutOfTownTravel:
		return "dinasLuarKota"
	}
	return ""
}

// KindFromCollection resolves an API path segment back to its kind.
func KindFromCollection(segment string) (Kind, bool) {
	for _, k := range Kinds {
		if k.Collection() == segment {
			return k, true
		}
	}
	return "", false
}

// Decision is a single stage's recorded outcome. The zero value means the
// stage has not been decided yet.
type Decision string

const (
	DecisionNone     Decision = ""
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// Decided reports whether the stage outcome is final.
func (d Decision) Decided() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// ApprovalStatus is the overall request status. It is always derived from
// the stage decisions, never written independently.
type ApprovalStatus string

const (
	StatusPending        ApprovalStatus = "pending"
	StatusPendingHRD     ApprovalStatus = "pending_hrd"
	StatusPendingFinance ApprovalStatus = "pending_finance"
	StatusPendingAdmin   ApprovalStatus = "pending_admin"
	StatusApproved       ApprovalStatus = "approved"
	StatusRejected       ApprovalStatus = "rejected"
)

// Terminal reports whether no further stage decision can change the record.
func (s ApprovalStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ApprovalTrail carries the per-stage decisions and the derived status.
// It is embedded in every request variant so all four tables share the same
// columns and the approval core can treat them uniformly.
type ApprovalTrail struct {
	DivHead    Decision       `gorm:"column:approval_div_head;type:varchar(10)" json:"approval_div_head,omitempty"`
	HRD        Decision       `gorm:"column:approval_hrd;type:varchar(10)" json:"approval_hrd,omitempty"`
	Finance    Decision       `gorm:"column:approval_finance;type:varchar(10)" json:"approval_finance,omitempty"`
	Admin      Decision       `gorm:"column:approval_admin;type:varchar(10)" json:"approval_admin,omitempty"`
	Status     ApprovalStatus `gorm:"column:approval_status;type:varchar(20);not null;default:'pending';index" json:"approval_status"`
	ApprovedBy string         `gorm:"column:approved_by;type:varchar(255)" json:"approved_by,omitempty"`
}

// Request is the read-only view of a record the approval core and the feed
// need. All four variants implement it on their pointer type.
type Request interface {
	Kind() Kind
	RecordID() uint
	RequesterName() string
	RequestDivision() string
	SubmittedAt() time.Time
	Trail() *ApprovalTrail
	// SearchFields returns the free-text fields the feed search matches
	// against (requester name, purpose, destination, title and the like).
	SearchFields() []string
}
