package approval

import "fmt"

// Machine-readable failure reasons carried in error responses so clients can
// react without parsing prose.
const (
	ReasonStaleState   = "stale_state"
	ReasonNotPermitted = "not_permitted"
	ReasonSelfApproval = "self_approval"
)

// StaleStateError reports an action targeting a stage that is no longer the
// record's current stage: either another actor already resolved it, or the
// caller held a copy fetched before a concurrent update landed. Recover by
// reloading, not by retrying.
type StaleStateError struct {
	Attempted Stage
	Current   Stage // empty when the record is terminal
}

func (e *StaleStateError) Error() string {
	if e.Current == "" {
		return fmt.Sprintf("stage %s already resolved: request is final", e.Attempted)
	}
	return fmt.Sprintf("stage %s is not current (waiting on %s)", e.Attempted, e.Current)
}

// AuthorizationError reports a viewer acting at a stage the policy does not
// grant them. The UI should never have offered the control; the server
// enforces it regardless.
type AuthorizationError struct {
	Stage  Stage
	Reason string // ReasonNotPermitted or ReasonSelfApproval
}

func (e *AuthorizationError) Error() string {
	if e.Reason == ReasonSelfApproval {
		return fmt.Sprintf("cannot act on your own request at stage %s", e.Stage)
	}
	return fmt.Sprintf("not permitted to act at stage %s", e.Stage)
}
