// Package feed merges the four request collections into one reviewable
// list. Like the approval core it is pure: callers fetch the records, feed
// tags, filters, sorts and annotates them.
package feed

import (
	"sort"
	"strings"
	"time"

	"hrportal/internal/approval"
	"hrportal/internal/model"
)

// Filters narrows the merged feed. Every field is optional; the zero value
// matches everything. Set fields combine conjunctively.
type Filters struct {
	// Search is matched case-insensitively as a substring of each record's
	// search fields (requester name, purpose, destination, title...).
	Search string
	Status model.ApprovalStatus
	Kind   model.Kind
}

// Item is one feed entry: a request tagged with its kind plus the actions
// the viewer may take on it. Actions is empty when the viewer is not the
// current stage's actor, so the caller can gate controls on it directly.
type Item struct {
	Kind      model.Kind           `json:"kind"`
	ID        uint                 `json:"id"`
	Name      string               `json:"name"`
	Division  string               `json:"division"`
	Status    model.ApprovalStatus `json:"approval_status"`
	CreatedAt time.Time            `json:"created_at"`
	Actions   []approval.Action    `json:"actions"`
	Record    model.Request        `json:"record"`
}

// Build tags, filters and sorts the given records into the viewer's feed,
// newest first.
func Build(viewer model.ViewerIdentity, records []model.Request, f Filters) []Item {
	items := make([]Item, 0, len(records))
	for _, r := range records {
		if !matches(r, f) {
			continue
		}
		items = append(items, Item{
			Kind:      r.Kind(),
			ID:        r.RecordID(),
			Name:      r.RequesterName(),
			Division:  r.RequestDivision(),
			Status:    r.Trail().Status,
			CreatedAt: r.SubmittedAt(),
			Actions:   approval.AllowedActions(r, viewer),
			Record:    r,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}

func matches(r model.Request, f Filters) bool {
	if f.Kind != "" && r.Kind() != f.Kind {
		return false
	}
	if f.Status != "" && r.Trail().Status != f.Status {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		found := false
		for _, field := range r.SearchFields() {
			if strings.Contains(strings.ToLower(field), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
