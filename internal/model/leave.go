package model

import "time"

// PersonalLeaveRequest is a short personal permission form (izin pribadi):
// time off for a day, leaving early, coming late or a temporary leave during
// working hours. Only the subfields matching RequestType are populated.
type PersonalLeaveRequest struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null;index" json:"name"`
	Division string `gorm:"type:varchar(100);not null;index" json:"division"`

	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	RequestType string `gorm:"type:varchar(50);not null" json:"request_type"`

	// Time off
	DayLabel string     `gorm:"type:varchar(50)" json:"day_label,omitempty"`
	Date     *time.Time `gorm:"type:date" json:"date,omitempty"`

	// Leave early
	ShortHour string `gorm:"type:varchar(5)" json:"short_hour,omitempty"`

	// Come late
	ComeLateDate *time.Time `gorm:"type:date" json:"come_late_date,omitempty"`
	ComeLateHour string     `gorm:"type:varchar(5)" json:"come_late_hour,omitempty"`

	// Temporary leave
	TempLeaveStart *time.Time `gorm:"type:date" json:"temp_leave_start,omitempty"`
	TempLeaveEnd   *time.Time `gorm:"type:date" json:"temp_leave_end,omitempty"`

	ApprovalTrail `gorm:"embedded"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *PersonalLeaveRequest) Kind() Kind               { return KindPersonalLeave }
func (r *PersonalLeaveRequest) RecordID() uint           { return r.ID }
func (r *PersonalLeaveRequest) RequesterName() string    { return r.Name }
func (r *PersonalLeaveRequest) RequestDivision() string  { return r.Division }
func (r *PersonalLeaveRequest) SubmittedAt() time.Time   { return r.CreatedAt }
func (r *PersonalLeaveRequest) Trail() *ApprovalTrail    { return &r.ApprovalTrail }
func (r *PersonalLeaveRequest) SearchFields() []string {
	return []string{r.Name, r.Title, r.RequestType}
}

// AnnualLeaveRequest is a cuti (annual or other formal leave) form. Duration
// is derived from the inclusive date range at submission time.
type AnnualLeaveRequest struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null;index" json:"name"`
	Division string `gorm:"type:varchar(100);not null;index" json:"division"`

	CutiType  string    `gorm:"type:varchar(50);not null" json:"cuti_type"`
	DateStart time.Time `gorm:"type:date;not null" json:"date_start"`
	DateEnd   time.Time `gorm:"type:date;not null" json:"date_end"`
	Duration  int       `gorm:"not null" json:"duration"`

	Purpose string `gorm:"type:text" json:"purpose,omitempty"`
	Address string `gorm:"type:text" json:"address,omitempty"`
	Phone   string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Notes   string `gorm:"type:text" json:"notes,omitempty"`

	// Leave-day accounting as reported by the requester's balance at
	// submission time.
	LeaveDays      int `json:"leave_days"`
	LeaveRemaining int `json:"leave_remaining"`

	ApprovalTrail `gorm:"embedded"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *AnnualLeaveRequest) Kind() Kind              { return KindAnnualLeave }
func (r *AnnualLeaveRequest) RecordID() uint          { return r.ID }
func (r *AnnualLeaveRequest) RequesterName() string   { return r.Name }
func (r *AnnualLeaveRequest) RequestDivision() string { return r.Division }
func (r *AnnualLeaveRequest) SubmittedAt() time.Time  { return r.CreatedAt }
func (r *AnnualLeaveRequest) Trail() *ApprovalTrail   { return &r.ApprovalTrail }
func (r *AnnualLeaveRequest) SearchFields() []string {
	return []string{r.Name, r.CutiType, r.Purpose}
}
