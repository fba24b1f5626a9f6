package model

import "time"

// InTownTravelRequest is a dinas dalam kota form: business travel within the
// city, bounded by a start and end time on the same working day.
type InTownTravelRequest struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null;index" json:"name"`
	Division string `gorm:"type:varchar(100);not null;index" json:"division"`

	Purpose   string    `gorm:"type:text;not null" json:"purpose"`
	TimeStart time.Time `gorm:"not null" json:"time_start"`
	TimeEnd   time.Time `gorm:"not null" json:"time_end"`
	// Free-form status note filled by the requester (e.g. which office or
	// client is visited), unrelated to the approval status.
	StatusNote string `gorm:"column:status_note;type:varchar(255)" json:"status_note,omitempty"`

	ApprovalTrail `gorm:"embedded"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *InTownTravelRequest) Kind() Kind              { return KindInTownTravel }
func (r *InTownTravelRequest) RecordID() uint          { return r.ID }
func (r *InTownTravelRequest) RequesterName() string   { return r.Name }
func (r *InTownTravelRequest) RequestDivision() string { return r.Division }
func (r *InTownTravelRequest) SubmittedAt() time.Time  { return r.CreatedAt }
func (r *InTownTravelRequest) Trail() *ApprovalTrail   { return &r.ApprovalTrail }
func (r *InTownTravelRequest) SearchFields() []string {
	return []string{r.Name, r.Purpose}
}

// OutOfTownTravelRequest is a dinas luar kota (SPPD) form: multi-day business
// travel outside the city. It runs the full four-stage approval chain.
type OutOfTownTravelRequest struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null;index" json:"name"`
	Division string `gorm:"type:varchar(100);not null;index" json:"division"`

	Destination      string    `gorm:"type:varchar(255);not null" json:"destination"`
	Purpose          string    `gorm:"type:text;not null" json:"purpose"`
	Needs            string    `gorm:"type:text" json:"needs,omitempty"`
	Companions       string    `gorm:"type:text" json:"companions,omitempty"`
	CompanionPurpose string    `gorm:"type:text" json:"companion_purpose,omitempty"`
	DepartDate       time.Time `gorm:"type:date;not null" json:"depart_date"`
	ReturnDate       time.Time `gorm:"type:date;not null" json:"return_date"`
	TransportType    string    `gorm:"type:varchar(50);not null" json:"transport_type"`
	ItemsBrought     string    `gorm:"type:text" json:"items_brought,omitempty"`

	ApprovalTrail `gorm:"embedded"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *OutOfTownTravelRequest) Kind() Kind              { return KindOutOfTownTravel }
func (r *OutOfTownTravelRequest) RecordID() uint          { return r.ID }
func (r *OutOfTownTravelRequest) RequesterName() string   { return r.Name }
func (r *OutOfTownTravelRequest) RequestDivision() string { return r.Division }
func (r *OutOfTownTravelRequest) SubmittedAt() time.Time  { return r.CreatedAt }
func (r *OutOfTownTravelRequest) Trail() *ApprovalTrail   { return &r.ApprovalTrail }
func (r *OutOfTownTravelRequest) SearchFields() []string {
	return []string{r.Name, r.Destination, r.Purpose}
}
