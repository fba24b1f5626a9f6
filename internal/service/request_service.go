package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hrportal/internal/model"
	"hrportal/internal/repository"

	"github.com/google/uuid"
)

// ValidationError marks a submission rejected before it reaches the store
// (date ordering, missing fields). Handlers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ErrNotReviewer is returned when a viewer without review rights asks for a
// division-scoped listing.
var ErrNotReviewer = errors.New("listing requires a division head or admin viewer")

// ErrNotFound is returned when the addressed record does not exist.
var ErrNotFound = errors.New("request not found")

// --- DTOs ---

type PersonalLeaveInput struct {
	Title          string `json:"title" binding:"required"`
	RequestType    string `json:"request_type" binding:"required"`
	Date           string `json:"date"`
	ShortHour      string `json:"short_hour"`
	ComeLateDate   string `json:"come_late_date"`
	ComeLateHour   string `json:"come_late_hour"`
	TempLeaveStart string `json:"temp_leave_start"`
	TempLeaveEnd   string `json:"temp_leave_end"`
}

type AnnualLeaveInput struct {
	CutiType       string `json:"cuti_type" binding:"required"`
	DateStart      string `json:"date_start" binding:"required"`
	DateEnd        string `json:"date_end" binding:"required"`
	Purpose        string `json:"purpose"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Notes          string `json:"notes"`
	LeaveDays      int    `json:"leave_days"`
	LeaveRemaining int    `json:"leave_remaining"`
}

type InTownTravelInput struct {
	Purpose    string `json:"purpose" binding:"required"`
	TimeStart  string `json:"time_start" binding:"required"`
	TimeEnd    string `json:"time_end" binding:"required"`
	StatusNote string `json:"status_note"`
}

type OutOfTownTravelInput struct {
	Destination      string `json:"destination" binding:"required"`
	Purpose          string `json:"purpose" binding:"required"`
	Needs            string `json:"needs"`
	Companions       string `json:"companions"`
	CompanionPurpose string `json:"companion_purpose"`
	DepartDate       string `json:"depart_date" binding:"required"`
	ReturnDate       string `json:"return_date" binding:"required"`
	TransportType    string `json:"transport_type" binding:"required"`
	ItemsBrought     string `json:"items_brought"`
}

// --- Interface ---

// RequestService owns submission and listing of the four request kinds.
// Requester name and division always come from the viewer identity, never
// from the form payload.
type RequestService interface {
	SubmitPersonalLeave(ctx context.Context, viewer model.ViewerIdentity, in PersonalLeaveInput) (model.Request, error)
	SubmitAnnualLeave(ctx context.Context, viewer model.ViewerIdentity, in AnnualLeaveInput) (model.Request, error)
	SubmitInTownTravel(ctx context.Context, viewer model.ViewerIdentity, in InTownTravelInput) (model.Request, error)
	SubmitOutOfTownTravel(ctx context.Context, viewer model.ViewerIdentity, in OutOfTownTravelInput) (model.Request, error)
	MyRequests(ctx context.Context, viewer model.ViewerIdentity, kind model.Kind) ([]model.Request, error)
	ByDivision(ctx context.Context, viewer model.ViewerIdentity, kind model.Kind) ([]model.Request, error)
	AllRequests(ctx context.Context, kind model.Kind) ([]model.Request, error)
}

type requestService struct {
	repo  repository.RequestRepository
	audit repository.AuditRepository
	tx    repository.TransactionManager
}

// NewRequestService returns a new instance of RequestService
func NewRequestService(repo repository.RequestRepository, audit repository.AuditRepository, tx repository.TransactionManager) RequestService {
	return &requestService{repo: repo, audit: audit, tx: tx}
}

// --- Implementation ---

func (s *requestService) SubmitPersonalLeave(ctx context.Context, viewer model.ViewerIdentity, in PersonalLeaveInput) (model.Request, error) {
	rec := &model.PersonalLeaveRequest{
		Name:           viewer.Name,
		Division:       viewer.Division,
		Title:          in.Title,
		RequestType:    in.RequestType,
		DayLabel:       in.Date,
		Date:           parseDate(in.Date),
		ShortHour:      in.ShortHour,
		ComeLateDate:   parseDate(in.ComeLateDate),
		ComeLateHour:   in.ComeLateHour,
		TempLeaveStart: parseDate(in.TempLeaveStart),
		TempLeaveEnd:   parseDate(in.TempLeaveEnd),
	}
	rec.Status = model.StatusPending
	return rec, s.create(ctx, viewer, rec)
}

func (s *requestService) SubmitAnnualLeave(ctx context.Context, viewer model.ViewerIdentity, in AnnualLeaveInput) (model.Request, error) {
	start := parseDate(in.DateStart)
	end := parseDate(in.DateEnd)
	if start == nil || end == nil {
		return nil, &ValidationError{Msg: "invalid date format, expected YYYY-MM-DD"}
	}
	duration := int(end.Sub(*start).Hours()/24) + 1
	if duration < 1 {
		return nil, &ValidationError{Msg: "date_end must not be before date_start"}
	}

	rec := &model.AnnualLeaveRequest{
		Name:           viewer.Name,
		Division:       viewer.Division,
		CutiType:       in.CutiType,
		DateStart:      *start,
		DateEnd:        *end,
		Duration:       duration,
		Purpose:        in.Purpose,
		Address:        in.Address,
		Phone:          in.Phone,
		Notes:          in.Notes,
		LeaveDays:      in.LeaveDays,
		LeaveRemaining: in.LeaveRemaining,
	}
	rec.Status = model.StatusPending
	return rec, s.create(ctx, viewer, rec)
}

func (s *requestService) SubmitInTownTravel(ctx context.Context, viewer model.ViewerIdentity, in InTownTravelInput) (model.Request, error) {
	start, err := time.Parse(time.RFC3339, in.TimeStart)
	if err != nil {
		return nil, &ValidationError{Msg: "invalid time_start, expected RFC 3339"}
	}
	end, err := time.Parse(time.RFC3339, in.TimeEnd)
	if err != nil {
		return nil, &ValidationError{Msg: "invalid time_end, expected RFC 3339"}
	}
	if !end.After(start) {
		return nil, &ValidationError{Msg: "time_end must be after time_start"}
	}

	rec := &model.InTownTravelRequest{
		Name:       viewer.Name,
		Division:   viewer.Division,
		Purpose:    in.Purpose,
		TimeStart:  start,
		TimeEnd:    end,
		StatusNote: in.StatusNote,
	}
	rec.Status = model.StatusPending
	return rec, s.create(ctx, viewer, rec)
}

func (s *requestService) SubmitOutOfTownTravel(ctx context.Context, viewer model.ViewerIdentity, in OutOfTownTravelInput) (model.Request, error) {
	depart := parseDate(in.DepartDate)
	ret := parseDate(in.ReturnDate)
	if depart == nil || ret == nil {
		return nil, &ValidationError{Msg: "invalid date format, expected YYYY-MM-DD"}
	}
	if ret.Before(*depart) {
		return nil, &ValidationError{Msg: "return_date must not be before depart_date"}
	}

	rec := &model.OutOfTownTravelRequest{
		Name:             viewer.Name,
		Division:         viewer.Division,
		Destination:      in.Destination,
		Purpose:          in.Purpose,
		Needs:            in.Needs,
		Companions:       in.Companions,
		CompanionPurpose: in.CompanionPurpose,
		DepartDate:       *depart,
		ReturnDate:       *ret,
		TransportType:    in.TransportType,
		ItemsBrought:     in.ItemsBrought,
	}
	rec.Status = model.StatusPending
	return rec, s.create(ctx, viewer, rec)
}

func (s *requestService) MyRequests(ctx context.Context, viewer model.ViewerIdentity, kind model.Kind) ([]model.Request, error) {
	return s.repo.ListByName(ctx, kind, viewer.Name)
}

func (s *requestService) ByDivision(ctx context.Context, viewer model.ViewerIdentity, kind model.Kind) ([]model.Request, error) {
	division, all, err := reviewScope(viewer)
	if err != nil {
		return nil, err
	}
	if all {
		return s.repo.ListAll(ctx, kind)
	}
	return s.repo.ListByDivision(ctx, kind, division)
}

func (s *requestService) AllRequests(ctx context.Context, kind model.Kind) ([]model.Request, error) {
	return s.repo.ListAll(ctx, kind)
}

// create persists a new record together with its audit row.
func (s *requestService) create(ctx context.Context, viewer model.ViewerIdentity, rec model.Request) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Create(txCtx, rec); err != nil {
			return fmt.Errorf("failed to create %s request: %w", rec.Kind(), err)
		}
		details, _ := json.Marshal(map[string]interface{}{
			"kind":     rec.Kind(),
			"division": rec.RequestDivision(),
		})
		entry := model.AuditLog{
			UserID:     viewerUUID(viewer),
			Action:     model.ActionSubmitRequest,
			Kind:       rec.Kind(),
			RecordID:   rec.RecordID(),
			EntityName: rec.RequesterName(),
			Details:    string(details),
		}
		if err := s.audit.Log(txCtx, &entry); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
}

// reviewScope resolves which records a reviewing viewer may list: admins and
// the HRD & GA head see every division, other division heads see their own.
func reviewScope(v model.ViewerIdentity) (division string, all bool, err error) {
	switch {
	case v.Role == model.RoleAdmin:
		return "", true, nil
	case v.Role == model.RoleDivHead && model.SameDivision(v.Division, model.DivisionHRD):
		return "", true, nil
	case v.Role == model.RoleDivHead:
		return v.Division, false, nil
	}
	return "", false, ErrNotReviewer
}

// viewerUUID parses the viewer id for audit rows; nil when the identity
// carries no database id (e.g. synthetic test viewers).
func viewerUUID(v model.ViewerIdentity) *uuid.UUID {
	id, err := uuid.Parse(v.ID)
	if err != nil {
		return nil
	}
	return &id
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}
