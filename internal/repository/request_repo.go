package repository

import (
	"context"
	"fmt"

	"hrportal/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RequestRepository is the data access layer for all four request tables.
// Callers address records by (kind, id); the repository dispatches to the
// right table. List results come back newest first.
type RequestRepository interface {
	Create(ctx context.Context, rec model.Request) error
	Get(ctx context.Context, kind model.Kind, id uint) (model.Request, error)
	// GetForUpdate row-locks the record inside the ambient transaction so
	// two approvers cannot race on the same stage.
	GetForUpdate(ctx context.Context, kind model.Kind, id uint) (model.Request, error)
	Save(ctx context.Context, rec model.Request) error
	ListByName(ctx context.Context, kind model.Kind, name string) ([]model.Request, error)
	ListByDivision(ctx context.Context, kind model.Kind, division string) ([]model.Request, error)
	ListAll(ctx context.Context, kind model.Kind) ([]model.Request, error)
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository returns a new instance of RequestRepository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, rec model.Request) error {
	return GetDB(ctx, r.db).Create(rec).Error
}

func (r *requestRepository) Get(ctx context.Context, kind model.Kind, id uint) (model.Request, error) {
	return fetch(GetDB(ctx, r.db), kind, id)
}

func (r *requestRepository) GetForUpdate(ctx context.Context, kind model.Kind, id uint) (model.Request, error) {
	return fetch(GetDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), kind, id)
}

func (r *requestRepository) Save(ctx context.Context, rec model.Request) error {
	return GetDB(ctx, r.db).Save(rec).Error
}

func (r *requestRepository) ListByName(ctx context.Context, kind model.Kind, name string) ([]model.Request, error) {
	return list(GetDB(ctx, r.db).Where("name = ?", name), kind)
}

func (r *requestRepository) ListByDivision(ctx context.Context, kind model.Kind, division string) ([]model.Request, error) {
	return list(GetDB(ctx, r.db).Where("UPPER(TRIM(division)) = UPPER(TRIM(?))", division), kind)
}

func (r *requestRepository) ListAll(ctx context.Context, kind model.Kind) ([]model.Request, error) {
	return list(GetDB(ctx, r.db), kind)
}

func fetch(db *gorm.DB, kind model.Kind, id uint) (model.Request, error) {
	switch kind {
	case model.KindPersonalLeave:
		var rec model.PersonalLeaveRequest
		if err := db.First(&rec, id).Error; err != nil {
			return nil, err
		}
		return &rec, nil
	case model.KindAnnualLeave:
		var rec model.AnnualLeaveRequest
		if err := db.First(&rec, id).Error; err != nil {
			return nil, err
		}
		return &rec, nil
	case model.KindInTownTravel:
		var rec model.InTownTravelRequest
		if err := db.First(&rec, id).Error; err != nil {
			return nil, err
		}
		return &rec, nil
	case model.KindOutOfTownTravel:
		var rec model.OutOfTownTravelRequest
		if err := db.First(&rec, id).Error; err != nil {
			return nil, err
		}
		return &rec, nil
	}
	return nil, fmt.Errorf("unknown request kind %q", kind)
}

func list(db *gorm.DB, kind model.Kind) ([]model.Request, error) {
	db = db.Order("created_at DESC")
	switch kind {
	case model.KindPersonalLeave:
		var recs []model.PersonalLeaveRequest
		if err := db.Find(&recs).Error; err != nil {
			return nil, err
		}
		return asRequests(recs), nil
	case model.KindAnnualLeave:
		var recs []model.AnnualLeaveRequest
		if err := db.Find(&recs).Error; err != nil {
			return nil, err
		}
		return asRequests(recs), nil
	case model.KindInTownTravel:
		var recs []model.InTownTravelRequest
		if err := db.Find(&recs).Error; err != nil {
			return nil, err
		}
		return asRequests(recs), nil
	case model.KindOutOfTownTravel:
		var recs []model.OutOfTownTravelRequest
		if err := db.Find(&recs).Error; err != nil {
			return nil, err
		}
		return asRequests(recs), nil
	}
	return nil, fmt.Errorf("unknown request kind %q", kind)
}

func asRequests[T any, PT interface {
	*T
	model.Request
}](recs []T) []model.Request {
	out := make([]model.Request, len(recs))
	for i := range recs {
		out[i] = PT(&recs[i])
	}
	return out
}
