package service

import (
	"context"

	"hrportal/internal/model"
	"hrportal/internal/repository"
)

// AuditService exposes the audit trail to admin listings.
type AuditService interface {
	List(ctx context.Context, page, limit int) ([]model.AuditLog, int64, error)
}

type auditService struct {
	repo repository.AuditRepository
}

// NewAuditService returns a new instance of AuditService
func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) List(ctx context.Context, page, limit int) ([]model.AuditLog, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.repo.List(ctx, page, limit)
}
