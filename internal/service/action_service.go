package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hrportal/internal/approval"
	"hrportal/internal/model"
	"hrportal/internal/repository"

	"gorm.io/gorm"
)

// ActionService applies one stage decision to one record. The state machine
// decides validity; this service owns locking, persistence and the audit
// trail around it.
type ActionService interface {
	ApplyStage(ctx context.Context, viewer model.ViewerIdentity, kind model.Kind, id uint, stage approval.Stage, action approval.Action) (model.Request, error)
}

type actionService struct {
	repo  repository.RequestRepository
	audit repository.AuditRepository
	tx    repository.TransactionManager
}

// NewActionService returns a new instance of ActionService
func NewActionService(repo repository.RequestRepository, audit repository.AuditRepository, tx repository.TransactionManager) ActionService {
	return &actionService{repo: repo, audit: audit, tx: tx}
}

func (s *actionService) ApplyStage(ctx context.Context, viewer model.ViewerIdentity, kind model.Kind, id uint, stage approval.Stage, action approval.Action) (model.Request, error) {
	var rec model.Request
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		rec, err = s.repo.GetForUpdate(txCtx, kind, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load %s request %d: %w", kind, id, err)
		}

		if !approval.CanActAtStage(viewer, rec.RequestDivision(), stage) {
			return &approval.AuthorizationError{Stage: stage, Reason: approval.ReasonNotPermitted}
		}
		if viewer.Name != "" && viewer.Name == rec.RequesterName() {
			return &approval.AuthorizationError{Stage: stage, Reason: approval.ReasonSelfApproval}
		}

		trail, err := approval.Apply(kind, *rec.Trail(), stage, action, viewer.Name)
		if err != nil {
			return err
		}
		*rec.Trail() = trail

		if err := s.repo.Save(txCtx, rec); err != nil {
			return fmt.Errorf("failed to update %s request %d: %w", kind, id, err)
		}

		auditAction := model.ActionStageApprove
		if action == approval.ActionReject {
			auditAction = model.ActionStageReject
		}
		details, _ := json.Marshal(map[string]interface{}{
			"stage":  stage,
			"action": action,
			"status": trail.Status,
		})
		entry := model.AuditLog{
			UserID:     viewerUUID(viewer),
			Action:     auditAction,
			Kind:       kind,
			RecordID:   id,
			EntityName: rec.RequesterName(),
			Details:    string(details),
		}
		if err := s.audit.Log(txCtx, &entry); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
