package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionSubmitRequest = "SUBMIT_REQUEST"
	ActionStageApprove  = "STAGE_APPROVE"
	ActionStageReject   = "STAGE_REJECT"
	ActionRegisterUser  = "REGISTER_USER"
)

// AuditLog tracks Who, What, and When for every approval decision and
// submission.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User       *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	Kind       Kind       `gorm:"type:varchar(30);index" json:"kind,omitempty"`
	RecordID   uint       `gorm:"index" json:"record_id,omitempty"`
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // Human readable name
	Details    string     `gorm:"type:jsonb" json:"details"`                      // Serialized JSON payload of the action
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
