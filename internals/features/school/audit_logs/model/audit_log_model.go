package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Append-only; tidak ada update/delete.
type AuditLogModel struct {
	AuditLogId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:audit_log_id" json:"audit_log_id"`

	AuditLogSchoolId uuid.UUID  `gorm:"type:uuid;not null;index;column:audit_log_school_id" json:"audit_log_school_id"`
	AuditLogActorId  *uuid.UUID `gorm:"type:uuid;column:audit_log_actor_id" json:"audit_log_actor_id,omitempty"`

	AuditLogAction   string     `gorm:"not null;column:audit_log_action" json:"audit_log_action"` // create|update|delete
	AuditLogEntity   string     `gorm:"not null;index;column:audit_log_entity" json:"audit_log_entity"`
	AuditLogEntityId *uuid.UUID `gorm:"type:uuid;column:audit_log_entity_id" json:"audit_log_entity_id,omitempty"`

	AuditLogDetail datatypes.JSON `gorm:"column:audit_log_detail" json:"audit_log_detail,omitempty"`

	AuditLogCreatedAt time.Time `gorm:"column:audit_log_created_at;autoCreateTime" json:"audit_log_created_at"`
}

func (AuditLogModel) TableName() string { return "audit_logs" }
