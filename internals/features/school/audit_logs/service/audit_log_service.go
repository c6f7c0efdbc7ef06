package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/audit_logs/model"
)

// Record menulis satu baris audit. Best-effort: gagal audit TIDAK menggagalkan
// operasi utamanya, cukup dicatat di log server.
func Record(db *gorm.DB, schoolID uuid.UUID, actorID *uuid.UUID, action, entity string, entityID *uuid.UUID, detail any) {
	row := model.AuditLogModel{
		AuditLogSchoolId: schoolID,
		AuditLogActorId:  actorID,
		AuditLogAction:   action,
		AuditLogEntity:   entity,
		AuditLogEntityId: entityID,
	}
	if detail != nil {
		if b, err := json.Marshal(detail); err == nil {
			row.AuditLogDetail = datatypes.JSON(b)
		}
	}
	if err := db.Create(&row).Error; err != nil {
		log.Printf("[WARN] audit log gagal ditulis: entity=%s action=%s err=%v", entity, action, err)
	}
}
