package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/audit_logs/model"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type AuditLogController struct {
	DB *gorm.DB
}

func NewAuditLogController(db *gorm.DB) *AuditLogController {
	return &AuditLogController{DB: db}
}

// GET /api/a/audit-logs?entity=&action=&actor_id=
func (ctrl *AuditLogController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.AuditLogModel{}).
		Where("audit_log_school_id = ?", schoolID)
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("audit_log_entity = ?", entity)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("audit_log_action = ?", action)
	}
	if actorID := c.Query("actor_id"); actorID != "" {
		q = q.Where("audit_log_actor_id = ?", actorID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung audit log")
	}

	var list []model.AuditLogModel
	if err := q.Order("audit_log_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil audit log")
	}

	return helper.SuccessList(c, "Audit log berhasil diambil", list, helper.BuildPagination(paging, total, len(list)))
}
