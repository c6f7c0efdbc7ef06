package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/audit_logs/controller"
)

func AuditLogAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuditLogController(db)

	logs := r.Group("/audit-logs")
	logs.Get("/", ctrl.List)
}
