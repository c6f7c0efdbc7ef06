package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/attendance_analytics/risk/controller"
	"presensiku_backend/internals/middlewares"
)

func RiskAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRiskController(db)

	risk := r.Group("/attendance-analytics", middlewares.AnalyticsRateLimiter())
	risk.Get("/at-risk", ctrl.ListAtRisk)
	risk.Get("/students/:student_id/risk", ctrl.StudentRisk)
}
