package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/attendance_analytics/scoring/controller"
)

func ScoringAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScoringConfigController(db)

	scoring := r.Group("/attendance-analytics")
	scoring.Get("/scoring-config", ctrl.GetConfig)
	scoring.Put("/scoring-config", ctrl.UpsertConfig)
	scoring.Post("/scoring-config/preview", ctrl.PreviewScore)
	scoring.Get("/students/:student_id/score", ctrl.StudentScoreReport)
}
