package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/enrollments/controller"
)

func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEnrollmentController(db)

	enrollments := r.Group("/enrollments")
	enrollments.Post("/", ctrl.Create)
	enrollments.Get("/", ctrl.List)
	enrollments.Post("/:id/leave", ctrl.Leave)
	enrollments.Delete("/:id", ctrl.Delete)
}
