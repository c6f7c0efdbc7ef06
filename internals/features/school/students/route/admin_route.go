package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/students/controller"
)

// StudentAdminRoutes: CRUD student (group admin sudah dibungkus AuthJWT + role gate).
func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := r.Group("/students")
	students.Post("/", ctrl.Create)
	students.Get("/", ctrl.List)
	students.Get("/:id", ctrl.GetByID)
	students.Patch("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete)
}
