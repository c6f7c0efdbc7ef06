package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/teachers/controller"
)

func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)

	teachers := r.Group("/teachers")
	teachers.Post("/", ctrl.Create)
	teachers.Get("/", ctrl.List)
	teachers.Get("/:id", ctrl.GetByID)
	teachers.Patch("/:id", ctrl.Update)
	teachers.Delete("/:id", ctrl.Delete)
}
