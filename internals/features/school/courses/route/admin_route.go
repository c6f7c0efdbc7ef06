package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/courses/controller"
)

func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)

	courses := r.Group("/courses")
	courses.Post("/", ctrl.Create)
	courses.Get("/", ctrl.List)
	courses.Get("/:id", ctrl.GetByID)
	courses.Patch("/:id", ctrl.Update)
	courses.Delete("/:id", ctrl.Delete)
}
