package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/course_sessions/controller"
)

func CourseSessionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseSessionController(db)

	sessions := r.Group("/course-sessions")
	sessions.Post("/", ctrl.Create)
	sessions.Post("/generate", ctrl.Generate)
	sessions.Get("/", ctrl.List)
	sessions.Patch("/:id", ctrl.Update)
	sessions.Delete("/:id", ctrl.Delete)
}
