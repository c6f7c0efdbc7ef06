package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/announcements/controller"
)

func AnnouncementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)

	announcements := r.Group("/announcements")
	announcements.Post("/", ctrl.Create)
	announcements.Get("/", ctrl.List)
	announcements.Get("/:id", ctrl.GetByID)
	announcements.Put("/:id", ctrl.Update)
	announcements.Post("/:id/publish", ctrl.Publish)
	announcements.Delete("/:id", ctrl.Delete)
}
