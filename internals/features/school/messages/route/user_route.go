package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/messages/controller"
)

func MessageUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMessageController(db)

	messages := r.Group("/messages")
	messages.Post("/", ctrl.Send)
	messages.Get("/inbox", ctrl.Inbox)
	messages.Get("/sent", ctrl.Sent)
	messages.Get("/:id", ctrl.GetByID)
	messages.Post("/:id/read", ctrl.MarkRead)
	messages.Delete("/:id", ctrl.Delete)
}
