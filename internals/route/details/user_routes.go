package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	messageRoute "presensiku_backend/internals/features/school/messages/route"
)

// UserRoutes: /api/u — fitur semua user login (pesan internal dll).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	messageRoute.MessageUserRoutes(r, db)
}
