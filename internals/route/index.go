package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/configs"
	"presensiku_backend/internals/middlewares"
	authMw "presensiku_backend/internals/middlewares/auth_school"
	"presensiku_backend/internals/route/details"
)

// SetupRoutes mendaftarkan seluruh route API.
//
//	/api/a — admin & owner
//	/api/t — teacher ke atas
//	/api/u — semua user login
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up routes...")

	secret := configs.GetEnv("JWT_SECRET")
	authed := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              secret,
		AllowCookieFallback: true,
	})

	api := app.Group("/api", middlewares.DBMiddleware(db))

	admin := api.Group("/a", authed, authMw.RequireAdminOrAbove("admin api"))
	details.AdminRoutes(admin, db)

	teacher := api.Group("/t", authed, authMw.RequireTeacherOrAbove("teacher api"))
	details.TeacherRoutes(teacher, db)

	user := api.Group("/u", authed)
	details.UserRoutes(user, db)

	log.Println("[INFO] Routes ready ✅")
}
