package middleware

import (
	"github.com/gofiber/fiber/v2"

	"presensiku_backend/internals/constants"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

// RequireRoles: gate sederhana berbasis claim `role` (sudah dihydrate AuthJWT).
func RequireRoles(feature string, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helperAuth.GetRoleFromToken(c)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
	}
}

// RequireTeacherOrAbove: teacher, admin, owner.
func RequireTeacherOrAbove(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helperAuth.GetRoleFromToken(c)
		for _, a := range constants.TeacherAndAbove {
			if role == a {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher(feature))
	}
}

// RequireAdminOrAbove: admin, owner.
func RequireAdminOrAbove(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helperAuth.GetRoleFromToken(c)
		for _, a := range constants.AdminAndAbove {
			if role == a {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
	}
}
