package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys yang dihydrate oleh middleware AuthJWT ke c.Locals.
const (
	LocUserID    = "user_id"
	LocRole      = "role"
	LocSchoolID  = "school_id"
	LocTeacherID = "teacher_id"
	LocStudentID = "student_id"
)

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v, _ := c.Locals(key).(string)
	v = strings.TrimSpace(v)
	if v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak valid")
	}
	return id, nil
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocUserID)
}

func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocSchoolID)
}

// GetTeacherIDFromToken: hanya terisi kalau user adalah teacher.
func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocTeacherID)
}

func GetRoleFromToken(c *fiber.Ctx) string {
	r, _ := c.Locals(LocRole).(string)
	return strings.ToLower(strings.TrimSpace(r))
}
