package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "presensiku_backend/internals/features/school/attendance_records/route"
)

// TeacherRoutes: /api/t — operasi harian guru (teacher|admin|owner).
func TeacherRoutes(r fiber.Router, db *gorm.DB) {
	attendanceRoute.AttendanceRecordTeacherRoutes(r, db)
}
