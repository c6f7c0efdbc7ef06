package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/attendance_records/controller"
)

func AttendanceRecordTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceRecordController(db)

	records := r.Group("/attendance-records")
	records.Post("/", ctrl.Create)
	records.Post("/bulk", ctrl.BulkMark)
	records.Get("/", ctrl.List)
	records.Get("/:id", ctrl.GetByID)
	records.Put("/:id", ctrl.Update)
	records.Delete("/:id", ctrl.Delete)
}
