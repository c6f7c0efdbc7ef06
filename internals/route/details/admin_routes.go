package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementRoute "presensiku_backend/internals/features/school/announcements/route"
	riskRoute "presensiku_backend/internals/features/school/attendance_analytics/risk/route"
	scoringRoute "presensiku_backend/internals/features/school/attendance_analytics/scoring/route"
	auditRoute "presensiku_backend/internals/features/school/audit_logs/route"
	sessionRoute "presensiku_backend/internals/features/school/course_sessions/route"
	courseRoute "presensiku_backend/internals/features/school/courses/route"
	enrollmentRoute "presensiku_backend/internals/features/school/enrollments/route"
	studentRoute "presensiku_backend/internals/features/school/students/route"
	teacherRoute "presensiku_backend/internals/features/school/teachers/route"
)

// AdminRoutes: /api/a — semua operasi administratif sekolah (admin|owner).
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	studentRoute.StudentAdminRoutes(r, db)
	teacherRoute.TeacherAdminRoutes(r, db)
	courseRoute.CourseAdminRoutes(r, db)
	sessionRoute.CourseSessionAdminRoutes(r, db)
	enrollmentRoute.EnrollmentAdminRoutes(r, db)
	announcementRoute.AnnouncementAdminRoutes(r, db)
	auditRoute.AuditLogAdminRoutes(r, db)
	scoringRoute.ScoringAdminRoutes(r, db)
	riskRoute.RiskAdminRoutes(r, db)
}
