package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	svc "presensiku_backend/internals/features/school/attendance_analytics/risk/service"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type RiskController struct {
	DB *gorm.DB
}

func NewRiskController(db *gorm.DB) *RiskController {
	return &RiskController{DB: db}
}

type joinedRow struct {
	StudentID   uuid.UUID `gorm:"column:student_id"`
	CourseID    uuid.UUID `gorm:"column:course_id"`
	Date        time.Time `gorm:"column:session_date"`
	Status      string    `gorm:"column:status"`
	LateMinutes *float64  `gorm:"column:late_minutes"`
}

// analysisWindow: rentang tanggal sesi yang ikut dianalisis. since_days
// di-clamp 7..366; batas atas selalu asOf supaya sesi berjadwal di masa
// depan tidak pernah masuk perhitungan recency.
func analysisWindow(asOf time.Time, sinceDays int) (since, until time.Time) {
	if sinceDays < 7 {
		sinceDays = 7
	}
	if sinceDays > 366 {
		sinceDays = 366
	}
	return asOf.AddDate(0, 0, -sinceDays), asOf
}

// GET /api/a/attendance-analytics/at-risk?course_id=&tier=&since_days=
// Analisis seluruh pasangan (student, course) sekolah; hasil terurut dari
// tier paling berat. since_days membatasi window data (default 120 hari).
func (ctrl *RiskController) ListAtRisk(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	asOf := time.Now()
	since, until := analysisWindow(asOf, c.QueryInt("since_days", 120))

	q := ctrl.DB.Table("attendance_records ar").
		Select(`ar.attendance_record_student_id AS student_id,
			cs.course_session_course_id AS course_id,
			cs.course_session_date AS session_date,
			ar.attendance_record_status AS status,
			ar.attendance_record_late_minutes AS late_minutes`).
		Joins("JOIN course_sessions cs ON cs.course_session_id = ar.attendance_record_session_id AND cs.course_session_deleted_at IS NULL").
		Where("ar.attendance_record_deleted_at IS NULL").
		Where("ar.attendance_record_school_id = ?", schoolID).
		Where("cs.course_session_date >= ? AND cs.course_session_date <= ?", since, until)
	if courseID := c.Query("course_id"); courseID != "" {
		id, err := uuid.Parse(courseID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
		}
		q = q.Where("cs.course_session_course_id = ?", id)
	}

	var rows []joinedRow
	if err := q.Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}

	records := make([]svc.JoinedAttendanceRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, svc.JoinedAttendanceRecord{
			StudentID:   r.StudentID,
			CourseID:    r.CourseID,
			Date:        r.Date,
			Status:      r.Status,
			LateMinutes: r.LateMinutes,
		})
	}

	assessments := svc.AnalyzeAttendanceRisk(records, asOf)

	if tier := c.Query("tier"); tier != "" {
		switch svc.RiskTier(tier) {
		case svc.TierCritical, svc.TierHigh, svc.TierMedium, svc.TierWatch:
			filtered := assessments[:0]
			for _, a := range assessments {
				if a.Tier == svc.RiskTier(tier) {
					filtered = append(filtered, a)
				}
			}
			assessments = filtered
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Tier tidak dikenal")
		}
	}

	return helper.Success(c, "Analisis risiko berhasil dihitung", fiber.Map{
		"as_of":       asOf,
		"since":       since,
		"total":       len(assessments),
		"assessments": assessments,
	})
}

// GET /api/a/attendance-analytics/students/:student_id/risk?course_id=&since_days=
func (ctrl *RiskController) StudentRisk(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Student ID tidak valid")
	}

	asOf := time.Now()
	since, until := analysisWindow(asOf, c.QueryInt("since_days", 120))

	q := ctrl.DB.Table("attendance_records ar").
		Select(`ar.attendance_record_student_id AS student_id,
			cs.course_session_course_id AS course_id,
			cs.course_session_date AS session_date,
			ar.attendance_record_status AS status,
			ar.attendance_record_late_minutes AS late_minutes`).
		Joins("JOIN course_sessions cs ON cs.course_session_id = ar.attendance_record_session_id AND cs.course_session_deleted_at IS NULL").
		Where("ar.attendance_record_deleted_at IS NULL").
		Where("ar.attendance_record_school_id = ?", schoolID).
		Where("ar.attendance_record_student_id = ?", studentID).
		Where("cs.course_session_date >= ? AND cs.course_session_date <= ?", since, until)
	if courseID := c.Query("course_id"); courseID != "" {
		id, err := uuid.Parse(courseID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
		}
		q = q.Where("cs.course_session_course_id = ?", id)
	}

	var rows []joinedRow
	if err := q.Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}

	records := make([]svc.JoinedAttendanceRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, svc.JoinedAttendanceRecord{
			StudentID:   r.StudentID,
			CourseID:    r.CourseID,
			Date:        r.Date,
			Status:      r.Status,
			LateMinutes: r.LateMinutes,
		})
	}

	assessments := svc.AnalyzeAttendanceRisk(records, asOf)

	return helper.Success(c, "Analisis risiko student berhasil dihitung", fiber.Map{
		"as_of":       asOf,
		"since":       since,
		"total":       len(assessments),
		"assessments": assessments,
	})
}
