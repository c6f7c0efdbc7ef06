package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/school/attendance_analytics/scoring/dto"
	svc "presensiku_backend/internals/features/school/attendance_analytics/scoring/service"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type scoredRow struct {
	Status      string    `gorm:"column:attendance_record_status"`
	LateMinutes *float64  `gorm:"column:attendance_record_late_minutes"`
	SessionDate time.Time `gorm:"column:course_session_date"`
	CourseID    uuid.UUID `gorm:"column:course_session_course_id"`
}

// GET /api/a/attendance-analytics/students/:student_id/score?course_id=
// Laporan skor dari data kehadiran live. Denominator coverage = jumlah sesi
// course yang diikuti student (dalam window enrollment, s/d hari ini).
func (ctrl *ScoringConfigController) StudentScoreReport(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Student ID tidak valid")
	}

	var courseID *uuid.UUID
	if raw := c.Query("course_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
		}
		courseID = &id
	}

	cfg, err := ctrl.loadConfig(schoolID)
	if err != nil {
		return err
	}

	// Total sesi (denominator coverage): sesi course dalam window enrollment.
	totalQ := ctrl.DB.Table("course_sessions cs").
		Joins("JOIN enrollments e ON e.enrollment_course_id = cs.course_session_course_id AND e.enrollment_deleted_at IS NULL").
		Where("cs.course_session_deleted_at IS NULL").
		Where("cs.course_session_school_id = ?", schoolID).
		Where("e.enrollment_student_id = ?", studentID).
		Where("cs.course_session_date >= e.enrollment_joined_at").
		Where("e.enrollment_left_at IS NULL OR cs.course_session_date <= e.enrollment_left_at").
		Where("cs.course_session_date <= CURRENT_DATE")
	if courseID != nil {
		totalQ = totalQ.Where("cs.course_session_course_id = ?", *courseID)
	}
	var totalSessionDays int64
	if err := totalQ.Count(&totalSessionDays).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung sesi")
	}

	// Baris kehadiran student (join sesi untuk tanggal & course).
	rowQ := ctrl.DB.Table("attendance_records ar").
		Select("ar.attendance_record_status, ar.attendance_record_late_minutes, cs.course_session_date, cs.course_session_course_id").
		Joins("JOIN course_sessions cs ON cs.course_session_id = ar.attendance_record_session_id AND cs.course_session_deleted_at IS NULL").
		Where("ar.attendance_record_deleted_at IS NULL").
		Where("ar.attendance_record_school_id = ?", schoolID).
		Where("ar.attendance_record_student_id = ?", studentID)
	if courseID != nil {
		rowQ = rowQ.Where("cs.course_session_course_id = ?", *courseID)
	}
	var rows []scoredRow
	if err := rowQ.Order("cs.course_session_date ASC").Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}

	report := buildScoreReport(studentID, courseID, rows, int(totalSessionDays), cfg)
	return helper.Success(c, "Laporan skor berhasil dihitung", report)
}

func buildScoreReport(studentID uuid.UUID, courseID *uuid.UUID, rows []scoredRow, totalSessionDays int, cfg svc.ScoringConfig) dto.StudentScoreReport {
	rep := dto.StudentScoreReport{
		StudentID:        studentID,
		CourseID:         courseID,
		TotalSessionDays: totalSessionDays,
		LateBreakdown:    map[string]int{},
	}

	var qualitySum float64
	for _, r := range rows {
		if !constants.IsEffectiveStatus(r.Status) {
			if r.Status == constants.AttendanceStatusExcused {
				rep.ExcusedDays++
			}
			continue
		}
		rep.EffectiveDays++

		switch r.Status {
		case constants.AttendanceStatusOnTime:
			rep.PresentDays++
			rep.OnTimeDays++
			qualitySum += 1
		case constants.AttendanceStatusLate:
			rep.PresentDays++
			rep.LateDays++
			qualitySum += svc.LateScore(r.LateMinutes, cfg)
			if r.LateMinutes != nil {
				label := svc.BracketLabel(int(*r.LateMinutes), cfg.LateBrackets)
				if label != "" {
					rep.LateBreakdown[label]++
				}
			}
		case constants.AttendanceStatusAbsent:
			rep.AbsentDays++
		}
	}

	if rep.EffectiveDays > 0 {
		rep.AttendanceRate = float64(rep.PresentDays) / float64(rep.EffectiveDays) * 100
		rep.QualityAdjustedRate = qualitySum / float64(rep.EffectiveDays) * 100
	}
	if rep.PresentDays > 0 {
		rep.PunctualityPct = float64(rep.OnTimeDays) / float64(rep.PresentDays) * 100
	}

	rep.Score = svc.WeightedScore(
		rep.QualityAdjustedRate,
		rep.AttendanceRate,
		rep.PunctualityPct,
		float64(rep.EffectiveDays),
		float64(rep.TotalSessionDays),
		cfg,
	)
	if len(rep.LateBreakdown) == 0 {
		rep.LateBreakdown = nil
	}
	return rep
}
