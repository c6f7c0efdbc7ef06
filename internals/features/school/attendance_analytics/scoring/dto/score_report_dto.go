package dto

import (
	"github.com/google/uuid"

	svc "presensiku_backend/internals/features/school/attendance_analytics/scoring/service"
)

// ScorePreviewRequest: counter mentah untuk pratinjau skor (kalibrasi bobot).
type ScorePreviewRequest struct {
	QualityAdjustedRate float64 `json:"quality_adjusted_rate" validate:"gte=0,lte=100"`
	AttendanceRate      float64 `json:"attendance_rate" validate:"gte=0,lte=100"`
	PunctualityPct      float64 `json:"punctuality_pct" validate:"gte=0,lte=100"`
	EffectiveDays       float64 `json:"effective_days" validate:"gte=0"`
	TotalSessionDays    float64 `json:"total_session_days" validate:"gte=0"`
}

// StudentScoreReport: laporan skor satu student dari data kehadiran live.
type StudentScoreReport struct {
	StudentID uuid.UUID  `json:"student_id"`
	CourseID  *uuid.UUID `json:"course_id,omitempty"` // nil = lintas semua course

	TotalSessionDays int `json:"total_session_days"`
	EffectiveDays    int `json:"effective_days"`
	PresentDays      int `json:"present_days"`
	OnTimeDays       int `json:"on_time_days"`
	LateDays         int `json:"late_days"`
	AbsentDays       int `json:"absent_days"`
	ExcusedDays      int `json:"excused_days"`

	AttendanceRate      float64 `json:"attendance_rate"`
	PunctualityPct      float64 `json:"punctuality_pct"`
	QualityAdjustedRate float64 `json:"quality_adjusted_rate"`

	Score svc.ScoreResult `json:"score"`

	// Distribusi keterlambatan per bracket (label -> jumlah hari)
	LateBreakdown map[string]int `json:"late_breakdown,omitempty"`
}
