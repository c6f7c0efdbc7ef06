package controller

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	svc "presensiku_backend/internals/features/school/attendance_analytics/scoring/service"
)

func fptr(v float64) *float64 { return &v }

func TestBuildScoreReport(t *testing.T) {
	cfg := svc.DefaultScoringConfig()
	studentID := uuid.New()
	courseID := uuid.New()

	d := func(offset int) time.Time {
		return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}
	rows := []scoredRow{
		{Status: "on_time", SessionDate: d(0), CourseID: courseID},
		{Status: "on_time", SessionDate: d(1), CourseID: courseID},
		{Status: "late", LateMinutes: fptr(10), SessionDate: d(2), CourseID: courseID},
		{Status: "absent", SessionDate: d(3), CourseID: courseID},
		{Status: "excused", SessionDate: d(4), CourseID: courseID},
	}

	rep := buildScoreReport(studentID, &courseID, rows, 10, cfg)

	if rep.TotalSessionDays != 10 || rep.EffectiveDays != 4 {
		t.Errorf("hari: total=%d effective=%d, want 10/4", rep.TotalSessionDays, rep.EffectiveDays)
	}
	if rep.PresentDays != 3 || rep.OnTimeDays != 2 || rep.LateDays != 1 || rep.AbsentDays != 1 || rep.ExcusedDays != 1 {
		t.Errorf("counter salah: %+v", rep)
	}
	if math.Abs(rep.AttendanceRate-75) > 1e-9 {
		t.Errorf("AttendanceRate = %v, want 75", rep.AttendanceRate)
	}
	wantPunctuality := 2.0 / 3.0 * 100
	if math.Abs(rep.PunctualityPct-wantPunctuality) > 1e-9 {
		t.Errorf("PunctualityPct = %v, want %v", rep.PunctualityPct, wantPunctuality)
	}

	// quality = (1 + 1 + LateScore(10) + 0) / 4 × 100
	wantQuality := (2 + svc.LateScore(fptr(10), cfg)) / 4 * 100
	if math.Abs(rep.QualityAdjustedRate-wantQuality) > 1e-9 {
		t.Errorf("QualityAdjustedRate = %v, want %v", rep.QualityAdjustedRate, wantQuality)
	}

	if rep.LateBreakdown["Moderate"] != 1 {
		t.Errorf("LateBreakdown = %v, want Moderate:1", rep.LateBreakdown)
	}

	want := svc.WeightedScore(rep.QualityAdjustedRate, rep.AttendanceRate, rep.PunctualityPct, 4, 10, cfg)
	if rep.Score != want {
		t.Errorf("Score = %+v, want %+v", rep.Score, want)
	}
}

func TestBuildScoreReportNoRows(t *testing.T) {
	cfg := svc.DefaultScoringConfig()
	rep := buildScoreReport(uuid.New(), nil, nil, 0, cfg)

	if rep.EffectiveDays != 0 || rep.AttendanceRate != 0 || rep.Score.FinalScore != 0 {
		t.Errorf("report tanpa data harus nol: %+v", rep)
	}
	if rep.LateBreakdown != nil {
		t.Errorf("breakdown kosong harus nil, dapat %v", rep.LateBreakdown)
	}
}
