package service

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testAsOf = time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	// offset 0 = hari asOf, 1 = kemarin, dst.
	return time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
}

func rec(student, course uuid.UUID, date time.Time, status string, late *float64) JoinedAttendanceRecord {
	return JoinedAttendanceRecord{
		StudentID:   student,
		CourseID:    course,
		Date:        date,
		Status:      status,
		LateMinutes: late,
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	out := AnalyzeAttendanceRisk(nil, testAsOf)
	if len(out) != 0 {
		t.Fatalf("input kosong harus menghasilkan output kosong, dapat %d", len(out))
	}
}

func TestAnalyzeSkipsThinHistory(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	records := []JoinedAttendanceRecord{
		rec(s, c, day(0), "absent", nil),
		rec(s, c, day(1), "absent", nil),
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 0 {
		t.Fatalf("riwayat < 3 hari tidak boleh dinilai, dapat %d assessment", len(out))
	}
}

func TestAnalyzeSkipsCleanStudent(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	late := 5.0
	records := []JoinedAttendanceRecord{
		rec(s, c, day(0), "on_time", nil),
		rec(s, c, day(1), "on_time", nil),
		rec(s, c, day(2), "late", &late),
		rec(s, c, day(3), "on_time", nil),
		rec(s, c, day(4), "on_time", nil),
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 0 {
		t.Fatalf("tanpa absen dan maksimal 1 telat harus di-skip, dapat %d", len(out))
	}
}

func TestAnalyzeSkipsMalformedRecords(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	records := []JoinedAttendanceRecord{
		rec(uuid.Nil, c, day(0), "absent", nil),
		rec(s, uuid.Nil, day(1), "absent", nil),
		rec(s, c, time.Time{}, "absent", nil),
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 0 {
		t.Fatalf("record cacat harus di-skip diam-diam, dapat %d", len(out))
	}
}

func TestOngoingStreakIsCritical(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	var records []JoinedAttendanceRecord
	// 6 hari terakhir absen beruntun, 6 hari sebelumnya hadir
	for i := 0; i < 6; i++ {
		records = append(records, rec(s, c, day(i), "absent", nil))
	}
	for i := 6; i < 12; i++ {
		records = append(records, rec(s, c, day(i), "on_time", nil))
	}

	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	a := out[0]
	if a.Tier != TierCritical {
		t.Errorf("streak absen berjalan 6 hari harus critical, dapat %s", a.Tier)
	}
	if a.OngoingAbsenceStreak != 6 {
		t.Errorf("OngoingAbsenceStreak = %d, want 6", a.OngoingAbsenceStreak)
	}
	if a.MaxConsecutiveAbsences != 6 {
		t.Errorf("MaxConsecutiveAbsences = %d, want 6", a.MaxConsecutiveAbsences)
	}
	if a.TotalDays != 12 || a.AbsentDays != 6 || a.PresentDays != 6 {
		t.Errorf("counter salah: %+v", a)
	}
}

func TestDuplicateDateFirstRecordWins(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	records := []JoinedAttendanceRecord{
		rec(s, c, day(4), "absent", nil),
		rec(s, c, day(4), "on_time", nil), // duplikat tanggal, harus diabaikan
		rec(s, c, day(3), "absent", nil),
		rec(s, c, day(2), "absent", nil),
		rec(s, c, day(1), "on_time", nil),
		rec(s, c, day(0), "on_time", nil),
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	a := out[0]
	if a.TotalDays != 5 {
		t.Errorf("TotalDays = %d, want 5 (tanggal duplikat dihitung sekali)", a.TotalDays)
	}
	if a.AbsentDays != 3 {
		t.Errorf("AbsentDays = %d, want 3 (record pertama menang)", a.AbsentDays)
	}
}

func TestStatusCanonicalization(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	late := 12.0
	records := []JoinedAttendanceRecord{
		rec(s, c, day(0), "ON_TIME", nil), // case-insensitive
		rec(s, c, day(1), "present", nil), // sinonim lama
		rec(s, c, day(2), "Late", &late),  // telat tetap hadir
		rec(s, c, day(3), "absent", nil),
		rec(s, c, day(4), "absent", nil),
		rec(s, c, day(5), "absent", nil),
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	a := out[0]
	if a.PresentDays != 3 {
		t.Errorf("PresentDays = %d, want 3 (on_time/present/late ekuivalen hadir)", a.PresentDays)
	}
	if a.LateDays != 1 {
		t.Errorf("LateDays = %d, want 1", a.LateDays)
	}
}

func TestExcludedStatusesLeaveEffectiveDays(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	records := []JoinedAttendanceRecord{
		rec(s, c, day(0), "absent", nil),
		rec(s, c, day(1), "absent", nil),
		rec(s, c, day(2), "excused", nil),
		rec(s, c, day(3), "absent", nil),
		rec(s, c, day(4), "excused", nil),
		rec(s, c, day(5), "absent", nil),
		rec(s, c, day(6), "on_time", nil),
		rec(s, c, day(7), "on_time", nil),
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	a := out[0]
	if a.TotalDays != 8 {
		t.Errorf("TotalDays = %d, want 8", a.TotalDays)
	}
	if a.EffectiveDays != 6 {
		t.Errorf("EffectiveDays = %d, want 6 (excused tidak masuk denominator)", a.EffectiveDays)
	}
	wantRate := 2.0 / 6.0 * 100
	if a.AttendanceRate < wantRate-0.01 || a.AttendanceRate > wantRate+0.01 {
		t.Errorf("AttendanceRate = %v, want ~%v", a.AttendanceRate, wantRate)
	}
}

func TestSortedBySeverityThenEngagement(t *testing.T) {
	sBad, sMild, c := uuid.New(), uuid.New(), uuid.New()

	var records []JoinedAttendanceRecord
	// sBad: 6 absen beruntun paling baru dari 8 hari — pasti critical,
	// engagement sangat rendah
	for i := 0; i < 6; i++ {
		records = append(records, rec(sBad, c, day(i), "absent", nil))
	}
	records = append(records,
		rec(sBad, c, day(6), "on_time", nil),
		rec(sBad, c, day(7), "on_time", nil),
	)
	// sMild: rate lebih sehat, absen baru-baru 3 hari
	for i := 0; i < 3; i++ {
		records = append(records, rec(sMild, c, day(i), "absent", nil))
	}
	for i := 3; i < 12; i++ {
		records = append(records, rec(sMild, c, day(i), "on_time", nil))
	}

	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 2 {
		t.Fatalf("harus ada 2 assessment, dapat %d", len(out))
	}
	if out[0].StudentID != sBad {
		t.Errorf("student terberat harus di urutan pertama")
	}
	if out[0].Tier != TierCritical {
		t.Errorf("tier pertama = %s, want critical", out[0].Tier)
	}
}

func hasPattern(patterns []string, substr string) bool {
	for _, p := range patterns {
		if strings.Contains(p, substr) {
			return true
		}
	}
	return false
}

// 20 hari campuran: 14 hadir (2 di antaranya telat), 6 absen tersebar.
func TestTwentyDayMixedHistoryCounters(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	late := 15.0
	var records []JoinedAttendanceRecord
	for i := 0; i < 20; i++ {
		switch {
		case i%3 == 2: // i = 2, 5, 8, 11, 14, 17
			records = append(records, rec(s, c, day(i), "absent", nil))
		case i == 1 || i == 4:
			records = append(records, rec(s, c, day(i), "late", &late))
		default:
			records = append(records, rec(s, c, day(i), "on_time", nil))
		}
	}

	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	a := out[0]
	if a.TotalDays != 20 || a.PresentDays != 14 || a.LateDays != 2 || a.AbsentDays != 6 {
		t.Errorf("counter salah: total=%d present=%d late=%d absent=%d",
			a.TotalDays, a.PresentDays, a.LateDays, a.AbsentDays)
	}
	if a.AttendanceRate < 69.99 || a.AttendanceRate > 70.01 {
		t.Errorf("AttendanceRate = %v, want 70", a.AttendanceRate)
	}
	if a.Tier != TierMedium {
		t.Errorf("Tier = %s, want medium", a.Tier)
	}
	if a.Trend != TrendStable {
		t.Errorf("Trend = %s, want stable (66.7%% vs 66.7%% di kedua window)", a.Trend)
	}
}

func TestAbsentOnlyHistoryIsCritical(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	var records []JoinedAttendanceRecord
	for i := 0; i < 6; i++ {
		records = append(records, rec(s, c, day(i), "absent", nil))
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	a := out[0]
	if a.Tier != TierCritical {
		t.Errorf("Tier = %s, want critical", a.Tier)
	}
	if a.OngoingAbsenceStreak != 6 || a.MaxConsecutiveAbsences != 6 {
		t.Errorf("streak salah: ongoing=%d max=%d, want 6/6",
			a.OngoingAbsenceStreak, a.MaxConsecutiveAbsences)
	}
	if a.AttendanceRate != 0 {
		t.Errorf("AttendanceRate = %v, want 0", a.AttendanceRate)
	}
}

// Student dengan engagement dan rate tinggi, trend membaik, tanpa streak dan
// tanpa pola: absennya sudah lama dan sekarang hadir terus. Walau pernah absen
// 3x, dia tidak boleh muncul di laporan.
func TestHealthyImprovingStudentNotReported(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	var records []JoinedAttendanceRecord
	// sesi tiap 5 hari; absen hanya di sesi ke-7, ke-9, ke-11 (30-50 hari lalu)
	for i := 0; i < 20; i++ {
		status := "on_time"
		if i == 6 || i == 8 || i == 10 {
			status = "absent"
		}
		records = append(records, rec(s, c, day(5*i), status, nil))
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 0 {
		t.Fatalf("student yang jelas aman tidak boleh dilaporkan, dapat %d (tier %s)",
			len(out), out[0].Tier)
	}
}

// Excused memangkas urutan efektif: kalau sisa urutan < 2 window, trend tidak
// boleh dihitung dari window yang timpang — harus stable.
func TestExcusedHeavyHistoryKeepsTrendStable(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	statuses := []string{
		"on_time", "excused", "on_time", "excused", "on_time", "excused",
		"absent", "excused", "absent", "excused", "absent", "excused",
		"on_time", "excused",
	}
	var records []JoinedAttendanceRecord
	for i, st := range statuses {
		records = append(records, rec(s, c, day(i), st, nil))
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	a := out[0]
	if a.TotalDays != 14 || a.EffectiveDays != 7 {
		t.Fatalf("total=%d effective=%d, want 14/7", a.TotalDays, a.EffectiveDays)
	}
	if a.Trend != TrendStable || a.TrendStrength != 0 {
		t.Errorf("Trend = %s (strength %v), want stable/0 untuk urutan efektif < 2w",
			a.Trend, a.TrendStrength)
	}
}

func TestComputeTrendClassification(t *testing.T) {
	mk := func(statuses ...string) []dayRecord {
		out := make([]dayRecord, len(statuses))
		for i, st := range statuses {
			out[i] = dayRecord{date: day(i), status: st, daysAgo: float64(i)}
		}
		return out
	}
	on, ab := "on time", "absent"

	tests := []struct {
		name         string
		days         []dayRecord
		totalDays    int
		rate         float64
		wantTrend    string
		wantStrength float64
	}{
		{
			name:      "riwayat pendek selalu stable",
			days:      mk(ab, ab, ab, on, on, on, on),
			totalDays: 7, rate: 57,
			wantTrend: TrendStable, wantStrength: 0,
		},
		{
			// w=4: recent 100% vs older 50%
			name:      "membaik saat window terbaru jauh lebih sehat",
			days:      mk(on, on, on, on, ab, on, ab, on, on, on, on, on, on, on),
			totalDays: 14, rate: 70,
			wantTrend: TrendImproving, wantStrength: 0.5,
		},
		{
			// w=4: recent 50% vs older 100%
			name:      "menurun saat window terbaru memburuk",
			days:      mk(ab, on, ab, on, on, on, on, on, on, on, on, on, on, on),
			totalDays: 14, rate: 70,
			wantTrend: TrendDeclining, wantStrength: -0.5,
		},
		{
			// w=4: kedua window 75%
			name:      "delta nol tetap stable",
			days:      mk(ab, on, on, on, ab, on, on, on, on, on, on, on, on, on),
			totalDays: 14, rate: 85,
			wantTrend: TrendStable, wantStrength: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend, strength := computeTrend(tt.days, tt.totalDays, tt.rate)
			if trend != tt.wantTrend {
				t.Errorf("trend = %s, want %s", trend, tt.wantTrend)
			}
			if strength < tt.wantStrength-0.001 || strength > tt.wantStrength+0.001 {
				t.Errorf("strength = %v, want %v", strength, tt.wantStrength)
			}
		})
	}
}

func TestComputeTrendThresholdDependsOnRate(t *testing.T) {
	mk := func(statuses ...string) []dayRecord {
		out := make([]dayRecord, len(statuses))
		for i, st := range statuses {
			out[i] = dayRecord{date: day(i), status: st, daysAgo: float64(i)}
		}
		return out
	}
	on, ab := "on time", "absent"

	// w=10 (totalDays 34): recent 90% vs older 100% → delta -10
	days := make([]dayRecord, 0, 34)
	days = append(days, mk(ab, on, on, on, on, on, on, on, on, on)...)
	for i := 10; i < 34; i++ {
		days = append(days, dayRecord{date: day(i), status: on, daysAgo: float64(i)})
	}

	// rate tinggi (>80) memakai ambang 5, rate sedang memakai ambang 10;
	// delta -10 melewati keduanya
	for _, rate := range []float64{75, 90} {
		trend, strength := computeTrend(days, 34, rate)
		if trend != TrendDeclining {
			t.Errorf("rate=%v: trend = %s, want declining", rate, trend)
		}
		if strength > -0.099 || strength < -0.101 {
			t.Errorf("rate=%v: strength = %v, want -0.1", rate, strength)
		}
	}
}

func TestComputeMomentum(t *testing.T) {
	mk := func(statuses ...string) []dayRecord {
		out := make([]dayRecord, len(statuses))
		for i, st := range statuses {
			out[i] = dayRecord{date: day(i), status: st, daysAgo: float64(i)}
		}
		return out
	}
	on, ab := "on time", "absent"

	if m := computeMomentum(mk(on, ab, on, ab, on, ab, on, ab), 11); m != 0 {
		t.Errorf("totalDays < 12 harus 0, dapat %v", m)
	}
	if m := computeMomentum(mk(on, ab, on, ab, on, ab, on), 12); m != 0 {
		t.Errorf("urutan efektif < 8 harus 0, dapat %v", m)
	}
	// sangat-baru 100% vs sebelumnya 50% → +0.5
	m := computeMomentum(mk(on, on, on, on, ab, on, ab, on, on, on, on, on), 12)
	if m < 0.499 || m > 0.501 {
		t.Errorf("momentum = %v, want 0.5", m)
	}
	// sangat-baru 25% vs sebelumnya 100% → -0.75
	m = computeMomentum(mk(ab, ab, ab, on, on, on, on, on, on, on, on, on), 12)
	if m < -0.751 || m > -0.749 {
		t.Errorf("momentum = %v, want -0.75", m)
	}
}

/* =========================================================
 * PATTERN MINING — satu test per heuristik, lewat jalur publik
 * ========================================================= */

func TestPatternWeekdayConcentration(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	// day(1), day(8), day(15), day(22) semuanya Senin
	records := []JoinedAttendanceRecord{
		rec(s, c, day(1), "absent", nil),
		rec(s, c, day(2), "on_time", nil),
		rec(s, c, day(3), "on_time", nil),
		rec(s, c, day(4), "on_time", nil),
		rec(s, c, day(8), "absent", nil),
		rec(s, c, day(9), "on_time", nil),
		rec(s, c, day(10), "on_time", nil),
		rec(s, c, day(15), "absent", nil),
		rec(s, c, day(16), "on_time", nil),
		rec(s, c, day(17), "on_time", nil),
		rec(s, c, day(22), "on_time", nil),
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	if !hasPattern(out[0].Patterns, "hari Senin") {
		t.Errorf("3 dari 4 Senin absen harus terdeteksi, patterns = %v", out[0].Patterns)
	}
}

func TestPatternRecentSpike(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	statuses := []string{
		"absent", "absent", "absent", "on_time", "on_time",
		"on_time", "on_time", "on_time", "absent", "on_time",
	}
	var records []JoinedAttendanceRecord
	for i, st := range statuses {
		records = append(records, rec(s, c, day(i), st, nil))
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	if !hasPattern(out[0].Patterns, "Lonjakan absen") {
		t.Errorf("3 vs 1 absen di 5 pertemuan terakhir harus terdeteksi, patterns = %v", out[0].Patterns)
	}
}

func TestPatternLongStreak(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	statuses := []string{
		"on_time", "on_time", "on_time", "absent", "absent",
		"absent", "absent", "on_time", "on_time", "on_time",
	}
	var records []JoinedAttendanceRecord
	for i, st := range statuses {
		records = append(records, rec(s, c, day(i), st, nil))
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	if !hasPattern(out[0].Patterns, "berturut-turut") {
		t.Errorf("streak 4 hari harus terdeteksi, patterns = %v", out[0].Patterns)
	}
}

func TestPatternTightIntermittent(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	var records []JoinedAttendanceRecord
	for i := 0; i < 12; i++ {
		status := "on_time"
		if i == 1 || i == 3 || i == 5 || i == 7 || i == 9 {
			status = "absent"
		}
		records = append(records, rec(s, c, day(i), status, nil))
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	if !hasPattern(out[0].Patterns, "intermiten") {
		t.Errorf("5 absen berjarak rata-rata 2 hari harus terdeteksi, patterns = %v", out[0].Patterns)
	}
}

func TestPatternChronicLate(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	late := 20.0
	statuses := []string{
		"on_time", "late", "absent", "on_time", "late",
		"on_time", "absent", "late", "on_time", "absent",
	}
	var records []JoinedAttendanceRecord
	for i, st := range statuses {
		var lm *float64
		if st == "late" {
			lm = &late
		}
		records = append(records, rec(s, c, day(i), st, lm))
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	if !hasPattern(out[0].Patterns, "Telat kronis") {
		t.Errorf("3 telat dari 10 pertemuan harus terdeteksi, patterns = %v", out[0].Patterns)
	}
}

func TestPatternSharpDecline(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	statuses := []string{
		"absent", "absent", "absent", "on_time", "on_time",
		"on_time", "on_time", "on_time", "on_time", "on_time",
		"absent", "absent", "on_time", "on_time",
	}
	var records []JoinedAttendanceRecord
	for i, st := range statuses {
		records = append(records, rec(s, c, day(i), st, nil))
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	a := out[0]
	if a.Trend != TrendDeclining {
		t.Fatalf("Trend = %s, want declining", a.Trend)
	}
	if !hasPattern(a.Patterns, "Penurunan kehadiran tajam") {
		t.Errorf("penurunan tajam harus terdeteksi, patterns = %v", a.Patterns)
	}
}

func TestPatternClustering(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	var records []JoinedAttendanceRecord
	for i := 0; i < 16; i++ {
		status := "on_time"
		if i == 2 || i == 6 || i == 10 || i == 14 {
			status = "absent"
		}
		records = append(records, rec(s, c, day(i), status, nil))
	}
	out := AnalyzeAttendanceRisk(records, testAsOf)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 assessment, dapat %d", len(out))
	}
	if !hasPattern(out[0].Patterns, "mengelompok") {
		t.Errorf("4 absen berjarak rata-rata 4 hari harus terdeteksi, patterns = %v", out[0].Patterns)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	s, c := uuid.New(), uuid.New()
	var records []JoinedAttendanceRecord
	for i := 0; i < 20; i++ {
		status := "on_time"
		if i%4 == 0 {
			status = "absent"
		}
		records = append(records, rec(s, c, day(i), status, nil))
	}
	first := AnalyzeAttendanceRisk(records, testAsOf)
	second := AnalyzeAttendanceRisk(records, testAsOf)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("hasil analisis harus deterministik untuk input dan asOf yang sama")
	}
}
