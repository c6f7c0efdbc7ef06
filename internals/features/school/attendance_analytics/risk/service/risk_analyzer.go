package service

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
 * RISK ANALYZER — komputasi murni di atas riwayat kehadiran.
 * Tidak ada I/O, input tidak dimutasi, tidak pernah error:
 * record yang cacat (tanpa student/course) di-skip saja.
 * ========================================================= */

// JoinedAttendanceRecord: baris kehadiran yang SUDAH di-join dengan course
// (via session) oleh data-access layer. Analyzer tidak query sendiri.
type JoinedAttendanceRecord struct {
	StudentID   uuid.UUID
	CourseID    uuid.UUID
	Date        time.Time
	Status      string
	LateMinutes *float64
}

type RiskTier string

const (
	TierCritical RiskTier = "critical"
	TierHigh     RiskTier = "high"
	TierMedium   RiskTier = "medium"
	TierWatch    RiskTier = "watch"
)

var tierOrder = map[RiskTier]int{
	TierCritical: 0,
	TierHigh:     1,
	TierMedium:   2,
	TierWatch:    3,
}

const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

type RiskAssessment struct {
	StudentID uuid.UUID `json:"student_id"`
	CourseID  uuid.UUID `json:"course_id"`

	Tier            RiskTier `json:"tier"`
	RiskScore       float64  `json:"risk_score"`
	EngagementScore float64  `json:"engagement_score"` // 0–100, clamped
	Trend           string   `json:"trend"`
	TrendStrength   float64  `json:"trend_strength"`
	Patterns        []string `json:"patterns"`

	// Counter mentah sebagai justifikasi tier
	TotalDays      int     `json:"total_days"`
	PresentDays    int     `json:"present_days"`
	LateDays       int     `json:"late_days"`
	AbsentDays     int     `json:"absent_days"`
	EffectiveDays  int     `json:"effective_days"`
	AttendanceRate float64 `json:"attendance_rate"`

	MaxConsecutiveAbsences    int `json:"max_consecutive_absences"`
	RecentConsecutiveAbsences int `json:"recent_consecutive_absences"`
	OngoingAbsenceStreak      int `json:"ongoing_absence_streak"`
}

/* =========================================================
 * STATUS NORMALISASI (boundary, sekali saat ingest)
 * Sumber lama menyimpan "on time"/"present", yang baru "on_time".
 * ========================================================= */

func canonStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "_", " ")
}

func isPresentEquivalent(s string) bool {
	switch s {
	case "present", "on time", "late":
		return true
	}
	return false
}

func isExcludedStatus(s string) bool {
	return s == "excused" || s == "not enrolled"
}

/* =========================================================
 * MAIN ENTRY
 * ========================================================= */

type groupKey struct {
	student uuid.UUID
	course  uuid.UUID
}

// AnalyzeAttendanceRisk mengelompokkan records per (student, course), lalu
// menghasilkan daftar siswa berisiko, urut tier (critical dulu) kemudian
// engagement terendah dulu. asOf = titik acuan "hari ini" supaya perhitungan
// recency deterministik (testable).
func AnalyzeAttendanceRisk(records []JoinedAttendanceRecord, asOf time.Time) []RiskAssessment {
	groups := make(map[groupKey][]JoinedAttendanceRecord)
	var order []groupKey

	for _, r := range records {
		// record cacat → skip, bukan error
		if r.StudentID == uuid.Nil || r.CourseID == uuid.Nil || r.Date.IsZero() {
			continue
		}
		k := groupKey{student: r.StudentID, course: r.CourseID}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	out := make([]RiskAssessment, 0, len(groups))
	for _, k := range order {
		if a, ok := assessGroup(groups[k], asOf); ok {
			a.StudentID = k.student
			a.CourseID = k.course
			out = append(out, a)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if tierOrder[out[i].Tier] != tierOrder[out[j].Tier] {
			return tierOrder[out[i].Tier] < tierOrder[out[j].Tier]
		}
		if out[i].EngagementScore != out[j].EngagementScore {
			return out[i].EngagementScore < out[j].EngagementScore
		}
		return out[i].StudentID.String() < out[j].StudentID.String()
	})
	return out
}

/* =========================================================
 * PER-GROUP ASSESSMENT
 * ========================================================= */

type dayRecord struct {
	date    time.Time
	status  string // sudah canonical
	daysAgo float64
}

func assessGroup(recs []JoinedAttendanceRecord, asOf time.Time) (RiskAssessment, bool) {
	// 1) Dedup per tanggal: yang PERTAMA di input menang (keputusan kebijakan,
	//    lihat DESIGN.md), lalu sort descending (terbaru dulu).
	seen := make(map[string]bool, len(recs))
	days := make([]dayRecord, 0, len(recs))
	for _, r := range recs {
		key := r.Date.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, dayRecord{
			date:    r.Date,
			status:  canonStatus(r.Status),
			daysAgo: asOf.Sub(r.Date).Hours() / 24,
		})
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].date.After(days[j].date) })

	// 2) Base counts
	var a RiskAssessment
	a.TotalDays = len(days)
	for _, d := range days {
		if isPresentEquivalent(d.status) {
			a.PresentDays++
		}
		if d.status == "late" {
			a.LateDays++
		}
		if d.status == "absent" {
			a.AbsentDays++
		}
		if !isExcludedStatus(d.status) {
			a.EffectiveDays++
		}
	}
	if a.EffectiveDays > 0 {
		a.AttendanceRate = float64(a.PresentDays) / float64(a.EffectiveDays) * 100
	}

	// 13) Early exit: sinyal terlalu sedikit untuk dinilai
	if a.TotalDays < 3 {
		return a, false
	}
	if a.AbsentDays == 0 && a.LateDays <= 1 {
		return a, false
	}

	// 3) Quality score: flat penalty per telat di atas rate mentah
	//    (sengaja decoupled dari exponential decay milik scoring engine)
	quality := a.AttendanceRate - float64(a.LateDays)*0.3
	if quality < 0 {
		quality = 0
	}

	// 4) Streak detection pada urutan terbaru-dulu
	a.MaxConsecutiveAbsences, a.RecentConsecutiveAbsences, a.OngoingAbsenceStreak = detectStreaks(days)

	// 5) Recency-weighted absences: absen lama meluruh halus, bukan binning diskrit
	recencyScore := 0.0
	weeklyAbsences := 0
	for _, d := range days {
		if d.status != "absent" {
			continue
		}
		recencyScore += math.Exp(-d.daysAgo / 30)
		if d.daysAgo <= 7 {
			weeklyAbsences++
		}
	}
	normalizedRecency := recencyScore * 10
	if normalizedRecency > 100 {
		normalizedRecency = 100
	}

	// 6) + 7) Trend & momentum
	trend, trendStrength := computeTrend(days, a.TotalDays, a.AttendanceRate)
	momentum := computeMomentum(days, a.TotalDays)
	a.Trend = trend
	a.TrendStrength = trendStrength

	// 8) Pattern mining
	patterns, chronicLate := minePatterns(days, a, trend, trendStrength)
	a.Patterns = patterns
	patternCount := len(patterns)

	// 9) Engagement score
	trendComponent := 0.0
	switch trend {
	case TrendImproving:
		trendComponent = 10 + 10*trendStrength
	case TrendDeclining:
		trendComponent = -10 + 20*trendStrength // strength negatif → makin berat
	case TrendStable:
		trendComponent = 5
	}
	consistency := 15 - 3*float64(a.MaxConsecutiveAbsences) - 5*float64(patternCount)
	if consistency < 0 {
		consistency = 0
	}
	engagement := 0.4*quality + 0.25*(100-normalizedRecency) + trendComponent + consistency + 10*momentum
	if engagement < 0 {
		engagement = 0
	}
	if engagement > 100 {
		engagement = 100
	}
	a.EngagementScore = engagement

	// 10) Composite risk score
	risk := absenceRatePoints(a) +
		recentStreakPoints(a, weeklyAbsences, normalizedRecency) +
		trendPoints(trend, momentum) +
		patternPoints(patternCount, chronicLate)
	a.RiskScore = risk

	// 11) Tier assignment, urutan ketat critical → watch
	switch {
	case risk >= 70 || a.OngoingAbsenceStreak >= 5 || a.AttendanceRate < 35 ||
		(a.OngoingAbsenceStreak >= 4 && trend == TrendDeclining):
		a.Tier = TierCritical
	case risk >= 50 || a.OngoingAbsenceStreak >= 3 || a.AttendanceRate < 50 ||
		(a.RecentConsecutiveAbsences >= 4 && trend == TrendDeclining):
		a.Tier = TierHigh
	case risk >= 30 || a.AttendanceRate < 70 || a.RecentConsecutiveAbsences >= 3 ||
		(patternCount >= 2 && trend == TrendDeclining):
		a.Tier = TierMedium
	case risk >= 15 || (patternCount >= 1 && a.AttendanceRate < 85) || engagement < 40:
		a.Tier = TierWatch
	default:
		// tidak lolos satu tier pun → tidak masuk output sama sekali
		return a, false
	}

	// 12) Suppression override: "jelas aman" menang atas tier logic
	if engagement >= 85 && a.AttendanceRate >= 85 && trend != TrendDeclining &&
		a.OngoingAbsenceStreak == 0 && a.RecentConsecutiveAbsences == 0 && patternCount == 0 {
		return a, false
	}

	return a, true
}

/* =========================================================
 * STREAKS (input: terbaru dulu)
 * ========================================================= */

func detectStreaks(days []dayRecord) (maxConsecutive, recentConsecutive, ongoing int) {
	current := 0
	recentCurrent := 0
	leading := true

	for i, d := range days {
		switch {
		case d.status == "absent":
			current++
			if d.daysAgo <= 21 {
				recentCurrent++
			} else {
				recentCurrent = 0
			}
			if leading && i == current-1 {
				ongoing = current
			}
		case isPresentEquivalent(d.status):
			current = 0
			recentCurrent = 0
			leading = false
		default:
			// excused / not enrolled: tidak reset & tidak menambah streak,
			// tapi memutus run "ongoing" dari record terbaru
			leading = false
		}
		if current > maxConsecutive {
			maxConsecutive = current
		}
		if recentCurrent > recentConsecutive {
			recentConsecutive = recentCurrent
		}
	}
	return maxConsecutive, recentConsecutive, ongoing
}

/* =========================================================
 * TREND & MOMENTUM
 * ========================================================= */

// effectiveSequence: urutan terbaru-dulu dengan excused/not-enrolled dibuang.
func effectiveSequence(days []dayRecord) []dayRecord {
	out := make([]dayRecord, 0, len(days))
	for _, d := range days {
		if !isExcludedStatus(d.status) {
			out = append(out, d)
		}
	}
	return out
}

func presentRate(seq []dayRecord) float64 {
	if len(seq) == 0 {
		return 0
	}
	n := 0
	for _, d := range seq {
		if isPresentEquivalent(d.status) {
			n++
		}
	}
	return float64(n) / float64(len(seq)) * 100
}

// computeTrend: hanya saat totalDays ≥ 8. Window = clamp(4, 10, 30% totalDays).
// Threshold bergantung rate saat ini: perbaikan dihargai lebih cepat saat rate
// rendah; penurunan dicurigai lebih cepat saat rate tinggi.
func computeTrend(days []dayRecord, totalDays int, attendanceRate float64) (string, float64) {
	if totalDays < 8 {
		return TrendStable, 0
	}

	w := int(math.Round(0.3 * float64(totalDays)))
	if w < 4 {
		w = 4
	}
	if w > 10 {
		w = 10
	}

	// Jendela recent dan older wajib sama panjang; kalau excused memangkas
	// urutan efektif di bawah 2w, sinyal terlalu tipis dan dianggap stable.
	seq := effectiveSequence(days)
	if len(seq) < 2*w {
		return TrendStable, 0
	}

	recent := seq[:w]
	older := seq[w : 2*w]

	delta := presentRate(recent) - presentRate(older) // dalam poin persentase
	strength := delta / 100

	improveThr := 10.0
	if attendanceRate < 60 {
		improveThr = 5
	}
	declineThr := 10.0
	if attendanceRate > 80 {
		declineThr = 5
	}

	switch {
	case delta >= improveThr:
		return TrendImproving, strength
	case delta <= -declineThr:
		return TrendDeclining, strength
	default:
		return TrendStable, strength
	}
}

// computeMomentum: sinyal mirip turunan-kedua yang mempertajam trend.
// Hanya saat totalDays ≥ 12: sub-window sangat-baru vs window tepat sebelumnya.
func computeMomentum(days []dayRecord, totalDays int) float64 {
	if totalDays < 12 {
		return 0
	}
	seq := effectiveSequence(days)
	sub := 4
	if len(seq) < 2*sub {
		return 0
	}
	veryRecent := seq[:sub]
	previous := seq[sub : 2*sub]
	return (presentRate(veryRecent) - presentRate(previous)) / 100
}

/* =========================================================
 * PATTERN MINING — battery heuristik, masing-masing menghasilkan
 * string human-readable saat terpicu.
 * ========================================================= */

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
	time.Sunday:    "Minggu",
}

func minePatterns(days []dayRecord, a RiskAssessment, trend string, trendStrength float64) (patterns []string, chronicLate bool) {
	// a) Konsentrasi absen per hari-dalam-minggu
	absByDow := make(map[time.Weekday]int)
	totByDow := make(map[time.Weekday]int)
	for _, d := range days {
		dow := d.date.Weekday()
		totByDow[dow]++
		if d.status == "absent" {
			absByDow[dow]++
		}
	}
	for _, dow := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday} {
		abs, tot := absByDow[dow], totByDow[dow]
		if abs >= 3 && tot >= 4 && float64(abs)/float64(tot) >= 0.7 {
			patterns = append(patterns, fmt.Sprintf("Absen terkonsentrasi di hari %s (%d dari %d pertemuan)", weekdayNames[dow], abs, tot))
		}
	}

	// b) Spike absen 5-vs-5 terakhir
	seq := effectiveSequence(days)
	if len(seq) >= 10 {
		recent5 := countAbsent(seq[:5])
		prev5 := countAbsent(seq[5:10])
		if recent5 >= 3 && recent5 >= prev5+2 {
			patterns = append(patterns, fmt.Sprintf("Lonjakan absen baru-baru ini (%d vs %d di 5 pertemuan sebelumnya)", recent5, prev5))
		}
	}

	// c) Streak panjang
	if a.MaxConsecutiveAbsences >= 4 {
		patterns = append(patterns, fmt.Sprintf("Pernah absen %d hari berturut-turut", a.MaxConsecutiveAbsences))
	}

	// d) Absen intermiten: jarak antar-absen rapat
	absDates := absentDates(days)
	if a.TotalDays >= 10 && a.AbsentDays >= 5 {
		if g, ok := averageGapDays(absDates); ok && g < 3 {
			patterns = append(patterns, "Absen intermiten dengan jarak rapat antar kejadian")
		}
	}

	// e) Telat kronis
	if a.TotalDays >= 8 && a.LateDays >= 3 && float64(a.LateDays)/float64(a.TotalDays) >= 0.3 {
		chronicLate = true
		patterns = append(patterns, fmt.Sprintf("Telat kronis (%d dari %d pertemuan)", a.LateDays, a.TotalDays))
	}

	// f) Penurunan tajam
	if trend == TrendDeclining && trendStrength < -0.3 && a.AttendanceRate < 70 {
		patterns = append(patterns, "Penurunan kehadiran tajam dalam periode terakhir")
	}

	// g) Clustering absen
	if a.AbsentDays >= 4 {
		if g, ok := averageGapDays(absDates); ok && g <= 7 {
			patterns = append(patterns, "Absen mengelompok dalam rentang waktu berdekatan")
		}
	}

	return patterns, chronicLate
}

func countAbsent(seq []dayRecord) int {
	n := 0
	for _, d := range seq {
		if d.status == "absent" {
			n++
		}
	}
	return n
}

// absentDates: tanggal absen urut terbaru-dulu (mengikuti urutan days).
func absentDates(days []dayRecord) []time.Time {
	var out []time.Time
	for _, d := range days {
		if d.status == "absent" {
			out = append(out, d.date)
		}
	}
	return out
}

func averageGapDays(dates []time.Time) (float64, bool) {
	if len(dates) < 2 {
		return 0, false
	}
	total := 0.0
	for i := 0; i < len(dates)-1; i++ {
		total += dates[i].Sub(dates[i+1]).Hours() / 24
	}
	return total / float64(len(dates)-1), true
}

/* =========================================================
 * COMPOSITE RISK POINTS
 * ========================================================= */

// absenceRatePoints: piecewise di ambang 20/30/40/50% → 15/22/30/35, di bawah
// itu linear (0.75 per poin persen) supaya kontinu di ambang 20%.
func absenceRatePoints(a RiskAssessment) float64 {
	absenceRate := 0.0
	if a.EffectiveDays > 0 {
		absenceRate = float64(a.AbsentDays) / float64(a.EffectiveDays) * 100
	}
	switch {
	case absenceRate >= 50:
		return 35
	case absenceRate >= 40:
		return 30
	case absenceRate >= 30:
		return 22
	case absenceRate >= 20:
		return 15
	default:
		return absenceRate * 0.75
	}
}

func recentStreakPoints(a RiskAssessment, weeklyAbsences int, normalizedRecency float64) float64 {
	p := 0.0
	switch {
	case a.OngoingAbsenceStreak >= 5:
		p = 25
	case a.OngoingAbsenceStreak >= 3:
		p = 18
	case a.OngoingAbsenceStreak >= 2:
		p = 12
	case a.OngoingAbsenceStreak == 1:
		p = 6
	}
	if a.RecentConsecutiveAbsences >= 4 {
		p += 8
	} else if a.RecentConsecutiveAbsences >= 2 {
		p += 4
	}
	if weeklyAbsences >= 3 {
		p += 6
	} else if weeklyAbsences >= 2 {
		p += 3
	}
	p += 0.15 * normalizedRecency
	if p > 30 {
		p = 30
	}
	return p
}

func trendPoints(trend string, momentum float64) float64 {
	switch trend {
	case TrendDeclining:
		p := 10.0
		if momentum < 0 { // momentum kicker: penurunan yang masih berakselerasi
			kick := -10 * momentum
			if kick > 5 {
				kick = 5
			}
			p += kick
		}
		return p
	case TrendImproving:
		return -8
	default:
		return 2
	}
}

func patternPoints(patternCount int, chronicLate bool) float64 {
	p := 4 * float64(patternCount)
	if chronicLate {
		p += 3
	}
	if p > 15 {
		p = 15
	}
	return p
}
