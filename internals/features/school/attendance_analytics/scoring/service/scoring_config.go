package service

import (
	"math"
	"strings"
)

/* =========================================================
 * SCORING CONFIG (value object, immutable per komputasi)
 * ========================================================= */

type CoverageMethod string

const (
	CoverageSqrt   CoverageMethod = "sqrt"
	CoverageLinear CoverageMethod = "linear"
	CoverageLog    CoverageMethod = "log"
	CoverageNone   CoverageMethod = "none"
)

func (m CoverageMethod) Valid() bool {
	switch m {
	case CoverageSqrt, CoverageLinear, CoverageLog, CoverageNone:
		return true
	default:
		return false
	}
}

// LateBracket: rentang menit keterlambatan, HANYA untuk label tampilan.
// Scoring memakai exponential decay kontinu, bukan bracket.
type LateBracket struct {
	Min  int    `json:"min"`
	Max  *int   `json:"max,omitempty"` // nil = tanpa batas atas (61+)
	Name string `json:"name"`
}

type ScoringConfig struct {
	ConfigName string
	IsDefault  bool

	// Bobot komponen; konvensi total = 100, TIDAK di-enforce engine
	// (engine selalu membagi 100, validasi total tanggung jawab caller).
	WeightQuality     float64
	WeightAttendance  float64
	WeightPunctuality float64

	// Parameter decay keterlambatan
	LateDecayConstant float64 // τ dalam menit, >0
	LateMinimumCredit float64 // floor kredit, [0,1]
	LateNullEstimate  float64 // asumsi kredit saat menit telat tidak diketahui, [0,1]

	// Parameter coverage
	CoverageEnabled bool
	CoverageMethod  CoverageMethod
	CoverageMinimum float64 // floor faktor, [0,1]

	LateBrackets []LateBracket

	// Modifier bonus/penalty: sudah dideklarasikan untuk kompatibilitas ke depan,
	// belum dipakai di komputasi inti.
	PerfectAttendanceBonus   float64
	StreakBonusPerWeek       float64
	AbsencePenaltyMultiplier float64
}

// DefaultScoringConfig: konfigurasi baku. τ=43.3 dipilih supaya telat ~30 menit ≈ 50% kredit.
// Bracket default WAJIB sama persis (dipakai ekspor lama).
func DefaultScoringConfig() ScoringConfig {
	iptr := func(v int) *int { return &v }
	return ScoringConfig{
		ConfigName: "default",
		IsDefault:  true,

		WeightQuality:     50,
		WeightAttendance:  30,
		WeightPunctuality: 20,

		LateDecayConstant: 43.3,
		LateMinimumCredit: 0.05,
		LateNullEstimate:  0.7,

		CoverageEnabled: true,
		CoverageMethod:  CoverageSqrt,
		CoverageMinimum: 0.6,

		LateBrackets: []LateBracket{
			{Min: 1, Max: iptr(5), Name: "Minor"},
			{Min: 6, Max: iptr(15), Name: "Moderate"},
			{Min: 16, Max: iptr(30), Name: "Significant"},
			{Min: 31, Max: iptr(60), Name: "Severe"},
			{Min: 61, Max: nil, Name: "Very Late"},
		},

		PerfectAttendanceBonus:   0,
		StreakBonusPerWeek:       0,
		AbsencePenaltyMultiplier: 1,
	}
}

/* =========================================================
 * NORMALIZATION (boundary: nilai tersimpan bisa korup/out-of-range)
 * ========================================================= */

// NormalizeScoringConfig membersihkan config hasil load (field korup jatuh ke def per-field).
// Idempotent: config yang sudah normal dikembalikan apa adanya.
func NormalizeScoringConfig(cfg ScoringConfig, def ScoringConfig) ScoringConfig {
	out := cfg

	if strings.TrimSpace(out.ConfigName) == "" {
		out.ConfigName = def.ConfigName
	}

	out.WeightQuality = nonNegOr(out.WeightQuality, def.WeightQuality)
	out.WeightAttendance = nonNegOr(out.WeightAttendance, def.WeightAttendance)
	out.WeightPunctuality = nonNegOr(out.WeightPunctuality, def.WeightPunctuality)

	if !(out.LateDecayConstant > 0) { // NaN juga jatuh ke sini
		out.LateDecayConstant = def.LateDecayConstant
	}
	out.LateMinimumCredit = unitOr(out.LateMinimumCredit, def.LateMinimumCredit)
	out.LateNullEstimate = unitOr(out.LateNullEstimate, def.LateNullEstimate)

	out.CoverageMethod = CoverageMethod(strings.ToLower(strings.TrimSpace(string(out.CoverageMethod))))
	if !out.CoverageMethod.Valid() {
		out.CoverageMethod = def.CoverageMethod
	}
	out.CoverageMinimum = unitOr(out.CoverageMinimum, def.CoverageMinimum)

	if len(out.LateBrackets) == 0 {
		out.LateBrackets = append([]LateBracket(nil), def.LateBrackets...)
	}

	if math.IsNaN(out.PerfectAttendanceBonus) {
		out.PerfectAttendanceBonus = def.PerfectAttendanceBonus
	}
	if math.IsNaN(out.StreakBonusPerWeek) {
		out.StreakBonusPerWeek = def.StreakBonusPerWeek
	}
	if math.IsNaN(out.AbsencePenaltyMultiplier) {
		out.AbsencePenaltyMultiplier = def.AbsencePenaltyMultiplier
	}

	return out
}

// nonNegOr: NaN → fallback, negatif → 0.
func nonNegOr(v, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}
	if v < 0 {
		return 0
	}
	return v
}

// unitOr: NaN → fallback, lalu clamp ke [0,1].
func unitOr(v, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// BracketLabel: label tampilan untuk menit telat (display-only, bukan scoring).
func BracketLabel(lateMinutes int, brackets []LateBracket) string {
	for _, b := range brackets {
		if lateMinutes < b.Min {
			continue
		}
		if b.Max == nil || lateMinutes <= *b.Max {
			return b.Name
		}
	}
	return ""
}
