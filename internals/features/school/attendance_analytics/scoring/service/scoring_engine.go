package service

import "math"

/* =========================================================
 * SCORING ENGINE — fungsi murni, tidak pernah error.
 * Input out-of-range menghasilkan output out-of-range, bukan panic;
 * validasi domain input adalah tanggung jawab caller.
 * ========================================================= */

type ScoreResult struct {
	RawScore       float64 `json:"raw_score"`
	CoverageFactor float64 `json:"coverage_factor"`
	FinalScore     float64 `json:"final_score"`
}

// LateScore: kredit kehadiran [LateMinimumCredit, 1] dari menit keterlambatan.
// - nil   → LateNullEstimate (data hilang tidak dihukum lebih dari asumsi config)
// - m ≤ 0 → 1.0 (datang lebih awal / tepat waktu, tanpa decay)
// - else  → exp(-m/τ), floor di LateMinimumCredit (decay kontinu, bukan bracket)
func LateScore(lateMinutes *float64, cfg ScoringConfig) float64 {
	if lateMinutes == nil {
		return cfg.LateNullEstimate
	}
	m := *lateMinutes
	if m <= 0 {
		return 1.0
	}
	credit := math.Exp(-m / cfg.LateDecayConstant)
	if credit < cfg.LateMinimumCredit {
		credit = cfg.LateMinimumCredit
	}
	return credit
}

// CoverageFactor: multiplier [CoverageMinimum, 1] berdasarkan porsi durasi course
// yang benar-benar menjadi kewajiban siswa.
// totalSessionDays = 0 dijaga (hindari div-by-zero) → 1.
func CoverageFactor(effectiveDays, totalSessionDays float64, cfg ScoringConfig) float64 {
	if !cfg.CoverageEnabled || cfg.CoverageMethod == CoverageNone || totalSessionDays == 0 {
		return 1
	}

	ratio := effectiveDays / totalSessionDays

	var f float64
	switch cfg.CoverageMethod {
	case CoverageLinear:
		f = ratio
	case CoverageLog:
		// kurva log di-rescale: ratio=0 → 0, ratio=1 → 1
		f = math.Log(1 + ratio*(math.E-1))
	default: // sqrt: konkaf, coverage parsial tidak dihukum proporsional
		f = math.Sqrt(ratio)
	}

	if f > 1 {
		f = 1
	}
	if f < cfg.CoverageMinimum {
		f = cfg.CoverageMinimum
	}
	return f
}

// WeightedScore: skor komposit 0–100-ish.
// Raw = Σ (weightᵢ/100 · rateᵢ) — TANPA renormalisasi internal kalau bobot ≠ 100
// (kontrak caller, lihat validasi di DTO config).
// Final = Raw × CoverageFactor, tanpa transformasi tambahan.
func WeightedScore(qualityAdjustedRate, attendanceRate, punctualityPct, effectiveDays, totalSessionDays float64, cfg ScoringConfig) ScoreResult {
	raw := cfg.WeightQuality/100*qualityAdjustedRate +
		cfg.WeightAttendance/100*attendanceRate +
		cfg.WeightPunctuality/100*punctualityPct

	cov := CoverageFactor(effectiveDays, totalSessionDays, cfg)

	return ScoreResult{
		RawScore:       raw,
		CoverageFactor: cov,
		FinalScore:     raw * cov,
	}
}
