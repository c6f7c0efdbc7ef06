package service

import (
	"math"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func TestLateScore(t *testing.T) {
	cfg := DefaultScoringConfig()

	tests := []struct {
		name    string
		minutes *float64
		want    float64
		tol     float64
	}{
		{"nil minutes pakai null estimate", nil, 0.7, 0},
		{"tepat waktu", fptr(0), 1.0, 0},
		{"datang lebih awal", fptr(-10), 1.0, 0},
		{"telat 30 menit ~ setengah kredit", fptr(30), 0.5, 0.01},
		{"telat ekstrem kena floor", fptr(200), 0.05, 0},
		{"telat ekstrem sekali tetap floor", fptr(100000), 0.05, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LateScore(tt.minutes, cfg)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("LateScore = %v, want %v (tol %v)", got, tt.want, tt.tol)
			}
		})
	}
}

func TestLateScoreMonotonicNonIncreasing(t *testing.T) {
	cfg := DefaultScoringConfig()
	prev := LateScore(fptr(0), cfg)
	for m := 1.0; m <= 300; m++ {
		cur := LateScore(fptr(m), cfg)
		if cur > prev {
			t.Fatalf("LateScore naik di m=%v: %v > %v", m, cur, prev)
		}
		if cur < cfg.LateMinimumCredit {
			t.Fatalf("LateScore di bawah floor di m=%v: %v", m, cur)
		}
		prev = cur
	}
}

func TestCoverageFactor(t *testing.T) {
	def := DefaultScoringConfig()

	withMethod := func(m CoverageMethod, minimum float64) ScoringConfig {
		cfg := def
		cfg.CoverageMethod = m
		cfg.CoverageMinimum = minimum
		return cfg
	}
	disabled := def
	disabled.CoverageEnabled = false

	tests := []struct {
		name      string
		effective float64
		total     float64
		cfg       ScoringConfig
		want      float64
		tol       float64
	}{
		{"coverage penuh = 1", 20, 20, def, 1, 0},
		{"denominator nol aman", 5, 0, def, 1, 0},
		{"disabled selalu 1", 1, 100, disabled, 1, 0},
		{"method none selalu 1", 1, 100, withMethod(CoverageNone, 0), 1, 0},
		{"sqrt konkaf", 16, 25, withMethod(CoverageSqrt, 0), 0.8, 1e-9},
		{"sqrt kena minimum", 1, 100, withMethod(CoverageSqrt, 0.6), 0.6, 0},
		{"linear proporsional", 3, 4, withMethod(CoverageLinear, 0), 0.75, 1e-9},
		{"log: ratio 1 tetap 1", 10, 10, withMethod(CoverageLog, 0), 1, 1e-9},
		{"log: ratio 0 kena minimum", 0, 10, withMethod(CoverageLog, 0.6), 0.6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoverageFactor(tt.effective, tt.total, tt.cfg)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("CoverageFactor(%v, %v) = %v, want %v", tt.effective, tt.total, got, tt.want)
			}
		})
	}
}

func TestWeightedScore(t *testing.T) {
	cfg := DefaultScoringConfig() // bobot 50/30/20

	res := WeightedScore(80, 90, 70, 20, 20, cfg)
	wantRaw := 0.5*80 + 0.3*90 + 0.2*70 // 81
	if math.Abs(res.RawScore-wantRaw) > 1e-9 {
		t.Errorf("RawScore = %v, want %v", res.RawScore, wantRaw)
	}
	if res.CoverageFactor != 1 {
		t.Errorf("CoverageFactor = %v, want 1 (coverage penuh)", res.CoverageFactor)
	}
	if math.Abs(res.FinalScore-res.RawScore*res.CoverageFactor) > 1e-9 {
		t.Errorf("FinalScore = %v, want Raw × Coverage = %v", res.FinalScore, res.RawScore*res.CoverageFactor)
	}
}

func TestWeightedScorePartialCoverage(t *testing.T) {
	cfg := DefaultScoringConfig()
	cfg.CoverageMinimum = 0

	res := WeightedScore(100, 100, 100, 9, 16, cfg)
	if math.Abs(res.RawScore-100) > 1e-9 {
		t.Errorf("RawScore = %v, want 100", res.RawScore)
	}
	wantCov := math.Sqrt(9.0 / 16.0) // 0.75
	if math.Abs(res.CoverageFactor-wantCov) > 1e-9 {
		t.Errorf("CoverageFactor = %v, want %v", res.CoverageFactor, wantCov)
	}
	if math.Abs(res.FinalScore-75) > 1e-9 {
		t.Errorf("FinalScore = %v, want 75", res.FinalScore)
	}
}

func TestWeightedScoreZeroDays(t *testing.T) {
	cfg := DefaultScoringConfig()
	res := WeightedScore(0, 0, 0, 0, 0, cfg)
	if res.RawScore != 0 || res.FinalScore != 0 {
		t.Errorf("skor hari-nol harus 0, dapat %+v", res)
	}
	if res.CoverageFactor != 1 {
		t.Errorf("CoverageFactor hari-nol = %v, want 1", res.CoverageFactor)
	}
}
