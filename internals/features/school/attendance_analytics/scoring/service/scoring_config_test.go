package service

import (
	"math"
	"reflect"
	"testing"
)

func TestDefaultScoringConfig(t *testing.T) {
	def := DefaultScoringConfig()

	if def.ConfigName != "default" || !def.IsDefault {
		t.Errorf("identitas config baku salah: %q default=%v", def.ConfigName, def.IsDefault)
	}
	if total := def.WeightQuality + def.WeightAttendance + def.WeightPunctuality; total != 100 {
		t.Errorf("total bobot baku = %v, want 100", total)
	}
	if def.LateDecayConstant != 43.3 || def.LateMinimumCredit != 0.05 || def.LateNullEstimate != 0.7 {
		t.Errorf("parameter telat baku salah: %+v", def)
	}
	if !def.CoverageEnabled || def.CoverageMethod != CoverageSqrt || def.CoverageMinimum != 0.6 {
		t.Errorf("parameter coverage baku salah: %+v", def)
	}
	if len(def.LateBrackets) != 5 {
		t.Fatalf("jumlah bracket baku = %d, want 5", len(def.LateBrackets))
	}
	last := def.LateBrackets[4]
	if last.Min != 61 || last.Max != nil || last.Name != "Very Late" {
		t.Errorf("bracket terakhir harus open-ended 61+: %+v", last)
	}
}

func TestNormalizeScoringConfigCorruptFields(t *testing.T) {
	def := DefaultScoringConfig()

	cfg := ScoringConfig{
		ConfigName:        "   ",
		WeightQuality:     math.NaN(),
		WeightAttendance:  -10,
		WeightPunctuality: 20,
		LateDecayConstant: 0,
		LateMinimumCredit: 1.5,
		LateNullEstimate:  -0.2,
		CoverageEnabled:   true,
		CoverageMethod:    CoverageMethod(" SQRT "),
		CoverageMinimum:   math.NaN(),
	}

	out := NormalizeScoringConfig(cfg, def)

	if out.ConfigName != "default" {
		t.Errorf("ConfigName = %q, want fallback %q", out.ConfigName, "default")
	}
	if out.WeightQuality != def.WeightQuality {
		t.Errorf("WeightQuality NaN harus jatuh ke baku: %v", out.WeightQuality)
	}
	if out.WeightAttendance != 0 {
		t.Errorf("bobot negatif harus jadi 0: %v", out.WeightAttendance)
	}
	if out.WeightPunctuality != 20 {
		t.Errorf("bobot valid tidak boleh diubah: %v", out.WeightPunctuality)
	}
	if out.LateDecayConstant != def.LateDecayConstant {
		t.Errorf("decay ≤0 harus jatuh ke baku: %v", out.LateDecayConstant)
	}
	if out.LateMinimumCredit != 1 {
		t.Errorf("minimum credit >1 harus di-clamp ke 1: %v", out.LateMinimumCredit)
	}
	if out.LateNullEstimate != 0 {
		t.Errorf("null estimate <0 harus di-clamp ke 0: %v", out.LateNullEstimate)
	}
	if out.CoverageMethod != CoverageSqrt {
		t.Errorf("method harus dinormalisasi case/space: %v", out.CoverageMethod)
	}
	if out.CoverageMinimum != def.CoverageMinimum {
		t.Errorf("CoverageMinimum NaN harus jatuh ke baku: %v", out.CoverageMinimum)
	}
	if !reflect.DeepEqual(out.LateBrackets, def.LateBrackets) {
		t.Errorf("bracket kosong harus dapat salinan baku")
	}
}

func TestNormalizeScoringConfigInvalidMethod(t *testing.T) {
	def := DefaultScoringConfig()
	cfg := def
	cfg.CoverageMethod = "parabolic"

	out := NormalizeScoringConfig(cfg, def)
	if out.CoverageMethod != def.CoverageMethod {
		t.Errorf("method tidak dikenal harus jatuh ke baku, dapat %v", out.CoverageMethod)
	}
}

func TestNormalizeScoringConfigIdempotent(t *testing.T) {
	def := DefaultScoringConfig()

	cfg := ScoringConfig{
		ConfigName:        "",
		WeightQuality:     math.NaN(),
		WeightAttendance:  -1,
		LateDecayConstant: -5,
		LateMinimumCredit: 2,
		CoverageMethod:    "LOG",
	}

	once := NormalizeScoringConfig(cfg, def)
	twice := NormalizeScoringConfig(once, def)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalize tidak idempotent:\nonce  = %+v\ntwice = %+v", once, twice)
	}
}

func TestBracketLabel(t *testing.T) {
	brackets := DefaultScoringConfig().LateBrackets

	tests := []struct {
		minutes int
		want    string
	}{
		{0, ""},
		{1, "Minor"},
		{5, "Minor"},
		{6, "Moderate"},
		{15, "Moderate"},
		{16, "Significant"},
		{30, "Significant"},
		{31, "Severe"},
		{60, "Severe"},
		{61, "Very Late"},
		{5000, "Very Late"},
	}
	for _, tt := range tests {
		if got := BracketLabel(tt.minutes, brackets); got != tt.want {
			t.Errorf("BracketLabel(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
