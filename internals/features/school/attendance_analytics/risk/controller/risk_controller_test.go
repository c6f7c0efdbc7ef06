package controller

import (
	"testing"
	"time"
)

func TestAnalysisWindowClampsSinceDays(t *testing.T) {
	asOf := time.Date(2026, 3, 31, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		sinceDays int
		wantSince time.Time
	}{
		{"default", 120, asOf.AddDate(0, 0, -120)},
		{"di bawah minimum di-clamp ke 7", 1, asOf.AddDate(0, 0, -7)},
		{"di atas maksimum di-clamp ke 366", 5000, asOf.AddDate(0, 0, -366)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			since, _ := analysisWindow(asOf, tt.sinceDays)
			if !since.Equal(tt.wantSince) {
				t.Errorf("since = %v, want %v", since, tt.wantSince)
			}
		})
	}
}

func TestAnalysisWindowNeverExceedsAsOf(t *testing.T) {
	// Batas atas wajib = asOf: sesi berjadwal di masa depan yang sudah punya
	// record tidak boleh bocor ke analyzer (daysAgo negatif merusak recency).
	asOf := time.Date(2026, 3, 31, 9, 0, 0, 0, time.UTC)
	for _, sinceDays := range []int{1, 7, 120, 366, 5000} {
		_, until := analysisWindow(asOf, sinceDays)
		if !until.Equal(asOf) {
			t.Errorf("sinceDays=%d: until = %v, want %v", sinceDays, until, asOf)
		}
	}
}
