package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"presensiku_backend/internals/features/school/attendance_analytics/scoring/model"
	svc "presensiku_backend/internals/features/school/attendance_analytics/scoring/service"
)

/* =======================================================
   FLEX NUMERIC HELPER
   Config numerik bisa datang sebagai string dari wire format
   yang mempertahankan decimal ("43.3") — normalisasi di sini
   adalah bagian kontrak publik, bukan kenyamanan internal.
   ======================================================= */

type FlexFloat struct {
	Present bool
	Value   float64
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return nil
	}
	f.Present = true
	if len(b) >= 2 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("nilai numerik tidak valid: %q", s)
		}
		f.Value = v
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

func (f FlexFloat) Or(def float64) float64 {
	if !f.Present {
		return def
	}
	return f.Value
}

/* =========================================================
 * REQUESTS
 * ========================================================= */

type LateBracketPayload struct {
	Min  int    `json:"min" validate:"min=0"`
	Max  *int   `json:"max" validate:"omitempty,min=0"`
	Name string `json:"name" validate:"required,max=60"`
}

// Upsert (PUT) — field numerik memakai FlexFloat supaya string tetap diterima.
type UpsertScoringConfigRequest struct {
	AttendanceScoringConfigName string `json:"attendance_scoring_config_name" validate:"omitempty,max=120"`

	AttendanceScoringConfigWeightQuality     FlexFloat `json:"attendance_scoring_config_weight_quality"`
	AttendanceScoringConfigWeightAttendance  FlexFloat `json:"attendance_scoring_config_weight_attendance"`
	AttendanceScoringConfigWeightPunctuality FlexFloat `json:"attendance_scoring_config_weight_punctuality"`

	AttendanceScoringConfigLateDecayConstant FlexFloat `json:"attendance_scoring_config_late_decay_constant"`
	AttendanceScoringConfigLateMinimumCredit FlexFloat `json:"attendance_scoring_config_late_minimum_credit"`
	AttendanceScoringConfigLateNullEstimate  FlexFloat `json:"attendance_scoring_config_late_null_estimate"`

	AttendanceScoringConfigCoverageEnabled *bool     `json:"attendance_scoring_config_coverage_enabled"`
	AttendanceScoringConfigCoverageMethod  string    `json:"attendance_scoring_config_coverage_method" validate:"omitempty,oneof=sqrt linear log none"`
	AttendanceScoringConfigCoverageMinimum FlexFloat `json:"attendance_scoring_config_coverage_minimum"`

	AttendanceScoringConfigLateBrackets []LateBracketPayload `json:"attendance_scoring_config_late_brackets" validate:"omitempty,dive"`

	AttendanceScoringConfigPerfectAttendanceBonus   FlexFloat `json:"attendance_scoring_config_perfect_attendance_bonus"`
	AttendanceScoringConfigStreakBonusPerWeek       FlexFloat `json:"attendance_scoring_config_streak_bonus_per_week"`
	AttendanceScoringConfigAbsencePenaltyMultiplier FlexFloat `json:"attendance_scoring_config_absence_penalty_multiplier"`
}

// ValidateWeights: konvensi total bobot = 100 DI-ENFORCE di boundary DTO,
// bukan di engine (engine tetap permisif, keputusan di DESIGN.md).
func (r UpsertScoringConfigRequest) ValidateWeights(def svc.ScoringConfig) error {
	total := r.AttendanceScoringConfigWeightQuality.Or(def.WeightQuality) +
		r.AttendanceScoringConfigWeightAttendance.Or(def.WeightAttendance) +
		r.AttendanceScoringConfigWeightPunctuality.Or(def.WeightPunctuality)
	if total < 99.999 || total > 100.001 {
		return fmt.Errorf("total bobot harus 100, sekarang %.2f", total)
	}
	return nil
}

// ToScoringConfig: request → value config (field kosong jatuh ke def), lalu
// dinormalisasi supaya hasilnya selalu aman dipakai engine.
func (r UpsertScoringConfigRequest) ToScoringConfig(def svc.ScoringConfig) svc.ScoringConfig {
	cfg := svc.ScoringConfig{
		ConfigName: strings.TrimSpace(r.AttendanceScoringConfigName),
		IsDefault:  false,

		WeightQuality:     r.AttendanceScoringConfigWeightQuality.Or(def.WeightQuality),
		WeightAttendance:  r.AttendanceScoringConfigWeightAttendance.Or(def.WeightAttendance),
		WeightPunctuality: r.AttendanceScoringConfigWeightPunctuality.Or(def.WeightPunctuality),

		LateDecayConstant: r.AttendanceScoringConfigLateDecayConstant.Or(def.LateDecayConstant),
		LateMinimumCredit: r.AttendanceScoringConfigLateMinimumCredit.Or(def.LateMinimumCredit),
		LateNullEstimate:  r.AttendanceScoringConfigLateNullEstimate.Or(def.LateNullEstimate),

		CoverageEnabled: def.CoverageEnabled,
		CoverageMethod:  def.CoverageMethod,
		CoverageMinimum: r.AttendanceScoringConfigCoverageMinimum.Or(def.CoverageMinimum),

		PerfectAttendanceBonus:   r.AttendanceScoringConfigPerfectAttendanceBonus.Or(def.PerfectAttendanceBonus),
		StreakBonusPerWeek:       r.AttendanceScoringConfigStreakBonusPerWeek.Or(def.StreakBonusPerWeek),
		AbsencePenaltyMultiplier: r.AttendanceScoringConfigAbsencePenaltyMultiplier.Or(def.AbsencePenaltyMultiplier),
	}
	if r.AttendanceScoringConfigCoverageEnabled != nil {
		cfg.CoverageEnabled = *r.AttendanceScoringConfigCoverageEnabled
	}
	if r.AttendanceScoringConfigCoverageMethod != "" {
		cfg.CoverageMethod = svc.CoverageMethod(r.AttendanceScoringConfigCoverageMethod)
	}
	for _, b := range r.AttendanceScoringConfigLateBrackets {
		cfg.LateBrackets = append(cfg.LateBrackets, svc.LateBracket{Min: b.Min, Max: b.Max, Name: b.Name})
	}
	return svc.NormalizeScoringConfig(cfg, def)
}

/* =========================================================
 * MODEL ⇄ VALUE CONFIG
 * ========================================================= */

// ConfigFromModel: baris tersimpan → value config. Bracket JSON yang korup
// TIDAK menghasilkan error — jatuh ke bracket default (kontrak §fallback).
func ConfigFromModel(m model.AttendanceScoringConfigModel, def svc.ScoringConfig) svc.ScoringConfig {
	cfg := svc.ScoringConfig{
		ConfigName: m.AttendanceScoringConfigName,
		IsDefault:  m.AttendanceScoringConfigIsDefault,

		WeightQuality:     m.AttendanceScoringConfigWeightQuality,
		WeightAttendance:  m.AttendanceScoringConfigWeightAttendance,
		WeightPunctuality: m.AttendanceScoringConfigWeightPunctuality,

		LateDecayConstant: m.AttendanceScoringConfigLateDecayConstant,
		LateMinimumCredit: m.AttendanceScoringConfigLateMinimumCredit,
		LateNullEstimate:  m.AttendanceScoringConfigLateNullEstimate,

		CoverageEnabled: m.AttendanceScoringConfigCoverageEnabled,
		CoverageMethod:  svc.CoverageMethod(m.AttendanceScoringConfigCoverageMethod),
		CoverageMinimum: m.AttendanceScoringConfigCoverageMinimum,

		PerfectAttendanceBonus:   m.AttendanceScoringConfigPerfectAttendanceBonus,
		StreakBonusPerWeek:       m.AttendanceScoringConfigStreakBonusPerWeek,
		AbsencePenaltyMultiplier: m.AttendanceScoringConfigAbsencePenaltyMultiplier,
	}

	if len(m.AttendanceScoringConfigLateBrackets) > 0 {
		var brackets []svc.LateBracket
		if err := json.Unmarshal(m.AttendanceScoringConfigLateBrackets, &brackets); err == nil {
			cfg.LateBrackets = brackets
		}
	}

	return svc.NormalizeScoringConfig(cfg, def)
}

// ApplyToModel: value config → kolom model (untuk upsert).
func ApplyToModel(cfg svc.ScoringConfig, schoolID uuid.UUID, m *model.AttendanceScoringConfigModel) {
	m.AttendanceScoringConfigSchoolId = schoolID
	m.AttendanceScoringConfigName = cfg.ConfigName
	m.AttendanceScoringConfigIsDefault = cfg.IsDefault

	m.AttendanceScoringConfigWeightQuality = cfg.WeightQuality
	m.AttendanceScoringConfigWeightAttendance = cfg.WeightAttendance
	m.AttendanceScoringConfigWeightPunctuality = cfg.WeightPunctuality

	m.AttendanceScoringConfigLateDecayConstant = cfg.LateDecayConstant
	m.AttendanceScoringConfigLateMinimumCredit = cfg.LateMinimumCredit
	m.AttendanceScoringConfigLateNullEstimate = cfg.LateNullEstimate

	m.AttendanceScoringConfigCoverageEnabled = cfg.CoverageEnabled
	m.AttendanceScoringConfigCoverageMethod = string(cfg.CoverageMethod)
	m.AttendanceScoringConfigCoverageMinimum = cfg.CoverageMinimum

	if b, err := json.Marshal(cfg.LateBrackets); err == nil {
		m.AttendanceScoringConfigLateBrackets = datatypes.JSON(b)
	}

	m.AttendanceScoringConfigPerfectAttendanceBonus = cfg.PerfectAttendanceBonus
	m.AttendanceScoringConfigStreakBonusPerWeek = cfg.StreakBonusPerWeek
	m.AttendanceScoringConfigAbsencePenaltyMultiplier = cfg.AbsencePenaltyMultiplier
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type ScoringConfigResponse struct {
	ConfigName string `json:"config_name"`
	IsDefault  bool   `json:"is_default"`

	WeightQuality     float64 `json:"weight_quality"`
	WeightAttendance  float64 `json:"weight_attendance"`
	WeightPunctuality float64 `json:"weight_punctuality"`

	LateDecayConstant float64 `json:"late_decay_constant"`
	LateMinimumCredit float64 `json:"late_minimum_credit"`
	LateNullEstimate  float64 `json:"late_null_estimate"`

	CoverageEnabled bool    `json:"coverage_enabled"`
	CoverageMethod  string  `json:"coverage_method"`
	CoverageMinimum float64 `json:"coverage_minimum"`

	LateBrackets []svc.LateBracket `json:"late_brackets"`

	PerfectAttendanceBonus   float64 `json:"perfect_attendance_bonus"`
	StreakBonusPerWeek       float64 `json:"streak_bonus_per_week"`
	AbsencePenaltyMultiplier float64 `json:"absence_penalty_multiplier"`

	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewScoringConfigResponse(cfg svc.ScoringConfig, updatedAt *time.Time) ScoringConfigResponse {
	return ScoringConfigResponse{
		ConfigName:               cfg.ConfigName,
		IsDefault:                cfg.IsDefault,
		WeightQuality:            cfg.WeightQuality,
		WeightAttendance:         cfg.WeightAttendance,
		WeightPunctuality:        cfg.WeightPunctuality,
		LateDecayConstant:        cfg.LateDecayConstant,
		LateMinimumCredit:        cfg.LateMinimumCredit,
		LateNullEstimate:         cfg.LateNullEstimate,
		CoverageEnabled:          cfg.CoverageEnabled,
		CoverageMethod:           string(cfg.CoverageMethod),
		CoverageMinimum:          cfg.CoverageMinimum,
		LateBrackets:             cfg.LateBrackets,
		PerfectAttendanceBonus:   cfg.PerfectAttendanceBonus,
		StreakBonusPerWeek:       cfg.StreakBonusPerWeek,
		AbsencePenaltyMultiplier: cfg.AbsencePenaltyMultiplier,
		UpdatedAt:                updatedAt,
	}
}
