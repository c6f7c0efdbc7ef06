package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttendanceScoringConfigModel struct {
	AttendanceScoringConfigId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_scoring_config_id" json:"attendance_scoring_config_id"`

	AttendanceScoringConfigSchoolId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:attendance_scoring_config_school_id" json:"attendance_scoring_config_school_id"`

	AttendanceScoringConfigName      string `gorm:"not null;default:'default';column:attendance_scoring_config_name" json:"attendance_scoring_config_name"`
	AttendanceScoringConfigIsDefault bool   `gorm:"not null;default:false;column:attendance_scoring_config_is_default" json:"attendance_scoring_config_is_default"`

	// Bobot komponen (konvensi total 100, divalidasi di DTO)
	AttendanceScoringConfigWeightQuality     float64 `gorm:"type:numeric(6,2);not null;default:50;column:attendance_scoring_config_weight_quality" json:"attendance_scoring_config_weight_quality"`
	AttendanceScoringConfigWeightAttendance  float64 `gorm:"type:numeric(6,2);not null;default:30;column:attendance_scoring_config_weight_attendance" json:"attendance_scoring_config_weight_attendance"`
	AttendanceScoringConfigWeightPunctuality float64 `gorm:"type:numeric(6,2);not null;default:20;column:attendance_scoring_config_weight_punctuality" json:"attendance_scoring_config_weight_punctuality"`

	// Parameter decay keterlambatan
	AttendanceScoringConfigLateDecayConstant float64 `gorm:"type:numeric(8,3);not null;default:43.3;column:attendance_scoring_config_late_decay_constant" json:"attendance_scoring_config_late_decay_constant"`
	AttendanceScoringConfigLateMinimumCredit float64 `gorm:"type:numeric(5,4);not null;default:0.05;column:attendance_scoring_config_late_minimum_credit" json:"attendance_scoring_config_late_minimum_credit"`
	AttendanceScoringConfigLateNullEstimate  float64 `gorm:"type:numeric(5,4);not null;default:0.7;column:attendance_scoring_config_late_null_estimate" json:"attendance_scoring_config_late_null_estimate"`

	// Parameter coverage
	AttendanceScoringConfigCoverageEnabled bool    `gorm:"not null;default:true;column:attendance_scoring_config_coverage_enabled" json:"attendance_scoring_config_coverage_enabled"`
	AttendanceScoringConfigCoverageMethod  string  `gorm:"not null;default:'sqrt';column:attendance_scoring_config_coverage_method" json:"attendance_scoring_config_coverage_method"`
	AttendanceScoringConfigCoverageMinimum float64 `gorm:"type:numeric(5,4);not null;default:0.6;column:attendance_scoring_config_coverage_minimum" json:"attendance_scoring_config_coverage_minimum"`

	// Bracket keterlambatan (display-only), disimpan sebagai JSON
	AttendanceScoringConfigLateBrackets datatypes.JSON `gorm:"column:attendance_scoring_config_late_brackets" json:"attendance_scoring_config_late_brackets"`

	// Modifier forward-compatible (belum dipakai engine)
	AttendanceScoringConfigPerfectAttendanceBonus   float64 `gorm:"type:numeric(6,2);not null;default:0;column:attendance_scoring_config_perfect_attendance_bonus" json:"attendance_scoring_config_perfect_attendance_bonus"`
	AttendanceScoringConfigStreakBonusPerWeek       float64 `gorm:"type:numeric(6,2);not null;default:0;column:attendance_scoring_config_streak_bonus_per_week" json:"attendance_scoring_config_streak_bonus_per_week"`
	AttendanceScoringConfigAbsencePenaltyMultiplier float64 `gorm:"type:numeric(6,2);not null;default:1;column:attendance_scoring_config_absence_penalty_multiplier" json:"attendance_scoring_config_absence_penalty_multiplier"`

	AttendanceScoringConfigCreatedAt time.Time      `gorm:"column:attendance_scoring_config_created_at;autoCreateTime" json:"attendance_scoring_config_created_at"`
	AttendanceScoringConfigUpdatedAt *time.Time     `gorm:"column:attendance_scoring_config_updated_at;autoUpdateTime" json:"attendance_scoring_config_updated_at,omitempty"`
	AttendanceScoringConfigDeletedAt gorm.DeletedAt `gorm:"column:attendance_scoring_config_deleted_at;index" json:"attendance_scoring_config_deleted_at,omitempty"`
}

func (AttendanceScoringConfigModel) TableName() string { return "attendance_scoring_configs" }
