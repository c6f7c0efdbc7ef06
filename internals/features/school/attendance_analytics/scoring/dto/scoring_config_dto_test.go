package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"presensiku_backend/internals/features/school/attendance_analytics/scoring/model"
	svc "presensiku_backend/internals/features/school/attendance_analytics/scoring/service"
)

func TestFlexFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantPresent bool
		wantValue   float64
		wantErr     bool
	}{
		{"angka biasa", `43.3`, true, 43.3, false},
		{"angka bulat", `50`, true, 50, false},
		{"string angka", `"43.3"`, true, 43.3, false},
		{"string dengan spasi", `" 0.05 "`, true, 0.05, false},
		{"null tidak dianggap hadir", `null`, false, 0, false},
		{"string bukan angka", `"banyak"`, true, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			err := json.Unmarshal([]byte(tt.raw), &f)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPresent, f.Present)
			assert.Equal(t, tt.wantValue, f.Value)
		})
	}
}

func TestFlexFloatOr(t *testing.T) {
	var absent FlexFloat
	assert.Equal(t, 43.3, absent.Or(43.3))

	present := FlexFloat{Present: true, Value: 20}
	assert.Equal(t, 20.0, present.Or(43.3))

	zero := FlexFloat{Present: true, Value: 0}
	assert.Equal(t, 0.0, zero.Or(43.3), "nol eksplisit bukan berarti absen")
}

func TestValidateWeights(t *testing.T) {
	def := svc.DefaultScoringConfig()

	var empty UpsertScoringConfigRequest
	assert.NoError(t, empty.ValidateWeights(def), "tanpa bobot berarti pakai baku 50/30/20")

	valid := UpsertScoringConfigRequest{
		AttendanceScoringConfigWeightQuality:     FlexFloat{Present: true, Value: 40},
		AttendanceScoringConfigWeightAttendance:  FlexFloat{Present: true, Value: 40},
		AttendanceScoringConfigWeightPunctuality: FlexFloat{Present: true, Value: 20},
	}
	assert.NoError(t, valid.ValidateWeights(def))

	partial := UpsertScoringConfigRequest{
		// quality diganti tapi sisanya baku: 70+30+20 = 120
		AttendanceScoringConfigWeightQuality: FlexFloat{Present: true, Value: 70},
	}
	assert.Error(t, partial.ValidateWeights(def))

	short := UpsertScoringConfigRequest{
		AttendanceScoringConfigWeightQuality:     FlexFloat{Present: true, Value: 10},
		AttendanceScoringConfigWeightAttendance:  FlexFloat{Present: true, Value: 10},
		AttendanceScoringConfigWeightPunctuality: FlexFloat{Present: true, Value: 10},
	}
	assert.Error(t, short.ValidateWeights(def))
}

func TestToScoringConfigFillsDefaultsAndNormalizes(t *testing.T) {
	def := svc.DefaultScoringConfig()

	var payload UpsertScoringConfigRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"attendance_scoring_config_name": "  semester genap  ",
		"attendance_scoring_config_weight_quality": "60",
		"attendance_scoring_config_weight_attendance": 25,
		"attendance_scoring_config_weight_punctuality": 15,
		"attendance_scoring_config_coverage_method": "linear",
		"attendance_scoring_config_late_minimum_credit": 2.5
	}`), &payload))

	cfg := payload.ToScoringConfig(def)

	assert.Equal(t, "semester genap", cfg.ConfigName)
	assert.Equal(t, 60.0, cfg.WeightQuality)
	assert.Equal(t, 25.0, cfg.WeightAttendance)
	assert.Equal(t, 15.0, cfg.WeightPunctuality)
	assert.Equal(t, svc.CoverageLinear, cfg.CoverageMethod)
	assert.Equal(t, def.LateDecayConstant, cfg.LateDecayConstant, "field yang tidak dikirim jatuh ke baku")
	assert.Equal(t, 1.0, cfg.LateMinimumCredit, "out-of-range di-clamp saat normalisasi")
	assert.Equal(t, def.LateBrackets, cfg.LateBrackets, "bracket kosong dapat salinan baku")
}

func TestConfigFromModelCorruptBrackets(t *testing.T) {
	def := svc.DefaultScoringConfig()

	m := model.AttendanceScoringConfigModel{
		AttendanceScoringConfigSchoolId:          uuid.New(),
		AttendanceScoringConfigName:              "custom",
		AttendanceScoringConfigWeightQuality:     50,
		AttendanceScoringConfigWeightAttendance:  30,
		AttendanceScoringConfigWeightPunctuality: 20,
		AttendanceScoringConfigLateDecayConstant: 43.3,
		AttendanceScoringConfigLateMinimumCredit: 0.05,
		AttendanceScoringConfigLateNullEstimate:  0.7,
		AttendanceScoringConfigCoverageEnabled:   true,
		AttendanceScoringConfigCoverageMethod:    "sqrt",
		AttendanceScoringConfigCoverageMinimum:   0.6,
		AttendanceScoringConfigLateBrackets:      datatypes.JSON([]byte(`{bukan json valid`)),
	}

	cfg := ConfigFromModel(m, def)

	assert.Equal(t, "custom", cfg.ConfigName)
	assert.Equal(t, def.LateBrackets, cfg.LateBrackets, "bracket korup harus jatuh diam-diam ke baku")
}

func TestConfigModelRoundTrip(t *testing.T) {
	def := svc.DefaultScoringConfig()
	schoolID := uuid.New()

	cfg := def
	cfg.ConfigName = "uji"
	cfg.IsDefault = false
	cfg.WeightQuality = 40
	cfg.WeightAttendance = 40
	cfg.WeightPunctuality = 20
	cfg.CoverageMethod = svc.CoverageLog

	var m model.AttendanceScoringConfigModel
	ApplyToModel(cfg, schoolID, &m)
	require.Equal(t, schoolID, m.AttendanceScoringConfigSchoolId)

	back := ConfigFromModel(m, def)
	assert.Equal(t, cfg.ConfigName, back.ConfigName)
	assert.Equal(t, cfg.WeightQuality, back.WeightQuality)
	assert.Equal(t, cfg.CoverageMethod, back.CoverageMethod)
	assert.Equal(t, cfg.LateBrackets, back.LateBrackets)
}
