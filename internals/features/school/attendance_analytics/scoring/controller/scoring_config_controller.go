package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/attendance_analytics/scoring/dto"
	"presensiku_backend/internals/features/school/attendance_analytics/scoring/model"
	svc "presensiku_backend/internals/features/school/attendance_analytics/scoring/service"
	auditsvc "presensiku_backend/internals/features/school/audit_logs/service"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type ScoringConfigController struct {
	DB *gorm.DB
}

func NewScoringConfigController(db *gorm.DB) *ScoringConfigController {
	return &ScoringConfigController{DB: db}
}

var validate = validator.New()

// GET /api/a/attendance-analytics/scoring-config
// Sekolah tanpa konfigurasi tersimpan dapat konfigurasi baku.
func (ctrl *ScoringConfigController) GetConfig(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	def := svc.DefaultScoringConfig()

	var m model.AttendanceScoringConfigModel
	if err := ctrl.DB.
		Where("attendance_scoring_config_school_id = ?", schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Konfigurasi skor (baku)", dto.NewScoringConfigResponse(def, nil))
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil konfigurasi skor")
	}

	cfg := dto.ConfigFromModel(m, def)
	return helper.Success(c, "Konfigurasi skor berhasil diambil", dto.NewScoringConfigResponse(cfg, m.AttendanceScoringConfigUpdatedAt))
}

// PUT /api/a/attendance-analytics/scoring-config
// Upsert per sekolah: field yang tidak dikirim jatuh ke nilai baku, lalu dinormalisasi.
func (ctrl *ScoringConfigController) UpsertConfig(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertScoringConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	def := svc.DefaultScoringConfig()
	if err := req.ValidateWeights(def); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	cfg := req.ToScoringConfig(def)

	var m model.AttendanceScoringConfigModel
	err = ctrl.DB.
		Where("attendance_scoring_config_school_id = ?", schoolID).
		First(&m).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		dto.ApplyToModel(cfg, schoolID, &m)
		if err := ctrl.DB.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan konfigurasi skor")
		}
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil konfigurasi skor")
	default:
		dto.ApplyToModel(cfg, schoolID, &m)
		if err := ctrl.DB.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan konfigurasi skor")
		}
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "upsert", "attendance_scoring_config", &m.AttendanceScoringConfigId, req)

	return helper.Success(c, "Konfigurasi skor berhasil disimpan", dto.NewScoringConfigResponse(cfg, m.AttendanceScoringConfigUpdatedAt))
}

// POST /api/a/attendance-analytics/scoring-config/preview
// Hitung skor dari counter mentah tanpa menyentuh data kehadiran; untuk
// kalibrasi bobot sebelum disimpan.
func (ctrl *ScoringConfigController) PreviewScore(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ScorePreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cfg, err := ctrl.loadConfig(schoolID)
	if err != nil {
		return err
	}

	res := svc.WeightedScore(
		req.QualityAdjustedRate,
		req.AttendanceRate,
		req.PunctualityPct,
		req.EffectiveDays,
		req.TotalSessionDays,
		cfg,
	)

	return helper.Success(c, "Pratinjau skor berhasil dihitung", res)
}

func (ctrl *ScoringConfigController) loadConfig(schoolID uuid.UUID) (svc.ScoringConfig, error) {
	def := svc.DefaultScoringConfig()

	var m model.AttendanceScoringConfigModel
	if err := ctrl.DB.
		Where("attendance_scoring_config_school_id = ?", schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return def, nil
		}
		return def, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil konfigurasi skor")
	}
	return dto.ConfigFromModel(m, def), nil
}
