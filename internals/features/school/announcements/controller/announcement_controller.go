package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/announcements/dto"
	"presensiku_backend/internals/features/school/announcements/model"
	auditsvc "presensiku_backend/internals/features/school/audit_logs/service"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

var validate = validator.New()

// POST /api/a/announcements
func (ctrl *AnnouncementController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	m := req.ToModel(schoolID, &actorID, time.Now())

	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat pengumuman")
	}

	auditsvc.Record(ctrl.DB, schoolID, &actorID, "create", "announcement", &m.AnnouncementId, req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengumuman berhasil dibuat", dto.NewAnnouncementResponse(m))
}

// GET /api/a/announcements?course_id=&published=
func (ctrl *AnnouncementController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.AnnouncementModel{}).
		Where("announcement_school_id = ?", schoolID)
	if courseID := c.Query("course_id"); courseID != "" {
		q = q.Where("announcement_course_id = ?", courseID)
	}
	switch c.Query("published") {
	case "true":
		q = q.Where("announcement_published_at IS NOT NULL")
	case "false":
		q = q.Where("announcement_published_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung pengumuman")
	}

	var list []model.AnnouncementModel
	if err := q.Order("announcement_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	resp := make([]dto.AnnouncementResponse, 0, len(list))
	for _, mdl := range list {
		resp = append(resp, dto.NewAnnouncementResponse(mdl))
	}

	return helper.SuccessList(c, "Pengumuman berhasil diambil", resp, helper.BuildPagination(paging, total, len(resp)))
}

// GET /api/a/announcements/:id
func (ctrl *AnnouncementController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var mdl model.AnnouncementModel
	if err := ctrl.DB.
		Where("announcement_id = ? AND announcement_school_id = ?", id, schoolID).
		First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	return helper.Success(c, "Pengumuman berhasil diambil", dto.NewAnnouncementResponse(mdl))
}

// PUT /api/a/announcements/:id
func (ctrl *AnnouncementController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mdl model.AnnouncementModel
	if err := ctrl.DB.
		Where("announcement_id = ? AND announcement_school_id = ?", id, schoolID).
		First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Success(c, "Tidak ada perubahan", dto.NewAnnouncementResponse(mdl))
	}

	if err := ctrl.DB.Model(&mdl).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui pengumuman")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "update", "announcement", &mdl.AnnouncementId, req)

	return helper.Success(c, "Pengumuman berhasil diperbarui", dto.NewAnnouncementResponse(mdl))
}

// POST /api/a/announcements/:id/publish
func (ctrl *AnnouncementController) Publish(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.AnnouncementModel{}).
		Where("announcement_id = ? AND announcement_school_id = ? AND announcement_published_at IS NULL", id, schoolID).
		Update("announcement_published_at", now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menerbitkan pengumuman")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pengumuman tidak ditemukan atau sudah terbit")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "publish", "announcement", &id, nil)

	return helper.Success(c, "Pengumuman berhasil diterbitkan", fiber.Map{
		"announcement_id":           id,
		"announcement_published_at": now,
	})
}

// DELETE /api/a/announcements/:id (soft delete)
func (ctrl *AnnouncementController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.
		Where("announcement_id = ? AND announcement_school_id = ?", id, schoolID).
		Delete(&model.AnnouncementModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "delete", "announcement", &id, nil)

	return helper.Success(c, "Pengumuman berhasil dihapus", nil)
}
