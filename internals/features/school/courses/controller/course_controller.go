package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	auditsvc "presensiku_backend/internals/features/school/audit_logs/service"
	"presensiku_backend/internals/features/school/courses/dto"
	"presensiku_backend/internals/features/school/courses/model"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

var validate = validator.New()

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// POST /api/a/courses
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.CourseStartDate != nil && req.CourseEndDate != nil && req.CourseEndDate.Before(*req.CourseStartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "course_end_date harus setelah course_start_date")
	}

	m := req.ToModel(schoolID)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Kode course sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat course")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "create", "course", &m.CourseId, req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course berhasil dibuat", dto.NewCourseResponse(m))
}

// GET /api/a/courses
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.CourseModel{}).
		Where("course_school_id = ?", schoolID)
	if search := c.Query("search"); search != "" {
		q = q.Where("course_name ILIKE ? OR course_code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		q = q.Where("course_teacher_id = ?", teacherID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CourseModel
	if err := q.Order("course_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.CourseResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.NewCourseResponse(r))
	}
	return helper.SuccessList(c, "OK", resp, helper.BuildPagination(paging, total, len(resp)))
}

// GET /api/a/courses/:id
func (ctrl *CourseController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.CourseModel
	if err := ctrl.DB.
		Where("course_id = ? AND course_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewCourseResponse(m))
}

// PATCH /api/a/courses/:id
func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.CourseModel{}).
		Where("course_id = ? AND course_school_id = ?", id, schoolID).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update course")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "update", "course", &id, updates)

	var m model.CourseModel
	if err := ctrl.DB.Where("course_id = ?", id).Take(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Course berhasil diupdate", dto.NewCourseResponse(m))
}

// DELETE /api/a/courses/:id
func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.
		Where("course_id = ? AND course_school_id = ?", id, schoolID).
		Delete(&model.CourseModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus course")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "delete", "course", &id, nil)

	return helper.Success(c, "Course berhasil dihapus", nil)
}
