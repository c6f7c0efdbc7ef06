package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	auditsvc "presensiku_backend/internals/features/school/audit_logs/service"
	"presensiku_backend/internals/features/school/enrollments/dto"
	"presensiku_backend/internals/features/school/enrollments/model"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

var validate = validator.New()

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// POST /api/a/enrollments
func (ctrl *EnrollmentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(schoolID, time.Now())
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Student sudah terdaftar di course ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mendaftarkan student")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "create", "enrollment", &m.EnrollmentId, req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student berhasil didaftarkan", dto.NewEnrollmentResponse(m))
}

// GET /api/a/enrollments?course_id=&student_id=&only_active=
func (ctrl *EnrollmentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 30, 200)

	q := ctrl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_school_id = ?", schoolID)
	if courseID := c.Query("course_id"); courseID != "" {
		q = q.Where("enrollment_course_id = ?", courseID)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("enrollment_student_id = ?", studentID)
	}
	if c.QueryBool("only_active", false) {
		q = q.Where("enrollment_left_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.EnrollmentModel
	if err := q.Order("enrollment_joined_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.EnrollmentResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.NewEnrollmentResponse(r))
	}
	return helper.SuccessList(c, "OK", resp, helper.BuildPagination(paging, total, len(resp)))
}

// POST /api/a/enrollments/:id/leave — tandai keluar (left_at), bukan hard delete
func (ctrl *EnrollmentController) Leave(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.LeaveEnrollmentRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	leftAt := time.Now()
	if req.EnrollmentLeftAt != nil {
		leftAt = *req.EnrollmentLeftAt
	}

	res := ctrl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_id = ? AND enrollment_school_id = ? AND enrollment_left_at IS NULL", id, schoolID).
		Update("enrollment_left_at", leftAt)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai keluar")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Enrollment aktif tidak ditemukan")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "update", "enrollment", &id, fiber.Map{"left_at": leftAt})

	return helper.Success(c, "Enrollment ditandai keluar", nil)
}

// DELETE /api/a/enrollments/:id
func (ctrl *EnrollmentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.
		Where("enrollment_id = ? AND enrollment_school_id = ?", id, schoolID).
		Delete(&model.EnrollmentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus enrollment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Enrollment tidak ditemukan")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "delete", "enrollment", &id, nil)

	return helper.Success(c, "Enrollment berhasil dihapus", nil)
}
