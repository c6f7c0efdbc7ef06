package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	auditsvc "presensiku_backend/internals/features/school/audit_logs/service"
	"presensiku_backend/internals/features/school/students/dto"
	"presensiku_backend/internals/features/school/students/model"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

/* ===================== CREATE ===================== */
// POST /api/a/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(schoolID)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Kode student sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat student")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "create", "student", &m.StudentId, req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student berhasil dibuat", dto.NewStudentResponse(m))
}

/* ===================== LIST ===================== */
// GET /api/a/students?search=&page=&per_page=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_school_id = ?", schoolID)

	if search := c.Query("search"); search != "" {
		q = q.Where("student_name ILIKE ? OR student_code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if onlyActive := c.QueryBool("only_active", false); onlyActive {
		q = q.Where("student_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentModel
	if err := q.Order("student_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.StudentResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.NewStudentResponse(r))
	}

	return helper.SuccessList(c, "OK", resp, helper.BuildPagination(paging, total, len(resp)))
}

/* ===================== GET BY ID ===================== */
// GET /api/a/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.NewStudentResponse(m))
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateStudentRequest
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

	res := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update student")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student tidak ditemukan")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "update", "student", &id, updates)

	var m model.StudentModel
	if err := ctrl.DB.
		Where("student_id = ?", id).
		Take(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Student berhasil diupdate", dto.NewStudentResponse(m))
}

/* ===================== DELETE (soft) ===================== */
// DELETE /api/a/students/:id
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus student")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student tidak ditemukan")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "delete", "student", &id, nil)

	return helper.Success(c, "Student berhasil dihapus", nil)
}
