package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	auditsvc "presensiku_backend/internals/features/school/audit_logs/service"
	"presensiku_backend/internals/features/school/course_sessions/dto"
	"presensiku_backend/internals/features/school/course_sessions/model"
	courseModel "presensiku_backend/internals/features/school/courses/model"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type CourseSessionController struct {
	DB *gorm.DB
}

func NewCourseSessionController(db *gorm.DB) *CourseSessionController {
	return &CourseSessionController{DB: db}
}

var validate = validator.New()

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// POST /api/a/course-sessions
func (ctrl *CourseSessionController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCourseSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// pastikan course milik school ini
	var course courseModel.CourseModel
	if err := ctrl.DB.
		Where("course_id = ? AND course_school_id = ?", req.CourseSessionCourseId, schoolID).
		Take(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Course tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Sesi untuk tanggal tersebut sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat sesi")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "create", "course_session", &m.CourseSessionId, req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi berhasil dibuat", dto.NewCourseSessionResponse(m))
}

// POST /api/a/course-sessions/generate
// Buat sesi massal dari course_meeting_days di rentang tanggal; tanggal yang
// sudah punya sesi dilewati (ON CONFLICT DO NOTHING).
func (ctrl *CourseSessionController) Generate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.GenerateCourseSessionsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.DateTo.Before(req.DateFrom) {
		return fiber.NewError(fiber.StatusBadRequest, "date_to harus setelah date_from")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.
		Where("course_id = ? AND course_school_id = ?", req.CourseSessionCourseId, schoolID).
		Take(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Course tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(course.CourseMeetingDays) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Course belum punya course_meeting_days")
	}

	meeting := make(map[int64]bool, len(course.CourseMeetingDays))
	for _, d := range course.CourseMeetingDays {
		meeting[d] = true
	}

	var rows []model.CourseSessionModel
	for d := req.DateFrom; !d.After(req.DateTo); d = d.AddDate(0, 0, 1) {
		if !meeting[int64(d.Weekday())] {
			continue
		}
		rows = append(rows, model.CourseSessionModel{
			CourseSessionSchoolId:  schoolID,
			CourseSessionCourseId:  course.CourseId,
			CourseSessionDate:      d,
			CourseSessionTeacherId: course.CourseTeacherId,
		})
	}
	if len(rows) == 0 {
		return helper.Success(c, "Tidak ada tanggal yang cocok dengan jadwal", fiber.Map{"created": 0})
	}

	res := ctrl.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal generate sesi")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "create", "course_session", nil, fiber.Map{
		"generated": res.RowsAffected,
		"course_id": course.CourseId,
	})

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi berhasil digenerate", fiber.Map{"created": res.RowsAffected})
}

// GET /api/a/course-sessions?course_id=&date_from=&date_to=
func (ctrl *CourseSessionController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 30, 200)

	q := ctrl.DB.Model(&model.CourseSessionModel{}).
		Where("course_session_school_id = ?", schoolID)
	if courseID := c.Query("course_id"); courseID != "" {
		q = q.Where("course_session_course_id = ?", courseID)
	}
	if from := c.Query("date_from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("course_session_date >= ?", t)
		}
	}
	if to := c.Query("date_to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("course_session_date <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CourseSessionModel
	if err := q.Order("course_session_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.CourseSessionResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.NewCourseSessionResponse(r))
	}
	return helper.SuccessList(c, "OK", resp, helper.BuildPagination(paging, total, len(resp)))
}

// PATCH /api/a/course-sessions/:id
func (ctrl *CourseSessionController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateCourseSessionRequest
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

	res := ctrl.DB.Model(&model.CourseSessionModel{}).
		Where("course_session_id = ? AND course_session_school_id = ?", id, schoolID).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update sesi")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "update", "course_session", &id, updates)

	var m model.CourseSessionModel
	if err := ctrl.DB.Where("course_session_id = ?", id).Take(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Sesi berhasil diupdate", dto.NewCourseSessionResponse(m))
}

// DELETE /api/a/course-sessions/:id
func (ctrl *CourseSessionController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.
		Where("course_session_id = ? AND course_session_school_id = ?", id, schoolID).
		Delete(&model.CourseSessionModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus sesi")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "delete", "course_session", &id, nil)

	return helper.Success(c, "Sesi berhasil dihapus", nil)
}
