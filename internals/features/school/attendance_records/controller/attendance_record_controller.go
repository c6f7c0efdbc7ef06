package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/school/attendance_records/dto"
	"presensiku_backend/internals/features/school/attendance_records/model"
	auditsvc "presensiku_backend/internals/features/school/audit_logs/service"
	sessModel "presensiku_backend/internals/features/school/course_sessions/model"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type AttendanceRecordController struct {
	DB *gorm.DB
}

func NewAttendanceRecordController(db *gorm.DB) *AttendanceRecordController {
	return &AttendanceRecordController{DB: db}
}

var validate = validator.New()

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (ctrl *AttendanceRecordController) sessionBelongsToSchool(sessionID, schoolID uuid.UUID) (bool, error) {
	var n int64
	err := ctrl.DB.Model(&sessModel.CourseSessionModel{}).
		Where("course_session_id = ? AND course_session_school_id = ?", sessionID, schoolID).
		Count(&n).Error
	return n > 0, err
}

/* =========================================================
   MARK (single)
========================================================= */

// POST /api/t/attendance-records
func (ctrl *AttendanceRecordController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAttendanceRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidAttendanceStatus(req.AttendanceRecordStatus) {
		return fiber.NewError(fiber.StatusBadRequest, "Status kehadiran tidak dikenal")
	}

	ok, err := ctrl.sessionBelongsToSchool(req.AttendanceRecordSessionId, schoolID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa sesi")
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	m := req.ToModel(schoolID, &actorID)

	if err := ctrl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Kehadiran student untuk sesi ini sudah dicatat")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat kehadiran")
	}

	auditsvc.Record(ctrl.DB, schoolID, &actorID, "create", "attendance_record", &m.AttendanceRecordId, req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kehadiran berhasil dicatat", dto.NewAttendanceRecordResponse(m))
}

/* =========================================================
   MARK (bulk per sesi)
========================================================= */

// POST /api/t/attendance-records/bulk
// Satu sesi, banyak student sekaligus. Entry duplikat (sudah tercatat) dilewati.
func (ctrl *AttendanceRecordController) BulkMark(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.BulkMarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ok, err := ctrl.sessionBelongsToSchool(req.AttendanceRecordSessionId, schoolID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa sesi")
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)

	rows := make([]model.AttendanceRecordModel, 0, len(req.Entries))
	for _, e := range req.Entries {
		late := e.AttendanceRecordLateMinutes
		if e.AttendanceRecordStatus != constants.AttendanceStatusLate {
			late = nil
		}
		rows = append(rows, model.AttendanceRecordModel{
			AttendanceRecordSchoolId:    schoolID,
			AttendanceRecordStudentId:   e.AttendanceRecordStudentId,
			AttendanceRecordSessionId:   req.AttendanceRecordSessionId,
			AttendanceRecordStatus:      e.AttendanceRecordStatus,
			AttendanceRecordLateMinutes: late,
			AttendanceRecordNote:        e.AttendanceRecordNote,
			AttendanceRecordMarkedBy:    &actorID,
		})
	}

	res := ctrl.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat kehadiran")
	}

	auditsvc.Record(ctrl.DB, schoolID, &actorID, "bulk_mark", "attendance_record", nil, fiber.Map{
		"session_id": req.AttendanceRecordSessionId,
		"requested":  len(req.Entries),
		"inserted":   res.RowsAffected,
	})

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kehadiran sesi berhasil dicatat", fiber.Map{
		"requested": len(req.Entries),
		"inserted":  res.RowsAffected,
		"skipped":   int64(len(req.Entries)) - res.RowsAffected,
	})
}

/* =========================================================
   LIST & DETAIL
========================================================= */

// GET /api/t/attendance-records?session_id=&student_id=&status=
func (ctrl *AttendanceRecordController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 30, 200)

	q := ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_school_id = ?", schoolID)
	if sessionID := c.Query("session_id"); sessionID != "" {
		q = q.Where("attendance_record_session_id = ?", sessionID)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("attendance_record_student_id = ?", studentID)
	}
	if status := c.Query("status"); status != "" {
		if !constants.IsValidAttendanceStatus(status) {
			return fiber.NewError(fiber.StatusBadRequest, "Status kehadiran tidak dikenal")
		}
		q = q.Where("attendance_record_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung data kehadiran")
	}

	var list []model.AttendanceRecordModel
	if err := q.Order("attendance_record_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}

	resp := make([]dto.AttendanceRecordResponse, 0, len(list))
	for _, mdl := range list {
		resp = append(resp, dto.NewAttendanceRecordResponse(mdl))
	}

	return helper.SuccessList(c, "Data kehadiran berhasil diambil", resp, helper.BuildPagination(paging, total, len(resp)))
}

// GET /api/t/attendance-records/:id
func (ctrl *AttendanceRecordController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var mdl model.AttendanceRecordModel
	if err := ctrl.DB.
		Where("attendance_record_id = ? AND attendance_record_school_id = ?", id, schoolID).
		First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Catatan kehadiran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil catatan kehadiran")
	}

	return helper.Success(c, "Catatan kehadiran berhasil diambil", dto.NewAttendanceRecordResponse(mdl))
}

/* =========================================================
   UPDATE & DELETE
========================================================= */

// PUT /api/t/attendance-records/:id
func (ctrl *AttendanceRecordController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAttendanceRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mdl model.AttendanceRecordModel
	if err := ctrl.DB.
		Where("attendance_record_id = ? AND attendance_record_school_id = ?", id, schoolID).
		First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Catatan kehadiran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil catatan kehadiran")
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Success(c, "Tidak ada perubahan", dto.NewAttendanceRecordResponse(mdl))
	}

	if err := ctrl.DB.Model(&mdl).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui catatan kehadiran")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "update", "attendance_record", &mdl.AttendanceRecordId, req)

	return helper.Success(c, "Catatan kehadiran berhasil diperbarui", dto.NewAttendanceRecordResponse(mdl))
}

// DELETE /api/t/attendance-records/:id (soft delete)
func (ctrl *AttendanceRecordController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.
		Where("attendance_record_id = ? AND attendance_record_school_id = ?", id, schoolID).
		Delete(&model.AttendanceRecordModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus catatan kehadiran")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Catatan kehadiran tidak ditemukan")
	}

	actorID, _ := helperAuth.GetUserIDFromToken(c)
	auditsvc.Record(ctrl.DB, schoolID, &actorID, "delete", "attendance_record", &id, nil)

	return helper.Success(c, "Catatan kehadiran berhasil dihapus", nil)
}
