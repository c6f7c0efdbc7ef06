package controller

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/messages/dto"
	"presensiku_backend/internals/features/school/messages/model"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

var validate = validator.New()

// POST /api/u/messages
func (ctrl *MessageController) Send(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	senderID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.MessageRecipientId == senderID {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak bisa mengirim pesan ke diri sendiri")
	}

	m := model.MessageModel{
		MessageSchoolId:    schoolID,
		MessageSenderId:    senderID,
		MessageRecipientId: req.MessageRecipientId,
		MessageSubject:     req.MessageSubject,
		MessageBody:        req.MessageBody,
	}
	if len(req.MessageAttachments) > 0 {
		b, err := json.Marshal(req.MessageAttachments)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Lampiran tidak valid")
		}
		m.MessageAttachments = datatypes.JSON(b)
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengirim pesan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pesan berhasil dikirim", dto.NewMessageResponse(m))
}

// GET /api/u/messages/inbox?unread=
func (ctrl *MessageController) Inbox(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MessageModel{}).
		Where("message_school_id = ? AND message_recipient_id = ?", schoolID, userID)
	if c.Query("unread") == "true" {
		q = q.Where("message_read_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung pesan")
	}

	var list []model.MessageModel
	if err := q.Order("message_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	resp := make([]dto.MessageResponse, 0, len(list))
	for _, mdl := range list {
		resp = append(resp, dto.NewMessageResponse(mdl))
	}

	return helper.SuccessList(c, "Pesan masuk berhasil diambil", resp, helper.BuildPagination(paging, total, len(resp)))
}

// GET /api/u/messages/sent
func (ctrl *MessageController) Sent(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MessageModel{}).
		Where("message_school_id = ? AND message_sender_id = ?", schoolID, userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung pesan")
	}

	var list []model.MessageModel
	if err := q.Order("message_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	resp := make([]dto.MessageResponse, 0, len(list))
	for _, mdl := range list {
		resp = append(resp, dto.NewMessageResponse(mdl))
	}

	return helper.SuccessList(c, "Pesan terkirim berhasil diambil", resp, helper.BuildPagination(paging, total, len(resp)))
}

// GET /api/u/messages/:id — hanya pengirim atau penerima
func (ctrl *MessageController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var mdl model.MessageModel
	if err := ctrl.DB.
		Where("message_id = ? AND message_school_id = ?", id, schoolID).
		Where("message_sender_id = ? OR message_recipient_id = ?", userID, userID).
		First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pesan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	return helper.Success(c, "Pesan berhasil diambil", dto.NewMessageResponse(mdl))
}

// POST /api/u/messages/:id/read — hanya penerima yang bisa menandai dibaca
func (ctrl *MessageController) MarkRead(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.MessageModel{}).
		Where("message_id = ? AND message_school_id = ? AND message_recipient_id = ? AND message_read_at IS NULL",
			id, schoolID, userID).
		Update("message_read_at", now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai pesan")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pesan tidak ditemukan atau sudah dibaca")
	}

	return helper.Success(c, "Pesan ditandai sudah dibaca", fiber.Map{
		"message_id":      id,
		"message_read_at": now,
	})
}

// DELETE /api/u/messages/:id (soft delete; pengirim atau penerima)
func (ctrl *MessageController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.
		Where("message_id = ? AND message_school_id = ?", id, schoolID).
		Where("message_sender_id = ? OR message_recipient_id = ?", userID, userID).
		Delete(&model.MessageModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus pesan")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pesan tidak ditemukan")
	}

	return helper.Success(c, "Pesan berhasil dihapus", nil)
}
