package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "presensiku_backend/internals/features/school/messages/model"
)

type SendMessageRequest struct {
	MessageRecipientId uuid.UUID `json:"message_recipient_id" validate:"required,uuid4"`
	MessageSubject     string    `json:"message_subject" validate:"required,min=1,max=200"`
	MessageBody        string    `json:"message_body" validate:"required,min=1"`

	MessageAttachments []MessageAttachment `json:"message_attachments" validate:"omitempty,max=10,dive"`
}

type MessageAttachment struct {
	FileName string `json:"file_name" validate:"required,max=255"`
	FileURL  string `json:"file_url" validate:"required,url"`
	MimeType string `json:"mime_type" validate:"omitempty,max=100"`
}

type MessageResponse struct {
	MessageId          uuid.UUID `json:"message_id"`
	MessageSchoolId    uuid.UUID `json:"message_school_id"`
	MessageSenderId    uuid.UUID `json:"message_sender_id"`
	MessageRecipientId uuid.UUID `json:"message_recipient_id"`

	MessageSubject string `json:"message_subject"`
	MessageBody    string `json:"message_body"`

	MessageAttachments datatypes.JSON `json:"message_attachments,omitempty"`

	MessageReadAt    *time.Time `json:"message_read_at,omitempty"`
	MessageCreatedAt time.Time  `json:"message_created_at"`
}

func NewMessageResponse(mdl m.MessageModel) MessageResponse {
	return MessageResponse{
		MessageId:          mdl.MessageId,
		MessageSchoolId:    mdl.MessageSchoolId,
		MessageSenderId:    mdl.MessageSenderId,
		MessageRecipientId: mdl.MessageRecipientId,
		MessageSubject:     mdl.MessageSubject,
		MessageBody:        mdl.MessageBody,
		MessageAttachments: mdl.MessageAttachments,
		MessageReadAt:      mdl.MessageReadAt,
		MessageCreatedAt:   mdl.MessageCreatedAt,
	}
}
