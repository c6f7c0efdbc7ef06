package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MessageModel struct {
	MessageId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:message_id" json:"message_id"`

	MessageSchoolId    uuid.UUID `gorm:"type:uuid;not null;index;column:message_school_id" json:"message_school_id"`
	MessageSenderId    uuid.UUID `gorm:"type:uuid;not null;index;column:message_sender_id" json:"message_sender_id"`
	MessageRecipientId uuid.UUID `gorm:"type:uuid;not null;index;column:message_recipient_id" json:"message_recipient_id"`

	MessageSubject string `gorm:"not null;column:message_subject" json:"message_subject"`
	MessageBody    string `gorm:"not null;column:message_body" json:"message_body"`

	// Metadata lampiran (nama file, url, mime) — JSON fleksibel
	MessageAttachments datatypes.JSON `gorm:"column:message_attachments" json:"message_attachments,omitempty"`

	MessageReadAt *time.Time `gorm:"column:message_read_at" json:"message_read_at,omitempty"`

	MessageCreatedAt time.Time      `gorm:"column:message_created_at;autoCreateTime" json:"message_created_at"`
	MessageDeletedAt gorm.DeletedAt `gorm:"column:message_deleted_at;index" json:"message_deleted_at,omitempty"`
}

func (MessageModel) TableName() string { return "messages" }
