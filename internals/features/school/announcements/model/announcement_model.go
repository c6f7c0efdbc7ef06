package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	AnnouncementId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:announcement_id" json:"announcement_id"`

	AnnouncementSchoolId uuid.UUID `gorm:"type:uuid;not null;index;column:announcement_school_id" json:"announcement_school_id"`

	AnnouncementTitle string `gorm:"not null;column:announcement_title" json:"announcement_title"`
	AnnouncementBody  string `gorm:"not null;column:announcement_body" json:"announcement_body"`

	// NULL = pengumuman untuk semua; terisi = khusus course tertentu
	AnnouncementCourseId *uuid.UUID `gorm:"type:uuid;column:announcement_course_id" json:"announcement_course_id,omitempty"`

	AnnouncementPublishedAt *time.Time `gorm:"column:announcement_published_at" json:"announcement_published_at,omitempty"`
	AnnouncementCreatedBy   *uuid.UUID `gorm:"type:uuid;column:announcement_created_by" json:"announcement_created_by,omitempty"`

	AnnouncementCreatedAt time.Time      `gorm:"column:announcement_created_at;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt *time.Time     `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at,omitempty"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;index" json:"announcement_deleted_at,omitempty"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
