package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`

	TeacherSchoolId uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_school_id" json:"teacher_school_id"`

	TeacherCode  string  `gorm:"not null;uniqueIndex:uq_teachers_school_code;column:teacher_code" json:"teacher_code"`
	TeacherName  string  `gorm:"not null;column:teacher_name" json:"teacher_name"`
	TeacherEmail *string `gorm:"column:teacher_email" json:"teacher_email,omitempty"`
	TeacherPhone *string `gorm:"column:teacher_phone" json:"teacher_phone,omitempty"`

	TeacherIsActive bool `gorm:"not null;default:true;column:teacher_is_active" json:"teacher_is_active"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt *time.Time     `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at,omitempty"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
