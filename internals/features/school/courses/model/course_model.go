package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	CourseSchoolId uuid.UUID `gorm:"type:uuid;not null;index;column:course_school_id" json:"course_school_id"`

	CourseCode string  `gorm:"not null;uniqueIndex:uq_courses_school_code;column:course_code" json:"course_code"`
	CourseName string  `gorm:"not null;column:course_name" json:"course_name"`
	CourseDesc *string `gorm:"column:course_desc" json:"course_desc,omitempty"`

	CourseTeacherId *uuid.UUID `gorm:"type:uuid;column:course_teacher_id" json:"course_teacher_id,omitempty"`

	// Hari pertemuan terjadwal (0=Minggu..6=Sabtu), dipakai generator sesi
	CourseMeetingDays pq.Int64Array `gorm:"column:course_meeting_days;type:int[]" json:"course_meeting_days"`

	CourseStartDate *time.Time `gorm:"type:date;column:course_start_date" json:"course_start_date,omitempty"`
	CourseEndDate   *time.Time `gorm:"type:date;column:course_end_date" json:"course_end_date,omitempty"`

	CourseIsActive bool `gorm:"not null;default:true;column:course_is_active" json:"course_is_active"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt *time.Time     `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at,omitempty"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }
