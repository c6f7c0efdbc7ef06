package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseSessionModel struct {
	CourseSessionId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_session_id" json:"course_session_id"`

	CourseSessionSchoolId uuid.UUID `gorm:"type:uuid;not null;index;column:course_session_school_id" json:"course_session_school_id"`
	CourseSessionCourseId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_course_sessions_course_date;column:course_session_course_id" json:"course_session_course_id"`

	CourseSessionDate  time.Time `gorm:"type:date;not null;uniqueIndex:uq_course_sessions_course_date;column:course_session_date" json:"course_session_date"`
	CourseSessionTitle *string   `gorm:"column:course_session_title" json:"course_session_title,omitempty"`
	CourseSessionNote  *string   `gorm:"column:course_session_note" json:"course_session_note,omitempty"`

	// Teacher pengampu sesi ini (bisa beda dengan teacher course, mis. pengganti)
	CourseSessionTeacherId *uuid.UUID `gorm:"type:uuid;column:course_session_teacher_id" json:"course_session_teacher_id,omitempty"`

	CourseSessionStartsAt *time.Time `gorm:"column:course_session_starts_at" json:"course_session_starts_at,omitempty"`

	CourseSessionCreatedAt time.Time      `gorm:"column:course_session_created_at;autoCreateTime" json:"course_session_created_at"`
	CourseSessionUpdatedAt *time.Time     `gorm:"column:course_session_updated_at;autoUpdateTime" json:"course_session_updated_at,omitempty"`
	CourseSessionDeletedAt gorm.DeletedAt `gorm:"column:course_session_deleted_at;index" json:"course_session_deleted_at,omitempty"`
}

func (CourseSessionModel) TableName() string { return "course_sessions" }
