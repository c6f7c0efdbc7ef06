package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentModel struct {
	EnrollmentId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollment_id" json:"enrollment_id"`

	EnrollmentSchoolId  uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_school_id" json:"enrollment_school_id"`
	EnrollmentStudentId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_course;column:enrollment_student_id" json:"enrollment_student_id"`
	EnrollmentCourseId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_course;column:enrollment_course_id" json:"enrollment_course_id"`

	// Jendela keanggotaan: left_at NULL = masih terdaftar
	EnrollmentJoinedAt time.Time  `gorm:"type:date;not null;column:enrollment_joined_at" json:"enrollment_joined_at"`
	EnrollmentLeftAt   *time.Time `gorm:"type:date;column:enrollment_left_at" json:"enrollment_left_at,omitempty"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt *time.Time     `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at,omitempty"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
