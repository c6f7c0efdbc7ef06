package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentSchoolId uuid.UUID `gorm:"type:uuid;not null;index;column:student_school_id" json:"student_school_id"`

	StudentCode  string  `gorm:"not null;uniqueIndex:uq_students_school_code;column:student_code" json:"student_code"`
	StudentName  string  `gorm:"not null;column:student_name" json:"student_name"`
	StudentEmail *string `gorm:"column:student_email" json:"student_email,omitempty"`
	StudentPhone *string `gorm:"column:student_phone" json:"student_phone,omitempty"`

	StudentGuardianName  *string `gorm:"column:student_guardian_name" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"column:student_guardian_phone" json:"student_guardian_phone,omitempty"`

	StudentIsActive bool `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
