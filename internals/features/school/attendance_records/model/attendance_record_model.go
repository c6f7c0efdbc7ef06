package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRecordModel struct {
	AttendanceRecordId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordSchoolId  uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_record_school_id" json:"attendance_record_school_id"`
	AttendanceRecordStudentId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_records_student_session;column:attendance_record_student_id" json:"attendance_record_student_id"`
	AttendanceRecordSessionId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_records_student_session;column:attendance_record_session_id" json:"attendance_record_session_id"`

	// on_time | late | absent | excused | not_enrolled (lihat constants)
	AttendanceRecordStatus string `gorm:"not null;column:attendance_record_status" json:"attendance_record_status"`

	// Hanya bermakna saat status = late; NULL = telat tanpa data menit
	AttendanceRecordLateMinutes *float64 `gorm:"type:numeric(6,2);column:attendance_record_late_minutes" json:"attendance_record_late_minutes,omitempty"`

	AttendanceRecordNote *string `gorm:"column:attendance_record_note" json:"attendance_record_note,omitempty"`

	AttendanceRecordMarkedBy *uuid.UUID `gorm:"type:uuid;column:attendance_record_marked_by" json:"attendance_record_marked_by,omitempty"`

	AttendanceRecordCreatedAt time.Time      `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt *time.Time     `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at,omitempty"`
	AttendanceRecordDeletedAt gorm.DeletedAt `gorm:"column:attendance_record_deleted_at;index" json:"attendance_record_deleted_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
