package dto

import (
	"time"

	"github.com/google/uuid"

	m "presensiku_backend/internals/features/school/attendance_records/model"
)

type CreateAttendanceRecordRequest struct {
	AttendanceRecordStudentId uuid.UUID `json:"attendance_record_student_id" validate:"required,uuid4"`
	AttendanceRecordSessionId uuid.UUID `json:"attendance_record_session_id" validate:"required,uuid4"`

	AttendanceRecordStatus      string   `json:"attendance_record_status" validate:"required,oneof=on_time late absent excused not_enrolled"`
	AttendanceRecordLateMinutes *float64 `json:"attendance_record_late_minutes" validate:"omitempty,gte=0"`
	AttendanceRecordNote        *string  `json:"attendance_record_note" validate:"omitempty,max=500"`
}

// BulkMarkAttendanceRequest: tandai satu sesi sekaligus (satu entry per student).
type BulkMarkAttendanceRequest struct {
	AttendanceRecordSessionId uuid.UUID                 `json:"attendance_record_session_id" validate:"required,uuid4"`
	Entries                   []BulkMarkAttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

type BulkMarkAttendanceEntry struct {
	AttendanceRecordStudentId   uuid.UUID `json:"attendance_record_student_id" validate:"required,uuid4"`
	AttendanceRecordStatus      string    `json:"attendance_record_status" validate:"required,oneof=on_time late absent excused not_enrolled"`
	AttendanceRecordLateMinutes *float64  `json:"attendance_record_late_minutes" validate:"omitempty,gte=0"`
	AttendanceRecordNote        *string   `json:"attendance_record_note" validate:"omitempty,max=500"`
}

type UpdateAttendanceRecordRequest struct {
	AttendanceRecordStatus      *string  `json:"attendance_record_status" validate:"omitempty,oneof=on_time late absent excused not_enrolled"`
	AttendanceRecordLateMinutes *float64 `json:"attendance_record_late_minutes" validate:"omitempty,gte=0"`
	AttendanceRecordNote        *string  `json:"attendance_record_note" validate:"omitempty,max=500"`
}

type AttendanceRecordResponse struct {
	AttendanceRecordId        uuid.UUID `json:"attendance_record_id"`
	AttendanceRecordSchoolId  uuid.UUID `json:"attendance_record_school_id"`
	AttendanceRecordStudentId uuid.UUID `json:"attendance_record_student_id"`
	AttendanceRecordSessionId uuid.UUID `json:"attendance_record_session_id"`

	AttendanceRecordStatus      string   `json:"attendance_record_status"`
	AttendanceRecordLateMinutes *float64 `json:"attendance_record_late_minutes,omitempty"`
	AttendanceRecordNote        *string  `json:"attendance_record_note,omitempty"`

	AttendanceRecordMarkedBy  *uuid.UUID `json:"attendance_record_marked_by,omitempty"`
	AttendanceRecordCreatedAt time.Time  `json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt *time.Time `json:"attendance_record_updated_at,omitempty"`
}

func (r CreateAttendanceRecordRequest) ToModel(schoolID uuid.UUID, markedBy *uuid.UUID) m.AttendanceRecordModel {
	late := r.AttendanceRecordLateMinutes
	if r.AttendanceRecordStatus != "late" {
		late = nil // menit telat hanya bermakna saat status late
	}
	return m.AttendanceRecordModel{
		AttendanceRecordSchoolId:    schoolID,
		AttendanceRecordStudentId:   r.AttendanceRecordStudentId,
		AttendanceRecordSessionId:   r.AttendanceRecordSessionId,
		AttendanceRecordStatus:      r.AttendanceRecordStatus,
		AttendanceRecordLateMinutes: late,
		AttendanceRecordNote:        r.AttendanceRecordNote,
		AttendanceRecordMarkedBy:    markedBy,
	}
}

func (r UpdateAttendanceRecordRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.AttendanceRecordStatus != nil {
		u["attendance_record_status"] = *r.AttendanceRecordStatus
		if *r.AttendanceRecordStatus != "late" {
			u["attendance_record_late_minutes"] = nil
		}
	}
	if r.AttendanceRecordLateMinutes != nil {
		u["attendance_record_late_minutes"] = *r.AttendanceRecordLateMinutes
	}
	if r.AttendanceRecordNote != nil {
		u["attendance_record_note"] = *r.AttendanceRecordNote
	}
	return u
}

func NewAttendanceRecordResponse(mdl m.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceRecordId:          mdl.AttendanceRecordId,
		AttendanceRecordSchoolId:    mdl.AttendanceRecordSchoolId,
		AttendanceRecordStudentId:   mdl.AttendanceRecordStudentId,
		AttendanceRecordSessionId:   mdl.AttendanceRecordSessionId,
		AttendanceRecordStatus:      mdl.AttendanceRecordStatus,
		AttendanceRecordLateMinutes: mdl.AttendanceRecordLateMinutes,
		AttendanceRecordNote:        mdl.AttendanceRecordNote,
		AttendanceRecordMarkedBy:    mdl.AttendanceRecordMarkedBy,
		AttendanceRecordCreatedAt:   mdl.AttendanceRecordCreatedAt,
		AttendanceRecordUpdatedAt:   mdl.AttendanceRecordUpdatedAt,
	}
}
