package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "presensiku_backend/internals/features/school/courses/model"
)

type CreateCourseRequest struct {
	CourseCode string  `json:"course_code" validate:"required,max=40"`
	CourseName string  `json:"course_name" validate:"required,max=160"`
	CourseDesc *string `json:"course_desc" validate:"omitempty,max=2000"`

	CourseTeacherId *uuid.UUID `json:"course_teacher_id" validate:"omitempty,uuid4"`

	// 0=Minggu..6=Sabtu
	CourseMeetingDays []int64 `json:"course_meeting_days" validate:"omitempty,dive,min=0,max=6"`

	CourseStartDate *time.Time `json:"course_start_date"`
	CourseEndDate   *time.Time `json:"course_end_date"`
}

type UpdateCourseRequest struct {
	CourseName *string `json:"course_name" validate:"omitempty,max=160"`
	CourseDesc *string `json:"course_desc" validate:"omitempty,max=2000"`

	CourseTeacherId   *uuid.UUID `json:"course_teacher_id" validate:"omitempty,uuid4"`
	CourseMeetingDays []int64    `json:"course_meeting_days" validate:"omitempty,dive,min=0,max=6"`

	CourseStartDate *time.Time `json:"course_start_date"`
	CourseEndDate   *time.Time `json:"course_end_date"`
	CourseIsActive  *bool      `json:"course_is_active"`
}

type CourseResponse struct {
	CourseId       uuid.UUID `json:"course_id"`
	CourseSchoolId uuid.UUID `json:"course_school_id"`

	CourseCode string  `json:"course_code"`
	CourseName string  `json:"course_name"`
	CourseDesc *string `json:"course_desc,omitempty"`

	CourseTeacherId   *uuid.UUID `json:"course_teacher_id,omitempty"`
	CourseMeetingDays []int64    `json:"course_meeting_days"`

	CourseStartDate *time.Time `json:"course_start_date,omitempty"`
	CourseEndDate   *time.Time `json:"course_end_date,omitempty"`

	CourseIsActive  bool       `json:"course_is_active"`
	CourseCreatedAt time.Time  `json:"course_created_at"`
	CourseUpdatedAt *time.Time `json:"course_updated_at,omitempty"`
}

func (r CreateCourseRequest) ToModel(schoolID uuid.UUID) m.CourseModel {
	return m.CourseModel{
		CourseSchoolId:    schoolID,
		CourseCode:        r.CourseCode,
		CourseName:        r.CourseName,
		CourseDesc:        r.CourseDesc,
		CourseTeacherId:   r.CourseTeacherId,
		CourseMeetingDays: pq.Int64Array(r.CourseMeetingDays),
		CourseStartDate:   r.CourseStartDate,
		CourseEndDate:     r.CourseEndDate,
		CourseIsActive:    true,
	}
}

func (r UpdateCourseRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.CourseName != nil {
		u["course_name"] = *r.CourseName
	}
	if r.CourseDesc != nil {
		u["course_desc"] = *r.CourseDesc
	}
	if r.CourseTeacherId != nil {
		u["course_teacher_id"] = *r.CourseTeacherId
	}
	if r.CourseMeetingDays != nil {
		u["course_meeting_days"] = pq.Int64Array(r.CourseMeetingDays)
	}
	if r.CourseStartDate != nil {
		u["course_start_date"] = *r.CourseStartDate
	}
	if r.CourseEndDate != nil {
		u["course_end_date"] = *r.CourseEndDate
	}
	if r.CourseIsActive != nil {
		u["course_is_active"] = *r.CourseIsActive
	}
	return u
}

func NewCourseResponse(mdl m.CourseModel) CourseResponse {
	return CourseResponse{
		CourseId:          mdl.CourseId,
		CourseSchoolId:    mdl.CourseSchoolId,
		CourseCode:        mdl.CourseCode,
		CourseName:        mdl.CourseName,
		CourseDesc:        mdl.CourseDesc,
		CourseTeacherId:   mdl.CourseTeacherId,
		CourseMeetingDays: []int64(mdl.CourseMeetingDays),
		CourseStartDate:   mdl.CourseStartDate,
		CourseEndDate:     mdl.CourseEndDate,
		CourseIsActive:    mdl.CourseIsActive,
		CourseCreatedAt:   mdl.CourseCreatedAt,
		CourseUpdatedAt:   mdl.CourseUpdatedAt,
	}
}
