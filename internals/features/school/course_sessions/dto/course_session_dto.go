package dto

import (
	"time"

	"github.com/google/uuid"

	m "presensiku_backend/internals/features/school/course_sessions/model"
)

type CreateCourseSessionRequest struct {
	CourseSessionCourseId uuid.UUID `json:"course_session_course_id" validate:"required,uuid4"`

	CourseSessionDate  time.Time `json:"course_session_date" validate:"required"`
	CourseSessionTitle *string   `json:"course_session_title" validate:"omitempty,max=160"`
	CourseSessionNote  *string   `json:"course_session_note" validate:"omitempty,max=2000"`

	CourseSessionTeacherId *uuid.UUID `json:"course_session_teacher_id" validate:"omitempty,uuid4"`
	CourseSessionStartsAt  *time.Time `json:"course_session_starts_at"`
}

// GenerateCourseSessionsRequest: buat sesi massal dari course_meeting_days
// dalam rentang tanggal (inklusif).
type GenerateCourseSessionsRequest struct {
	CourseSessionCourseId uuid.UUID `json:"course_session_course_id" validate:"required,uuid4"`

	DateFrom time.Time `json:"date_from" validate:"required"`
	DateTo   time.Time `json:"date_to" validate:"required"`
}

type UpdateCourseSessionRequest struct {
	CourseSessionTitle     *string    `json:"course_session_title" validate:"omitempty,max=160"`
	CourseSessionNote      *string    `json:"course_session_note" validate:"omitempty,max=2000"`
	CourseSessionTeacherId *uuid.UUID `json:"course_session_teacher_id" validate:"omitempty,uuid4"`
	CourseSessionStartsAt  *time.Time `json:"course_session_starts_at"`
}

type CourseSessionResponse struct {
	CourseSessionId       uuid.UUID `json:"course_session_id"`
	CourseSessionSchoolId uuid.UUID `json:"course_session_school_id"`
	CourseSessionCourseId uuid.UUID `json:"course_session_course_id"`

	CourseSessionDate  time.Time `json:"course_session_date"`
	CourseSessionTitle *string   `json:"course_session_title,omitempty"`
	CourseSessionNote  *string   `json:"course_session_note,omitempty"`

	CourseSessionTeacherId *uuid.UUID `json:"course_session_teacher_id,omitempty"`
	CourseSessionStartsAt  *time.Time `json:"course_session_starts_at,omitempty"`

	CourseSessionCreatedAt time.Time  `json:"course_session_created_at"`
	CourseSessionUpdatedAt *time.Time `json:"course_session_updated_at,omitempty"`
}

func (r CreateCourseSessionRequest) ToModel(schoolID uuid.UUID) m.CourseSessionModel {
	return m.CourseSessionModel{
		CourseSessionSchoolId:  schoolID,
		CourseSessionCourseId:  r.CourseSessionCourseId,
		CourseSessionDate:      r.CourseSessionDate,
		CourseSessionTitle:     r.CourseSessionTitle,
		CourseSessionNote:      r.CourseSessionNote,
		CourseSessionTeacherId: r.CourseSessionTeacherId,
		CourseSessionStartsAt:  r.CourseSessionStartsAt,
	}
}

func (r UpdateCourseSessionRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.CourseSessionTitle != nil {
		u["course_session_title"] = *r.CourseSessionTitle
	}
	if r.CourseSessionNote != nil {
		u["course_session_note"] = *r.CourseSessionNote
	}
	if r.CourseSessionTeacherId != nil {
		u["course_session_teacher_id"] = *r.CourseSessionTeacherId
	}
	if r.CourseSessionStartsAt != nil {
		u["course_session_starts_at"] = *r.CourseSessionStartsAt
	}
	return u
}

func NewCourseSessionResponse(mdl m.CourseSessionModel) CourseSessionResponse {
	return CourseSessionResponse{
		CourseSessionId:        mdl.CourseSessionId,
		CourseSessionSchoolId:  mdl.CourseSessionSchoolId,
		CourseSessionCourseId:  mdl.CourseSessionCourseId,
		CourseSessionDate:      mdl.CourseSessionDate,
		CourseSessionTitle:     mdl.CourseSessionTitle,
		CourseSessionNote:      mdl.CourseSessionNote,
		CourseSessionTeacherId: mdl.CourseSessionTeacherId,
		CourseSessionStartsAt:  mdl.CourseSessionStartsAt,
		CourseSessionCreatedAt: mdl.CourseSessionCreatedAt,
		CourseSessionUpdatedAt: mdl.CourseSessionUpdatedAt,
	}
}
