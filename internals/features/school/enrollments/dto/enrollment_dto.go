package dto

import (
	"time"

	"github.com/google/uuid"

	m "presensiku_backend/internals/features/school/enrollments/model"
)

type CreateEnrollmentRequest struct {
	EnrollmentStudentId uuid.UUID `json:"enrollment_student_id" validate:"required,uuid4"`
	EnrollmentCourseId  uuid.UUID `json:"enrollment_course_id" validate:"required,uuid4"`

	// Default: hari ini
	EnrollmentJoinedAt *time.Time `json:"enrollment_joined_at"`
}

type LeaveEnrollmentRequest struct {
	// Default: hari ini
	EnrollmentLeftAt *time.Time `json:"enrollment_left_at"`
}

type EnrollmentResponse struct {
	EnrollmentId        uuid.UUID `json:"enrollment_id"`
	EnrollmentSchoolId  uuid.UUID `json:"enrollment_school_id"`
	EnrollmentStudentId uuid.UUID `json:"enrollment_student_id"`
	EnrollmentCourseId  uuid.UUID `json:"enrollment_course_id"`

	EnrollmentJoinedAt time.Time  `json:"enrollment_joined_at"`
	EnrollmentLeftAt   *time.Time `json:"enrollment_left_at,omitempty"`

	EnrollmentCreatedAt time.Time `json:"enrollment_created_at"`
}

func (r CreateEnrollmentRequest) ToModel(schoolID uuid.UUID, now time.Time) m.EnrollmentModel {
	joined := now
	if r.EnrollmentJoinedAt != nil {
		joined = *r.EnrollmentJoinedAt
	}
	return m.EnrollmentModel{
		EnrollmentSchoolId:  schoolID,
		EnrollmentStudentId: r.EnrollmentStudentId,
		EnrollmentCourseId:  r.EnrollmentCourseId,
		EnrollmentJoinedAt:  joined,
	}
}

func NewEnrollmentResponse(mdl m.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentId:        mdl.EnrollmentId,
		EnrollmentSchoolId:  mdl.EnrollmentSchoolId,
		EnrollmentStudentId: mdl.EnrollmentStudentId,
		EnrollmentCourseId:  mdl.EnrollmentCourseId,
		EnrollmentJoinedAt:  mdl.EnrollmentJoinedAt,
		EnrollmentLeftAt:    mdl.EnrollmentLeftAt,
		EnrollmentCreatedAt: mdl.EnrollmentCreatedAt,
	}
}
