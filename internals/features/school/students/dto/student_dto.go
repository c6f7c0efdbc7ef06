package dto

import (
	"time"

	"github.com/google/uuid"

	m "presensiku_backend/internals/features/school/students/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateStudentRequest struct {
	StudentCode  string  `json:"student_code" validate:"required,max=40"`
	StudentName  string  `json:"student_name" validate:"required,max=160"`
	StudentEmail *string `json:"student_email" validate:"omitempty,email"`
	StudentPhone *string `json:"student_phone" validate:"omitempty,max=30"`

	StudentGuardianName  *string `json:"student_guardian_name" validate:"omitempty,max=160"`
	StudentGuardianPhone *string `json:"student_guardian_phone" validate:"omitempty,max=30"`
}

type UpdateStudentRequest struct {
	StudentName  *string `json:"student_name" validate:"omitempty,max=160"`
	StudentEmail *string `json:"student_email" validate:"omitempty,email"`
	StudentPhone *string `json:"student_phone" validate:"omitempty,max=30"`

	StudentGuardianName  *string `json:"student_guardian_name" validate:"omitempty,max=160"`
	StudentGuardianPhone *string `json:"student_guardian_phone" validate:"omitempty,max=30"`

	StudentIsActive *bool `json:"student_is_active"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type StudentResponse struct {
	StudentId       uuid.UUID `json:"student_id"`
	StudentSchoolId uuid.UUID `json:"student_school_id"`

	StudentCode  string  `json:"student_code"`
	StudentName  string  `json:"student_name"`
	StudentEmail *string `json:"student_email,omitempty"`
	StudentPhone *string `json:"student_phone,omitempty"`

	StudentGuardianName  *string `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `json:"student_guardian_phone,omitempty"`

	StudentIsActive  bool       `json:"student_is_active"`
	StudentCreatedAt time.Time  `json:"student_created_at"`
	StudentUpdatedAt *time.Time `json:"student_updated_at,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateStudentRequest) ToModel(schoolID uuid.UUID) m.StudentModel {
	return m.StudentModel{
		StudentSchoolId:      schoolID,
		StudentCode:          r.StudentCode,
		StudentName:          r.StudentName,
		StudentEmail:         r.StudentEmail,
		StudentPhone:         r.StudentPhone,
		StudentGuardianName:  r.StudentGuardianName,
		StudentGuardianPhone: r.StudentGuardianPhone,
		StudentIsActive:      true,
	}
}

// Updates map untuk partial update (hanya field yang dikirim).
func (r UpdateStudentRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.StudentName != nil {
		u["student_name"] = *r.StudentName
	}
	if r.StudentEmail != nil {
		u["student_email"] = *r.StudentEmail
	}
	if r.StudentPhone != nil {
		u["student_phone"] = *r.StudentPhone
	}
	if r.StudentGuardianName != nil {
		u["student_guardian_name"] = *r.StudentGuardianName
	}
	if r.StudentGuardianPhone != nil {
		u["student_guardian_phone"] = *r.StudentGuardianPhone
	}
	if r.StudentIsActive != nil {
		u["student_is_active"] = *r.StudentIsActive
	}
	return u
}

func NewStudentResponse(mdl m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentId:            mdl.StudentId,
		StudentSchoolId:      mdl.StudentSchoolId,
		StudentCode:          mdl.StudentCode,
		StudentName:          mdl.StudentName,
		StudentEmail:         mdl.StudentEmail,
		StudentPhone:         mdl.StudentPhone,
		StudentGuardianName:  mdl.StudentGuardianName,
		StudentGuardianPhone: mdl.StudentGuardianPhone,
		StudentIsActive:      mdl.StudentIsActive,
		StudentCreatedAt:     mdl.StudentCreatedAt,
		StudentUpdatedAt:     mdl.StudentUpdatedAt,
	}
}
