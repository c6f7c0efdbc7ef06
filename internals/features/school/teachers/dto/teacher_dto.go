package dto

import (
	"time"

	"github.com/google/uuid"

	m "presensiku_backend/internals/features/school/teachers/model"
)

type CreateTeacherRequest struct {
	TeacherCode  string  `json:"teacher_code" validate:"required,max=40"`
	TeacherName  string  `json:"teacher_name" validate:"required,max=160"`
	TeacherEmail *string `json:"teacher_email" validate:"omitempty,email"`
	TeacherPhone *string `json:"teacher_phone" validate:"omitempty,max=30"`
}

type UpdateTeacherRequest struct {
	TeacherName     *string `json:"teacher_name" validate:"omitempty,max=160"`
	TeacherEmail    *string `json:"teacher_email" validate:"omitempty,email"`
	TeacherPhone    *string `json:"teacher_phone" validate:"omitempty,max=30"`
	TeacherIsActive *bool   `json:"teacher_is_active"`
}

type TeacherResponse struct {
	TeacherId       uuid.UUID `json:"teacher_id"`
	TeacherSchoolId uuid.UUID `json:"teacher_school_id"`

	TeacherCode  string  `json:"teacher_code"`
	TeacherName  string  `json:"teacher_name"`
	TeacherEmail *string `json:"teacher_email,omitempty"`
	TeacherPhone *string `json:"teacher_phone,omitempty"`

	TeacherIsActive  bool       `json:"teacher_is_active"`
	TeacherCreatedAt time.Time  `json:"teacher_created_at"`
	TeacherUpdatedAt *time.Time `json:"teacher_updated_at,omitempty"`
}

func (r CreateTeacherRequest) ToModel(schoolID uuid.UUID) m.TeacherModel {
	return m.TeacherModel{
		TeacherSchoolId: schoolID,
		TeacherCode:     r.TeacherCode,
		TeacherName:     r.TeacherName,
		TeacherEmail:    r.TeacherEmail,
		TeacherPhone:    r.TeacherPhone,
		TeacherIsActive: true,
	}
}

func (r UpdateTeacherRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.TeacherName != nil {
		u["teacher_name"] = *r.TeacherName
	}
	if r.TeacherEmail != nil {
		u["teacher_email"] = *r.TeacherEmail
	}
	if r.TeacherPhone != nil {
		u["teacher_phone"] = *r.TeacherPhone
	}
	if r.TeacherIsActive != nil {
		u["teacher_is_active"] = *r.TeacherIsActive
	}
	return u
}

func NewTeacherResponse(mdl m.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherId:        mdl.TeacherId,
		TeacherSchoolId:  mdl.TeacherSchoolId,
		TeacherCode:      mdl.TeacherCode,
		TeacherName:      mdl.TeacherName,
		TeacherEmail:     mdl.TeacherEmail,
		TeacherPhone:     mdl.TeacherPhone,
		TeacherIsActive:  mdl.TeacherIsActive,
		TeacherCreatedAt: mdl.TeacherCreatedAt,
		TeacherUpdatedAt: mdl.TeacherUpdatedAt,
	}
}
