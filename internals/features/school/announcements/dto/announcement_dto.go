package dto

import (
	"time"

	"github.com/google/uuid"

	m "presensiku_backend/internals/features/school/announcements/model"
)

type CreateAnnouncementRequest struct {
	AnnouncementTitle    string     `json:"announcement_title" validate:"required,min=3,max=200"`
	AnnouncementBody     string     `json:"announcement_body" validate:"required,min=3"`
	AnnouncementCourseId *uuid.UUID `json:"announcement_course_id" validate:"omitempty,uuid4"`
	// true = langsung publish; false/absen = draft
	Publish bool `json:"publish"`
}

type UpdateAnnouncementRequest struct {
	AnnouncementTitle    *string    `json:"announcement_title" validate:"omitempty,min=3,max=200"`
	AnnouncementBody     *string    `json:"announcement_body" validate:"omitempty,min=3"`
	AnnouncementCourseId *uuid.UUID `json:"announcement_course_id" validate:"omitempty,uuid4"`
}

type AnnouncementResponse struct {
	AnnouncementId       uuid.UUID  `json:"announcement_id"`
	AnnouncementSchoolId uuid.UUID  `json:"announcement_school_id"`
	AnnouncementTitle    string     `json:"announcement_title"`
	AnnouncementBody     string     `json:"announcement_body"`
	AnnouncementCourseId *uuid.UUID `json:"announcement_course_id,omitempty"`

	AnnouncementPublishedAt *time.Time `json:"announcement_published_at,omitempty"`
	AnnouncementCreatedBy   *uuid.UUID `json:"announcement_created_by,omitempty"`
	AnnouncementCreatedAt   time.Time  `json:"announcement_created_at"`
	AnnouncementUpdatedAt   *time.Time `json:"announcement_updated_at,omitempty"`
}

func (r CreateAnnouncementRequest) ToModel(schoolID uuid.UUID, createdBy *uuid.UUID, now time.Time) m.AnnouncementModel {
	mdl := m.AnnouncementModel{
		AnnouncementSchoolId:  schoolID,
		AnnouncementTitle:     r.AnnouncementTitle,
		AnnouncementBody:      r.AnnouncementBody,
		AnnouncementCourseId:  r.AnnouncementCourseId,
		AnnouncementCreatedBy: createdBy,
	}
	if r.Publish {
		mdl.AnnouncementPublishedAt = &now
	}
	return mdl
}

func (r UpdateAnnouncementRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.AnnouncementTitle != nil {
		u["announcement_title"] = *r.AnnouncementTitle
	}
	if r.AnnouncementBody != nil {
		u["announcement_body"] = *r.AnnouncementBody
	}
	if r.AnnouncementCourseId != nil {
		u["announcement_course_id"] = *r.AnnouncementCourseId
	}
	return u
}

func NewAnnouncementResponse(mdl m.AnnouncementModel) AnnouncementResponse {
	return AnnouncementResponse{
		AnnouncementId:          mdl.AnnouncementId,
		AnnouncementSchoolId:    mdl.AnnouncementSchoolId,
		AnnouncementTitle:       mdl.AnnouncementTitle,
		AnnouncementBody:        mdl.AnnouncementBody,
		AnnouncementCourseId:    mdl.AnnouncementCourseId,
		AnnouncementPublishedAt: mdl.AnnouncementPublishedAt,
		AnnouncementCreatedBy:   mdl.AnnouncementCreatedBy,
		AnnouncementCreatedAt:   mdl.AnnouncementCreatedAt,
		AnnouncementUpdatedAt:   mdl.AnnouncementUpdatedAt,
	}
}
