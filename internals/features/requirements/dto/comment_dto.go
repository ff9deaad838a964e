package dto

import (
	"time"

	"requirements_backend/internals/features/requirements/model"
)

type CommentDTO struct {
	ID            int           `json:"id"`
	RequirementID int           `json:"requirementId"`
	Text          string        `json:"text"`
	Images        model.URLList `json:"images"`
	Videos        model.URLList `json:"videos"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func ToCommentDTO(m model.CommentModel) CommentDTO {
	return CommentDTO{
		ID:            m.ID,
		RequirementID: m.RequirementID,
		Text:          m.Text,
		Images:        m.Images.OrEmpty(),
		Videos:        m.Videos.OrEmpty(),
		CreatedAt:     m.CreatedAt,
	}
}
