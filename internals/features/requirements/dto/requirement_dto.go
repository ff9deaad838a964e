package dto

import (
	"time"

	"requirements_backend/internals/features/requirements/model"
)

// ============================
// Response DTO
// ============================
type RequirementDTO struct {
	ID        int           `json:"id"`
	Customer  string        `json:"customer"`
	Contact   string        `json:"contact"`
	Type      string        `json:"type"`
	Details   string        `json:"details"`
	FollowUp  string        `json:"followUp"`
	Status    string        `json:"status"`
	Images    model.URLList `json:"images"`
	Videos    model.URLList `json:"videos"`
	CreatedAt time.Time     `json:"createdAt"`
	Comments  []CommentDTO  `json:"comments"`
}

// ============================
// Create Request DTO (multipart fields)
// ============================
type CreateRequirementRequest struct {
	Customer string `json:"customer" validate:"required"`
	Contact  string `json:"contact"`
	Type     string `json:"type" validate:"required"`
	Details  string `json:"details" validate:"required"`
	FollowUp string `json:"followUp"`
}

// ============================
// Update Request DTOs
// ============================
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdateDetailsRequest struct {
	Customer string `json:"customer" validate:"required"`
	Contact  string `json:"contact"`
	Type     string `json:"type" validate:"required"`
	Details  string `json:"details" validate:"required"`
}

// ============================
// Converter
// ============================
func ToRequirementDTO(m model.RequirementModel) RequirementDTO {
	comments := make([]CommentDTO, 0, len(m.Comments))
	for _, c := range m.Comments {
		comments = append(comments, ToCommentDTO(c))
	}
	return RequirementDTO{
		ID:        m.ID,
		Customer:  m.Customer,
		Contact:   m.Contact,
		Type:      m.Type,
		Details:   m.Details,
		FollowUp:  m.FollowUp,
		Status:    m.Status,
		Images:    m.Images.OrEmpty(),
		Videos:    m.Videos.OrEmpty(),
		CreatedAt: m.CreatedAt,
		Comments:  comments,
	}
}

func ToRequirementDTOs(ms []model.RequirementModel) []RequirementDTO {
	out := make([]RequirementDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToRequirementDTO(m))
	}
	return out
}

func ToRequirementModel(req CreateRequirementRequest, images, videos []string) model.RequirementModel {
	return model.RequirementModel{
		Customer: req.Customer,
		Contact:  req.Contact,
		Type:     req.Type,
		Details:  req.Details,
		FollowUp: req.FollowUp,
		Status:   "Pending",
		Images:   model.URLList(images).OrEmpty(),
		Videos:   model.URLList(videos).OrEmpty(),
	}
}
