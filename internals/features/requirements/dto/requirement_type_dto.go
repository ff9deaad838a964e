package dto

import "requirements_backend/internals/features/requirements/model"

type RequirementTypeDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CreateTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

func ToRequirementTypeDTO(m model.RequirementTypeModel) RequirementTypeDTO {
	return RequirementTypeDTO{ID: m.ID, Name: m.Name}
}

func ToRequirementTypeDTOs(ms []model.RequirementTypeModel) []RequirementTypeDTO {
	out := make([]RequirementTypeDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToRequirementTypeDTO(m))
	}
	return out
}
