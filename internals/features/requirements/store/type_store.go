package store

import (
	"strings"

	"requirements_backend/internals/features/requirements/model"
)

// ListTypes returns all requirement types name-ascending.
func (s *Store) ListTypes() ([]model.RequirementTypeModel, error) {
	var types []model.RequirementTypeModel
	if err := s.DB.Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// CreateType adds a new type. Names are unique; duplicates return
// ErrConflict.
func (s *Store) CreateType(t *model.RequirementTypeModel) error {
	if strings.TrimSpace(t.Name) == "" {
		return NewValidationError("name is required")
	}
	if err := s.DB.Create(t).Error; err != nil {
		return translateDuplicate(err)
	}
	return nil
}

func (s *Store) DeleteType(id int) error {
	res := s.DB.Delete(&model.RequirementTypeModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
