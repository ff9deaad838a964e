package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"requirements_backend/internals/features/requirements/model"
)

// Store owns the requirement_types, requirements and comments tables.
// Every operation runs as a single transaction; there are no
// cross-operation transactions.
type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// ListRequirements returns all requirements newest-first, each with its
// comments oldest-first.
func (s *Store) ListRequirements() ([]model.RequirementModel, error) {
	var reqs []model.RequirementModel
	err := s.DB.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Order("created_at DESC, id DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// CreateRequirement inserts a new requirement. Status always starts as
// "Pending" regardless of input.
func (s *Store) CreateRequirement(req *model.RequirementModel) error {
	if strings.TrimSpace(req.Customer) == "" ||
		strings.TrimSpace(req.Type) == "" ||
		strings.TrimSpace(req.Details) == "" {
		return NewValidationError("customer, type and details are required")
	}
	req.Status = "Pending"
	req.Images = req.Images.OrEmpty()
	req.Videos = req.Videos.OrEmpty()
	return s.DB.Create(req).Error
}

// UpdateStatus changes only the status column.
func (s *Store) UpdateStatus(id int, status string) (model.RequirementModel, error) {
	if strings.TrimSpace(status) == "" {
		return model.RequirementModel{}, NewValidationError("status is required")
	}
	var out model.RequirementModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.RequirementModel{}).
			Where("id = ?", id).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.First(&out, "id = ?", id).Error
	})
	return out, err
}

// UpdateDetails replaces customer, contact, type and details. Status and
// media are left untouched.
func (s *Store) UpdateDetails(id int, customer, contact, reqType, details string) (model.RequirementModel, error) {
	if strings.TrimSpace(customer) == "" ||
		strings.TrimSpace(reqType) == "" ||
		strings.TrimSpace(details) == "" {
		return model.RequirementModel{}, NewValidationError("customer, type and details are required")
	}
	var out model.RequirementModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.RequirementModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"customer": customer,
				"contact":  contact,
				"type":     reqType,
				"details":  details,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.First(&out, "id = ?", id).Error
	})
	return out, err
}

// DeleteRequirement removes the requirement and all of its comments.
// Comments are deleted in the same transaction so the cascade holds even on
// stores where the FK constraint is not enforced. Uploaded media stays on
// the hosting service.
func (s *Store) DeleteRequirement(id int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.CommentModel{}, "requirement_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.RequirementModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// AddComment appends a comment to a requirement. A comment must carry text
// or at least one media URL.
func (s *Store) AddComment(comment *model.CommentModel) error {
	if strings.TrimSpace(comment.Text) == "" &&
		len(comment.Images) == 0 && len(comment.Videos) == 0 {
		return NewValidationError("comment needs text or at least one media file")
	}
	comment.Images = comment.Images.OrEmpty()
	comment.Videos = comment.Videos.OrEmpty()
	return s.DB.Create(comment).Error
}

func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}
