package store

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"requirements_backend/internals/features/requirements/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.RequirementTypeModel{},
		&model.RequirementModel{},
		&model.CommentModel{},
	))
	return New(db)
}

func newRequirement(customer string) model.RequirementModel {
	return model.RequirementModel{
		Customer: customer,
		Type:     "Bug",
		Details:  "something broke",
	}
}

func TestCreateRequirementValidation(t *testing.T) {
	s := newTestStore(t)

	for _, rec := range []model.RequirementModel{
		{Type: "Bug", Details: "x"},
		{Customer: "Acme", Details: "x"},
		{Customer: "Acme", Type: "Bug"},
	} {
		err := s.CreateRequirement(&rec)
		assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
	}

	var count int64
	require.NoError(t, s.DB.Model(&model.RequirementModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "no row may be persisted on validation failure")
}

func TestCreateRequirementDefaults(t *testing.T) {
	s := newTestStore(t)

	rec := newRequirement("Acme")
	rec.Status = "Resolved" // input status must be ignored
	require.NoError(t, s.CreateRequirement(&rec))

	assert.NotZero(t, rec.ID)
	assert.Equal(t, "Pending", rec.Status)
	assert.NotZero(t, rec.CreatedAt)
	assert.Empty(t, rec.Images)
	assert.Empty(t, rec.Videos)
	assert.NotNil(t, rec.Images)
	assert.NotNil(t, rec.Videos)
}

func TestListRequirementsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	first := newRequirement("first")
	second := newRequirement("second")
	third := newRequirement("third")
	require.NoError(t, s.CreateRequirement(&first))
	require.NoError(t, s.CreateRequirement(&second))
	require.NoError(t, s.CreateRequirement(&third))

	reqs, err := s.ListRequirements()
	require.NoError(t, err)
	require.Len(t, reqs, 3)
	assert.Equal(t, "third", reqs[0].Customer)
	assert.Equal(t, "second", reqs[1].Customer)
	assert.Equal(t, "first", reqs[2].Customer)
}

func TestListRequirementsCommentsOldestFirst(t *testing.T) {
	s := newTestStore(t)

	rec := newRequirement("Acme")
	require.NoError(t, s.CreateRequirement(&rec))

	for _, text := range []string{"one", "two", "three"} {
		require.NoError(t, s.AddComment(&model.CommentModel{
			RequirementID: rec.ID,
			Text:          text,
		}))
	}

	reqs, err := s.ListRequirements()
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	require.Len(t, reqs[0].Comments, 3)
	assert.Equal(t, "one", reqs[0].Comments[0].Text)
	assert.Equal(t, "two", reqs[0].Comments[1].Text)
	assert.Equal(t, "three", reqs[0].Comments[2].Text)
}

func TestUpdateStatus(t *testing.T) {
	s := newTestStore(t)

	rec := newRequirement("Acme")
	rec.Images = model.URLList{"https://cdn.example/a.webp"}
	require.NoError(t, s.CreateRequirement(&rec))

	updated, err := s.UpdateStatus(rec.ID, "Resolved")
	require.NoError(t, err)
	assert.Equal(t, "Resolved", updated.Status)
	assert.Equal(t, rec.Customer, updated.Customer)
	assert.Equal(t, rec.Details, updated.Details)
	assert.Equal(t, model.URLList{"https://cdn.example/a.webp"}, updated.Images)
}

func TestUpdateStatusNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateStatus(999, "Resolved")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateStatus(1, "  ")
	assert.True(t, IsValidationError(err))
}

func TestUpdateDetails(t *testing.T) {
	s := newTestStore(t)

	rec := newRequirement("Acme")
	rec.Videos = model.URLList{"https://cdn.example/v.mp4"}
	require.NoError(t, s.CreateRequirement(&rec))
	_, err := s.UpdateStatus(rec.ID, "Resolved")
	require.NoError(t, err)

	updated, err := s.UpdateDetails(rec.ID, "Globex", "", "Feature", "new details")
	require.NoError(t, err)
	assert.Equal(t, "Globex", updated.Customer)
	assert.Equal(t, "", updated.Contact)
	assert.Equal(t, "Feature", updated.Type)
	assert.Equal(t, "new details", updated.Details)
	// status and media untouched
	assert.Equal(t, "Resolved", updated.Status)
	assert.Equal(t, model.URLList{"https://cdn.example/v.mp4"}, updated.Videos)
}

func TestUpdateDetailsErrors(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateDetails(999, "Acme", "", "Bug", "x")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateDetails(1, "", "", "Bug", "x")
	assert.True(t, IsValidationError(err))
}

func TestDeleteRequirementCascades(t *testing.T) {
	s := newTestStore(t)

	rec := newRequirement("Acme")
	require.NoError(t, s.CreateRequirement(&rec))
	require.NoError(t, s.AddComment(&model.CommentModel{RequirementID: rec.ID, Text: "a"}))
	require.NoError(t, s.AddComment(&model.CommentModel{RequirementID: rec.ID, Text: "b"}))

	require.NoError(t, s.DeleteRequirement(rec.ID))

	var comments []model.CommentModel
	require.NoError(t, s.DB.Find(&comments, "requirement_id = ?", rec.ID).Error)
	assert.Empty(t, comments)

	reqs, err := s.ListRequirements()
	require.NoError(t, err)
	assert.Empty(t, reqs)

	assert.ErrorIs(t, s.DeleteRequirement(rec.ID), ErrNotFound)
}

func TestAddCommentValidation(t *testing.T) {
	s := newTestStore(t)

	rec := newRequirement("Acme")
	require.NoError(t, s.CreateRequirement(&rec))

	err := s.AddComment(&model.CommentModel{RequirementID: rec.ID})
	assert.True(t, IsValidationError(err))

	// empty text with one media URL is fine
	withMedia := model.CommentModel{
		RequirementID: rec.ID,
		Images:        model.URLList{"https://cdn.example/a.webp"},
	}
	require.NoError(t, s.AddComment(&withMedia))
	assert.NotZero(t, withMedia.ID)
	assert.NotNil(t, withMedia.Videos)
}
