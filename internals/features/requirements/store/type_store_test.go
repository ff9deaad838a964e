package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"requirements_backend/internals/features/requirements/model"
)

func TestCreateTypeValidation(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateType(&model.RequirementTypeModel{Name: "  "})
	assert.True(t, IsValidationError(err))
}

func TestCreateTypeDuplicateName(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateType(&model.RequirementTypeModel{Name: "Bug"}))

	err := s.CreateType(&model.RequirementTypeModel{Name: "Bug"})
	assert.ErrorIs(t, err, ErrConflict)

	types, err := s.ListTypes()
	require.NoError(t, err)
	assert.Len(t, types, 1)
}

func TestListTypesNameAscending(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"Support", "Bug", "Feature"} {
		require.NoError(t, s.CreateType(&model.RequirementTypeModel{Name: name}))
	}

	types, err := s.ListTypes()
	require.NoError(t, err)
	require.Len(t, types, 3)
	assert.Equal(t, "Bug", types[0].Name)
	assert.Equal(t, "Feature", types[1].Name)
	assert.Equal(t, "Support", types[2].Name)
}

func TestDeleteType(t *testing.T) {
	s := newTestStore(t)

	rec := model.RequirementTypeModel{Name: "Bug"}
	require.NoError(t, s.CreateType(&rec))

	require.NoError(t, s.DeleteType(rec.ID))
	assert.ErrorIs(t, s.DeleteType(rec.ID), ErrNotFound)
}
