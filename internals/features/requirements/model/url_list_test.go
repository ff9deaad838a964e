package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func TestURLListParsesAsColumn(t *testing.T) {
	s, err := schema.Parse(&RequirementModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, name := range []string{"Images", "Videos"} {
		field := s.LookUpField(name)
		require.NotNil(t, field, "%s must parse as a plain column", name)
		assert.Equal(t, schema.DataType("text"), field.DataType)
	}

	// Comments stays the only relation on the model.
	assert.Len(t, s.Relationships.Relations, 1)
	assert.Contains(t, s.Relationships.Relations, "Comments")
}

func TestURLListRoundTrip(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:url_list_round_trip?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&RequirementTypeModel{},
		&RequirementModel{},
		&CommentModel{},
	))

	rec := RequirementModel{
		Customer: "Acme",
		Type:     "Bug",
		Details:  "x",
		Status:   "Pending",
		Images:   URLList{"https://cdn.example/a.webp", "https://cdn.example/b.webp"},
		Videos:   URLList{},
	}
	require.NoError(t, db.Create(&rec).Error)

	var got RequirementModel
	require.NoError(t, db.First(&got, "id = ?", rec.ID).Error)
	assert.Equal(t, rec.Images, got.Images)
	assert.Empty(t, got.Videos)
}
