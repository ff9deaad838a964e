package model

import "time"

type CommentModel struct {
	ID            int       `gorm:"column:id;primaryKey;autoIncrement"`
	RequirementID int       `gorm:"column:requirement_id;not null;index"`
	Text          string    `gorm:"column:text;type:text"`
	Images        URLList   `gorm:"column:images"`
	Videos        URLList   `gorm:"column:videos"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CommentModel) TableName() string {
	return "comments"
}
