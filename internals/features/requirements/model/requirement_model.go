package model

import "time"

type RequirementModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	Customer  string    `gorm:"column:customer;type:varchar(255);not null"`
	Contact   string    `gorm:"column:contact;type:varchar(255)"`
	Type      string    `gorm:"column:type;type:varchar(100);not null"` // free text, not a FK into requirement_types
	Details   string    `gorm:"column:details;type:text;not null"`
	FollowUp  string    `gorm:"column:follow_up;type:text"`
	Status    string    `gorm:"column:status;type:varchar(50);not null;default:'Pending'"`
	Images    URLList   `gorm:"column:images"`
	Videos    URLList   `gorm:"column:videos"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	Comments []CommentModel `gorm:"foreignKey:RequirementID;constraint:OnDelete:CASCADE"`
}

func (RequirementModel) TableName() string {
	return "requirements"
}
