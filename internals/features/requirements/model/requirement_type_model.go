package model

type RequirementTypeModel struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
}

func (RequirementTypeModel) TableName() string {
	return "requirement_types"
}
