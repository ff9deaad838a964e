package model

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// URLList stores an ordered list of media URLs in a Postgres text[] column.
// The sqlite test database stores the same array literal as plain text.
type URLList []string

func (l URLList) Value() (driver.Value, error) {
	return pq.StringArray(l).Value()
}

func (l *URLList) Scan(src interface{}) error {
	return (*pq.StringArray)(l).Scan(src)
}

// GormDataType gives schema parsing a concrete column type; without it the
// slice would be classified as a has-many relation.
func (URLList) GormDataType() string {
	return "text"
}

func (URLList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// OrEmpty keeps JSON output as [] instead of null for rows scanned as NULL.
func (l URLList) OrEmpty() URLList {
	if l == nil {
		return URLList{}
	}
	return l
}
