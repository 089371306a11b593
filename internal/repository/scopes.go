package repository

import (
	"strings"

	"gorm.io/gorm"
)

func orderBy(order string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(order)
	}
}

func whereEq(column string, value any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

func excluding(id *uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if id == nil {
			return db
		}
		return db.Where("id <> ?", *id)
	}
}

// likeAny matches term case-insensitively as a substring of any of the columns.
func likeAny(term string, columns ...string) Scope {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		conds := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, c := range columns {
			conds[i] = "LOWER(COALESCE(" + c + ", '')) LIKE ?"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}
