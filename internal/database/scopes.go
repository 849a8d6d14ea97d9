package database

import (
	"gorm.io/gorm"
)

// OwnedBy scopes a query to rows owned by the given user. A nil owner
// leaves the query unscoped (the open, unauthenticated deployment).
// The owner predicate always comes from the session, never from the
// request body.
func OwnedBy(owner *uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if owner == nil {
			return db
		}
		return db.Where("user_id = ?", *owner)
	}
}
