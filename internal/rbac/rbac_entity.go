package rbac

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is one element of a user's role set. The unique index gives
// assignment set semantics: assigning a role twice leaves one row.
type UserRole struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_role"`
	Role      string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_user_role"`
	CreatedAt time.Time
}

func (UserRole) TableName() string {
	return "user_roles"
}
