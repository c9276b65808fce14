package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role names known to the system. Seeded at startup.
const (
	RoleAdmin          = "Admin"
	RoleProjectManager = "ProjectManager"
	RoleUser           = "User"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	FullName  string    `gorm:"not null;size:200" json:"full_name"`
	Password  string    `gorm:"not null" json:"-"`
	Roles     []Role    `gorm:"many2many:user_roles" json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"not null;size:50;uniqueIndex" json:"name"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// RoleNames returns the user's role set as plain strings.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
