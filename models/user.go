package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"not null;size:200" json:"name"`
	Image        string    `gorm:"size:500" json:"image"`
	Username     string    `gorm:"uniqueIndex;not null;size:100" json:"-"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Projects     []Project `gorm:"many2many:project_users" json:"projects,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
