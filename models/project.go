package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Name        string     `gorm:"not null;size:100;index" json:"name"`
	Description string     `gorm:"size:500" json:"description"`
	Image       string     `gorm:"size:500" json:"image"`
	Color       string     `gorm:"size:30" json:"color"`
	OwnerID     string     `gorm:"size:36;index" json:"owner_id"`
	Categories  []Category `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
	Users       []User     `gorm:"many2many:project_users" json:"users,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProjectSummary is the reduced read-only view used by list pages. It is
// always derived from a Project row, never stored.
type ProjectSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}
