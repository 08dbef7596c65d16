package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	ProjectID string       `gorm:"not null;size:36;index" json:"project_id"`
	Name      string       `gorm:"not null;size:100" json:"name"`
	Type      CategoryType `gorm:"not null;size:20" json:"type"`
	Order     int          `gorm:"column:order;not null;default:0" json:"order"`
	Issues    []Issue      `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"issues"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// DefaultCategories is the workflow a new project starts with.
func DefaultCategories() []Category {
	return []Category{
		{Name: "To Do", Type: CategoryTodo, Order: 0},
		{Name: "In Progress", Type: CategoryInProgress, Order: 1},
		{Name: "Done", Type: CategoryDone, Order: 2},
	}
}
