package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Issue struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CategoryID  string    `gorm:"not null;size:36;index" json:"category_id"`
	Name        string    `gorm:"not null;size:200" json:"name"`
	Description string    `gorm:"size:2000" json:"description"`
	Priority    Priority  `gorm:"not null;size:20" json:"priority"`
	// PriorityRank mirrors Priority so the store can order issues in SQL.
	PriorityRank int       `gorm:"not null;default:0" json:"-"`
	ReporterID   *string   `gorm:"size:36;index" json:"-"`
	Reporter     *User     `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
	AssigneeID   *string   `gorm:"size:36;index" json:"-"`
	Assignee     *User     `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	Comments     []Comment `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE" json:"comments"`
}

func (i *Issue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (i *Issue) BeforeSave(tx *gorm.DB) error {
	i.PriorityRank = i.Priority.Rank()
	return nil
}
