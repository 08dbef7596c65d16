package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// tempCommentPrefix marks comment ids minted client-side before the row is
// persisted. Temporary ids are never written to the store.
const tempCommentPrefix = "temp-"

type Comment struct {
	ID        string    `gorm:"primaryKey;size:41" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IssueID   string    `gorm:"not null;size:36;index" json:"issue_id"`
	UserID    string    `gorm:"not null;size:36" json:"-"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Message   string    `gorm:"not null;size:2000" json:"message"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" || IsTemporaryCommentID(c.ID) {
		c.ID = uuid.NewString()
	}
	return nil
}

// NewTemporaryCommentID mints an id for an optimistically rendered comment
// awaiting persistence confirmation.
func NewTemporaryCommentID() string {
	return tempCommentPrefix + uuid.NewString()
}

func IsTemporaryCommentID(id string) bool {
	return strings.HasPrefix(id, tempCommentPrefix)
}
