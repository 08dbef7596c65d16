package store

import (
	"errors"

	"tracker/models"

	"gorm.io/gorm"
)

// CreateIssue adds an issue to a category. Reporter and assignee start
// unset; the board assigns them later.
func (s *Store) CreateIssue(categoryID, name string, priority models.Priority) (*models.Issue, error) {
	issue := models.Issue{
		CategoryID: categoryID,
		Name:       name,
		Priority:   priority,
	}
	if err := s.db.Create(&issue).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

// GetIssue fetches an issue with its reporter, assignee and comments, nil
// when none matches.
func (s *Store) GetIssue(issueID string) (*models.Issue, error) {
	var issue models.Issue
	err := s.db.
		Preload("Reporter").
		Preload("Assignee").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments.User").
		First(&issue, "id = ?", issueID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	normalizeIssue(&issue)
	return &issue, nil
}
