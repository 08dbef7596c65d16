package store

import (
	"tracker/models"

	"gorm.io/gorm"
)

// CreateComment persists a comment on an issue. Any temporary client id is
// replaced with a real one before the insert; the stored comment is returned
// so the caller can swap it in for the optimistic one.
func (s *Store) CreateComment(issueID, userID, message string) (*models.Comment, error) {
	comment := models.Comment{
		IssueID: issueID,
		UserID:  userID,
		Message: message,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetComments returns an issue's comments oldest first, with their authors.
func (s *Store) GetComments(issueID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.db.
		Preload("User").
		Where("issue_id = ?", issueID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment removes a comment by id. Like DeleteProject this is not
// idempotent: a missing row surfaces gorm.ErrRecordNotFound.
func (s *Store) DeleteComment(commentID string) error {
	result := s.db.Delete(&models.Comment{}, "id = ?", commentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
