package store

import (
	"errors"

	"tracker/models"

	"gorm.io/gorm"
)

// GetUser fetches a single user, nil when none matches.
func (s *Store) GetUser(userID string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername is used by the login flow.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUsers returns every user, ordered by name.
func (s *Store) GetUsers() ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Order("name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
