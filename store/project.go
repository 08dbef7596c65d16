package store

import (
	"errors"

	"tracker/models"

	"gorm.io/gorm"
)

// CreateProjectInput carries everything a new project is created with.
// Category and membership rows are written in the same transaction as the
// project row.
type CreateProjectInput struct {
	Name        string
	Description string
	Image       string
	Color       string
	OwnerID     string
	UserIDs     []string
	Categories  []models.Category
}

// GetProject fetches a project with its members and nested categories and
// issues. Members are ordered by name. Issues inside each category get a
// two-key order: by creation time with priority as tie-break when sortBy is
// date, the other way around when sortBy is priority. Returns nil without an
// error when no project matches.
func (s *Store) GetProject(projectID string, sortBy models.Sort) (*models.Project, error) {
	issueOrder := "created_at DESC, priority_rank DESC"
	if sortBy == models.SortByPriority {
		issueOrder = "priority_rank DESC, created_at DESC"
	}

	var project models.Project
	err := s.db.
		Preload("Users", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`)
		}).
		Preload("Categories.Issues", func(db *gorm.DB) *gorm.DB {
			return db.Order(issueOrder)
		}).
		Preload("Categories.Issues.Reporter").
		Preload("Categories.Issues.Assignee").
		First(&project, "id = ?", projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	for ci := range project.Categories {
		for ii := range project.Categories[ci].Issues {
			normalizeIssue(&project.Categories[ci].Issues[ii])
		}
	}

	return &project, nil
}

// GetProjectSummary returns the list-view projection of a single project, or
// nil when it does not exist.
func (s *Store) GetProjectSummary(projectID string) (*models.ProjectSummary, error) {
	var summary models.ProjectSummary
	err := s.db.Model(&models.Project{}).
		Select("id", "name", "description", "image", "created_at").
		Where("id = ?", projectID).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

// GetProjectsSummary returns summaries of every project the user is a member
// of, oldest first. A user with no projects gets an empty slice.
func (s *Store) GetProjectsSummary(userID string) ([]models.ProjectSummary, error) {
	summaries := []models.ProjectSummary{}
	err := s.db.Model(&models.Project{}).
		Select("projects.id", "projects.name", "projects.description", "projects.image", "projects.created_at").
		Joins("JOIN project_users ON project_users.project_id = projects.id").
		Where("project_users.user_id = ?", userID).
		Order("projects.created_at ASC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetProjectByName looks up a project by name among the given user's
// projects. Used by the create action's duplicate check; nil means no clash.
func (s *Store) GetProjectByName(name, userID string) (*models.Project, error) {
	var project models.Project
	err := s.db.
		Select("projects.*").
		Joins("JOIN project_users ON project_users.project_id = projects.id").
		Where("project_users.user_id = ? AND projects.name = ?", userID, name).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// CreateProject inserts the project row, its initial categories and the
// membership links in one transaction. A reader can never observe the project
// with only part of its categories or members.
func (s *Store) CreateProject(input CreateProjectInput) error {
	project := models.Project{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Color:       input.Color,
		OwnerID:     input.OwnerID,
		Categories:  input.Categories,
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Users").Create(&project).Error; err != nil {
			return err
		}
		if len(input.UserIDs) == 0 {
			return nil
		}
		var members []models.User
		if err := tx.Where("id IN ?", input.UserIDs).Find(&members).Error; err != nil {
			return err
		}
		if len(members) != len(input.UserIDs) {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&project).Association("Users").Append(&members)
	})
}

// DeleteProject removes the project row. Child rows go with it through the
// store's cascade rules. Deleting an id that does not exist returns
// gorm.ErrRecordNotFound; this operation is not idempotent.
func (s *Store) DeleteProject(projectID string) error {
	result := s.db.Delete(&models.Project{}, "id = ?", projectID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
