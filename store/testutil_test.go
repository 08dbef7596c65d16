package store

import (
	"testing"
	"time"

	"tracker/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestStore creates an in-memory database and runs migrations.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to create test database")

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	s := New(db)
	require.NoError(t, s.Migrate(), "Failed to run migrations")
	return s
}

func createTestUser(t *testing.T, s *Store, name string) *models.User {
	t.Helper()
	user := models.User{
		Name:         name,
		Username:     name,
		PasswordHash: "x",
	}
	require.NoError(t, s.db.Create(&user).Error)
	return &user
}

func createTestProject(t *testing.T, s *Store, name string, userIDs ...string) *models.Project {
	t.Helper()
	err := s.CreateProject(CreateProjectInput{
		Name:       name,
		Image:      "img1",
		Color:      "blue",
		UserIDs:    userIDs,
		Categories: models.DefaultCategories(),
	})
	require.NoError(t, err)

	var project models.Project
	require.NoError(t, s.db.First(&project, "name = ?", name).Error)
	return &project
}

func createTestIssue(t *testing.T, s *Store, categoryID, name string, priority models.Priority, createdAt time.Time) *models.Issue {
	t.Helper()
	issue := models.Issue{
		CategoryID: categoryID,
		Name:       name,
		Priority:   priority,
		CreatedAt:  createdAt,
	}
	require.NoError(t, s.db.Create(&issue).Error)
	return &issue
}
