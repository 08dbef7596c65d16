package store

import (
	"log"

	"tracker/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store wraps the database handle. It is constructed once in main and
// injected into every handler, so tests can substitute an in-memory database.
type Store struct {
	db *gorm.DB
}

func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.Migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// New wraps an already opened database handle. Used by tests.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Category{},
		&models.Issue{},
		&models.Comment{},
	)
}

// SeedDemoUsers creates the demo accounts on first start. All of them share
// the default password until it is changed.
func (s *Store) SeedDemoUsers() error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("demo"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	demo := []models.User{
		{Name: "Ada Wong", Username: "ada", Image: "/static/images/avatars/avatar-1.png"},
		{Name: "Bill Gates", Username: "bill", Image: "/static/images/avatars/avatar-2.png"},
		{Name: "Clara Oswald", Username: "clara", Image: "/static/images/avatars/avatar-3.png"},
	}
	for i := range demo {
		demo[i].PasswordHash = string(hashedPassword)
	}

	if err := s.db.Create(&demo).Error; err != nil {
		return err
	}

	log.Println("Demo users created (password: demo)")
	return nil
}
