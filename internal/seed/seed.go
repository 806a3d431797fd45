// Package seed creates demo data for the application database. It is meant
// for development and testing only.
package seed

import (
	"fmt"
	"log"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// DefaultPassword is the password assigned to every seeded account.
const DefaultPassword = "password123"

// Seeder populates the database with generated users, profiles and posts.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded data, children before parents.
func (s *Seeder) ClearAll() error {
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Like{},
		&models.Post{},
		&models.Experience{},
		&models.Education{},
		&models.Profile{},
		&models.User{},
	} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds numUsers accounts, a profile for most of them, and numPosts
// posts with likes and comments spread across the accounts.
func (s *Seeder) Run(numUsers, numPosts int) error {
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))

	profiles := 0
	for i, user := range users {
		// Leave a few accounts without a profile; the API treats that
		// as a distinct state worth exercising.
		if i%7 == 6 {
			continue
		}
		if _, err := s.factory.CreateProfile(user); err != nil {
			return fmt.Errorf("seed profile for user %d: %w", user.ID, err)
		}
		profiles++
	}
	log.Printf("seeded %d profiles", profiles)

	for i := 0; i < numPosts; i++ {
		author := users[i%len(users)]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("seed post: %w", err)
		}
		if err := s.factory.AddEngagement(post, users); err != nil {
			return fmt.Errorf("seed engagement for post %d: %w", post.ID, err)
		}
	}
	log.Printf("seeded %d posts", numPosts)

	return nil
}
