package repository

import (
	"context"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Save(ctx context.Context, profile *models.Profile) error
	AddExperience(ctx context.Context, exp *models.Experience) error
	GetExperience(ctx context.Context, profileID, expID uint) (*models.Experience, error)
	DeleteExperience(ctx context.Context, exp *models.Experience) error
	AddEducation(ctx context.Context, edu *models.Education) error
	GetEducation(ctx context.Context, profileID, eduID uint) (*models.Education, error)
	DeleteEducation(ctx context.Context, edu *models.Education) error
}

// profileRepository implements ProfileRepository
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// withDetails preloads the owning user plus experience and education,
// newest entries first.
func (r *profileRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		})
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.withDetails(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.withDetails(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) AddExperience(ctx context.Context, exp *models.Experience) error {
	return r.db.WithContext(ctx).Create(exp).Error
}

func (r *profileRepository) GetExperience(ctx context.Context, profileID, expID uint) (*models.Experience, error) {
	var exp models.Experience
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&exp, expID).Error
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

func (r *profileRepository) DeleteExperience(ctx context.Context, exp *models.Experience) error {
	return r.db.WithContext(ctx).Delete(exp).Error
}

func (r *profileRepository) AddEducation(ctx context.Context, edu *models.Education) error {
	return r.db.WithContext(ctx).Create(edu).Error
}

func (r *profileRepository) GetEducation(ctx context.Context, profileID, eduID uint) (*models.Education, error) {
	var edu models.Education
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&edu, eduID).Error
	if err != nil {
		return nil, err
	}
	return &edu, nil
}

func (r *profileRepository) DeleteEducation(ctx context.Context, edu *models.Education) error {
	return r.db.WithContext(ctx).Delete(edu).Error
}
