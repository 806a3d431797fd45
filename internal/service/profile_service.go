package service

import (
	"context"
	"errors"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/repository"

	"gorm.io/gorm"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// UpsertProfileInput carries the writable profile fields. Skills arrive as
// comma-delimited text and are normalized to a trimmed list. Optional fields
// left empty never overwrite stored values.
type UpsertProfileInput struct {
	Status         string
	Skills         string
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// splitSkills turns "Go, SQL, docker" into ["Go","SQL","docker"], dropping
// empty segments.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// Upsert creates the caller's profile on first call and merges into it on
// subsequent calls. Status and skills always overwrite; every other field
// only overwrites when non-empty.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, in UpsertProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	creating := false
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		creating = true
		profile = &models.Profile{UserID: userID}
	case err != nil:
		return nil, models.NewInternalError(err)
	}

	profile.Status = in.Status
	profile.Skills = splitSkills(in.Skills)
	if in.Company != "" {
		profile.Company = in.Company
	}
	if in.Website != "" {
		profile.Website = in.Website
	}
	if in.Location != "" {
		profile.Location = in.Location
	}
	if in.Bio != "" {
		profile.Bio = in.Bio
	}
	if in.GithubUsername != "" {
		profile.GithubUsername = in.GithubUsername
	}
	if in.Youtube != "" {
		profile.Social.Youtube = in.Youtube
	}
	if in.Twitter != "" {
		profile.Social.Twitter = in.Twitter
	}
	if in.Facebook != "" {
		profile.Social.Facebook = in.Facebook
	}
	if in.Linkedin != "" {
		profile.Social.Linkedin = in.Linkedin
	}
	if in.Instagram != "" {
		profile.Social.Instagram = in.Instagram
	}

	// Save issues an insert when Experience/Education associations are
	// loaded, so strip them before persisting and re-read after.
	profile.Experience = nil
	profile.Education = nil
	profile.User = models.ProfileOwner{}

	if creating {
		err = s.profileRepo.Create(ctx, profile)
	} else {
		err = s.profileRepo.Save(ctx, profile)
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.GetMine(ctx, userID)
}

// GetMine loads the caller's own profile.
func (s *ProfileService) GetMine(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.NewBadRequestError("There is no profile for this user")
	case err != nil:
		return nil, models.NewInternalError(err)
	}
	return profile, nil
}

// List returns every profile with the owning user's name and avatar joined.
func (s *ProfileService) List(ctx context.Context) ([]*models.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

// GetByUserID is the public profile read.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.NewBadRequestError("Profile not found")
	case err != nil:
		return nil, models.NewInternalError(err)
	}
	return profile, nil
}

// requireProfile loads the caller's profile for a nested-collection
// mutation.
func (s *ProfileService) requireProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.NewNotFoundError("There is no profile for this user")
	case err != nil:
		return nil, models.NewInternalError(err)
	}
	return profile, nil
}

// AddExperience appends a work history entry to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, exp models.Experience) (*models.Profile, error) {
	profile, err := s.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp.ID = 0
	exp.ProfileID = profile.ID
	if err := s.profileRepo.AddExperience(ctx, &exp); err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.GetMine(ctx, userID)
}

// RemoveExperience deletes one of the caller's experience entries by id.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp, err := s.profileRepo.GetExperience(ctx, profile.ID, expID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.NewNotFoundError("Experience not found")
	case err != nil:
		return nil, models.NewInternalError(err)
	}

	if err := s.profileRepo.DeleteExperience(ctx, exp); err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.GetMine(ctx, userID)
}

// AddEducation appends a schooling entry to the caller's profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, edu models.Education) (*models.Profile, error) {
	profile, err := s.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu.ID = 0
	edu.ProfileID = profile.ID
	if err := s.profileRepo.AddEducation(ctx, &edu); err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.GetMine(ctx, userID)
}

// RemoveEducation deletes one of the caller's education entries by id.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu, err := s.profileRepo.GetEducation(ctx, profile.ID, eduID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.NewNotFoundError("Education not found")
	case err != nil:
		return nil, models.NewInternalError(err)
	}

	if err := s.profileRepo.DeleteEducation(ctx, edu); err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.GetMine(ctx, userID)
}

// DeleteAccount removes the caller's posts, profile, and user record in a
// single transaction.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.userRepo.DeleteCascade(ctx, userID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
