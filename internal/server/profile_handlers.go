package server

import (
	"errors"
	"time"

	"devconnect/internal/github"
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/service"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type upsertProfileRequest struct {
	Status         string `json:"status" validate:"required" msg:"Status is required"`
	Skills         string `json:"skills" validate:"required" msg:"Skills is required"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type addExperienceRequest struct {
	Title       string `json:"title" validate:"required" msg:"Title is required"`
	Company     string `json:"company" validate:"required" msg:"Company is required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required" msg:"From date is required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type addEducationRequest struct {
	School       string `json:"school" validate:"required" msg:"School is required"`
	Degree       string `json:"degree" validate:"required" msg:"Degree is required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required" msg:"Field of study is required"`
	From         string `json:"from" validate:"required" msg:"From date is required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// parseEntryDates converts the from/to strings shared by experience and
// education requests.
func parseEntryDates(fromRaw, toRaw string) (time.Time, *time.Time, *models.AppError) {
	from, err := parseDate(fromRaw)
	if err != nil {
		return time.Time{}, nil, models.NewValidationError("Invalid from date")
	}
	var to *time.Time
	if toRaw != "" {
		parsed, err := parseDate(toRaw)
		if err != nil {
			return time.Time{}, nil, models.NewValidationError("Invalid to date")
		}
		to = &parsed
	}
	return from, to, nil
}

// UpsertProfile handles POST /api/profile
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req upsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if verr := validation.Struct(req); verr != nil {
		return models.RespondWithError(c, verr)
	}

	profile, err := s.profileService.Upsert(c.UserContext(), middleware.CallerID(c), service.UpsertProfileInput{
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(profile)
}

// GetMyProfile handles GET /api/profile/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetMine(c.UserContext(), middleware.CallerID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// ListProfiles handles GET /api/profile
func (s *Server) ListProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfileByUser handles GET /api/profile/user/:user_id
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return models.RespondWithError(c, models.NewBadRequestError("Profile not found"))
	}

	profile, err := s.profileService.GetByUserID(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profile
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.profileService.DeleteAccount(c.UserContext(), middleware.CallerID(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "profile and user deleted"})
}

// AddExperience handles PUT /api/profile/experience
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req addExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if verr := validation.Struct(req); verr != nil {
		return models.RespondWithError(c, verr)
	}

	from, to, verr := parseEntryDates(req.From, req.To)
	if verr != nil {
		return models.RespondWithError(c, verr)
	}

	profile, err := s.profileService.AddExperience(c.UserContext(), middleware.CallerID(c), models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// DeleteExperience handles DELETE /api/profile/experience/:exp_id
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	expID, ok := parseID(c, "exp_id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("Experience not found"))
	}

	profile, err := s.profileService.RemoveExperience(c.UserContext(), middleware.CallerID(c), expID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation handles PUT /api/profile/education
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req addEducationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if verr := validation.Struct(req); verr != nil {
		return models.RespondWithError(c, verr)
	}

	from, to, verr := parseEntryDates(req.From, req.To)
	if verr != nil {
		return models.RespondWithError(c, verr)
	}

	profile, err := s.profileService.AddEducation(c.UserContext(), middleware.CallerID(c), models.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// DeleteEducation handles DELETE /api/profile/education/:edu_id
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	eduID, ok := parseID(c, "edu_id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("Education not found"))
	}

	profile, err := s.profileService.RemoveEducation(c.UserContext(), middleware.CallerID(c), eduID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// GetGithubRepos handles GET /api/profile/github/:username
func (s *Server) GetGithubRepos(c *fiber.Ctx) error {
	body, err := s.github.Repos(c.UserContext(), c.Params("username"))
	if err != nil {
		if errors.Is(err, github.ErrNoProfile) {
			return models.RespondWithError(c, models.NewNotFoundError("No github profile found"))
		}
		return models.RespondWithError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
