package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/gravatar"
	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var statuses = []string{
	"Developer",
	"Junior Developer",
	"Senior Developer",
	"Manager",
	"Student or Learning",
	"Instructor or Teacher",
	"Intern",
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "SQL", "PostgreSQL",
	"Docker", "Kubernetes", "React", "HTML", "CSS", "Redis", "gRPC",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db           *gorm.DB
	rand         *rand.Rand
	passwordHash string
}

// NewFactory creates a Factory bound to the provided Gorm DB. The bcrypt
// hash of the shared password is computed once; hashing per user would
// dominate seeding time.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("seed: bcrypt: %v", err))
	}
	return &Factory{
		db:           db,
		rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
		passwordHash: string(hash),
	}
}

// pastTime returns a timestamp up to maxDays in the past.
func (f *Factory) pastTime(maxDays int) time.Time {
	back := time.Duration(f.rand.Intn(maxDays*24*60)) * time.Minute
	return time.Now().Add(-back)
}

// CreateUser persists a user with a generated identity.
func (f *Factory) CreateUser() (*models.User, error) {
	email := strings.ToLower(gofakeit.Username()) + "@" + gofakeit.DomainName()
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: f.passwordHash,
		Avatar:   gravatar.URL(email),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile persists a profile for user with one or two experience
// entries and an education entry.
func (f *Factory) CreateProfile(user *models.User) (*models.Profile, error) {
	nSkills := 2 + f.rand.Intn(4)
	skills := make([]string, 0, nSkills)
	for _, i := range f.rand.Perm(len(skillPool))[:nSkills] {
		skills = append(skills, skillPool[i])
	}

	profile := &models.Profile{
		UserID:         user.ID,
		Status:         statuses[f.rand.Intn(len(statuses))],
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       gofakeit.City(),
		Bio:            gofakeit.Sentence(12),
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Skills:         skills,
		Social: models.Social{
			Twitter:  "https://twitter.com/" + strings.ToLower(gofakeit.Username()),
			Linkedin: "https://linkedin.com/in/" + strings.ToLower(gofakeit.Username()),
		},
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	for i := 0; i <= f.rand.Intn(2); i++ {
		from := f.pastTime(5 * 365)
		exp := &models.Experience{
			ProfileID:   profile.ID,
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        from,
			Current:     i == 0,
			Description: gofakeit.Sentence(10),
		}
		if !exp.Current {
			to := from.Add(time.Duration(30+f.rand.Intn(700)) * 24 * time.Hour)
			exp.To = &to
		}
		if err := f.db.Create(exp).Error; err != nil {
			return nil, err
		}
	}

	from := f.pastTime(10 * 365)
	to := from.Add(4 * 365 * 24 * time.Hour)
	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       gofakeit.Company() + " University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         from,
		To:           &to,
	}
	if err := f.db.Create(edu).Error; err != nil {
		return nil, err
	}

	return profile, nil
}

// CreatePost persists a post authored by user, with the author snapshot the
// API would take and a realistic created_at spread.
func (f *Factory) CreatePost(user *models.User) (*models.Post, error) {
	post := &models.Post{
		UserID:    user.ID,
		Text:      gofakeit.Paragraph(1, 2, 8, " "),
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: f.pastTime(90),
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// AddEngagement attaches likes and comments from random users to post.
func (f *Factory) AddEngagement(post *models.Post, users []*models.User) error {
	nLikes := f.rand.Intn(len(users)/2 + 1)
	for _, i := range f.rand.Perm(len(users))[:nLikes] {
		like := &models.Like{PostID: post.ID, UserID: users[i].ID}
		if err := f.db.Create(like).Error; err != nil {
			return err
		}
	}

	nComments := f.rand.Intn(4)
	for j := 0; j < nComments; j++ {
		commenter := users[f.rand.Intn(len(users))]
		comment := &models.Comment{
			PostID:    post.ID,
			UserID:    commenter.ID,
			Text:      gofakeit.Sentence(8 + f.rand.Intn(10)),
			Name:      commenter.Name,
			Avatar:    commenter.Avatar,
			CreatedAt: post.CreatedAt.Add(time.Duration(f.rand.Intn(72)) * time.Hour),
		}
		if err := f.db.Create(comment).Error; err != nil {
			return err
		}
	}
	return nil
}
