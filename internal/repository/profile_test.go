package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"devconnect/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestProfileRepository_GetByUserID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	profileRows := sqlmock.NewRows([]string{"id", "user_id", "status", "company"}).
		AddRow(5, 1, "Developer", "Acme")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles" WHERE user_id = $1 ORDER BY "profiles"."id" LIMIT $2`)).
		WithArgs(1, 1).
		WillReturnRows(profileRows)

	// Preloads run in alphabetical order: Education, Experience, User.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "educations" WHERE "educations"."profile_id" = $1 ORDER BY created_at DESC, id DESC`)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "school", "degree"}).
			AddRow(20, 5, "State University", "BSc"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "experiences" WHERE "experiences"."profile_id" = $1 ORDER BY created_at DESC, id DESC`)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "title", "company"}).
			AddRow(10, 5, "Engineer", "Acme"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "avatar"}).
			AddRow(1, "John Doe", "//gravatar"))

	profile, err := repo.GetByUserID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Developer", profile.Status)
	assert.Equal(t, "John Doe", profile.User.Name)
	assert.Len(t, profile.Experience, 1)
	assert.Len(t, profile.Education, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_GetByUserID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles" WHERE user_id = $1`)).
		WithArgs(99, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	profile, err := repo.GetByUserID(ctx, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, profile)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	profile := &models.Profile{
		UserID: 1,
		Status: "Developer",
		Skills: []string{"Go", "SQL"},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "profiles"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	err := repo.Create(ctx, profile)
	assert.NoError(t, err)
	assert.Equal(t, uint(5), profile.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_AddExperience(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	exp := &models.Experience{
		ProfileID: 5,
		Title:     "Engineer",
		Company:   "Acme",
		From:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "experiences"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit()

	err := repo.AddExperience(ctx, exp)
	assert.NoError(t, err)
	assert.Equal(t, uint(10), exp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_GetExperience_WrongProfile(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "experiences" WHERE profile_id = $1 AND "experiences"."id" = $2`)).
		WithArgs(5, 10, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	exp, err := repo.GetExperience(ctx, 5, 10)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, exp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_DeleteEducation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "educations" WHERE "educations"."id" = $1`)).
		WithArgs(20).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteEducation(ctx, &models.Education{ID: 20})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
