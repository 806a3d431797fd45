package seed

import (
	"testing"

	"devconnect/internal/database"
	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeeder_Run(t *testing.T) {
	db := setupDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(8, 12))

	var userCount, postCount, profileCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Profile{}).Count(&profileCount).Error)

	assert.Equal(t, int64(8), userCount)
	assert.Equal(t, int64(12), postCount)
	assert.Greater(t, profileCount, int64(0))
	assert.Less(t, profileCount, userCount, "some accounts stay profile-less")

	// Every user id is unique per post in likes.
	var likes []models.Like
	require.NoError(t, db.Find(&likes).Error)
	seen := map[[2]uint]bool{}
	for _, l := range likes {
		key := [2]uint{l.PostID, l.UserID}
		assert.False(t, seen[key], "duplicate like for post %d user %d", l.PostID, l.UserID)
		seen[key] = true
	}
}

func TestSeeder_ClearAll(t *testing.T) {
	db := setupDB(t)
	s := NewSeeder(db)
	require.NoError(t, s.Run(4, 6))

	require.NoError(t, s.ClearAll())

	for _, model := range []interface{}{
		&models.User{}, &models.Profile{}, &models.Post{},
		&models.Like{}, &models.Comment{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}
