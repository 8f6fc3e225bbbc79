package repository

import (
	"context"
	"fmt"
	"testing"

	"vicinity/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FollowEdge{},
		&models.FollowRequest{},
		&models.Group{},
		&models.GroupMembership{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "digest",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestGroup(t *testing.T, db *gorm.DB, name string, creatorID uint) *models.Group {
	t.Helper()
	group := &models.Group{Name: name, Description: "test group", CreatorID: creatorID}
	require.NoError(t, NewGroupRepository(db).Create(context.Background(), group))
	return group
}
