package bootstrap

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/satellitegroup/printshop/internal/models"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func TestEnsureAdmin_PromotesRegisteredAccount(t *testing.T) {
	t.Parallel()

	db := initTestDB(t)
	require.NoError(t, db.Create(&models.User{
		Email: "boss@example.com", PasswordHash: "x", Role: "user",
	}).Error)

	require.NoError(t, EnsureAdmin(context.Background(), db, "boss@example.com"))

	var user models.User
	require.NoError(t, db.Where("email = ?", "boss@example.com").First(&user).Error)
	assert.Equal(t, "admin", user.Role)
}

func TestEnsureAdmin_NoopCases(t *testing.T) {
	t.Parallel()

	db := initTestDB(t)

	// no email configured
	require.NoError(t, EnsureAdmin(context.Background(), db, ""))

	// designated account not registered yet
	require.NoError(t, EnsureAdmin(context.Background(), db, "boss@example.com"))
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestEnsureAdmin_SkipsWhenAdminExists(t *testing.T) {
	t.Parallel()

	db := initTestDB(t)
	require.NoError(t, db.Create(&models.User{
		Email: "existing@example.com", PasswordHash: "x", Role: "admin",
	}).Error)
	require.NoError(t, db.Create(&models.User{
		Email: "boss@example.com", PasswordHash: "x", Role: "user",
	}).Error)

	require.NoError(t, EnsureAdmin(context.Background(), db, "boss@example.com"))

	var user models.User
	require.NoError(t, db.Where("email = ?", "boss@example.com").First(&user).Error)
	assert.Equal(t, "user", user.Role, "an existing admin freezes the bootstrap")
}
