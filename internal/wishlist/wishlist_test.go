package wishlist

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/satellitegroup/printshop/internal/models"
)

func newTestRepo(t *testing.T) *Repo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.WishlistEntry{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return &Repo{DB: db}
}

func TestToggle_AddThenRemove(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	action, err := repo.Toggle(ctx, 7, "3")
	require.NoError(t, err)
	assert.Equal(t, ActionAdded, action)

	ids, err := repo.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids)

	action, err = repo.Toggle(ctx, 7, "3")
	require.NoError(t, err)
	assert.Equal(t, ActionRemoved, action)

	ids, err = repo.List(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestToggle_ReAddAfterRemove(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	for _, want := range []string{ActionAdded, ActionRemoved, ActionAdded} {
		action, err := repo.Toggle(ctx, 7, "4")
		require.NoError(t, err)
		assert.Equal(t, want, action)
	}

	ids, err := repo.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, ids)
}

func TestList_ScopedToUser(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Toggle(ctx, 7, "3")
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, 8, "5")
	require.NoError(t, err)

	ids, err := repo.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids)
}
