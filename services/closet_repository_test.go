package services_test

import (
	"context"
	"testing"

	"outfitapi/dbhelper"
	"outfitapi/models"
	"outfitapi/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) *services.ClosetRepository {
	t.Helper()
	db := dbhelper.SetupTestDB()
	if db == nil {
		t.Skip("postgres is not available")
	}
	cleaner := dbhelper.SetupCleaner(db)
	cleaner()
	t.Cleanup(cleaner)
	return services.NewClosetRepository(db)
}

func strPtr(s string) *string { return &s }

func TestClosetRepositoryCreateAndList(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	tee := &models.Garment{OwnerID: "alice", Name: "Tee", Category: models.CategoryTop, Colors: strPtr("white")}
	jeans := &models.Garment{OwnerID: "alice", Name: "Jeans", Category: models.CategoryBottom}
	other := &models.Garment{OwnerID: "bob", Name: "Skirt", Category: models.CategoryBottom}
	require.NoError(t, repo.CreateGarment(ctx, tee))
	require.NoError(t, repo.CreateGarment(ctx, jeans))
	require.NoError(t, repo.CreateGarment(ctx, other))
	assert.NotEmpty(t, tee.ID)
	assert.Equal(t, 3, tee.Warmth)

	garments, err := repo.ListGarments(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, garments, 2)
	assert.Equal(t, "Tee", garments[0].Name)
	assert.Equal(t, "Jeans", garments[1].Name)
	assert.Equal(t, "white", garments[0].ColorsCSV())
}

func TestClosetRepositoryDeleteOwnership(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	tee := &models.Garment{OwnerID: "alice", Name: "Tee", Category: models.CategoryTop}
	require.NoError(t, repo.CreateGarment(ctx, tee))

	assert.ErrorIs(t, repo.DeleteGarment(ctx, "bob", tee.ID), services.ErrGarmentNotFound)
	assert.NoError(t, repo.DeleteGarment(ctx, "alice", tee.ID))
	assert.ErrorIs(t, repo.DeleteGarment(ctx, "alice", tee.ID), services.ErrGarmentNotFound)

	garments, err := repo.ListGarments(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, garments)
}

func TestClosetRepositoryUpdate(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	coat := &models.Garment{OwnerID: "alice", Name: "Coat", Category: "Jacket"}
	require.NoError(t, repo.CreateGarment(ctx, coat))
	coat.Category = models.CategoryOuterwear
	require.NoError(t, repo.UpdateGarment(ctx, coat))

	stored, err := repo.ListGarments(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, coat.ID, stored[0].ID)
	assert.Equal(t, models.CategoryOuterwear, stored[0].Category)
}
