package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"velora.backend/internal/domain/entities"
)

func TestFavoriteRepository_AddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	createProductTable(t, db)
	createFavoriteTable(t, db)
	productRepo := NewProductRepository(db)
	repo := NewFavoriteRepository(db, productRepo)
	ctx := context.Background()

	userID := uuid.New()
	product := seedProduct(t, productRepo, "Leather Belt")

	require.NoError(t, repo.Add(ctx, &entities.Favorite{UserID: userID, ProductID: product.ID}))
	require.NoError(t, repo.Add(ctx, &entities.Favorite{UserID: userID, ProductID: product.ID}))

	count, err := repo.CountByProduct(ctx, userID, product.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestFavoriteRepository_RemoveToleratesMissing(t *testing.T) {
	db := newTestDB(t)
	createProductTable(t, db)
	createFavoriteTable(t, db)
	productRepo := NewProductRepository(db)
	repo := NewFavoriteRepository(db, productRepo)
	ctx := context.Background()

	require.NoError(t, repo.Remove(ctx, uuid.New(), uuid.New()))
}

func TestFavoriteRepository_ListJoinsProducts(t *testing.T) {
	db := newTestDB(t)
	createProductTable(t, db)
	createFavoriteTable(t, db)
	productRepo := NewProductRepository(db)
	repo := NewFavoriteRepository(db, productRepo)
	ctx := context.Background()

	userID := uuid.New()
	p1 := seedProduct(t, productRepo, "Canvas Tote")
	p2 := seedProduct(t, productRepo, "Straw Hat")

	require.NoError(t, repo.Add(ctx, &entities.Favorite{UserID: userID, ProductID: p1.ID}))
	require.NoError(t, repo.Add(ctx, &entities.Favorite{UserID: userID, ProductID: p2.ID}))

	favs, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, favs, 2)
	for _, fav := range favs {
		require.NotNil(t, fav.Product)
		require.NotEmpty(t, fav.Product.Name)
	}

	require.NoError(t, repo.Remove(ctx, userID, p1.ID))
	favs, err = repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	require.Equal(t, p2.ID, favs[0].ProductID)
}
