package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/promo-kiosk/internal/infrastructure/repository"
	"github.com/sangkips/promo-kiosk/pkg/apperror"
	"github.com/sangkips/promo-kiosk/pkg/logger"
	"github.com/sangkips/promo-kiosk/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResourceCatalog(t *testing.T, now time.Time) *CatalogService {
	t.Helper()
	repo := repository.NewFileCatalogRepository("../../../resources/products.md", "../../../resources/promotions.md", testLoc)
	store, err := LoadStore(context.Background(), repo, logger.Nop())
	require.NoError(t, err)
	return NewCatalogService(store, func() time.Time { return now })
}

func TestCatalogService_ListProducts(t *testing.T) {
	catalog := newResourceCatalog(t, inWindow)

	t.Run("paginates in catalog order", func(t *testing.T) {
		page := catalog.ListProducts(ProductFilter{}, &pagination.PaginationParams{Page: 1, PerPage: 5})

		require.Len(t, page.Items, 5)
		assert.Equal(t, "cola", page.Items[0].Name)
		assert.Equal(t, "cider", page.Items[1].Name)
		assert.Equal(t, int64(11), page.Pagination.Total)
		assert.Equal(t, 3, page.Pagination.TotalPages)
		assert.True(t, page.Pagination.HasNext)
	})

	t.Run("last page", func(t *testing.T) {
		page := catalog.ListProducts(ProductFilter{}, &pagination.PaginationParams{Page: 3, PerPage: 5})

		require.Len(t, page.Items, 1)
		assert.Equal(t, "cup noodles", page.Items[0].Name)
		assert.False(t, page.Pagination.HasNext)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page := catalog.ListProducts(ProductFilter{}, &pagination.PaginationParams{Page: 9, PerPage: 5})
		assert.Empty(t, page.Items)
	})

	t.Run("search", func(t *testing.T) {
		page := catalog.ListProducts(ProductFilter{Search: "WATER"}, pagination.DefaultPagination())
		assert.Len(t, page.Items, 3)
	})

	t.Run("promotional only", func(t *testing.T) {
		page := catalog.ListProducts(ProductFilter{PromotionalOnly: true}, pagination.DefaultPagination())
		assert.Len(t, page.Items, 7)
	})
}

func TestCatalogService_GetProduct(t *testing.T) {
	catalog := newResourceCatalog(t, inWindow)

	cola, err := catalog.GetProduct("cola")
	require.NoError(t, err)
	assert.Equal(t, 10, cola.PromotionalStock)
	assert.Equal(t, 10, cola.GeneralStock)
	assert.Equal(t, 20, cola.Available)
	assert.True(t, cola.PromotionActive)
	require.NotNil(t, cola.Promotion)
	assert.Equal(t, "Soda 2+1", cola.Promotion.Name)

	chips, err := catalog.GetProduct("potato chips")
	require.NoError(t, err)
	assert.False(t, chips.PromotionActive)
	assert.Equal(t, 5, chips.Available)

	juice, err := catalog.GetProduct("orange juice")
	require.NoError(t, err)
	assert.Zero(t, juice.GeneralStock)
	assert.Equal(t, 9, juice.Available)

	_, err = catalog.GetProduct("ramen")
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCatalogService_ListPromotions(t *testing.T) {
	catalog := newResourceCatalog(t, inWindow)

	all := catalog.ListPromotions(false)
	require.Len(t, all, 3)
	assert.Equal(t, "Flash Sale", all[2].Name)
	assert.False(t, all[2].Active)
	assert.Equal(t, "1+1", all[2].Label)

	active := catalog.ListPromotions(true)
	require.Len(t, active, 2)
	for _, p := range active {
		assert.True(t, p.Active)
	}
}

func TestCatalogService_FlashSaleWindow(t *testing.T) {
	catalog := newResourceCatalog(t, time.Date(2026, 11, 5, 9, 0, 0, 0, testLoc))

	chips, err := catalog.GetProduct("potato chips")
	require.NoError(t, err)
	assert.True(t, chips.PromotionActive)
	assert.Equal(t, 10, chips.Available)
	assert.Len(t, catalog.ListPromotions(true), 3)
}
