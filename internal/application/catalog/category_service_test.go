package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/domain/shared"
)

func newCategory(t *testing.T, name string, parentID *uuid.UUID) *catalog.Category {
	t.Helper()
	c, err := catalog.NewCategory(name, parentID)
	require.NoError(t, err)
	return c
}

func TestCategoryServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a root category", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo, new(MockProductRepository))

		categoryRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

		resp, err := service.Create(ctx, CreateCategoryRequest{Name: "Minuman"})
		require.NoError(t, err)
		assert.Equal(t, "Minuman", resp.Name)
		assert.Nil(t, resp.ParentID)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("rejects a missing parent", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo, new(MockProductRepository))

		parentID := uuid.New()
		categoryRepo.On("FindByID", ctx, parentID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, CreateCategoryRequest{Name: "Kopi", ParentID: &parentID})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCategoryServiceMove(t *testing.T) {
	ctx := context.Background()

	// Build a chain: root -> mid -> leaf
	root := newCategory(t, "root", nil)
	mid := newCategory(t, "mid", &root.ID)
	leaf := newCategory(t, "leaf", &mid.ID)

	t.Run("moving under a descendant is rejected", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo, new(MockProductRepository))

		// root is moved under leaf; walking leaf's ancestors finds root
		categoryRepo.On("FindByID", ctx, root.ID).Return(root, nil)
		categoryRepo.On("FindByID", ctx, leaf.ID).Return(leaf, nil)
		categoryRepo.On("FindByID", ctx, mid.ID).Return(mid, nil)

		_, err := service.Move(ctx, root.ID, MoveCategoryRequest{ParentID: &leaf.ID})
		assert.ErrorIs(t, err, shared.ErrCategoryCycle)
	})

	t.Run("moving under itself is rejected", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo, new(MockProductRepository))

		categoryRepo.On("FindByID", ctx, mid.ID).Return(mid, nil)

		_, err := service.Move(ctx, mid.ID, MoveCategoryRequest{ParentID: &mid.ID})
		assert.ErrorIs(t, err, shared.ErrCategoryCycle)
	})

	t.Run("a valid move re-parents and saves", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo, new(MockProductRepository))

		other := newCategory(t, "other", nil)
		moved := newCategory(t, "moved", &root.ID)

		categoryRepo.On("FindByID", ctx, moved.ID).Return(moved, nil)
		categoryRepo.On("FindByID", ctx, other.ID).Return(other, nil)
		categoryRepo.On("Save", ctx, moved).Return(nil)

		resp, err := service.Move(ctx, moved.ID, MoveCategoryRequest{ParentID: &other.ID})
		require.NoError(t, err)
		assert.Equal(t, &other.ID, resp.ParentID)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("moving to the top level skips the cycle check", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo, new(MockProductRepository))

		moved := newCategory(t, "moved", &root.ID)
		categoryRepo.On("FindByID", ctx, moved.ID).Return(moved, nil)
		categoryRepo.On("Save", ctx, moved).Return(nil)

		resp, err := service.Move(ctx, moved.ID, MoveCategoryRequest{ParentID: nil})
		require.NoError(t, err)
		assert.Nil(t, resp.ParentID)
	})
}

func TestCategoryServiceDelete(t *testing.T) {
	ctx := context.Background()
	category := newCategory(t, "Minuman", nil)

	t.Run("deletes an empty category", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		productRepo := new(MockProductRepository)
		service := NewCategoryService(categoryRepo, productRepo)

		categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		categoryRepo.On("HasChildren", ctx, category.ID).Return(false, nil)
		productRepo.On("CountByCategory", ctx, category.ID).Return(int64(0), nil)
		categoryRepo.On("Delete", ctx, category.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, category.ID))
		categoryRepo.AssertExpectations(t)
	})

	t.Run("refuses when children exist", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo, new(MockProductRepository))

		categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		categoryRepo.On("HasChildren", ctx, category.ID).Return(true, nil)

		assert.ErrorIs(t, service.Delete(ctx, category.ID), shared.ErrCategoryInUse)
		categoryRepo.AssertNotCalled(t, "Delete", ctx, category.ID)
	})

	t.Run("refuses when products are assigned", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		productRepo := new(MockProductRepository)
		service := NewCategoryService(categoryRepo, productRepo)

		categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		categoryRepo.On("HasChildren", ctx, category.ID).Return(false, nil)
		productRepo.On("CountByCategory", ctx, category.ID).Return(int64(3), nil)

		assert.ErrorIs(t, service.Delete(ctx, category.ID), shared.ErrCategoryInUse)
		categoryRepo.AssertNotCalled(t, "Delete", ctx, category.ID)
	})
}
