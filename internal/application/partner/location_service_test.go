package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/shared"
)

type locationServiceMocks struct {
	locationRepo *MockLocationRepository
	stockRepo    *MockStockRepository
	saleRepo     *MockSaleRepository
}

func newLocationService() (*LocationService, locationServiceMocks) {
	m := locationServiceMocks{
		locationRepo: new(MockLocationRepository),
		stockRepo:    new(MockStockRepository),
		saleRepo:     new(MockSaleRepository),
	}
	service := NewLocationService(m.locationRepo, m.stockRepo, m.saleRepo)
	return service, m
}

func newLocation(t *testing.T) *partner.Location {
	t.Helper()
	l, err := partner.NewLocation("Toko Pusat", "Jl. Sudirman 1")
	require.NoError(t, err)
	return l
}

func TestLocationServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active location", func(t *testing.T) {
		service, m := newLocationService()

		m.locationRepo.On("Save", ctx, mock.AnythingOfType("*partner.Location")).Return(nil)

		resp, err := service.Create(ctx, CreateLocationRequest{Name: "Toko Pusat", Address: "Jl. Sudirman 1"})
		require.NoError(t, err)
		assert.Equal(t, "Toko Pusat", resp.Name)
		assert.True(t, resp.IsActive)
		m.locationRepo.AssertExpectations(t)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		service, m := newLocationService()

		_, err := service.Create(ctx, CreateLocationRequest{Name: ""})
		assert.Error(t, err)
		m.locationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestLocationServiceActivation(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates and reactivates", func(t *testing.T) {
		service, m := newLocationService()

		location := newLocation(t)
		m.locationRepo.On("FindByID", ctx, location.ID).Return(location, nil)
		m.locationRepo.On("Save", ctx, location).Return(nil)

		resp, err := service.Deactivate(ctx, location.ID)
		require.NoError(t, err)
		assert.False(t, resp.IsActive)

		resp, err = service.Activate(ctx, location.ID)
		require.NoError(t, err)
		assert.True(t, resp.IsActive)
	})

	t.Run("activating an active location fails", func(t *testing.T) {
		service, m := newLocationService()

		location := newLocation(t)
		m.locationRepo.On("FindByID", ctx, location.ID).Return(location, nil)

		_, err := service.Activate(ctx, location.ID)
		assert.Error(t, err)
		m.locationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestLocationServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a location with no stock and no sales", func(t *testing.T) {
		service, m := newLocationService()

		location := newLocation(t)
		m.locationRepo.On("FindByID", ctx, location.ID).Return(location, nil)
		m.stockRepo.On("HasPositiveStock", ctx, location.ID).Return(false, nil)
		m.saleRepo.On("ExistsByLocation", ctx, location.ID).Return(false, nil)
		m.locationRepo.On("Delete", ctx, location.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, location.ID))
		m.locationRepo.AssertExpectations(t)
	})

	t.Run("refuses while stock is on hand", func(t *testing.T) {
		service, m := newLocationService()

		location := newLocation(t)
		m.locationRepo.On("FindByID", ctx, location.ID).Return(location, nil)
		m.stockRepo.On("HasPositiveStock", ctx, location.ID).Return(true, nil)

		assert.ErrorIs(t, service.Delete(ctx, location.ID), shared.ErrLocationInUse)
		m.locationRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("refuses when sales were recorded there", func(t *testing.T) {
		service, m := newLocationService()

		location := newLocation(t)
		m.locationRepo.On("FindByID", ctx, location.ID).Return(location, nil)
		m.stockRepo.On("HasPositiveStock", ctx, location.ID).Return(false, nil)
		m.saleRepo.On("ExistsByLocation", ctx, location.ID).Return(true, nil)

		assert.ErrorIs(t, service.Delete(ctx, location.ID), shared.ErrLocationInUse)
		m.locationRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("propagates not found", func(t *testing.T) {
		service, m := newLocationService()

		id := uuid.New()
		m.locationRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, service.Delete(ctx, id), shared.ErrNotFound)
	})
}

func TestLocationServiceUpdate(t *testing.T) {
	ctx := context.Background()

	service, m := newLocationService()

	location := newLocation(t)
	m.locationRepo.On("FindByID", ctx, location.ID).Return(location, nil)
	m.locationRepo.On("Save", ctx, location).Return(nil)

	newName := "Toko Cabang"
	resp, err := service.Update(ctx, location.ID, UpdateLocationRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Toko Cabang", resp.Name)
	assert.Equal(t, "Jl. Sudirman 1", resp.Address)
}
