package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tokopos/backend/internal/domain/billing"
	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/trade"
)

type saleServiceMocks struct {
	saleRepo     *MockSaleRepository
	locationRepo *MockLocationRepository
	checkout     *MockCheckoutStore
}

func newSaleService() (*SaleService, saleServiceMocks) {
	m := saleServiceMocks{
		saleRepo:     new(MockSaleRepository),
		locationRepo: new(MockLocationRepository),
		checkout:     new(MockCheckoutStore),
	}
	service := NewSaleService(m.saleRepo, m.locationRepo, m.checkout, zap.NewNop())
	return service, m
}

func storeLocation(t *testing.T) *partner.Location {
	t.Helper()
	l, err := partner.NewLocation("Toko Pusat", "")
	require.NoError(t, err)
	return l
}

func TestSaleServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("a cash sale pairs a paid invoice and records change", func(t *testing.T) {
		service, m := newSaleService()

		location := storeLocation(t)
		m.locationRepo.On("FindByID", ctx, location.ID).Return(location, nil)

		var savedInvoice *billing.Invoice
		m.checkout.On("SaveSaleWithInvoice", ctx,
			mock.AnythingOfType("*trade.Sale"),
			mock.AnythingOfType("*billing.Invoice"),
		).Run(func(args mock.Arguments) {
			savedInvoice = args.Get(2).(*billing.Invoice)
		}).Return(nil)

		resp, err := service.Create(ctx, CreateSaleRequest{
			LocationID: location.ID,
			Method:     "cash",
			Payment:    50000,
			Items: []SaleItemRequest{
				{ProductID: uuid.New(), Quantity: 2, Price: 15000},
				{ProductID: uuid.New(), Quantity: 1, Price: 5000},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "35000", resp.Total)
		assert.Equal(t, "15000", resp.Change)
		require.NotNil(t, resp.InvoiceID)

		require.NotNil(t, savedInvoice)
		assert.Equal(t, billing.InvoiceStatusPaid, savedInvoice.Status)
		assert.Equal(t, *resp.InvoiceID, savedInvoice.ID)
		require.NotNil(t, savedInvoice.LocationID)
		assert.Equal(t, location.ID, *savedInvoice.LocationID)
		m.checkout.AssertExpectations(t)
	})

	t.Run("a non-cash sale pairs an unpaid invoice", func(t *testing.T) {
		service, m := newSaleService()

		location := storeLocation(t)
		m.locationRepo.On("FindByID", ctx, location.ID).Return(location, nil)

		var savedInvoice *billing.Invoice
		m.checkout.On("SaveSaleWithInvoice", ctx,
			mock.AnythingOfType("*trade.Sale"),
			mock.AnythingOfType("*billing.Invoice"),
		).Run(func(args mock.Arguments) {
			savedInvoice = args.Get(2).(*billing.Invoice)
		}).Return(nil)

		resp, err := service.Create(ctx, CreateSaleRequest{
			LocationID: location.ID,
			Method:     "qris",
			Items: []SaleItemRequest{
				{ProductID: uuid.New(), Quantity: 1, Price: 20000},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "0", resp.Change)
		require.NotNil(t, savedInvoice)
		assert.Equal(t, billing.InvoiceStatusUnpaid, savedInvoice.Status)
	})

	t.Run("rejects a cash payment below the total", func(t *testing.T) {
		service, m := newSaleService()

		location := storeLocation(t)
		m.locationRepo.On("FindByID", ctx, location.ID).Return(location, nil)

		_, err := service.Create(ctx, CreateSaleRequest{
			LocationID: location.ID,
			Method:     "cash",
			Payment:    10000,
			Items: []SaleItemRequest{
				{ProductID: uuid.New(), Quantity: 1, Price: 20000},
			},
		})
		assert.ErrorIs(t, err, shared.ErrPaymentTooSmall)
		m.checkout.AssertNotCalled(t, "SaveSaleWithInvoice", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects a deactivated location", func(t *testing.T) {
		service, m := newSaleService()

		location := storeLocation(t)
		require.NoError(t, location.Deactivate())
		m.locationRepo.On("FindByID", ctx, location.ID).Return(location, nil)

		_, err := service.Create(ctx, CreateSaleRequest{
			LocationID: location.ID,
			Method:     "cash",
			Payment:    20000,
			Items:      []SaleItemRequest{{ProductID: uuid.New(), Quantity: 1, Price: 20000}},
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "LOCATION_INACTIVE", domainErr.Code)
	})

	t.Run("rejects an unknown location", func(t *testing.T) {
		service, m := newSaleService()

		locationID := uuid.New()
		m.locationRepo.On("FindByID", ctx, locationID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, CreateSaleRequest{
			LocationID: locationID,
			Method:     "cash",
			Payment:    20000,
			Items:      []SaleItemRequest{{ProductID: uuid.New(), Quantity: 1, Price: 20000}},
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("fails the whole checkout when the store fails", func(t *testing.T) {
		service, m := newSaleService()

		location := storeLocation(t)
		m.locationRepo.On("FindByID", ctx, location.ID).Return(location, nil)
		m.checkout.On("SaveSaleWithInvoice", ctx, mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := service.Create(ctx, CreateSaleRequest{
			LocationID: location.ID,
			Method:     "card",
			Items:      []SaleItemRequest{{ProductID: uuid.New(), Quantity: 1, Price: 20000}},
		})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestSaleServiceGetByID(t *testing.T) {
	ctx := context.Background()

	service, m := newSaleService()

	sale := mustSale(t)
	m.saleRepo.On("FindByID", ctx, sale.ID).Return(sale, nil)

	resp, err := service.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.Number, resp.Number)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "20000", resp.Items[0].Subtotal)
}

func mustSale(t *testing.T) *trade.Sale {
	t.Helper()
	sale, err := trade.NewSale(uuid.New(), trade.PaymentMethodCash, decimal.NewFromInt(20000), []trade.SaleLine{
		{ProductID: uuid.New(), Quantity: 2, Price: decimal.NewFromInt(10000)},
	})
	require.NoError(t, err)
	return sale
}
