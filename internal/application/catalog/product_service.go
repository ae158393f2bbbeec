package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/domain/inventory"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/trade"
)

// ProductService handles catalog product operations. It reads the stock
// ledger to derive total stock and consults trade history before
// allowing deletes.
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	stockRepo    inventory.StockRepository
	saleRepo     trade.SaleRepository
	purchaseRepo trade.PurchaseRepository
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	stockRepo inventory.StockRepository,
	saleRepo trade.SaleRepository,
	purchaseRepo trade.PurchaseRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		stockRepo:    stockRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if req.SKU != "" {
		exists, err := s.productRepo.ExistsBySKU(ctx, req.SKU, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.ErrDuplicateSKU
		}
	}

	product, err := catalog.NewProduct(req.SKU, req.Name, decimal.NewFromFloat(req.Price))
	if err != nil {
		return nil, err
	}

	if req.Description != "" || req.ImageURL != "" {
		product.SetDetails(req.Description, req.ImageURL)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.AssignCategory(req.CategoryID)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product, 0)
	return &response, nil
}

// GetByID retrieves a product with its ledger-derived total stock
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	total, err := s.stockRepo.TotalQuantity(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product, total)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		qty, err := s.stockRepo.TotalQuantity(ctx, products[i].ID)
		if err != nil {
			return nil, 0, err
		}
		responses[i] = ToProductResponse(&products[i], qty)
	}
	return responses, total, nil
}

// Update updates a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SKU != nil && *req.SKU != product.SKU {
		exists, err := s.productRepo.ExistsBySKU(ctx, *req.SKU, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.ErrDuplicateSKU
		}
		if err := product.UpdateSKU(*req.SKU); err != nil {
			return nil, err
		}
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	price := product.Price
	if req.Price != nil {
		price = decimal.NewFromFloat(*req.Price)
	}
	if err := product.Update(name, price); err != nil {
		return nil, err
	}

	if req.Description != nil || req.ImageURL != nil {
		description := product.Description
		if req.Description != nil {
			description = *req.Description
		}
		imageURL := product.ImageURL
		if req.ImageURL != nil {
			imageURL = *req.ImageURL
		}
		product.SetDetails(description, imageURL)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.AssignCategory(req.CategoryID)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	total, err := s.stockRepo.TotalQuantity(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product, total)
	return &response, nil
}

// Delete removes a product. Products still holding stock or referenced
// by sales or purchases are kept for history.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}

	hasStock, err := s.stockRepo.ProductHasStock(ctx, id)
	if err != nil {
		return err
	}
	if hasStock {
		return shared.ErrProductInUse
	}

	inSales, err := s.saleRepo.ExistsByProduct(ctx, id)
	if err != nil {
		return err
	}
	if inSales {
		return shared.ErrProductInUse
	}

	inPurchases, err := s.purchaseRepo.ExistsByProduct(ctx, id)
	if err != nil {
		return err
	}
	if inPurchases {
		return shared.ErrProductInUse
	}

	return s.productRepo.Delete(ctx, id)
}
