package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tokopos/backend/internal/domain/inventory"
	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/shared"
)

// AdjustmentService applies stock adjustment batches. Validation and
// header construction happen here; the repository runs the batch in a
// single transaction with the affected ledger rows locked, so two
// counts of the same product at the same location serialize instead of
// interleaving.
type AdjustmentService struct {
	adjustmentRepo inventory.AdjustmentRepository
	locationRepo   partner.LocationRepository
	logger         *zap.Logger
}

// NewAdjustmentService creates a new AdjustmentService
func NewAdjustmentService(
	adjustmentRepo inventory.AdjustmentRepository,
	locationRepo partner.LocationRepository,
	logger *zap.Logger,
) *AdjustmentService {
	return &AdjustmentService{
		adjustmentRepo: adjustmentRepo,
		locationRepo:   locationRepo,
		logger:         logger,
	}
}

// Create validates and applies an adjustment batch. Nothing is written
// unless every item can be applied.
func (s *AdjustmentService) Create(ctx context.Context, req CreateAdjustmentRequest) (*AdjustmentResponse, error) {
	targets := make([]inventory.AdjustmentTarget, len(req.Items))
	for i, item := range req.Items {
		targets[i] = inventory.AdjustmentTarget{
			ProductID:   item.ProductID,
			NewQuantity: item.NewQuantity,
		}
	}
	if err := inventory.ValidateTargets(targets); err != nil {
		return nil, err
	}

	location, err := s.locationRepo.FindByID(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}
	if !location.IsActive {
		return nil, shared.NewDomainError("LOCATION_INACTIVE", "Cannot adjust stock at a deactivated location")
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}
	adjustment, err := inventory.NewStockAdjustment(req.LocationID, req.Number, date, req.Note)
	if err != nil {
		return nil, err
	}

	if err := s.adjustmentRepo.Apply(ctx, adjustment, targets); err != nil {
		return nil, err
	}

	s.logger.Info("stock adjustment applied",
		zap.String("number", adjustment.Number),
		zap.String("location_id", adjustment.LocationID.String()),
		zap.Int("items", adjustment.ItemCount()),
	)

	response := ToAdjustmentResponse(adjustment)
	return &response, nil
}

// GetByID retrieves an adjustment with its items
func (s *AdjustmentService) GetByID(ctx context.Context, id uuid.UUID) (*AdjustmentResponse, error) {
	adjustment, err := s.adjustmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToAdjustmentResponse(adjustment)
	return &response, nil
}

// List retrieves adjustments with filtering and pagination
func (s *AdjustmentService) List(ctx context.Context, filter AdjustmentListFilter) ([]AdjustmentResponse, int64, error) {
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
	if filter.LocationID != nil {
		domainFilter.Filters["location_id"] = *filter.LocationID
	}

	adjustments, err := s.adjustmentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.adjustmentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToAdjustmentResponses(adjustments), total, nil
}
