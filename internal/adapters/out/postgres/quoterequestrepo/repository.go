package quoterequestrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/quoterequest"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormQuoteRequestRepository implements QuoteRequestRepository using GORM.
type GormQuoteRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQuoteRequestRepository creates a new GORM quote request repository.
func NewGormQuoteRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormQuoteRequestRepository {
	return &GormQuoteRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quote request to the database.
func (r *GormQuoteRequestRepository) Add(ctx context.Context, aggregate *quoterequest.QuoteRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing quote request with a compare-and-swap on the
// concurrency token the aggregate was loaded with.
func (r *GormQuoteRequestRepository) Update(ctx context.Context, aggregate *quoterequest.QuoteRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&QuoteRequestDTO{}).
		Where("id = ? AND concurrency_token = ?", dto.ID, aggregate.TokenAsLoaded()).
		Select("Notes", "Status", "ExpiresAt", "PricedAt", "QuoteID", "UpdatedAt", "ConcurrencyToken").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("quote request", aggregate.ID().String())
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a quote request by ID.
func (r *GormQuoteRequestRepository) Get(ctx context.Context, id kernel.UUID) (*quoterequest.QuoteRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QuoteRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingExpiredBy retrieves the pending requests whose expiry moment
// is at or before the given time.
func (r *GormQuoteRequestRepository) GetAllPendingExpiredBy(
	ctx context.Context,
	moment time.Time,
) ([]*quoterequest.QuoteRequest, error) {
	var dtos []QuoteRequestDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND expires_at IS NOT NULL AND expires_at <= ?", int(quoterequest.Pending), moment).
		Error; err != nil {
		return nil, err
	}

	requests := make([]*quoterequest.QuoteRequest, 0, len(dtos))
	for _, dto := range dtos {
		request, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}
