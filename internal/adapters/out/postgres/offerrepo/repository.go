package offerrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/specification"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new offer to the database, including its items.
func (r *GormOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
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

// Update saves an existing offer with a compare-and-swap on the concurrency
// token the aggregate was loaded with. Items are replaced wholesale.
func (r *GormOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OfferDTO{}).
		Where("id = ? AND concurrency_token = ?", dto.ID, aggregate.TokenAsLoaded()).
		Select(
			"Title", "TitleAr", "Description", "DescriptionAr",
			"ActiveFrom", "ActiveTo", "Status", "UpdatedAt", "ConcurrencyToken",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("offer", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).Where("offer_id = ?", dto.ID).Delete(&OfferItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an offer by ID, with all items.
func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveEndedBy retrieves the active offers whose window closed at or
// before the given time. Used by the expiry sweep.
func (r *GormOfferRepository) GetAllActiveEndedBy(ctx context.Context, moment time.Time) ([]*offer.Offer, error) {
	var dtos []OfferDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Find(&dtos, "status = ? AND active_to <= ?", int(offer.Active), moment).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllMatching retrieves offers satisfying the given specification. The
// predicate is compiled into a where-clause and pushed down to the database.
func (r *GormOfferRepository) GetAllMatching(
	ctx context.Context,
	spec specification.Predicate,
) ([]*offer.Offer, error) {
	clause, args, err := spec.ToSQL()
	if err != nil {
		return nil, err
	}

	var dtos []OfferDTO
	if err = r.db.WithContext(ctx).Preload("Items").Where(clause, args...).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OfferDTO) ([]*offer.Offer, error) {
	offers := make([]*offer.Offer, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, aggregate)
	}

	return offers, nil
}
