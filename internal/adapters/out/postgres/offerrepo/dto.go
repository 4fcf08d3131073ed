// Package offerrepo provides data transfer objects and mapping functions for
// offer persistence, including the offered items.
package offerrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offer aggregates.
// The active window and status columns carry the names the specification
// pushdown expects.
type OfferDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title            string    `gorm:"type:varchar(200);not null"`
	TitleAr          string    `gorm:"type:varchar(200)"`
	Description      string    `gorm:"type:varchar(2000)"`
	DescriptionAr    string    `gorm:"type:varchar(2000)"`
	ActiveFrom       time.Time `gorm:"not null;index"`
	ActiveTo         time.Time `gorm:"not null;index"`
	Status           int       `gorm:"not null;index"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        *time.Time
	ConcurrencyToken string         `gorm:"type:varchar(36);not null"`
	Items            []OfferItemDTO `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "offers".
func (OfferDTO) TableName() string {
	return "offers"
}

// OfferItemDTO represents one product included in an offer.
type OfferItemDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OfferID          uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_offer_product"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_offer_product"`
	Quantity         int       `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        *time.Time
	ConcurrencyToken string `gorm:"type:varchar(36);not null"`
}

// TableName overrides GORM's default naming convention to use "offer_items".
func (OfferItemDTO) TableName() string {
	return "offer_items"
}

// fromDomain converts an offer aggregate to its database representation.
func fromDomain(aggregate *offer.Offer) OfferDTO {
	items := make([]OfferItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OfferItemDTO{
			ID:               item.ID().Bytes(),
			OfferID:          aggregate.ID().Bytes(),
			ProductID:        item.ProductID().Bytes(),
			Quantity:         item.Quantity(),
			CreatedAt:        item.CreatedAt(),
			UpdatedAt:        item.UpdatedAt(),
			ConcurrencyToken: item.ConcurrencyToken(),
		})
	}

	return OfferDTO{
		ID:               aggregate.ID().Bytes(),
		Title:            aggregate.Title(),
		TitleAr:          aggregate.TitleAr(),
		Description:      aggregate.Description(),
		DescriptionAr:    aggregate.DescriptionAr(),
		ActiveFrom:       aggregate.ActiveFrom(),
		ActiveTo:         aggregate.ActiveTo(),
		Status:           int(aggregate.Status()),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		ConcurrencyToken: aggregate.ConcurrencyToken(),
		Items:            items,
	}
}

// toDomain converts a database DTO to an offer aggregate using RestoreOffer.
func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*offer.OfferItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return offer.RestoreOffer(
		id,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ConcurrencyToken,
		dto.Title,
		dto.TitleAr,
		dto.Description,
		dto.DescriptionAr,
		dto.ActiveFrom,
		dto.ActiveTo,
		offer.Status(dto.Status),
		items,
	)
}

func itemToDomain(dto OfferItemDTO) (*offer.OfferItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	offerID, err := kernel.UUIDFromBytes(dto.OfferID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return offer.RestoreOfferItem(
		id,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ConcurrencyToken,
		offerID,
		productID,
		dto.Quantity,
	)
}
