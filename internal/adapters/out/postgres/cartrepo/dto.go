// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. It implements the repository pattern for the cart
// aggregate, converting between domain entities and database rows.
package cartrepo

import (
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
type CartDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Notes            string    `gorm:"type:varchar(1000)"`
	Locked           bool      `gorm:"not null"`
	LastTouchedAt    time.Time `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        *time.Time
	ConcurrencyToken string        `gorm:"type:varchar(36);not null"`
	Items            []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "carts".
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one cart line. Lines link to their cart via foreign
// key; a product appears at most once per cart.
type CartItemDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartID           uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_cart_product"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_product"`
	Quantity         int       `gorm:"not null"`
	SelectedSpecs    string    `gorm:"type:text"`
	AddedAt          time.Time `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        *time.Time
	ConcurrencyToken string `gorm:"type:varchar(36);not null"`
}

// TableName overrides GORM's default naming convention to use "cart_items".
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, CartItemDTO{
			ID:               item.ID().Bytes(),
			CartID:           aggregate.ID().Bytes(),
			ProductID:        item.ProductID().Bytes(),
			Quantity:         item.Quantity(),
			SelectedSpecs:    item.SelectedSpecs().String(),
			AddedAt:          item.AddedAt(),
			CreatedAt:        item.CreatedAt(),
			UpdatedAt:        item.UpdatedAt(),
			ConcurrencyToken: item.ConcurrencyToken(),
		})
	}

	return CartDTO{
		ID:               aggregate.ID().Bytes(),
		OwnerID:          aggregate.OwnerID().Bytes(),
		Notes:            aggregate.Notes(),
		Locked:           aggregate.IsLocked(),
		LastTouchedAt:    aggregate.LastTouchedAt(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		ConcurrencyToken: aggregate.ConcurrencyToken(),
		Items:            items,
	}
}

// toDomain converts a database DTO to a cart aggregate using RestoreCart.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*cart.CartItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return cart.RestoreCart(
		id,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ConcurrencyToken,
		ownerID,
		dto.Notes,
		dto.LastTouchedAt,
		dto.Locked,
		items,
	)
}

func itemToDomain(dto CartItemDTO) (*cart.CartItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cartID, err := kernel.UUIDFromBytes(dto.CartID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var specs kernel.JsonSpec
	if dto.SelectedSpecs != "" {
		specs, err = kernel.NewJsonSpec(dto.SelectedSpecs)
		if err != nil {
			return nil, err
		}
	}

	return cart.RestoreCartItem(
		id,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ConcurrencyToken,
		cartID,
		productID,
		dto.Quantity,
		specs,
		dto.AddedAt,
	)
}
