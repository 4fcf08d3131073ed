// Package quoterepo provides data transfer objects and mapping functions for
// quote persistence, including the priced line items.
package quoterepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/quote"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteDTO represents the database structure for persisting quote aggregates.
// Monetary columns use numeric to keep decimal precision.
type QuoteDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	QuoteRequestID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	OwnerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Notes            string          `gorm:"type:varchar(1000)"`
	Tax              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Shipping         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalBeforeTax   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ExpiresAt        time.Time       `gorm:"not null;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        *time.Time
	ConcurrencyToken string         `gorm:"type:varchar(36);not null"`
	Lines            []QuoteLineDTO `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "quotes".
func (QuoteDTO) TableName() string {
	return "quotes"
}

// QuoteLineDTO represents one priced line of a quote.
type QuoteLineDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	QuoteID          uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_quote_product"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_quote_product"`
	ProductSnapshot  string          `gorm:"type:text;not null"`
	Quantity         int             `gorm:"not null"`
	UnitPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        *time.Time
	ConcurrencyToken string `gorm:"type:varchar(36);not null"`
}

// TableName overrides GORM's default naming convention to use "quote_lines".
func (QuoteLineDTO) TableName() string {
	return "quote_lines"
}

// fromDomain converts a quote aggregate to its database representation.
func fromDomain(aggregate *quote.Quote) QuoteDTO {
	lines := make([]QuoteLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, QuoteLineDTO{
			ID:               line.ID().Bytes(),
			QuoteID:          aggregate.ID().Bytes(),
			ProductID:        line.ProductID().Bytes(),
			ProductSnapshot:  line.ProductSnapshot(),
			Quantity:         line.Quantity(),
			UnitPrice:        line.UnitPrice(),
			CreatedAt:        line.CreatedAt(),
			UpdatedAt:        line.UpdatedAt(),
			ConcurrencyToken: line.ConcurrencyToken(),
		})
	}

	return QuoteDTO{
		ID:               aggregate.ID().Bytes(),
		QuoteRequestID:   aggregate.QuoteRequestID().Bytes(),
		OwnerID:          aggregate.OwnerID().Bytes(),
		Notes:            aggregate.Notes(),
		Tax:              aggregate.Tax(),
		Shipping:         aggregate.Shipping(),
		TotalBeforeTax:   aggregate.TotalBeforeTax(),
		Total:            aggregate.Total(),
		ExpiresAt:        aggregate.ExpiresAt(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		ConcurrencyToken: aggregate.ConcurrencyToken(),
		Lines:            lines,
	}
}

// toDomain converts a database DTO to a quote aggregate using RestoreQuote.
func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	quoteRequestID, err := kernel.UUIDFromBytes(dto.QuoteRequestID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*quote.QuoteLine, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return quote.RestoreQuote(
		id,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ConcurrencyToken,
		quoteRequestID,
		ownerID,
		dto.Notes,
		dto.Tax,
		dto.Shipping,
		dto.TotalBeforeTax,
		dto.Total,
		dto.ExpiresAt,
		lines,
	)
}

func lineToDomain(dto QuoteLineDTO) (*quote.QuoteLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	quoteID, err := kernel.UUIDFromBytes(dto.QuoteID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return quote.RestoreQuoteLine(
		id,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ConcurrencyToken,
		quoteID,
		productID,
		dto.ProductSnapshot,
		dto.Quantity,
		dto.UnitPrice,
	)
}
