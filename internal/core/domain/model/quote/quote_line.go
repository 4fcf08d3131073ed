package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	minLineQuantity = 1
	maxLineQuantity = 10000
)

// QuoteLine is a priced product line owned by a Quote. The product snapshot
// is free-form text capturing the product as it was at pricing time, so the
// quote stays readable after catalog changes.
type QuoteLine struct {
	kernel.Entity

	quoteID         kernel.UUID
	productID       kernel.UUID
	productSnapshot string
	quantity        int
	unitPrice       decimal.Decimal
}

func newQuoteLine(
	quoteID kernel.UUID,
	productID kernel.UUID,
	productSnapshot string,
	quantity int,
	unitPrice decimal.Decimal,
) (*QuoteLine, error) {
	if err := validateLineQuantity(quantity); err != nil {
		return nil, err
	}
	if err := validateUnitPrice(unitPrice); err != nil {
		return nil, err
	}

	return &QuoteLine{
		Entity:          kernel.NewEntity(),
		quoteID:         quoteID,
		productID:       productID,
		productSnapshot: productSnapshot,
		quantity:        quantity,
		unitPrice:       unitPrice,
	}, nil
}

// RestoreQuoteLine reconstructs a quote line from persistence.
func RestoreQuoteLine(
	id kernel.UUID,
	createdAt time.Time,
	updatedAt *time.Time,
	concurrencyToken string,
	quoteID kernel.UUID,
	productID kernel.UUID,
	productSnapshot string,
	quantity int,
	unitPrice decimal.Decimal,
) (*QuoteLine, error) {
	entity, err := kernel.RestoreEntity(id, createdAt, updatedAt, concurrencyToken)
	if err != nil {
		return nil, err
	}
	if err = quoteID.Validate(); err != nil {
		return nil, err
	}
	if err = productID.Validate(); err != nil {
		return nil, err
	}
	if err = validateLineQuantity(quantity); err != nil {
		return nil, err
	}
	if err = validateUnitPrice(unitPrice); err != nil {
		return nil, err
	}

	return &QuoteLine{
		Entity:          entity,
		quoteID:         quoteID,
		productID:       productID,
		productSnapshot: productSnapshot,
		quantity:        quantity,
		unitPrice:       unitPrice,
	}, nil
}

// QuoteID returns the owning quote.
func (l *QuoteLine) QuoteID() kernel.UUID {
	return l.quoteID
}

// ProductID returns the priced product.
func (l *QuoteLine) ProductID() kernel.UUID {
	return l.productID
}

// ProductSnapshot returns the textual product capture taken at pricing time.
func (l *QuoteLine) ProductSnapshot() string {
	return l.productSnapshot
}

// Quantity returns the quoted quantity.
func (l *QuoteLine) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit.
func (l *QuoteLine) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Subtotal returns quantity × unit price.
func (l *QuoteLine) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l *QuoteLine) updateQuantity(quantity int) error {
	if err := validateLineQuantity(quantity); err != nil {
		return err
	}

	l.quantity = quantity
	l.MarkModified()
	return nil
}

func (l *QuoteLine) updateUnitPrice(unitPrice decimal.Decimal) error {
	if err := validateUnitPrice(unitPrice); err != nil {
		return err
	}

	l.unitPrice = unitPrice
	l.MarkModified()
	return nil
}

func validateLineQuantity(quantity int) error {
	if quantity < minLineQuantity || quantity > maxLineQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, minLineQuantity, maxLineQuantity)
	}
	return nil
}

func validateUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidError("unit price cannot be negative")
	}
	return nil
}
