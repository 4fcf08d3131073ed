package quote

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// defaultExpiryWindow is how long a quote stays open for acceptance when
	// no explicit expiry date is supplied.
	defaultExpiryWindow = 14 * 24 * time.Hour

	maxNotesLength = 1000
)

// Domain errors for quote operations.
var (
	// ErrQuoteIsNotConstructed is returned when a Quote instance was not
	// created through NewQuote or RestoreQuote.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")
	// ErrQuoteExpired is returned by every mutator once the quote's expiry
	// moment has passed.
	ErrQuoteExpired = errs.NewDomainRuleViolationError("quote has expired")
	// ErrExpiryDateNotInFuture is returned at creation when the supplied
	// expiry date is not strictly after now.
	ErrExpiryDateNotInFuture = errs.NewDomainRuleViolationError("expiry date must be in the future")
	// ErrDuplicateProductLine is returned when adding a line for a product
	// the quote already prices.
	ErrDuplicateProductLine = errs.NewDomainRuleViolationError("quote already has a line for this product")
	// ErrProductLineNotFound is returned when operating on a line the quote
	// does not hold.
	ErrProductLineNotFound = errs.NewDomainRuleViolationError("product line not found in quote")
	// ErrQuoteHasNoLines is returned when issuing a quote without lines.
	ErrQuoteHasNoLines = errs.NewDomainRuleViolationError("cannot issue quote without lines")
	// ErrNotesTooLong is returned when notes exceed the length cap.
	ErrNotesTooLong = errs.NewDomainRuleViolationError("notes cannot exceed 1000 characters")
	// ErrChargeIsNegative is returned when tax or shipping is negative.
	ErrChargeIsNegative = errs.NewDomainRuleViolationError("tax and shipping cannot be negative")
)

// Quote is the aggregate root for a priced answer to a quote request.
//
// There is no status field. The only closing signal is time: every mutator is
// guarded by IsExpired against the wall clock, and Expire force-sets the
// expiry moment to now. Totals are derived: recalculateTotals is the single
// writer of TotalBeforeTax and Total, so the recomputation law
// Total == TotalBeforeTax + Tax + Shipping holds after any mutation sequence.
type Quote struct {
	kernel.Entity

	quoteRequestID kernel.UUID
	ownerID        kernel.UUID
	notes          string
	tax            decimal.Decimal
	shipping       decimal.Decimal
	totalBeforeTax decimal.Decimal
	total          decimal.Decimal
	expiresAt      time.Time
	lines          []*QuoteLine

	guard guard.ConstructorGuard
}

// NewQuote opens an empty quote for the given request. A zero expiresAt
// selects the default window; an explicit one must be strictly in the future.
func NewQuote(
	quoteRequestID kernel.UUID,
	ownerID kernel.UUID,
	expiresAt time.Time,
	notes string,
) (*Quote, error) {
	if err := quoteRequestID.Validate(); err != nil {
		return nil, err
	}
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if expiresAt.IsZero() {
		expiresAt = now.Add(defaultExpiryWindow)
	} else if !expiresAt.After(now) {
		return nil, ErrExpiryDateNotInFuture
	}

	trimmedNotes := strings.TrimSpace(notes)
	if len(trimmedNotes) > maxNotesLength {
		return nil, ErrNotesTooLong
	}

	q := &Quote{
		Entity:         kernel.NewEntity(),
		quoteRequestID: quoteRequestID,
		ownerID:        ownerID,
		notes:          trimmedNotes,
		tax:            decimal.Zero,
		shipping:       decimal.Zero,
		totalBeforeTax: decimal.Zero,
		total:          decimal.Zero,
		expiresAt:      expiresAt.UTC(),
		guard:          guard.NewConstructorGuard(),
	}
	q.RecordEvent(CreatedEvent{
		EventBase:      kernel.NewEventBase(),
		QuoteID:        q.ID(),
		QuoteRequestID: quoteRequestID,
		OwnerID:        ownerID,
	})
	return q, nil
}

// RestoreQuote reconstructs a quote aggregate from persistence, including its
// owned lines. No events are recorded and totals are not recomputed.
func RestoreQuote(
	id kernel.UUID,
	createdAt time.Time,
	updatedAt *time.Time,
	concurrencyToken string,
	quoteRequestID kernel.UUID,
	ownerID kernel.UUID,
	notes string,
	tax decimal.Decimal,
	shipping decimal.Decimal,
	totalBeforeTax decimal.Decimal,
	total decimal.Decimal,
	expiresAt time.Time,
	lines []*QuoteLine,
) (*Quote, error) {
	entity, err := kernel.RestoreEntity(id, createdAt, updatedAt, concurrencyToken)
	if err != nil {
		return nil, err
	}
	if err = quoteRequestID.Validate(); err != nil {
		return nil, err
	}
	if err = ownerID.Validate(); err != nil {
		return nil, err
	}

	return &Quote{
		Entity:         entity,
		quoteRequestID: quoteRequestID,
		ownerID:        ownerID,
		notes:          notes,
		tax:            tax,
		shipping:       shipping,
		totalBeforeTax: totalBeforeTax,
		total:          total,
		expiresAt:      expiresAt,
		lines:          lines,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Quote was created through a constructor.
func (q *Quote) Validate() error {
	if q == nil {
		return ErrQuoteIsNotConstructed
	}
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

// QuoteRequestID returns the request this quote answers.
func (q *Quote) QuoteRequestID() kernel.UUID {
	return q.quoteRequestID
}

// OwnerID returns the customer the quote is addressed to.
func (q *Quote) OwnerID() kernel.UUID {
	return q.ownerID
}

// Notes returns the back-office notes, empty if none.
func (q *Quote) Notes() string {
	return q.notes
}

// Tax returns the tax charge.
func (q *Quote) Tax() decimal.Decimal {
	return q.tax
}

// Shipping returns the shipping charge.
func (q *Quote) Shipping() decimal.Decimal {
	return q.shipping
}

// TotalBeforeTax returns the sum of line subtotals.
func (q *Quote) TotalBeforeTax() decimal.Decimal {
	return q.totalBeforeTax
}

// Total returns TotalBeforeTax + Tax + Shipping.
func (q *Quote) Total() decimal.Decimal {
	return q.total
}

// ExpiresAt returns the moment the quote stops accepting mutations.
func (q *Quote) ExpiresAt() time.Time {
	return q.expiresAt
}

// Lines returns a copy of the quote's lines in insertion order.
func (q *Quote) Lines() []*QuoteLine {
	lines := make([]*QuoteLine, len(q.lines))
	copy(lines, q.lines)
	return lines
}

// Line returns the line for the given product, nil if absent.
func (q *Quote) Line(productID kernel.UUID) *QuoteLine {
	return q.findLine(productID)
}

// IsExpired reports whether the quote's expiry moment has passed at the
// given time.
func (q *Quote) IsExpired(now time.Time) bool {
	return !now.Before(q.expiresAt)
}

// AddLine prices a product on the quote. Duplicate products are rejected.
func (q *Quote) AddLine(
	productID kernel.UUID,
	productSnapshot string,
	quantity int,
	unitPrice decimal.Decimal,
) error {
	if q.IsExpired(time.Now().UTC()) {
		return ErrQuoteExpired
	}
	if err := productID.Validate(); err != nil {
		return err
	}
	if q.findLine(productID) != nil {
		return ErrDuplicateProductLine
	}

	line, err := newQuoteLine(q.ID(), productID, productSnapshot, quantity, unitPrice)
	if err != nil {
		return err
	}

	q.lines = append(q.lines, line)
	q.recalculateTotals()
	return nil
}

// RemoveLine drops the line for the given product.
func (q *Quote) RemoveLine(productID kernel.UUID) error {
	if q.IsExpired(time.Now().UTC()) {
		return ErrQuoteExpired
	}

	for idx, line := range q.lines {
		if line.ProductID().IsEqual(productID) {
			q.lines = append(q.lines[:idx], q.lines[idx+1:]...)
			q.recalculateTotals()
			return nil
		}
	}

	return ErrProductLineNotFound
}

// UpdateLinePrice replaces the unit price of an existing line.
func (q *Quote) UpdateLinePrice(productID kernel.UUID, unitPrice decimal.Decimal) error {
	if q.IsExpired(time.Now().UTC()) {
		return ErrQuoteExpired
	}

	line := q.findLine(productID)
	if line == nil {
		return ErrProductLineNotFound
	}

	if err := line.updateUnitPrice(unitPrice); err != nil {
		return err
	}

	q.recalculateTotals()
	return nil
}

// UpdateLineQuantity replaces the quantity of an existing line.
func (q *Quote) UpdateLineQuantity(productID kernel.UUID, quantity int) error {
	if q.IsExpired(time.Now().UTC()) {
		return ErrQuoteExpired
	}

	line := q.findLine(productID)
	if line == nil {
		return ErrProductLineNotFound
	}

	if err := line.updateQuantity(quantity); err != nil {
		return err
	}

	q.recalculateTotals()
	return nil
}

// UpdateTaxAndShipping replaces both charges at once.
func (q *Quote) UpdateTaxAndShipping(tax, shipping decimal.Decimal) error {
	if q.IsExpired(time.Now().UTC()) {
		return ErrQuoteExpired
	}
	if tax.IsNegative() || shipping.IsNegative() {
		return ErrChargeIsNegative
	}

	q.tax = tax
	q.shipping = shipping
	q.recalculateTotals()
	return nil
}

// UpdateNotes replaces the quote notes. Whitespace-only input clears them.
func (q *Quote) UpdateNotes(notes string) error {
	if q.IsExpired(time.Now().UTC()) {
		return ErrQuoteExpired
	}

	trimmed := strings.TrimSpace(notes)
	if len(trimmed) > maxNotesLength {
		return ErrNotesTooLong
	}

	q.notes = trimmed
	q.MarkModified()
	return nil
}

// Issue signals that the quote was handed to the buyer. It requires at least
// one line and an open quote, and changes no persisted state beyond the event.
func (q *Quote) Issue() error {
	if q.IsExpired(time.Now().UTC()) {
		return ErrQuoteExpired
	}
	if len(q.lines) == 0 {
		return ErrQuoteHasNoLines
	}

	q.RecordEvent(IssuedEvent{
		EventBase: kernel.NewEventBase(),
		QuoteID:   q.ID(),
		OwnerID:   q.ownerID,
		Total:     q.total,
	})
	return nil
}

// Expire force-closes the quote by setting its expiry moment to now.
// Expiring an already expired quote is a no-op.
func (q *Quote) Expire() error {
	now := time.Now().UTC()
	if q.IsExpired(now) {
		return nil
	}

	q.expiresAt = now
	q.MarkModified()
	q.RecordEvent(ExpiredEvent{
		EventBase: kernel.NewEventBase(),
		QuoteID:   q.ID(),
		OwnerID:   q.ownerID,
	})
	return nil
}

func (q *Quote) findLine(productID kernel.UUID) *QuoteLine {
	for _, line := range q.lines {
		if line.ProductID().IsEqual(productID) {
			return line
		}
	}
	return nil
}

// recalculateTotals is the only writer of the derived totals.
func (q *Quote) recalculateTotals() {
	totalBeforeTax := decimal.Zero
	for _, line := range q.lines {
		totalBeforeTax = totalBeforeTax.Add(line.Subtotal())
	}

	q.totalBeforeTax = totalBeforeTax
	q.total = totalBeforeTax.Add(q.tax).Add(q.shipping)
	q.MarkModified()
}
