package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const maxCancellationReasonLength = 500

// depositRate is the fraction of the quote total due up front.
var depositRate = decimal.RequireFromString("0.10")

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrQuoteTotalNotPositive is returned at creation when the quote total
	// is zero or negative.
	ErrQuoteTotalNotPositive = errs.NewDomainRuleViolationError("quote total must be positive")
	// ErrDepositNotPaid is returned by Confirm while the deposit payment has
	// not succeeded.
	ErrDepositNotPaid = errs.NewDomainRuleViolationError("deposit must be paid before confirmation")
	// ErrNationalIDRequired is returned by Confirm without an identity
	// document reference.
	ErrNationalIDRequired = errs.NewDomainRuleViolationError("national ID image reference is required")
	// ErrCancellationReasonRequired is returned by Cancel without a reason.
	ErrCancellationReasonRequired = errs.NewDomainRuleViolationError("cancellation reason is required")
	// ErrCancellationReasonTooLong is returned when the reason exceeds the
	// length cap.
	ErrCancellationReasonTooLong = errs.NewDomainRuleViolationError(
		"cancellation reason cannot exceed 500 characters")
	// ErrTrackingOnlyWhileShipped is returned by UpdateTrackingNumber outside
	// the Shipped status.
	ErrTrackingOnlyWhileShipped = errs.NewDomainRuleViolationError(
		"tracking number can only be updated while shipped")
)

// Order is the aggregate root for a purchase created from an accepted quote.
//
// DepositAmount is fixed at creation to round(quoteTotal × 0.10, 2) and never
// changes through any transition. Stage transitions require the exact
// predecessor status; Cancel is the only branch and is blocked solely from
// Delivered.
type Order struct {
	kernel.Entity

	ownerID            kernel.UUID
	quoteID            kernel.UUID
	quoteTotal         decimal.Decimal
	depositAmount      decimal.Decimal
	status             Status
	paymentStatus      PaymentStatus
	nationalIDImageRef string
	trackingNumber     string
	cancellationReason string
	depositPaidAt      *time.Time
	confirmedAt        *time.Time
	processingAt       *time.Time
	shippedAt          *time.Time
	deliveredAt        *time.Time
	cancelledAt        *time.Time

	guard guard.ConstructorGuard
}

// NewOrder opens an order from an accepted quote. The deposit is fixed here
// as round(quoteTotal × 0.10, 2).
func NewOrder(ownerID kernel.UUID, quoteID kernel.UUID, quoteTotal decimal.Decimal) (*Order, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}
	if err := quoteID.Validate(); err != nil {
		return nil, err
	}
	if !quoteTotal.IsPositive() {
		return nil, ErrQuoteTotalNotPositive
	}

	depositAmount := quoteTotal.Mul(depositRate).Round(2)

	o := &Order{
		Entity:        kernel.NewEntity(),
		ownerID:       ownerID,
		quoteID:       quoteID,
		quoteTotal:    quoteTotal,
		depositAmount: depositAmount,
		status:        PendingDeposit,
		paymentStatus: PaymentPending,
		guard:         guard.NewConstructorGuard(),
	}
	o.RecordEvent(CreatedEvent{
		EventBase:     kernel.NewEventBase(),
		OrderID:       o.ID(),
		OwnerID:       ownerID,
		QuoteID:       quoteID,
		QuoteTotal:    quoteTotal,
		DepositAmount: depositAmount,
	})
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. No events are recorded.
func RestoreOrder(
	id kernel.UUID,
	createdAt time.Time,
	updatedAt *time.Time,
	concurrencyToken string,
	ownerID kernel.UUID,
	quoteID kernel.UUID,
	quoteTotal decimal.Decimal,
	depositAmount decimal.Decimal,
	status Status,
	paymentStatus PaymentStatus,
	nationalIDImageRef string,
	trackingNumber string,
	cancellationReason string,
	depositPaidAt *time.Time,
	confirmedAt *time.Time,
	processingAt *time.Time,
	shippedAt *time.Time,
	deliveredAt *time.Time,
	cancelledAt *time.Time,
) (*Order, error) {
	entity, err := kernel.RestoreEntity(id, createdAt, updatedAt, concurrencyToken)
	if err != nil {
		return nil, err
	}
	if err = ownerID.Validate(); err != nil {
		return nil, err
	}
	if err = quoteID.Validate(); err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = paymentStatus.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		Entity:             entity,
		ownerID:            ownerID,
		quoteID:            quoteID,
		quoteTotal:         quoteTotal,
		depositAmount:      depositAmount,
		status:             status,
		paymentStatus:      paymentStatus,
		nationalIDImageRef: nationalIDImageRef,
		trackingNumber:     trackingNumber,
		cancellationReason: cancellationReason,
		depositPaidAt:      depositPaidAt,
		confirmedAt:        confirmedAt,
		processingAt:       processingAt,
		shippedAt:          shippedAt,
		deliveredAt:        deliveredAt,
		cancelledAt:        cancelledAt,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// OwnerID returns the buyer who placed the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// QuoteID returns the quote the order was created from.
func (o *Order) QuoteID() kernel.UUID {
	return o.quoteID
}

// QuoteTotal returns the accepted quote's total.
func (o *Order) QuoteTotal() decimal.Decimal {
	return o.quoteTotal
}

// DepositAmount returns the up-front deposit, fixed at creation.
func (o *Order) DepositAmount() decimal.Decimal {
	return o.depositAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the deposit payment outcome tracked on the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// NationalIDImageRef returns the identity document reference recorded at
// confirmation, empty until then.
func (o *Order) NationalIDImageRef() string {
	return o.nationalIDImageRef
}

// TrackingNumber returns the shipment tracking number, empty if none.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// CancellationReason returns why the order was cancelled, empty otherwise.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// DepositPaidAt returns when the deposit was registered, nil until then.
func (o *Order) DepositPaidAt() *time.Time {
	return o.depositPaidAt
}

// ConfirmedAt returns when the order was confirmed, nil until then.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// ProcessingAt returns when preparation started, nil until then.
func (o *Order) ProcessingAt() *time.Time {
	return o.processingAt
}

// ShippedAt returns when the order shipped, nil until then.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// DeliveredAt returns when the order was delivered, nil until then.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns when the order was cancelled, nil otherwise.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CanBeCancelled reports whether Cancel would currently be accepted.
func (o *Order) CanBeCancelled() bool {
	return o.status != Delivered && o.status != Cancelled
}

// CanBeModified reports whether the order is still before the fulfillment
// pipeline, i.e. waiting for its deposit.
func (o *Order) CanBeModified() bool {
	return o.status == PendingDeposit
}

// RegisterDeposit records a deposit payment. The order must be waiting for
// its deposit and the amount must cover it; an insufficient amount fails with
// the shortfall in the error. The status stays PendingDeposit — Confirm is
// the transition out.
func (o *Order) RegisterDeposit(amount decimal.Decimal) error {
	if o.status != PendingDeposit {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to register a deposit", o.status.String()),
		)
	}
	if amount.LessThan(o.depositAmount) {
		shortfall := o.depositAmount.Sub(amount)
		return errs.NewDomainRuleViolationError(fmt.Sprintf(
			"deposit amount %s is insufficient, short by %s", amount.String(), shortfall.String()))
	}

	now := time.Now().UTC()
	o.paymentStatus = PaymentSucceeded
	o.depositPaidAt = &now
	o.MarkModified()
	o.RecordEvent(DepositRegisteredEvent{
		EventBase: kernel.NewEventBase(),
		OrderID:   o.ID(),
		OwnerID:   o.ownerID,
		Amount:    amount,
	})
	return nil
}

// Confirm moves the order out of PendingDeposit. It requires a succeeded
// deposit payment and records the national-ID image reference.
func (o *Order) Confirm(nationalIDImageRef string) error {
	nationalIDImageRef = strings.TrimSpace(nationalIDImageRef)
	if nationalIDImageRef == "" {
		return ErrNationalIDRequired
	}

	status, err := o.status.Confirm()
	if err != nil {
		return err
	}
	if o.paymentStatus != PaymentSucceeded {
		return ErrDepositNotPaid
	}

	now := time.Now().UTC()
	o.status = status
	o.nationalIDImageRef = nationalIDImageRef
	o.confirmedAt = &now
	o.MarkModified()
	o.RecordEvent(ConfirmedEvent{EventBase: kernel.NewEventBase(), OrderID: o.ID(), OwnerID: o.ownerID})
	return nil
}

// AdvanceToProcessing starts preparation of a confirmed order.
func (o *Order) AdvanceToProcessing() error {
	status, err := o.status.AdvanceToProcessing()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = status
	o.processingAt = &now
	o.MarkModified()
	o.RecordEvent(ProcessingEvent{EventBase: kernel.NewEventBase(), OrderID: o.ID(), OwnerID: o.ownerID})
	return nil
}

// Ship marks the order as shipped. The tracking number is optional and
// trimmed.
func (o *Order) Ship(trackingNumber string) error {
	status, err := o.status.Ship()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = status
	o.trackingNumber = strings.TrimSpace(trackingNumber)
	o.shippedAt = &now
	o.MarkModified()
	o.RecordEvent(ShippedEvent{
		EventBase:      kernel.NewEventBase(),
		OrderID:        o.ID(),
		OwnerID:        o.ownerID,
		TrackingNumber: o.trackingNumber,
	})
	return nil
}

// Deliver marks the order as received by the buyer.
func (o *Order) Deliver() error {
	status, err := o.status.Deliver()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = status
	o.deliveredAt = &now
	o.MarkModified()
	o.RecordEvent(DeliveredEvent{EventBase: kernel.NewEventBase(), OrderID: o.ID(), OwnerID: o.ownerID})
	return nil
}

// Cancel cancels the order with a required reason. Cancellation is blocked
// only from Delivered; cancelling an already cancelled order is a no-op.
func (o *Order) Cancel(reason string) error {
	if o.status == Cancelled {
		return nil
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrCancellationReasonRequired
	}
	if len(reason) > maxCancellationReasonLength {
		return ErrCancellationReasonTooLong
	}

	status, err := o.status.Cancel()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = status
	o.cancellationReason = reason
	o.cancelledAt = &now
	o.MarkModified()
	o.RecordEvent(CancelledEvent{
		EventBase: kernel.NewEventBase(),
		OrderID:   o.ID(),
		OwnerID:   o.ownerID,
		Reason:    reason,
	})
	return nil
}

// UpdateTrackingNumber replaces the tracking number of a shipped order.
func (o *Order) UpdateTrackingNumber(trackingNumber string) error {
	if o.status != Shipped {
		return ErrTrackingOnlyWhileShipped
	}

	o.trackingNumber = strings.TrimSpace(trackingNumber)
	o.MarkModified()
	return nil
}
