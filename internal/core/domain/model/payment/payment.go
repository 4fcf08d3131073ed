package payment

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
	maxErrorCodeLength    = 50
	maxErrorMessageLength = 500
)

// maxAmount caps a single payment.
var maxAmount = decimal.NewFromInt(1_000_000)

// Domain errors for payment operations.
var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through NewPayment or RestorePayment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")
	// ErrAlreadyFailed is returned when marking a failed payment as succeeded.
	ErrAlreadyFailed = errs.NewDomainRuleViolationError("payment has already failed")
	// ErrAlreadySucceeded is returned when marking a succeeded payment as failed.
	ErrAlreadySucceeded = errs.NewDomainRuleViolationError("payment has already succeeded")
	// ErrTerminalState is returned by MarkPending once the payment reached a
	// terminal state.
	ErrTerminalState = errs.NewDomainRuleViolationError("payment is in a terminal state")
	// ErrGatewayRefRequired is returned by MarkSucceeded without a gateway
	// reference.
	ErrGatewayRefRequired = errs.NewDomainRuleViolationError("gateway reference is required")
	// ErrErrorCodeRequired is returned by MarkFailed without an error code.
	ErrErrorCodeRequired = errs.NewDomainRuleViolationError("error code is required")
	// ErrErrorCodeTooLong is returned when the error code exceeds 50 characters.
	ErrErrorCodeTooLong = errs.NewDomainRuleViolationError("error code cannot exceed 50 characters")
	// ErrErrorMessageTooLong is returned when the error message exceeds 500 characters.
	ErrErrorMessageTooLong = errs.NewDomainRuleViolationError("error message cannot exceed 500 characters")
)

// Payment is the aggregate root for one collection attempt against an order.
//
// The two terminal states are sticky: re-affirming the same outcome is a
// no-op that records no event and clears no field, while flipping to the
// opposite outcome is rejected. Success and failure fields are mutually
// exclusive; each terminal transition clears the other side's fields.
type Payment struct {
	kernel.Entity

	orderID      kernel.UUID
	amount       decimal.Decimal
	method       Method
	status       Status
	gatewayRef   string
	errorCode    string
	errorMessage string
	succeededAt  *time.Time
	failedAt     *time.Time

	guard guard.ConstructorGuard
}

// NewPayment opens a payment attempt for the given order.
// The amount must be positive and at most 1,000,000.
func NewPayment(orderID kernel.UUID, amount decimal.Decimal, method Method) (*Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if !amount.IsPositive() || amount.GreaterThan(maxAmount) {
		return nil, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0 (exclusive)", maxAmount.String())
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}

	p := &Payment{
		Entity:  kernel.NewEntity(),
		orderID: orderID,
		amount:  amount,
		method:  method,
		status:  Initiated,
		guard:   guard.NewConstructorGuard(),
	}
	p.RecordEvent(InitiatedEvent{
		EventBase: kernel.NewEventBase(),
		PaymentID: p.ID(),
		OrderID:   orderID,
		Amount:    amount,
		Method:    method,
	})
	return p, nil
}

// RestorePayment reconstructs a payment from persistence. No events are recorded.
func RestorePayment(
	id kernel.UUID,
	createdAt time.Time,
	updatedAt *time.Time,
	concurrencyToken string,
	orderID kernel.UUID,
	amount decimal.Decimal,
	method Method,
	status Status,
	gatewayRef string,
	errorCode string,
	errorMessage string,
	succeededAt *time.Time,
	failedAt *time.Time,
) (*Payment, error) {
	entity, err := kernel.RestoreEntity(id, createdAt, updatedAt, concurrencyToken)
	if err != nil {
		return nil, err
	}
	if err = orderID.Validate(); err != nil {
		return nil, err
	}
	if err = method.Validate(); err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	return &Payment{
		Entity:       entity,
		orderID:      orderID,
		amount:       amount,
		method:       method,
		status:       status,
		gatewayRef:   gatewayRef,
		errorCode:    errorCode,
		errorMessage: errorMessage,
		succeededAt:  succeededAt,
		failedAt:     failedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// OrderID returns the order the payment collects against.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the amount being collected.
func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

// Method returns the payment instrument.
func (p *Payment) Method() Method {
	return p.method
}

// Status returns the current lifecycle status.
func (p *Payment) Status() Status {
	return p.status
}

// GatewayRef returns the gateway's reference for a succeeded payment,
// empty otherwise.
func (p *Payment) GatewayRef() string {
	return p.gatewayRef
}

// ErrorCode returns the gateway's error code for a failed payment,
// empty otherwise.
func (p *Payment) ErrorCode() string {
	return p.errorCode
}

// ErrorMessage returns the gateway's error message for a failed payment,
// empty otherwise.
func (p *Payment) ErrorMessage() string {
	return p.errorMessage
}

// SucceededAt returns when the payment succeeded, nil otherwise.
func (p *Payment) SucceededAt() *time.Time {
	return p.succeededAt
}

// FailedAt returns when the payment failed, nil otherwise.
func (p *Payment) FailedAt() *time.Time {
	return p.failedAt
}

// IsCompleted reports whether the payment reached a terminal state.
func (p *Payment) IsCompleted() bool {
	return p.status.IsTerminal()
}

// IsSuccessful reports whether the payment succeeded.
func (p *Payment) IsSuccessful() bool {
	return p.status == Succeeded
}

// IsFailed reports whether the payment failed.
func (p *Payment) IsFailed() bool {
	return p.status == Failed
}

// MarkPending records that the gateway accepted the payment.
// Rejected once the payment is in a terminal state.
func (p *Payment) MarkPending() error {
	if p.status.IsTerminal() {
		return ErrTerminalState
	}
	if p.status == Pending {
		return nil
	}

	p.status = Pending
	p.MarkModified()
	return nil
}

// MarkSucceeded records the gateway's success outcome and clears any prior
// failure fields. Re-affirming a succeeded payment is a no-op; a failed
// payment can never be flipped to succeeded.
func (p *Payment) MarkSucceeded(gatewayRef string) error {
	if p.status == Succeeded {
		return nil
	}
	if p.status == Failed {
		return ErrAlreadyFailed
	}

	gatewayRef = strings.TrimSpace(gatewayRef)
	if gatewayRef == "" {
		return ErrGatewayRefRequired
	}

	now := time.Now().UTC()
	p.status = Succeeded
	p.gatewayRef = gatewayRef
	p.succeededAt = &now
	p.errorCode = ""
	p.errorMessage = ""
	p.failedAt = nil
	p.MarkModified()
	p.RecordEvent(SucceededEvent{
		EventBase:  kernel.NewEventBase(),
		PaymentID:  p.ID(),
		OrderID:    p.orderID,
		GatewayRef: gatewayRef,
	})
	return nil
}

// MarkFailed records the gateway's failure outcome and clears any prior
// success fields. Re-affirming a failed payment is a no-op; a succeeded
// payment can never be flipped to failed.
func (p *Payment) MarkFailed(errorCode, errorMessage string) error {
	if p.status == Failed {
		return nil
	}
	if p.status == Succeeded {
		return ErrAlreadySucceeded
	}

	errorCode = strings.TrimSpace(errorCode)
	if errorCode == "" {
		return ErrErrorCodeRequired
	}
	if len(errorCode) > maxErrorCodeLength {
		return ErrErrorCodeTooLong
	}
	errorMessage = strings.TrimSpace(errorMessage)
	if len(errorMessage) > maxErrorMessageLength {
		return ErrErrorMessageTooLong
	}

	now := time.Now().UTC()
	p.status = Failed
	p.errorCode = errorCode
	p.errorMessage = errorMessage
	p.failedAt = &now
	p.gatewayRef = ""
	p.succeededAt = nil
	p.MarkModified()
	p.RecordEvent(FailedEvent{
		EventBase:    kernel.NewEventBase(),
		PaymentID:    p.ID(),
		OrderID:      p.orderID,
		ErrorCode:    errorCode,
		ErrorMessage: errorMessage,
	})
	return nil
}
