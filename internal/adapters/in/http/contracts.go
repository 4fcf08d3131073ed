package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddCartItemRequest adds a product to the caller's cart.
type AddCartItemRequest struct {
	ProductID     string `json:"productId"`
	Quantity      int    `json:"quantity"`
	SelectedSpecs string `json:"selectedSpecs"`
}

// UpdateCartNotesRequest replaces the free-form notes on the cart.
type UpdateCartNotesRequest struct {
	Notes string `json:"notes"`
}

// CartItem is one line of a cart in read responses.
type CartItem struct {
	ProductID     uuid.UUID `json:"productId"`
	Quantity      int       `json:"quantity"`
	SelectedSpecs string    `json:"selectedSpecs"`
	AddedAt       time.Time `json:"addedAt"`
}

// Cart is the read model of a customer's cart.
type Cart struct {
	ID         uuid.UUID  `json:"id"`
	OwnerID    uuid.UUID  `json:"ownerId"`
	Locked     bool       `json:"locked"`
	Notes      string     `json:"notes"`
	TotalItems int        `json:"totalItems"`
	Items      []CartItem `json:"items"`
}

// CreateQuoteRequestRequest opens a quote request from the caller's cart.
type CreateQuoteRequestRequest struct {
	OwnerID string `json:"ownerId"`
	Notes   string `json:"notes"`
}

// QuoteRequest is the read model of a pending quote request.
type QuoteRequest struct {
	ID         uuid.UUID  `json:"id"`
	OwnerID    uuid.UUID  `json:"ownerId"`
	ItemsCount int        `json:"itemsCount"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"createdAt"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}

// PricedLine is one priced product in a back-office pricing request.
type PricedLine struct {
	ProductID       string          `json:"productId"`
	ProductSnapshot string          `json:"productSnapshot"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
}

// PriceQuoteRequestRequest turns a pending quote request into an issued quote.
type PriceQuoteRequestRequest struct {
	Lines     []PricedLine    `json:"lines"`
	Tax       decimal.Decimal `json:"tax"`
	Shipping  decimal.Decimal `json:"shipping"`
	ExpiresAt *time.Time      `json:"expiresAt,omitempty"`
	Notes     string          `json:"notes"`
}

// CreateOrderRequest places an order for an accepted quote.
type CreateOrderRequest struct {
	QuoteID string `json:"quoteId"`
}

// RegisterDepositRequest records a confirmed gateway payment as the deposit.
type RegisterDepositRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	GatewayRef string          `json:"gatewayRef"`
}

// ConfirmOrderRequest attaches the national ID image and confirms the order.
type ConfirmOrderRequest struct {
	NationalIDImageRef string `json:"nationalIdImageRef"`
}

// ShipOrderRequest marks the order shipped with a carrier tracking number.
type ShipOrderRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

// CancelOrderRequest cancels the order with a mandatory reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// Order is the read model of an order in owner listings.
type Order struct {
	ID             uuid.UUID       `json:"id"`
	QuoteID        uuid.UUID       `json:"quoteId"`
	Status         string          `json:"status"`
	PaymentStatus  string          `json:"paymentStatus"`
	QuoteTotal     decimal.Decimal `json:"quoteTotal"`
	DepositAmount  decimal.Decimal `json:"depositAmount"`
	TrackingNumber string          `json:"trackingNumber,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}
