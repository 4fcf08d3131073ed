// Package http exposes the marketplace use cases over a REST API.
package http

import (
	"errors"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests by dispatching them to application use cases.
type Server struct {
	// Command handlers
	addCartItemHandler              commands.AddCartItemCommandHandler
	removeCartItemHandler           commands.RemoveCartItemCommandHandler
	updateCartNotesHandler          commands.UpdateCartNotesCommandHandler
	createQuoteRequestHandler       commands.CreateQuoteRequestCommandHandler
	priceQuoteRequestHandler        commands.PriceQuoteRequestCommandHandler
	createOrderHandler              commands.CreateOrderCommandHandler
	registerDepositHandler          commands.RegisterDepositCommandHandler
	confirmOrderHandler             commands.ConfirmOrderCommandHandler
	advanceOrderToProcessingHandler commands.AdvanceOrderToProcessingCommandHandler
	shipOrderHandler                commands.ShipOrderCommandHandler
	deliverOrderHandler             commands.DeliverOrderCommandHandler
	cancelOrderHandler              commands.CancelOrderCommandHandler

	// Query handlers
	getCustomerCartHandler         queries.GetCustomerCartQueryHandler
	getOrdersByOwnerHandler        queries.GetOrdersByOwnerQueryHandler
	getPendingQuoteRequestsHandler queries.GetPendingQuoteRequestsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	updateCartNotesHandler commands.UpdateCartNotesCommandHandler,
	createQuoteRequestHandler commands.CreateQuoteRequestCommandHandler,
	priceQuoteRequestHandler commands.PriceQuoteRequestCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	registerDepositHandler commands.RegisterDepositCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	advanceOrderToProcessingHandler commands.AdvanceOrderToProcessingCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getCustomerCartHandler queries.GetCustomerCartQueryHandler,
	getOrdersByOwnerHandler queries.GetOrdersByOwnerQueryHandler,
	getPendingQuoteRequestsHandler queries.GetPendingQuoteRequestsQueryHandler,
) *Server {
	return &Server{
		addCartItemHandler:              addCartItemHandler,
		removeCartItemHandler:           removeCartItemHandler,
		updateCartNotesHandler:          updateCartNotesHandler,
		createQuoteRequestHandler:       createQuoteRequestHandler,
		priceQuoteRequestHandler:        priceQuoteRequestHandler,
		createOrderHandler:              createOrderHandler,
		registerDepositHandler:          registerDepositHandler,
		confirmOrderHandler:             confirmOrderHandler,
		advanceOrderToProcessingHandler: advanceOrderToProcessingHandler,
		shipOrderHandler:                shipOrderHandler,
		deliverOrderHandler:             deliverOrderHandler,
		cancelOrderHandler:              cancelOrderHandler,
		getCustomerCartHandler:          getCustomerCartHandler,
		getOrdersByOwnerHandler:         getOrdersByOwnerHandler,
		getPendingQuoteRequestsHandler:  getPendingQuoteRequestsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/carts/:ownerId", s.GetCart)
	api.POST("/carts/:ownerId/items", s.AddCartItem)
	api.DELETE("/carts/:ownerId/items/:productId", s.RemoveCartItem)
	api.PUT("/carts/:ownerId/notes", s.UpdateCartNotes)

	api.POST("/quote-requests", s.CreateQuoteRequest)
	api.GET("/quote-requests/pending", s.GetPendingQuoteRequests)
	api.POST("/quote-requests/:id/price", s.PriceQuoteRequest)

	api.POST("/orders", s.CreateOrder)
	api.GET("/customers/:ownerId/orders", s.GetOrders)
	api.POST("/orders/:id/deposit", s.RegisterDeposit)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/processing", s.AdvanceOrderToProcessing)
	api.POST("/orders/:id/ship", s.ShipOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
}

// GetCart handles GET /api/v1/carts/:ownerId - retrieves the owner's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	ownerID, err := pathUUID(ctx, "ownerId")
	if err != nil {
		return badRequest(ctx, "Invalid owner id")
	}

	query, err := queries.NewGetCustomerCartQuery(ownerID)
	if err != nil {
		return badRequest(ctx, "Invalid cart query: "+err.Error())
	}

	cart, err := s.getCustomerCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleFailure(ctx, err, "Failed to retrieve cart")
	}

	items := make([]CartItem, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItem{
			ProductID:     item.ProductID.Bytes(),
			Quantity:      item.Quantity,
			SelectedSpecs: item.SelectedSpecs,
			AddedAt:       item.AddedAt,
		}
	}

	return ctx.JSON(http.StatusOK, Cart{
		ID:         cart.ID.Bytes(),
		OwnerID:    cart.OwnerID.Bytes(),
		Locked:     cart.Locked,
		Notes:      cart.Notes,
		TotalItems: cart.TotalItems,
		Items:      items,
	})
}

// AddCartItem handles POST /api/v1/carts/:ownerId/items - adds a product to the cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	ownerID, err := pathUUID(ctx, "ownerId")
	if err != nil {
		return badRequest(ctx, "Invalid owner id")
	}

	var request AddCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var specs kernel.JsonSpec
	if request.SelectedSpecs != "" {
		specs, err = kernel.NewJsonSpec(request.SelectedSpecs)
		if err != nil {
			return badRequest(ctx, "Invalid selected specs: "+err.Error())
		}
	}

	cmd, err := commands.NewAddCartItemCommand(ownerID, productID, request.Quantity, specs)
	if err != nil {
		return badRequest(ctx, "Invalid cart item data: "+err.Error())
	}

	if handleErr := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handleFailure(ctx, handleErr, "Failed to add cart item")
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveCartItem handles DELETE /api/v1/carts/:ownerId/items/:productId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	ownerID, err := pathUUID(ctx, "ownerId")
	if err != nil {
		return badRequest(ctx, "Invalid owner id")
	}

	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewRemoveCartItemCommand(ownerID, productID)
	if err != nil {
		return badRequest(ctx, "Invalid cart item data: "+err.Error())
	}

	if handleErr := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handleFailure(ctx, handleErr, "Failed to remove cart item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCartNotes handles PUT /api/v1/carts/:ownerId/notes.
func (s *Server) UpdateCartNotes(ctx echo.Context) error {
	ownerID, err := pathUUID(ctx, "ownerId")
	if err != nil {
		return badRequest(ctx, "Invalid owner id")
	}

	var request UpdateCartNotesRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCartNotesCommand(ownerID, request.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid notes: "+err.Error())
	}

	if handleErr := s.updateCartNotesHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handleFailure(ctx, handleErr, "Failed to update cart notes")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateQuoteRequest handles POST /api/v1/quote-requests - locks the cart and
// opens a quote request from its snapshot.
func (s *Server) CreateQuoteRequest(ctx echo.Context) error {
	var request CreateQuoteRequestRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(request.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id")
	}

	cmd, err := commands.NewCreateQuoteRequestCommand(ownerID, request.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid quote request data: "+err.Error())
	}

	if handleErr := s.createQuoteRequestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handleFailure(ctx, handleErr, "Failed to create quote request")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetPendingQuoteRequests handles GET /api/v1/quote-requests/pending - lists
// the back-office pricing queue.
func (s *Server) GetPendingQuoteRequests(ctx echo.Context) error {
	query := queries.NewGetPendingQuoteRequestsQuery()

	requests, err := s.getPendingQuoteRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleFailure(ctx, err, "Failed to retrieve pending quote requests")
	}

	response := make([]QuoteRequest, len(requests))
	for i, request := range requests {
		response[i] = QuoteRequest{
			ID:         request.ID.Bytes(),
			OwnerID:    request.OwnerID.Bytes(),
			ItemsCount: request.ItemsCount,
			Notes:      request.Notes,
			CreatedAt:  request.CreatedAt,
			ExpiresAt:  request.ExpiresAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PriceQuoteRequest handles POST /api/v1/quote-requests/:id/price - the back
// office answers a pending request with an itemized quote.
func (s *Server) PriceQuoteRequest(ctx echo.Context) error {
	quoteRequestID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid quote request id")
	}

	var request PriceQuoteRequestRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.PricedLine, len(request.Lines))
	for i, line := range request.Lines {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return badRequest(ctx, "Invalid product id in priced lines")
		}

		lines[i] = commands.PricedLine{
			ProductID:       productID,
			ProductSnapshot: line.ProductSnapshot,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
		}
	}

	var expiresAt time.Time
	if request.ExpiresAt != nil {
		expiresAt = *request.ExpiresAt
	}

	cmd, err := commands.NewPriceQuoteRequestCommand(
		quoteRequestID, lines, request.Tax, request.Shipping, expiresAt, request.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid pricing data: "+err.Error())
	}

	if handleErr := s.priceQuoteRequestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handleFailure(ctx, handleErr, "Failed to price quote request")
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateOrder handles POST /api/v1/orders - places an order for an accepted quote.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	quoteID, err := kernel.UUIDFromString(request.QuoteID)
	if err != nil {
		return badRequest(ctx, "Invalid quote id")
	}

	cmd, err := commands.NewCreateOrderCommand(quoteID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handleFailure(ctx, handleErr, "Failed to create order")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrders handles GET /api/v1/customers/:ownerId/orders - lists the owner's orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	ownerID, err := pathUUID(ctx, "ownerId")
	if err != nil {
		return badRequest(ctx, "Invalid owner id")
	}

	query, err := queries.NewGetOrdersByOwnerQuery(ownerID)
	if err != nil {
		return badRequest(ctx, "Invalid orders query: "+err.Error())
	}

	orders, err := s.getOrdersByOwnerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleFailure(ctx, err, "Failed to retrieve orders")
	}

	response := make([]Order, len(orders))
	for i, order := range orders {
		response[i] = Order{
			ID:             order.ID.Bytes(),
			QuoteID:        order.QuoteID.Bytes(),
			Status:         order.Status,
			PaymentStatus:  order.PaymentStatus,
			QuoteTotal:     order.QuoteTotal,
			DepositAmount:  order.DepositAmount,
			TrackingNumber: order.TrackingNumber,
			CreatedAt:      order.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterDeposit handles POST /api/v1/orders/:id/deposit.
func (s *Server) RegisterDeposit(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request RegisterDepositRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, err := payment.MethodFromString(request.Method)
	if err != nil {
		return badRequest(ctx, "Invalid payment method")
	}

	cmd, err := commands.NewRegisterDepositCommand(orderID, request.Amount, method, request.GatewayRef)
	if err != nil {
		return badRequest(ctx, "Invalid deposit data: "+err.Error())
	}

	if handleErr := s.registerDepositHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handleFailure(ctx, handleErr, "Failed to register deposit")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ConfirmOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, request.NationalIDImageRef)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handleFailure(ctx, handleErr, "Failed to confirm order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrderToProcessing handles POST /api/v1/orders/:id/processing.
func (s *Server) AdvanceOrderToProcessing(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAdvanceOrderToProcessingCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.advanceOrderToProcessingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handleFailure(ctx, handleErr, "Failed to advance order to processing")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ShipOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewShipOrderCommand(orderID, request.TrackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid shipping data: "+err.Error())
	}

	if handleErr := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handleFailure(ctx, handleErr, "Failed to ship order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handleFailure(ctx, handleErr, "Failed to deliver order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request CancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, request.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handleFailure(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// handleFailure maps use case errors onto HTTP statuses: missing aggregates
// become 404, business rule and concurrency rejections become 409, anything
// else is a 500 with the given fallback message.
func handleFailure(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrDomainRuleViolation), errors.Is(err, errs.ErrConcurrencyConflict):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
