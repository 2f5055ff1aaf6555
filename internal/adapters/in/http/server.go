package http

import (
	"errors"
	"net/http"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/pricing"
	"bakery/internal/core/domain/services"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeStatusHandler      commands.ChangeOrderStatusCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	resendHandler            commands.ResendConfirmationCommandHandler
	savePricingConfigHandler commands.SavePricingConfigCommandHandler

	// Query handlers
	getQuoteHandler             queries.GetQuoteQueryHandler
	getOrderHandler             queries.GetOrderQueryHandler
	listOrdersHandler           queries.ListOrdersQueryHandler
	getCustomerSummariesHandler queries.GetCustomerSummariesQueryHandler
	getDashboardHandler         queries.GetDashboardQueryHandler
	getPricingConfigHandler     queries.GetPricingConfigQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	resendHandler commands.ResendConfirmationCommandHandler,
	savePricingConfigHandler commands.SavePricingConfigCommandHandler,
	getQuoteHandler queries.GetQuoteQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getCustomerSummariesHandler queries.GetCustomerSummariesQueryHandler,
	getDashboardHandler queries.GetDashboardQueryHandler,
	getPricingConfigHandler queries.GetPricingConfigQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		changeStatusHandler:         changeStatusHandler,
		updateOrderHandler:          updateOrderHandler,
		deleteOrderHandler:          deleteOrderHandler,
		resendHandler:               resendHandler,
		savePricingConfigHandler:    savePricingConfigHandler,
		getQuoteHandler:             getQuoteHandler,
		getOrderHandler:             getOrderHandler,
		listOrdersHandler:           listOrdersHandler,
		getCustomerSummariesHandler: getCustomerSummariesHandler,
		getDashboardHandler:         getDashboardHandler,
		getPricingConfigHandler:     getPricingConfigHandler,
	}
}

// statusForError maps domain errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrDownstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusBadRequest, message)
}

func domainError(ctx echo.Context, err error) error {
	return errorJSON(ctx, statusForError(err), err.Error())
}

// GetQuote handles POST /api/v1/quotes - prices a quantity without creating
// an order.
func (s *Server) GetQuote(ctx echo.Context) error {
	var req QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query := queries.NewGetQuoteQuery(req.Quantity)

	quote, err := s.getQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, QuoteResponse{
		Quantity:  quote.Quantity,
		UnitPrice: quote.UnitPrice,
		Total:     quote.Total,
		Discount:  quote.Discount,
	})
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		item, err := order.NewItem(line.Quantity, line.UnitPrice, line.Description)
		if err != nil {
			return badRequest(ctx, "Invalid order item: "+err.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		toCustomer(req.Customer),
		req.Quantity,
		req.Description,
		toCustomization(req.Customization),
		items,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(created))
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by ?status=.
func (s *Server) GetOrders(ctx echo.Context) error {
	var query queries.ListOrdersQuery

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}

		query, err = queries.NewListOrdersInStatusQuery(status)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
	} else {
		query = queries.NewListOrdersQuery()
	}

	rows, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderListItemResponse, len(rows))
	for i, row := range rows {
		response[i] = OrderListItemResponse{
			ID:            row.ID.String(),
			DisplayID:     row.DisplayID,
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			Quantity:      row.Quantity,
			Description:   row.Description,
			TotalAmount:   row.TotalAmount,
			Status:        row.Status,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(view))
}

// UpdateOrder handles PUT /api/v1/orders/:id - edits contact details,
// description, customization, and optionally overrides the total.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID,
		toCustomer(req.Customer),
		req.Description,
		toCustomization(req.Customization),
		req.TotalAmount,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status - moves an order
// along its lifecycle. A terminal order answers 409.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	changed, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(changed))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes an order and its
// items.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResendConfirmation handles POST /api/v1/orders/:id/resend-confirmation -
// sends the confirmation email again, synchronously, so the operator sees
// delivery failures.
func (s *Server) ResendConfirmation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewResendConfirmationCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.resendHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomers handles GET /api/v1/customers - aggregated per-customer view.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetCustomerSummariesQuery()

	summaries, err := s.getCustomerSummariesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]CustomerSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = CustomerSummaryResponse{
			Email:         summary.Email,
			Name:          summary.Name,
			Phone:         summary.Phone,
			TotalOrders:   summary.TotalOrders,
			TotalSpent:    summary.TotalSpent,
			LastOrderDate: summary.LastOrderDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDashboard handles GET /api/v1/dashboard - revenue KPIs over a window
// given by ?start= and ?end= (RFC 3339 dates), with daily buckets in ?tz=.
func (s *Server) GetDashboard(ctx echo.Context) error {
	window, err := windowFromParams(ctx.QueryParam("start"), ctx.QueryParam("end"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	location := time.UTC
	if tz := ctx.QueryParam("tz"); tz != "" {
		location, err = time.LoadLocation(tz)
		if err != nil {
			return badRequest(ctx, "Invalid timezone: "+err.Error())
		}
	}

	query, err := queries.NewGetDashboardQuery(window, location)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	dashboard, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	daily := make([]DailyRevenueResponse, len(dashboard.DailyRevenue))
	for i, day := range dashboard.DailyRevenue {
		daily[i] = DailyRevenueResponse{
			Day:     day.Day.Format("2006-01-02"),
			Revenue: day.Revenue,
		}
	}

	return ctx.JSON(http.StatusOK, DashboardResponse{
		TotalRevenue:      dashboard.TotalRevenue,
		TotalOrders:       dashboard.TotalOrders,
		AverageOrderValue: dashboard.AverageOrderValue,
		PendingCount:      dashboard.PendingCount,
		StatusBreakdown:   dashboard.StatusBreakdown,
		DailyRevenue:      daily,
	})
}

// GetPricingConfig handles GET /api/v1/pricing-config - the configuration
// currently in effect, built-in defaults included.
func (s *Server) GetPricingConfig(ctx echo.Context) error {
	query := queries.NewGetPricingConfigQuery()

	config, err := s.getPricingConfigHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	tiers := make([]PricingTierRequest, len(config.Tiers))
	for i, tier := range config.Tiers {
		tiers[i] = PricingTierRequest{MinQuantity: tier.MinQuantity, Discount: tier.Discount}
	}

	return ctx.JSON(http.StatusOK, PricingConfigResponse{
		BasePrice: config.BasePrice,
		Tiers:     tiers,
	})
}

// SavePricingConfig handles PUT /api/v1/pricing-config - replaces the pricing
// configuration wholesale.
func (s *Server) SavePricingConfig(ctx echo.Context) error {
	var req SavePricingConfigRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tiers := make([]pricing.DiscountTier, 0, len(req.Tiers))
	for _, line := range req.Tiers {
		tier, err := pricing.NewDiscountTier(line.MinQuantity, line.Discount)
		if err != nil {
			return badRequest(ctx, "Invalid discount tier: "+err.Error())
		}
		tiers = append(tiers, tier)
	}

	config, err := pricing.NewConfig(req.BasePrice, tiers)
	if err != nil {
		return badRequest(ctx, "Invalid pricing configuration: "+err.Error())
	}

	cmd, err := commands.NewSavePricingConfigCommand(config)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.savePricingConfigHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// windowFromParams parses the optional start and end query parameters into an
// aggregation window. Dates without a time component are accepted.
func windowFromParams(startRaw, endRaw string) (services.Window, error) {
	if startRaw == "" && endRaw == "" {
		return services.AllTime(), nil
	}

	var start time.Time
	if startRaw != "" {
		var err error
		start, err = parseTimeParam(startRaw)
		if err != nil {
			return services.Window{}, err
		}
	}

	if endRaw == "" {
		return services.Since(start), nil
	}

	end, err := parseTimeParam(endRaw)
	if err != nil {
		return services.Window{}, err
	}

	return services.NewWindow(start, end)
}

func parseTimeParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", raw)
}
