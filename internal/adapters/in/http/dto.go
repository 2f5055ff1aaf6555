// Package http provides the inbound REST adapter. Handlers translate JSON
// requests into commands and queries, and domain errors into status codes.
package http

import (
	"time"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// QuoteRequest prices a quantity without creating an order.
type QuoteRequest struct {
	Quantity int `json:"quantity"`
}

// QuoteResponse is the priced result for the quote wizard.
type QuoteResponse struct {
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
	Discount  decimal.Decimal `json:"discount"`
}

// CustomerRequest carries the contact fields of an order request.
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomizationRequest carries the wizard's decoration choices.
type CustomizationRequest struct {
	Category            string `json:"category"`
	Shape               string `json:"shape"`
	SpecialFonts        string `json:"specialFonts"`
	SpecialInstructions string `json:"specialInstructions"`
}

// ItemRequest is one explicit line of an administratively entered order.
type ItemRequest struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateOrderRequest creates a new order.
type CreateOrderRequest struct {
	Customer      CustomerRequest      `json:"customer"`
	Quantity      int                  `json:"quantity"`
	Description   string               `json:"description"`
	Customization CustomizationRequest `json:"customization"`
	Items         []ItemRequest        `json:"items,omitempty"`
}

// UpdateOrderRequest edits an existing order. A null totalAmount leaves the
// stored total untouched.
type UpdateOrderRequest struct {
	Customer      CustomerRequest      `json:"customer"`
	Description   string               `json:"description"`
	Customization CustomizationRequest `json:"customization"`
	TotalAmount   *decimal.Decimal     `json:"totalAmount,omitempty"`
}

// ChangeStatusRequest moves an order to a new lifecycle status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ItemResponse is one line item of an order view.
type ItemResponse struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// OrderResponse is the full view of one order.
type OrderResponse struct {
	ID            string               `json:"id"`
	DisplayID     string               `json:"displayId"`
	Customer      CustomerRequest      `json:"customer"`
	Quantity      int                  `json:"quantity"`
	Description   string               `json:"description"`
	Customization CustomizationRequest `json:"customization"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	Status        string               `json:"status"`
	Items         []ItemResponse       `json:"items"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// OrderListItemResponse is one row of the admin order list.
type OrderListItemResponse struct {
	ID            string          `json:"id"`
	DisplayID     string          `json:"displayId"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Quantity      int             `json:"quantity"`
	Description   string          `json:"description"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CustomerSummaryResponse is one customer's aggregated view.
type CustomerSummaryResponse struct {
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	TotalOrders   int             `json:"totalOrders"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	LastOrderDate time.Time       `json:"lastOrderDate"`
}

// DailyRevenueResponse is one bar of the dashboard chart.
type DailyRevenueResponse struct {
	Day     string          `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardResponse carries the revenue dashboard KPIs.
type DashboardResponse struct {
	TotalRevenue      decimal.Decimal        `json:"totalRevenue"`
	TotalOrders       int                    `json:"totalOrders"`
	AverageOrderValue decimal.Decimal        `json:"averageOrderValue"`
	PendingCount      int                    `json:"pendingCount"`
	StatusBreakdown   map[string]int         `json:"statusBreakdown"`
	DailyRevenue      []DailyRevenueResponse `json:"dailyRevenue"`
}

// PricingTierRequest is one bulk discount tier of a configuration save.
type PricingTierRequest struct {
	MinQuantity int             `json:"minQuantity"`
	Discount    decimal.Decimal `json:"discount"`
}

// SavePricingConfigRequest replaces the pricing configuration.
type SavePricingConfigRequest struct {
	BasePrice decimal.Decimal      `json:"basePrice"`
	Tiers     []PricingTierRequest `json:"tiers"`
}

// PricingConfigResponse is the configuration currently in effect.
type PricingConfigResponse struct {
	BasePrice decimal.Decimal      `json:"basePrice"`
	Tiers     []PricingTierRequest `json:"tiers"`
}

func toCustomer(req CustomerRequest) order.Customer {
	return order.Customer{Name: req.Name, Email: req.Email, Phone: req.Phone}
}

func toCustomization(req CustomizationRequest) order.Customization {
	return order.Customization{
		Category:            req.Category,
		Shape:               req.Shape,
		SpecialFonts:        req.SpecialFonts,
		SpecialInstructions: req.SpecialInstructions,
	}
}

func orderResponseFromDomain(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemResponse{
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			LineTotal:   item.LineTotal(),
		})
	}

	return OrderResponse{
		ID:          o.ID().String(),
		DisplayID:   o.DisplayID(),
		Customer:    CustomerRequest{Name: o.Customer().Name, Email: o.Customer().Email, Phone: o.Customer().Phone},
		Quantity:    o.Quantity(),
		Description: o.Description(),
		Customization: CustomizationRequest{
			Category:            o.Customization().Category,
			Shape:               o.Customization().Shape,
			SpecialFonts:        o.Customization().SpecialFonts,
			SpecialInstructions: o.Customization().SpecialInstructions,
		},
		TotalAmount: o.TotalAmount(),
		Status:      o.Status().String(),
		Items:       items,
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func orderResponseFromQuery(view queries.GetOrderQueryResponse) OrderResponse {
	items := make([]ItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, ItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}

	return OrderResponse{
		ID:          view.ID.String(),
		DisplayID:   view.DisplayID,
		Customer:    CustomerRequest{Name: view.CustomerName, Email: view.CustomerEmail, Phone: view.CustomerPhone},
		Quantity:    view.Quantity,
		Description: view.Description,
		Customization: CustomizationRequest{
			Category:            view.Category,
			Shape:               view.Shape,
			SpecialFonts:        view.SpecialFonts,
			SpecialInstructions: view.SpecialInstructions,
		},
		TotalAmount: view.TotalAmount,
		Status:      view.Status,
		Items:       items,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}
