package queries

import (
	"errors"
	"time"

	"bakery/internal/core/domain/services"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrGetDashboardQueryIsNotConstructed is returned when the query was not
// created through its constructor.
var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery retrieves the revenue dashboard for a time window.
// The location decides which calendar day each order's revenue lands on in
// the daily chart.
type GetDashboardQuery struct { //nolint:recvcheck //using for validation
	window   services.Window
	location *time.Location

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a dashboard query over the given window.
// A nil location buckets daily revenue in the server's local time.
func NewGetDashboardQuery(window services.Window, location *time.Location) (GetDashboardQuery, error) {
	if err := window.Validate(); err != nil {
		return GetDashboardQuery{}, err
	}

	return GetDashboardQuery{
		window:   window,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// Window returns the time range the dashboard covers.
func (q GetDashboardQuery) Window() services.Window {
	return q.window
}

// Location returns the timezone for daily bucketing, or nil for server local.
func (q GetDashboardQuery) Location() *time.Location {
	return q.location
}

// DashboardDailyRevenue is one bar of the dashboard's daily revenue chart.
type DashboardDailyRevenue struct {
	Day     time.Time
	Revenue decimal.Decimal
}

// GetDashboardQueryResponse carries the dashboard KPIs for one window.
// Revenue and average consider completed orders only; the counts cover every
// order in the window.
type GetDashboardQueryResponse struct {
	TotalRevenue      decimal.Decimal
	TotalOrders       int
	AverageOrderValue decimal.Decimal
	PendingCount      int
	StatusBreakdown   map[string]int
	DailyRevenue      []DashboardDailyRevenue
}
