package services

import (
	"sort"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrWindowIsNotConstructed is returned when a Window instance was not created
// through NewWindow or AllTime.
var ErrWindowIsNotConstructed = errs.NewValueIsRequiredError("Window must be created via NewWindow or AllTime")

// Window is the time range KPI aggregation runs over. An order belongs to the
// window when start <= createdAt, and createdAt < end for a bounded end.
// AllTime() includes every order unconditionally.
type Window struct {
	start *time.Time
	end   *time.Time

	guard guard.ConstructorGuard
}

// NewWindow creates a window bounded on both sides.
// The end must not precede the start.
func NewWindow(start, end time.Time) (Window, error) {
	if end.Before(start) {
		return Window{}, errs.NewValueIsInvalidError("window end precedes start")
	}

	return Window{start: &start, end: &end, guard: guard.NewConstructorGuard()}, nil
}

// Since creates a window bounded below only: every order created at or after
// start belongs to it.
func Since(start time.Time) Window {
	return Window{start: &start, guard: guard.NewConstructorGuard()}
}

// AllTime creates the unbounded window that includes every order.
func AllTime() Window {
	return Window{guard: guard.NewConstructorGuard()}
}

// Contains reports whether a creation timestamp falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.start != nil && t.Before(*w.start) {
		return false
	}
	if w.end != nil && !t.Before(*w.end) {
		return false
	}
	return true
}

// Validate ensures the window was created through a constructor.
func (w Window) Validate() error {
	return w.guard.Validate(ErrWindowIsNotConstructed)
}

// WindowSummary is the derived dashboard view of a revenue window.
//
// Revenue figures and order counts are deliberately asymmetric: TotalRevenue
// and AverageOrderValue consider completed orders only ("money actually
// earned"), while TotalOrders, PendingCount, and StatusBreakdown count every
// order in the window regardless of status ("workload in the pipeline").
type WindowSummary struct {
	TotalRevenue      decimal.Decimal
	TotalOrders       int
	AverageOrderValue decimal.Decimal
	PendingCount      int

	// StatusBreakdown counts orders per status, for display only.
	StatusBreakdown map[order.Status]int
}

// DailyRevenuePoint is one bar of the dashboard's revenue chart: the summed
// completed-order revenue of a single calendar day.
type DailyRevenuePoint struct {
	Day     time.Time
	Revenue decimal.Decimal
}

// RevenueAggregator folds orders inside a window into dashboard metrics.
type RevenueAggregator struct{}

// NewRevenueAggregator creates a new RevenueAggregator instance.
func NewRevenueAggregator() RevenueAggregator {
	return RevenueAggregator{}
}

// Summarize computes the KPI summary for the orders inside the window.
//
// The average order value guards against divide-by-zero: a window without a
// single completed order reports an average of 0. The input is not mutated.
func (RevenueAggregator) Summarize(orders []*order.Order, window Window) WindowSummary {
	summary := WindowSummary{
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		StatusBreakdown:   make(map[order.Status]int),
	}

	completedCount := 0
	for _, o := range orders {
		if !window.Contains(o.CreatedAt()) {
			continue
		}

		summary.TotalOrders++
		summary.StatusBreakdown[o.Status()]++

		switch o.Status() {
		case order.Completed:
			completedCount++
			summary.TotalRevenue = summary.TotalRevenue.Add(o.TotalAmount())
		case order.Pending:
			summary.PendingCount++
		}
	}

	if completedCount > 0 {
		summary.AverageOrderValue = summary.TotalRevenue.
			Div(decimal.NewFromInt(int64(completedCount))).
			Round(2)
	}

	return summary
}

// DailyRevenue buckets completed orders inside the window by the calendar day
// of their creation in the given location, summing totals per day. Points are
// returned in chronological order. Days without completed orders produce no
// point.
func (RevenueAggregator) DailyRevenue(orders []*order.Order, window Window, loc *time.Location) []DailyRevenuePoint {
	if loc == nil {
		loc = time.Local
	}

	buckets := make(map[time.Time]decimal.Decimal)
	for _, o := range orders {
		if o.Status() != order.Completed || !window.Contains(o.CreatedAt()) {
			continue
		}

		local := o.CreatedAt().In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

		total, ok := buckets[day]
		if !ok {
			total = decimal.Zero
		}
		buckets[day] = total.Add(o.TotalAmount())
	}

	points := make([]DailyRevenuePoint, 0, len(buckets))
	for day, revenue := range buckets {
		points = append(points, DailyRevenuePoint{Day: day, Revenue: revenue})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Day.Before(points[j].Day)
	})

	return points
}
