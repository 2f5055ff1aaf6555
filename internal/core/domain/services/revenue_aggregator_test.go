package services_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("bounded_window_is_half_open", func(t *testing.T) {
		window, err := services.NewWindow(base, base.Add(24*time.Hour))
		require.NoError(t, err)

		assert.True(t, window.Contains(base))
		assert.True(t, window.Contains(base.Add(23*time.Hour)))
		assert.False(t, window.Contains(base.Add(24*time.Hour)))
		assert.False(t, window.Contains(base.Add(-time.Second)))
	})

	t.Run("rejects_end_before_start", func(t *testing.T) {
		_, err := services.NewWindow(base, base.Add(-time.Hour))
		require.Error(t, err)
	})

	t.Run("since_is_bounded_below_only", func(t *testing.T) {
		window := services.Since(base)

		assert.False(t, window.Contains(base.Add(-time.Second)))
		assert.True(t, window.Contains(base.AddDate(10, 0, 0)))
	})

	t.Run("all_time_contains_everything", func(t *testing.T) {
		window := services.AllTime()

		assert.True(t, window.Contains(time.Time{}))
		assert.True(t, window.Contains(base.AddDate(100, 0, 0)))
	})

	t.Run("zero_value_window_fails_validation", func(t *testing.T) {
		var window services.Window
		require.Error(t, window.Validate())
	})
}

func TestRevenueAggregator_Summarize(t *testing.T) {
	aggregator := services.NewRevenueAggregator()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("revenue_counts_completed_only_but_orders_count_everything", func(t *testing.T) {
		// Given one completed $50 order and one cancelled $100 order
		orders := []*order.Order{
			restoredOrder(t, "Jane", "jane@x.com", 50, order.Completed, base),
			restoredOrder(t, "Joe", "joe@x.com", 100, order.Cancelled, base.Add(time.Hour)),
		}

		// When
		summary := aggregator.Summarize(orders, services.AllTime())

		// Then revenue reflects money earned, order count reflects workload
		assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, 2, summary.TotalOrders)
		assert.True(t, summary.AverageOrderValue.Equal(decimal.NewFromInt(50)))
	})

	t.Run("average_guards_divide_by_zero", func(t *testing.T) {
		orders := []*order.Order{
			restoredOrder(t, "Jane", "jane@x.com", 50, order.Pending, base),
		}

		summary := aggregator.Summarize(orders, services.AllTime())

		assert.True(t, summary.TotalRevenue.Equal(decimal.Zero))
		assert.True(t, summary.AverageOrderValue.Equal(decimal.Zero))
		assert.Equal(t, 1, summary.PendingCount)
	})

	t.Run("average_is_rounded_to_cents", func(t *testing.T) {
		orders := []*order.Order{
			restoredOrder(t, "A", "a@x.com", 10, order.Completed, base),
			restoredOrder(t, "B", "b@x.com", 10, order.Completed, base),
			restoredOrder(t, "C", "c@x.com", 10.01, order.Completed, base),
		}

		summary := aggregator.Summarize(orders, services.AllTime())

		assert.True(t, summary.AverageOrderValue.Equal(decimal.NewFromFloat(10.00)),
			"got %s", summary.AverageOrderValue)
	})

	t.Run("window_filters_by_creation_time", func(t *testing.T) {
		window, err := services.NewWindow(base, base.Add(24*time.Hour))
		require.NoError(t, err)

		orders := []*order.Order{
			restoredOrder(t, "In", "in@x.com", 50, order.Completed, base.Add(time.Hour)),
			restoredOrder(t, "Out", "out@x.com", 75, order.Completed, base.Add(48*time.Hour)),
		}

		summary := aggregator.Summarize(orders, window)

		assert.Equal(t, 1, summary.TotalOrders)
		assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(50)))
	})

	t.Run("status_breakdown_covers_every_status_present", func(t *testing.T) {
		orders := []*order.Order{
			restoredOrder(t, "A", "a@x.com", 10, order.Pending, base),
			restoredOrder(t, "B", "b@x.com", 10, order.Pending, base),
			restoredOrder(t, "C", "c@x.com", 10, order.InProgress, base),
			restoredOrder(t, "D", "d@x.com", 10, order.Completed, base),
		}

		summary := aggregator.Summarize(orders, services.AllTime())

		assert.Equal(t, 2, summary.StatusBreakdown[order.Pending])
		assert.Equal(t, 1, summary.StatusBreakdown[order.InProgress])
		assert.Equal(t, 1, summary.StatusBreakdown[order.Completed])
		assert.Equal(t, 0, summary.StatusBreakdown[order.Cancelled])
		assert.Equal(t, 2, summary.PendingCount)
	})

	t.Run("summarize_is_idempotent", func(t *testing.T) {
		orders := []*order.Order{
			restoredOrder(t, "Jane", "jane@x.com", 50, order.Completed, base),
			restoredOrder(t, "Joe", "joe@x.com", 100, order.Pending, base),
		}

		first := aggregator.Summarize(orders, services.AllTime())
		second := aggregator.Summarize(orders, services.AllTime())

		assert.Equal(t, first, second)
	})
}

func TestRevenueAggregator_DailyRevenue(t *testing.T) {
	aggregator := services.NewRevenueAggregator()
	loc := time.UTC

	t.Run("buckets_completed_orders_by_calendar_day", func(t *testing.T) {
		day1Morning := time.Date(2025, 6, 1, 9, 0, 0, 0, loc)
		day1Evening := time.Date(2025, 6, 1, 21, 0, 0, 0, loc)
		day3 := time.Date(2025, 6, 3, 12, 0, 0, 0, loc)

		orders := []*order.Order{
			restoredOrder(t, "A", "a@x.com", 20, order.Completed, day1Morning),
			restoredOrder(t, "B", "b@x.com", 30, order.Completed, day1Evening),
			restoredOrder(t, "C", "c@x.com", 40, order.Completed, day3),
			restoredOrder(t, "D", "d@x.com", 99, order.Pending, day3),
		}

		points := aggregator.DailyRevenue(orders, services.AllTime(), loc)

		require.Len(t, points, 2)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, loc), points[0].Day)
		assert.True(t, points[0].Revenue.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, loc), points[1].Day)
		assert.True(t, points[1].Revenue.Equal(decimal.NewFromInt(40)))
	})

	t.Run("bucketing_uses_the_display_timezone", func(t *testing.T) {
		est := time.FixedZone("EST", -5*60*60)
		// 02:00 UTC on June 2 is still June 1 in EST.
		created := time.Date(2025, 6, 2, 2, 0, 0, 0, time.UTC)

		orders := []*order.Order{
			restoredOrder(t, "A", "a@x.com", 25, order.Completed, created),
		}

		points := aggregator.DailyRevenue(orders, services.AllTime(), est)

		require.Len(t, points, 1)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, est), points[0].Day)
	})

	t.Run("respects_the_window", func(t *testing.T) {
		day1 := time.Date(2025, 6, 1, 12, 0, 0, 0, loc)
		day2 := time.Date(2025, 6, 2, 12, 0, 0, 0, loc)

		window, err := services.NewWindow(
			time.Date(2025, 6, 2, 0, 0, 0, 0, loc),
			time.Date(2025, 6, 3, 0, 0, 0, 0, loc),
		)
		require.NoError(t, err)

		orders := []*order.Order{
			restoredOrder(t, "A", "a@x.com", 20, order.Completed, day1),
			restoredOrder(t, "B", "b@x.com", 30, order.Completed, day2),
		}

		points := aggregator.DailyRevenue(orders, window, loc)

		require.Len(t, points, 1)
		assert.True(t, points[0].Revenue.Equal(decimal.NewFromInt(30)))
	})
}
