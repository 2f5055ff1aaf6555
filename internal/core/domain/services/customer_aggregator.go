package services

import (
	"sort"
	"strings"
	"time"

	"bakery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CustomerSummary is the derived per-customer view of the order book.
// It is recomputed on demand and never persisted.
type CustomerSummary struct {
	// Email is the normalized identity key the summary is grouped by.
	Email string

	// Name and Phone are taken from the customer's most recent order.
	Name  string
	Phone string

	TotalOrders   int
	TotalSpent    decimal.Decimal
	LastOrderDate time.Time

	// Orders holds every order belonging to the customer.
	Orders []*order.Order
}

// CustomerAggregator folds orders into per-customer summaries.
//
// Grouping uses the normalized email address as the customer identity key.
// Orders without a usable email are dropped from customer analytics rather
// than treated as errors. TotalSpent sums the total of every order in the
// group regardless of status: cancelled orders still count toward a
// customer's historical spend. That is the observed product behavior,
// preserved deliberately and flagged for product review, not an accounting
// statement.
type CustomerAggregator struct{}

// NewCustomerAggregator creates a new CustomerAggregator instance.
func NewCustomerAggregator() CustomerAggregator {
	return CustomerAggregator{}
}

// CustomerKey normalizes an email address into the identity key used to group
// orders: surrounding whitespace is trimmed and the address is lower-cased.
// An empty result means the order has no usable customer identity.
func CustomerKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Aggregate folds the given orders into one summary per customer, sorted by
// last order date, most recent first.
//
// The input is not mutated; calling Aggregate twice on the same input yields
// identical output.
func (CustomerAggregator) Aggregate(orders []*order.Order) []CustomerSummary {
	groups := make(map[string][]*order.Order)
	for _, o := range orders {
		key := CustomerKey(o.Customer().Email)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], o)
	}

	summaries := make([]CustomerSummary, 0, len(groups))
	for key, group := range groups {
		summary := CustomerSummary{
			Email:      key,
			TotalSpent: decimal.Zero,
			Orders:     group,
		}

		var latest *order.Order
		for _, o := range group {
			summary.TotalOrders++
			summary.TotalSpent = summary.TotalSpent.Add(o.TotalAmount())

			if latest == nil || o.CreatedAt().After(latest.CreatedAt()) {
				latest = o
			}
		}

		summary.Name = latest.Customer().Name
		summary.Phone = latest.Customer().Phone
		summary.LastOrderDate = latest.CreatedAt()

		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastOrderDate.After(summaries[j].LastOrderDate)
	})

	return summaries
}
