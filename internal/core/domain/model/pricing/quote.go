package pricing

import "github.com/shopspring/decimal"

// Quote is the result of pricing a quantity against a Config.
//
// UnitPrice and Total are rounded to cents independently: the unit price is
// rounded first, then the total is rounded again after multiplication. The
// two-stage rounding can differ from rounding only the final product by a
// cent and is the contract callers rely on.
type Quote struct {
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	Discount  decimal.Decimal
}

// Quote prices a quantity of cookies against the configuration.
//
// Tier selection scans the configured tiers from the highest threshold down
// and picks the first tier whose threshold does not exceed the quantity; no
// discount applies below the lowest threshold.
//
// The caller is responsible for clamping quantity to at least 1 before
// calling; the calculator computes exactly what it is given. The method is
// pure and safe to call concurrently.
//
// Example:
//
//	quote := pricing.DefaultConfig().Quote(12)
//	// quote.UnitPrice = 3.15, quote.Total = 37.80, quote.Discount = 0.10
func (c Config) Quote(quantity int) Quote {
	discount := decimal.Zero
	for _, tier := range c.tiers {
		if quantity >= tier.minQuantity {
			discount = tier.discount
			break
		}
	}

	one := decimal.NewFromInt(1)
	unitPrice := c.basePrice.Mul(one.Sub(discount)).Round(2)
	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)

	return Quote{
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Total:     total,
		Discount:  discount,
	}
}
