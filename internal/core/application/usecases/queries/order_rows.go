// Package queries contains read-only operations against the record store.
// Query handlers bypass the repositories and read the database directly,
// restoring domain aggregates only where a derived view (customer summaries,
// revenue dashboard) needs the domain's folding logic.
package queries

import (
	"context"
	"database/sql"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const selectOrderColumns = `
	SELECT
		id,
		display_id,
		customer_name,
		customer_email,
		customer_phone,
		quantity,
		description,
		category,
		shape,
		special_fonts,
		special_instructions,
		total_amount,
		status,
		created_at,
		updated_at
	FROM orders
`

// scanOrder restores one domain order from a row of the orders table.
// Items are not loaded; the derived views fold order-level fields only.
func scanOrder(rows *sql.Rows) (*order.Order, error) {
	var (
		id                  uuid.UUID
		displayID           string
		customerName        string
		customerEmail       string
		customerPhone       string
		quantity            int
		description         string
		category            string
		shape               string
		specialFonts        string
		specialInstructions string
		totalAmount         decimal.Decimal
		statusStr           string
		createdAt           time.Time
		updatedAt           time.Time
	)

	if err := rows.Scan(
		&id,
		&displayID,
		&customerName,
		&customerEmail,
		&customerPhone,
		&quantity,
		&description,
		&category,
		&shape,
		&specialFonts,
		&specialInstructions,
		&totalAmount,
		&statusStr,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(statusStr)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		orderID,
		displayID,
		order.Customer{Name: customerName, Email: customerEmail, Phone: customerPhone},
		quantity,
		description,
		order.Customization{
			Category:            category,
			Shape:               shape,
			SpecialFonts:        specialFonts,
			SpecialInstructions: specialInstructions,
		},
		totalAmount,
		status,
		nil,
		createdAt,
		updatedAt,
	)
}

// loadAllOrders restores the complete order book, newest first.
func loadAllOrders(ctx context.Context, db *gorm.DB) ([]*order.Order, error) {
	rows, err := db.WithContext(ctx).Raw(selectOrderColumns + ` ORDER BY created_at DESC`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		o, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
