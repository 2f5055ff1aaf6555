package queries

import (
	"context"
	"database/sql"

	"bakery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order list rows from the database,
// newest first.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersInStatusQuery(order.Pending)
//
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d pending orders\n", len(rows))
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the list query, applying the status filter when present.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	baseQuery := `
		SELECT
			id,
			display_id,
			customer_name,
			customer_email,
			quantity,
			description,
			total_amount,
			status,
			created_at,
			updated_at
		FROM orders
	`

	var rows *sql.Rows
	var err error
	if status := query.Status(); status != nil {
		rows, err = h.db.WithContext(ctx).
			Raw(baseQuery+` WHERE status = ? ORDER BY created_at DESC`, status.String()).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(baseQuery + ` ORDER BY created_at DESC`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var response ListOrdersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&response.DisplayID,
			&response.CustomerName,
			&response.CustomerEmail,
			&response.Quantity,
			&response.Description,
			&response.TotalAmount,
			&response.Status,
			&response.CreatedAt,
			&response.UpdatedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID

		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
