// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored in its string form so the table stays readable in psql and
// the enum can grow without renumbering.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayID           string
	CustomerName        string
	CustomerEmail       string `gorm:"index"`
	CustomerPhone       string
	Quantity            int
	Description         string
	Category            string
	Shape               string
	SpecialFonts        string
	SpecialInstructions string
	TotalAmount         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status              string          `gorm:"type:varchar(20);index"`
	Items               []ItemDTO       `gorm:"foreignKey:OrderID"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted order line. Lines have no identity in the
// domain; the row ID exists only to satisfy the relational model.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Description string
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Item rows get fresh IDs on every conversion; they are write-once and never
// updated in place.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          uuid.New(),
			OrderID:     aggregate.ID().Bytes(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Description: item.Description(),
		})
	}

	customer := aggregate.Customer()
	customization := aggregate.Customization()

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		DisplayID:           aggregate.DisplayID(),
		CustomerName:        customer.Name,
		CustomerEmail:       customer.Email,
		CustomerPhone:       customer.Phone,
		Quantity:            aggregate.Quantity(),
		Description:         aggregate.Description(),
		Category:            customization.Category,
		Shape:               customization.Shape,
		SpecialFonts:        customization.SpecialFonts,
		SpecialInstructions: customization.SpecialInstructions,
		TotalAmount:         aggregate.TotalAmount(),
		Status:              aggregate.Status().String(),
		Items:               items,
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.Description)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.DisplayID,
		order.Customer{
			Name:  dto.CustomerName,
			Email: dto.CustomerEmail,
			Phone: dto.CustomerPhone,
		},
		dto.Quantity,
		dto.Description,
		order.Customization{
			Category:            dto.Category,
			Shape:               dto.Shape,
			SpecialFonts:        dto.SpecialFonts,
			SpecialInstructions: dto.SpecialInstructions,
		},
		dto.TotalAmount,
		status,
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
