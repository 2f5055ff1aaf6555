// Package pricingrepo persists the bakery's single pricing configuration.
// The configuration lives in one well-known row; its discount tiers hang off
// it in a child table and are rewritten wholesale on every save.
package pricingrepo

import (
	"time"

	"bakery/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// configRowID is the primary key of the single configuration row.
const configRowID = 1

// PricingConfigDTO represents the database structure for the pricing
// configuration singleton.
type PricingConfigDTO struct {
	ID        int16            `gorm:"primaryKey"`
	BasePrice decimal.Decimal  `gorm:"type:numeric(12,2)"`
	Tiers     []PricingTierDTO `gorm:"foreignKey:ConfigID"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for the configuration row.
func (PricingConfigDTO) TableName() string {
	return "pricing_configs"
}

// PricingTierDTO represents one persisted bulk discount tier.
type PricingTierDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	ConfigID    int16 `gorm:"index"`
	MinQuantity int
	Discount    decimal.Decimal `gorm:"type:numeric(5,4)"`
}

// TableName specifies the database table name for discount tiers.
func (PricingTierDTO) TableName() string {
	return "pricing_tiers"
}

// fromDomain converts a pricing configuration to its database representation.
func fromDomain(config pricing.Config) PricingConfigDTO {
	tiers := make([]PricingTierDTO, 0, len(config.Tiers()))
	for _, tier := range config.Tiers() {
		tiers = append(tiers, PricingTierDTO{
			ConfigID:    configRowID,
			MinQuantity: tier.MinQuantity(),
			Discount:    tier.Discount(),
		})
	}

	return PricingConfigDTO{
		ID:        configRowID,
		BasePrice: config.BasePrice(),
		Tiers:     tiers,
	}
}

// toDomain converts the database row to a validated pricing configuration.
func toDomain(dto PricingConfigDTO) (pricing.Config, error) {
	tiers := make([]pricing.DiscountTier, 0, len(dto.Tiers))
	for _, tierDTO := range dto.Tiers {
		tier, err := pricing.NewDiscountTier(tierDTO.MinQuantity, tierDTO.Discount)
		if err != nil {
			return pricing.Config{}, err
		}
		tiers = append(tiers, tier)
	}

	return pricing.NewConfig(dto.BasePrice, tiers)
}
