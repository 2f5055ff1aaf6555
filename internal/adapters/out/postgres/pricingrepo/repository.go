package pricingrepo

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/pricing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPricingConfigRepository implements PricingConfigRepository using GORM.
type GormPricingConfigRepository struct {
	db *gorm.DB
}

// NewGormPricingConfigRepository creates a new GORM pricing configuration repository.
func NewGormPricingConfigRepository(db *gorm.DB) *GormPricingConfigRepository {
	return &GormPricingConfigRepository{db: db}
}

// Get retrieves the configuration currently in effect.
// When no configuration has ever been saved the built-in default applies.
func (r *GormPricingConfigRepository) Get(ctx context.Context) (pricing.Config, error) {
	var dto PricingConfigDTO
	err := r.db.WithContext(ctx).Preload("Tiers").First(&dto, "id = ?", configRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pricing.DefaultConfig(), nil
	}
	if err != nil {
		return pricing.Config{}, err
	}

	return toDomain(dto)
}

// Save replaces the stored configuration. The tier rows are rewritten
// wholesale; there is no tier-level diffing.
func (r *GormPricingConfigRepository) Save(ctx context.Context, config pricing.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dto := fromDomain(config)

	db := r.db.WithContext(ctx)
	if err := db.Delete(&PricingTierDTO{}, "config_id = ?", configRowID).Error; err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
}
