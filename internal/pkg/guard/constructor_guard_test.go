package guard_test

import (
	"errors"
	"testing"

	"bakery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample domain object that uses ConstructorGuard
	type Tier struct {
		minQuantity int
		discount    float64
		guard       guard.ConstructorGuard
	}

	var errTierNotConstructed = errors.New("Tier must be created via newTier")

	newTier := func(minQuantity int, discount float64) (Tier, error) {
		if minQuantity < 1 {
			return Tier{}, errors.New("minQuantity must be at least 1")
		}
		if discount < 0 || discount >= 1 {
			return Tier{}, errors.New("discount must be in [0, 1)")
		}
		return Tier{
			minQuantity: minQuantity,
			discount:    discount,
			guard:       guard.NewConstructorGuard(),
		}, nil
	}

	validateTier := func(tier Tier) error {
		return tier.guard.Validate(errTierNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		tier, err := newTier(12, 0.10)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateTier(tier))
		assert.Equal(t, 12, tier.minQuantity)
		assert.InDelta(t, 0.10, tier.discount, 1e-9)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var tier Tier // zero value

		// When
		err := validateTier(tier)

		// Then
		require.Error(t, err)
		assert.Equal(t, errTierNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newTier(0, 0.10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "minQuantity")

		_, err = newTier(12, 1.0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "discount")
	})
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	guard := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for i := 0; i < 100; i++ {
		go func() {
			for j := 0; j < 1000; j++ {
				err := guard.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for i := 0; i < 100; i++ {
		<-done
	}
}
