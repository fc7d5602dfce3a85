package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(10.5))

		require.NoError(t, err)
		assert.Equal(t, "10.50", m.String())
	})

	t.Run("should allow zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should fail on negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal string", func(t *testing.T) {
		m, err := kernel.MoneyFromString("19.99")

		require.NoError(t, err)
		assert.Equal(t, "19.99", m.String())
	})

	t.Run("should fail on garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("nineteen")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail on negative string", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-5.00")

		require.Error(t, err)
	})
}

func TestMoney_MulQuantity(t *testing.T) {
	t.Run("should compute line total exactly", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("10.00")

		total := price.MulQuantity(2)

		assert.Equal(t, "20.00", total.String())
	})

	t.Run("should not drift on fractional prices", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("0.10")

		total := price.MulQuantity(3)

		assert.Equal(t, "0.30", total.String())
		assert.True(t, total.Decimal().Equal(decimal.NewFromFloat(0.3)))
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should treat different scales as equal", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("10.0")
		b, _ := kernel.MoneyFromString("10.00")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("10.00")
		b, _ := kernel.MoneyFromString("10.01")

		assert.False(t, a.IsEqual(b))
	})
}

func TestMoney_Add(t *testing.T) {
	a, _ := kernel.MoneyFromString("20.00")
	b, _ := kernel.MoneyFromString("5.00")

	assert.Equal(t, "25.00", a.Add(b).String())
}
