package kernel_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("should create price with positive amount", func(t *testing.T) {
		p, err := kernel.NewPrice(16_000)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, int64(16_000), p.Amount())
	})

	t.Run("should create price with zero amount", func(t *testing.T) {
		p, err := kernel.NewPrice(0)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, int64(0), p.Amount())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewPrice(-1_000)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should create price exactly at the bound", func(t *testing.T) {
		p, err := kernel.NewPrice(int64(1) << 62)

		require.NoError(t, err)
		assert.Equal(t, int64(1)<<62, p.Amount())
	})

	t.Run("should fail with amount above the bound", func(t *testing.T) {
		_, err := kernel.NewPrice(int64(1)<<62 + 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPrice_Validate(t *testing.T) {
	t.Run("should fail for zero value struct", func(t *testing.T) {
		var p kernel.Price

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceIsNotConstructed, err)
	})
}

func TestPrice_Add(t *testing.T) {
	t.Run("should add two prices", func(t *testing.T) {
		a, _ := kernel.NewPrice(16_000)
		b, _ := kernel.NewPrice(3_000)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(19_000), sum.Amount())
	})

	t.Run("should fail when operand is not constructed", func(t *testing.T) {
		a, _ := kernel.NewPrice(16_000)
		var b kernel.Price

		_, err := a.Add(b)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceIsNotConstructed, err)
	})

	t.Run("should fail when the sum overflows the bound", func(t *testing.T) {
		a, err := kernel.NewPrice(int64(1) << 62)
		require.NoError(t, err)
		b, err := kernel.NewPrice(1)
		require.NoError(t, err)

		_, err = a.Add(b)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPrice_MultiplyBy(t *testing.T) {
	t.Run("should multiply by quantity", func(t *testing.T) {
		p, _ := kernel.NewPrice(16_000)

		total, err := p.MultiplyBy(2)

		require.NoError(t, err)
		assert.Equal(t, int64(32_000), total.Amount())
	})

	t.Run("should allow zero quantity", func(t *testing.T) {
		p, _ := kernel.NewPrice(16_000)

		total, err := p.MultiplyBy(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), total.Amount())
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		p, _ := kernel.NewPrice(16_000)

		_, err := p.MultiplyBy(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail when the product overflows the bound", func(t *testing.T) {
		p, err := kernel.NewPrice(int64(1) << 40)
		require.NoError(t, err)

		_, err = p.MultiplyBy(int64(1) << 30)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPrice_Comparisons(t *testing.T) {
	t.Run("GreaterThan compares amounts", func(t *testing.T) {
		high, _ := kernel.NewPrice(33_000)
		low, _ := kernel.NewPrice(32_000)

		assert.True(t, high.GreaterThan(low))
		assert.False(t, low.GreaterThan(high))
		assert.False(t, low.GreaterThan(low))
	})

	t.Run("IsEqual compares amounts", func(t *testing.T) {
		a, _ := kernel.NewPrice(19_000)
		b, _ := kernel.NewPrice(19_000)
		c, _ := kernel.NewPrice(20_000)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
