//go:build unit

package order_test

import (
	"testing"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, amount int64) *order.StandardOrder {
	t.Helper()
	utr, err := payment.NewUTR("UTR1234567")
	require.NoError(t, err)
	o, err := order.NewStandardOrder(uuid.New(), uuid.New(), payment.MustMoney(amount), utr)
	require.NoError(t, err)
	return o
}

func TestStandardOrder(t *testing.T) {
	t.Run("starts pending with snapshotted amount", func(t *testing.T) {
		o := newPendingOrder(t, 69900)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, int64(69900), o.Amount().Paise())
		assert.Equal(t, "UTR1234567", o.UTR().String())
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		utr, err := payment.NewUTR("UTR1234567")
		require.NoError(t, err)
		_, err = order.NewStandardOrder(uuid.New(), uuid.New(), payment.Money{}, utr)
		assert.ErrorIs(t, err, order.ErrZeroAmount)
	})

	t.Run("approve is monotonic", func(t *testing.T) {
		o := newPendingOrder(t, 69900)
		require.NoError(t, o.Approve())
		assert.Equal(t, order.StatusApproved, o.Status())

		assert.ErrorIs(t, o.Approve(), order.ErrAlreadyModerated)
		assert.ErrorIs(t, o.Reject(), order.ErrAlreadyModerated)
		assert.Equal(t, order.StatusApproved, o.Status())
	})

	t.Run("reject is monotonic", func(t *testing.T) {
		o := newPendingOrder(t, 69900)
		require.NoError(t, o.Reject())
		assert.Equal(t, order.StatusRejected, o.Status())

		assert.ErrorIs(t, o.Approve(), order.ErrAlreadyModerated)
		assert.Equal(t, order.StatusRejected, o.Status())
	})

	t.Run("invalid utr is rejected before any order exists", func(t *testing.T) {
		_, err := payment.NewUTR("x")
		assert.ErrorIs(t, err, payment.ErrInvalidUTR)
	})
}
