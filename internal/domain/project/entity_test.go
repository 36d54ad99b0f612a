//go:build unit

package project_test

import (
	"testing"

	"storefront-api/internal/domain/payment"
	"storefront-api/internal/domain/project"
	"storefront-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUTR(t *testing.T, s string) payment.UTR {
	t.Helper()
	utr, err := payment.NewUTR(s)
	require.NoError(t, err)
	return utr
}

func TestRequestCreation(t *testing.T) {
	t.Run("starts submitted with both phases unset", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, project.StatusSubmitted, req.Status())
		assert.Equal(t, project.PaymentUnset, req.Advance().State())
		assert.Equal(t, project.PaymentUnset, req.Full().State())
		assert.Empty(t, req.Deliverables())
	})

	t.Run("empty requirements form is rejected", func(t *testing.T) {
		_, err := project.NewSRSData(map[string]string{})
		assert.ErrorIs(t, err, project.ErrEmptySRS)
	})

	t.Run("blank field label is rejected", func(t *testing.T) {
		_, err := project.NewSRSData(map[string]string{" ": "value"})
		assert.ErrorIs(t, err, project.ErrEmptySRSField)
	})
}

func TestInitialModeration(t *testing.T) {
	t.Run("approve with non-zero advance", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.Approve(payment.MustMoney(50000)))
		assert.Equal(t, project.StatusAdvancePending, req.Status())
		assert.Equal(t, int64(50000), req.Advance().Amount().Paise())
		assert.Equal(t, project.PaymentUnset, req.Advance().State())
	})

	t.Run("approve with zero advance skips straight to in_progress", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.Approve(payment.Money{}))
		assert.Equal(t, project.StatusInProgress, req.Status())
		assert.Equal(t, project.PaymentUnset, req.Advance().State())
	})

	t.Run("reject is terminal", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.Reject())
		assert.Equal(t, project.StatusRejected, req.Status())
		assert.ErrorIs(t, req.Approve(payment.MustMoney(100)), project.ErrNotSubmitted)
		assert.Equal(t, project.StatusRejected, req.Status())
	})

	t.Run("approve twice fails without mutation", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.Approve(payment.MustMoney(50000)))
		assert.ErrorIs(t, req.Approve(payment.MustMoney(90000)), project.ErrNotSubmitted)
		assert.Equal(t, int64(50000), req.Advance().Amount().Paise())
	})
}

func TestAdvanceFlow(t *testing.T) {
	t.Run("submit then approve reaches in_progress", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildAt(project.StatusAdvancePending, 50000)
		require.NoError(t, err)

		require.NoError(t, req.SubmitAdvanceUTR(mustUTR(t, "UTR123")))
		assert.Equal(t, project.StatusAdvancePending, req.Status())
		assert.Equal(t, project.PaymentPending, req.Advance().State())

		require.NoError(t, req.ApproveAdvance())
		assert.Equal(t, project.StatusInProgress, req.Status())
		assert.Equal(t, project.PaymentApproved, req.Advance().State())
	})

	t.Run("reject resets the phase for resubmission", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildAt(project.StatusAdvancePending, 50000)
		require.NoError(t, err)

		require.NoError(t, req.SubmitAdvanceUTR(mustUTR(t, "UTR123")))
		require.NoError(t, req.RejectAdvance())

		assert.Equal(t, project.StatusAdvancePending, req.Status())
		assert.Equal(t, project.PaymentUnset, req.Advance().State())
		assert.Nil(t, req.Advance().UTR())
		assert.Equal(t, int64(50000), req.Advance().Amount().Paise())

		require.NoError(t, req.SubmitAdvanceUTR(mustUTR(t, "UTR456")))
		assert.Equal(t, project.PaymentPending, req.Advance().State())
	})

	t.Run("double submission is refused", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildAt(project.StatusAdvancePending, 50000)
		require.NoError(t, err)

		require.NoError(t, req.SubmitAdvanceUTR(mustUTR(t, "UTR123")))
		assert.ErrorIs(t, req.SubmitAdvanceUTR(mustUTR(t, "UTR456")), project.ErrUTRAlreadySent)
		assert.Equal(t, "UTR123", req.Advance().UTR().String())
	})

	t.Run("approve without pending submission fails without mutation", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildAt(project.StatusAdvancePending, 50000)
		require.NoError(t, err)

		assert.ErrorIs(t, req.ApproveAdvance(), project.ErrAdvanceNotPending)
		assert.Equal(t, project.StatusAdvancePending, req.Status())
		assert.Equal(t, project.PaymentUnset, req.Advance().State())
	})

	t.Run("utr submission outside advance_pending fails", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, req.SubmitAdvanceUTR(mustUTR(t, "UTR123")), project.ErrNotAdvancePending)
	})
}

func TestFullPaymentFlow(t *testing.T) {
	t.Run("explicit admin amount when service has no fixed price", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildAt(project.StatusInProgress, 50000)
		require.NoError(t, err)

		require.NoError(t, req.RequestFullPayment(payment.MustMoney(300000), payment.Money{}))
		assert.Equal(t, project.StatusPaymentPending, req.Status())
		assert.Equal(t, int64(300000), req.Full().Amount().Paise())
	})

	t.Run("fixed service price overrides admin input", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildAt(project.StatusInProgress, 50000)
		require.NoError(t, err)

		require.NoError(t, req.RequestFullPayment(payment.MustMoney(123), payment.MustMoney(500000)))
		assert.Equal(t, int64(500000), req.Full().Amount().Paise())
	})

	t.Run("cannot request full payment before work starts", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildAt(project.StatusAdvancePending, 50000)
		require.NoError(t, err)

		assert.ErrorIs(t, req.RequestFullPayment(payment.MustMoney(100), payment.Money{}), project.ErrNotInProgress)
		assert.Equal(t, project.StatusAdvancePending, req.Status())
	})

	t.Run("zero resolved amount is refused", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildAt(project.StatusInProgress, 50000)
		require.NoError(t, err)

		assert.ErrorIs(t, req.RequestFullPayment(payment.Money{}, payment.Money{}), project.ErrZeroFullAmount)
		assert.Equal(t, project.StatusInProgress, req.Status())
	})

	t.Run("submit then approve completes the request", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildAt(project.StatusPaymentPending, 50000)
		require.NoError(t, err)

		require.NoError(t, req.SubmitFullUTR(mustUTR(t, "FULL123")))
		assert.Equal(t, project.StatusFinalPaymentPending, req.Status())
		assert.Equal(t, project.PaymentPending, req.Full().State())

		require.NoError(t, req.ApproveFullPayment())
		assert.Equal(t, project.StatusCompleted, req.Status())
		assert.True(t, req.FullyPaid())
	})

	t.Run("reject loops back to payment_pending", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildAt(project.StatusFinalPaymentPending, 50000)
		require.NoError(t, err)

		require.NoError(t, req.RejectFullPayment())
		assert.Equal(t, project.StatusPaymentPending, req.Status())
		assert.Equal(t, project.PaymentUnset, req.Full().State())
		assert.Nil(t, req.Full().UTR())

		require.NoError(t, req.SubmitFullUTR(mustUTR(t, "FULL456")))
		assert.Equal(t, project.StatusFinalPaymentPending, req.Status())
	})

	t.Run("approve without pending submission fails without mutation", func(t *testing.T) {
		req, err := builder.NewProjectRequestBuilder().BuildAt(project.StatusPaymentPending, 50000)
		require.NoError(t, err)

		assert.ErrorIs(t, req.ApproveFullPayment(), project.ErrFullNotPending)
		assert.ErrorIs(t, req.RejectFullPayment(), project.ErrFullNotPending)
		assert.Equal(t, project.StatusPaymentPending, req.Status())
	})
}

func TestDeliverables(t *testing.T) {
	items := []project.Deliverable{
		{Name: "Repository", URL: "https://example.com/repo"},
		{Name: "Live site", URL: "https://example.com/live"},
	}

	t.Run("attachable from in_progress onward, order preserved", func(t *testing.T) {
		for _, status := range []project.Status{
			project.StatusInProgress,
			project.StatusPaymentPending,
			project.StatusFinalPaymentPending,
			project.StatusCompleted,
		} {
			req, err := builder.NewProjectRequestBuilder().BuildAt(status, 50000)
			require.NoError(t, err)
			require.NoError(t, req.AttachDeliverables(items))
			assert.Equal(t, items, req.Deliverables())
			assert.Equal(t, status, req.Status(), "attachment must not transition state")
		}
	})

	t.Run("too early or terminal-rejected requests refuse content", func(t *testing.T) {
		early, err := builder.NewProjectRequestBuilder().BuildAt(project.StatusAdvancePending, 50000)
		require.NoError(t, err)
		assert.ErrorIs(t, early.AttachDeliverables(items), project.ErrDeliveryTooEarly)

		rejected, err := builder.NewProjectRequestBuilder().BuildAt(project.StatusRejected, 0)
		require.NoError(t, err)
		assert.ErrorIs(t, rejected.AttachDeliverables(items), project.ErrRequestTerminated)
	})

	t.Run("deliverable validation", func(t *testing.T) {
		_, err := project.NewDeliverable("", "https://example.com")
		assert.ErrorIs(t, err, project.ErrEmptyDeliverable)

		_, err = project.NewDeliverable("Repo", "not a url")
		assert.ErrorIs(t, err, project.ErrInvalidDeliverable)
	})
}

// Scenario from the storefront: SRS submitted for a custom service with a
// 500-rupee advance, admin approves with the default, user pays, admin
// confirms.
func TestAdvanceEndToEnd(t *testing.T) {
	req, err := builder.NewProjectRequestBuilder().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, req.Approve(payment.MustMoney(50000)))
	assert.Equal(t, project.StatusAdvancePending, req.Status())
	assert.Equal(t, int64(50000), req.Advance().Amount().Paise())

	require.NoError(t, req.SubmitAdvanceUTR(mustUTR(t, "UTR123")))
	assert.Equal(t, project.PaymentPending, req.Advance().State())

	require.NoError(t, req.ApproveAdvance())
	assert.Equal(t, project.StatusInProgress, req.Status())
}
