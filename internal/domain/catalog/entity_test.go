//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"storefront-api/internal/domain/catalog"
	"storefront-api/internal/domain/payment"
	"storefront-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrice(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	base := payment.MustMoney(100000)
	offerPrice := payment.MustMoney(70000)
	offer, err := catalog.NewOffer("Launch sale", offerPrice, t0, t0.Add(3600*time.Second))
	require.NoError(t, err)

	cases := []struct {
		name     string
		offer    *catalog.Offer
		now      time.Time
		expected int64
	}{
		{name: "no offer", offer: nil, now: t0, expected: 100000},
		{name: "inside window", offer: &offer, now: t0.Add(1800 * time.Second), expected: 70000},
		{name: "at window start", offer: &offer, now: t0, expected: 70000},
		{name: "at window end (exclusive)", offer: &offer, now: t0.Add(3600 * time.Second), expected: 100000},
		{name: "after window", offer: &offer, now: t0.Add(3601 * time.Second), expected: 100000},
		{name: "before window", offer: &offer, now: t0.Add(-1 * time.Second), expected: 100000},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			price := catalog.ResolvePrice(base, c.offer, c.now)
			assert.Equal(t, c.expected, price.Paise())
		})
	}
}

func TestService(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		svc, err := builder.NewServiceBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, svc)

		assert.NotEqual(t, uuid.Nil, svc.ID())
		assert.Equal(t, "Portfolio Website", svc.Title().String())
		assert.Equal(t, "portfolio-website", svc.Slug().String())
		assert.Equal(t, catalog.TypeStandard, svc.Type())
		assert.Equal(t, int64(99900), svc.BasePrice().Paise())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ServiceBuilder)
			errIs  error
		}{
			{
				name:   "empty title",
				mutate: func(b *builder.ServiceBuilder) { b.Title = "  " },
				errIs:  catalog.ErrEmptyTitle,
			},
			{
				name:   "invalid slug",
				mutate: func(b *builder.ServiceBuilder) { b.Slug = "Not A Slug!" },
				errIs:  catalog.ErrInvalidSlug,
			},
			{
				name:   "negative base price",
				mutate: func(b *builder.ServiceBuilder) { b.BasePrice = -1 },
				errIs:  payment.ErrNegativeAmount,
			},
			{
				name:   "unknown service type",
				mutate: func(b *builder.ServiceBuilder) { b.ServiceType = "bespoke" },
				errIs:  catalog.ErrInvalidServiceType,
			},
			{
				name:   "advance on standard service",
				mutate: func(b *builder.ServiceBuilder) { b.AdvanceAmount = 5000 },
				errIs:  catalog.ErrAdvanceOnStandard,
			},
			{
				name:   "advance exceeds base price",
				mutate: func(b *builder.ServiceBuilder) { b.WithCustom(100000) },
				errIs:  catalog.ErrAdvanceExceedsPrice,
			},
			{
				name:   "advance equal to base price is allowed",
				mutate: func(b *builder.ServiceBuilder) { b.WithCustom(99900) },
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				svc, err := builder.NewServiceBuilder().With(c.mutate).BuildDomain()
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, svc)
				} else {
					require.Nil(t, svc)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("offer lifecycle", func(t *testing.T) {
		now := time.Now()
		svc, err := builder.NewServiceBuilder().BuildDomain()
		require.NoError(t, err)

		offer, err := catalog.NewOffer("Festive", payment.MustMoney(69900), now.Add(-time.Hour), now.Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, svc.AttachOffer(offer))
		assert.Equal(t, int64(69900), svc.CurrentPrice(now).Paise())

		require.NoError(t, svc.DetachOffer())
		assert.Equal(t, int64(99900), svc.CurrentPrice(now).Paise())
		assert.ErrorIs(t, svc.DetachOffer(), catalog.ErrNoOfferAttached)
	})

	t.Run("offer cannot undercut custom advance", func(t *testing.T) {
		now := time.Now()
		svc, err := builder.NewServiceBuilder().WithCustom(50000).BuildDomain()
		require.NoError(t, err)

		offer, err := catalog.NewOffer("Deep cut", payment.MustMoney(40000), now, now.Add(time.Hour))
		require.NoError(t, err)
		assert.ErrorIs(t, svc.AttachOffer(offer), catalog.ErrAdvanceExceedsPrice)
		assert.Nil(t, svc.Offer())
	})

	t.Run("free service detection", func(t *testing.T) {
		now := time.Now()
		svc, err := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) {
			b.BasePrice = 0
		}).BuildDomain()
		require.NoError(t, err)
		assert.True(t, svc.IsFreeAt(now))
	})

	t.Run("invalid offer window", func(t *testing.T) {
		now := time.Now()
		_, err := catalog.NewOffer("Backwards", payment.MustMoney(100), now.Add(time.Hour), now)
		assert.ErrorIs(t, err, catalog.ErrInvalidOfferWindow)
	})
}
