package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
)

func TestComputeDepthAggregatesByExactPrice(t *testing.T) {
	m := testMatcher()
	snap := snapshot(
		[]domain.Order{
			makeOrder("b1", domain.Buy, "100", "2", 0),
			makeOrder("b2", domain.Buy, "100", "3", 0),
			makeOrder("b3", domain.Buy, "99.5", "1", 0),
		},
		[]domain.Order{
			makeOrder("s1", domain.Sell, "101", "4", 0),
			makeOrder("s2", domain.Sell, "102", "6", 0),
			makeOrder("s3", domain.Sell, "101", "1", 0),
		},
	)

	view, err := m.ComputeDepth(snap)
	require.NoError(t, err)

	require.Len(t, view.BuyDepth, 2)
	assertDecimal(t, "100", view.BuyDepth[0].Price)
	assertDecimal(t, "5", view.BuyDepth[0].Amount)
	assertDecimal(t, "99.5", view.BuyDepth[1].Price)

	require.Len(t, view.SellDepth, 2)
	assertDecimal(t, "101", view.SellDepth[0].Price)
	assertDecimal(t, "5", view.SellDepth[0].Amount)
	assertDecimal(t, "102", view.SellDepth[1].Price)

	assert.True(t, view.HasBid)
	assert.True(t, view.HasAsk)
	assertDecimal(t, "100", view.BestBid)
	assertDecimal(t, "101", view.BestAsk)
	assertDecimal(t, "1", view.Spread)
	assertDecimal(t, "100.5", view.MidPrice)
}

// Level totals must conserve the snapshot's order amounts on each side.
func TestComputeDepthConservation(t *testing.T) {
	m := testMatcher()
	snap := snapshot(
		[]domain.Order{
			makeOrder("b1", domain.Buy, "100.000000000000000001", "0.1", 0),
			makeOrder("b2", domain.Buy, "100.000000000000000001", "0.2", 0),
			makeOrder("b3", domain.Buy, "99", "7.77", 0),
		},
		[]domain.Order{
			makeOrder("s1", domain.Sell, "101", "3.3", 0),
		},
	)

	view, err := m.ComputeDepth(snap)
	require.NoError(t, err)

	sumLevels := decimal.Zero
	for _, l := range view.BuyDepth {
		sumLevels = sumLevels.Add(l.Amount)
	}
	sumOrders := decimal.Zero
	for _, o := range snap.Bids {
		sumOrders = sumOrders.Add(o.Amount)
	}
	assert.True(t, sumLevels.Equal(sumOrders), "bid depth %s != bid orders %s", sumLevels, sumOrders)

	require.Len(t, view.SellDepth, 1)
	assertDecimal(t, "3.3", view.SellDepth[0].Amount)
}

// A crossed book is reported faithfully with its negative spread, never
// clamped.
func TestComputeDepthCrossedBook(t *testing.T) {
	m := testMatcher()
	snap := snapshot(
		[]domain.Order{makeOrder("b1", domain.Buy, "105", "1", 0)},
		[]domain.Order{makeOrder("s1", domain.Sell, "100", "1", 0)},
	)

	view, err := m.ComputeDepth(snap)
	require.NoError(t, err)
	assertDecimal(t, "-5", view.Spread)
	assertDecimal(t, "102.5", view.MidPrice)
}

// An empty book yields empty depth and explicitly undefined spread/mid, not
// a fabricated zero quote.
func TestComputeDepthEmptyBook(t *testing.T) {
	m := testMatcher()

	view, err := m.ComputeDepth(snapshot(nil, nil))
	require.NoError(t, err)
	assert.Empty(t, view.BuyDepth)
	assert.Empty(t, view.SellDepth)
	assert.False(t, view.HasBid)
	assert.False(t, view.HasAsk)
}

func TestComputeDepthOneSidedBook(t *testing.T) {
	m := testMatcher()
	snap := snapshot([]domain.Order{makeOrder("b1", domain.Buy, "100", "5", 0)}, nil)

	view, err := m.ComputeDepth(snap)
	require.NoError(t, err)
	assert.True(t, view.HasBid)
	assert.False(t, view.HasAsk)
	assertDecimal(t, "100", view.BestBid)
	// spread/mid undefined without an ask
	assertDecimal(t, "0", view.Spread)
	assertDecimal(t, "0", view.MidPrice)
}

// Prices that differ only in trailing representation still land in one
// level when numerically equal.
func TestComputeDepthNormalizesEqualPrices(t *testing.T) {
	m := testMatcher()
	a := makeOrder("b1", domain.Buy, "100", "1", 0)
	b := makeOrder("b2", domain.Buy, "100.0", "2", 0)
	snap := snapshot([]domain.Order{a, b}, nil)

	view, err := m.ComputeDepth(snap)
	require.NoError(t, err)
	require.Len(t, view.BuyDepth, 1)
	assertDecimal(t, "3", view.BuyDepth[0].Amount)
}
