package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
)

func snapshot(bids, asks []domain.Order) *domain.OrderbookSnapshot {
	return &domain.OrderbookSnapshot{
		Symbol:    "ETH-USDC",
		Bids:      bids,
		Asks:      asks,
		Timestamp: testTime,
	}
}

func TestFindMatchesSingleCrossingPair(t *testing.T) {
	m := testMatcher()
	snap := snapshot(
		[]domain.Order{makeOrder("b1", domain.Buy, "110", "5", 0)},
		[]domain.Order{makeOrder("s1", domain.Sell, "100", "5", 0)},
	)

	matches, err := m.FindMatches(snap)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "b1", matches[0].BuyOrderID)
	assert.Equal(t, "s1", matches[0].SellOrderID)
	assertDecimal(t, "5", matches[0].Amount)
	assertDecimal(t, "105", matches[0].Price)
	assert.Equal(t, testTime, matches[0].Timestamp)
}

func TestFindMatchesSkipsNonCrossing(t *testing.T) {
	m := testMatcher()
	snap := snapshot(
		[]domain.Order{makeOrder("b1", domain.Buy, "95", "5", 0)},
		[]domain.Order{makeOrder("s1", domain.Sell, "100", "5", 0)},
	)

	matches, err := m.FindMatches(snap)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// The batch matcher is a discovery report: it does not decrement resting
// amounts, so one large ask shows up against every crossing bid with its
// full amount each time.
func TestFindMatchesIsNonConsuming(t *testing.T) {
	m := testMatcher()
	snap := snapshot(
		[]domain.Order{
			makeOrder("b1", domain.Buy, "105", "4", 2*time.Minute),
			makeOrder("b2", domain.Buy, "104", "6", time.Minute),
		},
		[]domain.Order{makeOrder("s1", domain.Sell, "100", "100", 0)},
	)

	matches, err := m.FindMatches(snap)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assertDecimal(t, "4", matches[0].Amount)
	assertDecimal(t, "6", matches[1].Amount)
}

func TestFindMatchesPricePriorityOrder(t *testing.T) {
	m := testMatcher()
	snap := snapshot(
		[]domain.Order{
			makeOrder("low", domain.Buy, "101", "1", 0),
			makeOrder("high", domain.Buy, "103", "1", 0),
		},
		[]domain.Order{makeOrder("s1", domain.Sell, "100", "10", 0)},
	)

	matches, err := m.FindMatches(snap)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	// highest bid scanned first
	assert.Equal(t, "high", matches[0].BuyOrderID)
	assert.Equal(t, "low", matches[1].BuyOrderID)
}

func TestFindMatchesFIFOTieBreak(t *testing.T) {
	m := testMatcher()
	snap := snapshot(
		[]domain.Order{
			makeOrder("younger", domain.Buy, "105", "1", time.Second),
			makeOrder("older", domain.Buy, "105", "1", time.Minute),
		},
		[]domain.Order{makeOrder("s1", domain.Sell, "100", "10", 0)},
	)

	matches, err := m.FindMatches(snap)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "older", matches[0].BuyOrderID)
	assert.Equal(t, "younger", matches[1].BuyOrderID)
}

func TestFindMatchesCustomTieBreak(t *testing.T) {
	// reverse FIFO: newest first
	m := NewMatcher(
		WithTieBreak(func(a, b domain.Order) bool { return a.CreatedAt.After(b.CreatedAt) }),
		WithClock(func() time.Time { return testTime }),
	)
	snap := snapshot(
		[]domain.Order{
			makeOrder("younger", domain.Buy, "105", "1", time.Second),
			makeOrder("older", domain.Buy, "105", "1", time.Minute),
		},
		[]domain.Order{makeOrder("s1", domain.Sell, "100", "10", 0)},
	)

	matches, err := m.FindMatches(snap)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "younger", matches[0].BuyOrderID)
}

func TestFindMatchesEmptyBook(t *testing.T) {
	m := testMatcher()

	matches, err := m.FindMatches(snapshot(nil, nil))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindMatchesRejectsMalformedSnapshot(t *testing.T) {
	m := testMatcher()

	// sell order sitting in the bid list
	snap := snapshot(
		[]domain.Order{makeOrder("s1", domain.Sell, "100", "5", 0)},
		nil,
	)
	_, err := m.FindMatches(snap)
	var invalid *domain.InvalidOrderError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "s1", invalid.OrderID)
	assert.Equal(t, "side", invalid.Field)
}

func TestFindMatchesRejectsNegativeAmount(t *testing.T) {
	m := testMatcher()
	bad := makeOrder("b1", domain.Buy, "100", "5", 0)
	bad.Amount = bad.Amount.Neg()

	_, err := m.FindMatches(snapshot([]domain.Order{bad}, nil))
	var invalid *domain.InvalidOrderError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "amount", invalid.Field)
}

func TestFindMatchesDoesNotMutateSnapshot(t *testing.T) {
	m := testMatcher()
	snap := snapshot(
		[]domain.Order{
			makeOrder("b1", domain.Buy, "101", "1", 0),
			makeOrder("b2", domain.Buy, "105", "1", 0),
		},
		[]domain.Order{makeOrder("s1", domain.Sell, "100", "10", 0)},
	)

	_, err := m.FindMatches(snap)
	require.NoError(t, err)
	// input order of the bid list is untouched by the internal sort
	assert.Equal(t, "b1", snap.Bids[0].ID)
	assert.Equal(t, "b2", snap.Bids[1].ID)
	assertDecimal(t, "10", snap.Asks[0].Amount)
}
