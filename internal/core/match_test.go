package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
)

var testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func makeOrder(id string, side domain.Side, price, amount string, age time.Duration) domain.Order {
	return domain.Order{
		ID:        id,
		Trader:    "trader-" + id,
		Symbol:    "ETH-USDC",
		Side:      side,
		Price:     decimal.RequireFromString(price),
		Amount:    decimal.RequireFromString(amount),
		CreatedAt: testTime.Add(-age),
	}
}

// testMatcher returns a matcher with a fixed clock and sequential IDs so
// outputs are deterministic.
func testMatcher() *Matcher {
	n := 0
	return NewMatcher(
		WithClock(func() time.Time { return testTime }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got),
		"want %s, got %s", want, got.String())
}

func TestCanCross(t *testing.T) {
	buy := makeOrder("b1", domain.Buy, "110", "5", 0)
	sell := makeOrder("s1", domain.Sell, "100", "5", 0)

	assert.True(t, CanCross(&buy, &sell))

	cheapBuy := makeOrder("b2", domain.Buy, "99.999999999999999999", "5", 0)
	assert.False(t, CanCross(&cheapBuy, &sell))

	atPrice := makeOrder("b3", domain.Buy, "100", "5", 0)
	assert.True(t, CanCross(&atPrice, &sell))
}

func TestMatchAmount(t *testing.T) {
	buy := makeOrder("b1", domain.Buy, "110", "5", 0)
	sell := makeOrder("s1", domain.Sell, "100", "3", 0)

	assertDecimal(t, "3", MatchAmount(&buy, &sell))
	assertDecimal(t, "3", MatchAmount(&sell, &buy))

	small := makeOrder("s2", domain.Sell, "100", "0.000000000000000001", 0)
	assertDecimal(t, "0.000000000000000001", MatchAmount(&buy, &small))
}

func TestMatchPrice(t *testing.T) {
	buy := makeOrder("b1", domain.Buy, "110", "5", 0)
	sell := makeOrder("s1", domain.Sell, "100", "5", 0)

	assertDecimal(t, "105", MatchPrice(&buy, &sell))
}

// Mean of two 18-digit prices needs one extra digit; halving must stay exact.
func TestMatchPriceExactAtFullScale(t *testing.T) {
	buy := makeOrder("b1", domain.Buy, "2.000000000000000003", "1", 0)
	sell := makeOrder("s1", domain.Sell, "1.000000000000000000", "1", 0)

	assertDecimal(t, "1.5000000000000000015", MatchPrice(&buy, &sell))
}

func TestMatchPriceBetweenInputs(t *testing.T) {
	cases := []struct{ buy, sell string }{
		{"110", "100"},
		{"100", "100"},
		{"0.03", "0.01"},
		{"12345.678901234567891234", "12345.678901234567891232"},
	}
	for _, tc := range cases {
		buy := makeOrder("b", domain.Buy, tc.buy, "1", 0)
		sell := makeOrder("s", domain.Sell, tc.sell, "1", 0)
		price := MatchPrice(&buy, &sell)

		lo := decimal.Min(buy.Price, sell.Price)
		hi := decimal.Max(buy.Price, sell.Price)
		require.True(t, price.GreaterThanOrEqual(lo), "price %s below %s", price, lo)
		require.True(t, price.LessThanOrEqual(hi), "price %s above %s", price, hi)
	}
}

func TestLedgerNonConsuming(t *testing.T) {
	o := makeOrder("s1", domain.Sell, "100", "10", 0)
	l := newLedger(false)

	l.take(&o, decimal.NewFromInt(7))
	assertDecimal(t, "10", l.available(&o))
}

func TestLedgerConsuming(t *testing.T) {
	o := makeOrder("s1", domain.Sell, "100", "10", 0)
	l := newLedger(true)

	assertDecimal(t, "10", l.available(&o))
	l.take(&o, decimal.NewFromInt(7))
	assertDecimal(t, "3", l.available(&o))
	l.take(&o, decimal.NewFromInt(3))
	assertDecimal(t, "0", l.available(&o))
}
