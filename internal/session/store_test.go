package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deal-analyzer/internal/deal"
	"deal-analyzer/internal/forms"
	"deal-analyzer/internal/model"
	"deal-analyzer/internal/property"
	"deal-analyzer/internal/strategy"
)

func newStore() *Store {
	return NewStore(deal.New(deal.DefaultOptions()), time.Hour)
}

func TestCreateAndGet(t *testing.T) {
	s := newStore()
	created := s.Create()

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BuyNone, got.Selection.Buy)
	assert.Equal(t, model.SellNone, got.Selection.Sell)

	_, err = s.Get("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSelectBuyResetsSellAndAssumptions(t *testing.T) {
	s := newStore()
	id := s.Create().ID

	_, err := s.SelectBuy(id, "purchase")
	require.NoError(t, err)
	require.NoError(t, s.UpdateBuyField(id, "arv", "200000"))
	ok, err := s.SelectSell(id, "rent")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, s.UpdateSellField(id, "monthlyOperating", 1500))

	buy, err := s.SelectBuy(id, "purchase")
	require.NoError(t, err)
	assert.Equal(t, forms.Empty(model.BuyPurchase), buy)

	sess, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, model.SellNone, sess.Selection.Sell)
	assert.Zero(t, sess.Sell.MonthlyOperating)
	assert.Zero(t, sess.Buy.ARV)
}

func TestSelectSellRejectsIncompatible(t *testing.T) {
	s := newStore()
	id := s.Create().ID
	_, err := s.SelectBuy(id, "wholesaling")
	require.NoError(t, err)

	ok, err := s.SelectSell(id, "rent")
	require.NoError(t, err)
	assert.False(t, ok)

	sess, _ := s.Get(id)
	assert.Equal(t, model.SellNone, sess.Selection.Sell)

	_, err = s.SelectSell(id, "timeshare")
	assert.ErrorIs(t, err, strategy.ErrUnknownStrategy)
}

func TestUnknownFieldLeavesSessionUntouched(t *testing.T) {
	s := newStore()
	id := s.Create().ID
	_, err := s.SelectBuy(id, "lease")
	require.NoError(t, err)

	err = s.UpdateBuyFields(id, map[string]any{"salesPrice": "100000", "arv": "5"})
	assert.ErrorIs(t, err, forms.ErrUnknownField)

	sess, _ := s.Get(id)
	assert.Zero(t, sess.Buy.SalesPrice)
}

func TestComputeWholesale(t *testing.T) {
	s := newStore()
	id := s.Create().ID
	_, err := s.SelectBuy(id, "wholesaling")
	require.NoError(t, err)
	ok, err := s.SelectSell(id, "wholesaling")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, s.UpdateBuyField(id, "arv", "300,000"))
	require.NoError(t, s.UpdateSellFields(id, map[string]any{"wholesaleProfit": "5", "buyerProfit": "10"}))

	res, err := s.Compute(id)
	require.NoError(t, err)
	assert.True(t, res.Compatible)
	assert.InDelta(t, 15000, res.NetProfit, 1e-9)
}

func TestComputeIncompleteSelection(t *testing.T) {
	s := newStore()
	id := s.Create().ID
	res, err := s.Compute(id)
	require.NoError(t, err)
	assert.False(t, res.Compatible)
}

func TestSeedFromProperty(t *testing.T) {
	s := newStore()
	id := s.Create().ID
	_, err := s.SelectBuy(id, "purchase")
	require.NoError(t, err)

	filled, err := s.SeedFromProperty(id, property.Property{ID: "p", EstimatedValue: 180000, SquareFoot: 1200})
	require.NoError(t, err)
	assert.Equal(t, []string{"arv", "propSqft"}, filled)

	sess, _ := s.Get(id)
	assert.Equal(t, 180000.0, sess.Buy.ARV)
}

func TestExpiryAndSweep(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newStore()
	s.now = func() time.Time { return now }

	id := s.Create().ID
	s.Create()
	now = now.Add(30 * time.Minute)
	_, err := s.SelectBuy(id, "lease")
	require.NoError(t, err)

	now = now.Add(45 * time.Minute)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())

	_, err = s.Get(id)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = s.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := newStore()
	id := s.Create().ID
	require.NoError(t, s.Delete(id))
	assert.ErrorIs(t, s.Delete(id), ErrNotFound)
}

func TestConcurrentSessions(t *testing.T) {
	s := newStore()
	const n = 16

	var wg sync.WaitGroup
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = s.Create().ID
	}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := ids[i]
			if _, err := s.SelectBuy(id, "purchase"); err != nil {
				t.Error(err)
				return
			}
			if err := s.UpdateBuyField(id, "arv", fmt.Sprint(1000*(i+1))); err != nil {
				t.Error(err)
				return
			}
			if _, err := s.Get(id); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, n, s.Len())
	for i, id := range ids {
		sess, err := s.Get(id)
		require.NoError(t, err)
		assert.Equal(t, float64(1000*(i+1)), sess.Buy.ARV)
	}
}
