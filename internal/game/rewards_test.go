package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinnerdate/internal/models"
)

func TestRewardCatalogSeed(t *testing.T) {
	c := NewRewardCatalog()

	list := c.List()
	require.Len(t, list, 4)
	for _, r := range list {
		assert.Positive(t, r.Cost)
		assert.Zero(t, r.RedeemedCount)
	}
}

func TestRedeemDebitsThenIncrements(t *testing.T) {
	c := NewRewardCatalog()
	l := NewLedger(150)

	reward, ev, err := c.Redeem("dishwashing-pass", l)
	require.NoError(t, err)
	assert.Equal(t, 50, l.Balance())
	assert.Equal(t, 1, reward.RedeemedCount)
	assert.Equal(t, models.EventRewardRedeemed, ev.Kind)
	assert.Equal(t, "dishwashing-pass", ev.RewardID)
}

func TestRedeemInsufficientFundsChangesNothing(t *testing.T) {
	c := NewRewardCatalog()
	l := NewLedger(50)

	_, _, err := c.Redeem("dishwashing-pass", l)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 50, l.Balance(), "failed redemption must not touch the balance")

	for _, r := range c.List() {
		assert.Zero(t, r.RedeemedCount, "failed redemption must not count")
	}
}

func TestRedeemUnknownReward(t *testing.T) {
	c := NewRewardCatalog()
	l := NewLedger(1000)

	_, _, err := c.Redeem("solid-gold-spoon", l)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1000, l.Balance())
}

func TestRedeemCountAccumulates(t *testing.T) {
	c := NewRewardCatalog()
	l := NewLedger(300)

	for i := 1; i <= 3; i++ {
		reward, _, err := c.Redeem("dishwashing-pass", l)
		require.NoError(t, err)
		assert.Equal(t, i, reward.RedeemedCount)
	}
	assert.Equal(t, 0, l.Balance())
}
