package game

import (
	"fmt"

	"dinnerdate/internal/models"
)

// RewardCatalog owns the redeemable rewards and gates redemption on the
// ledger balance.
type RewardCatalog struct {
	rewards []*models.Reward
	byID    map[string]*models.Reward
}

// NewRewardCatalog seeds the fixed reward store.
func NewRewardCatalog() *RewardCatalog {
	c := &RewardCatalog{byID: make(map[string]*models.Reward)}
	for _, r := range []models.Reward{
		{ID: "dishwashing-pass", Title: "Dishwashing Pass", Cost: 100, Icon: "🧼", Description: "One free pass from doing dishes."},
		{ID: "movie-choice", Title: "Movie Choice", Cost: 150, Icon: "🎬", Description: "I get to pick the movie tonight."},
		{ID: "massage", Title: "10m Massage", Cost: 300, Icon: "💆", Description: "A relaxing shoulder or foot massage."},
		{ID: "breakfast-in-bed", Title: "Breakfast in Bed", Cost: 500, Icon: "🥐", Description: "Served with coffee and a smile."},
	} {
		entry := r
		c.rewards = append(c.rewards, &entry)
		c.byID[entry.ID] = &entry
	}
	return c
}

// Redeem exchanges coins for the reward. The cost is debited first; if the
// debit fails nothing changes, so RedeemedCount can never run ahead of the
// ledger. Returns the RewardRedeemed event on success.
func (c *RewardCatalog) Redeem(id string, ledger *Ledger) (*models.Reward, models.Event, error) {
	reward, ok := c.byID[id]
	if !ok {
		return nil, models.Event{}, fmt.Errorf("reward %s: %w", id, ErrNotFound)
	}
	if err := ledger.Debit(reward.Cost); err != nil {
		return nil, models.Event{}, fmt.Errorf("redeem %s: %w", id, err)
	}
	reward.RedeemedCount++
	return reward, models.Event{
		Kind:     models.EventRewardRedeemed,
		RewardID: reward.ID,
	}, nil
}

// List returns copies of all rewards in catalog order.
func (c *RewardCatalog) List() []models.Reward {
	out := make([]models.Reward, len(c.rewards))
	for i, r := range c.rewards {
		out[i] = *r
	}
	return out
}
