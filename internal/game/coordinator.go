package game

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"dinnerdate/internal/models"
	"dinnerdate/internal/observability"
)

// Credit policy. Completion pays out only on the advance path; a rating pays
// a flat amount whatever the stars.
const (
	completionCredit = 50
	ratingCredit     = 10
)

// ActionResult is the aggregate returned to the presentation layer after
// every action. Notifications are short human-readable strings the caller
// is responsible for displaying; the core emits nothing else.
type ActionResult struct {
	Orders        []models.Order       `json:"orders"`
	Achievements  []models.Achievement `json:"achievements"`
	Rewards       []models.Reward      `json:"rewards"`
	Balance       int                  `json:"balance"`
	PendingCount  int                  `json:"pendingCount"`
	Notifications []string             `json:"notifications,omitempty"`
}

// Coordinator is the single entry point for all gamification actions. Each
// action mutates the owning component, applies the credit policy, routes the
// resulting events through achievement evaluation, and returns the updated
// aggregate. All actions serialize through one mutex; the components
// themselves assume a single writer.
type Coordinator struct {
	mu           sync.Mutex
	orders       *OrderStore
	ledger       *Ledger
	achievements *AchievementTracker
	rewards      *RewardCatalog
	profile      models.Profile
	log          zerolog.Logger
}

// NewCoordinator builds the aggregate with seed catalogs, the starting coin
// balance, and the household profile.
func NewCoordinator(profile models.Profile, startingCoins int, log zerolog.Logger) *Coordinator {
	return &Coordinator{
		orders:       NewOrderStore(),
		ledger:       NewLedger(startingCoins),
		achievements: NewAchievementTracker(),
		rewards:      NewRewardCatalog(),
		profile:      profile,
		log:          log,
	}
}

// PlaceOrder creates a Pending order for the dish, credited to the partner
// as chef. It always succeeds.
func (c *Coordinator) PlaceOrder(dish models.Dish, scheduledTime, note string) ActionResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	order, ev := c.orders.Place(dish, scheduledTime, note, c.profile.PartnerName)
	observability.RecordOrderPlaced()
	c.log.Info().Str("order_id", order.ID).Str("dish", dish.Name).Msg("order placed")

	notes := []string{fmt.Sprintf("Ordered %s!", dish.Name)}
	notes = append(notes, c.evaluate(ev)...)
	return c.result(notes)
}

// AdvanceOrder moves the order one step along the status flow. Reaching
// Completed on this path pays the completion credit.
func (c *Coordinator) AdvanceOrder(orderID string) (ActionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	order, ev, err := c.orders.Advance(orderID)
	if err != nil {
		return ActionResult{}, err
	}
	c.log.Info().Str("order_id", order.ID).Str("status", string(order.Status)).Msg("order advanced")

	var notes []string
	if ev.Status == models.OrderStatusCompleted {
		c.ledger.Credit(completionCredit)
		order.RewardEarned = completionCredit
		observability.RecordOrderCompleted()
		observability.RecordCoinsCredited("completion", completionCredit)
		notes = append(notes, fmt.Sprintf("Cooking Done! +%d Coins", completionCredit))
	}
	notes = append(notes, c.evaluate(ev)...)
	return c.result(notes), nil
}

// RateOrder records the one-shot rating, closing the order if it was still
// open, and pays the flat rating credit.
func (c *Coordinator) RateOrder(orderID string, rating int, review string) (ActionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	order, events, err := c.orders.Rate(orderID, rating, review)
	if err != nil {
		return ActionResult{}, err
	}
	c.ledger.Credit(ratingCredit)
	observability.RecordCoinsCredited("rating", ratingCredit)
	c.log.Info().Str("order_id", order.ID).Int("rating", rating).Msg("order rated")

	notes := []string{fmt.Sprintf("Rating submitted! +%d Coins", ratingCredit)}
	for _, ev := range events {
		if ev.Kind == models.EventStatusChanged {
			observability.RecordOrderCompleted()
		}
		notes = append(notes, c.evaluate(ev)...)
	}
	return c.result(notes), nil
}

// RedeemReward spends coins on a reward. The debit happens before the
// redemption count moves, so a refused debit changes nothing.
func (c *Coordinator) RedeemReward(rewardID string) (ActionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	reward, ev, err := c.rewards.Redeem(rewardID, c.ledger)
	if err != nil {
		return ActionResult{}, err
	}
	observability.RecordCoinsSpent(reward.Cost)
	observability.RecordRewardRedemption(reward.ID)
	c.log.Info().Str("reward_id", reward.ID).Int("cost", reward.Cost).Msg("reward redeemed")

	notes := []string{fmt.Sprintf("Redeemed: %s!", reward.Title)}
	notes = append(notes, c.evaluate(ev)...)
	return c.result(notes), nil
}

// State returns the current aggregate without performing any action.
func (c *Coordinator) State() ActionResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result(nil)
}

// Balance returns the current coin balance.
func (c *Coordinator) Balance() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.Balance()
}

// FiveStarProgress reports progress toward Master Chef.
func (c *Coordinator) FiveStarProgress() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.achievements.FiveStarProgress()
}

// Profile returns the household profile.
func (c *Coordinator) Profile() models.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

// SetProfile replaces the household profile. The chef recorded on future
// orders follows the new partner name; past orders keep theirs.
func (c *Coordinator) SetProfile(p models.Profile) models.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p.Name != "" {
		c.profile.Name = p.Name
	}
	if p.PartnerName != "" {
		c.profile.PartnerName = p.PartnerName
	}
	if !p.StartDate.IsZero() {
		c.profile.StartDate = p.StartDate
	}
	return c.profile
}

// evaluate routes one event through the achievement tracker and converts
// fresh unlocks into notifications. Callers hold the mutex.
func (c *Coordinator) evaluate(ev models.Event) []string {
	var notes []string
	for _, a := range c.achievements.Evaluate(ev) {
		observability.RecordAchievementUnlock(a.ID)
		c.log.Info().Str("achievement", a.ID).Msg("achievement unlocked")
		notes = append(notes, "🏆 Unlocked: "+a.Title)
	}
	return notes
}

// result snapshots the aggregate. Callers hold the mutex.
func (c *Coordinator) result(notes []string) ActionResult {
	return ActionResult{
		Orders:        c.orders.List(),
		Achievements:  c.achievements.List(),
		Rewards:       c.rewards.List(),
		Balance:       c.ledger.Balance(),
		PendingCount:  c.orders.PendingCount(),
		Notifications: notes,
	}
}
