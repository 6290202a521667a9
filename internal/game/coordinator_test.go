package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinnerdate/internal/models"
)

func testCoordinator(coins int) *Coordinator {
	profile := models.Profile{Name: "Alex", PartnerName: "Sam"}
	return NewCoordinator(profile, coins, zerolog.Nop())
}

func achievementByID(t *testing.T, result ActionResult, id string) models.Achievement {
	t.Helper()
	for _, a := range result.Achievements {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("achievement %s not in result", id)
	return models.Achievement{}
}

func TestPlaceOrderRecordsChefAndNotifies(t *testing.T) {
	c := testCoordinator(120)

	result := c.PlaceOrder(models.Dish{ID: "1", Name: "Heart-shaped Pancakes", Tags: []string{"Sweet"}}, "09:00", "surprise me")

	require.Len(t, result.Orders, 1)
	assert.Equal(t, "Sam", result.Orders[0].Chef)
	assert.Equal(t, models.OrderStatusPending, result.Orders[0].Status)
	assert.Equal(t, 1, result.PendingCount)
	assert.Contains(t, result.Notifications, "Ordered Heart-shaped Pancakes!")
	assert.Equal(t, 120, result.Balance, "placing an order earns nothing")
}

func TestFullDateNight(t *testing.T) {
	c := testCoordinator(120)

	// place a spicy order
	result := c.PlaceOrder(models.Dish{ID: "2", Name: "Spicy Carbonara", Tags: []string{"Pasta", "Spicy"}}, "", "")
	assert.True(t, achievementByID(t, result, AchievementSpicyLove).Unlocked)
	assert.Contains(t, result.Notifications, "🏆 Unlocked: Spicy Love")
	orderID := result.Orders[0].ID

	// cook it through to Completed
	var err error
	for i := 0; i < 3; i++ {
		result, err = c.AdvanceOrder(orderID)
		require.NoError(t, err)
	}
	assert.Equal(t, 170, result.Balance, "completion pays +50")
	assert.True(t, achievementByID(t, result, AchievementFirstDate).Unlocked)
	assert.Contains(t, result.Notifications, "Cooking Done! +50 Coins")
	assert.Contains(t, result.Notifications, "🏆 Unlocked: First Date")
	assert.Equal(t, 50, result.Orders[0].RewardEarned)
	assert.Equal(t, 0, result.PendingCount)

	// rate it five stars
	result, err = c.RateOrder(orderID, 5, "perfect night in")
	require.NoError(t, err)
	assert.Equal(t, 180, result.Balance, "rating pays a flat +10")
	assert.Contains(t, result.Notifications, "Rating submitted! +10 Coins")
	assert.Equal(t, 1, c.FiveStarProgress())
}

func TestAdvanceCompletedOrderFails(t *testing.T) {
	c := testCoordinator(0)
	result := c.PlaceOrder(models.Dish{ID: "3", Name: "Midnight Tacos"}, "", "")
	orderID := result.Orders[0].ID

	for i := 0; i < 3; i++ {
		_, err := c.AdvanceOrder(orderID)
		require.NoError(t, err)
	}

	_, err := c.AdvanceOrder(orderID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRateToCompleteSkipsCompletionCredit(t *testing.T) {
	c := testCoordinator(0)
	result := c.PlaceOrder(models.Dish{ID: "3", Name: "Midnight Tacos"}, "", "")
	orderID := result.Orders[0].ID

	result, err := c.RateOrder(orderID, 4, "")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, result.Orders[0].Status)
	assert.Equal(t, 10, result.Balance, "rate-to-complete earns the rating credit only")
	assert.True(t, achievementByID(t, result, AchievementFirstDate).Unlocked)
}

func TestSpicyUnlockHappensOnceAcrossOrders(t *testing.T) {
	c := testCoordinator(0)
	spicy := models.Dish{ID: "2", Name: "Spicy Carbonara", Tags: []string{"Spicy"}}

	first := c.PlaceOrder(spicy, "", "")
	assert.Contains(t, first.Notifications, "🏆 Unlocked: Spicy Love")

	second := c.PlaceOrder(spicy, "", "")
	assert.NotContains(t, second.Notifications, "🏆 Unlocked: Spicy Love")
	assert.True(t, achievementByID(t, second, AchievementSpicyLove).Unlocked)
}

func TestMildOrderDoesNotUnlockSpicy(t *testing.T) {
	c := testCoordinator(0)
	result := c.PlaceOrder(models.Dish{ID: "1", Name: "Pancakes", Tags: []string{"Sweet", "Quick"}}, "", "")
	assert.False(t, achievementByID(t, result, AchievementSpicyLove).Unlocked)
}

func TestRedeemRewardHappyPath(t *testing.T) {
	c := testCoordinator(200)

	result, err := c.RedeemReward("movie-choice")
	require.NoError(t, err)
	assert.Equal(t, 50, result.Balance)
	assert.Contains(t, result.Notifications, "Redeemed: Movie Choice!")
	assert.Contains(t, result.Notifications, "🏆 Unlocked: Generous Soul")

	for _, r := range result.Rewards {
		if r.ID == "movie-choice" {
			assert.Equal(t, 1, r.RedeemedCount)
		}
	}
}

func TestRedeemRewardInsufficientFunds(t *testing.T) {
	c := testCoordinator(50)

	_, err := c.RedeemReward("dishwashing-pass")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	state := c.State()
	assert.Equal(t, 50, state.Balance)
	for _, r := range state.Rewards {
		assert.Zero(t, r.RedeemedCount)
	}
	assert.False(t, achievementByID(t, state, AchievementGenerousSoul).Unlocked)
}

func TestMasterChefAcrossFiveOrders(t *testing.T) {
	c := testCoordinator(0)
	dish := models.Dish{ID: "1", Name: "Pancakes"}

	for i := 0; i < 5; i++ {
		placed := c.PlaceOrder(dish, "", "")
		orderID := placed.Orders[0].ID

		result, err := c.RateOrder(orderID, 5, "")
		require.NoError(t, err)
		unlocked := achievementByID(t, result, AchievementMasterChef).Unlocked
		if i < 4 {
			assert.False(t, unlocked, "unlocked after only %d five-star meals", i+1)
		} else {
			assert.True(t, unlocked)
			assert.Contains(t, result.Notifications, "🏆 Unlocked: Master Chef")
		}
	}
}

func TestStateCarriesNoNotifications(t *testing.T) {
	c := testCoordinator(120)
	c.PlaceOrder(models.Dish{ID: "2", Name: "Spicy Carbonara", Tags: []string{"Spicy"}}, "", "")

	state := c.State()
	assert.Empty(t, state.Notifications)
	assert.Len(t, state.Orders, 1)
	assert.Equal(t, 120, state.Balance)
}

func TestSetProfileUpdatesChefForFutureOrders(t *testing.T) {
	c := testCoordinator(0)
	before := c.PlaceOrder(models.Dish{ID: "1", Name: "Pancakes"}, "", "")
	assert.Equal(t, "Sam", before.Orders[0].Chef)

	c.SetProfile(models.Profile{PartnerName: "Robin"})

	after := c.PlaceOrder(models.Dish{ID: "1", Name: "Pancakes"}, "", "")
	require.Len(t, after.Orders, 2)
	// newest first
	assert.Equal(t, "Robin", after.Orders[0].Chef)
	assert.Equal(t, "Sam", after.Orders[1].Chef)
}
