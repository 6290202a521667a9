package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinnerdate/internal/models"
)

func TestAchievementsStartLocked(t *testing.T) {
	tr := NewAchievementTracker()

	list := tr.List()
	require.Len(t, list, 4)
	for _, a := range list {
		assert.False(t, a.Unlocked, "achievement %s should start locked", a.ID)
	}
}

func TestUnlockIsIdempotent(t *testing.T) {
	tr := NewAchievementTracker()
	ev := models.Event{Kind: models.EventRewardRedeemed, RewardID: "massage"}

	first := tr.Evaluate(ev)
	require.Len(t, first, 1)
	assert.Equal(t, AchievementGenerousSoul, first[0].ID)

	second := tr.Evaluate(ev)
	assert.Empty(t, second, "repeat trigger must not unlock or notify again")

	for _, a := range tr.List() {
		if a.ID == AchievementGenerousSoul {
			assert.True(t, a.Unlocked)
		}
	}
}

func TestSpicyTagMatchesCaseInsensitive(t *testing.T) {
	tests := []struct {
		name   string
		tags   []string
		unlock bool
	}{
		{"exact lowercase", []string{"spicy"}, true},
		{"capitalized", []string{"Spicy"}, true},
		{"embedded", []string{"Extra-SPICY sauce"}, true},
		{"no match", []string{"Sweet", "Quick"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewAchievementTracker()
			unlocked := tr.Evaluate(models.Event{Kind: models.EventOrderPlaced, Tags: tt.tags})
			if tt.unlock {
				require.Len(t, unlocked, 1)
				assert.Equal(t, AchievementSpicyLove, unlocked[0].ID)
			} else {
				assert.Empty(t, unlocked)
			}
		})
	}
}

func TestFirstDateUnlocksOnCompletion(t *testing.T) {
	tr := NewAchievementTracker()

	none := tr.Evaluate(models.Event{Kind: models.EventStatusChanged, Status: models.OrderStatusCooking})
	assert.Empty(t, none)

	unlocked := tr.Evaluate(models.Event{Kind: models.EventStatusChanged, Status: models.OrderStatusCompleted})
	require.Len(t, unlocked, 1)
	assert.Equal(t, AchievementFirstDate, unlocked[0].ID)
}

func TestMasterChefNeedsFiveFiveStars(t *testing.T) {
	tr := NewAchievementTracker()
	// first completion unlocks First Date alongside the rating path
	tr.Evaluate(models.Event{Kind: models.EventStatusChanged, Status: models.OrderStatusCompleted})

	for i := 0; i < 4; i++ {
		unlocked := tr.Evaluate(models.Event{Kind: models.EventOrderRated, Rating: 5})
		assert.Empty(t, unlocked, "rating %d of 5 should not unlock yet", i+1)
	}
	assert.Equal(t, 4, tr.FiveStarProgress())

	// a mediocre rating does not advance the streak
	tr.Evaluate(models.Event{Kind: models.EventOrderRated, Rating: 3})
	assert.Equal(t, 4, tr.FiveStarProgress())

	unlocked := tr.Evaluate(models.Event{Kind: models.EventOrderRated, Rating: 5})
	require.Len(t, unlocked, 1)
	assert.Equal(t, AchievementMasterChef, unlocked[0].ID)
	assert.Equal(t, 5, tr.FiveStarProgress())
}
