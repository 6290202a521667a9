package game

import (
	"strings"

	"dinnerdate/internal/models"
)

// Achievement catalog ids.
const (
	AchievementFirstDate    = "first-date"
	AchievementMasterChef   = "master-chef"
	AchievementSpicyLove    = "spicy-love"
	AchievementGenerousSoul = "generous-soul"
)

// fiveStarTarget is the number of 5-star ratings needed for Master Chef.
const fiveStarTarget = 5

// AchievementTracker owns the achievement catalog and evaluates trigger
// predicates against domain events. Unlocking is idempotent: repeated
// triggers for an unlocked achievement are absorbed silently.
type AchievementTracker struct {
	achievements []*models.Achievement
	byID         map[string]*models.Achievement
	fiveStars    int
}

// NewAchievementTracker seeds the fixed catalog, all locked.
func NewAchievementTracker() *AchievementTracker {
	t := &AchievementTracker{byID: make(map[string]*models.Achievement)}
	for _, a := range []models.Achievement{
		{ID: AchievementFirstDate, Title: "First Date", Description: "Complete your first order", Icon: "🥂"},
		{ID: AchievementMasterChef, Title: "Master Chef", Description: "Cook 5 meals rated 5 stars", Icon: "👨‍🍳"},
		{ID: AchievementSpicyLove, Title: "Spicy Love", Description: "Order a spicy dish", Icon: "🌶️"},
		{ID: AchievementGenerousSoul, Title: "Generous Soul", Description: "Redeem a coupon for your partner", Icon: "🎁"},
	} {
		entry := a
		t.achievements = append(t.achievements, &entry)
		t.byID[entry.ID] = &entry
	}
	return t
}

// Evaluate checks every trigger relevant to the event and returns a copy of
// each achievement the event newly unlocked.
func (t *AchievementTracker) Evaluate(ev models.Event) []models.Achievement {
	var unlocked []models.Achievement
	unlock := func(id string) {
		if a, ok := t.unlock(id); ok {
			unlocked = append(unlocked, a)
		}
	}

	switch ev.Kind {
	case models.EventOrderPlaced:
		for _, tag := range ev.Tags {
			if strings.Contains(strings.ToLower(tag), "spicy") {
				unlock(AchievementSpicyLove)
				break
			}
		}
	case models.EventStatusChanged:
		if ev.Status == models.OrderStatusCompleted {
			unlock(AchievementFirstDate)
		}
	case models.EventOrderRated:
		// A rating implies the order is completed.
		unlock(AchievementFirstDate)
		if ev.Rating == 5 {
			t.fiveStars++
			if t.fiveStars >= fiveStarTarget {
				unlock(AchievementMasterChef)
			}
		}
	case models.EventRewardRedeemed:
		unlock(AchievementGenerousSoul)
	}
	return unlocked
}

// unlock flips the achievement to unlocked exactly once; only the
// false-to-true transition reports ok.
func (t *AchievementTracker) unlock(id string) (models.Achievement, bool) {
	a, ok := t.byID[id]
	if !ok || a.Unlocked {
		return models.Achievement{}, false
	}
	a.Unlocked = true
	return *a, true
}

// List returns copies of all achievements in catalog order.
func (t *AchievementTracker) List() []models.Achievement {
	out := make([]models.Achievement, len(t.achievements))
	for i, a := range t.achievements {
		out[i] = *a
	}
	return out
}

// FiveStarProgress reports how many 5-star ratings have accumulated toward
// Master Chef.
func (t *AchievementTracker) FiveStarProgress() int {
	return t.fiveStars
}
