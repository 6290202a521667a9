package models

// EventKind identifies the domain events produced by gamification actions.
type EventKind string

const (
	EventOrderPlaced    EventKind = "order_placed"
	EventStatusChanged  EventKind = "status_changed"
	EventOrderRated     EventKind = "order_rated"
	EventRewardRedeemed EventKind = "reward_redeemed"
)

// Event is a single domain occurrence. The coordinator routes events to the
// achievement tracker so trigger evaluation stays centralized instead of
// being scattered across action handlers.
type Event struct {
	Kind EventKind

	// OrderID is set for order events, RewardID for redemption events.
	OrderID  string
	RewardID string

	// Tags carries the dish tag set on OrderPlaced.
	Tags []string

	// Status is the new status on StatusChanged.
	Status OrderStatus

	// Rating is the submitted rating on OrderRated.
	Rating int
}
