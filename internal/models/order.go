package models

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCooking   OrderStatus = "Cooking"
	OrderStatusServed    OrderStatus = "Served"
	OrderStatusCompleted OrderStatus = "Completed"
)

// Next returns the status that follows s in the linear
// Pending -> Cooking -> Served -> Completed flow. The second return value is
// false when s is terminal or unknown.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusPending:
		return OrderStatusCooking, true
	case OrderStatusCooking:
		return OrderStatusServed, true
	case OrderStatusServed:
		return OrderStatusCompleted, true
	}
	return s, false
}

// Order records one dish ordered by a partner and cooked by the other.
// Orders are never deleted; the full history is the couple's food diary.
type Order struct {
	ID            string      `json:"id"`
	DishID        string      `json:"dishId"`
	DishName      string      `json:"dishName"`
	OrderDate     time.Time   `json:"orderDate"`
	ScheduledTime string      `json:"scheduledTime,omitempty"`
	Status        OrderStatus `json:"status"`
	Rating        int         `json:"rating,omitempty"`
	Review        string      `json:"review,omitempty"`
	ChefNote      string      `json:"chefNote,omitempty"`
	Chef          string      `json:"chef"`
	RewardEarned  int         `json:"rewardEarned,omitempty"`
}

// Rated reports whether the order has received its one-shot rating.
func (o *Order) Rated() bool {
	return o.Rating != 0
}
