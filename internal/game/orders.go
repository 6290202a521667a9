package game

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"dinnerdate/internal/models"
)

// OrderStore owns the order collection and enforces the status state
// machine. Orders are append-only: nothing is ever removed, and a completed
// order's fields are frozen apart from the one-shot rating on orders that
// completed without one.
type OrderStore struct {
	orders []*models.Order
	byID   map[string]*models.Order
	now    func() time.Time
}

// NewOrderStore creates an empty store.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		byID: make(map[string]*models.Order),
		now:  time.Now,
	}
}

// Place creates a new Pending order for the given dish. It always succeeds
// and returns the OrderPlaced event carrying the dish tag set.
func (s *OrderStore) Place(dish models.Dish, scheduledTime, note, chef string) (*models.Order, models.Event) {
	created := s.now()
	order := &models.Order{
		ID:            s.nextID(created),
		DishID:        dish.ID,
		DishName:      dish.Name,
		OrderDate:     created,
		ScheduledTime: scheduledTime,
		Status:        models.OrderStatusPending,
		ChefNote:      note,
		Chef:          chef,
	}
	s.orders = append(s.orders, order)
	s.byID[order.ID] = order

	tags := make([]string, len(dish.Tags))
	copy(tags, dish.Tags)
	return order, models.Event{
		Kind:    models.EventOrderPlaced,
		OrderID: order.ID,
		Tags:    tags,
	}
}

// Advance moves an order to the next status in the linear flow and returns
// the StatusChanged event. Advancing a completed order fails.
func (s *OrderStore) Advance(id string) (*models.Order, models.Event, error) {
	order, ok := s.byID[id]
	if !ok {
		return nil, models.Event{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	next, ok := order.Status.Next()
	if !ok {
		return nil, models.Event{}, fmt.Errorf("order %s is %s: %w", id, order.Status, ErrInvalidTransition)
	}
	order.Status = next
	return order, models.Event{
		Kind:    models.EventStatusChanged,
		OrderID: order.ID,
		Status:  next,
	}, nil
}

// Rate records the order's one-shot rating and review and forces the status
// to Completed ("rate = accept and close"). A first rating is accepted
// regardless of prior status, so an order that skipped to Completed without
// a rating can still receive one; a second rating attempt is rejected and
// changes nothing. Returns OrderRated and, when the status actually
// transitioned, StatusChanged(Completed).
func (s *OrderStore) Rate(id string, rating int, review string) (*models.Order, []models.Event, error) {
	order, ok := s.byID[id]
	if !ok {
		return nil, nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if rating < 1 || rating > 5 {
		return nil, nil, fmt.Errorf("rating %d outside 1-5: %w", rating, ErrInvalidInput)
	}
	if order.Rated() {
		return nil, nil, fmt.Errorf("order %s: %w", id, ErrAlreadyCompleted)
	}

	transitioned := order.Status != models.OrderStatusCompleted
	order.Rating = rating
	order.Review = review
	order.Status = models.OrderStatusCompleted

	events := []models.Event{{
		Kind:    models.EventOrderRated,
		OrderID: order.ID,
		Rating:  rating,
	}}
	if transitioned {
		events = append(events, models.Event{
			Kind:    models.EventStatusChanged,
			OrderID: order.ID,
			Status:  models.OrderStatusCompleted,
		})
	}
	return order, events, nil
}

// List returns copies of all orders, newest first. The sort is stable so
// orders created within the same instant keep their insertion order.
func (s *OrderStore) List() []models.Order {
	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = *o
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderDate.After(out[j].OrderDate)
	})
	return out
}

// PendingCount returns the number of orders still waiting on the chef
// (Pending or Cooking), shown as the navigation badge.
func (s *OrderStore) PendingCount() int {
	n := 0
	for _, o := range s.orders {
		if o.Status == models.OrderStatusPending || o.Status == models.OrderStatusCooking {
			n++
		}
	}
	return n
}

// nextID derives an opaque id from the creation time, bumping past
// collisions when two orders land on the same nanosecond.
func (s *OrderStore) nextID(created time.Time) string {
	for n := created.UnixNano(); ; n++ {
		id := strconv.FormatInt(n, 10)
		if _, taken := s.byID[id]; !taken {
			return id
		}
	}
}
