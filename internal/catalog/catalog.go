// Package catalog holds the dish menu the gamification core reads from.
// The menu is presentation-facing glue: the core only consumes a dish's id,
// name and tag set when an order is placed.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"dinnerdate/internal/models"
)

// ErrDishNotFound is returned for unknown dish ids.
var ErrDishNotFound = errors.New("dish not found")

// Catalog owns the dish collection. New dishes go to the front of the menu.
type Catalog struct {
	mu     sync.RWMutex
	dishes []models.Dish
	byID   map[string]int
	now    func() time.Time
}

// New seeds the menu with the starter dishes.
func New() *Catalog {
	c := &Catalog{
		byID: make(map[string]int),
		now:  time.Now,
	}
	for _, d := range []models.Dish{
		{
			ID: "1", Name: "Heart-shaped Pancakes",
			Description: "Fluffy pancakes made with love and strawberries.",
			Category:    models.CategoryBreakfast, Difficulty: "Easy", Calories: 450,
			Tags: []string{"Sweet", "Quick"}, IsFavorite: true,
		},
		{
			ID: "2", Name: "Spicy Carbonara",
			Description: "Classic Italian pasta with a spicy twist for date night.",
			Category:    models.CategoryDinner, Difficulty: "Medium", Calories: 800,
			Tags: []string{"Pasta", "Spicy"},
		},
		{
			ID: "3", Name: "Midnight Tacos",
			Description: "Quick beef tacos for late night cravings.",
			Category:    models.CategorySnack, Difficulty: "Easy", Calories: 300,
			Tags: []string{"Mexican", "Savory"}, IsFavorite: true,
		},
	} {
		c.append(d)
	}
	return c
}

// List returns the menu, optionally filtered by a case-insensitive query
// matched against dish names and tags.
func (c *Catalog) List(query string) []models.Dish {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Dish, 0, len(c.dishes))
	for _, d := range c.dishes {
		if query == "" || matches(d, query) {
			out = append(out, copyDish(d))
		}
	}
	return out
}

// Get returns the dish with the given id.
func (c *Catalog) Get(id string) (models.Dish, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return models.Dish{}, fmt.Errorf("dish %s: %w", id, ErrDishNotFound)
	}
	return copyDish(c.dishes[i]), nil
}

// Add puts a custom dish on the menu and returns it with its assigned id.
// Dishes without tags get the homemade defaults.
func (c *Catalog) Add(dish models.Dish) models.Dish {
	c.mu.Lock()
	defer c.mu.Unlock()

	dish.ID = c.nextID()
	if len(dish.Tags) == 0 {
		dish.Tags = []string{"Custom", "Homemade"}
	}
	if dish.Difficulty == "" {
		dish.Difficulty = "Easy"
	}
	c.append(dish)
	return copyDish(dish)
}

// ToggleFavorite flips the favorite flag and returns the updated dish.
func (c *Catalog) ToggleFavorite(id string) (models.Dish, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.byID[id]
	if !ok {
		return models.Dish{}, fmt.Errorf("dish %s: %w", id, ErrDishNotFound)
	}
	c.dishes[i].IsFavorite = !c.dishes[i].IsFavorite
	return copyDish(c.dishes[i]), nil
}

func (c *Catalog) append(d models.Dish) {
	c.dishes = append(c.dishes, d)
	c.byID[d.ID] = len(c.dishes) - 1
}

func (c *Catalog) nextID() string {
	for n := c.now().UnixNano(); ; n++ {
		id := strconv.FormatInt(n, 10)
		if _, taken := c.byID[id]; !taken {
			return id
		}
	}
}

func matches(d models.Dish, query string) bool {
	if strings.Contains(strings.ToLower(d.Name), query) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func copyDish(d models.Dish) models.Dish {
	tags := make([]string, len(d.Tags))
	copy(tags, d.Tags)
	d.Tags = tags
	return d
}
