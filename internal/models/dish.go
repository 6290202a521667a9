package models

// DishCategory groups dishes on the menu.
type DishCategory string

const (
	CategoryBreakfast DishCategory = "Breakfast"
	CategoryLunch     DishCategory = "Lunch"
	CategoryDinner    DishCategory = "Dinner"
	CategoryDessert   DishCategory = "Dessert"
	CategoryDrink     DishCategory = "Drink"
	CategorySnack     DishCategory = "Snack"
)

// Dish is a menu entry either partner can order. The gamification core only
// reads dishes; the catalog owns them.
type Dish struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    DishCategory `json:"category"`
	Difficulty  string       `json:"difficulty"`
	Calories    int          `json:"calories,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Tags        []string     `json:"tags"`
	IsFavorite  bool         `json:"isFavorite"`
}
