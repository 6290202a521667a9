package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ApiClient handles API requests to the DinnerDate server.
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewApiClient creates a new API client, reading the server address from
// DINNERDATE_API_URL when set.
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("DINNERDATE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
	}
}

// CheckHealth checks if the API is up and running.
func (c *ApiClient) CheckHealth() (bool, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("API health check failed with status code: %d", resp.StatusCode)
	}
	return true, nil
}

// Dish is a menu entry.
type Dish struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`
	Calories    int      `json:"calories,omitempty"`
	Tags        []string `json:"tags"`
	IsFavorite  bool     `json:"isFavorite"`
}

// Order is one placed dish order.
type Order struct {
	ID            string    `json:"id"`
	DishID        string    `json:"dishId"`
	DishName      string    `json:"dishName"`
	OrderDate     time.Time `json:"orderDate"`
	ScheduledTime string    `json:"scheduledTime,omitempty"`
	Status        string    `json:"status"`
	Rating        int       `json:"rating,omitempty"`
	Review        string    `json:"review,omitempty"`
	ChefNote      string    `json:"chefNote,omitempty"`
	Chef          string    `json:"chef"`
	RewardEarned  int       `json:"rewardEarned,omitempty"`
}

// Achievement is one unlockable catalog entry.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
}

// Reward is one redeemable treat in the coin store.
type Reward struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Cost          int    `json:"cost"`
	Icon          string `json:"icon"`
	Description   string `json:"description"`
	RedeemedCount int    `json:"redeemedCount"`
}

// ActionResult is the aggregate state the server returns after each action.
type ActionResult struct {
	Orders        []Order       `json:"orders"`
	Achievements  []Achievement `json:"achievements"`
	Rewards       []Reward      `json:"rewards"`
	Balance       int           `json:"balance"`
	PendingCount  int           `json:"pendingCount"`
	Notifications []string      `json:"notifications,omitempty"`
}

// GetMenu retrieves the dish menu with an optional search query.
func (c *ApiClient) GetMenu(query string) ([]Dish, error) {
	url := c.BaseURL + "/api/v1/menu"
	if query != "" {
		url += "?q=" + query
	}

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get menu with status code: %d", resp.StatusCode)
	}

	var dishes []Dish
	if err := json.NewDecoder(resp.Body).Decode(&dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

// GetState retrieves the full aggregate state.
func (c *ApiClient) GetState() (*ActionResult, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/api/v1/state")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get state with status code: %d", resp.StatusCode)
	}

	var result ActionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PlaceOrder orders a dish from the menu.
func (c *ApiClient) PlaceOrder(dishID, scheduledTime, note string) (*ActionResult, error) {
	payload := map[string]string{
		"dishId":        dishID,
		"scheduledTime": scheduledTime,
		"note":          note,
	}
	return c.postAction("/api/v1/orders", payload, http.StatusCreated)
}

// AdvanceOrder moves an order to its next status.
func (c *ApiClient) AdvanceOrder(orderID string) (*ActionResult, error) {
	return c.postAction("/api/v1/orders/"+orderID+"/advance", nil, http.StatusOK)
}

// RateOrder submits the order's rating and review.
func (c *ApiClient) RateOrder(orderID string, rating int, review string) (*ActionResult, error) {
	payload := map[string]interface{}{
		"rating": rating,
		"review": review,
	}
	return c.postAction("/api/v1/orders/"+orderID+"/rate", payload, http.StatusOK)
}

// RedeemReward spends coins on a reward.
func (c *ApiClient) RedeemReward(rewardID string) (*ActionResult, error) {
	return c.postAction("/api/v1/rewards/"+rewardID+"/redeem", nil, http.StatusOK)
}

// postAction sends a JSON action request and decodes the ActionResult.
func (c *ApiClient) postAction(path string, payload interface{}, wantStatus int) (*ActionResult, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest("POST", c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%s", apiErr.Error)
		}
		return nil, fmt.Errorf("request failed with status code: %d", resp.StatusCode)
	}

	var result ActionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
