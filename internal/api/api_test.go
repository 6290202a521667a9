package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinnerdate/internal/catalog"
	"dinnerdate/internal/game"
	"dinnerdate/internal/models"
)

func testServer() *Server {
	gin.SetMode(gin.TestMode)
	profile := models.Profile{Name: "Alex", PartnerName: "Sam"}
	coordinator := game.NewCoordinator(profile, 120, zerolog.Nop())
	return NewServer(coordinator, catalog.New(), zerolog.Nop())
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) game.ActionResult {
	t.Helper()
	var result game.ActionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}

func TestHealth(t *testing.T) {
	w := doJSON(t, testServer(), "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestListMenu(t *testing.T) {
	s := testServer()

	w := doJSON(t, s, "GET", "/api/v1/menu", "")
	require.Equal(t, http.StatusOK, w.Code)

	var dishes []models.Dish
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dishes))
	assert.Len(t, dishes, 3)

	w = doJSON(t, s, "GET", "/api/v1/menu?q=spicy", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dishes))
	require.Len(t, dishes, 1)
	assert.Equal(t, "Spicy Carbonara", dishes[0].Name)
}

func TestAddDishValidation(t *testing.T) {
	s := testServer()

	w := doJSON(t, s, "POST", "/api/v1/menu", `{"description":"no name"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, "POST", "/api/v1/menu", `{"name":"Ramen Night","category":"Dinner"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var dish models.Dish
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dish))
	assert.NotEmpty(t, dish.ID)
	assert.Equal(t, []string{"Custom", "Homemade"}, dish.Tags)
}

func TestPlaceOrderFlow(t *testing.T) {
	s := testServer()

	w := doJSON(t, s, "POST", "/api/v1/orders", `{"dishId":"2","note":"date night"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	result := decodeResult(t, w)
	require.Len(t, result.Orders, 1)
	assert.Equal(t, models.OrderStatusPending, result.Orders[0].Status)
	assert.Equal(t, "Sam", result.Orders[0].Chef)
	assert.Contains(t, result.Notifications, "Ordered Spicy Carbonara!")
	assert.Contains(t, result.Notifications, "🏆 Unlocked: Spicy Love")

	orderID := result.Orders[0].ID
	for i, wantStatus := range []models.OrderStatus{
		models.OrderStatusCooking,
		models.OrderStatusServed,
		models.OrderStatusCompleted,
	} {
		w = doJSON(t, s, "POST", fmt.Sprintf("/api/v1/orders/%s/advance", orderID), "")
		require.Equal(t, http.StatusOK, w.Code, "advance %d", i+1)
		result = decodeResult(t, w)
		assert.Equal(t, wantStatus, result.Orders[0].Status)
	}
	assert.Equal(t, 170, result.Balance)

	// advancing past Completed conflicts
	w = doJSON(t, s, "POST", fmt.Sprintf("/api/v1/orders/%s/advance", orderID), "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// rate it
	w = doJSON(t, s, "POST", fmt.Sprintf("/api/v1/orders/%s/rate", orderID), `{"rating":5,"review":"amazing"}`)
	require.Equal(t, http.StatusOK, w.Code)
	result = decodeResult(t, w)
	assert.Equal(t, 180, result.Balance)
	assert.Equal(t, 5, result.Orders[0].Rating)

	// a second rating is refused
	w = doJSON(t, s, "POST", fmt.Sprintf("/api/v1/orders/%s/rate", orderID), `{"rating":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPlaceOrderUnknownDish(t *testing.T) {
	w := doJSON(t, testServer(), "POST", "/api/v1/orders", `{"dishId":"999"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdvanceUnknownOrder(t *testing.T) {
	w := doJSON(t, testServer(), "POST", "/api/v1/orders/123/advance", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateValidation(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, "POST", "/api/v1/orders", `{"dishId":"1"}`)
	orderID := decodeResult(t, w).Orders[0].ID

	w = doJSON(t, s, "POST", fmt.Sprintf("/api/v1/orders/%s/rate", orderID), `{"rating":9}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRedeemReward(t *testing.T) {
	s := testServer()

	// starting balance 120 covers the cheapest reward only
	w := doJSON(t, s, "POST", "/api/v1/rewards/massage/redeem", "")
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	w = doJSON(t, s, "POST", "/api/v1/rewards/dishwashing-pass/redeem", "")
	require.Equal(t, http.StatusOK, w.Code)
	result := decodeResult(t, w)
	assert.Equal(t, 20, result.Balance)
	assert.Contains(t, result.Notifications, "Redeemed: Dishwashing Pass!")
	assert.Contains(t, result.Notifications, "🏆 Unlocked: Generous Soul")

	w = doJSON(t, s, "POST", "/api/v1/rewards/unobtainium/redeem", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetState(t *testing.T) {
	s := testServer()
	doJSON(t, s, "POST", "/api/v1/orders", `{"dishId":"3"}`)

	w := doJSON(t, s, "GET", "/api/v1/state", "")
	require.Equal(t, http.StatusOK, w.Code)
	result := decodeResult(t, w)
	assert.Len(t, result.Orders, 1)
	assert.Equal(t, 120, result.Balance)
	assert.Equal(t, 1, result.PendingCount)
	assert.Empty(t, result.Notifications)
}

func TestProfileRoundTrip(t *testing.T) {
	s := testServer()

	w := doJSON(t, s, "GET", "/api/v1/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alex")

	w = doJSON(t, s, "PUT", "/api/v1/profile", `{"partnerName":"Robin","startDate":"2023-06-01"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var profile models.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Alex", profile.Name, "omitted fields keep their value")
	assert.Equal(t, "Robin", profile.PartnerName)

	w = doJSON(t, s, "PUT", "/api/v1/profile", `{"startDate":"June 1st"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
