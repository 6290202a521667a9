package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dinnerdate/internal/catalog"
	"dinnerdate/internal/game"
	"dinnerdate/internal/models"
)

// Menu handlers

func (s *Server) ListMenu(c *gin.Context) {
	c.JSON(http.StatusOK, s.menu.List(c.Query("q")))
}

func (s *Server) AddDish(c *gin.Context) {
	var dish models.Dish
	if err := c.ShouldBindJSON(&dish); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if dish.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dish name is required"})
		return
	}
	c.JSON(http.StatusCreated, s.menu.Add(dish))
}

func (s *Server) ToggleFavorite(c *gin.Context) {
	dish, err := s.menu.ToggleFavorite(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// Order handlers

func (s *Server) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, s.coordinator.State().Orders)
}

func (s *Server) PlaceOrder(c *gin.Context) {
	var req struct {
		DishID        string `json:"dishId" binding:"required"`
		ScheduledTime string `json:"scheduledTime"`
		Note          string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish, err := s.menu.Get(req.DishID)
	if err != nil {
		s.renderError(c, err)
		return
	}

	result := s.coordinator.PlaceOrder(dish, req.ScheduledTime, req.Note)
	s.hub.Broadcast(result.Notifications)
	c.JSON(http.StatusCreated, result)
}

func (s *Server) AdvanceOrder(c *gin.Context) {
	result, err := s.coordinator.AdvanceOrder(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.hub.Broadcast(result.Notifications)
	c.JSON(http.StatusOK, result)
}

func (s *Server) RateOrder(c *gin.Context) {
	var req struct {
		Rating int    `json:"rating" binding:"required"`
		Review string `json:"review"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.coordinator.RateOrder(c.Param("id"), req.Rating, req.Review)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.hub.Broadcast(result.Notifications)
	c.JSON(http.StatusOK, result)
}

// Achievement and reward handlers

func (s *Server) ListAchievements(c *gin.Context) {
	c.JSON(http.StatusOK, s.coordinator.State().Achievements)
}

func (s *Server) ListRewards(c *gin.Context) {
	c.JSON(http.StatusOK, s.coordinator.State().Rewards)
}

func (s *Server) RedeemReward(c *gin.Context) {
	result, err := s.coordinator.RedeemReward(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.hub.Broadcast(result.Notifications)
	c.JSON(http.StatusOK, result)
}

// State and profile handlers

func (s *Server) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, s.coordinator.State())
}

func (s *Server) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, s.coordinator.Profile())
}

func (s *Server) UpdateProfile(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		PartnerName string `json:"partnerName"`
		StartDate   string `json:"startDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := models.Profile{Name: req.Name, PartnerName: req.PartnerName}
	if req.StartDate != "" {
		t, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be YYYY-MM-DD"})
			return
		}
		update.StartDate = t
	}
	c.JSON(http.StatusOK, s.coordinator.SetProfile(update))
}

// renderError maps domain errors onto HTTP statuses.
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrNotFound), errors.Is(err, catalog.ErrDishNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrInvalidTransition), errors.Is(err, game.ErrAlreadyCompleted):
		status = http.StatusConflict
	case errors.Is(err, game.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, game.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
