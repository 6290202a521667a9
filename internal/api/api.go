package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"dinnerdate/internal/catalog"
	"dinnerdate/internal/game"
	"dinnerdate/internal/observability"
)

// Server is the HTTP presentation adapter over the gamification coordinator.
// Handlers translate requests into coordinator actions, forward each
// action's notifications to the websocket hub, and render the returned
// aggregate as JSON.
type Server struct {
	router      *gin.Engine
	coordinator *game.Coordinator
	menu        *catalog.Catalog
	hub         *Hub
	log         zerolog.Logger
}

// NewServer wires the router, middleware and routes.
func NewServer(coordinator *game.Coordinator, menu *catalog.Catalog, log zerolog.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.RequestLogger(log))
	router.Use(observability.RequestMetrics())

	s := &Server{
		router:      router,
		coordinator: coordinator,
		menu:        menu,
		hub:         NewHub(log),
		log:         log,
	}
	s.setupRoutes()
	return s
}

// Router returns the gin engine for serving and tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "DinnerDate API is running"})
	})
	s.router.GET("/ws", s.handleWebSocket)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/menu", s.ListMenu)
		v1.POST("/menu", s.AddDish)
		v1.POST("/menu/:id/favorite", s.ToggleFavorite)

		v1.GET("/orders", s.ListOrders)
		v1.POST("/orders", s.PlaceOrder)
		v1.POST("/orders/:id/advance", s.AdvanceOrder)
		v1.POST("/orders/:id/rate", s.RateOrder)

		v1.GET("/achievements", s.ListAchievements)
		v1.GET("/rewards", s.ListRewards)
		v1.POST("/rewards/:id/redeem", s.RedeemReward)

		v1.GET("/state", s.GetState)
		v1.GET("/profile", s.GetProfile)
		v1.PUT("/profile", s.UpdateProfile)
	}
}
