package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kdotcui/AngelTea/internal/agent"
	"github.com/kdotcui/AngelTea/internal/middleware"
	"github.com/kdotcui/AngelTea/internal/order"
)

// New assembles the HTTP surface: the three tool contracts as plain REST
// endpoints plus the voice round-trip. voiceHandler may be nil when no
// OpenAI key is configured; the pricing endpoints still work.
func New(toolbox *agent.Toolbox, voiceHandler *agent.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --------------------------------------------------
	// Tool contracts over REST
	// --------------------------------------------------

	r.GET("/menu", func(c *gin.Context) {
		c.JSON(http.StatusOK, toolbox.GetMenu(c.Query("query")))
	})

	r.GET("/price", func(c *gin.Context) {
		name := c.Query("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		var toppings []string
		if raw := c.Query("toppings"); raw != "" {
			toppings = strings.Split(raw, ",")
		}

		c.JSON(http.StatusOK, toolbox.GetPrice(name, c.Query("size"), toppings))
	})

	r.POST("/orders", func(c *gin.Context) {
		var req struct {
			Items []order.LineRequest `json:"items"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		result := toolbox.PlaceOrder(req.Items)
		if !result.OK {
			c.JSON(http.StatusUnprocessableEntity, result)
			return
		}
		c.JSON(http.StatusCreated, result)
	})

	// --------------------------------------------------
	// Voice round-trip (STT -> agent -> TTS)
	// --------------------------------------------------

	if voiceHandler != nil {
		r.POST("/voice", voiceHandler.Voice)
	}

	return r
}
