package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/study-assistant-backend/controllers"
	"github.com/vnkhanh/study-assistant-backend/ws"
)

func SetupRouter(r *gin.Engine, h *controllers.Handler, hub *ws.Hub) *gin.Engine {
	r.GET("/", h.Root)
	r.GET("/test", h.TestDatabase)
	r.GET("/health", h.HealthCheck)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	resources := api.Group("/resources")
	{
		resources.POST("/upload", h.UploadResource)
		resources.POST("/text", h.CreateTextResource)
	}

	// Generators
	api.POST("/summarize", h.Summarize)
	api.POST("/notes", h.CreateNotes)
	api.POST("/flashcards", h.GenerateFlashcards)
	api.POST("/tasks/extract", h.ExtractTasks)
	api.POST("/plan", h.BuildPlan)
	api.POST("/doubts", h.AnswerDoubt)

	// Lists
	api.GET("/flashcards", h.ListFlashcards)
	api.GET("/tasks", h.ListTasks)
	api.GET("/summaries", h.ListSummaries)
	api.GET("/notes", h.ListNotes)

	if hub != nil {
		r.GET("/ws/events", hub.HandleEvents)
	}

	return r
}
