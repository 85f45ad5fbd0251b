package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const maxDiagnosticCollections = 10

// GET /
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Student Productivity API running"})
}

// GET /test lists a few collections as a quick database check.
func (h *Handler) TestDatabase(c *gin.Context) {
	ctx := c.Request.Context()
	collections, err := h.Store.Collections(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(collections) > maxDiagnosticCollections {
		collections = collections[:maxDiagnosticCollections]
	}
	c.JSON(http.StatusOK, gin.H{
		"backend":     "ok",
		"database":    h.Store.Ping(ctx) == nil,
		"collections": collections,
	})
}

// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	clients := 0
	if h.WSClients != nil {
		clients = h.WSClients()
	}
	response := gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Unix(),
		"db":        "ok",
		"websocket": gin.H{
			"enabled": h.WSClients != nil,
			"clients": clients,
		},
	}

	if err := h.Store.Ping(c.Request.Context()); err != nil {
		response["db"] = "error: cannot connect to DB"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}
	c.JSON(http.StatusOK, response)
}
