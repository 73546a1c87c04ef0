package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"novelverse/internal/microservices/http-api/service"
)

// HTTP upgrade handler to WebSocket connections

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// allow all origins for development purpose; can restrict later
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler handles the upgrade request from HTTP to WebSocket. It runs
// behind the JWT middleware, which puts identity into the gin context.
func WSHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: user ID not found"})
			return
		}

		username := "Unknown"
		if claims, ok := c.Get("claims"); ok {
			if claimsData, ok := claims.(*service.Claims); ok {
				username = claimsData.Username
			}
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade to WebSocket"})
			return
		}

		client := NewClient(
			uuid.New().String(), // connection ID, one user can hold several
			userID.(string),
			username,
			conn,
			hub,
		)

		hub.Register(client)

		go client.ReadPump()
		go client.WritePump()
	}
}
