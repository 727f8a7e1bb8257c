package events

import (
	"net/http"
	"time"

	"lakeview/internal/domain"
	"lakeview/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades admin connections for the booking live feed.
// Browsers cannot set headers on websocket dials, so the token rides
// in the query string: GET /ws/admin/bookings?token=JWT.
type WSHandler struct {
	hub        *Hub
	jwtService *jwt.Service
	loggerf    func(format string, args ...interface{})

	// The feed is one-way, so the server pings and the read deadline
	// rides on the client's pongs.
	pingInterval time.Duration
	pongWait     time.Duration
}

func NewWSHandler(hub *Hub, jwtService *jwt.Service, loggerf func(format string, args ...interface{})) *WSHandler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &WSHandler{
		hub:          hub,
		jwtService:   jwtService,
		loggerf:      loggerf,
		pingInterval: 30 * time.Second,
		pongWait:     60 * time.Second,
	}
}

func (h *WSHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ws/admin/bookings", h.HandleBookingFeed)
}

func (h *WSHandler) HandleBookingFeed(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	if claims.Role != string(domain.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.loggerf("event=ws_upgrade_failed user_id=%d err=%v", claims.UserID, err)
		return
	}

	h.hub.Register(claims.UserID, conn)
	h.loggerf("event=ws_connected user_id=%d listeners=%d", claims.UserID, h.hub.ListenerCount())

	defer func() {
		h.hub.Unregister(claims.UserID)
		h.loggerf("event=ws_disconnected user_id=%d", claims.UserID)
	}()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go h.pingLoop(claims.UserID, done)

	// The read loop only drains control frames and detects the close.
	_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
	}
}

func (h *WSHandler) pingLoop(userID int64, done <-chan struct{}) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := h.hub.Ping(userID, time.Now().Add(h.pingInterval)); err != nil {
				return
			}
		}
	}
}
