package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Rushikesh1Avachat/food-ordering-mains/services"
)

// StatusHub fans checkout state transitions out to connected clients, one
// room per checkout session.
type StatusHub struct {
	clients    map[uint]map[*websocket.Conn]bool // sessionID -> set of clients
	broadcast  chan StatusEvent
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	service    *services.CheckoutService
}

type Subscription struct {
	Conn      *websocket.Conn
	SessionID uint
	UserID    uint
}

// StatusEvent is pushed to every subscriber of a session when its checkout
// state changes; OrderID is set once the payment succeeded.
type StatusEvent struct {
	SessionID uint   `json:"sessionId"`
	State     string `json:"state"`
	OrderID   uint   `json:"orderId,omitempty"`
}

func NewStatusHub(service *services.CheckoutService) *StatusHub {
	return &StatusHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent, 16),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		service:    service,
	}
}

// NotifyCheckout implements services.CheckoutNotifier. Buffered send so the
// checkout flow never blocks on slow subscribers.
func (h *StatusHub) NotifyCheckout(sessionID uint, state string, orderID uint) {
	select {
	case h.broadcast <- StatusEvent{SessionID: sessionID, State: state, OrderID: orderID}:
	default:
		log.Printf("ws: dropping status event for session %d", sessionID)
	}
}

func (h *StatusHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.SessionID] == nil {
				h.clients[sub.SessionID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.SessionID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.SessionID][sub.Conn]; ok {
				delete(h.clients[sub.SessionID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.SessionID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.SessionID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/checkout/:id
func (h *StatusHub) HandleWebSocket(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	sessionID := uint(id)

	userIDVal, _ := c.Get("userId")
	userID, _ := userIDVal.(uint)

	ok, err := h.service.CanAccess(userID, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot verify session"})
		return
	}
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, SessionID: sessionID, UserID: userID}
	h.register <- sub

	// push the current state immediately so late subscribers catch up
	if session, err := h.service.Get(userID, sessionID); err == nil {
		var orderID uint
		if session.OrderID != nil {
			orderID = *session.OrderID
		}
		if err := conn.WriteJSON(StatusEvent{SessionID: sessionID, State: session.State, OrderID: orderID}); err != nil {
			h.unregister <- sub
			return
		}
	}

	// reads only serve to detect the peer closing
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
