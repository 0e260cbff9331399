package ws

import (
	"net/http"
	"sync"

	"github.com/imeshiperera12/FoodOrdering-sub000/entity"
	"github.com/imeshiperera12/FoodOrdering-sub000/services"
	"github.com/imeshiperera12/FoodOrdering-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// TrackHub คือศูนย์กลางของหน้าติดตาม order ผ่าน WebSocket
// ห้อง = order หนึ่งใบ; คนแรกที่เข้าห้องเป็นคนสตาร์ท watcher ฝั่ง TrackingService
// คนสุดท้ายออกจากห้อง watcher ก็หยุด poll — ไม่มี timer ค้าง
type TrackHub struct {
	clients    map[string]map[*websocket.Conn]bool // orderID -> set of clients
	cancels    map[string]func()                   // orderID -> หยุด watcher
	broadcast  chan entity.TrackingSnapshot
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	service    *services.TrackingService
	log        zerolog.Logger
}

// Subscription = การสมัครดู order หนึ่งใบ (1 connection ต่อ 1 sub)
type Subscription struct {
	Conn    *websocket.Conn
	OrderID string
	Token   string
}

func NewTrackHub(service *services.TrackingService, log zerolog.Logger) *TrackHub {
	return &TrackHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		cancels:    make(map[string]func()),
		broadcast:  make(chan entity.TrackingSnapshot, 16),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		service:    service,
		log:        log.With().Str("svc", "track-hub").Logger(),
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *TrackHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			first := h.clients[sub.OrderID] == nil
			if first {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

			if first {
				orderID := sub.OrderID
				snap, cancel := h.service.Watch(orderID, sub.Token, func(s entity.TrackingSnapshot) {
					h.broadcast <- s
				})
				h.mu.Lock()
				h.cancels[orderID] = cancel
				h.mu.Unlock()
				h.send(sub.Conn, snap)
			} else {
				// ห้องมี watcher อยู่แล้ว ส่งค่าล่าสุดให้คนเพิ่งเข้า
				if snap, err := h.latest(sub.OrderID, sub.Token); err == nil {
					h.send(sub.Conn, snap)
				}
			}

		case sub := <-h.unregister:
			h.mu.Lock()
			var cancel func()
			if conns := h.clients[sub.OrderID]; conns != nil {
				if conns[sub.Conn] {
					delete(conns, sub.Conn)
					sub.Conn.Close()
				}
				if len(conns) == 0 {
					delete(h.clients, sub.OrderID)
					cancel = h.cancels[sub.OrderID]
					delete(h.cancels, sub.OrderID)
				}
			}
			h.mu.Unlock()
			if cancel != nil {
				cancel()
			}

		case snap := <-h.broadcast:
			h.mu.Lock()
			conns := make([]*websocket.Conn, 0, len(h.clients[snap.OrderID]))
			for conn := range h.clients[snap.OrderID] {
				conns = append(conns, conn)
			}
			h.mu.Unlock()
			for _, conn := range conns {
				h.send(conn, snap)
			}
		}
	}
}

func (h *TrackHub) latest(orderID, token string) (entity.TrackingSnapshot, error) {
	snap, cancel := h.service.Watch(orderID, token, func(entity.TrackingSnapshot) {})
	cancel()
	return snap, nil
}

func (h *TrackHub) send(conn *websocket.Conn, snap entity.TrackingSnapshot) {
	if err := conn.WriteJSON(snap); err != nil {
		h.log.Debug().Err(err).Str("order_id", snap.OrderID).Msg("ws write failed")
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // dev เท่านั้น
}

// ServeTracking: GET /ws/track/:orderId (ผ่าน WSAuthMiddleware มาแล้ว)
func (h *TrackHub) ServeTracking(c *gin.Context) {
	orderID := c.Param("orderId")
	token := utils.BearerToken(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}

	sub := Subscription{Conn: conn, OrderID: orderID, Token: token}
	h.register <- sub

	// อ่านทิ้งไปเรื่อย ๆ จนกว่าฝั่งโน้นปิด แล้วค่อยถอนชื่อออกจากห้อง
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
