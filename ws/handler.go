package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// upgrader, HTTP bağlantısını WebSocket bağlantısına yükseltir.
//
// WebSocket, normal HTTP isteği olarak başlar ve "upgrade" ile kalıcı,
// çift yönlü bir bağlantıya dönüşür.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CheckOrigin: CORS katmanı WS upgrade'e uygulanmaz — origin kontrolü
	// burada yapılmalı. CMS editörü ve preview aynı makinede çalıştığı için
	// tüm origin'lere izin veriliyor.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler, WebSocket bağlantı isteklerini işleyen HTTP handler'ı.
type Handler struct {
	hub *Hub
}

// NewHandler, yeni bir WebSocket handler oluşturur.
func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// HandleConnection, GET /ws isteğini WebSocket bağlantısına çevirir.
//
// Akış:
// 1. HTTP → WS upgrade
// 2. Client oluştur, Hub'a register et
// 3. ReadPump + WritePump goroutine'lerini başlat
// 4. Bağlanan client'a ready event'i gönder
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	h.hub.register <- client

	go client.WritePump()
	go client.ReadPump()

	client.sendEvent(Event{Op: OpReady})
}
