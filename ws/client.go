package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket bağlantı sabitleri
const (
	// writeWait: Bir mesajı yazmak için maksimum bekleme süresi.
	// Bu süre aşılırsa bağlantı kapatılır (ağ sorunu olabilir).
	writeWait = 10 * time.Second

	// pongWait: Client'ın heartbeat göndermesi için beklenen maksimum süre.
	// 3 heartbeat kaçırma = 30s × 3 = 90s.
	pongWait = 90 * time.Second

	// maxMessageSize: Client'ın gönderebileceği maksimum mesaj boyutu (byte).
	// Client'tan sadece heartbeat beklenir — küçük bir limit yeterli.
	maxMessageSize = 512

	// sendBufferSize: Her client'ın send channel'ının buffer boyutu.
	sendBufferSize = 64
)

// Client, tek bir WebSocket bağlantısını temsil eder.
//
// Her bağlantı için iki goroutine çalışır:
// - ReadPump: Client'dan gelen heartbeat'leri okur
// - WritePump: Hub'dan gelen event'leri client'a yazar
//
// Neden iki goroutine?
// gorilla/websocket aynı anda sadece bir okuma ve bir yazma destekler.
// İki ayrı goroutine ile okuma ve yazma birbirini bloklamaz.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	// send, client'a gönderilecek mesajların buffer'landığı channel.
	// Hub `client.send <- data` yapar, WritePump channel'dan okuyup yazar.
	send chan []byte
}

// ReadPump, WebSocket bağlantısından gelen mesajları okur ve işler.
// Bağlantı kapanana kadar döngüde kalır; kapandığında Hub'dan çıkış yapar.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)

	// SetReadDeadline: Bu süre içinde mesaj gelmezse Read hata verir.
	// Her heartbeat geldiğinde deadline yenilenir.
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("[ws] failed to set read deadline: %v", err)
		return
	}

	for {
		_, rawMessage, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] unexpected close: %v", err)
			}
			return
		}

		var event Event
		if err := json.Unmarshal(rawMessage, &event); err != nil {
			log.Printf("[ws] invalid message from client: %v", err)
			continue
		}

		// Broadcast-only hub: heartbeat dışındaki her op yoksayılır.
		if event.Op == OpHeartbeat {
			if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
				log.Printf("[ws] failed to set read deadline: %v", err)
				return
			}
			c.sendEvent(Event{Op: OpHeartbeatAck})
		}
	}
}

// WritePump, send channel'ından gelen mesajları WebSocket'e yazar.
// Hub send channel'ını kapattığında döngü sonlanır ve bağlantı kapanır.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for data := range c.send {
		if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Printf("[ws] failed to set write deadline: %v", err)
			return
		}

		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			// Yazma hatası — bağlantı kopmuş, ReadPump zaten unregister edecek.
			return
		}
	}

	// Channel kapandı — Hub client'ı çıkardı, temiz kapanış mesajı gönder.
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// sendEvent, tek bir event'i client'ın send buffer'ına koyar.
// Buffer doluysa event atlanır — heartbeat ack kaybı tolere edilebilir.
func (c *Client) sendEvent(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[ws] failed to marshal %s event: %v", event.Op, err)
		return
	}

	select {
	case c.send <- data:
	default:
	}
}
