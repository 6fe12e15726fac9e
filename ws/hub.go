package ws

import (
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"
)

// EventPublisher, service katmanının WebSocket event'leri broadcast etmek için
// kullandığı interface.
//
// Dependency Inversion: Service'ler Hub'ın concrete struct'ına değil,
// bu interface'e bağımlıdır. Böylece:
// 1. Service test edilirken mock EventPublisher kullanılabilir
// 2. Hub implementasyonu değişse bile service kodu etkilenmez
type EventPublisher interface {
	BroadcastToAll(event Event)
}

// Hub, tüm WebSocket bağlantılarını yöneten merkezi yapıdır (Observer pattern).
//
// Editor/preview sekmeleri Hub'a bağlanır; bir section kaydedildiğinde
// Hub tüm bağlı sekmelere section_update event'i gönderir.
// Kimlik yönetimi yoktur — CMS tek kullanıcılıdır, bağlantılar anonimdir.
type Hub struct {
	// clients: bağlı client set'i.
	// Go'da set yoktur, map[*Client]bool kullanılır — bool her zaman true'dur.
	clients map[*Client]bool

	// mu: clients map'ini koruyan read-write mutex.
	// Broadcast okuma ağırlıklıdır — RLock ile birden fazla broadcast
	// aynı anda ilerleyebilir, register/unregister Lock alır.
	mu sync.RWMutex

	// register/unregister: Client giriş/çıkış sinyalleri.
	// Run() goroutine'i bu channel'ları select ile dinler.
	register   chan *Client
	unregister chan *Client

	// seq: Her outbound event'e verilen artan sayaç.
	// atomic.Int64 — birden fazla goroutine güvenle okuyup yazar.
	seq atomic.Int64
}

// NewHub, yeni bir Hub oluşturur.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run, Hub'ın ana event loop'udur. main.go'da `go hub.Run()` ile başlatılır.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)

		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

// addClient, yeni bir client'ı Hub'a ekler.
func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	log.Printf("[ws] client connected (total: %d)", len(h.clients))
}

// removeClient, bir client'ı Hub'dan çıkarır ve send channel'ını kapatır.
// Channel kapatılınca WritePump döngüsü sonlanır.
func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		log.Printf("[ws] client disconnected (total: %d)", len(h.clients))
	}
}

// BroadcastToAll, event'i tüm bağlı client'lara gönderir.
//
// Yavaş client davranışı: send channel buffer'ı doluysa mesaj o client
// için atlanır (non-blocking send). Broadcast hiçbir zaman tek bir yavaş
// bağlantı yüzünden bloklanmaz — kaçan client seq boşluğunu fark edip
// tam reload yapar.
func (h *Hub) BroadcastToAll(event Event) {
	event.Seq = h.seq.Add(1)

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[ws] failed to marshal event %s: %v", event.Op, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Printf("[ws] send buffer full, dropping %s event for a client", event.Op)
		}
	}
}

// ClientCount, bağlı client sayısını döner.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Shutdown, tüm client'lara shutdown event'i gönderir ve bağlantıları kapatır.
// main.go graceful shutdown sırasında HTTP server'dan önce çağırır.
//
// Connection'lar doğrudan kapatılmaz: send channel'ı kapatmak WritePump'ın
// buffer'daki shutdown event'ini yazıp bağlantıyı temiz kapatmasını sağlar.
func (h *Hub) Shutdown() {
	h.BroadcastToAll(Event{Op: OpShutdown})

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}

	log.Println("[ws] all connections closed")
}
