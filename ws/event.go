// Package ws, WebSocket bağlantı yönetimi ve gerçek zamanlı event dağıtımını sağlar.
//
// Mimari:
// - Hub: Tüm bağlantıları yöneten merkezi yapı (Observer pattern)
// - Client: Her WebSocket bağlantısını temsil eder
// - Event: Server → client iletilen mesaj formatı
//
// Event akışı:
// 1. Editör bir section'ı kaydeder → HTTP PUT → SectionService → DB upsert
// 2. Service, Hub'ın BroadcastToAll metodunu çağırır
// 3. Hub, event'i tüm bağlı client'lara iletir
// 4. Açık preview sekmeleri event'i alır ve ilgili section'ı yeniden çizer
//
// Bu hub broadcast-only'dir: client'lardan sadece heartbeat beklenir,
// içerik mutasyonu her zaman HTTP üzerinden gelir.
package ws

// Event, WebSocket üzerinden iletilen bir mesajı temsil eder.
//
// Op (operation): Event türü — "section_update", "heartbeat" vb.
// Data: Event'e özgü payload.
// Seq (sequence number): Her outbound event'e verilen artan sayı.
// Client eksik event tespit etmek için seq'i takip eder:
// seq 5'ten sonra seq 7 gelirse 6 kaybolmuş demektir → tam reload.
type Event struct {
	Op   string `json:"op"`
	Data any    `json:"d,omitempty"`
	Seq  int64  `json:"seq,omitempty"`
}

// Client → Server operasyonları
const (
	OpHeartbeat = "heartbeat" // Client periyodik gönderir — "hâlâ bağlıyım" sinyali
)

// Server → Client operasyonları
const (
	OpReady         = "ready"          // Bağlantı kurulduğunda ilk gönderilen
	OpHeartbeatAck  = "heartbeat_ack"  // Heartbeat'e yanıt
	OpSectionUpdate = "section_update" // Bir section dökümanı replace edildi
	OpShutdown      = "shutdown"       // Server kapanıyor — client yeniden bağlanmayı denemesin
)

// SectionUpdateData, OpSectionUpdate event'inin payload'ı.
// Dökümanın kendisi gönderilmez — client ilgili section'ı HTTP ile
// yeniden çeker. Böylece WS mesajları küçük kalır.
type SectionUpdateData struct {
	PageKey    string `json:"pageKey"`
	SectionKey string `json:"sectionKey"`
}
