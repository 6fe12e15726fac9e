package editor

import "log"

// Level, kullanıcı bildiriminin türü.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier, editor bileşenlerinin kullanıcıya mesaj göstermek için
// kullandığı interface. UI katmanı bunu alert/toast olarak implement eder;
// testler mesajları yakalamak için kendi fake'ini verir.
//
// Network sınırındaki tüm hatalar çağrıyı başlatan bileşende yakalanır
// ve Notifier üzerinden kullanıcıya çevrilir — hiçbir hata draft'ı
// yarım mutasyonlu bırakamaz veya yukarı panic olarak taşamaz.
type Notifier interface {
	Notify(level Level, message string)
}

// NotifierFunc, tek fonksiyonluk Notifier adapter'ı
// (http.HandlerFunc pattern'i).
type NotifierFunc func(level Level, message string)

func (f NotifierFunc) Notify(level Level, message string) {
	f(level, message)
}

// NewLogNotifier, bildirimleri log'a yazan varsayılan Notifier'ı döner.
// UI bağlanmamış ortamlar (CLI araçları, testler) için yeterlidir.
func NewLogNotifier() Notifier {
	return NotifierFunc(func(level Level, message string) {
		log.Printf("[notify] %s: %s", level, message)
	})
}
