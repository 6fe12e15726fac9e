package models

import "time"

// Asset, yüklenmiş bir görsel dosyasının kaydıdır.
//
// FileURL dökümanların içine gömülen durable URL'dir. Cleanup service,
// hiçbir section dökümanında geçmeyen asset'leri grace period sonrası
// diskten ve DB'den siler (bkz. services/cleanup_service.go).
type Asset struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"` // Kullanıcının yüklediği orijinal isim
	DiskName  string    `json:"-"`        // Upload dizinindeki benzersiz dosya adı
	FileURL   string    `json:"url"`
	FileSize  int64     `json:"size"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
}
