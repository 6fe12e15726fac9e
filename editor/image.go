package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/assana/cms/pkg"
)

// maxImageBytes, seçilebilecek maksimum dosya boyutu.
// Backend aynı limiti uygular — buradaki kontrol geçersiz dosyanın
// network'e hiç çıkmamasını sağlar.
const maxImageBytes = 10 * 1024 * 1024

// ImageUploader, upload yan kanalının interface'i.
// gateway.Client bu interface'i karşılar; testler fake verir.
type ImageUploader interface {
	UploadImage(ctx context.Context, filename string, data []byte) (string, error)
}

// ImageEditor, tek bir görsel URL alanının editörü.
//
// Seçilen dosya için "optimistic preview" akışı uygulanır:
//  1. Doğrulama (tür + boyut) — network'ten önce, draft'a dokunmadan
//  2. Local preview referansı üret ve ANINDA draft'a ilet
//     (UI network round trip'i beklemeden güncellenir)
//  3. Upload'ı arka planda çalıştır
//  4. Başarıda preview'ı release et, durable URL'i draft'a ilet
//  5. Hatada preview'ı release et, draft'ı seçim öncesi değere geri al,
//     sınıflandırılmış hata mesajı göster
//
// Üst üste seçimlerde last-writer-wins ÇAĞRI sırasına göredir, network
// tamamlanma sırasına göre değil: her ChooseFile bir generation numarası
// alır; sonuç uygulanırken numara hâlâ günceldeyse uygulanır, değilse
// sessizce atılır. Süpersede edilen seçimin preview'ı yeni seçim anında
// release edilir (slot tek preview tutar — leak yok).
//
// onChange callback'i editörün mutex'i altında çağrılır; callback
// editörün kendi metodlarına geri girmemelidir.
type ImageEditor struct {
	mu        sync.Mutex
	url       string // Dışarıdan gelen güncel değer (seçim öncesi revert hedefi)
	uploading bool
	gen       int64 // Monoton seçim sayacı (request generation)
	slot      previewSlot
	wg        sync.WaitGroup

	uploader ImageUploader
	onChange func(string)
	notify   Notifier
	timeout  time.Duration
}

// ImageOption, NewImageEditor için opsiyonel ayar.
type ImageOption func(*ImageEditor)

// WithNotifier, kullanıcı bildirimlerinin hedefini değiştirir.
func WithNotifier(n Notifier) ImageOption {
	return func(e *ImageEditor) { e.notify = n }
}

// WithUploadTimeout, upload timeout'unu değiştirir (varsayılan: 2dk).
func WithUploadTimeout(d time.Duration) ImageOption {
	return func(e *ImageEditor) { e.timeout = d }
}

// NewImageEditor, constructor.
func NewImageEditor(url string, uploader ImageUploader, onChange func(string), opts ...ImageOption) *ImageEditor {
	e := &ImageEditor{
		url:      url,
		uploader: uploader,
		onChange: onChange,
		notify:   NewLogNotifier(),
		timeout:  2 * time.Minute,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ChooseFile, kullanıcının dosya seçiminde çağrılır.
// Doğrulama hatası draft'a hiç dokunmaz: önceki görsel değeri korunur,
// kullanıcı senkron olarak bilgilendirilir ve hata döner.
// Doğrulama geçerse preview anında draft'a iletilir, upload arka planda
// başlar ve ChooseFile döner — caller'a görünür bir bloklama yoktur.
func (e *ImageEditor) ChooseFile(filename string, data []byte) error {
	if int64(len(data)) > maxImageBytes {
		e.notify.Notify(LevelError, "File size must be less than 10MB")
		return fmt.Errorf("%w: file too large", pkg.ErrBadRequest)
	}

	if !strings.HasPrefix(mimetype.Detect(data).String(), "image/") {
		e.notify.Notify(LevelError, "Please select an image file")
		return fmt.Errorf("%w: not an image file", pkg.ErrBadRequest)
	}

	e.mu.Lock()
	prior := e.url
	ref := e.slot.acquire(data) // süpersede edilen preview burada release olur
	e.gen++
	g := e.gen
	e.uploading = true

	// Optimistic preview — upload başlamadan draft güncellenir.
	if e.onChange != nil {
		e.onChange(ref.URL())
	}
	e.mu.Unlock()

	e.wg.Add(1)
	go e.upload(g, filename, data, prior)

	return nil
}

// upload, arka plan upload'ını çalıştırır ve sonucu uygular.
// Generation kontrolü ile sadece en güncel seçimin sonucu draft'a yazılır.
func (e *ImageEditor) upload(g int64, filename string, data []byte, prior string) {
	defer e.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	url, err := e.uploader.UploadImage(ctx, filename, data)

	e.mu.Lock()
	defer e.mu.Unlock()

	if g != e.gen {
		// Stale sonuç — kullanıcı bu upload bitmeden yeni dosya seçti.
		// Preview'ımız zaten yeni seçim tarafından release edildi;
		// sonuç ne olursa olsun draft'a dokunulmaz.
		return
	}

	e.uploading = false
	e.slot.release()

	if err != nil {
		if e.onChange != nil {
			e.onChange(prior)
		}
		e.notify.Notify(LevelError, classifyUploadError(err))
		return
	}

	e.url = url
	if e.onChange != nil {
		e.onChange(url)
	}
}

// SyncValue, dış değer değiştiğinde çağrılır (commit sonrası canonical
// döküman gibi). Kendi preview URL'imizin parent'tan yankılanması
// yoksayılır — revert hedefi her zaman gerçek (durable) değerdir.
func (e *ImageEditor) SyncValue(url string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if IsPreviewURL(url) {
		return
	}
	e.url = url
}

// Uploading, uçuşta bir upload olup olmadığını döner (busy göstergesi).
func (e *ImageEditor) Uploading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.uploading
}

// Close, uçuştaki upload'ın sonuçlanmasını bekler ve preview slot'unu
// serbest bırakır. Editör ekrandan kaldırılırken çağrılmalıdır —
// preview büyük bir buffer'ı yaşatabilir, release GC'ye bırakılmaz.
func (e *ImageEditor) Close() {
	e.wg.Wait()
	e.slot.release()
}

// classifyUploadError, upload hatasını kullanıcıya gösterilecek mesaja
// çevirir: timeout, server'ın bildirdiği hata ve genel hata ayrı mesaj alır.
func classifyUploadError(err error) string {
	var statusErr *pkg.StatusError

	switch {
	case errors.Is(err, pkg.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "Upload timeout. The image may be too large or your connection is slow. " +
			"Please try again with a smaller image or check your connection."
	case errors.As(err, &statusErr):
		return "Upload failed: " + statusErr.Message
	default:
		return "Failed to upload image. Please try again."
	}
}
