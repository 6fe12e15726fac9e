package editor

import (
	"context"
	"errors"
	"log"
)

// SectionHost, tek bir section'ın kaydetme yüzeyi: Controller'ın
// Commit'ini kullanıcı bildirimleriyle sarar. Sayfadaki her section
// kendi host'unu alır — busy durumu ve bildirimler section bazındadır.
type SectionHost struct {
	ctl    *Controller
	key    string
	name   string // Bildirimlerde geçen insan-okur section adı
	notify Notifier
}

// NewSectionHost, constructor.
func NewSectionHost(ctl *Controller, key, name string, notify Notifier) *SectionHost {
	if notify == nil {
		notify = NewLogNotifier()
	}
	return &SectionHost{
		ctl:    ctl,
		key:    key,
		name:   name,
		notify: notify,
	}
}

// Key, section anahtarını döner.
func (h *SectionHost) Key() string { return h.key }

// Saving, kaydetme butonunun busy durumu.
func (h *SectionHost) Saving() bool { return h.ctl.Committing(h.key) }

// Save, section'ı kaydeder ve sonucu kullanıcıya bildirir.
// Süren bir kaydetme varken gelen ikinci çağrı sessizce yutulur
// (buton zaten devre dışıdır, ikinci tıklama hata değildir).
// Başarı durumunda true döner.
func (h *SectionHost) Save(ctx context.Context) bool {
	_, err := h.ctl.Commit(ctx, h.key)
	if err != nil {
		switch {
		case errors.Is(err, ErrCommitInFlight):
			// no-op
		case errors.Is(err, ErrUploadPending):
			h.notify.Notify(LevelError, "Please wait for the image upload to finish before saving.")
		default:
			log.Printf("[editor] %s kaydedilemedi: %v", h.name, err)
			h.notify.Notify(LevelError, "Failed to save. Please try again.")
		}
		return false
	}

	h.notify.Notify(LevelSuccess, h.name+" saved successfully!")
	return true
}
