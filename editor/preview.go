package editor

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// previewScheme, transient (kalıcı olmayan) local preview URL'lerinin
// prefix'i. Durable URL'lerden ayırt edilmeleri bu prefix ile yapılır —
// commit sırasında draft'ta bu prefix'li bir değer kalmışsa upload henüz
// bitmemiş demektir (bkz. Controller.Commit).
const previewScheme = "preview://"

// IsPreviewURL, değerin transient bir local preview referansı olup
// olmadığını döner.
func IsPreviewURL(url string) bool {
	return strings.HasPrefix(url, previewScheme)
}

// PreviewRef, seçilen dosyadan üretilen local preview referansı.
//
// Dosyanın byte'larını bellekte tutar — büyük bir buffer'ı
// yaşatabileceği için zamanında release edilmesi GC'ye bırakılmaz:
// slot sahibi yeni bir seçimde veya upload sonuçlandığında release eder.
type PreviewRef struct {
	url      string
	data     []byte
	released bool
}

// URL, preview referansının transient URL'ini döner.
func (r *PreviewRef) URL() string {
	return r.url
}

// Data, preview'ın gösterilecek byte'larını döner.
// Release sonrası nil döner.
func (r *PreviewRef) Data() []byte {
	if r.released {
		return nil
	}
	return r.data
}

// Released, referansın serbest bırakılıp bırakılmadığını döner.
func (r *PreviewRef) Released() bool {
	return r.released
}

// previewSlot, ImageEditor başına tek preview tutan arena-benzeri slot.
//
// Invariant: bir editörde aynı anda en fazla BİR preview referansı
// yaşayabilir. Yeni bir acquire önceki referansı anında release eder —
// upload'ı hâlâ uçuşta olsa bile (superseded upload'ın sonucu zaten
// generation kontrolüne takılır, preview'ına ihtiyacı yoktur).
type previewSlot struct {
	mu      sync.Mutex
	current *PreviewRef
}

// acquire, önceki preview'ı (varsa) release edip yeni bir referans üretir.
func (s *previewSlot) acquire(data []byte) *PreviewRef {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.current.data = nil
		s.current.released = true
	}

	s.current = &PreviewRef{
		url:  previewScheme + uuid.NewString(),
		data: data,
	}
	return s.current
}

// release, slot'taki preview'ı (varsa) serbest bırakır.
func (s *previewSlot) release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.current.data = nil
		s.current.released = true
		s.current = nil
	}
}
