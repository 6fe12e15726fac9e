package editor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/assana/cms/models"
)

// SectionGateway, controller'ın backend ile konuştuğu arayüz.
// gateway.Client bu arayüzü karşılar; testler fake verir.
type SectionGateway interface {
	FetchSection(ctx context.Context, pageKey, sectionKey string) (models.Document, error)
	ReplaceSection(ctx context.Context, pageKey, sectionKey string, doc models.Document) (models.Document, error)
}

// SectionSpec, bir sayfa section'ının tanımı: anahtarı ve backend'e
// hiç ulaşılamadığında kullanılacak varsayılan içerik.
type SectionSpec struct {
	Key     string
	Default models.Document
}

var (
	// ErrUnknownSection, controller'a tanıtılmamış bir section anahtarı.
	ErrUnknownSection = errors.New("unknown section")

	// ErrCommitInFlight, aynı section için zaten süren bir kaydetme var.
	ErrCommitInFlight = errors.New("commit already in flight")

	// ErrUploadPending, draft commit edilemez: içinde henüz upload'ı
	// tamamlanmamış bir local preview referansı var.
	ErrUploadPending = errors.New("image upload still pending")
)

// sectionState, tek bir section'ın controller içindeki durumu.
//
// İki kopya tutulur: loaded (backend'den gelen son canonical döküman)
// ve draft (kullanıcının düzenlediği kopya). Draft her zaman derin
// kopyadır — loaded üzerinden alias edilmez, böylece başarısız bir
// kaydetme sonrası kullanıcının düzenlemeleri aynen durur.
type sectionState struct {
	spec       SectionSpec
	loaded     models.Document
	draft      models.Document
	committing bool
}

// Controller, bir sayfanın tüm section'larının draft yaşam döngüsünü
// yönetir: paralel yükleme, varsayılana düşme, draft izolasyonu ve
// commit reconciliation.
type Controller struct {
	mu       sync.Mutex
	gw       SectionGateway
	pageKey  string
	order    []string
	sections map[string]*sectionState
}

// NewController, constructor. Specs sırası korunur (Keys bu sırayla döner).
func NewController(gw SectionGateway, pageKey string, specs []SectionSpec) *Controller {
	c := &Controller{
		gw:       gw,
		pageKey:  pageKey,
		order:    make([]string, 0, len(specs)),
		sections: make(map[string]*sectionState, len(specs)),
	}
	for _, spec := range specs {
		c.order = append(c.order, spec.Key)
		c.sections[spec.Key] = &sectionState{
			spec:   spec,
			loaded: spec.Default.Clone(),
			draft:  spec.Default.Clone(),
		}
	}
	return c
}

// Keys, section anahtarlarını tanım sırasıyla döner.
func (c *Controller) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// LoadAll, tüm section'ları paralel yükler. Tek bir section'ın
// yüklenememesi sayfayı düşürmez: o section varsayılan içeriğiyle
// kalır, hata loglanır ve diğerleri etkilenmez. LoadAll bu yüzden
// hata dönmez — sayfa her koşulda düzenlenebilir açılır.
func (c *Controller) LoadAll(ctx context.Context) {
	var wg sync.WaitGroup

	for _, key := range c.order {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			c.loadOne(ctx, key)
		}(key)
	}

	wg.Wait()
}

func (c *Controller) loadOne(ctx context.Context, key string) {
	doc, err := c.gw.FetchSection(ctx, c.pageKey, key)
	if err != nil {
		log.Printf("[editor] Section yüklenemedi, varsayılan içerik kullanılıyor (%s/%s): %v",
			c.pageKey, key, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.sections[key]
	st.loaded = doc.Clone()
	st.draft = doc.Clone()
}

// Draft, section'ın güncel draft'ının derin kopyasını döner.
func (c *Controller) Draft(key string) (models.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.sections[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, key)
	}
	return st.draft.Clone(), nil
}

// Loaded, section'ın son canonical dökümanının derin kopyasını döner.
func (c *Controller) Loaded(key string) (models.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.sections[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, key)
	}
	return st.loaded.Clone(), nil
}

// SetDraft, section'ın draft'ını değiştirir. Döküman derin kopyalanır —
// caller'ın elindeki map'i sonradan değiştirmesi draft'ı etkilemez.
// Süren bir commit varken de çağrılabilir (network çağrısı mutex
// tutmaz); commit başarıyla dönerse canonical döküman draft'ın yerine
// geçer, yani commit sırasındaki düzenlemeyi caller kendi çalışma
// kopyasında tutup bir sonraki kaydetmeyle göndermelidir.
func (c *Controller) SetDraft(key string, doc models.Document) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.sections[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSection, key)
	}
	st.draft = doc.Clone()
	return nil
}

// SetDraftValue, draft'taki tek bir alanı günceller. Field ve image
// editörlerinin onChange callback'leri için kestirme.
func (c *Controller) SetDraftValue(key, field string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.sections[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSection, key)
	}
	st.draft[field] = value
	return nil
}

// Committing, section için süren bir kaydetme olup olmadığını döner.
func (c *Controller) Committing(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.sections[key]
	if !ok {
		return false
	}
	return st.committing
}

// Commit, section draft'ını backend'e yazar ve dönen canonical dökümanı
// hem loaded hem draft olarak yerleştirir.
//
// Kurallar:
//   - Aynı section için süren bir commit varken ikinci çağrı
//     ErrCommitInFlight ile reddedilir (çift tıklama koruması).
//   - Draft'ın içinde hâlâ local preview referansı varsa kaydetme
//     ErrUploadPending ile reddedilir — preview URL'i sadece bu
//     oturumda anlamlıdır, kalıcı kayda asla giremez.
//   - Network çağrısı mutex dışında yapılır: bir section'ın kaydetmesi
//     diğer section'ların düzenlenmesini bloklamaz.
//   - Hata durumunda draft'a dokunulmaz; kullanıcının düzenlemeleri
//     aynen durur ve tekrar denenebilir.
func (c *Controller) Commit(ctx context.Context, key string) (models.Document, error) {
	c.mu.Lock()

	st, ok := c.sections[key]
	if !ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, key)
	}
	if st.committing {
		c.mu.Unlock()
		return nil, ErrCommitInFlight
	}
	if containsPreviewRef(st.draft) {
		c.mu.Unlock()
		return nil, ErrUploadPending
	}

	snapshot := st.draft.Clone()
	st.committing = true
	c.mu.Unlock()

	canonical, err := c.gw.ReplaceSection(ctx, c.pageKey, key, snapshot)

	c.mu.Lock()
	defer c.mu.Unlock()

	st.committing = false
	if err != nil {
		return nil, err
	}

	st.loaded = canonical.Clone()
	st.draft = canonical.Clone()
	return canonical.Clone(), nil
}

// containsPreviewRef, dökümanın herhangi bir yerinde (iç içe map ve
// listeler dahil) local preview URL'i olup olmadığını tarar.
func containsPreviewRef(v any) bool {
	switch val := v.(type) {
	case string:
		return IsPreviewURL(val)
	case models.Document:
		for _, item := range val {
			if containsPreviewRef(item) {
				return true
			}
		}
	case map[string]any:
		for _, item := range val {
			if containsPreviewRef(item) {
				return true
			}
		}
	case []any:
		for _, item := range val {
			if containsPreviewRef(item) {
				return true
			}
		}
	case []models.Document:
		for _, item := range val {
			if containsPreviewRef(item) {
				return true
			}
		}
	case []string:
		for _, item := range val {
			if IsPreviewURL(item) {
				return true
			}
		}
	}
	return false
}
