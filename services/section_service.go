package services

import (
	"context"
	"fmt"
	"time"

	"github.com/assana/cms/models"
	"github.com/assana/cms/pkg/cache"
	"github.com/assana/cms/repository"
	"github.com/assana/cms/ws"
)

// SectionService, section okuma/yazma iş mantığı interface'i.
type SectionService interface {
	Get(ctx context.Context, pageKey, sectionKey string) (models.Document, error)
	// Replace, dökümanı bütün olarak değiştirir ve kaydedilen canonical
	// halini döner. Alan bazlı güncelleme yoktur.
	Replace(ctx context.Context, pageKey, sectionKey string, doc models.Document) (models.Document, error)
	ListByPage(ctx context.Context, pageKey string) ([]models.Section, error)
}

type sectionService struct {
	sectionRepo repository.SectionRepository
	hub         ws.EventPublisher

	// readCache: (page/section) → döküman. Yayındaki site her sayfa
	// görüntülemede aynı section'ları okur; kısa bir TTL DB yükünü
	// ortadan kaldırır. Replace ilgili entry'yi invalidate eder.
	readCache *cache.TTLCache[string, models.Document]
}

// NewSectionService, constructor.
func NewSectionService(sectionRepo repository.SectionRepository, hub ws.EventPublisher) SectionService {
	return &sectionService{
		sectionRepo: sectionRepo,
		hub:         hub,
		readCache:   cache.New[string, models.Document](30*time.Second, 5*time.Minute),
	}
}

func cacheKey(pageKey, sectionKey string) string {
	return pageKey + "/" + sectionKey
}

// Get, section dökümanını döner. Döküman yoksa pkg.ErrNotFound döner —
// bu recoverable bir durumdur, editor tarafı default şekle düşer.
//
// Cache'ten dönen dökümanın Clone'u verilir — caller'ın elindeki map'i
// mutasyona uğratması cache'teki kopyayı bozamaz.
func (s *sectionService) Get(ctx context.Context, pageKey, sectionKey string) (models.Document, error) {
	key := cacheKey(pageKey, sectionKey)

	if doc, ok := s.readCache.Get(key); ok {
		return doc.Clone(), nil
	}

	section, err := s.sectionRepo.Get(ctx, pageKey, sectionKey)
	if err != nil {
		return nil, err
	}

	s.readCache.Set(key, section.Document.Clone())
	return section.Document, nil
}

// Replace, dökümanı upsert eder, cache'i invalidate eder ve açık preview
// sekmelerinin yeniden çizim yapması için section_update broadcast eder.
func (s *sectionService) Replace(ctx context.Context, pageKey, sectionKey string, doc models.Document) (models.Document, error) {
	section, err := s.sectionRepo.Replace(ctx, pageKey, sectionKey, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to replace section %s/%s: %w", pageKey, sectionKey, err)
	}

	s.readCache.Delete(cacheKey(pageKey, sectionKey))

	s.hub.BroadcastToAll(ws.Event{
		Op: ws.OpSectionUpdate,
		Data: ws.SectionUpdateData{
			PageKey:    pageKey,
			SectionKey: sectionKey,
		},
	})

	return section.Document, nil
}

func (s *sectionService) ListByPage(ctx context.Context, pageKey string) ([]models.Section, error) {
	return s.sectionRepo.ListByPage(ctx, pageKey)
}
