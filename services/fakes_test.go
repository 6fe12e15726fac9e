package services

import (
	"context"
	"sync"
	"time"

	"github.com/assana/cms/models"
	"github.com/assana/cms/pkg"
	"github.com/assana/cms/ws"
)

// fakeSectionRepo, in-memory SectionRepository.
type fakeSectionRepo struct {
	mu       sync.Mutex
	docs     map[string]models.Document // "page/section" → döküman
	getCalls int
	refs     map[string]int // url → referans sayısı (CountReferencing için)
}

func newFakeSectionRepo() *fakeSectionRepo {
	return &fakeSectionRepo{
		docs: make(map[string]models.Document),
		refs: make(map[string]int),
	}
}

func (r *fakeSectionRepo) Get(ctx context.Context, pageKey, sectionKey string) (*models.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.getCalls++
	doc, ok := r.docs[pageKey+"/"+sectionKey]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	return &models.Section{
		PageKey:    pageKey,
		SectionKey: sectionKey,
		Document:   doc.Clone(),
	}, nil
}

func (r *fakeSectionRepo) Replace(ctx context.Context, pageKey, sectionKey string, doc models.Document) (*models.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.docs[pageKey+"/"+sectionKey] = doc.Clone()
	return &models.Section{
		PageKey:    pageKey,
		SectionKey: sectionKey,
		Document:   doc.Clone(),
		UpdatedAt:  time.Now(),
	}, nil
}

func (r *fakeSectionRepo) ListByPage(ctx context.Context, pageKey string) ([]models.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Section
	for key, doc := range r.docs {
		if len(key) > len(pageKey) && key[:len(pageKey)+1] == pageKey+"/" {
			out = append(out, models.Section{
				PageKey:    pageKey,
				SectionKey: key[len(pageKey)+1:],
				Document:   doc.Clone(),
			})
		}
	}
	return out, nil
}

func (r *fakeSectionRepo) CountReferencing(ctx context.Context, url string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.refs[url], nil
}

// fakeAssetRepo, in-memory AssetRepository.
type fakeAssetRepo struct {
	mu     sync.Mutex
	assets map[string]models.Asset
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: make(map[string]models.Asset)}
}

func (r *fakeAssetRepo) Create(ctx context.Context, asset *models.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if asset.CreatedAt.IsZero() {
		asset.CreatedAt = time.Now()
	}
	r.assets[asset.ID] = *asset
	return nil
}

func (r *fakeAssetRepo) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset, ok := r.assets[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	return &asset, nil
}

func (r *fakeAssetRepo) ListOlderThan(ctx context.Context, cutoff time.Time) ([]models.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Asset
	for _, asset := range r.assets {
		if asset.CreatedAt.Before(cutoff) {
			out = append(out, asset)
		}
	}
	return out, nil
}

func (r *fakeAssetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assets[id]; !ok {
		return pkg.ErrNotFound
	}
	delete(r.assets, id)
	return nil
}

// fakePublisher, broadcast edilen event'leri biriktirir.
type fakePublisher struct {
	mu     sync.Mutex
	events []ws.Event
}

func (p *fakePublisher) BroadcastToAll(event ws.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
}

func (p *fakePublisher) all() []ws.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]ws.Event, len(p.events))
	copy(out, p.events)
	return out
}
