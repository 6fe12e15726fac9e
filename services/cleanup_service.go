package services

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/assana/cms/repository"
)

// CleanupService, hiçbir section dökümanında referans edilmeyen yüklenmiş
// görselleri periyodik olarak diskten ve DB'den siler.
//
// Neden gerekli?
// Editör bir görsel yükler yüklemez draft'a sadece URL girer; section
// kaydedilmeden sekme kapatılırsa ya da görsel daha sonra koleksiyondan
// silinirse dosya disk üzerinde sahipsiz kalır. Editor tarafındaki
// remove-sonrası-autocommit hook'u bu pencereyi daraltır ama kapatamaz —
// kalıcı temizlik server tarafında yapılır.
//
// MinAge koruması: yeni yüklenen ama henüz kaydedilmemiş bir dökümanın
// görseli "referanssız" görünür. Grace period dolmadan hiçbir asset silinmez.
type CleanupService interface {
	// Run, periyodik sweep döngüsünü başlatır. Ayrı bir goroutine'de
	// çağrılır; ctx iptal edilince döner.
	Run(ctx context.Context)
	// Sweep, tek bir temizlik turu çalıştırır ve silinen asset sayısını döner.
	Sweep(ctx context.Context) (int, error)
}

type cleanupService struct {
	assetRepo   repository.AssetRepository
	sectionRepo repository.SectionRepository
	uploadDir   string
	interval    time.Duration
	minAge      time.Duration
}

// NewCleanupService, constructor.
func NewCleanupService(
	assetRepo repository.AssetRepository,
	sectionRepo repository.SectionRepository,
	uploadDir string,
	interval time.Duration,
	minAge time.Duration,
) CleanupService {
	return &cleanupService{
		assetRepo:   assetRepo,
		sectionRepo: sectionRepo,
		uploadDir:   uploadDir,
		interval:    interval,
		minAge:      minAge,
	}
}

func (s *cleanupService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			deleted, err := s.Sweep(ctx)
			if err != nil {
				log.Printf("[cleanup] sweep failed: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("[cleanup] removed %d orphaned assets", deleted)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Sweep, grace period'u dolmuş asset'leri tarar; hiçbir section
// dökümanında geçmeyenleri siler.
//
// Silme sırası önemli: önce DB kaydı, sonra dosya. DB silme başarısız
// olursa dosya yerinde kalır ve bir sonraki sweep tekrar dener; tersi
// sırada dosyasız kayıt kalıcı olarak sahipsiz kalırdı.
func (s *cleanupService) Sweep(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.minAge)

	assets, err := s.assetRepo.ListOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, asset := range assets {
		refs, err := s.sectionRepo.CountReferencing(ctx, asset.FileURL)
		if err != nil {
			log.Printf("[cleanup] reference check failed for %s: %v", asset.ID, err)
			continue
		}
		if refs > 0 {
			continue
		}

		if err := s.assetRepo.Delete(ctx, asset.ID); err != nil {
			log.Printf("[cleanup] failed to delete asset record %s: %v", asset.ID, err)
			continue
		}

		path := filepath.Join(s.uploadDir, asset.DiskName)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("[cleanup] failed to remove file %s: %v", path, err)
		}

		deleted++
	}

	return deleted, nil
}
