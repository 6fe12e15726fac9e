package repository

import (
	"context"

	"github.com/assana/cms/models"
)

// SectionRepository, section veritabanı işlemleri için interface.
// Her method context.Context alır — HTTP isteği iptal edilirse sorgu da durur.
type SectionRepository interface {
	Get(ctx context.Context, pageKey, sectionKey string) (*models.Section, error)
	// Replace, dökümanı bütün olarak upsert eder ve kaydedilen canonical
	// halini döner. Transaction kullanılır — yazma ve geri okuma tek birimdir.
	Replace(ctx context.Context, pageKey, sectionKey string, doc models.Document) (*models.Section, error)
	ListByPage(ctx context.Context, pageKey string) ([]models.Section, error)
	// CountReferencing, verilen URL'i döküman gövdesinde geçiren
	// section sayısını döner. Orphan asset tespiti için kullanılır.
	CountReferencing(ctx context.Context, url string) (int, error)
}
