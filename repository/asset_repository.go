package repository

import (
	"context"
	"time"

	"github.com/assana/cms/models"
)

// AssetRepository, yüklenen görsel kayıtları için interface.
type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, id string) (*models.Asset, error)
	// ListOlderThan, cutoff'tan önce yüklenmiş asset'leri döner.
	// Cleanup sweep yeni yüklenen ama henüz kaydedilmemiş dökümanlardaki
	// görselleri silmemek için yaş filtresi uygular.
	ListOlderThan(ctx context.Context, cutoff time.Time) ([]models.Asset, error)
	Delete(ctx context.Context, id string) error
}
