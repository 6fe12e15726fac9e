package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/assana/cms/models"
	"github.com/assana/cms/pkg"
	"github.com/assana/cms/repository"
)

// UploadService, görsel yükleme iş mantığı interface'i.
type UploadService interface {
	Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*models.Asset, error)
}

type uploadService struct {
	assetRepo repository.AssetRepository
	uploadDir string
	maxSize   int64
}

// NewUploadService, constructor.
func NewUploadService(assetRepo repository.AssetRepository, uploadDir string, maxSize int64) UploadService {
	return &uploadService{
		assetRepo: assetRepo,
		uploadDir: uploadDir,
		maxSize:   maxSize,
	}
}

// Upload, dosyayı doğrular, diske kaydeder ve asset kaydı oluşturur.
//
// Doğrulama sırası: önce boyut, sonra gerçek içerik türü. İçerik türü
// client'ın beyan ettiği Content-Type header'ından DEĞİL, dosyanın ilk
// byte'larından tespit edilir (mimetype sniffing) — yanlış beyan edilmiş
// bir .exe "image/png" header'ı ile geçemez.
func (s *uploadService) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*models.Asset, error) {
	if header.Size > s.maxSize {
		return nil, fmt.Errorf("%w: file too large (max %dMB)", pkg.ErrBadRequest, s.maxSize/(1024*1024))
	}

	// mimetype.DetectReader ilk ~3KB'ı okur — okuma pozisyonunu başa al.
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind upload: %w", err)
	}

	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("%w: only image uploads are allowed (got %s)", pkg.ErrBadRequest, mtype.String())
	}

	// Benzersiz dosya adı — çakışma ve path traversal güvenliği için.
	// {uuid}_{sanitized_original} formatı; uuid prefix aynı zamanda
	// CountReferencing'in substring aramasını benzersiz kılar.
	id := uuid.NewString()
	safeFilename := sanitizeFilename(header.Filename)
	diskName := id + "_" + safeFilename

	destPath := filepath.Join(s.uploadDir, diskName)
	destFile, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, file); err != nil {
		os.Remove(destPath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	asset := &models.Asset{
		ID:       id,
		Filename: header.Filename,
		DiskName: diskName,
		FileURL:  "/api/uploads/" + diskName,
		FileSize: header.Size,
		MimeType: mtype.String(),
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		os.Remove(destPath) // Hata durumunda dosyayı temizle
		return nil, fmt.Errorf("failed to create asset record: %w", err)
	}

	return asset, nil
}

// sanitizeFilename, dosya adını güvenli hale getirir.
// Path traversal saldırılarını önler (../../etc/passwd gibi).
func sanitizeFilename(name string) string {
	name = filepath.Base(name)

	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == '\x00' {
			return -1
		}
		return r
	}, name)

	if name == "" || name == "." || name == ".." {
		name = "unnamed"
	}

	return name
}
