// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Config struct'ı tüm ayarları tek bir yerde toplar, böylece
// her yerde ayrı ayrı os.Getenv() çağırmak yerine tek bir Config nesnesi taşırız.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — her struct tek bir concern'ü temsil eder.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Upload   UploadConfig
	Client   ClientConfig
	Cleanup  CleanupConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/cms.db)
}

// UploadConfig, görsel yükleme ayarları.
type UploadConfig struct {
	Dir     string // Dosyaların kaydedileceği dizin
	MaxSize int64  // Byte cinsinden max dosya boyutu (varsayılan: 10MB)
}

// ClientConfig, gateway client'ın (editor tarafı) network ayarları.
//
// Section fetch/commit kısa metadata çağrılarıdır — saniyeler mertebesinde
// timeout yeterli. Upload büyük dosya taşıyabilir — dakikalar gerekir.
type ClientConfig struct {
	BaseURL        string
	RequestTimeout time.Duration // Section fetch/replace (varsayılan: 20s)
	UploadTimeout  time.Duration // Görsel upload (varsayılan: 2dk)
}

// CleanupConfig, orphan asset temizleme ayarları.
type CleanupConfig struct {
	Interval time.Duration // Sweep sıklığı (varsayılan: 1 saat)
	MinAge   time.Duration // Asset'in silinebilmesi için minimum yaş (varsayılan: 24 saat)
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
func Load() (*Config, error) {
	// .env dosyası yoksa hata vermez, sessizce devam eder.
	// Production'da bu dosya olmaz, gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	maxSize, err := strconv.ParseInt(getEnv("UPLOAD_MAX_SIZE", "10485760"), 10, 64) // 10MB
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_SIZE: %w", err)
	}

	requestTimeout, err := time.ParseDuration(getEnv("CLIENT_REQUEST_TIMEOUT", "20s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLIENT_REQUEST_TIMEOUT: %w", err)
	}

	uploadTimeout, err := time.ParseDuration(getEnv("CLIENT_UPLOAD_TIMEOUT", "2m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLIENT_UPLOAD_TIMEOUT: %w", err)
	}

	cleanupInterval, err := time.ParseDuration(getEnv("CLEANUP_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLEANUP_INTERVAL: %w", err)
	}

	cleanupMinAge, err := time.ParseDuration(getEnv("CLEANUP_MIN_AGE", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLEANUP_MIN_AGE: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/cms.db"),
		},
		Upload: UploadConfig{
			Dir:     getEnv("UPLOAD_DIR", "./data/uploads"),
			MaxSize: maxSize,
		},
		Client: ClientConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:5000/api"),
			RequestTimeout: requestTimeout,
			UploadTimeout:  uploadTimeout,
		},
		Cleanup: CleanupConfig{
			Interval: cleanupInterval,
			MinAge:   cleanupMinAge,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:5000").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
