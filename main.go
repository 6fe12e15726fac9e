// Package main, CMS backend uygulamasının giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Database'i başlat (embedded migration'lar ile)
//  3. Upload dizinini oluştur
//  4. Repository'leri oluştur (DB bağlantısı ile)
//  5. Katalogdaki varsayılan içeriği seed'le (eksik section'lar için)
//  6. WebSocket Hub'ı başlat
//  7. Service'leri oluştur (repository'ler + hub ile)
//  8. Handler'ları oluştur (service'ler ile)
//  9. HTTP router'ı kur, route'ları bağla
// 10. CORS yapılandır
// 11. Orphan asset sweep goroutine'ini başlat
// 12. HTTP Server'ı başlat
// 13. Graceful shutdown
//
// Global değişken YOK — her şey bu fonksiyonda oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/assana/cms/config"
	"github.com/assana/cms/content"
	"github.com/assana/cms/database"
	"github.com/assana/cms/handlers"
	"github.com/assana/cms/repository"
	"github.com/assana/cms/services"
	"github.com/assana/cms/ws"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] cms server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	// ─── 2. Database ───
	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	if err != nil {
		log.Fatalf("[main] failed to access embedded migrations: %v", err)
	}

	db, err := database.New(cfg.Database.Path, migrationsFS)
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Upload Dizini ───
	if err := os.MkdirAll(cfg.Upload.Dir, 0755); err != nil {
		log.Fatalf("[main] failed to create upload directory: %v", err)
	}

	// ─── 4. Repository Layer ───
	sectionRepo := repository.NewSQLiteSectionRepo(db.Conn)
	assetRepo := repository.NewSQLiteAssetRepo(db.Conn)

	// ─── 5. İçerik Seed ───
	//
	// Katalogdaki varsayılan dökümanlar, veritabanında karşılığı olmayan
	// section'lar için yazılır. Düzenlenmiş içerik asla ezilmez.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	seeded, err := content.SeedDefaults(seedCtx, sectionRepo)
	cancelSeed()
	if err != nil {
		log.Fatalf("[main] failed to seed default content: %v", err)
	}
	if seeded > 0 {
		log.Printf("[main] seeded %d default sections", seeded)
	}

	// ─── 6. WebSocket Hub ───
	//
	// Hub, açık preview/editor sekmelerine section_update event'leri yayınlar.
	// `go hub.Run()` ayrı bir goroutine'de event loop başlatır:
	// register/unregister channel'larını dinler ve client set'ini günceller.
	// SectionService hub'a doğrudan değil, EventPublisher interface'i
	// üzerinden bağımlıdır (Dependency Inversion).
	hub := ws.NewHub()
	go hub.Run()

	// ─── 7. Service Layer ───
	sectionService := services.NewSectionService(sectionRepo, hub)
	uploadService := services.NewUploadService(assetRepo, cfg.Upload.Dir, cfg.Upload.MaxSize)
	cleanupService := services.NewCleanupService(
		assetRepo,
		sectionRepo,
		cfg.Upload.Dir,
		cfg.Cleanup.Interval,
		cfg.Cleanup.MinAge,
	)

	// ─── 8. Handler Layer ───
	sectionHandler := handlers.NewSectionHandler(sectionService)
	uploadHandler := handlers.NewUploadHandler(uploadService, cfg.Upload.MaxSize)
	wsHandler := ws.NewHandler(hub)

	// ─── 9. HTTP Router ───
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":"cms"}`)
	})

	// Sections — döküman okuma ve whole-document replace
	mux.HandleFunc("GET /api/pages/{page}", sectionHandler.ListByPage)
	mux.HandleFunc("GET /api/pages/{page}/{section}", sectionHandler.Get)
	mux.HandleFunc("PUT /api/pages/{page}/{section}", sectionHandler.Replace)

	// Upload — görsel yükleme endpoint'i
	mux.HandleFunc("POST /api/uploads", uploadHandler.Upload)

	// Static file serving — yüklenen görsellere erişim
	//
	// http.StripPrefix: URL'den "/api/uploads/" kısmını çıkarır.
	// http.FileServer: Kalan path'i upload dizininde dosya olarak arar.
	// Örnek: GET /api/uploads/abc123_photo.jpg → ./data/uploads/abc123_photo.jpg
	//
	// Path traversal koruması:
	// http.FileServer zaten ".." path'lerini reddeder.
	// Ek güvenlik için sadece düz dosya isimleri kabul edilir.
	uploadsHandler := http.StripPrefix("/api/uploads/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/") || strings.Contains(r.URL.Path, "\\") {
			http.NotFound(w, r)
			return
		}
		http.FileServer(http.Dir(cfg.Upload.Dir)).ServeHTTP(w, r)
	}))
	mux.Handle("GET /api/uploads/", uploadsHandler)

	// WebSocket — preview sekmeleri section_update event'leri için bağlanır
	mux.HandleFunc("GET /ws", wsHandler.HandleConnection)

	// ─── 10. CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000", // Vite dev server
			"http://localhost:5173", // Vite default
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		Debug:            false,
	})

	handler := corsHandler.Handler(mux)

	// ─── 11. Orphan Asset Sweep ───
	//
	// Kaydedilmeden terk edilen upload'lar ve koleksiyondan silinen
	// görseller için arka plan temizliği. Context iptal edilince durur.
	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	defer cancelCleanup()
	go cleanupService.Run(cleanupCtx)

	// ─── 12. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 3 * time.Minute, // Upload response'ları büyük dosya yazımını bekleyebilir
		IdleTimeout:  60 * time.Second,
	}

	// ─── 13. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")

	// Önce WebSocket bağlantılarını kapat — client'lar "server shutting down" bilir.
	// Sonra HTTP server'ı kapat — yeni request kabul etmeyi durdurur,
	// mevcut request'lerin bitmesini bekler (5sn timeout).
	hub.Shutdown()
	cancelCleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped gracefully")
}
