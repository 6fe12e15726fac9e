// Package gateway, editor katmanının backend ile konuşan HTTP client'ıdır.
//
// İki servis yüzeyini sarar:
// - Section REST API'si: fetch (GET) ve whole-document replace (PUT)
// - Upload yan kanalı: multipart görsel yükleme
//
// Section çağrıları kısa metadata istekleridir — saniyeler mertebesinde
// timeout. Upload büyük dosya taşıyabilir — ayrı, dakikalar mertebesinde
// timeout'lu bir http.Client kullanılır.
//
// Hata sınıflandırması:
// - HTTP 404 → pkg.ErrNotFound (recoverable; editor default şekle düşer)
// - Diğer 4xx/5xx → *pkg.StatusError (server'ın kendi mesajı ile)
// - Network timeout / deadline → pkg.ErrTimeout
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/assana/cms/config"
	"github.com/assana/cms/editor"
	"github.com/assana/cms/models"
	"github.com/assana/cms/pkg"
)

// MaxImageSize, upload yan kanalının kabul ettiği maksimum dosya boyutu.
// Server aynı limiti uygular; client tarafında da kontrol edilir ki
// 10MB'ı aşan dosya network'e hiç çıkmasın.
const MaxImageSize = 10 * 1024 * 1024

// Client, backend gateway'in HTTP implementasyonu.
type Client struct {
	baseURL    string
	httpClient *http.Client // Section fetch/replace
	uploadHTTP *http.Client // Görsel upload (uzun timeout)
}

// Client, editor paketinin gateway interface'lerini eksiksiz karşılamalı.
// İmza kayması derleme hatası olarak yakalanır.
var (
	_ editor.SectionGateway = (*Client)(nil)
	_ editor.ImageUploader  = (*Client)(nil)
)

// NewClient, constructor.
func NewClient(cfg config.ClientConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		uploadHTTP: &http.Client{Timeout: cfg.UploadTimeout},
	}
}

// envelope, backend'in APIResponse formatı (bkz. pkg/response.go).
// Data burada RawMessage'dır — payload tipi endpoint'e göre değişir.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// FetchSection, section dökümanını okur.
// Döküman yoksa pkg.ErrNotFound döner — caller default şekle düşer.
func (c *Client) FetchSection(ctx context.Context, pageKey, sectionKey string) (models.Document, error) {
	url := fmt.Sprintf("%s/pages/%s/%s", c.baseURL, pageKey, sectionKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}

	var doc models.Document
	if err := c.do(c.httpClient, req, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// ReplaceSection, dökümanı bütün olarak gönderir ve backend'in kaydettiği
// canonical dökümanı döner. Backend alanları normalize edebilir/defaultlayabilir —
// dönen değer draft'ın yeni hali olmalıdır, gönderilen değil.
func (c *Client) ReplaceSection(ctx context.Context, pageKey, sectionKey string, doc models.Document) (models.Document, error) {
	url := fmt.Sprintf("%s/pages/%s/%s", c.baseURL, pageKey, sectionKey)

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build replace request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var canonical models.Document
	if err := c.do(c.httpClient, req, &canonical); err != nil {
		return nil, err
	}

	return canonical, nil
}

// UploadImage, görseli upload yan kanalına gönderir ve durable URL döner.
//
// İçerik türü network çağrısından ÖNCE doğrulanır: dosyanın ilk
// byte'larından sniff edilir (uzantı ve beyan edilen tür güvenilmez).
// Görsel olmayan içerik veya 10MB üstü dosya hiç gönderilmez.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	if int64(len(data)) > MaxImageSize {
		return "", fmt.Errorf("%w: file too large (max %dMB)", pkg.ErrBadRequest, MaxImageSize/(1024*1024))
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: not an image file (%s)", pkg.ErrBadRequest, mtype.String())
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/uploads", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var asset struct {
		URL string `json:"url"`
	}
	if err := c.do(c.uploadHTTP, req, &asset); err != nil {
		return "", err
	}

	if asset.URL == "" {
		return "", fmt.Errorf("%w: upload response missing url", pkg.ErrInternal)
	}

	return asset.URL, nil
}

// do, isteği çalıştırır, envelope'u çözer ve hatayı sınıflandırır.
// out nil değilse envelope.Data oraya decode edilir.
func (c *Client) do(client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return classifyTransportError(err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &pkg.StatusError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		message := env.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &pkg.StatusError{Status: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// classifyTransportError, network hatalarını domain error'larına çevirir.
// Editor katmanı errors.Is(err, pkg.ErrTimeout) ile timeout'a özel
// kullanıcı mesajı gösterir.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", pkg.ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", pkg.ErrTimeout, err)
	}

	return fmt.Errorf("request failed: %w", err)
}
