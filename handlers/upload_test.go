package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assana/cms/models"
	"github.com/assana/cms/pkg"
	"github.com/assana/cms/services"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

type inMemoryAssetRepo struct {
	assets map[string]models.Asset
}

func (r *inMemoryAssetRepo) Create(ctx context.Context, asset *models.Asset) error {
	r.assets[asset.ID] = *asset
	return nil
}

func (r *inMemoryAssetRepo) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	asset, ok := r.assets[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	return &asset, nil
}

func (r *inMemoryAssetRepo) ListOlderThan(ctx context.Context, cutoff time.Time) ([]models.Asset, error) {
	return nil, nil
}

func (r *inMemoryAssetRepo) Delete(ctx context.Context, id string) error {
	delete(r.assets, id)
	return nil
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/uploads", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func newUploadHandler(t *testing.T) *UploadHandler {
	t.Helper()

	repo := &inMemoryAssetRepo{assets: make(map[string]models.Asset)}
	svc := services.NewUploadService(repo, t.TempDir(), 10*1024*1024)
	return NewUploadHandler(svc, 10*1024*1024)
}

func TestUploadHandler_Upload(t *testing.T) {
	h := newUploadHandler(t)

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartRequest(t, "file", "photo.png", pngMagic))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp pkg.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	asset := resp.Data.(map[string]any)
	assert.Equal(t, "photo.png", asset["filename"])
	assert.NotEmpty(t, asset["url"])
}

func TestUploadHandler_MissingFileField(t *testing.T) {
	h := newUploadHandler(t)

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartRequest(t, "wrong_field", "photo.png", pngMagic))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandler_NonImageRejected(t *testing.T) {
	h := newUploadHandler(t)

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartRequest(t, "file", "payload.png", []byte("MZ not an image at all")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
