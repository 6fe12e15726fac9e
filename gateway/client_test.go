package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assana/cms/config"
	"github.com/assana/cms/models"
	"github.com/assana/cms/pkg"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func newTestClient(baseURL string) *Client {
	return NewClient(config.ClientConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
		UploadTimeout:  5 * time.Second,
	})
}

func TestClient_FetchSection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/pages/home/banner", r.URL.Path)
		pkg.JSON(w, http.StatusOK, models.Document{"title": "Welcome"})
	}))
	defer srv.Close()

	doc, err := newTestClient(srv.URL).FetchSection(context.Background(), "home", "banner")
	require.NoError(t, err)
	assert.Equal(t, "Welcome", doc.String("title"))
}

func TestClient_FetchSectionNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.ErrorWithMessage(w, http.StatusNotFound, "section not found")
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchSection(context.Background(), "home", "missing")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestClient_ReplaceSectionReturnsCanonical(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var got models.Document
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Edited", got.String("title"))

		// Even when the server echoes the document unchanged, JSON
		// decoding canonicalizes value types (numbers become float64).
		got["updatedAt"] = "2026-08-29T10:00:00Z"
		pkg.JSON(w, http.StatusOK, got)
	}))
	defer srv.Close()

	canonical, err := newTestClient(srv.URL).ReplaceSection(context.Background(),
		"home", "banner", models.Document{"title": "Edited", "order": 3})
	require.NoError(t, err)

	assert.Equal(t, "Edited", canonical.String("title"))
	assert.Equal(t, "2026-08-29T10:00:00Z", canonical.String("updatedAt"))
	assert.Equal(t, float64(3), canonical["order"])
}

func TestClient_ReplaceSectionServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.ErrorWithMessage(w, http.StatusInternalServerError, "db unavailable")
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ReplaceSection(context.Background(),
		"home", "banner", models.Document{})
	require.Error(t, err)

	var statusErr *pkg.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
	assert.Equal(t, "db unavailable", statusErr.Message)
}

func TestClient_UploadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/uploads", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.png", header.Filename)

		pkg.JSON(w, http.StatusCreated, map[string]string{"url": "/api/uploads/abc.png"})
	}))
	defer srv.Close()

	url, err := newTestClient(srv.URL).UploadImage(context.Background(), "photo.png", pngMagic)
	require.NoError(t, err)
	assert.Equal(t, "/api/uploads/abc.png", url)
}

func TestClient_UploadImageRejectsBeforeNetwork(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	// Non-image content is sniffed and rejected locally.
	_, err := c.UploadImage(context.Background(), "notes.txt", []byte("plain text"))
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	// Oversized payloads never leave the client either.
	big := make([]byte, MaxImageSize+1)
	copy(big, pngMagic)
	_, err = c.UploadImage(context.Background(), "huge.png", big)
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	assert.Zero(t, hits)
}

func TestClient_TimeoutClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(config.ClientConfig{
		BaseURL:        srv.URL,
		RequestTimeout: 20 * time.Millisecond,
		UploadTimeout:  20 * time.Millisecond,
	})

	_, err := c.FetchSection(context.Background(), "home", "banner")
	assert.ErrorIs(t, err, pkg.ErrTimeout)
}
