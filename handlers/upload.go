package handlers

import (
	"net/http"

	"github.com/assana/cms/pkg"
	"github.com/assana/cms/services"
)

// UploadHandler, görsel yükleme endpoint'ini yöneten struct.
type UploadHandler struct {
	uploadService services.UploadService
	maxSize       int64
}

// NewUploadHandler, constructor.
func NewUploadHandler(uploadService services.UploadService, maxSize int64) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		maxSize:       maxSize,
	}
}

// Upload godoc
// POST /api/uploads
// multipart/form-data body'sindeki "file" alanını kaydeder ve asset
// bilgisini (durable URL dahil) döner.
//
// http.MaxBytesReader: request body'yi limitin biraz üzerinde keser —
// devasa bir body'nin tamamı belleğe/diske inmeden reddedilir.
// Asıl boyut doğrulaması service katmanındadır.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+1024*1024)

	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid multipart body or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "missing form field: file")
		return
	}
	defer file.Close()

	asset, err := h.uploadService.Upload(r.Context(), file, header)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, asset)
}
