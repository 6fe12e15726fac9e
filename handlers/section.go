package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/assana/cms/models"
	"github.com/assana/cms/pkg"
	"github.com/assana/cms/services"
)

// SectionHandler, section endpoint'lerini yöneten struct.
type SectionHandler struct {
	sectionService services.SectionService
}

// NewSectionHandler, constructor.
func NewSectionHandler(sectionService services.SectionService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

// Get godoc
// GET /api/pages/{page}/{section}
// Section dökümanını döner. Döküman yoksa 404 — editor tarafı bunu
// recoverable sayar ve default şekle düşer.
//
// r.PathValue("page") — Go 1.22+ ile gelen path parameter desteği.
// Route tanımında {page} olarak yazılan parametreyi çeker.
func (h *SectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	pageKey := r.PathValue("page")
	sectionKey := r.PathValue("section")

	doc, err := h.sectionService.Get(r.Context(), pageKey, sectionKey)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, doc)
}

// Replace godoc
// PUT /api/pages/{page}/{section}
// Dökümanı bütün olarak değiştirir (upsert) ve kaydedilen canonical
// halini döner. Body, JSON object olmalıdır — alan bazlı patch yoktur.
func (h *SectionHandler) Replace(w http.ResponseWriter, r *http.Request) {
	pageKey := r.PathValue("page")
	sectionKey := r.PathValue("section")

	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body: expected a JSON object")
		return
	}
	if doc == nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body: document must not be null")
		return
	}

	canonical, err := h.sectionService.Replace(r.Context(), pageKey, sectionKey, doc)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, canonical)
}

// ListByPage godoc
// GET /api/pages/{page}
// Bir sayfanın tüm section'larını döner (CMS sidebar'ın sayfa özeti için).
func (h *SectionHandler) ListByPage(w http.ResponseWriter, r *http.Request) {
	pageKey := r.PathValue("page")

	sections, err := h.sectionService.ListByPage(r.Context(), pageKey)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, sections)
}
