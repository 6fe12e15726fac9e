package editor

import (
	"github.com/assana/cms/models"
)

// ListEditor, düz string listesi editörü (madde listeleri gibi).
//
// Her operasyon listenin TAMAMININ kopyasını onChange ile iletir —
// draft tarafında partial mutation olmaz, liste her zaman bütün olarak
// değişir. Dışarı verilen slice'lar her zaman kopyadır; caller'ın
// üzerine yazması editörün iç durumunu etkilemez.
type ListEditor struct {
	items    []string
	onChange func([]string)
}

// NewListEditor, constructor. Verilen slice kopyalanır.
func NewListEditor(items []string, onChange func([]string)) *ListEditor {
	e := &ListEditor{
		items:    make([]string, len(items)),
		onChange: onChange,
	}
	copy(e.items, items)
	return e
}

// Items, güncel listenin kopyasını döner.
func (e *ListEditor) Items() []string {
	out := make([]string, len(e.items))
	copy(out, e.items)
	return out
}

// Add, listenin sonuna boş bir eleman ekler.
func (e *ListEditor) Add() {
	e.items = append(e.items, "")
	e.emit()
}

// Remove, i indeksindeki elemanı siler. Geçersiz indeks no-op.
func (e *ListEditor) Remove(i int) {
	if i < 0 || i >= len(e.items) {
		return
	}
	e.items = append(e.items[:i], e.items[i+1:]...)
	e.emit()
}

// UpdateItem, i indeksindeki elemanı günceller. Geçersiz indeks no-op.
func (e *ListEditor) UpdateItem(i int, value string) {
	if i < 0 || i >= len(e.items) {
		return
	}
	e.items[i] = value
	e.emit()
}

// MoveUp, elemanı bir üst sıraya taşır. İlk eleman ve geçersiz indeks no-op.
func (e *ListEditor) MoveUp(i int) {
	if i <= 0 || i >= len(e.items) {
		return
	}
	e.items[i-1], e.items[i] = e.items[i], e.items[i-1]
	e.emit()
}

// MoveDown, elemanı bir alt sıraya taşır. Son eleman ve geçersiz indeks no-op.
func (e *ListEditor) MoveDown(i int) {
	if i < 0 || i >= len(e.items)-1 {
		return
	}
	e.items[i], e.items[i+1] = e.items[i+1], e.items[i]
	e.emit()
}

func (e *ListEditor) emit() {
	if e.onChange == nil {
		return
	}
	e.onChange(e.Items())
}

// FieldKind, yapısal koleksiyon elemanlarındaki alan tipi.
// Kind, alanın hangi editörle düzenleneceğini belirler.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindImage    FieldKind = "image"
)

// Field, yapısal koleksiyondaki tek bir alanın tanımı.
type Field struct {
	Key   string
	Label string
	Kind  FieldKind
}

// ItemsEditor, yapısal eleman listesi editörü (SSS, yorum kartı,
// ekip üyesi gibi). Elemanlar Document'tir; her eleman için hangi
// alanların var olduğu Field tanımlarıyla deklare edilir.
//
// ListEditor ile aynı sözleşme: her operasyon listenin tamamının
// derin kopyasını onChange ile iletir.
type ItemsEditor struct {
	fields    []Field
	items     []models.Document
	onChange  func([]models.Document)
	onRemoved func() // Silme sonrası opsiyonel hook (ör. anında kaydetme)
}

// ItemsOption, NewItemsEditor için opsiyonel ayar.
type ItemsOption func(*ItemsEditor)

// WithRemoveHook, her Remove'dan SONRA (onChange iletildikten sonra)
// çağrılacak hook'u bağlar. Silinen elemanın görselinin diskte yetim
// kalmaması için silmenin anında commit edilmesi istenen sayfalarda
// kullanılır; bağlanmazsa silme diğer operasyonlar gibi davranır.
func WithRemoveHook(fn func()) ItemsOption {
	return func(e *ItemsEditor) { e.onRemoved = fn }
}

// NewItemsEditor, constructor. Verilen elemanlar derin kopyalanır.
func NewItemsEditor(fields []Field, items []models.Document, onChange func([]models.Document), opts ...ItemsOption) *ItemsEditor {
	e := &ItemsEditor{
		fields:   fields,
		items:    cloneItems(items),
		onChange: onChange,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Fields, alan tanımlarını döner (UI form üretimi için).
func (e *ItemsEditor) Fields() []Field {
	out := make([]Field, len(e.fields))
	copy(out, e.fields)
	return out
}

// Items, güncel listenin derin kopyasını döner.
func (e *ItemsEditor) Items() []models.Document {
	return cloneItems(e.items)
}

// Add, deklare edilen her alanı boş string ile başlatılmış yeni bir
// eleman ekler. Eksik anahtar bırakılmaz — sonraki UpdateField'lar
// her zaman var olan bir alanı günceller.
func (e *ItemsEditor) Add() {
	item := models.Document{}
	for _, f := range e.fields {
		item[f.Key] = ""
	}
	e.items = append(e.items, item)
	e.emit()
}

// Remove, i indeksindeki elemanı siler. Geçersiz indeks no-op.
// onChange iletildikten sonra (bağlıysa) remove hook çağrılır.
func (e *ItemsEditor) Remove(i int) {
	if i < 0 || i >= len(e.items) {
		return
	}
	e.items = append(e.items[:i], e.items[i+1:]...)
	e.emit()

	if e.onRemoved != nil {
		e.onRemoved()
	}
}

// UpdateField, i indeksindeki elemanın key alanını günceller.
// Geçersiz indeks no-op.
func (e *ItemsEditor) UpdateField(i int, key string, value any) {
	if i < 0 || i >= len(e.items) {
		return
	}
	e.items[i][key] = value
	e.emit()
}

// MoveUp, elemanı bir üst sıraya taşır. İlk eleman ve geçersiz indeks no-op.
func (e *ItemsEditor) MoveUp(i int) {
	if i <= 0 || i >= len(e.items) {
		return
	}
	e.items[i-1], e.items[i] = e.items[i], e.items[i-1]
	e.emit()
}

// MoveDown, elemanı bir alt sıraya taşır. Son eleman ve geçersiz indeks no-op.
func (e *ItemsEditor) MoveDown(i int) {
	if i < 0 || i >= len(e.items)-1 {
		return
	}
	e.items[i], e.items[i+1] = e.items[i+1], e.items[i]
	e.emit()
}

func (e *ItemsEditor) emit() {
	if e.onChange == nil {
		return
	}
	e.onChange(e.Items())
}

func cloneItems(items []models.Document) []models.Document {
	out := make([]models.Document, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
