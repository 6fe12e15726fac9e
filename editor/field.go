package editor

// FieldEditor, tek bir scalar string alanın inline düzenleme state machine'i.
//
// İki durum vardır: display ve edit. Edit moduna geçince buffer dışarıdan
// gelen güncel değer ile tohumlanır. Edit modundayken her Input çağrısı
// değeri ANINDA onChange callback'i ile sahibine (draft'a) iletir — alan
// seviyesinde ayrı bir "onayla" adımı yoktur, alan edit moduna girdiği
// andan itibaren draft'a canlı senkrondur. Kalıcılık bu bileşenin işi
// değildir; kaydetme section seviyesinde olur (bkz. Controller).
type FieldEditor struct {
	value       string // Dışarıdan gelen güncel değer (draft'taki hali)
	buffer      string // Edit buffer
	editing     bool
	multiline   bool
	placeholder string
	onChange    func(string)
}

// FieldOption, NewFieldEditor için opsiyonel ayar.
type FieldOption func(*FieldEditor)

// WithMultiline, alanı çok satırlı yapar. Çok satırlı alanlar edit moduna
// girerken buffer'ın tamamı seçili gelir (bkz. SelectAllOnFocus).
func WithMultiline() FieldOption {
	return func(e *FieldEditor) { e.multiline = true }
}

// WithPlaceholder, boş değer için gösterilecek metni değiştirir.
func WithPlaceholder(placeholder string) FieldOption {
	return func(e *FieldEditor) { e.placeholder = placeholder }
}

// NewFieldEditor, constructor.
// onChange nil olabilir — alan salt görüntüleme modunda çalışır.
func NewFieldEditor(value string, onChange func(string), opts ...FieldOption) *FieldEditor {
	e := &FieldEditor{
		value:       value,
		buffer:      value,
		placeholder: "Click to edit...",
		onChange:    onChange,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Activate, edit moduna geçirir; buffer güncel değere tohumlanır.
// Zaten edit modundaysa no-op.
func (e *FieldEditor) Activate() {
	if e.editing {
		return
	}
	e.editing = true
	e.buffer = e.value
}

// SelectAllOnFocus, edit moduna girerken buffer'ın tamamının seçili
// gelip gelmeyeceğini döner. Sadece çok satırlı alanlarda true.
func (e *FieldEditor) SelectAllOnFocus() bool {
	return e.multiline
}

// Input, kullanıcının her tuş vuruşunda çağrılır: buffer'ı günceller ve
// yeni değeri senkron olarak draft'a iletir. Debounce/batch YOKTUR —
// tuş vuruşu sırası draft'a aynı sırayla yansır.
// Edit modunda değilken no-op.
func (e *FieldEditor) Input(text string) {
	if !e.editing {
		return
	}
	e.buffer = text
	if e.onChange != nil {
		e.onChange(text)
	}
}

// CancelKey (Escape), buffer'ı son dış değere geri alır ve edit modundan
// çıkar. Başka propagation yapılmaz — Input'un o ana kadar draft'a
// ilettiği değer draft'ta kalır, geri alma sadece buffer'a uygulanır.
func (e *FieldEditor) CancelKey() {
	if !e.editing {
		return
	}
	e.buffer = e.value
	e.editing = false
}

// Blur, edit modundan çıkar; buffer'a dokunmaz.
// Değer zaten Input ile draft'a iletilmiştir — ayrıca bir şey yapılmaz.
func (e *FieldEditor) Blur() {
	e.editing = false
}

// SyncValue, dış değer değiştiğinde çağrılır (section load, commit sonrası
// canonical değer, başka bir editörün aynı alanı değiştirmesi).
// Edit modunda DEĞİLKEN buffer yeni değere tohumlanır; edit modundayken
// buffer korunur — kullanıcının yazmakta olduğu metin kaybolmaz.
func (e *FieldEditor) SyncValue(value string) {
	e.value = value
	if !e.editing {
		e.buffer = value
	}
}

// Editing, edit modunda olup olmadığını döner.
func (e *FieldEditor) Editing() bool {
	return e.editing
}

// Buffer, edit buffer'ının güncel içeriğini döner.
func (e *FieldEditor) Buffer() string {
	return e.buffer
}

// Display, display modunda gösterilecek metni döner:
// değer boşsa placeholder, değilse değerin kendisi.
func (e *FieldEditor) Display() string {
	if e.value == "" {
		return e.placeholder
	}
	return e.value
}
