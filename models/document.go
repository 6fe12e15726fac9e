// Package models, CMS'in domain tiplerini barındırır.
//
// Document, sistemin temel veri tipidir: bir section'ın serbest şekilli
// içeriği. Backend şema zorlamaz — her sayfa kendi default şeklini tanımlar
// (bkz. content paketi). Bu esneklik bilinçli bir tasarım kararıdır:
// pazarlama sitesindeki her section farklı alanlara sahiptir ve yeni bir
// section eklemek migration gerektirmemelidir.
package models

import (
	"encoding/json"
	"fmt"
)

// Document, isimlendirilmiş bir section'ın serbest şekilli içeriği.
// Scalar alanlar (string), nested record'lar (Document) ve sıralı
// diziler ([]any) içerebilir. JSON'dan decode edildiğinde değerler
// her zaman string / float64 / bool / map[string]any / []any olur.
type Document map[string]any

// String, verilen alanın string değerini döner.
// Alan yoksa veya string değilse boş string döner — editörler
// null/eksik değeri her zaman boş string olarak görür.
func (d Document) String(key string) string {
	if d == nil {
		return ""
	}
	s, _ := d[key].(string)
	return s
}

// Strings, verilen alandaki scalar string dizisini döner.
// Alan yoksa veya dizi değilse boş (nil) slice döner.
func (d Document) Strings(key string) []string {
	if d == nil {
		return nil
	}
	raw, ok := d[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, _ := v.(string)
		out = append(out, s)
	}
	return out
}

// Items, verilen alandaki structured record dizisini döner.
// Dizi elemanlarından map olmayanlar boş Document olarak döner —
// editörler hiçbir zaman nil item görmez.
func (d Document) Items(key string) []Document {
	if d == nil {
		return nil
	}
	raw, ok := d[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Document, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			out = append(out, Document(m))
		} else {
			out = append(out, Document{})
		}
	}
	return out
}

// Clone, dökümanın deep copy'sini döner.
//
// Neden deep copy?
// Draft izolasyonu bu fonksiyona dayanır: controller'daki "loaded" kopya ile
// editörlerin mutasyona uğrattığı draft aynı map'i paylaşırsa, draft'taki
// her değişiklik loaded kopyayı da bozar ve commit-failure-rollback semantiği
// anlamsızlaşır. Shallow copy nested map/slice'ları paylaşacağı için yetmez.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return Document(cloneMap(d))
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case Document:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		// Scalar'lar (string, float64, bool, nil) value-copy ile güvenli.
		return v
	}
}

// Normalize, dökümanı JSON'dan geçirip canonical tiplere indirger
// (Document → map[string]any, int → float64 vb.).
// Backend'e yazılan ile geri okunan dökümanların DeepEqual ile
// karşılaştırılabilmesi bunu gerektirir.
func (d Document) Normalize() (Document, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize document: %w", err)
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to normalize document: %w", err)
	}
	return out, nil
}
