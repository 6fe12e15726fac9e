package models

import "time"

// Section, backend'de saklanan tek bir section kaydıdır.
// (PageKey, SectionKey) çifti kaydı benzersiz olarak tanımlar.
// Döküman her zaman bütün olarak replace edilir — alan bazlı
// güncelleme yoktur (atomik whole-document upsert).
type Section struct {
	PageKey    string    `json:"pageKey"`
	SectionKey string    `json:"sectionKey"`
	Document   Document  `json:"document"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
