// Package database embed dosyası — sections/assets şemasını kuran
// migration SQL dosyalarını binary'ye gömer.
//
// CMS tek binary olarak deploy edilir; sections ve assets tablolarını
// oluşturan DDL yanında dosya olarak taşınmaz, derleme zamanında
// //go:embed ile binary'nin içine gömülür.
package database

import "embed"

// EmbeddedMigrations, migrations/ dizinindeki şema dosyalarını içerir
// (001_init.sql: sections + assets tabloları ve indeksleri).
// Kullanım: fs.Sub(EmbeddedMigrations, "migrations") ile alt dizine eriş.
//
//go:embed migrations/*.sql
var EmbeddedMigrations embed.FS
