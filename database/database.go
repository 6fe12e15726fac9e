// Package database, SQLite bağlantısını ve embedded migration sistemini yönetir.
//
// SQLite seçimi bilinçlidir: CMS tek makinede çalışan, tek yazarlı bir
// içerik backend'idir. Ayrı bir DB süreci yönetmek yerine içerik tek bir
// dosyada yaşar — yedeklemek dosyayı kopyalamaktır.
package database

import (
	"database/sql"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver — CGO gerekmez, her platformda çalışır
)

// recoverableErrors, migration sırasında tolere edilen hata pattern'ları.
// Yarım kalmış bir migration tekrar çalıştığında "duplicate column name"
// verir — kolon zaten eklenmiş demektir, güvenle atlanır.
var recoverableErrors = []string{
	"duplicate column name",
}

// DB, veritabanı bağlantısını saran struct.
// *sql.DB zaten bir connection pool'dur ve thread-safe'dir; repository'ler
// Conn'u doğrudan paylaşır.
type DB struct {
	Conn *sql.DB
}

// New, SQLite bağlantısını açar ve bekleyen migration'ları uygular.
//
// dbPath: SQLite dosya yolu (ör: "./data/cms.db"); dizin yoksa oluşturulur.
// migrationsFS: migration SQL dosyaları — embed.FS (EmbeddedMigrations) veya
// testlerde os.DirFS olabilir.
func New(dbPath string, migrationsFS fs.FS) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// foreign_keys: SQLite'ta varsayılan KAPALIDIR, açıkça istenir.
	// journal_mode=WAL: section okumaları upload/replace yazmalarını bloklamaz.
	conn, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{Conn: conn}

	if err := db.runMigrations(migrationsFS); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("[database] connected and migrations applied")
	return db, nil
}

// Close, veritabanı bağlantısını kapatır. main.go `defer db.Close()` yapar.
func (db *DB) Close() error {
	return db.Conn.Close()
}

// runMigrations, migrations dizinindeki SQL dosyalarını isim sırasıyla
// (001_init.sql, 002_*.sql, ...) uygular.
//
// schema_migrations tablosu hangi dosyaların uygulandığını tutar; her
// başlatmada sadece yeni dosyalar çalışır. Tablo yoksa ama sections
// tablosu varsa kurulum migration sisteminden önceye aittir — mevcut
// dosyalar çalıştırılmadan "applied" olarak işaretlenir (bootstrap),
// yoksa DDL mevcut tabloların üzerine dönerdi.
func (db *DB) runMigrations(migrationsFS fs.FS) error {
	if _, err := db.Conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename   TEXT PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	sqlFiles, err := listMigrationFiles(migrationsFS)
	if err != nil {
		return err
	}

	applied, err := db.appliedMigrations()
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		bootstrapped, err := db.bootstrapExisting(sqlFiles)
		if err != nil {
			return err
		}
		if bootstrapped {
			return nil
		}
	}

	for _, file := range sqlFiles {
		if applied[file] {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		if err := db.execStatements(file, string(content)); err != nil {
			return err
		}

		if _, err := db.Conn.Exec(
			"INSERT INTO schema_migrations (filename) VALUES (?)", file,
		); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", file, err)
		}

		log.Printf("[database] migration applied: %s", file)
	}

	return nil
}

// listMigrationFiles, FS'teki .sql dosyalarını isim sırasıyla döner.
func listMigrationFiles(migrationsFS fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(migrationsFS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)
	return files, nil
}

// appliedMigrations, schema_migrations'taki kayıtları set olarak döner.
func (db *DB) appliedMigrations() (map[string]bool, error) {
	rows, err := db.Conn.Query("SELECT filename FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate migration rows: %w", err)
	}

	return applied, nil
}

// bootstrapExisting, migration sisteminden önce kurulmuş bir DB'yi tanır:
// sections tablosu varsa tüm dosyalar uygulanmış sayılır ve kaydedilir.
// True dönerse hiçbir migration çalıştırılmamalıdır.
func (db *DB) bootstrapExisting(sqlFiles []string) (bool, error) {
	var tableCount int
	if err := db.Conn.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='sections'",
	).Scan(&tableCount); err != nil {
		return false, fmt.Errorf("failed to check existing tables: %w", err)
	}

	if tableCount == 0 {
		return false, nil
	}

	for _, file := range sqlFiles {
		if _, err := db.Conn.Exec(
			"INSERT INTO schema_migrations (filename) VALUES (?)", file,
		); err != nil {
			return false, fmt.Errorf("failed to bootstrap migration %s: %w", file, err)
		}
	}

	log.Printf("[database] bootstrapped %d existing migrations", len(sqlFiles))
	return true, nil
}

// execStatements, bir migration dosyasını statement-by-statement çalıştırır.
//
// Neden tek Exec değil? SQLite çoklu statement'ı kabul eder ama her biri
// ayrı autocommit'tir — yarım kalan bir migration'ı kurtarabilmek için her
// statement ayrı çalıştırılır ve recoverable hatalar atlanır.
func (db *DB) execStatements(filename, content string) error {
	for i, stmt := range splitStatements(content) {
		if _, err := db.Conn.Exec(stmt); err != nil {
			if isRecoverable(err) {
				log.Printf("[database] %s: statement %d skipped (recoverable: %v)", filename, i+1, err)
				continue
			}
			return fmt.Errorf("failed to execute migration %s (statement %d): %w", filename, i+1, err)
		}
	}

	return nil
}

func isRecoverable(err error) bool {
	msg := err.Error()
	for _, pattern := range recoverableErrors {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// splitStatements, SQL metnini noktalı virgülden böler; string literal
// içindeki (tek tırnaklı, '' escape'li) noktalı virgüller ayraç sayılmaz.
// DEFAULT değer içeren kolon tanımları ";" barındırabilir — naive Split olmaz.
func splitStatements(sql string) []string {
	var statements []string
	var current strings.Builder
	inString := false

	for i := 0; i < len(sql); i++ {
		ch := sql[i]

		if ch == '\'' {
			if inString && i+1 < len(sql) && sql[i+1] == '\'' {
				current.WriteByte(ch)
				current.WriteByte(sql[i+1])
				i++
				continue
			}
			inString = !inString
		}

		if ch == ';' && !inString {
			if s := strings.TrimSpace(current.String()); s != "" {
				statements = append(statements, s)
			}
			current.Reset()
			continue
		}

		current.WriteByte(ch)
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		statements = append(statements, s)
	}

	return statements
}
