// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir (string taşıyan struct'lar).
// errors.New() ile sabit error değişkenleri tanımlarız.
// Böylece error karşılaştırması string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
//
// Bu, typo'ya açık string karşılaştırmasından çok daha güvenlidir.
package pkg

import (
	"errors"
	"fmt"
)

// Domain-level error'lar.
// Handler katmanı bu error'ları HTTP status code'larına map'ler.
// Service katmanı bunları döner, handler yakalar.
//
// ErrTimeout gateway tarafında network timeout sınıflandırması için de
// kullanılır — editor katmanı "timeout" ile "server hatası" mesajlarını
// ayrı göstermek için errors.Is(err, ErrTimeout) kontrolü yapar.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
	ErrTimeout       = errors.New("request timed out")
)

// StatusError, backend'in döndüğü hata yanıtını taşır.
// Gateway client 4xx/5xx yanıt aldığında response envelope'undaki error
// mesajını bu tip ile yukarı taşır — editor katmanı server'ın kendi
// mesajını kullanıcıya gösterebilir.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// Is, errors.Is(err, pkg.ErrNotFound) gibi sentinel karşılaştırmalarının
// StatusError üzerinden de çalışmasını sağlar (404 → ErrNotFound).
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == 404
	case ErrBadRequest:
		return e.Status >= 400 && e.Status < 500
	case ErrInternal:
		return e.Status >= 500
	}
	return false
}
