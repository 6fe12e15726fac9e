package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/assana/cms/pkg"
	"github.com/assana/cms/repository"
)

// SeedDefaults, katalogdaki her section için veritabanında kayıt yoksa
// varsayılan dökümanı yazar. Var olan kayıtlara dokunmaz — editörden
// yapılmış değişiklikler yeniden başlatmada korunur. Yazılan section
// sayısını döner.
func SeedDefaults(ctx context.Context, repo repository.SectionRepository) (int, error) {
	seeded := 0
	for pageKey, specs := range Pages {
		for _, spec := range specs {
			_, err := repo.Get(ctx, pageKey, spec.Key)
			if err == nil {
				continue
			}
			if !errors.Is(err, pkg.ErrNotFound) {
				return seeded, fmt.Errorf("seed %s/%s: %w", pageKey, spec.Key, err)
			}
			if _, err := repo.Replace(ctx, pageKey, spec.Key, spec.Default.Clone()); err != nil {
				return seeded, fmt.Errorf("seed %s/%s: %w", pageKey, spec.Key, err)
			}
			seeded++
		}
	}
	return seeded, nil
}
