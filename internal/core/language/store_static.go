package language

import (
	"context"

	"github.com/taibuivan/langgate/internal/platform/apperr"
)

// StaticRepository serves languages straight from an in-memory [Catalog].
type StaticRepository struct {
	catalog *Catalog
}

func NewStaticRepository(catalog *Catalog) *StaticRepository {
	return &StaticRepository{catalog: catalog}
}

func (repository *StaticRepository) ListLanguages(context context.Context) ([]Entry, error) {
	entries := make([]Entry, 0, repository.catalog.Len())
	for _, l := range repository.catalog.languages {
		entries = append(entries, Entry{Language: l, Translation: repository.catalog.translations[l.Code]})
	}
	return entries, nil
}

func (repository *StaticRepository) GetLanguageByCode(context context.Context, code string) (Entry, error) {
	l, ok := repository.catalog.Lookup(code)
	if !ok {
		return Entry{}, apperr.NotFound("Language")
	}
	return Entry{Language: l, Translation: repository.catalog.translations[code]}, nil
}
