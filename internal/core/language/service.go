package language

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListLanguages(context context.Context) ([]Entry, error) {
	return service.repo.ListLanguages(context)
}

func (service *Service) GetLanguage(context context.Context, code string) (Entry, error) {
	entry, err := service.repo.GetLanguageByCode(context, code)
	if err != nil {
		service.logger.DebugContext(context, "language_lookup_failed", slog.String("code", code))
		return Entry{}, err
	}
	return entry, nil
}
