package settings

import (
	"context"
	"errors"

	"github.com/Kibe27/flightsasa/internal/repository"
	"github.com/Kibe27/flightsasa/pkg/logger"
)

// SettingsUseCase exposes the operator-controlled pricing dial. The level scales every
// generated fare marketplace-wide, so reads are cached and writes invalidate.
type SettingsUseCase interface {
	CurrentPricingLevel(ctx context.Context) (int, error)
	UpdatePricingLevel(ctx context.Context, level int) error
}

type Cache interface {
	GetPricingLevel(ctx context.Context) (int, error)
	SetPricingLevel(ctx context.Context, level int) error
	InvalidatePricingLevel(ctx context.Context) error
}

type SettingsService struct {
	repo         repository.SettingsRepository
	cache        Cache
	defaultLevel int
	log          logger.Logger
}

func NewSettingsService(repo repository.SettingsRepository, cache Cache, defaultLevel int, log logger.Logger) *SettingsService {
	return &SettingsService{repo: repo, cache: cache, defaultLevel: defaultLevel, log: log}
}

// CurrentPricingLevel resolves cache, then the settings row, then the configured
// default. A missing or unreadable settings record is not an error; the marketplace
// falls back to the default level.
func (s *SettingsService) CurrentPricingLevel(ctx context.Context) (int, error) {
	if s.cache != nil {
		if level, err := s.cache.GetPricingLevel(ctx); err == nil && level >= 1 {
			return level, nil
		}
	}

	level, err := s.repo.GetPricingLevel(ctx)
	if err != nil || level < 1 || level > 10 {
		if err != nil && s.log != nil {
			s.log.Warn("pricing level unavailable, using default", "default", s.defaultLevel, "error", err)
		}
		return s.defaultLevel, nil
	}

	if s.cache != nil {
		_ = s.cache.SetPricingLevel(ctx, level)
	}
	return level, nil
}

func (s *SettingsService) UpdatePricingLevel(ctx context.Context, level int) error {
	if level < 1 || level > 10 {
		return errors.New("pricing level must be between 1 and 10")
	}
	if err := s.repo.UpdatePricingLevel(ctx, level); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidatePricingLevel(ctx)
	}
	if s.log != nil {
		s.log.Info("pricing level updated", "level", level)
	}
	return nil
}

var _ SettingsUseCase = (*SettingsService)(nil)
