package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/gemstack/inventory-system/internal/core/domain"
	"github.com/gemstack/inventory-system/internal/core/ports"
)

// PriceCache abstracts the latest-price cache (Redis). Get returns ok=false
// on a miss. Cache failures must only bypass the cache, never fail a read.
type PriceCache interface {
	Get(ctx context.Context) (*domain.MetalPrice, bool, error)
	Set(ctx context.Context, price *domain.MetalPrice) error
	Invalidate(ctx context.Context) error
}

type priceService struct {
	repo  ports.PriceRepository
	cache PriceCache
	group singleflight.Group
	log   zerolog.Logger
}

// NewPriceService returns a PriceService implementation. cache may be nil,
// in which case every read goes to the repository.
func NewPriceService(repo ports.PriceRepository, cache PriceCache, log zerolog.Logger) ports.PriceService {
	return &priceService{repo: repo, cache: cache, log: log}
}

// Latest returns the most recent price record. Reads are served from the
// cache when possible; on a miss, concurrent callers are collapsed into a
// single repository load so a cold cache does not stampede the store.
func (s *priceService) Latest(ctx context.Context) (*domain.MetalPrice, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("price cache read failed, falling back to store")
		} else if ok {
			return cached, nil
		}
	}

	v, err, _ := s.group.Do("latest", func() (interface{}, error) {
		price, err := s.repo.FindLatest(ctx)
		if err != nil {
			if errors.Is(err, ports.ErrNoPriceRecorded) {
				return defaultPrice(), nil
			}
			return nil, err
		}
		if s.cache != nil {
			if err := s.cache.Set(ctx, price); err != nil {
				s.log.Warn().Err(err).Msg("failed to populate price cache")
			}
		}
		return price, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.MetalPrice), nil
}

// Update appends a new price record attributed to the acting user and
// invalidates the cached quote.
func (s *priceService) Update(ctx context.Context, input ports.UpdatePricesInput) (*domain.MetalPrice, error) {
	price := &domain.MetalPrice{
		ID:            uuid.NewString(),
		GoldPrice:     input.GoldPrice,
		SilverPrice:   input.SilverPrice,
		PlatinumPrice: input.PlatinumPrice,
		UpdatedAt:     time.Now().UTC(),
		UpdatedBy:     input.UpdatedBy,
	}

	if err := s.repo.Insert(ctx, price); err != nil {
		s.log.Error().Err(err).Msg("failed to insert metal price")
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("failed to invalidate price cache")
		}
	}

	s.log.Info().Str("updated_by", input.UpdatedBy).Msg("metal prices updated")
	return price, nil
}

// defaultPrice is served before any quote has been recorded.
func defaultPrice() *domain.MetalPrice {
	return &domain.MetalPrice{
		ID:        uuid.NewString(),
		UpdatedAt: time.Now().UTC(),
		UpdatedBy: "system",
	}
}
