package shipping

import (
	"context"
	"fmt"
)

// Provider is the slice of Client the service needs; tests swap in fakes.
type Provider interface {
	Provinces(ctx context.Context) ([]Region, error)
	Regencies(ctx context.Context, provinceCode string) ([]Region, error)
	Districts(ctx context.Context, regencyCode string) ([]Region, error)
	Cost(ctx context.Context, q QuoteRequest) ([]CourierQuotes, error)
}

type Service struct {
	provider Provider
	cache    RegionCache
}

// NewService wires the provider with an optional region cache; cache may be
// nil when Redis is not configured.
func NewService(provider Provider, cache RegionCache) *Service {
	return &Service{provider: provider, cache: cache}
}

func (s *Service) Provinces(ctx context.Context) ([]Region, error) {
	return s.cached(ctx, "provinces", func() ([]Region, error) {
		return s.provider.Provinces(ctx)
	})
}

func (s *Service) Regencies(ctx context.Context, provinceCode string) ([]Region, error) {
	return s.cached(ctx, "regencies:"+provinceCode, func() ([]Region, error) {
		return s.provider.Regencies(ctx, provinceCode)
	})
}

func (s *Service) Districts(ctx context.Context, regencyCode string) ([]Region, error) {
	return s.cached(ctx, "districts:"+regencyCode, func() ([]Region, error) {
		return s.provider.Districts(ctx, regencyCode)
	})
}

// Cost is not cached: rates depend on weight and change often.
func (s *Service) Cost(ctx context.Context, q QuoteRequest) ([]CourierQuotes, error) {
	return s.provider.Cost(ctx, q)
}

func (s *Service) cached(ctx context.Context, key string, load func() ([]Region, error)) ([]Region, error) {
	if s.cache != nil {
		if regions, err := s.cache.Get(ctx, key); err == nil {
			return regions, nil
		} else if err != ErrCacheMiss {
			fmt.Printf("warning: region cache read failed for %s: %v\n", key, err)
		}
	}

	regions, err := load()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, regions); err != nil {
			fmt.Printf("warning: region cache write failed for %s: %v\n", key, err)
		}
	}
	return regions, nil
}
