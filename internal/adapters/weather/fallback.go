package weather

import (
	"context"
	"errors"
	"fmt"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/pkg/logger"
)

// Chain asks each provider in turn and returns the first snapshot.
type Chain struct {
	providers []Provider
	log       logger.Logger
}

// NewChain creates a fallback chain over providers. Nil providers are skipped.
func NewChain(log logger.Logger, providers ...Provider) *Chain {
	if log == nil {
		log = logger.Nop()
	}
	c := &Chain{log: log}
	for _, p := range providers {
		if p != nil {
			c.providers = append(c.providers, p)
		}
	}
	return c
}

// Current implements Provider.
func (c *Chain) Current(ctx context.Context) (model.WeatherSnapshot, error) {
	if len(c.providers) == 0 {
		return model.WeatherSnapshot{}, ErrNoProviders
	}

	var errs []error
	for _, p := range c.providers {
		s, err := p.Current(ctx)
		if err == nil {
			return s, nil
		}
		if ctx.Err() != nil {
			return model.WeatherSnapshot{}, ctx.Err()
		}
		c.log.Warn(ctx, "weather provider failed, trying next",
			logger.String("provider", p.Name()),
			logger.Error(err),
		)
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	return model.WeatherSnapshot{}, fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(errs...))
}

// Name implements Provider.
func (c *Chain) Name() string { return "chain" }
