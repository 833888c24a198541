package weather

import (
	"context"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/pkg/metrics"
)

// StaticProvider always reports the same snapshot. It backs local runs and
// serves as the last link of a fallback chain.
type StaticProvider struct {
	snapshot model.WeatherSnapshot
}

// NewStatic creates a provider reporting s. A missing description is
// derived from the condition and temperature.
func NewStatic(s model.WeatherSnapshot) *StaticProvider {
	return &StaticProvider{snapshot: normalize(s)}
}

// Current implements Provider.
func (p *StaticProvider) Current(ctx context.Context) (model.WeatherSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.WeatherSnapshot{}, err
	}
	metrics.RecordWeatherRequest(p.Name(), "ok")
	return p.snapshot, nil
}

// Name implements Provider.
func (p *StaticProvider) Name() string { return "static" }
