package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/pkg/logger"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/pkg/metrics"
)

// OpenWeather defaults.
const (
	DefaultBaseURL         = "https://api.openweathermap.org/data/2.5/weather"
	DefaultCity            = "New York"
	defaultTimeout         = 5 * time.Second
	defaultBreakerFailures = 3
	defaultBreakerTimeout  = 30 * time.Second
	maxResponseBytes       = 1 << 20
)

// OpenWeatherOption applies a configuration option to the OpenWeather client.
type OpenWeatherOption func(*OpenWeather)

// WithBaseURL points the client at another endpoint.
func WithBaseURL(u string) OpenWeatherOption {
	return func(o *OpenWeather) {
		if u != "" {
			o.baseURL = u
		}
	}
}

// WithCity sets the city to report on.
func WithCity(city string) OpenWeatherOption {
	return func(o *OpenWeather) {
		if city != "" {
			o.city = city
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) OpenWeatherOption {
	return func(o *OpenWeather) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithTimeout bounds each upstream request.
func WithTimeout(d time.Duration) OpenWeatherOption {
	return func(o *OpenWeather) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithBreaker configures the circuit breaker: it opens after failures
// consecutive errors and probes again after timeout.
func WithBreaker(failures int, timeout time.Duration) OpenWeatherOption {
	return func(o *OpenWeather) {
		if failures > 0 {
			o.breakerFailures = uint32(failures)
		}
		if timeout > 0 {
			o.breakerTimeout = timeout
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) OpenWeatherOption {
	return func(o *OpenWeather) {
		if l != nil {
			o.log = l
		}
	}
}

// OpenWeather fetches current conditions from the OpenWeather API in
// imperial units. Calls go through a circuit breaker so a failing upstream
// is skipped quickly.
type OpenWeather struct {
	apiKey          string
	baseURL         string
	city            string
	httpClient      *http.Client
	timeout         time.Duration
	breakerFailures uint32
	breakerTimeout  time.Duration
	log             logger.Logger

	cb *gobreaker.CircuitBreaker[model.WeatherSnapshot]
}

// NewOpenWeather creates a client with configuration options.
func NewOpenWeather(apiKey string, opts ...OpenWeatherOption) (*OpenWeather, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	o := &OpenWeather{
		apiKey:          apiKey,
		baseURL:         DefaultBaseURL,
		city:            DefaultCity,
		httpClient:      http.DefaultClient,
		timeout:         defaultTimeout,
		breakerFailures: defaultBreakerFailures,
		breakerTimeout:  defaultBreakerTimeout,
		log:             logger.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	metrics.UpdateWeatherBreakerState(o.Name(), stateValue(gobreaker.StateClosed))
	o.cb = gobreaker.NewCircuitBreaker[model.WeatherSnapshot](gobreaker.Settings{
		Name:        o.Name(),
		MaxRequests: 1,
		Timeout:     o.breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= o.breakerFailures
		},
		// A caller giving up says nothing about upstream health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			o.log.Warn(context.Background(), "weather circuit breaker state change",
				logger.String("breaker", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
			metrics.UpdateWeatherBreakerState(name, stateValue(to))
		},
	})
	return o, nil
}

// Name implements Provider.
func (o *OpenWeather) Name() string { return "openweather" }

// State returns the circuit breaker state.
func (o *OpenWeather) State() gobreaker.State { return o.cb.State() }

// Current implements Provider.
func (o *OpenWeather) Current(ctx context.Context) (model.WeatherSnapshot, error) {
	start := time.Now()
	s, err := o.cb.Execute(func() (model.WeatherSnapshot, error) {
		return o.fetch(ctx)
	})
	metrics.RecordWeatherLatency(float64(time.Since(start).Microseconds()) / 1000)

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordWeatherRequest(o.Name(), "rejected")
		return model.WeatherSnapshot{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	case err != nil:
		metrics.RecordWeatherRequest(o.Name(), "error")
		return model.WeatherSnapshot{}, err
	}
	metrics.RecordWeatherRequest(o.Name(), "ok")
	return s, nil
}

// currentResponse is the subset of the current weather payload we read.
type currentResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
}

func (o *OpenWeather) fetch(ctx context.Context) (model.WeatherSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("appid", o.apiKey)
	q.Set("units", "imperial")
	q.Set("q", o.city)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("build weather request: %w", err)
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.WeatherSnapshot{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var body currentResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("%w: decode: %w", ErrUpstream, err)
	}
	if len(body.Weather) == 0 {
		return model.WeatherSnapshot{}, fmt.Errorf("%w: no weather entries", ErrUpstream)
	}

	return normalize(model.WeatherSnapshot{
		Temperature: body.Main.Temp,
		Condition:   MapCondition(body.Weather[0].Main),
		Humidity:    body.Main.Humidity,
		Description: capitalize(body.Weather[0].Description),
		Location:    body.Name,
	}), nil
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func stateValue(s gobreaker.State) int {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	}
	return -1
}
