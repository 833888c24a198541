// Package loadtest drives a running closet muse server over HTTP: it seeds a
// wardrobe, requests recommendations concurrently, races confirmations of
// each one and checks the answers against the engine's invariants.
package loadtest

import (
	"runtime"
	"time"
)

// Defaults.
const (
	DefaultBaseURL    = "http://localhost:9080"
	DefaultItems      = 60
	DefaultRequests   = 200
	DefaultConfirmers = 4
	DefaultTimeout    = 10 * time.Second
	workerMultiplier  = 2
)

// Config holds the settings of one run.
type Config struct {
	BaseURL string
	// Items is the number of wardrobe items seeded before the run.
	Items int
	// Requests is the number of recommendations requested.
	Requests int
	// Confirmers is the number of concurrent confirmations raced per
	// recommendation. Exactly one must win.
	Confirmers int
	Workers    int
	Timeout    time.Duration
	// Seed makes generated wardrobes and requests reproducible.
	Seed uint64
	// OutputFile receives the JSON report when set.
	OutputFile string
	Verbose    bool
}

// DefaultConfig returns a Config for a local server.
func DefaultConfig() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		Items:      DefaultItems,
		Requests:   DefaultRequests,
		Confirmers: DefaultConfirmers,
		Workers:    runtime.NumCPU() * workerMultiplier,
		Timeout:    DefaultTimeout,
	}
}

func (c Config) validate() error {
	switch {
	case c.BaseURL == "":
		return ErrInvalidConfig
	case c.Items < 0 || c.Requests < 1 || c.Confirmers < 1 || c.Workers < 1:
		return ErrInvalidConfig
	}
	return nil
}

// Report summarizes a run.
type Report struct {
	ItemsSeeded          int           `json:"items_seeded"`
	Recommendations      int           `json:"recommendations"`
	RecommendFailed      int           `json:"recommend_failed"`
	EmptyRecommendations int           `json:"empty_recommendations"`
	Confirmed            int           `json:"confirmed"`
	Duplicates           int           `json:"duplicates"`
	ConfirmFailed        int           `json:"confirm_failed"`
	OutfitsListed        int           `json:"outfits_listed"`
	Violations           []string      `json:"violations"`
	StartTime            time.Time     `json:"start_time"`
	EndTime              time.Time     `json:"end_time"`
	Duration             time.Duration `json:"duration"`
}

// RequestsPerSecond is the rate of recommendation and confirmation calls.
func (r Report) RequestsPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	calls := r.Recommendations + r.RecommendFailed + r.Confirmed + r.Duplicates + r.ConfirmFailed
	return float64(calls) / r.Duration.Seconds()
}
