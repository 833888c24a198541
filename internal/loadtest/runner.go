package loadtest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0o750
	filePermission      = 0o600
)

// runner carries the state of one Run.
type runner struct {
	cfg    Config
	client *client
	log    logger.Logger

	mu         sync.Mutex
	violations []string
}

func (r *runner) violate(v ...string) {
	if len(v) == 0 {
		return
	}
	r.mu.Lock()
	r.violations = append(r.violations, v...)
	r.mu.Unlock()
}

// Run executes a complete load test against cfg.BaseURL. The report is
// returned even when verification fails.
func Run(ctx context.Context, cfg Config, log logger.Logger) (Report, error) {
	if err := cfg.validate(); err != nil {
		return Report{}, err
	}
	if log == nil {
		log = logger.Nop()
	}

	r := &runner{cfg: cfg, client: newClient(cfg.BaseURL, cfg.Timeout), log: log}
	report := Report{StartTime: time.Now()}

	log.Info(ctx, "starting load test",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("items", cfg.Items),
		logger.Int("requests", cfg.Requests),
		logger.Int("confirmers", cfg.Confirmers),
		logger.Int("workers", cfg.Workers))

	if err := r.checkHealth(ctx); err != nil {
		return report, err
	}

	gen := newGenerator(cfg.Seed)

	seeded, err := r.seedWardrobe(ctx, gen.items(cfg.Items))
	report.ItemsSeeded = seeded
	if err != nil {
		return report, err
	}

	recs, failed := r.recommend(ctx, gen.requests(cfg.Requests))
	report.RecommendFailed = failed
	for _, rec := range recs {
		report.Recommendations++
		if rec.Empty {
			report.EmptyRecommendations++
		}
	}

	confirmed, dup, confirmFailed := r.confirm(ctx, recs)
	report.Confirmed = len(confirmed)
	report.Duplicates = dup
	report.ConfirmFailed = confirmFailed

	if len(confirmed) > 0 {
		listed, err := r.listOutfits(ctx, len(confirmed))
		if err != nil {
			return report, err
		}
		report.OutfitsListed = len(listed)
		r.violate(checkOutfits(listed, confirmed)...)
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)
	report.Violations = r.violations
	if report.Violations == nil {
		report.Violations = []string{}
	}

	log.Info(ctx, "load test finished",
		logger.Int("recommendations", report.Recommendations),
		logger.Int("confirmed", report.Confirmed),
		logger.Int("duplicates", report.Duplicates),
		logger.Int("violations", len(report.Violations)),
		logger.Duration("duration", report.Duration),
		logger.Float64("requestsPerSecond", report.RequestsPerSecond()))

	if cfg.OutputFile != "" {
		if err := saveReport(cfg.OutputFile, report); err != nil {
			log.Warn(ctx, "failed to save report", logger.Error(err))
		}
	}

	if n := len(report.Violations); n > 0 {
		return report, fmt.Errorf("%w: %d violations, first: %s", ErrVerificationFailed, n, report.Violations[0])
	}
	return report, nil
}

func (r *runner) checkHealth(ctx context.Context) error {
	status, err := r.client.do(ctx, http.MethodGet, "/healthz", nil, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: /healthz returned %d", ErrUnhealthy, status)
	}
	return nil
}

func (r *runner) seedWardrobe(ctx context.Context, items []model.WardrobeItem) (int, error) {
	var seeded, failed atomic.Int64
	forEach(ctx, r.cfg.Workers, len(items), func(ctx context.Context, i int) {
		status, err := r.client.do(ctx, http.MethodPut, "/wardrobe", items[i], nil)
		if err != nil || (status != http.StatusCreated && status != http.StatusOK) {
			failed.Add(1)
			r.warn(ctx, "seed item failed", status, err)
			return
		}
		seeded.Add(1)
	})
	if n := failed.Load(); n > 0 {
		return int(seeded.Load()), fmt.Errorf("%w: %d of %d wardrobe items were not stored", ErrUnexpectedStatus, n, len(items))
	}
	return int(seeded.Load()), ctx.Err()
}

func (r *runner) recommend(ctx context.Context, reqs []recommendPayload) ([]recommendation, int) {
	results := make([]*recommendation, len(reqs))
	var failed atomic.Int64
	forEach(ctx, r.cfg.Workers, len(reqs), func(ctx context.Context, i int) {
		var rec recommendation
		status, err := r.client.do(ctx, http.MethodPost, "/recommendations", reqs[i], &rec)
		if err != nil || status != http.StatusOK {
			failed.Add(1)
			r.warn(ctx, "recommendation failed", status, err)
			return
		}
		r.violate(checkRecommendation(rec)...)
		results[i] = &rec
	})

	out := make([]recommendation, 0, len(reqs))
	for _, rec := range results {
		if rec != nil {
			out = append(out, *rec)
		}
	}
	return out, int(failed.Load())
}

// confirm races cfg.Confirmers confirmations of every non-empty
// recommendation and returns the ids that were confirmed.
func (r *runner) confirm(ctx context.Context, recs []recommendation) (map[string]bool, int, int) {
	var (
		mu        sync.Mutex
		confirmed = make(map[string]bool, len(recs))
		dup       atomic.Int64
		failed    atomic.Int64
	)

	forEach(ctx, r.cfg.Workers, len(recs), func(ctx context.Context, i int) {
		rec := recs[i]
		if rec.Empty {
			return
		}
		body := confirmPayload{RecommendationID: rec.ID, Name: "Load test " + strconv.Itoa(i)}

		var wins atomic.Int64
		var wg sync.WaitGroup
		for range r.cfg.Confirmers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				status, err := r.client.do(ctx, http.MethodPost, "/outfits", body, nil)
				switch {
				case err != nil:
					failed.Add(1)
					r.warn(ctx, "confirmation failed", status, err)
				case status == http.StatusCreated:
					wins.Add(1)
				case status == http.StatusConflict:
					dup.Add(1)
				default:
					failed.Add(1)
					r.warn(ctx, "confirmation failed", status, nil)
				}
			}()
		}
		wg.Wait()

		switch n := wins.Load(); {
		case n == 1:
			mu.Lock()
			confirmed[rec.ID] = true
			mu.Unlock()
		case n > 1:
			r.violate(fmt.Sprintf("recommendation %s confirmed %d times", rec.ID, n))
		}
	})
	return confirmed, int(dup.Load()), int(failed.Load())
}

func (r *runner) listOutfits(ctx context.Context, limit int) ([]model.Outfit, error) {
	var listed []model.Outfit
	status, err := r.client.do(ctx, http.MethodGet, "/outfits?limit="+strconv.Itoa(limit), nil, &listed)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: GET /outfits returned %d", ErrUnexpectedStatus, status)
	}
	return listed, nil
}

func (r *runner) warn(ctx context.Context, msg string, status int, err error) {
	if !r.cfg.Verbose {
		return
	}
	fields := []logger.Field{logger.Int("status", status)}
	if err != nil {
		fields = append(fields, logger.Error(err))
	}
	r.log.Warn(ctx, msg, fields...)
}

// forEach calls fn for every index in [0, n) on at most workers goroutines.
func forEach(ctx context.Context, workers, n int, fn func(ctx context.Context, i int)) {
	indexes := make(chan int, workers*workerMultiplier)
	var wg sync.WaitGroup
	for range min(workers, n) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if ctx.Err() == nil {
					fn(ctx, i)
				}
			}
		}()
	}

feed:
	for i := range n {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()
}

func saveReport(path string, report Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), filePermission)
}
