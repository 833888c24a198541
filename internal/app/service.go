// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/adapters/repository"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/adapters/weather"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/availability"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/dedupe"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/outfit"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/scoring"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/pkg/logger"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/pkg/metrics"
)

// Service implements the recommendation API.
type Service struct {
	mu sync.RWMutex

	// Core components
	wardrobe repository.WardrobeStore
	history  repository.OutfitStore
	weather  weather.Provider
	engine   *outfit.Engine
	deduper  dedupe.Deduper
	pending  *pendingSet

	// Configuration
	weights         scoring.Weights
	cooldown        time.Duration
	dedupeSize      int
	defaultOccasion model.Occasion
	now             func() time.Time

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWardrobeStore sets the wardrobe store.
func WithWardrobeStore(store repository.WardrobeStore) Option {
	return func(s *Service) {
		if store != nil {
			s.wardrobe = store
		}
	}
}

// WithHistoryStore sets the confirmed outfit store.
func WithHistoryStore(store repository.OutfitStore) Option {
	return func(s *Service) {
		if store != nil {
			s.history = store
		}
	}
}

// WithWeatherProvider sets the weather provider.
func WithWeatherProvider(p weather.Provider) Option {
	return func(s *Service) {
		if p != nil {
			s.weather = p
		}
	}
}

// WithWeights sets the scoring weights.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		s.weights = w
	}
}

// WithCooldown sets how long an item rests after being worn.
func WithCooldown(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.cooldown = d
		}
	}
}

// WithDedupeSize bounds the remembered confirmations and recommendations.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithDefaultOccasion sets the occasion used when a request names none.
func WithDefaultOccasion(o model.Occasion) Option {
	return func(s *Service) {
		if o != "" {
			s.defaultOccasion = o
		}
	}
}

// WithClock sets the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		weights:         scoring.DefaultWeights(),
		cooldown:        availability.DefaultCooldown,
		dedupeSize:      dedupe.DefaultMaxSize,
		defaultOccasion: model.OccasionCasual,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the components that were not supplied as options.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	s.logger.Info(ctx, "starting closet muse service...")

	if s.wardrobe == nil {
		s.wardrobe = repository.NewMemoryWardrobe()
	}
	if s.history == nil {
		s.history = repository.NewMemoryHistory()
	}
	if s.weather == nil {
		s.weather = weather.NewStatic(model.WeatherSnapshot{Condition: model.ConditionSunny, Temperature: 72, Humidity: 45})
	}
	s.engine = outfit.New(
		outfit.WithScorer(scoring.NewHeuristicScorer(scoring.WithWeights(s.weights))),
		outfit.WithCooldown(s.cooldown),
	)
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	s.pending = newPendingSet(s.dedupeSize)

	s.started = true
	s.logger.Info(ctx, "closet muse service started",
		logger.String("weather", s.weather.Name()),
		logger.Duration("cooldown", s.cooldown),
		logger.Int("dedupeSize", s.dedupeSize),
		logger.Int("wardrobeItems", s.wardrobe.Count(ctx)),
	)
	return nil
}

// Stop marks the service as stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "closet muse service stopped")
}

// RecommendInput is one recommendation request.
type RecommendInput struct {
	Occasion    model.Occasion
	Preferences *model.Preferences
	// Weather overrides the provider when set.
	Weather *model.WeatherSnapshot
}

// RecommendResult is a recommendation plus the context it was made in.
type RecommendResult struct {
	ID             string
	Recommendation model.Recommendation
	Weather        model.WeatherSnapshot
	CreatedAt      time.Time
}

// Recommend assembles an outfit from the current wardrobe and weather.
func (s *Service) Recommend(ctx context.Context, in RecommendInput) (RecommendResult, error) {
	if !s.isStarted() {
		return RecommendResult{}, ErrNotStarted
	}

	occasion := in.Occasion
	if occasion == "" {
		occasion = s.defaultOccasion
	}
	s.logger.Debug(ctx, "recommend", logger.String("occasion", string(occasion)))

	var snap model.WeatherSnapshot
	if in.Weather != nil {
		snap = *in.Weather
	} else {
		var err error
		if snap, err = s.weather.Current(ctx); err != nil {
			metrics.RecordErrorByComponent("service", "weather")
			s.logger.Error(ctx, "weather lookup failed", logger.Error(err))
			return RecommendResult{}, fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
		}
	}

	asOf := s.now()
	start := time.Now()
	rec, err := s.engine.Recommend(outfit.Request{
		Wardrobe:    s.wardrobe.Snapshot(ctx),
		Weather:     &snap,
		Occasion:    occasion,
		Preferences: in.Preferences,
		AsOf:        asOf,
	})
	metrics.RecordRecommendationLatency(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		metrics.RecordErrorByComponent("service", "invalid_request")
		return RecommendResult{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	res := RecommendResult{
		ID:             uuid.NewString(),
		Recommendation: rec,
		Weather:        snap,
		CreatedAt:      asOf,
	}

	metrics.RecordRecommendation(string(rec.Branch), rec.Confidence)
	for _, slot := range model.BranchSlots(rec.Branch) {
		if rec.Items[slot] == nil {
			metrics.RecordUnfilledSlot(string(slot))
		}
	}

	if !rec.Empty() {
		s.pending.put(res.ID, pendingRecommendation{
			Items:      itemIDs(rec),
			Occasion:   occasion,
			Confidence: rec.Confidence,
			Style:      rec.Style,
			CreatedAt:  asOf,
		})
	}

	s.logger.Info(ctx, "recommendation ready",
		logger.String("id", res.ID),
		logger.String("branch", string(rec.Branch)),
		logger.Int("confidence", rec.Confidence),
		logger.Int("filled", len(rec.Filled())),
	)
	return res, nil
}

// ConfirmInput confirms a recommendation as worn.
type ConfirmInput struct {
	RecommendationID string
	Name             string
	// Date defaults to now.
	Date time.Time
}

// ConfirmOutfit records that the user wore a recommendation. Each
// recommendation can be confirmed once; repeats return ErrAlreadyConfirmed.
func (s *Service) ConfirmOutfit(ctx context.Context, in ConfirmInput) (model.Outfit, error) {
	if !s.isStarted() {
		return model.Outfit{}, ErrNotStarted
	}
	s.logger.Debug(ctx, "confirm outfit", logger.String("recommendationID", in.RecommendationID))

	p, ok := s.pending.get(in.RecommendationID)
	if !ok {
		return model.Outfit{}, fmt.Errorf("%w: %s", ErrRecommendationNotFound, in.RecommendationID)
	}

	if s.deduper.SeenAndRecord(ctx, in.RecommendationID) {
		metrics.RecordOutfitDuplicate()
		s.logger.Debug(ctx, "duplicate confirmation, skipping",
			logger.String("recommendationID", in.RecommendationID),
		)
		return model.Outfit{}, fmt.Errorf("%w: %s", ErrAlreadyConfirmed, in.RecommendationID)
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}

	ids := make([]string, 0, len(p.Items))
	for _, slot := range model.Slots() {
		if id, ok := p.Items[slot]; ok {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		if _, err := s.wardrobe.Get(ctx, id); err != nil {
			s.deduper.Unrecord(ctx, in.RecommendationID)
			metrics.RecordErrorByComponent("service", "record_wear")
			return model.Outfit{}, fmt.Errorf("record wear: %w", err)
		}
	}

	o := model.Outfit{
		ID:               uuid.NewString(),
		RecommendationID: in.RecommendationID,
		Name:             in.Name,
		Date:             date,
		Occasion:         p.Occasion,
		Items:            maps.Clone(p.Items),
		Confidence:       p.Confidence,
		Style:            p.Style,
	}
	if o.Name == "" {
		o.Name = fmt.Sprintf("%s %s", p.Occasion.Label(), date.Format("Jan 2"))
	}
	if err := s.history.Save(ctx, o); err != nil {
		s.deduper.Unrecord(ctx, in.RecommendationID)
		metrics.RecordErrorByComponent("service", "save_outfit")
		s.logger.Error(ctx, "failed to save outfit", logger.String("outfitID", o.ID), logger.Error(err))
		return model.Outfit{}, fmt.Errorf("save outfit: %w", err)
	}

	// The outfit is saved, so the confirmation stands even if an item was
	// deleted in between.
	if err := s.wardrobe.RecordWear(ctx, ids, date); err != nil {
		metrics.RecordErrorByComponent("service", "record_wear")
		s.logger.Warn(ctx, "outfit saved without recording wear",
			logger.String("outfitID", o.ID),
			logger.Error(err),
		)
	}

	metrics.RecordOutfitConfirmed()
	s.logger.Info(ctx, "outfit confirmed",
		logger.String("outfitID", o.ID),
		logger.String("recommendationID", in.RecommendationID),
		logger.Int("items", len(ids)),
	)
	return o, nil
}

// Outfits returns up to limit confirmed outfits, newest first. Zero means all.
func (s *Service) Outfits(ctx context.Context, limit int) ([]model.Outfit, error) {
	if !s.isStarted() {
		return nil, ErrNotStarted
	}
	return s.history.List(ctx, limit)
}

// Wardrobe returns every wardrobe item.
func (s *Service) Wardrobe(ctx context.Context) ([]model.WardrobeItem, error) {
	if !s.isStarted() {
		return nil, ErrNotStarted
	}
	return s.wardrobe.Snapshot(ctx), nil
}

// PutItem inserts or replaces a wardrobe item. Items without an id get one.
// It reports whether the item is new.
func (s *Service) PutItem(ctx context.Context, it model.WardrobeItem) (model.WardrobeItem, bool, error) {
	if !s.isStarted() {
		return model.WardrobeItem{}, false, ErrNotStarted
	}
	if !it.Category.Known() || !it.Style.Known() {
		return model.WardrobeItem{}, false, fmt.Errorf("%w: unknown category %q or style %q", ErrInvalidItem, it.Category, it.Style)
	}
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	created, err := s.wardrobe.Put(ctx, it)
	if errors.Is(err, repository.ErrInvalidItem) {
		return model.WardrobeItem{}, false, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}
	if err != nil {
		return model.WardrobeItem{}, false, err
	}
	s.logger.Debug(ctx, "wardrobe item stored", logger.String("itemID", it.ID), logger.Bool("created", created))
	return it, created, nil
}

// DeleteItem removes a wardrobe item.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if !s.isStarted() {
		return ErrNotStarted
	}
	return s.wardrobe.Delete(ctx, id)
}

// Weather returns the current weather and the guidance for it.
func (s *Service) Weather(ctx context.Context) (model.WeatherSnapshot, model.WeatherGuidance, error) {
	if !s.isStarted() {
		return model.WeatherSnapshot{}, model.WeatherGuidance{}, ErrNotStarted
	}
	snap, err := s.weather.Current(ctx)
	if err != nil {
		return model.WeatherSnapshot{}, model.WeatherGuidance{}, fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
	}
	return snap, model.GuidanceFor(snap.Condition), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"cooldownHours":   s.cooldown.Hours(),
		"dedupeSize":      s.dedupeSize,
		"defaultOccasion": string(s.defaultOccasion),
	}
	if s.started {
		ctx := context.Background()
		stats["wardrobeItems"] = s.wardrobe.Count(ctx)
		stats["pendingRecommendations"] = s.pending.len()
		stats["confirmedRecommendations"] = s.deduper.Size()
		stats["weatherProvider"] = s.weather.Name()
		if outfits, err := s.history.List(ctx, 0); err == nil {
			stats["outfits"] = len(outfits)
		}
	}
	return stats
}

func (s *Service) isStarted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

func itemIDs(rec model.Recommendation) map[model.Slot]string {
	ids := make(map[model.Slot]string, len(rec.Items))
	for slot, it := range rec.Items {
		if it != nil {
			ids[slot] = it.ID
		}
	}
	return ids
}
