package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	service "github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/app"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/adapters/repository"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/adapters/weather"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

var morning = time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type downProvider struct{}

func (downProvider) Current(context.Context) (model.WeatherSnapshot, error) {
	return model.WeatherSnapshot{}, weather.ErrUpstream
}

func (downProvider) Name() string { return "down" }

func wardrobe() []model.WardrobeItem {
	return []model.WardrobeItem{
		{ID: "t1", Name: "White Tee", Category: model.CategoryTop, Color: "White", Style: model.StyleCasual, Favorite: true},
		{ID: "t2", Name: "Striped Shirt", Category: model.CategoryTop, Color: "Navy", Style: model.StyleCasual},
		{ID: "b1", Name: "Denim Jeans", Category: model.CategoryBottom, Color: "Denim Blue", Style: model.StyleCasual},
		{ID: "s1", Name: "Canvas Sneakers", Category: model.CategoryShoes, Color: "White", Style: model.StyleCasual},
	}
}

func newService(c *clock, opts ...service.Option) (*service.Service, *repository.MemoryWardrobe) {
	store := repository.NewMemoryWardrobe(repository.WithItems(wardrobe()))
	base := []service.Option{
		service.WithWardrobeStore(store),
		service.WithWeatherProvider(weather.NewStatic(model.WeatherSnapshot{Condition: model.ConditionCloudy, Temperature: 62})),
		service.WithClock(c.Now),
		service.WithLogger(logger.Nop()),
	}
	svc := service.New(append(base, opts...)...)
	So(svc.Start(context.Background()), ShouldBeNil)
	return svc, store
}

// flakyHistory fails the first Save and stores every later one.
type flakyHistory struct {
	*repository.MemoryHistory
	failed bool
}

func (h *flakyHistory) Save(ctx context.Context, o model.Outfit) error {
	if !h.failed {
		h.failed = true
		return errors.New("disk full")
	}
	return h.MemoryHistory.Save(ctx, o)
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()

		Convey("When it has not been started", func() {
			_, err := svc.Recommend(context.Background(), service.RecommendInput{})

			Convey("Then operations are refused", func() {
				So(err, ShouldEqual, service.ErrNotStarted)
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})

		Convey("When it is started with defaults", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			So(svc.Start(context.Background()), ShouldBeNil)
			defer svc.Stop()

			Convey("Then it reports itself as started", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["wardrobeItems"], ShouldEqual, 0)
				So(stats["weatherProvider"], ShouldEqual, "static")
			})
		})

		Convey("When it is stopped", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			svc.Stop()
			svc.Stop()

			Convey("Then it reports itself as stopped", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_Recommend(t *testing.T) {
	Convey("Given a started service with a small wardrobe", t, func() {
		c := &clock{now: morning}
		svc, _ := newService(c)
		defer svc.Stop()
		ctx := context.Background()

		Convey("When a recommendation is requested without an occasion", func() {
			res, err := svc.Recommend(ctx, service.RecommendInput{})

			Convey("Then the default occasion and provider weather are used", func() {
				So(err, ShouldBeNil)
				So(res.ID, ShouldNotBeEmpty)
				So(res.CreatedAt, ShouldEqual, morning)
				So(res.Weather.Condition, ShouldEqual, model.ConditionCloudy)
				So(res.Recommendation.Occasion, ShouldEqual, "Casual Outing")
				So(res.Recommendation.Items[model.SlotTop].ID, ShouldEqual, "t1")
				So(res.Recommendation.Items[model.SlotBottom].ID, ShouldEqual, "b1")
				So(res.Recommendation.Items[model.SlotShoes].ID, ShouldEqual, "s1")
			})
		})

		Convey("When weather is supplied inline", func() {
			res, err := svc.Recommend(ctx, service.RecommendInput{
				Occasion: model.OccasionWork,
				Weather:  &model.WeatherSnapshot{Condition: model.ConditionSunny, Temperature: 85},
			})

			Convey("Then the provider is bypassed", func() {
				So(err, ShouldBeNil)
				So(res.Weather.Condition, ShouldEqual, model.ConditionSunny)
				So(res.Recommendation.Confidence, ShouldEqual, 70)
			})
		})

		Convey("When preferences favor another top", func() {
			res, err := svc.Recommend(ctx, service.RecommendInput{
				Preferences: &model.Preferences{FavoriteColors: []string{"Navy"}},
			})

			Convey("Then the preferred top wins", func() {
				So(err, ShouldBeNil)
				So(res.Recommendation.Items[model.SlotTop].ID, ShouldEqual, "t2")
			})
		})

		Convey("When the inline weather is malformed", func() {
			_, err := svc.Recommend(ctx, service.RecommendInput{
				Weather: &model.WeatherSnapshot{Condition: model.ConditionSunny, Temperature: nan()},
			})

			Convey("Then the request is rejected", func() {
				So(errors.Is(err, service.ErrInvalidRequest), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service whose weather provider is down", t, func() {
		svc, _ := newService(&clock{now: morning}, service.WithWeatherProvider(downProvider{}))
		defer svc.Stop()

		_, err := svc.Recommend(context.Background(), service.RecommendInput{})

		Convey("Then the recommendation fails with a weather error", func() {
			So(errors.Is(err, service.ErrWeatherUnavailable), ShouldBeTrue)
			So(errors.Is(err, weather.ErrUpstream), ShouldBeTrue)
		})

		Convey("And the weather endpoint fails the same way", func() {
			_, _, err := svc.Weather(context.Background())
			So(errors.Is(err, service.ErrWeatherUnavailable), ShouldBeTrue)
		})
	})
}

func TestService_ConfirmOutfit(t *testing.T) {
	Convey("Given a recommendation", t, func() {
		c := &clock{now: morning}
		svc, store := newService(c)
		defer svc.Stop()
		ctx := context.Background()

		res, err := svc.Recommend(ctx, service.RecommendInput{Occasion: model.OccasionCasual})
		So(err, ShouldBeNil)

		Convey("When it is confirmed", func() {
			o, err := svc.ConfirmOutfit(ctx, service.ConfirmInput{RecommendationID: res.ID})

			Convey("Then an outfit is saved", func() {
				So(err, ShouldBeNil)
				So(o.ID, ShouldNotBeEmpty)
				So(o.RecommendationID, ShouldEqual, res.ID)
				So(o.Name, ShouldEqual, "Casual Outing May 2")
				So(o.Date, ShouldEqual, morning)
				So(o.Items, ShouldResemble, map[model.Slot]string{
					model.SlotTop:    "t1",
					model.SlotBottom: "b1",
					model.SlotShoes:  "s1",
				})

				outfits, err := svc.Outfits(ctx, 0)
				So(err, ShouldBeNil)
				So(outfits, ShouldHaveLength, 1)
			})

			Convey("And every worn item is updated", func() {
				for _, id := range []string{"t1", "b1", "s1"} {
					it, err := store.Get(ctx, id)
					So(err, ShouldBeNil)
					So(it.TimesWorn, ShouldEqual, 1)
					So(*it.LastWorn, ShouldEqual, morning)
				}
				t2, _ := store.Get(ctx, "t2")
				So(t2.TimesWorn, ShouldEqual, 0)
			})

			Convey("And the worn items rest until the cooldown passes", func() {
				c.Advance(23 * time.Hour)
				next, err := svc.Recommend(ctx, service.RecommendInput{})
				So(err, ShouldBeNil)
				So(next.Recommendation.Items[model.SlotTop].ID, ShouldEqual, "t2")
				So(next.Recommendation.Items[model.SlotBottom], ShouldBeNil)

				c.Advance(time.Hour)
				later, err := svc.Recommend(ctx, service.RecommendInput{})
				So(err, ShouldBeNil)
				So(later.Recommendation.Items[model.SlotBottom].ID, ShouldEqual, "b1")
			})

			Convey("And a second confirmation is rejected", func() {
				_, err := svc.ConfirmOutfit(ctx, service.ConfirmInput{RecommendationID: res.ID})
				So(errors.Is(err, service.ErrAlreadyConfirmed), ShouldBeTrue)

				it, _ := store.Get(ctx, "t1")
				So(it.TimesWorn, ShouldEqual, 1)
			})
		})

		Convey("When it is confirmed with a name and date", func() {
			date := morning.Add(-24 * time.Hour)
			o, err := svc.ConfirmOutfit(ctx, service.ConfirmInput{RecommendationID: res.ID, Name: "Brunch", Date: date})

			Convey("Then they are kept", func() {
				So(err, ShouldBeNil)
				So(o.Name, ShouldEqual, "Brunch")
				So(o.Date, ShouldEqual, date)
			})
		})

		Convey("When an unknown recommendation is confirmed", func() {
			_, err := svc.ConfirmOutfit(ctx, service.ConfirmInput{RecommendationID: "nope"})

			Convey("Then it is not found", func() {
				So(errors.Is(err, service.ErrRecommendationNotFound), ShouldBeTrue)
			})
		})

		Convey("When a recommended item was deleted before confirmation", func() {
			So(svc.DeleteItem(ctx, "s1"), ShouldBeNil)
			_, err := svc.ConfirmOutfit(ctx, service.ConfirmInput{RecommendationID: res.ID})

			Convey("Then nothing is recorded and the confirmation may be retried", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				it, _ := store.Get(ctx, "t1")
				So(it.TimesWorn, ShouldEqual, 0)

				_, _, err := svc.PutItem(ctx, model.WardrobeItem{ID: "s1", Name: "Canvas Sneakers", Category: model.CategoryShoes, Style: model.StyleCasual})
				So(err, ShouldBeNil)
				_, err = svc.ConfirmOutfit(ctx, service.ConfirmInput{RecommendationID: res.ID})
				So(err, ShouldBeNil)
			})
		})
	})

	Convey("Given a history store that fails once", t, func() {
		c := &clock{now: morning}
		svc, store := newService(c, service.WithHistoryStore(&flakyHistory{MemoryHistory: repository.NewMemoryHistory()}))
		defer svc.Stop()
		ctx := context.Background()

		res, err := svc.Recommend(ctx, service.RecommendInput{Occasion: model.OccasionCasual})
		So(err, ShouldBeNil)

		Convey("When the first confirmation cannot be saved", func() {
			_, err := svc.ConfirmOutfit(ctx, service.ConfirmInput{RecommendationID: res.ID})
			So(err, ShouldNotBeNil)

			Convey("Then no wear is recorded", func() {
				it, _ := store.Get(ctx, "t1")
				So(it.TimesWorn, ShouldEqual, 0)
			})

			Convey("And a retry succeeds and records wear once", func() {
				o, err := svc.ConfirmOutfit(ctx, service.ConfirmInput{RecommendationID: res.ID})
				So(err, ShouldBeNil)
				So(o.RecommendationID, ShouldEqual, res.ID)

				it, _ := store.Get(ctx, "t1")
				So(it.TimesWorn, ShouldEqual, 1)

				outfits, err := svc.Outfits(ctx, 0)
				So(err, ShouldBeNil)
				So(outfits, ShouldHaveLength, 1)
			})
		})
	})

	Convey("Given an empty recommendation", t, func() {
		svc := service.New(service.WithLogger(logger.Nop()), service.WithClock((&clock{now: morning}).Now))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()

		res, err := svc.Recommend(context.Background(), service.RecommendInput{})
		So(err, ShouldBeNil)
		So(res.Recommendation.Empty(), ShouldBeTrue)

		Convey("Then it cannot be confirmed", func() {
			_, err := svc.ConfirmOutfit(context.Background(), service.ConfirmInput{RecommendationID: res.ID})
			So(errors.Is(err, service.ErrRecommendationNotFound), ShouldBeTrue)
		})
	})
}

func TestService_Concurrency(t *testing.T) {
	Convey("Given many concurrent confirmations of one recommendation", t, func() {
		svc, store := newService(&clock{now: morning})
		defer svc.Stop()
		ctx := context.Background()

		res, err := svc.Recommend(ctx, service.RecommendInput{})
		So(err, ShouldBeNil)

		const workers = 16
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			confirmed int
			dupes     int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.ConfirmOutfit(ctx, service.ConfirmInput{RecommendationID: res.ID})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					confirmed++
				case errors.Is(err, service.ErrAlreadyConfirmed):
					dupes++
				}
			}()
		}
		wg.Wait()

		Convey("Then exactly one wins", func() {
			So(confirmed, ShouldEqual, 1)
			So(dupes, ShouldEqual, workers-1)
			it, _ := store.Get(ctx, "t1")
			So(it.TimesWorn, ShouldEqual, 1)
		})
	})
}

func TestService_Wardrobe(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc, _ := newService(&clock{now: morning})
		defer svc.Stop()
		ctx := context.Background()

		Convey("When an item without an id is stored", func() {
			it, created, err := svc.PutItem(ctx, model.WardrobeItem{
				Name: "Pearl Earrings", Category: model.CategoryAccessory, Color: "White", Style: model.StyleElegant,
			})

			Convey("Then it gets an id and is listed", func() {
				So(err, ShouldBeNil)
				So(created, ShouldBeTrue)
				So(it.ID, ShouldNotBeEmpty)

				items, err := svc.Wardrobe(ctx)
				So(err, ShouldBeNil)
				So(items, ShouldHaveLength, 5)
				So(items[4].ID, ShouldEqual, it.ID)
			})
		})

		Convey("When an item has an unknown category", func() {
			_, _, err := svc.PutItem(ctx, model.WardrobeItem{Name: "Parka", Category: "outerwear", Style: model.StyleCasual})

			Convey("Then it is rejected", func() {
				So(errors.Is(err, service.ErrInvalidItem), ShouldBeTrue)
			})
		})

		Convey("When an item has no name", func() {
			_, _, err := svc.PutItem(ctx, model.WardrobeItem{Category: model.CategoryTop, Style: model.StyleCasual})

			Convey("Then it is rejected", func() {
				So(errors.Is(err, service.ErrInvalidItem), ShouldBeTrue)
			})
		})

		Convey("When the weather is requested", func() {
			snap, guidance, err := svc.Weather(ctx)

			Convey("Then the guidance matches the condition", func() {
				So(err, ShouldBeNil)
				So(snap.Condition, ShouldEqual, model.ConditionCloudy)
				So(guidance, ShouldResemble, model.GuidanceFor(model.ConditionCloudy))
			})
		})

		Convey("When stats are requested after activity", func() {
			for i := 0; i < 3; i++ {
				_, err := svc.Recommend(ctx, service.RecommendInput{Occasion: model.Occasion(fmt.Sprintf("o%d", i))})
				So(err, ShouldBeNil)
			}
			stats := svc.GetStats()

			Convey("Then they count wardrobe and pending recommendations", func() {
				So(stats["wardrobeItems"], ShouldEqual, 4)
				So(stats["pendingRecommendations"], ShouldEqual, 3)
				So(stats["outfits"], ShouldEqual, 0)
			})
		})
	})
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}
