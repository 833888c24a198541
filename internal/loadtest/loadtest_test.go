package loadtest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/adapters/http/api"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/adapters/repository"
	service "github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/app"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	svc := service.New(service.WithLogger(logger.Nop()))
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)

	mux := http.NewServeMux()
	api.NewServer(svc, svc, repository.DefaultMaxOutfits).Register(ctx, mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.Items = 24
	cfg.Requests = 30
	cfg.Confirmers = 3
	cfg.Workers = 4
	cfg.Seed = 7
	return cfg
}

func TestRun(t *testing.T) {
	Convey("Given a running server", t, func() {
		srv := newTestServer(t)
		cfg := testConfig(srv.URL)
		cfg.OutputFile = filepath.Join(t.TempDir(), "reports", "run.json")

		Convey("When the load test runs", func() {
			report, err := Run(context.Background(), cfg, logger.Nop())

			Convey("Then every invariant holds", func() {
				So(err, ShouldBeNil)
				So(report.Violations, ShouldBeEmpty)
				So(report.ItemsSeeded, ShouldEqual, 24)
				So(report.Recommendations, ShouldEqual, 30)
				So(report.RecommendFailed, ShouldEqual, 0)
				So(report.ConfirmFailed, ShouldEqual, 0)
			})

			Convey("And each non-empty recommendation is confirmed exactly once", func() {
				So(report.Confirmed, ShouldEqual, report.Recommendations-report.EmptyRecommendations)
				So(report.Duplicates, ShouldEqual, report.Confirmed*(cfg.Confirmers-1))
				So(report.OutfitsListed, ShouldEqual, report.Confirmed)
			})

			Convey("And the report is written to disk", func() {
				data, err := os.ReadFile(cfg.OutputFile)
				So(err, ShouldBeNil)
				var saved Report
				So(json.Unmarshal(data, &saved), ShouldBeNil)
				So(saved.Recommendations, ShouldEqual, 30)
			})
		})
	})

	Convey("Given an unhealthy server", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		Convey("Then the run stops before sending load", func() {
			report, err := Run(context.Background(), testConfig(srv.URL), nil)
			So(errors.Is(err, ErrUnhealthy), ShouldBeTrue)
			So(report.Recommendations, ShouldEqual, 0)
		})
	})

	Convey("Given an invalid config", t, func() {
		cfg := testConfig("http://localhost:0")
		cfg.Requests = 0

		Convey("Then Run refuses it", func() {
			_, err := Run(context.Background(), cfg, nil)
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
		})
	})
}

func TestGenerator(t *testing.T) {
	Convey("Given two generators with the same seed", t, func() {
		a, b := newGenerator(42), newGenerator(42)

		Convey("Then they produce the same requests", func() {
			So(a.requests(20), ShouldResemble, b.requests(20))
		})

		Convey("And items cover every category", func() {
			items := a.items(12)
			seen := map[model.Category]int{}
			for _, it := range items {
				seen[it.Category]++
				So(it.Style.Known(), ShouldBeTrue)
				So(it.ID, ShouldStartWith, "lt-")
			}
			for _, c := range model.Categories() {
				So(seen[c], ShouldEqual, 2)
			}
		})
	})
}

func TestCheckRecommendation(t *testing.T) {
	top := &model.WardrobeItem{ID: "t1", Category: model.CategoryTop}
	dress := &model.WardrobeItem{ID: "d1", Category: model.CategoryDress}

	Convey("Given a consistent recommendation", t, func() {
		rec := recommendation{
			ID:         "r1",
			Items:      map[model.Slot]*model.WardrobeItem{model.SlotTop: top},
			Confidence: 30,
			Reasoning:  []string{"Chose a top"},
			Style:      "Casual Chic",
			Branch:     model.BranchSeparates,
		}

		Convey("Then no violation is reported", func() {
			So(checkRecommendation(rec), ShouldBeEmpty)
		})

		Convey("When it claims to be empty", func() {
			rec.Empty = true
			So(checkRecommendation(rec), ShouldHaveLength, 1)
		})

		Convey("When confidence is out of range", func() {
			rec.Confidence = 99
			So(checkRecommendation(rec), ShouldHaveLength, 1)
		})

		Convey("When a dress fills a separates slot", func() {
			rec.Items[model.SlotDress] = dress
			rec.Reasoning = append(rec.Reasoning, "Selected a dress")
			So(checkRecommendation(rec), ShouldHaveLength, 1)
		})

		Convey("When an item sits in the wrong slot", func() {
			rec.Items = map[model.Slot]*model.WardrobeItem{model.SlotBottom: top}
			So(checkRecommendation(rec), ShouldHaveLength, 1)
		})
	})

	Convey("Given an empty recommendation", t, func() {
		rec := recommendation{ID: "r2", Empty: true, Style: "Casual", Branch: model.BranchDress}

		Convey("Then it is consistent", func() {
			So(checkRecommendation(rec), ShouldBeEmpty)
		})
	})

	Convey("Given listed outfits", t, func() {
		listed := []model.Outfit{
			{ID: "o1", RecommendationID: "r1", Items: map[model.Slot]string{model.SlotTop: "t1"}},
			{ID: "o2", RecommendationID: "r9", Items: map[model.Slot]string{}},
		}

		Convey("Then foreign and empty outfits are reported", func() {
			So(checkOutfits(listed, map[string]bool{"r1": true}), ShouldHaveLength, 2)
		})
	})
}
