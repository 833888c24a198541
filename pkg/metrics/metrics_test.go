package metrics

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then its metrics are registered there", func() {
				So(manager, ShouldNotBeNil)
				manager.outfitsConfirmed.Inc()
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeEmpty)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("wardrobe"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithPrometheusRegistry(registry),
			)
			manager.wardrobeItems.Set(3)

			Convey("Then metric names carry the namespace and subsystem", func() {
				n, err := testutil.GatherAndCount(registry, "test_wardrobe_wardrobe_items")
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)
			})
		})

		Convey("When empty options are given", func() {
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(nil),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then the defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "closetmuse")
				So(manager.subsystem, ShouldEqual, "engine")
				So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics", t, func() {
		Convey("When a recommendation is recorded", func() {
			before := testutil.ToFloat64(globalManager.recommendations.WithLabelValues("separates"))
			RecordRecommendation("separates", 55)

			Convey("Then the branch counter increases", func() {
				So(testutil.ToFloat64(globalManager.recommendations.WithLabelValues("separates")), ShouldEqual, before+1)
			})
		})

		Convey("When slots are left unfilled", func() {
			before := testutil.ToFloat64(globalManager.unfilledSlots.WithLabelValues("perfume"))
			RecordUnfilledSlot("perfume")
			RecordUnfilledSlot("perfume")

			Convey("Then each one is counted", func() {
				So(testutil.ToFloat64(globalManager.unfilledSlots.WithLabelValues("perfume")), ShouldEqual, before+2)
			})
		})

		Convey("When outfits are confirmed", func() {
			confirmed := testutil.ToFloat64(globalManager.outfitsConfirmed)
			duplicate := testutil.ToFloat64(globalManager.outfitsDuplicate)
			RecordOutfitConfirmed()
			RecordOutfitDuplicate()

			Convey("Then both counters move", func() {
				So(testutil.ToFloat64(globalManager.outfitsConfirmed), ShouldEqual, confirmed+1)
				So(testutil.ToFloat64(globalManager.outfitsDuplicate), ShouldEqual, duplicate+1)
			})
		})

		Convey("When gauges are updated", func() {
			UpdateWardrobeItems(12)
			UpdateWeatherBreakerState("openweather", 2)
			UpdateSystemMemoryUsage(4096)
			UpdateSystemGoroutineCount(7)

			Convey("Then they hold the last value", func() {
				So(testutil.ToFloat64(globalManager.systemMemoryUsage), ShouldEqual, 4096)
				So(testutil.ToFloat64(globalManager.systemGoroutineCount), ShouldEqual, 7)
				So(testutil.ToFloat64(globalManager.wardrobeItems), ShouldEqual, 12)
				So(testutil.ToFloat64(globalManager.weatherBreakerState.WithLabelValues("openweather")), ShouldEqual, 2)
			})
		})

		Convey("When weather lookups are recorded", func() {
			before := testutil.ToFloat64(globalManager.weatherRequests.WithLabelValues("static", "ok"))
			RecordWeatherRequest("static", "ok")

			Convey("Then the provider counter increases", func() {
				So(testutil.ToFloat64(globalManager.weatherRequests.WithLabelValues("static", "ok")), ShouldEqual, before+1)
			})
		})

		Convey("When latency and error metrics are recorded", func() {
			Convey("Then nothing panics", func() {
				So(func() {
					RecordRecommendationLatency(0.4)
					RecordRepositoryQueryLatency(0.1)
					RecordRepositoryUpdateLatency(0.2)
					RecordWeatherLatency(120)
					RecordHTTPRequest("/recommendations", "POST", "200")
					RecordHTTPRequestDuration("/recommendations", "POST", "200", 3)
					RecordErrorByComponent("weather", "upstream")
					RecordErrorByEndpoint("/outfits", "conflict")
					RecordSystemGCPauseTime(0.3)
				}, ShouldNotPanic)
			})
		})

		Convey("Then the registry is exposed", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given concurrent recorders", t, func() {
		before := testutil.ToFloat64(globalManager.recommendations.WithLabelValues("dress"))
		const goroutines = 10
		const perGoroutine = 100

		var wg sync.WaitGroup
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < perGoroutine; j++ {
					RecordRecommendation("dress", 75)
				}
			}()
		}
		wg.Wait()

		Convey("Then no increments are lost", func() {
			So(testutil.ToFloat64(globalManager.recommendations.WithLabelValues("dress")), ShouldEqual, before+goroutines*perGoroutine)
		})
	})
}
