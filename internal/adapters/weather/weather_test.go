package weather_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/adapters/weather"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

const rainPayload = `{
  "name": "Harare",
  "weather": [{"main": "Drizzle", "description": "LIGHT intensity drizzle"}],
  "main": {"temp": 61.5, "humidity": 82}
}`

func TestMapCondition(t *testing.T) {
	Convey("Given OpenWeather groups", t, func() {
		cases := map[string]model.Condition{
			"Clear":        model.ConditionSunny,
			"Clouds":       model.ConditionCloudy,
			"Haze":         model.ConditionCloudy,
			"Ash":          model.ConditionCloudy,
			"Thunderstorm": model.ConditionRainy,
			"Drizzle":      model.ConditionRainy,
			"Snow":         model.ConditionSnowy,
			"Squall":       model.ConditionWindy,
			"Tornado":      model.ConditionWindy,
			"Aurora":       model.ConditionSunny,
		}

		Convey("Then each maps onto a known condition", func() {
			for main, want := range cases {
				So(weather.MapCondition(main), ShouldEqual, want)
			}
		})
	})
}

func TestParseCondition(t *testing.T) {
	Convey("Given user supplied condition names", t, func() {
		c, err := weather.ParseCondition(" Rainy ")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, model.ConditionRainy)

		_, err = weather.ParseCondition("foggy")
		So(errors.Is(err, weather.ErrUnknownCondition), ShouldBeTrue)
	})
}

func TestOpenWeather_Current(t *testing.T) {
	Convey("Given an OpenWeather endpoint", t, func() {
		var query atomic.Value
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query.Store(r.URL.Query())
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(rainPayload))
		}))
		defer srv.Close()

		client, err := weather.NewOpenWeather("secret", weather.WithBaseURL(srv.URL), weather.WithCity("Harare"))
		So(err, ShouldBeNil)

		Convey("When the current weather is requested", func() {
			s, err := client.Current(context.Background())

			Convey("Then the payload is mapped onto a snapshot", func() {
				So(err, ShouldBeNil)
				So(s.Condition, ShouldEqual, model.ConditionRainy)
				So(s.Temperature, ShouldEqual, 61.5)
				So(s.Humidity, ShouldEqual, 82)
				So(s.Description, ShouldEqual, "Light intensity drizzle")
				So(s.Location, ShouldEqual, "Harare")
			})

			Convey("And the request asks for imperial units", func() {
				So(err, ShouldBeNil)
				q := query.Load().(url.Values)
				So(q["units"], ShouldResemble, []string{"imperial"})
				So(q["appid"], ShouldResemble, []string{"secret"})
				So(q["q"], ShouldResemble, []string{"Harare"})
			})
		})
	})

	Convey("Given a payload without a description", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"weather":[{"main":"Clear"}],"main":{"temp":80,"humidity":20}}`))
		}))
		defer srv.Close()

		client, err := weather.NewOpenWeather("secret", weather.WithBaseURL(srv.URL))
		So(err, ShouldBeNil)
		s, err := client.Current(context.Background())

		Convey("Then the styling description is used", func() {
			So(err, ShouldBeNil)
			So(s.Description, ShouldEqual, "Perfect for light fabrics")
		})
	})

	Convey("Given no api key", t, func() {
		_, err := weather.NewOpenWeather("")
		So(err, ShouldEqual, weather.ErrMissingAPIKey)
	})
}

func TestOpenWeather_Breaker(t *testing.T) {
	Convey("Given an endpoint that keeps failing", t, func() {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer srv.Close()

		client, err := weather.NewOpenWeather("secret",
			weather.WithBaseURL(srv.URL),
			weather.WithBreaker(2, time.Minute),
		)
		So(err, ShouldBeNil)

		Convey("When the failure threshold is reached", func() {
			for i := 0; i < 2; i++ {
				_, err := client.Current(context.Background())
				So(errors.Is(err, weather.ErrUpstream), ShouldBeTrue)
			}
			_, err := client.Current(context.Background())

			Convey("Then the breaker opens and stops calling upstream", func() {
				So(errors.Is(err, weather.ErrUnavailable), ShouldBeTrue)
				So(client.State(), ShouldEqual, gobreaker.StateOpen)
				So(calls.Load(), ShouldEqual, 2)
			})
		})
	})
}

func TestOpenWeather_BreakerIgnoresCancellation(t *testing.T) {
	Convey("Given a healthy endpoint and callers that give up", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(rainPayload))
		}))
		defer srv.Close()

		client, err := weather.NewOpenWeather("secret",
			weather.WithBaseURL(srv.URL),
			weather.WithBreaker(2, time.Minute),
		)
		So(err, ShouldBeNil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("When cancelled calls exceed the failure threshold", func() {
			for i := 0; i < 3; i++ {
				_, err := client.Current(ctx)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			}

			Convey("Then the breaker stays closed and later calls succeed", func() {
				So(client.State(), ShouldEqual, gobreaker.StateClosed)
				snap, err := client.Current(context.Background())
				So(err, ShouldBeNil)
				So(snap.Condition, ShouldEqual, model.ConditionRainy)
			})
		})
	})
}

type failingProvider struct{ err error }

func (f failingProvider) Current(context.Context) (model.WeatherSnapshot, error) {
	return model.WeatherSnapshot{}, f.err
}

func (f failingProvider) Name() string { return "failing" }

func TestChain(t *testing.T) {
	Convey("Given a chain whose first provider fails", t, func() {
		static := weather.NewStatic(model.WeatherSnapshot{Condition: model.ConditionCloudy, Temperature: 60})
		chain := weather.NewChain(nil, failingProvider{err: weather.ErrUpstream}, nil, static)

		Convey("Then the next provider answers", func() {
			s, err := chain.Current(context.Background())
			So(err, ShouldBeNil)
			So(s.Condition, ShouldEqual, model.ConditionCloudy)
			So(s.Description, ShouldEqual, "Ideal for transitional pieces")
		})
	})

	Convey("Given a chain where every provider fails", t, func() {
		chain := weather.NewChain(nil, failingProvider{err: weather.ErrUpstream}, failingProvider{err: errors.New("down")})
		_, err := chain.Current(context.Background())

		Convey("Then the error wraps every failure", func() {
			So(errors.Is(err, weather.ErrUnavailable), ShouldBeTrue)
			So(errors.Is(err, weather.ErrUpstream), ShouldBeTrue)
		})
	})

	Convey("Given an empty chain", t, func() {
		_, err := weather.NewChain(nil).Current(context.Background())
		So(err, ShouldEqual, weather.ErrNoProviders)
	})

	Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		static := weather.NewStatic(model.WeatherSnapshot{Condition: model.ConditionSunny, Temperature: 70})
		_, err := weather.NewChain(nil, static).Current(ctx)
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
	})
}
