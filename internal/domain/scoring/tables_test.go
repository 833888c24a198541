package scoring

import (
	"testing"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTablesAreExhaustive(t *testing.T) {
	Convey("Given the scoring tables", t, func() {
		Convey("Then the weather table holds a rule for every condition and category", func() {
			for _, c := range model.Conditions() {
				rules, ok := weatherTable[c]
				So(ok, ShouldBeTrue)
				for _, cat := range model.Categories() {
					rule, ok := rules[cat]
					So(ok, ShouldBeTrue)
					So(rule, ShouldNotBeNil)
				}
			}
		})

		Convey("And the occasion table holds a score for every occasion and style", func() {
			for _, o := range model.Occasions() {
				scores, ok := occasionTable[o]
				So(ok, ShouldBeTrue)
				for _, s := range model.Styles() {
					_, ok := scores[s]
					So(ok, ShouldBeTrue)
				}
			}
		})

		Convey("And no table carries a key outside the known values", func() {
			So(len(weatherTable), ShouldEqual, len(model.Conditions()))
			So(len(occasionTable), ShouldEqual, len(model.Occasions()))
		})
	})
}
