package model_test

import (
	"testing"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestOccasionLabel(t *testing.T) {
	Convey("Given the known occasions", t, func() {
		Convey("Then each formats to its display label", func() {
			So(model.OccasionWork.Label(), ShouldEqual, "Work Meeting")
			So(model.OccasionCasual.Label(), ShouldEqual, "Casual Outing")
			So(model.OccasionDate.Label(), ShouldEqual, "Date Night")
			So(model.OccasionParty.Label(), ShouldEqual, "Party Time")
			So(model.OccasionFormal.Label(), ShouldEqual, "Formal Event")
		})

		Convey("And an unrecognized occasion formats as daily wear", func() {
			So(model.Occasion("brunch").Label(), ShouldEqual, "Daily Wear")
			So(model.Occasion("brunch").Known(), ShouldBeFalse)
		})
	})
}

func TestSlotFor(t *testing.T) {
	Convey("Given every known category", t, func() {
		Convey("Then each maps to exactly one slot", func() {
			seen := map[model.Slot]bool{}
			for _, c := range model.Categories() {
				slot, ok := model.SlotFor(c)
				So(ok, ShouldBeTrue)
				So(seen[slot], ShouldBeFalse)
				seen[slot] = true
			}
			So(len(seen), ShouldEqual, len(model.Slots()))
		})

		Convey("And an unknown category maps to none", func() {
			_, ok := model.SlotFor(model.Category("outerwear"))
			So(ok, ShouldBeFalse)
		})
	})
}

func TestGuidanceFor(t *testing.T) {
	Convey("Given weather guidance lookups", t, func() {
		Convey("When the condition is rainy", func() {
			g := model.GuidanceFor(model.ConditionRainy)

			Convey("Then it recommends an umbrella", func() {
				So(g.Recommendations, ShouldContain, "Umbrella")
				So(g.Avoid, ShouldContain, "Suede")
			})
		})

		Convey("When the condition is unknown", func() {
			g := model.GuidanceFor(model.Condition("foggy"))

			Convey("Then the sunny guidance is used", func() {
				So(g, ShouldResemble, model.GuidanceFor(model.ConditionSunny))
			})
		})

		Convey("When the caller mutates the result", func() {
			g := model.GuidanceFor(model.ConditionSnowy)
			g.Colors[0] = "Neon"

			Convey("Then the table is unaffected", func() {
				So(model.GuidanceFor(model.ConditionSnowy).Colors[0], ShouldEqual, "Warm colors")
			})
		})
	})
}

func TestDescribeWeather(t *testing.T) {
	Convey("Given a sunny day", t, func() {
		So(model.DescribeWeather(model.ConditionSunny, 80), ShouldEqual, "Perfect for light fabrics")
		So(model.DescribeWeather(model.ConditionSunny, 75), ShouldEqual, "Great for layering")
	})

	Convey("Given an unknown condition", t, func() {
		So(model.DescribeWeather(model.Condition("hail"), 40), ShouldEqual, "Check the weather before heading out")
	})
}

func TestPreferences(t *testing.T) {
	Convey("Given nil preferences", t, func() {
		var p *model.Preferences

		So(p.LikesColor("Black"), ShouldBeFalse)
		So(p.PrefersStyle(model.StyleCasual), ShouldBeFalse)
	})

	Convey("Given preferences with colors and styles", t, func() {
		p := &model.Preferences{
			FavoriteColors:  []string{"Navy"},
			PreferredStyles: []model.Style{model.StyleElegant},
		}

		So(p.LikesColor("Navy"), ShouldBeTrue)
		So(p.LikesColor("navy"), ShouldBeFalse)
		So(p.PrefersStyle(model.StyleElegant), ShouldBeTrue)
	})
}

func TestRecommendationFilled(t *testing.T) {
	Convey("Given a recommendation with separates and shoes", t, func() {
		top := &model.WardrobeItem{ID: "t"}
		shoes := &model.WardrobeItem{ID: "s"}
		bottom := &model.WardrobeItem{ID: "b"}
		r := model.Recommendation{Items: map[model.Slot]*model.WardrobeItem{
			model.SlotShoes:  shoes,
			model.SlotTop:    top,
			model.SlotBottom: bottom,
		}}

		Convey("Then filled items come back in selection order", func() {
			So(r.Filled(), ShouldResemble, []*model.WardrobeItem{top, bottom, shoes})
			So(r.Empty(), ShouldBeFalse)
		})
	})

	Convey("Given an empty recommendation", t, func() {
		So(model.Recommendation{}.Empty(), ShouldBeTrue)
	})
}

func TestBranchSlots(t *testing.T) {
	Convey("Given the two branches", t, func() {
		Convey("Then the dress branch never asks for separates", func() {
			So(model.BranchSlots(model.BranchDress), ShouldResemble,
				[]model.Slot{model.SlotDress, model.SlotShoes, model.SlotAccessory, model.SlotPerfume})
		})

		Convey("And the separates branch never asks for a dress", func() {
			So(model.BranchSlots(model.BranchSeparates), ShouldNotContain, model.SlotDress)
			So(model.BranchSlots(model.BranchSeparates)[0], ShouldEqual, model.SlotTop)
		})
	})
}
