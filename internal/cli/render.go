package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

const (
	slotColumnWidth  = 11
	labelColumnWidth = 14
)

type palette struct {
	title lipgloss.Style
	label lipgloss.Style
	wide  lipgloss.Style
	dim   lipgloss.Style
}

// newPalette binds styles to w so colors are dropped when w is not a terminal.
func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		label: r.NewStyle().Bold(true).Width(slotColumnWidth),
		wide:  r.NewStyle().Bold(true).Width(labelColumnWidth),
		dim:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func renderRecommendation(w io.Writer, rec model.Recommendation, snap model.WeatherSnapshot, explain bool) {
	p := newPalette(w)

	fmt.Fprintf(w, "%s  %s\n", p.title.Render(rec.Style), p.dim.Render(fmt.Sprintf("%d%% confidence", rec.Confidence)))
	fmt.Fprintf(w, "%s, %s %.0f°F: %s\n\n", rec.Occasion, snap.Condition, snap.Temperature, snap.Description)

	if rec.Empty() {
		fmt.Fprintln(w, "Nothing in the wardrobe is available right now.")
		return
	}

	for _, slot := range model.BranchSlots(rec.Branch) {
		it := rec.Items[slot]
		if it == nil {
			fmt.Fprintf(w, "  %s%s\n", p.label.Render(string(slot)), p.dim.Render("none available"))
			continue
		}
		fmt.Fprintf(w, "  %s%s (%s, %s)\n", p.label.Render(string(slot)), it.Name, it.Color, it.Style)
		if explain {
			fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", slotColumnWidth), p.dim.Render(formatBreakdown(rec.Scores[slot])))
		}
	}

	if len(rec.Reasoning) > 0 {
		fmt.Fprintln(w)
		for _, line := range rec.Reasoning {
			fmt.Fprintf(w, "  - %s\n", line)
		}
	}
}

func formatBreakdown(b model.Breakdown) string {
	return fmt.Sprintf("weather %g, occasion %g, preference %g, favorite %g, overuse %g, coordination %g = %g",
		b.Weather, b.Occasion, b.Preference, b.Favorite, b.Overuse, b.Coordination, b.Total())
}

func renderGuidance(w io.Writer, c model.Condition, g model.WeatherGuidance) {
	p := newPalette(w)

	fmt.Fprintln(w, p.title.Render(fmt.Sprintf("Dressing for %s weather", c)))
	fmt.Fprintf(w, "  %s%s\n", p.label.Render("wear"), strings.Join(g.Recommendations, ", "))
	fmt.Fprintf(w, "  %s%s\n", p.label.Render("avoid"), strings.Join(g.Avoid, ", "))
	fmt.Fprintf(w, "  %s%s\n", p.label.Render("colors"), strings.Join(g.Colors, ", "))
}
