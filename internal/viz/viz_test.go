package viz

import (
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/san-kum/slopefield/internal/field"
)

func flatGrid(n int) *field.Grid {
	g, err := field.DirectionField(func(x, y float64) float64 { return 0 }, field.Range{Min: 0, Max: 1}, field.Range{Min: 0, Max: 1}, n)
	Expect(err).NotTo(HaveOccurred())
	return g
}

var _ = Describe("Arrow", func() {
	DescribeTable("picks a glyph from the direction",
		func(dx, dy float64, want rune) {
			Expect(Arrow(dx, dy)).To(Equal(want))
		},
		Entry("flat", 1.0, 0.0, '-'),
		Entry("rising", 1.0, 1.0, '/'),
		Entry("falling", 1.0, -1.0, '\\'),
		Entry("steep up", 0.01, 1.0, '|'),
		Entry("steep down", 0.01, -1.0, '|'),
		Entry("undefined", math.NaN(), 1.0, '?'),
	)
})

var _ = Describe("Quiver", func() {
	It("draws one glyph per sample", func() {
		out := Quiver(flatGrid(3))
		Expect(strings.Split(strings.TrimRight(out, "\n"), "\n")).To(Equal([]string{"- - -", "- - -", "- - -"}))
	})

	It("puts the highest y on the top row", func() {
		g, err := field.DirectionField(func(x, y float64) float64 { return y }, field.Range{Min: -1, Max: 1}, field.Range{Min: -1, Max: 1}, 3)
		Expect(err).NotTo(HaveOccurred())

		lines := strings.Split(strings.TrimRight(Quiver(g), "\n"), "\n")
		Expect(lines).To(HaveLen(3))
		Expect(lines[0]).To(ContainSubstring("/"))
		Expect(lines[1]).To(Equal("- - -"))
		Expect(lines[2]).To(ContainSubstring("\\"))
	})

	It("handles degenerate input", func() {
		Expect(Quiver(nil)).To(BeEmpty())
		Expect(Quiver(flatGrid(1))).To(Equal("-\n"))
	})
})

var _ = Describe("Overlay", func() {
	It("marks curve samples with the method initial", func() {
		xs := field.Linspace(field.Range{Min: 0, Max: 1}, 11)
		ys := make([]float64, len(xs))
		for i := range ys {
			ys[i] = 0.5
		}
		r := &experiment.Result{
			Xs:     xs,
			Curves: []experiment.Series{{Method: "euler", Ys: ys}},
			Field:  flatGrid(5),
		}

		lines := strings.Split(strings.TrimRight(Overlay(r, 21, 11), "\n"), "\n")
		Expect(lines).To(HaveLen(11))
		Expect(strings.Count(lines[5], "e")).To(Equal(11))
		Expect(lines[0]).To(ContainSubstring("-"))
	})

	It("skips points off the canvas", func() {
		r := &experiment.Result{
			Xs:     []float64{0, 0.5, 1},
			Curves: []experiment.Series{{Method: "rk4", Ys: []float64{10, math.NaN(), -10}}},
			Field:  flatGrid(2),
		}
		Expect(Overlay(r, 10, 5)).NotTo(ContainSubstring("r"))
	})

	It("refuses tiny canvases", func() {
		Expect(Overlay(&experiment.Result{Field: flatGrid(2)}, 1, 1)).To(BeEmpty())
	})
})

var _ = Describe("Curves", func() {
	It("plots every method with a legend", func() {
		xs := field.Linspace(field.Range{Min: 0, Max: 1}, 20)
		a := make([]float64, len(xs))
		b := make([]float64, len(xs))
		for i, x := range xs {
			a[i] = x
			b[i] = x * x
		}
		b[len(b)-1] = 1e9

		r := &experiment.Result{
			Xs: xs,
			Curves: []experiment.Series{
				{Method: "euler", Ys: a},
				{Method: "rk4", Ys: b},
			},
		}
		out := Curves(r, PaddedLimits(0, 1), 40, 8, "cos_xy")
		Expect(out).To(ContainSubstring("cos_xy"))
		Expect(out).To(ContainSubstring("euler"))
		Expect(out).To(ContainSubstring("rk4"))
	})

	It("returns nothing without curves", func() {
		Expect(Curves(&experiment.Result{}, PaddedLimits(0, 1), 10, 5, "")).To(BeEmpty())
	})

	It("pads limits by five percent", func() {
		lim := PaddedLimits(-4, 4)
		Expect(lim.Min).To(BeNumerically("~", -4.4, 1e-12))
		Expect(lim.Max).To(BeNumerically("~", 4.4, 1e-12))
	})
})

var _ = Describe("Table", func() {
	It("renders headers and cells", func() {
		out := Table([]string{"METHOD", "Y"}, [][]string{{"rk4", "1.234"}})
		Expect(out).To(ContainSubstring("METHOD"))
		Expect(out).To(ContainSubstring("rk4"))
		Expect(out).To(ContainSubstring("1.234"))
	})
})

var _ = Describe("Themes", func() {
	AfterEach(func() { SetTheme("cyberpunk") })

	It("falls back to the default theme", func() {
		Expect(GetTheme("nope").Name).To(Equal("cyberpunk"))
		SetTheme("retro")
		Expect(CurrentTheme.Name).To(Equal("retro"))
		Expect(ThemeNames()).To(ContainElement("minimal"))
	})

	It("colors field glyphs with the theme", func() {
		SetTheme("minimal")
		Expect(FieldStyle().GetForeground()).To(Equal(lipgloss.TerminalColor(ThemeMinimal.Field)))
	})
})
