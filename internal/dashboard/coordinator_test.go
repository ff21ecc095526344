package dashboard_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/chart"
	"github.com/san-kum/filmdash/internal/dashboard"
)

var _ = Describe("Coordinator", func() {
	var (
		surface *fakeSurface
		grid    *plainRenderer
		bars    *chart.Renderer
		collab  *countingCollaborator
		bubble  *recordingRenderer
		coord   *dashboard.Coordinator
		films   []catalog.Film
	)

	BeforeEach(func() {
		surface = newFakeSurface()
		grid = &plainRenderer{}
		collab = &countingCollaborator{}
		bars = chart.NewRenderer(collab, chart.DefaultConfig())
		bubble = &recordingRenderer{}
		films = []catalog.Film{
			{Title: "A", Director: "X", ReleaseYear: "2000", BoxOffice: "$100"},
			{Title: "B", Director: "Y", ReleaseYear: "2010", BoxOffice: "$200"},
		}

		var err error
		coord, err = dashboard.NewCoordinator(surface, map[dashboard.View]dashboard.Renderer{
			dashboard.Grid:   grid,
			dashboard.Chart:  bars,
			dashboard.Bubble: bubble,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts on the grid", func() {
		Expect(coord.Active()).To(Equal(dashboard.Grid))
	})

	It("requires a renderer for every view", func() {
		_, err := dashboard.NewCoordinator(surface, map[dashboard.View]dashboard.Renderer{
			dashboard.Grid: grid,
		})
		Expect(err).To(MatchError(dashboard.ErrUnknownView))
	})

	DescribeTable("surface state per view",
		func(target dashboard.View, sortVisible, compact bool) {
			Expect(coord.SwitchView(target, films)).To(Succeed())

			Expect(coord.Active()).To(Equal(target))
			Expect(surface.active).To(Equal(target))
			Expect(surface.shown).To(HaveLen(1))
			Expect(surface.shown).To(HaveKey(target))
			Expect(surface.sortVisible).To(Equal(sortVisible))
			Expect(surface.compact).To(Equal(compact))
		},
		Entry("grid shows sort controls", dashboard.Grid, true, false),
		Entry("chart hides sort controls", dashboard.Chart, false, true),
		Entry("bubble hides sort controls", dashboard.Bubble, false, true),
	)

	It("destroys the chart exactly once on Grid -> Chart -> Grid", func() {
		Expect(coord.SwitchView(dashboard.Chart, films)).To(Succeed())
		Expect(collab.draws).To(Equal(1))
		Expect(bars.Live()).To(BeTrue())

		Expect(coord.SwitchView(dashboard.Grid, films)).To(Succeed())
		Expect(collab.destroyed).To(Equal(1))
		Expect(bars.Live()).To(BeFalse())

		Expect(coord.SwitchView(dashboard.Grid, films)).To(Succeed())
		Expect(collab.destroyed).To(Equal(1))
	})

	It("keeps one live chart across re-renders", func() {
		Expect(coord.SwitchView(dashboard.Chart, films)).To(Succeed())
		Expect(coord.RenderCurrent(films[:1])).To(Succeed())
		Expect(coord.SwitchView(dashboard.Chart, films)).To(Succeed())

		Expect(collab.draws).To(Equal(3))
		Expect(collab.destroyed).To(Equal(2))
	})

	It("releases the bubble renderer when leaving it", func() {
		Expect(coord.SwitchView(dashboard.Bubble, films)).To(Succeed())
		Expect(coord.SwitchView(dashboard.Bubble, films)).To(Succeed())
		Expect(bubble.releases).To(BeZero())

		Expect(coord.SwitchView(dashboard.Chart, films)).To(Succeed())
		Expect(bubble.releases).To(Equal(1))
		Expect(bubble.renders).To(Equal(2))
	})

	It("re-renders only the active view", func() {
		Expect(coord.RenderCurrent(films)).To(Succeed())
		Expect(grid.renders).To(Equal(1))
		Expect(bubble.renders).To(BeZero())
		Expect(collab.draws).To(BeZero())
	})

	It("rejects unknown views without changing state", func() {
		err := coord.SwitchView(dashboard.View(7), films)
		Expect(err).To(MatchError(dashboard.ErrUnknownView))
		Expect(coord.Active()).To(Equal(dashboard.Grid))
		Expect(surface.hideAllCalls).To(BeZero())
	})

	It("wraps renderer failures", func() {
		bubble.err = errRender
		err := coord.SwitchView(dashboard.Bubble, films)
		Expect(err).To(MatchError(errRender))
		Expect(coord.Active()).To(Equal(dashboard.Bubble))
	})
})

var _ = Describe("View", func() {
	It("parses names case-insensitively", func() {
		v, err := dashboard.ParseView("Chart")
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(dashboard.Chart))
	})

	It("rejects unknown names", func() {
		_, err := dashboard.ParseView("table")
		Expect(err).To(MatchError(dashboard.ErrUnknownView))
	})

	It("names every view", func() {
		for _, v := range dashboard.Views() {
			parsed, err := dashboard.ParseView(v.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(v))
		}
		Expect(dashboard.Bubble.Title()).To(Equal("Bubble"))
		Expect(dashboard.View(9).String()).To(Equal("view(9)"))
	})
})
