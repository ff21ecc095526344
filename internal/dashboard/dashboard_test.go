package dashboard_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/chart"
	"github.com/san-kum/filmdash/internal/dashboard"
	"github.com/san-kum/filmdash/internal/query"
)

var _ = Describe("Dashboard", func() {
	var (
		surface *fakeSurface
		grid    *plainRenderer
		collab  *countingCollaborator
		bubble  *recordingRenderer
		coord   *dashboard.Coordinator
		cat     catalog.Catalog
	)

	BeforeEach(func() {
		surface = newFakeSurface()
		grid = &plainRenderer{}
		collab = &countingCollaborator{}
		bubble = &recordingRenderer{}
		cat = catalog.Catalog{
			{Title: "A", Director: "X", ReleaseYear: "2000", BoxOffice: "$100"},
			{Title: "B", Director: "Y", ReleaseYear: "2010", BoxOffice: "$200"},
		}

		var err error
		coord, err = dashboard.NewCoordinator(surface, map[dashboard.View]dashboard.Renderer{
			dashboard.Grid:   grid,
			dashboard.Chart:  chart.NewRenderer(collab, chart.DefaultConfig()),
			dashboard.Bubble: bubble,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Context("with the two-film catalog", func() {
		var d *dashboard.Dashboard

		BeforeEach(func() {
			d = dashboard.New(cat, coord, nil)
			Expect(d.Start()).To(Succeed())
		})

		It("renders the grid with the full catalog on start", func() {
			Expect(d.View()).To(Equal(dashboard.Grid))
			Expect(titles(grid.last)).To(Equal([]string{"A", "B"}))
			Expect(surface.sortVisible).To(BeTrue())
		})

		It("computes stats from the catalog", func() {
			disp := d.Stats().Display()
			Expect(disp.TotalFilms).To(Equal("2"))
			Expect(disp.TotalBoxOffice).To(Equal("$300"))
			Expect(disp.AvgBoxOffice).To(Equal("$150"))
			Expect(disp.RecentYear).To(Equal("2010"))
		})

		It("filters by director case-insensitively", func() {
			Expect(d.Search("x")).To(Succeed())
			Expect(titles(d.WorkingSet())).To(Equal([]string{"A"}))
			Expect(titles(grid.last)).To(Equal([]string{"A"}))
			Expect(d.Stats().TotalFilms).To(Equal(2))
		})

		It("sorts by box office descending", func() {
			Expect(d.SetSort(query.SortBoxOfficeDesc)).To(Succeed())
			Expect(titles(d.WorkingSet())).To(Equal([]string{"B", "A"}))
		})

		It("re-applies the selected sort after filtering", func() {
			Expect(d.SetSort(query.SortYearDesc)).To(Succeed())
			Expect(d.Search("")).To(Succeed())
			Expect(titles(d.WorkingSet())).To(Equal([]string{"B", "A"}))
			Expect(d.Term()).To(BeEmpty())
			Expect(d.SortKey()).To(Equal(query.SortYearDesc))
		})

		It("restores catalog order", func() {
			Expect(d.SetSort(query.SortTitleDesc)).To(Succeed())
			Expect(d.SetSort(query.SortNone)).To(Succeed())
			Expect(titles(d.WorkingSet())).To(Equal([]string{"A", "B"}))
		})

		It("renders the filtered set into the active view", func() {
			Expect(d.SwitchView(dashboard.Bubble)).To(Succeed())
			Expect(d.Search("y")).To(Succeed())
			Expect(titles(bubble.last)).To(Equal([]string{"B"}))
			Expect(bubble.renders).To(Equal(2))
		})

		It("keeps the working set a subset of the catalog", func() {
			for _, term := range []string{"", "a", "20", "zzz"} {
				Expect(d.Search(term)).To(Succeed())
				for _, f := range d.WorkingSet() {
					Expect(cat).To(ContainElement(f))
				}
			}
		})

		It("returns a copy of the working set", func() {
			ws := d.WorkingSet()
			ws[0].Title = "changed"
			Expect(titles(d.WorkingSet())).To(Equal([]string{"A", "B"}))
		})
	})

	Context("when the catalog cannot be loaded", func() {
		It("continues with an empty catalog and placeholders", func() {
			d := dashboard.Open(filepath.Join(GinkgoT().TempDir(), "missing.json"), coord, nil)
			Expect(d.LoadErr()).To(MatchError(catalog.ErrLoad))
			Expect(d.Start()).To(Succeed())

			Expect(d.WorkingSet()).To(BeEmpty())
			disp := d.Stats().Display()
			Expect(disp.TotalFilms).To(Equal("0"))
			Expect(disp.TotalBoxOffice).To(Equal("$0"))
			Expect(disp.AvgBoxOffice).To(Equal("—"))
			Expect(disp.RecentYear).To(Equal("—"))
		})
	})

	Context("when the catalog loads from disk", func() {
		It("reports no load error", func() {
			path := filepath.Join(GinkgoT().TempDir(), "films.json")
			data := `[{"title":"A","director":"X","release_year":"2000","country_of_origin":"US","box_office":"$100"}]`
			Expect(os.WriteFile(path, []byte(data), 0644)).To(Succeed())

			d := dashboard.Open(path, coord, nil)
			Expect(d.LoadErr()).NotTo(HaveOccurred())
			Expect(d.Catalog().Len()).To(Equal(1))
		})
	})
})
