package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/chart"
	"github.com/san-kum/filmdash/internal/config"
	"github.com/san-kum/filmdash/internal/dashboard"
	"github.com/san-kum/filmdash/internal/export"
	"github.com/san-kum/filmdash/internal/format"
	"github.com/san-kum/filmdash/internal/layout"
	"github.com/san-kum/filmdash/internal/logging"
	"github.com/san-kum/filmdash/internal/query"
	"github.com/san-kum/filmdash/internal/stats"
	"github.com/san-kum/filmdash/internal/storage"
	"github.com/san-kum/filmdash/internal/tui"
	"github.com/san-kum/filmdash/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	dataPath   string
	verbose    bool
	theme      string
	view       string
	sortKey    string
	search     string
	seed       int64
	preset     string
	// Bubble output
	cols    int
	rows    int
	tries   int
	svgPath string
	dots    bool
	asJSON  bool
	// Snapshot directory
	storeDir string

	cfg    *config.Config
	logger *zap.Logger
)

// main registers the commands and flags and runs the TUI when no subcommand
// is given. It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "filmdash",
		Short:         "film catalog dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = loadConfig(cmd); err != nil {
				return err
			}
			// The TUI owns the terminal, so it logs to a file instead.
			if cmd.Name() == "filmdash" {
				logger, err = logging.NewFile(cfg.LogFile, verbose)
			} else {
				logger, err = logging.New(verbose)
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runDashboard,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", config.DefaultData, "film catalog (json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "bubble layout seed (0 = random)")
	rootCmd.Flags().StringVar(&view, "view", config.DefaultView, "initial view (grid, chart, bubble)")
	rootCmd.Flags().StringVar(&sortKey, "sort", "", "initial sort key")
	rootCmd.Flags().StringVar(&preset, "preset", "", "layout preset")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list films",
		RunE:  listFilms,
	}
	listCmd.Flags().StringVar(&search, "search", "", "filter by title, director or year")
	listCmd.Flags().StringVar(&sortKey, "sort", "", "sort key ("+sortKeyNames()+")")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "catalog totals",
		RunE:  showStats,
	}

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "box office bar chart",
		RunE:  showChart,
	}
	chartCmd.Flags().StringVar(&search, "search", "", "filter by title, director or year")

	bubbleCmd := &cobra.Command{
		Use:   "bubble",
		Short: "settle the bubble layout and print it",
		RunE:  showBubbles,
	}
	bubbleCmd.Flags().StringVar(&search, "search", "", "filter by title, director or year")
	bubbleCmd.Flags().StringVar(&preset, "preset", "", "layout preset ("+strings.Join(config.ListPresets(), ", ")+")")
	bubbleCmd.Flags().IntVar(&cols, "cols", 100, "canvas width in cells")
	bubbleCmd.Flags().IntVar(&rows, "rows", 30, "canvas height in cells")
	bubbleCmd.Flags().IntVar(&tries, "tries", 1, "settle from this many seeds and keep the tidiest")
	bubbleCmd.Flags().StringVar(&svgPath, "svg", "", "write the layout as SVG")
	bubbleCmd.Flags().BoolVar(&dots, "dots", false, "export the braille canvas instead of circles")
	bubbleCmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [file]",
		Short: "export the working set as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&search, "search", "", "filter by title, director or year")
	exportCSVCmd.Flags().StringVar(&sortKey, "sort", "", "sort key")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [file]",
		Short: "export the working set as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&search, "search", "", "filter by title, director or year")
	exportJSONCmd.Flags().StringVar(&sortKey, "sort", "", "sort key")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "save and list working set snapshots",
	}
	snapshotCmd.PersistentFlags().StringVar(&storeDir, "store", ".filmdash", "snapshot directory")

	snapshotSaveCmd := &cobra.Command{
		Use:   "save",
		Short: "save the working set",
		RunE:  saveSnapshot,
	}
	snapshotSaveCmd.Flags().StringVar(&search, "search", "", "filter by title, director or year")
	snapshotSaveCmd.Flags().StringVar(&sortKey, "sort", "", "sort key")

	snapshotListCmd := &cobra.Command{
		Use:   "list",
		Short: "list snapshots",
		RunE:  listSnapshots,
	}

	snapshotShowCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "print a snapshot's films",
		Args:  cobra.ExactArgs(1),
		RunE:  showSnapshot,
	}
	snapshotCmd.AddCommand(snapshotSaveCmd, snapshotListCmd, snapshotShowCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list layout presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "init-config [file]",
		Short: "write the effective configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], cfg)
		},
	}

	rootCmd.AddCommand(listCmd, statsCmd, chartCmd, bubbleCmd, exportCSVCmd, exportJSONCmd,
		snapshotCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, then lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		c = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		c.Data = dataPath
	}
	if flags.Changed("theme") {
		c.Theme = theme
	}
	if flags.Changed("seed") {
		c.Seed = seed
	}
	if flags.Changed("view") {
		c.View = view
	}
	if flags.Changed("sort") {
		c.Sort = sortKey
	}
	if preset != "" {
		if err := c.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	v, err := dashboard.ParseView(cfg.View)
	if err != nil {
		return err
	}
	key, err := query.ParseSortKey(cfg.Sort)
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{
		DataPath: cfg.Data,
		Theme:    cfg.Theme,
		View:     v,
		Sort:     key,
		PxPerDot: cfg.PxPerDot,
		FPS:      cfg.FPS,
		Seed:     cfg.Seed,
		Params:   cfg.LayoutParams(),
		Chart:    cfg.ChartConfig(),
		Logger:   logger,
	})
}

// workingSet loads the catalog and applies the command's search and sort.
func workingSet() ([]catalog.Film, error) {
	cat, err := catalog.Load(cfg.Data)
	if err != nil {
		return nil, err
	}
	key, err := query.ParseSortKey(cfg.Sort)
	if err != nil {
		return nil, err
	}
	films := query.Apply(cat.Films(), search, key)
	logger.Debug("working set",
		zap.String("data", cfg.Data),
		zap.String("search", search),
		zap.String("sort", string(key)),
		zap.Int("films", len(films)))
	return films, nil
}

func listFilms(cmd *cobra.Command, args []string) error {
	films, err := workingSet()
	if err != nil {
		return err
	}

	if len(films) == 0 {
		fmt.Println("no films match")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tDIRECTOR\tYEAR\tCOUNTRY\tBOX OFFICE")
	for _, f := range films {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			format.Truncate(f.Title, 40),
			f.Director,
			f.ReleaseYear,
			f.CountryOfOrigin,
			format.BoxOffice(f.BoxOffice),
		)
	}
	return w.Flush()
}

func showStats(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(cfg.Data)
	if err != nil {
		return err
	}
	s := stats.Compute(cat.Films())
	d := s.Display()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "films\t%s\n", d.TotalFilms)
	fmt.Fprintf(w, "total box office\t%s\n", d.TotalBoxOffice)
	fmt.Fprintf(w, "average box office\t%s\n", d.AvgBoxOffice)
	fmt.Fprintf(w, "most recent year\t%s\n", d.RecentYear)
	if s.MalformedBoxOffice > 0 || s.MalformedYears > 0 {
		fmt.Fprintf(w, "malformed\t%d box office, %d year\n", s.MalformedBoxOffice, s.MalformedYears)
	}
	return w.Flush()
}

func showChart(cmd *cobra.Command, args []string) error {
	films, err := workingSet()
	if err != nil {
		return err
	}
	r := chart.NewRenderer(chart.AsciiGraph{}, cfg.ChartConfig())
	if err := r.Render(films); err != nil {
		return err
	}
	defer r.Release()

	fmt.Println(r.View())
	return nil
}

func showBubbles(cmd *cobra.Command, args []string) error {
	films, err := workingSet()
	if err != nil {
		return err
	}
	if len(films) == 0 {
		return fmt.Errorf("nothing to lay out: %w", catalog.ErrEmptyCatalog)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	params := cfg.LayoutParams()
	proj := viz.Projection{PxPerDot: cfg.PxPerDot}.Fit(films, params, cols, rows)
	ens := layout.NewEnsemble(films, proj.Bounds(cols, rows), params, tries, s)

	start := time.Now()
	cands, err := ens.Run(ctx)
	if err != nil {
		return err
	}
	best, _ := layout.Best(cands)
	l, res := best.Layout, best.Result
	logger.Info("layout finished",
		zap.Int64("seed", best.Seed),
		zap.Int("tries", len(cands)),
		zap.Int("bubbles", l.Len()),
		zap.Int("iterations", res.Iterations),
		zap.Bool("converged", res.Converged),
		zap.Bool("hit_cap", res.HitCap),
		zap.Float64("max_overlap", res.MaxOverlap),
		zap.Duration("elapsed", time.Since(start)))

	canvas := viz.NewCanvas(cols, rows)
	viz.DrawBubbles(canvas, l, proj, -1, "")

	if svgPath != "" {
		bg := "#0a0a0a"
		var svg string
		if dots {
			svg = export.CanvasToSVG(canvas, 4, bg)
		} else {
			svg = export.LayoutToSVG(l, bg)
		}
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", svgPath)
	}

	if asJSON {
		return storage.WriteLayoutJSON(os.Stdout, l, res)
	}

	fmt.Println(canvas.Render())
	fmt.Printf("%d bubbles, %d iterations", l.Len(), res.Iterations)
	if res.HitCap {
		fmt.Print(" (stopped at cap)")
	}
	fmt.Println()
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	films, err := workingSet()
	if err != nil {
		return err
	}
	if err := storage.ExportCSV(args[0], films); err != nil {
		return err
	}
	fmt.Printf("exported %d films to %s\n", len(films), args[0])
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	films, err := workingSet()
	if err != nil {
		return err
	}
	if err := storage.ExportJSON(args[0], films); err != nil {
		return err
	}
	fmt.Printf("exported %d films to %s\n", len(films), args[0])
	return nil
}

func saveSnapshot(cmd *cobra.Command, args []string) error {
	films, err := workingSet()
	if err != nil {
		return err
	}
	st := storage.New(storeDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(cfg.Data, search, cfg.Sort, films)
	if err != nil {
		return err
	}
	logger.Info("snapshot saved", zap.String("id", id), zap.Int("films", len(films)))
	fmt.Println(id)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	st := storage.New(storeDir)
	snaps, err := st.List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSOURCE\tSEARCH\tSORT\tFILMS")
	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%q\t%s\t%d\n",
			s.ID,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Source,
			s.Term,
			s.Sort,
			s.Films,
		)
	}
	return w.Flush()
}

func showSnapshot(cmd *cobra.Command, args []string) error {
	st := storage.New(storeDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	films, err := st.LoadFilms(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("snapshot: %s\n", meta.ID)
	fmt.Printf("source: %s\n", meta.Source)
	fmt.Printf("search: %q  sort: %s\n\n", meta.Term, meta.Sort)
	return storage.WriteCSV(os.Stdout, films)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSIZES\tPADDING\tSTRENGTH\tSEPARATION\tDAMPING\tBOUNCE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.0f-%.0f\t%.0f\t%.2f\t%.0f\t%.2f\t%.2f\n",
			name, p.MinSize, p.MaxSize, p.Padding, p.Strength, p.Separation, p.Damping, p.Bounce)
	}
	return w.Flush()
}

func sortKeyNames() string {
	keys := query.SortKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
