package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fractree/internal/config"
	"github.com/san-kum/fractree/internal/export"
	"github.com/san-kum/fractree/internal/gui"
	"github.com/san-kum/fractree/internal/render"
	"github.com/san-kum/fractree/internal/storage"
	"github.com/san-kum/fractree/internal/tree"
	"github.com/san-kum/fractree/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	seed       int64
	verbose    bool
	// Export
	format string
	output string
	scale  float64
	// TUI
	menu    bool
	logFile string
	// Runs
	save    bool
	runsDir string
	count   int
)

// main registers commands and flags and opens the window when no subcommand
// is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "fractree",
		Short:         "fractal tree generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
			return nil
		},
		RunE: runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&runsDir, "runs-dir", "runs", "directory for stored runs")

	guiCmd := &cobra.Command{
		Use:       "gui [variant]",
		Short:     "show trees in a window",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: variantNames(),
		RunE:      runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:       "tui [variant]",
		Short:     "show trees in the terminal",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: variantNames(),
		RunE:      runTUI,
	}
	tuiCmd.Flags().BoolVar(&menu, "menu", false, "start on the variant menu")
	tuiCmd.Flags().StringVar(&logFile, "log-file", "fractree.log", "log file used with --verbose")

	exportCmd := &cobra.Command{
		Use:       "export [variant]",
		Short:     "render a tree to png or svg",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: variantNames(),
		RunE:      runExport,
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "", "png, svg or json (default: from --out, else png)")
	exportCmd.Flags().StringVarP(&output, "out", "o", "", "output file, - for stdout (default: tree-<variant>.<format>)")
	exportCmd.Flags().Float64Var(&scale, "scale", 0, "png scale factor (default: from config)")

	statsCmd := &cobra.Command{
		Use:       "stats [variant]",
		Short:     "generate a tree and print its statistics",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: variantNames(),
		RunE:      runStats,
	}
	statsCmd.Flags().BoolVar(&save, "save", false, "store the generated tree as a run")

	ensembleCmd := &cobra.Command{
		Use:       "ensemble [variant]",
		Short:     "generate trees for consecutive seeds and compare them",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: variantNames(),
		RunE:      runEnsemble,
	}
	ensembleCmd.Flags().IntVarP(&count, "count", "n", 8, "number of trees")
	ensembleCmd.Flags().BoolVar(&save, "save", false, "store every tree as a run")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	variantsCmd := &cobra.Command{
		Use:   "variants",
		Short: "list tree variants and their rules",
		RunE:  listVariants,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, exportCmd, statsCmd, ensembleCmd, runsCmd, variantsCmd, presetsCmd, initCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func variantNames() []string {
	names := make([]string, len(tree.Variants))
	for i, v := range tree.Variants {
		names[i] = v.String()
	}
	return names
}

// loadConfig resolves preset, then config file, then flags and arguments.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}

	if len(args) > 0 {
		v, err := tree.ParseVariant(args[0])
		if err != nil {
			return nil, err
		}
		cfg.Variant = v.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newScene builds the scene and logs how long setup generation took.
func newScene(ctx context.Context, cfg *config.Config) *tree.Scene {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)
	scene := cfg.NewScene()
	p.done("trees generated", "variant", scene.Active(), "seed", cfg.Seed)
	return scene
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())
	scene := newScene(cmd.Context(), cfg)

	logger.Debug("opening window", "width", cfg.Canvas.Width, "height", cfg.Canvas.Height, "fps", cfg.FPS)
	gui.Run(scene, gui.Options{
		Width:  cfg.Canvas.Width,
		Height: cfg.Canvas.Height,
		FPS:    cfg.FPS,
		Style:  cfg.GetStyle(),
		Logger: logger,
	})
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())
	scene := newScene(cmd.Context(), cfg)

	// The terminal belongs to the UI from here on.
	if verbose {
		f, err := tea.LogToFile(logFile, "fractree")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	} else {
		logger.SetOutput(io.Discard)
	}

	opts := viz.Options{
		WorldWidth:  float64(cfg.Canvas.Width),
		WorldHeight: float64(cfg.Canvas.Height),
		FPS:         cfg.FPS,
		Style:       cfg.GetStyle(),
		Theme:       cfg.Theme,
		Seed:        cfg.Seed,
		Logger:      logger,
	}
	if menu {
		return viz.RunInteractive(scene, opts)
	}
	return viz.Run(scene, opts)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())

	f := strings.ToLower(format)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	if f == "" {
		f = "png"
	}
	if f != "png" && f != "svg" && f != "json" {
		return fmt.Errorf("unsupported format: %s (want png, svg or json)", f)
	}

	out := output
	if out == "" {
		out = fmt.Sprintf("tree-%s.%s", cfg.GetVariant(), f)
	}
	s := scale
	if s <= 0 {
		s = cfg.Scale
	}

	v := cfg.GetVariant()
	seq := cfg.GetGenerator().Generate(v, cfg.Canvas.OriginX, cfg.Canvas.OriginY)

	var w io.Writer = os.Stdout
	if out != "-" {
		file, err := os.Create(out)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	p := newProgress(logger)
	switch f {
	case "svg":
		err = export.SVG(w, seq, cfg.GetStyle(), cfg.Canvas.Width, cfg.Canvas.Height)
	case "json":
		err = export.JSON(w, export.NewDocument(v, cfg.Seed, cfg.Canvas.OriginX, cfg.Canvas.OriginY, seq))
	default:
		err = export.PNG(w, seq, cfg.GetStyle(), cfg.Canvas.Width, cfg.Canvas.Height, s)
	}
	if err != nil {
		return err
	}
	p.done("exported", "file", out, "variant", v, "segments", len(seq), "seed", cfg.Seed)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	v := cfg.GetVariant()
	rule := tree.RuleFor(v)

	p := newProgress(loggerFromContext(cmd.Context()))
	seq := cfg.GetGenerator().Generate(v, cfg.Canvas.OriginX, cfg.Canvas.OriginY)
	p.done("generated", "variant", v)

	rec := &render.Recorder{}
	render.Render(rec, seq, cfg.GetStyle())

	b := seq.Bounds()
	fmt.Printf("variant: %s\n", v)
	fmt.Printf("seed: %d\n", cfg.Seed)
	fmt.Printf("segments: %d (expected %d)\n", len(seq), rule.Size())
	fmt.Printf("depth: %d\n", seq.MaxDepth()+1)
	fmt.Printf("bounds: x [%.1f, %.1f] y [%.1f, %.1f] (%.1f x %.1f)\n", b.MinX, b.MaxX, b.MinY, b.MaxY, b.Width(), b.Height())
	fmt.Printf("draw calls: %d\n", len(rec.Ops))
	fmt.Printf("valid: %t\n\n", seq.IsValid())

	if save {
		st := storage.New(runsDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(v, cfg.Seed, cfg.Canvas.OriginX, cfg.Canvas.OriginY, seq)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		loggerFromContext(cmd.Context()).Info("run saved", "id", runID, "dir", runsDir)
	}

	means := seq.MeanLengthByDepth()
	if len(means) < 2 {
		return nil
	}
	graph := asciigraph.Plot(means,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("mean branch length by depth"),
	)
	fmt.Println(graph)
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if count <= 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}
	logger := loggerFromContext(cmd.Context())
	v := cfg.GetVariant()

	p := newProgress(logger)
	e := tree.NewEnsemble(v, cfg.Canvas.OriginX, cfg.Canvas.OriginY, count, cfg.Seed)
	seqs, err := e.Run(cmd.Context())
	if err != nil {
		return err
	}
	p.done("ensemble generated", "variant", v, "trees", count, "first_seed", cfg.Seed)

	var st *storage.Store
	if save {
		st = storage.New(runsDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tWIDTH\tHEIGHT\tMIN Y\tRUN")
	for i, seq := range seqs {
		b := seq.Bounds()
		runID := "-"
		if st != nil {
			runID, err = st.Save(v, e.Seed(i), cfg.Canvas.OriginX, cfg.Canvas.OriginY, seq)
			if err != nil {
				return fmt.Errorf("save run: %w", err)
			}
		}
		fmt.Fprintf(w, "%d\t%.1f\t%.1f\t%.1f\t%s\n", e.Seed(i), b.Width(), b.Height(), b.MinY, runID)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	means := tree.MeanLengthByDepth(seqs)
	if len(means) < 2 {
		return nil
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(means,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("mean branch length by depth over %d trees", count)),
	))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(runsDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs stored in", runsDir)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVARIANT\tSEED\tSEGMENTS\tDEPTH\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.0f\t%s\n",
			r.ID, r.Variant, r.Seed, r.Segments, r.Metrics["depth"], r.Timestamp.Format(time.DateTime))
	}
	return w.Flush()
}

func listVariants(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tDEPTH\tSEGMENTS\tTURN\tLENGTH\tJITTER\tSTYLED")

	for _, v := range tree.Variants {
		r := tree.RuleFor(v)
		jitter := "-"
		if r.Random() {
			jitter = fmt.Sprintf("±%.1f° ±%.1f", r.AngleJitter/2, r.LengthJitter/2)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t±%.0f°\t×%.2f\t%s\t%t\n",
			v, r.MaxLevel, r.Size(), r.AngleChange, r.LengthFactor, jitter, r.Tagged)
	}

	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "fractree.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Info("config written", "file", path)
	return nil
}
