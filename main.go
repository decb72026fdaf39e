// Package main provides the CLI entrypoint for racer.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/golangdaddy/racer/pkg/config"
	"github.com/golangdaddy/racer/pkg/game"
	"github.com/golangdaddy/racer/pkg/racer"
	"github.com/golangdaddy/racer/pkg/road"
	"github.com/golangdaddy/racer/pkg/scores"
	"github.com/golangdaddy/racer/pkg/store"
	"github.com/golangdaddy/racer/pkg/ui"
)

const (
	defaultTPS      = 60
	defaultSimTicks = 3000
)

var (
	gameSpeed     float64
	gameCurve     float64
	gameScroll    float64
	gameSegWidth  int
	gameSegHeight int
	gameSeed      int64
	gameTPS       int
	scoresDB      string
	scoresMemory  bool

	scoresLimit  int
	scoresExport string
	scoresImport string

	simTicks int
	simPaced bool
	simName  string
)

var (
	colorWarn = color.New(color.FgYellow)
	colorOK   = color.New(color.FgGreen)
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "racer",
		Short:        "Top-down road racer",
		SilenceUsage: true,
		RunE:         runPlayCmd,
	}

	defaults := racer.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.Float64Var(&gameSpeed, "speed", defaults.PlayerSpeed, "car speed in pixels per tick")
	flags.Float64Var(&gameCurve, "curve", defaults.CurveSpeed, "largest sideways drift between road segments")
	flags.Float64Var(&gameScroll, "scroll", defaults.ScrollSpeed, "road scroll speed in pixels per tick")
	flags.IntVar(&gameSegWidth, "segment-width", defaults.SegmentWidth, "road width in pixels")
	flags.IntVar(&gameSegHeight, "segment-height", defaults.SegmentHeight, "road segment height in pixels")
	flags.Int64Var(&gameSeed, "seed", 0, "road seed (0 picks one from the clock)")
	flags.IntVar(&gameTPS, "tps", defaultTPS, "ticks per second")
	flags.StringVar(&scoresDB, "db", config.DefaultDBPath(), "score archive path")
	flags.BoolVar(&scoresMemory, "memory", false, "keep scores in memory only")

	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newSimCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadSettings merges the config file under the command line flags.
func loadSettings(cmd *cobra.Command) (racer.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return racer.Config{}, errors.Wrap(err, "failed to load config")
	}
	flags := cmd.Flags()
	config.Apply(flags, "speed", &gameSpeed, fileCfg.Game.PlayerSpeed)
	config.Apply(flags, "curve", &gameCurve, fileCfg.Game.CurveSpeed)
	config.Apply(flags, "scroll", &gameScroll, fileCfg.Game.ScrollSpeed)
	config.Apply(flags, "segment-width", &gameSegWidth, fileCfg.Game.SegmentWidth)
	config.Apply(flags, "segment-height", &gameSegHeight, fileCfg.Game.SegmentHeight)
	config.Apply(flags, "seed", &gameSeed, fileCfg.Game.Seed)
	config.Apply(flags, "tps", &gameTPS, fileCfg.Game.TPS)
	config.Apply(flags, "db", &scoresDB, fileCfg.Scores.DB)
	config.Apply(flags, "memory", &scoresMemory, fileCfg.Scores.Memory)

	cfg := racer.DefaultConfig()
	cfg.PlayerSpeed = gameSpeed
	cfg.CurveSpeed = gameCurve
	cfg.ScrollSpeed = gameScroll
	cfg.SegmentWidth = gameSegWidth
	cfg.SegmentHeight = gameSegHeight
	cfg.Seed = gameSeed
	if err := validateConfig(cfg); err != nil {
		return racer.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg racer.Config) error {
	if cfg.PlayerSpeed <= 0 {
		return errors.New("speed must be > 0")
	}
	if cfg.CurveSpeed < 0 {
		return errors.New("curve must be >= 0")
	}
	if cfg.ScrollSpeed <= 0 {
		return errors.New("scroll must be > 0")
	}
	if cfg.SegmentWidth <= 0 || cfg.SegmentWidth > cfg.ScreenWidth {
		return errors.Errorf("segment-width must be in 1..%d", cfg.ScreenWidth)
	}
	if road.SegmentCount(cfg.ScreenHeight, cfg.SegmentHeight) == 0 {
		return errors.New("segment-height must be > 0")
	}
	if gameTPS <= 0 {
		return errors.New("tps must be > 0")
	}
	return nil
}

// openArchive opens the score archive unless scores are memory-only. A
// broken archive is reported and play continues without it.
func openArchive(ctx context.Context, board *scores.Board) *store.Store {
	if scoresMemory {
		return nil
	}
	st, err := store.Open(scoresDB)
	if err != nil {
		colorWarn.Fprintf(os.Stderr, "scores will not be saved: %v\n", err)
		return nil
	}
	n, err := st.Restore(ctx, board)
	if err != nil {
		colorWarn.Fprintf(os.Stderr, "failed to restore scores: %v\n", err)
	} else {
		log.Printf("Restored %d scores from %s", n, scoresDB)
	}
	return st
}

func closeArchive(st *store.Store) {
	if st == nil {
		return
	}
	if err := st.Close(); err != nil {
		colorWarn.Fprintf(os.Stderr, "failed to close score archive: %v\n", err)
	}
}

func flowOptions(st *store.Store, r scores.Renderer) []scores.FlowOption {
	var opts []scores.FlowOption
	if r != nil {
		opts = append(opts, scores.WithRenderer(r))
	}
	if st != nil {
		opts = append(opts, scores.WithArchive(st))
	}
	return opts
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	board := scores.NewBoard(scores.DefaultCapacity)
	st := openArchive(cmd.Context(), board)
	defer closeArchive(st)

	table := ui.NewScoreTable()
	session := racer.New(cfg, board,
		racer.WithInput(game.NewKeyboard()),
		racer.WithFlowOptions(flowOptions(st, table)...),
	)

	backgroundSeed := cfg.Seed
	if backgroundSeed == 0 {
		backgroundSeed = time.Now().UnixNano()
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Racer")
	ebiten.SetTPS(gameTPS)
	if err := ebiten.RunGame(game.NewGame(session, table, backgroundSeed)); err != nil {
		return errors.Wrap(err, "game loop failed")
	}
	return nil
}

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show archived high scores",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
	cmd.Flags().IntVar(&scoresLimit, "limit", scores.DefaultCapacity, "number of scores to show")
	cmd.Flags().StringVar(&scoresExport, "export", "", "write the shown scores to a JSON file")
	cmd.Flags().StringVar(&scoresImport, "import", "", "add the scores from a JSON file to the archive")
	return cmd
}

func runScoresCmd(cmd *cobra.Command, _ []string) error {
	if _, err := loadSettings(cmd); err != nil {
		return err
	}
	if scoresMemory {
		return errors.New("no archive to read with --memory")
	}
	if scoresLimit <= 0 {
		return errors.New("limit must be > 0")
	}
	st, err := store.Open(scoresDB)
	if err != nil {
		return err
	}
	defer closeArchive(st)

	if scoresImport != "" {
		snap, err := scores.LoadFromFile(scoresImport)
		if err != nil {
			return err
		}
		for _, e := range snap.Entries {
			if err := st.Record(cmd.Context(), e); err != nil {
				return err
			}
		}
		colorOK.Fprintf(os.Stderr, "imported %d scores from %s\n", len(snap.Entries), scoresImport)
	}

	top, err := st.Top(cmd.Context(), scoresLimit)
	if err != nil {
		return err
	}
	if len(top) == 0 {
		colorWarn.Fprintln(os.Stderr, "no scores recorded yet")
		return nil
	}
	printScores(top)

	if scoresExport != "" {
		if err := scores.NewSnapshot(top).SaveToFile(scoresExport); err != nil {
			return err
		}
		colorOK.Fprintf(os.Stderr, "exported %d scores to %s\n", len(top), scoresExport)
	}
	return nil
}

func printScores(entries []scores.Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Name", "Score", "When"})
	for i, e := range entries {
		when := ""
		if !e.At.IsZero() {
			when = e.At.Local().Format("2006-01-02 15:04")
		}
		t.AppendRow(table.Row{i + 1, e.Name, e.Score, when})
	}
	t.Render()
}

func newSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run a headless session driven by the autopilot",
		Args:  cobra.NoArgs,
		RunE:  runSimCmd,
	}
	cmd.Flags().IntVar(&simTicks, "ticks", defaultSimTicks, "stop after this many ticks")
	cmd.Flags().BoolVar(&simPaced, "paced", false, "run at --tps instead of flat out")
	cmd.Flags().StringVar(&simName, "name", "", "record a qualifying score under this name")
	return cmd
}

func runSimCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if simTicks <= 0 {
		return errors.New("ticks must be > 0")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	board := scores.NewBoard(scores.DefaultCapacity)
	var st *store.Store
	if simName != "" {
		st = openArchive(ctx, board)
		defer closeArchive(st)
	}

	opts := []racer.Option{racer.WithFlowOptions(flowOptions(st, nil)...)}
	if simPaced {
		pacer := racer.NewTickerPacer(gameTPS)
		defer pacer.Stop()
		opts = append(opts, racer.WithPacer(pacer))
	}
	session := racer.New(cfg, board, opts...)
	racer.NewAutopilot(session)

	session.Start()
	for i := 0; i < simTicks && session.Playing(); i++ {
		if ctx.Err() != nil {
			break
		}
		session.Update()
	}
	crashed := session.Crashes() > 0
	session.Stop()

	status := colorOK.Sprint("finished")
	if crashed {
		status = colorWarn.Sprint("crashed")
	}
	fmt.Printf("%s with score %d\n", status, session.Score())

	if flow := session.Flow(); flow.Awaiting() && simName != "" {
		if e, ok := flow.Submit(simName); ok {
			log.Printf("High score recorded: %s %d", e.Name, e.Score)
		}
	}
	if board.Len() > 0 {
		printScores(board.RankedDescending())
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create the config file and print its path",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	created, err := config.WriteTemplate(path)
	if err != nil {
		return err
	}
	if created {
		colorOK.Printf("created %s\n", path)
		return nil
	}
	fmt.Println(path)
	return nil
}
