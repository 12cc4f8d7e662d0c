package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/veer/internal/automation"
	"github.com/san-kum/veer/internal/config"
	"github.com/san-kum/veer/internal/export"
	"github.com/san-kum/veer/internal/gui"
	"github.com/san-kum/veer/internal/optim"
	"github.com/san-kum/veer/internal/scene"
	"github.com/san-kum/veer/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	trackName   string
	ctrlName    string
	hz          int
	duration    float64
	onCollision string
	setParams   []string
	plot        bool
	quiet       bool
	debug       bool
	// Config file and preset
	configFile string
	preset     string
	// Live TUI
	themeName string
	// Parameter sweep
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	// Randomized trials
	trialCount    int
	spawnJitter   float64
	headingJitter float64
	trialSeed     uint64
	// Grid search axes
	axisSpecs []string
	// Snapshot output
	outFile string
)

// main is the entry point for the veer CLI; it registers commands and flags, launches the interactive GUI when no subcommand is provided, and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "veer",
		Short: "self-driving car demo lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive GUI mode when no command given
			return gui.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "engine diagnostics on stderr")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&trackName, "track", config.DefaultTrack, "track name")
	runCmd.Flags().StringVar(&ctrlName, "controller", config.DefaultController, "controller name")
	runCmd.Flags().IntVar(&hz, "hz", config.DefaultHz, "steps per second")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated seconds")
	runCmd.Flags().StringVar(&onCollision, "on-collision", config.DefaultOnCollision, "halt or reset")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "preset name")
	runCmd.Flags().StringArrayVar(&setParams, "set", nil, "controller parameter key=value")
	runCmd.Flags().BoolVar(&plot, "plot", false, "chart speed and clearance")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "metrics table only")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a run in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&trackName, "track", config.DefaultTrack, "track name")
	liveCmd.Flags().StringVar(&ctrlName, "controller", config.DefaultController, "controller name")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "preset name")
	liveCmd.Flags().StringVar(&themeName, "theme", "default", "color theme")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the graphical window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().StringVar(&trackName, "track", config.DefaultTrack, "track name")
	guiCmd.Flags().StringVar(&ctrlName, "controller", config.DefaultController, "controller name")

	tracksCmd := &cobra.Command{
		Use:   "tracks",
		Short: "list available tracks",
		Args:  cobra.NoArgs,
		RunE:  listTracks,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [show NAME]",
		Short: "list preset configurations",
		Args:  cobra.MaximumNArgs(2),
		RunE:  showPresets,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario FILE",
		Short: "run a scripted sequence of simulations",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenarioFile,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one controller parameter",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&trackName, "track", config.DefaultTrack, "track name")
	sweepCmd.Flags().StringVar(&ctrlName, "controller", config.DefaultController, "controller name")
	sweepCmd.Flags().StringVar(&sweepParam, "param", "", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "lowest value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0, "highest value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of values")
	sweepCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated seconds per value")
	sweepCmd.Flags().IntVar(&hz, "hz", config.DefaultHz, "steps per second")
	sweepCmd.Flags().BoolVar(&plot, "plot", false, "chart distance against value")

	trialsCmd := &cobra.Command{
		Use:   "trials",
		Short: "run repeated trials from jittered spawns",
		Args:  cobra.NoArgs,
		RunE:  runTrials,
	}
	trialsCmd.Flags().StringVar(&trackName, "track", config.DefaultTrack, "track name")
	trialsCmd.Flags().StringVar(&ctrlName, "controller", config.DefaultController, "controller name")
	trialsCmd.Flags().IntVar(&trialCount, "count", 20, "number of trials")
	trialsCmd.Flags().Float64Var(&spawnJitter, "jitter", 40, "spawn offset range in px")
	trialsCmd.Flags().Float64Var(&headingJitter, "heading-jitter", 30, "heading offset range in degrees")
	trialsCmd.Flags().Uint64Var(&trialSeed, "seed", 0, "rng seed, 0 picks one")
	trialsCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated seconds per trial")
	trialsCmd.Flags().IntVar(&hz, "hz", config.DefaultHz, "steps per second")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid-search controller parameters",
		Args:  cobra.NoArgs,
		RunE:  runTune,
	}
	tuneCmd.Flags().StringVar(&trackName, "track", config.DefaultTrack, "track name")
	tuneCmd.Flags().StringVar(&ctrlName, "controller", config.DefaultController, "controller name")
	tuneCmd.Flags().StringArrayVar(&axisSpecs, "axis", nil, "search axis param=min:max:steps")
	tuneCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated seconds per candidate")
	tuneCmd.Flags().IntVar(&hz, "hz", config.DefaultHz, "steps per second")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark stepping speed per track",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().StringVar(&ctrlName, "controller", config.DefaultController, "controller name")
	benchCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated seconds per track")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run headless and write the path as svg",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVar(&trackName, "track", config.DefaultTrack, "track name")
	snapshotCmd.Flags().StringVar(&ctrlName, "controller", config.DefaultController, "controller name")
	snapshotCmd.Flags().IntVar(&hz, "hz", config.DefaultHz, "steps per second")
	snapshotCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated seconds")
	snapshotCmd.Flags().StringVar(&configFile, "config", "", "config file (yaml)")
	snapshotCmd.Flags().StringVar(&preset, "preset", "", "preset name")
	snapshotCmd.Flags().StringVar(&outFile, "out", "run.svg", "output path")

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, tracksCmd, presetsCmd, scenarioCmd, sweepCmd, trialsCmd, tuneCmd, benchCmd, snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}

// buildConfig resolves the run configuration in precedence order: the
// preset, then the config file, then explicit flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("track") {
		cfg.Track = trackName
	}
	if flags.Changed("controller") {
		cfg.Controller = ctrlName
	}
	if flags.Changed("hz") {
		cfg.Hz = hz
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("on-collision") {
		cfg.OnCollision = onCollision
	}

	for _, kv := range setParams {
		key, val, err := parseSetFlag(kv)
		if err != nil {
			return nil, err
		}
		if cfg.Control == nil {
			cfg.Control = make(map[string]float64)
		}
		cfg.Control[key] = val
	}
	return cfg, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	eng, simCfg, err := scene.NewRegistry().Build(cfg, log)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("running %s on %s for %gs at %dhz...\n", cfg.Controller, cfg.Track, cfg.Duration, cfg.Hz)
	}
	start := time.Now()
	res, err := eng.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("completed in %v\n", time.Since(start).Round(time.Microsecond))
		fmt.Printf("run id: %s\n", eng.RunID())
		fmt.Printf("steps: %d  collisions: %d  status: %s\n\n", res.Steps, res.Collisions, res.Status)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.3f\n", name, res.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if plot && len(res.Frames) > 1 {
		speeds := make([]float64, len(res.Frames))
		clearance := make([]float64, len(res.Frames))
		for i, f := range res.Frames {
			speeds[i] = f.Car.Speed
			low := math.Inf(1)
			for _, rd := range f.Readings {
				if rd.Distance < low {
					low = rd.Distance
				}
			}
			if math.IsInf(low, 1) {
				low = 0
			}
			clearance[i] = low
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(speeds,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("speed (px/frame)")))
		fmt.Println()
		fmt.Println(asciigraph.Plot(clearance,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("clearance (px)")))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	eng, _, err := scene.NewRegistry().Build(cfg, log)
	if err != nil {
		return err
	}
	return viz.Run(eng.World(), themeName)
}

func runGUI(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("track") || cmd.Flags().Changed("controller") {
		return gui.Run(trackName, ctrlName)
	}
	return gui.RunInteractive()
}

func listTracks(cmd *cobra.Command, args []string) error {
	reg := scene.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tOBSTACLES\tSPAWN\tDESCRIPTION")
	for _, name := range reg.ListTracks() {
		tr, err := reg.GetTrack(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.0fx%.0f\t%d\t(%.0f,%.0f) %.0f°\t%s\n",
			name, tr.Width, tr.Height, tr.ObstacleCount(),
			tr.Start.Pos.X, tr.Start.Pos.Y, tr.Start.Heading, tr.Description)
	}
	return w.Flush()
}

func showPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 2 && args[0] == "show" {
		p, err := config.GetPreset(args[1])
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(p)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}
	if len(args) != 0 {
		return fmt.Errorf("usage: presets [show NAME]")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTRACK\tCONTROLLER\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, p.Track, p.Controller, p.Description)
	}
	return w.Flush()
}

func runScenarioFile(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Println(sc.Description)
	}
	fmt.Println()

	results, err := automation.RunScenario(context.Background(), sc, scene.NewRegistry())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tTRACK\tCONTROLLER\tSTEPS\tDISTANCE\tSTATUS")
	for i, sr := range results {
		tr := sr.Step.Track
		if tr == "" {
			tr = config.DefaultTrack
		}
		ct := sr.Step.Controller
		if ct == "" {
			ct = config.DefaultController
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.0f\t%s\n",
			i+1, tr, ct, sr.Result.Steps, sr.Result.Metrics["distance"], sr.Result.Status)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	if sweepParam == "" {
		return fmt.Errorf("--param is required")
	}

	sw := &automation.Sweep{
		Track:      trackName,
		Controller: ctrlName,
		Param:      sweepParam,
		Min:        sweepMin,
		Max:        sweepMax,
		Steps:      sweepSteps,
		Duration:   duration,
		Hz:         hz,
	}

	fmt.Printf("sweeping %s from %g to %g in %d steps...\n\n", sw.Param, sw.Min, sw.Max, sw.Steps)
	points, err := automation.RunSweep(context.Background(), sw, scene.NewRegistry())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tDISTANCE\tMIN CLEARANCE\tCOLLISIONS\tSTATUS")
	for _, pt := range points {
		fmt.Fprintf(w, "%.4f\t%.0f\t%.1f\t%d\t%s\n",
			pt.Value, pt.Distance, pt.MinClearance, pt.Collisions, pt.Status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if plot && len(points) > 1 {
		dist := make([]float64, len(points))
		for i, pt := range points {
			dist[i] = pt.Distance
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(dist,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("distance vs %s", sw.Param))))
	}
	return nil
}

func runTrials(cmd *cobra.Command, args []string) error {
	tr := &automation.Trials{
		Track:         trackName,
		Controller:    ctrlName,
		Count:         trialCount,
		Jitter:        spawnJitter,
		HeadingJitter: headingJitter,
		Seed:          trialSeed,
		Duration:      duration,
		Hz:            hz,
	}

	fmt.Printf("running %d trials of %s on %s...\n\n", tr.Count, tr.Controller, tr.Track)
	results, err := automation.RunTrials(context.Background(), tr, scene.NewRegistry())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRIAL\tSTART\tHEADING\tDISTANCE\tCOLLIDED")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t(%.1f,%.1f)\t%.1f°\t%.0f\t%v\n",
			i+1, r.Start.Pos.X, r.Start.Pos.Y, r.Start.Heading, r.Distance, r.Collided)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	st := automation.Stats(results)
	fmt.Printf("\ntrials: %d  collided: %d (%.0f%%)  mean distance: %.0f px\n",
		st.Count, st.Collided, st.CollisionRate*100, st.MeanDistance)
	return nil
}

func runTune(cmd *cobra.Command, args []string) error {
	axes := make([]optim.Axis, 0, len(axisSpecs))
	for _, spec := range axisSpecs {
		ax, err := parseAxis(spec)
		if err != nil {
			return err
		}
		axes = append(axes, ax)
	}
	if len(axes) == 0 {
		// Default to the reactive controller's two distance thresholds.
		axes = []optim.Axis{
			{Param: "safe_distance", Min: 60, Max: 140, Steps: 5},
			{Param: "warning_distance", Min: 110, Max: 190, Steps: 5},
		}
	}

	gs := &optim.GridSearch{
		Track:      trackName,
		Controller: ctrlName,
		Axes:       axes,
		Duration:   duration,
		Hz:         hz,
	}

	fmt.Printf("searching %d axes of %s on %s...\n", len(axes), gs.Controller, gs.Track)
	start := time.Now()
	best, score, table, err := gs.Search(context.Background(), scene.NewRegistry())
	if err != nil {
		return err
	}
	fmt.Printf("evaluated %d candidates in %v\n\n", len(table), time.Since(start).Round(time.Millisecond))

	keys := make([]string, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARAM\tBEST")
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%.4f\n", k, best[k])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nbest distance: %.0f px\n", score)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	reg := scene.NewRegistry()
	log := zap.NewNop()

	fmt.Printf("benchmarking %s over %gs runs\n\n", ctrlName, duration)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRACK\tSTEPS\tTIME\tSTEPS/SEC")

	for _, name := range reg.ListTracks() {
		cfg := config.DefaultConfig()
		cfg.Track = name
		cfg.Controller = ctrlName
		cfg.Duration = duration
		// Reset on collision so every run steps the full window.
		cfg.OnCollision = "reset"

		eng, simCfg, err := reg.Build(cfg, log)
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := eng.Run(context.Background(), simCfg)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\n",
			name, res.Steps, elapsed.Round(time.Microsecond),
			float64(res.Steps)/elapsed.Seconds())
	}
	return w.Flush()
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	eng, simCfg, err := scene.NewRegistry().Build(cfg, log)
	if err != nil {
		return err
	}
	res, err := eng.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}

	svg := export.SceneSVG(eng.World().Track, eng.World().Params, res.Frames)
	if err := export.SaveSVG(outFile, svg); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames, %.0f px driven)\n", outFile, res.Steps, res.Metrics["distance"])
	return nil
}

func parseSetFlag(s string) (string, float64, error) {
	key, raw, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, fmt.Errorf("bad --set %q, want key=value", s)
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad --set %q: %w", s, err)
	}
	return key, val, nil
}

func parseAxis(s string) (optim.Axis, error) {
	name, spec, ok := strings.Cut(s, "=")
	if !ok {
		return optim.Axis{}, fmt.Errorf("bad --axis %q, want param=min:max:steps", s)
	}
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return optim.Axis{}, fmt.Errorf("bad --axis %q, want param=min:max:steps", s)
	}
	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return optim.Axis{}, fmt.Errorf("bad --axis %q: %w", s, err)
	}
	hi, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return optim.Axis{}, fmt.Errorf("bad --axis %q: %w", s, err)
	}
	steps, err := strconv.Atoi(parts[2])
	if err != nil {
		return optim.Axis{}, fmt.Errorf("bad --axis %q: %w", s, err)
	}
	return optim.Axis{Param: name, Min: lo, Max: hi, Steps: steps}, nil
}
