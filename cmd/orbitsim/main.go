package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/marek-sk/orbitsim/internal/analysis"
	"github.com/marek-sk/orbitsim/internal/config"
	"github.com/marek-sk/orbitsim/internal/gui"
	"github.com/marek-sk/orbitsim/internal/metrics"
	"github.com/marek-sk/orbitsim/internal/physics"
	"github.com/marek-sk/orbitsim/internal/sim"
	"github.com/marek-sk/orbitsim/internal/storage"
	"github.com/marek-sk/orbitsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	days       float64
	fps        int
	bodyIndex  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitsim",
		Short: "gravitational orbit simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", storage.DefaultDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset configuration")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run with graphical window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with terminal visualization",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&fps, "fps", 0, "frame rate (overrides config)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and save the trajectory",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep in simulated seconds (overrides config)")
	runCmd.Flags().Float64Var(&days, "days", 365, "simulated duration in days")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot saved coordinates",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "estimate orbital period from a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&bodyIndex, "body", 1, "body index to analyze")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a saved run as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a saved run as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(args[0])
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-16s %d bodies, dt=%.0fs\n", name, len(cfg.Bodies), cfg.Dt)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, listCmd, plotCmd, analyzeCmd,
		exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the startup configuration: preset if named,
// config file if given (file wins over preset), defaults otherwise.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return cfg, nil
}

func presetName() string {
	if preset != "" {
		return preset
	}
	return "sun-earth-moon"
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}

	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	gravity := physics.NewGravity()
	gravity.Softening = cfg.Softening

	s := sim.New(reg, gravity)
	s.AddMetric(metrics.NewEnergyDrift(gravity))
	s.AddMetric(metrics.NewMomentumDrift())
	s.AddMetric(metrics.NewAngularMomentumDrift())

	duration := days * 86400
	fmt.Printf("simulating %d bodies for %.0f days (dt=%.0fs)...\n", reg.Len(), days, cfg.Dt)
	start := time.Now()

	result, err := s.Run(context.Background(), sim.Config{Dt: cfg.Dt, Duration: duration})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	names := make([]string, 0, reg.Len())
	for _, b := range reg.Bodies() {
		names = append(names, b.Name)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(presetName(), cfg.Dt, duration, names, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.3e\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}

	m, err := viz.NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tBODIES\tDAYS\tDT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.0f\t%.0fs\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Bodies),
			run.Duration/86400,
			run.Dt,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(states))

	maxBodies := 3
	for i, name := range meta.Bodies {
		if i >= maxBodies {
			break
		}
		data := make([]float64, len(states))
		for j := range states {
			data[j] = states[j][i*4] // x coordinate
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(name+" x (m)"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data")
	}
	if bodyIndex < 0 || bodyIndex >= len(meta.Bodies) {
		return fmt.Errorf("body index %d out of range (run has %d bodies)", bodyIndex, len(meta.Bodies))
	}

	data := make([]float64, len(states))
	for i := range states {
		data[i] = states[i][bodyIndex*4]
	}

	ps := analysis.PowerSpectrum(data)
	fmt.Printf("orbital analysis: %s, body %s\n\n", meta.ID, meta.Bodies[bodyIndex])
	if len(ps) >= 8 {
		graph := asciigraph.Plot(ps[:len(ps)/4],
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (x)"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	period := analysis.DominantPeriod(data, meta.Dt)
	if period == 0 {
		fmt.Println("no dominant period found")
		return nil
	}
	fmt.Printf("dominant period: %.1f days\n", period/86400)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for _, name := range meta.Bodies {
		header = append(header, name+"_x", name+"_y", name+"_vx", name+"_vy")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 1, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
