package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/kestrel-sim/kestrel/internal/catalog"
	"github.com/kestrel-sim/kestrel/internal/config"
	"github.com/kestrel-sim/kestrel/internal/env"
	"github.com/kestrel-sim/kestrel/internal/registry"
	"github.com/kestrel-sim/kestrel/internal/storage"
	"github.com/kestrel-sim/kestrel/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir       string
	configFile    string
	fighters      int
	dt            float64
	episodeSec    float64
	seed          int64
	initAlt       float64
	initSpeed     float64
	initHeading   float64
	targetAlt     float64
	targetHeading float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kestrel",
		Short: "flight-control reinforcement-learning environment",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".kestrel", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [task]",
		Short: "run one episode under a random policy",
		Args:  cobra.ExactArgs(1),
		RunE:  runEpisode,
	}
	addEpisodeFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [task]",
		Short: "watch a live episode in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  liveEpisode,
	}
	addEpisodeFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "list available tasks",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range registry.New().List() {
				fmt.Println(name)
			}
		},
	}

	propsCmd := &cobra.Command{
		Use:   "props",
		Short: "list the property vocabulary",
		RunE:  listProps,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, tasksCmd, propsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addEpisodeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().IntVar(&fighters, "fighters", 1, "number of controlled fighters")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	cmd.Flags().Float64Var(&episodeSec, "time", config.DefaultMaxEpisodeSec, "episode horizon (s)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&initAlt, "alt", config.DefaultInitAltitudeFt, "initial altitude (ft)")
	cmd.Flags().Float64Var(&initSpeed, "speed", config.DefaultInitSpeedFps, "initial airspeed (fps)")
	cmd.Flags().Float64Var(&initHeading, "heading", 0, "initial heading (deg)")
	cmd.Flags().Float64Var(&targetAlt, "target-alt", config.DefaultInitAltitudeFt, "commanded altitude (ft)")
	cmd.Flags().Float64Var(&targetHeading, "target-heading", 90, "commanded heading (deg)")
}

func buildConfig(taskName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Task = taskName
	cfg.NumFighters = fighters
	cfg.Dt = dt
	cfg.MaxEpisodeSec = episodeSec
	cfg.Seed = seed
	cfg.Init.AltitudeFt = initAlt
	cfg.Init.SpeedFps = initSpeed
	cfg.Init.HeadingDeg = initHeading
	cfg.Init.TargetAltitudeFt = targetAlt
	cfg.Init.TargetHeadingDeg = targetHeading
	return cfg, nil
}

func buildEnv(taskName string) (*env.Env, *config.Config, error) {
	cfg, err := buildConfig(taskName)
	if err != nil {
		return nil, nil, err
	}
	t, err := registry.New().Get(taskName, cfg)
	if err != nil {
		return nil, nil, err
	}
	return env.New(cfg, t), cfg, nil
}

func runEpisode(cmd *cobra.Command, args []string) error {
	episode, cfg, err := buildEnv(args[0])
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	episode.Reset()
	sim := episode.Agents()[0].Sim

	var trace []storage.StepRecord
	totalReward := 0.0
	terminated := ""
	success := false

	for !episode.Done() {
		actions := make([][]float64, len(episode.Agents()))
		for i := range actions {
			actions[i] = episode.Task().ActionSpace().Sample(rng)
		}
		results, err := episode.Step(actions)
		if err != nil {
			return err
		}
		r := results[0]
		totalReward += r.Reward
		if name, ok := r.Info["termination"].(string); ok {
			terminated = name
			success = r.Success
		}
		trace = append(trace, storage.StepRecord{
			Time:            sim.Get(catalog.SimulationSimTimeSec),
			AltitudeFt:      sim.Get(catalog.PositionHSLFt),
			DeltaHeadingDeg: sim.Get(catalog.DeltaHeadingDeg),
			RollRad:         sim.Get(catalog.AttitudeRollRad),
			PitchRad:        sim.Get(catalog.AttitudePitchRad),
			Reward:          r.Reward,
		})
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(storage.RunMetadata{
		Task:        cfg.Task,
		Seed:        cfg.Seed,
		Dt:          cfg.Dt,
		TotalReward: totalReward,
		Termination: terminated,
		Success:     success,
	}, trace)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d steps, reward %.2f, ended by %s (success=%v)\n",
		runID, len(trace), totalReward, terminated, success)
	return nil
}

func liveEpisode(cmd *cobra.Command, args []string) error {
	episode, cfg, err := buildEnv(args[0])
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	p := tea.NewProgram(viz.NewModel(episode, rng))
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTASK\tSTEPS\tREWARD\tTERMINATION\tSUCCESS\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%s\t%v\t%s\n",
			r.ID, r.Task, r.Steps, r.TotalReward, r.Termination, r.Success,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	trace, err := store.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("run %s has no steps", args[0])
	}
	alt := make([]float64, len(trace))
	rewardSeries := make([]float64, len(trace))
	for i, rec := range trace {
		alt[i] = rec.AltitudeFt
		rewardSeries[i] = rec.Reward
	}
	fmt.Println(asciigraph.Plot(alt, asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("altitude (ft)")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(rewardSeries, asciigraph.Height(8), asciigraph.Width(70), asciigraph.Caption("step reward")))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	meta, err := storage.New(dataDir).LoadMetadata(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func listProps(cmd *cobra.Command, args []string) error {
	all := catalog.All()
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "PROPERTY\tUNIT\tDESCRIPTION\t(vocabulary v%d)\n", catalog.Version)
	for _, p := range all {
		info, _ := catalog.Lookup(p)
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", p, info.Unit, info.Description)
	}
	return w.Flush()
}
