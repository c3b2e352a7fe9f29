package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/config"
)

// --- Global Command Variables ---
var (
	runDays        int
	runDayInterval time.Duration
	runBackend     string
	runSlot        string
	runMetricsAddr string

	inspectList     bool
	inspectLocation string
	inspectBackend  string

	rootCmd = &cobra.Command{
		Use:   "cropsaver",
		Short: "Keeps player-planted crops alive across season changes",
		Long: `cropsaver tracks crops planted by players and decides, at each day
boundary, which out-of-season crops must die. It runs against a simulated
farm and persists its tables alongside the save slot.`,
		SilenceUsage: true,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the simulated farm with the crop saver enabled",
		Args:  cobra.NoArgs,
		RunE:  runSimulation, // Defined in cmd_run.go
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect [slot]",
		Short: "Print the crop tables stored for a save slot",
		Args:  cobra.MaximumNArgs(1),
		RunE:  inspectSlot, // Defined in cmd_inspect.go
	}
)

func init() {
	runCmd.Flags().IntVar(&runDays, "days", 0, "days to play; 0 plays one season, or forever with --day-interval")
	runCmd.Flags().DurationVar(&runDayInterval, "day-interval", 0, "wall-clock time per day; 0 plays days back to back")
	runCmd.Flags().StringVar(&runBackend, "backend", "", "save backend: memory, badger or postgres")
	runCmd.Flags().StringVar(&runSlot, "slot", "", "save slot to load")
	runCmd.Flags().StringVar(&runMetricsAddr, "metrics-addr", "", "address for /metrics and /healthz, e.g. :9090")

	inspectCmd.Flags().BoolVar(&inspectList, "list", false, "list the slots held by the store")
	inspectCmd.Flags().StringVar(&inspectLocation, "location", "", "only show plots in this location")
	inspectCmd.Flags().StringVar(&inspectBackend, "backend", "", "save backend: memory, badger or postgres")

	rootCmd.AddCommand(runCmd, inspectCmd)
}

// applyOverrides copies flags the user set onto cfg and revalidates it
func applyOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("days") {
		cfg.Days = runDays
	}
	if flags.Changed("day-interval") {
		cfg.DayInterval = runDayInterval
	}
	if flags.Changed("slot") {
		cfg.SaveSlot = runSlot
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = runMetricsAddr
	}
	if flags.Changed("backend") {
		backend, _ := flags.GetString("backend")
		cfg.SaveBackend = backend
	}
	return config.Validate(cfg)
}
