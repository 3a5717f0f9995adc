package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/queue-sim/sim"
	"github.com/inference-sim/queue-sim/sim/variate"
)

var (
	// CLI flags for the run
	seed         int64   // Seed for the partitioned RNG
	horizon      float64 // Simulated-time cutoff; 0 = run until every job completes
	logLevel     string  // Log verbosity level
	scenarioPath string  // Optional YAML scenario file
	resultsPath  string  // Optional JSON results file
	showTimeline bool    // Print per-server service intervals

	// CLI flags for the waiting-line model
	modelName       string  // Kendall preset (M/M/C, M/G/C, G/G/C)
	arrivalMean     float64 // Mean interarrival time
	serviceMean     float64 // Mean service duration
	servers         int     // Parallel servers
	priorityEnabled bool    // Priority-ordered waiting line
	arrivalDist     string  // Interarrival family
	serviceDist     string  // Service family
	jobs            int     // Jobs to generate
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "queue-sim",
	Short: "Discrete-event simulator for multi-server waiting lines",
}

// runCmd executes the simulation using parameters from the scenario file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the waiting-line simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, runSeed, err := resolveRunConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Starting simulation with seed=%d, config=%+v", runSeed, cfg)

		startTime := time.Now()
		res, err := sim.Run(cfg, sim.NewPartitionedRNG(sim.NewSimulationKey(runSeed)))
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Simulation wall time: %v", time.Since(startTime))

		PrintReport(os.Stdout, res)
		if showTimeline {
			PrintTimeline(os.Stdout, res)
		}
		if resultsPath != "" {
			if err := SaveResults(res, resultsPath); err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Results written to %s", resultsPath)
		}

		logrus.Info("Simulation complete.")
	},
}

// resolveRunConfig builds the run parameters. Without --scenario every flag
// applies; with it, the file is the base and only explicitly set flags override it.
func resolveRunConfig(cmd *cobra.Command) (sim.SimulationConfig, int64, error) {
	cfg := sim.DefaultSimulationConfig()
	runSeed := seed
	model := sim.QueueModel(modelName)

	flags := cmd.Flags()
	override := func(name string) bool {
		return scenarioPath == "" || flags.Changed(name)
	}

	if scenarioPath != "" {
		sc, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			return cfg, 0, err
		}
		cfg = sc.Simulation
		if sc.Seed != nil && !flags.Changed("seed") {
			runSeed = *sc.Seed
		}
		if !flags.Changed("model") {
			model = sc.Model
		}
	}

	if override("arrival-mean") {
		cfg.ArrivalMean = arrivalMean
	}
	if override("service-mean") {
		cfg.ServiceMean = serviceMean
	}
	if override("servers") {
		cfg.Servers = servers
	}
	if override("priority") {
		cfg.PriorityEnabled = priorityEnabled
	}
	if override("arrival-dist") {
		cfg.ArrivalDistribution = variate.Distribution(arrivalDist)
	}
	if override("service-dist") {
		cfg.ServiceDistribution = variate.Distribution(serviceDist)
	}
	if override("jobs") {
		cfg.Jobs = jobs
	}
	if override("horizon") {
		cfg.Horizon = horizon
	}

	cfg, err := sim.ApplyModel(cfg, model)
	if err != nil {
		return cfg, 0, err
	}
	return cfg, runSeed, cfg.Validate()
}

// registerRunFlags binds the run flags to cmd.
func registerRunFlags(cmd *cobra.Command) {
	defaults := sim.DefaultSimulationConfig()

	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random job generation")
	cmd.Flags().Float64Var(&horizon, "horizon", defaults.Horizon, "Simulated-time cutoff (0 = run until all jobs complete)")
	cmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario file")
	cmd.Flags().StringVar(&resultsPath, "results-path", "", "File to save results JSON to")
	cmd.Flags().BoolVar(&showTimeline, "timeline", false, "Print each server's service intervals")

	// Waiting-line model
	cmd.Flags().StringVar(&modelName, "model", "", "Queue model preset (M/M/C, M/G/C, G/G/C)")
	cmd.Flags().Float64Var(&arrivalMean, "arrival-mean", defaults.ArrivalMean, "Mean interarrival time")
	cmd.Flags().Float64Var(&serviceMean, "service-mean", defaults.ServiceMean, "Mean service duration")
	cmd.Flags().IntVar(&servers, "servers", defaults.Servers, "Number of parallel servers")
	cmd.Flags().BoolVar(&priorityEnabled, "priority", defaults.PriorityEnabled, "Order the waiting line by job priority")
	cmd.Flags().StringVar(&arrivalDist, "arrival-dist", string(defaults.ArrivalDistribution), "Interarrival distribution (Exponential, Gamma, Normal, Uniform)")
	cmd.Flags().StringVar(&serviceDist, "service-dist", string(defaults.ServiceDistribution), "Service distribution (Exponential, Gamma, Normal, Uniform)")
	cmd.Flags().IntVar(&jobs, "jobs", defaults.Jobs, "Number of jobs to generate")
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(runCmd)

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
