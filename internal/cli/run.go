package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"reasonbench/internal/config"
	"reasonbench/internal/duckdb"
	"reasonbench/internal/runner"
	"reasonbench/internal/task"
	"reasonbench/internal/ui/live"
)

var runAndWrite = runner.RunAndWrite

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file")
		model := fs.String("model", "", "Model override")
		temperature := fs.Float64("temperature", 0, "Sampling temperature override")
		maxTokens := fs.Int("max-tokens", 0, "Max output tokens override")
		runs := fs.Int("runs", 0, "Runs per task override")
		maxRetries := fs.Int("max-retries", 0, "Max retries per call override")
		frameworks := fs.String("frameworks", "", "Comma-separated framework ids")
		tasksPath := fs.String("tasks", "", "Path to a tasks file")
		outputDir := fs.String("output-dir", "", "Override output directory")
		dbPath := fs.String("db", "", "DuckDB database to ingest results into")
		frameworkCooldown := fs.Float64("framework-cooldown", 0, "Seconds to wait between frameworks")
		runCooldown := fs.Float64("run-cooldown", 0, "Seconds to wait between runs of a task")
		rateLimited := fs.Bool("rate-limited", false, "Apply conservative cooldowns for free-tier quotas")
		noLimit := fs.Bool("no-limit", false, "Disable all cooldowns")
		quick := fs.Bool("quick", false, "Single run of one task per type")
		uiMode := fs.String("ui", "auto", "UI mode: auto|live|plain")
		noColor := fs.Bool("no-color", false, "Disable color output")
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}
		if *rateLimited && *noLimit {
			fmt.Fprintln(stderr, "--rate-limited and --no-limit are mutually exclusive")
			return ExitUsage
		}

		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		explicit := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

		// Preset first, explicit flags after: a cooldown the user set
		// on the command line always wins, including an explicit zero.
		if *rateLimited {
			config.ApplyRateLimitedPreset(&cfg)
		}
		if explicit["model"] {
			cfg.Model = *model
		}
		if explicit["temperature"] {
			cfg.Temperature = *temperature
		}
		if explicit["max-tokens"] {
			cfg.MaxTokens = *maxTokens
		}
		if explicit["runs"] {
			cfg.RunsPerTask = *runs
		}
		if explicit["max-retries"] {
			cfg.MaxRetries = *maxRetries
		}
		if explicit["frameworks"] {
			cfg.Frameworks = splitList(*frameworks)
		}
		if explicit["tasks"] {
			cfg.TasksFile = *tasksPath
		}
		if explicit["db"] {
			cfg.Database = *dbPath
		}
		if explicit["framework-cooldown"] {
			cfg.Cooldown.FrameworkSeconds = *frameworkCooldown
		}
		if explicit["run-cooldown"] {
			cfg.Cooldown.RunSeconds = *runCooldown
		}
		if *noLimit {
			config.ApplyNoLimit(&cfg)
		}
		config.Normalize(&cfg)
		if err := config.Validate(&cfg); err != nil {
			fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
			return ExitError
		}

		suite, err := loadSuite(cfg.TasksFile)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load tasks: %v\n", err)
			return ExitError
		}
		if *quick {
			cfg.RunsPerTask = 1
			suite = quickSuite(suite)
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		var observer runner.RunObserver
		var controller *live.Controller
		if decision.useLive {
			controller = live.Start(stdout, live.Options{NoColor: *noColor})
			observer = controller
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		results, paths, err := runAndWrite(ctx, cfg, runner.RunParams{
			Suite:     suite,
			OutputDir: *outputDir,
			Observer:  observer,
		})
		if controller != nil {
			controller.Close()
			controller.Wait()
		}
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		if cfg.Database != "" {
			if err := ingestResults(ctx, cfg.Database, results); err != nil {
				fmt.Fprintf(stderr, "Failed to store results: %v\n", err)
				return ExitError
			}
		}

		printRunSummary(stdout, results, paths)
		return ExitOK
	}
}

// loadSuite reads a tasks file or falls back to the built-in suite.
func loadSuite(path string) (task.Suite, error) {
	if strings.TrimSpace(path) == "" {
		return task.Builtin(), nil
	}
	return task.LoadSuite(path)
}

// quickSuite keeps the first task of each type, in suite order.
func quickSuite(suite task.Suite) task.Suite {
	seen := map[task.Type]bool{}
	quick := task.Suite{Version: suite.Version}
	for _, item := range suite.Tasks {
		if seen[item.Type] {
			continue
		}
		seen[item.Type] = true
		quick.Tasks = append(quick.Tasks, item)
	}
	return quick
}

// ingestResults stores a run in the configured DuckDB database.
func ingestResults(ctx context.Context, path string, results runner.Results) error {
	db, err := duckdb.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := duckdb.EnsureSchema(db); err != nil {
		return err
	}
	return duckdb.IngestResults(ctx, db, results)
}

// splitList parses a comma separated flag value.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
