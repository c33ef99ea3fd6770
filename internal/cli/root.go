package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gcombinatr/config"
	"gcombinatr/internal/adapter/probe"
	"gcombinatr/internal/adapter/report"
	"gcombinatr/internal/core/domain"
	"gcombinatr/internal/core/ports"
	"gcombinatr/internal/service"
	"gcombinatr/pkg/logger"
)

type flags struct {
	cfgFile  string
	timeout  time.Duration
	logLevel string
}

// Execute runs the verifier CLI and returns the process exit code:
// 0 when every required service is reachable, 1 otherwise.
func Execute() int {
	var f flags
	exitCode := 0

	root := &cobra.Command{
		Use:          "gcombinatr-verify",
		Short:        "Check that the services GCombinatr depends on are up",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := run(cmd, f)
			exitCode = code
			return err
		},
	}

	root.Flags().StringVar(&f.cfgFile, "config", "", "config file (default is ./config.yaml)")
	root.Flags().DurationVar(&f.timeout, "timeout", 0, "per-probe timeout (default 2s)")
	root.Flags().StringVar(&f.logLevel, "log-level", "", "log level verbosity (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		return 1
	}
	return exitCode
}

func run(cmd *cobra.Command, f flags) (int, error) {
	cfg, err := config.Load(f.cfgFile)
	if err != nil {
		return 1, fmt.Errorf("loading config: %w", err)
	}
	if f.timeout > 0 {
		cfg.Probe.Timeout = f.timeout
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	verifier := service.NewVerifier(buildChecks(cfg), cfg.Probe.Timeout, log)
	summary := verifier.Run(cmd.Context())

	out := cmd.OutOrStdout()
	renderer := report.NewRenderer(out)
	renderer.Table(summary)
	renderer.Summary(summary)
	renderer.EnvFileNotice(envFileExists(cfg.EnvFile), cfg.EnvFile)

	return summary.ExitCode(), nil
}

// buildChecks assembles the fixed ordered probe list. Order here is the
// order of the rendered report.
func buildChecks(cfg *config.Config) []domain.ServiceCheck {
	timeout := cfg.Probe.Timeout

	required := []ports.Prober{
		probe.NewRuntime(cfg.Runtime),
		probe.NewRedis(cfg.Redis),
		probe.NewNeo4j(cfg.Neo4j),
		probe.NewMongo(cfg.MongoDB, timeout),
		probe.NewInflux(cfg.InfluxDB, timeout),
	}
	optional := []ports.Prober{
		probe.NewKafka(cfg.Kafka, timeout),
		probe.NewOllama(cfg.Ollama, timeout),
	}

	var checks []domain.ServiceCheck
	for _, p := range required {
		checks = append(checks, domain.ServiceCheck{Name: p.Name(), Required: true, Probe: p.Probe})
	}
	for _, p := range optional {
		checks = append(checks, domain.ServiceCheck{Name: p.Name(), Required: false, Probe: p.Probe})
	}
	return checks
}

func envFileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
