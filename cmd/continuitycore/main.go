// Command continuitycore is the operator CLI over the planning core: it
// prints dashboard summaries, exports the plan report, and manages backups.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"continuitycore/internal/blob"
	"continuitycore/internal/config"
	"continuitycore/internal/core"
	"continuitycore/internal/report"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

type env struct {
	cfg     config.Config
	logger  *slog.Logger
	service *core.Service
}

// setup loads configuration and opens the snapshot store.
func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	store, err := core.OpenPersistentStore(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	service := core.NewService(store,
		core.WithLogger(logger),
		core.WithMetrics(core.NewExpvarMetricsRecorder("continuitycore_service")),
	)
	return &env{cfg: cfg, logger: logger, service: service}, nil
}

func (e *env) close() {
	if err := e.service.Store().Close(); err != nil {
		e.logger.Warn("close store", "error", err)
	}
}

func (e *env) artifacts(ctx context.Context) (blob.Store, error) {
	return blob.Open(ctx, e.cfg)
}

func main() {
	root := &cobra.Command{
		Use:           "continuitycore",
		Short:         "Business continuity planning core",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(summaryCmd(), reportCmd(), backupCmd(), restoreCmd(), resetCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print dashboard counts and top risks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.close()
			snap, err := e.service.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			o := core.ComputeOverview(snap)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", snap.Company.Name)
			fmt.Fprintf(out, "Departments:      %d\n", o.Departments)
			fmt.Fprintf(out, "Processes:        %d\n", o.Processes)
			fmt.Fprintf(out, "Critical vendors: %d\n", o.CriticalVendors)
			fmt.Fprintf(out, "Open issues:      %d\n", o.OpenIssues)
			fmt.Fprintf(out, "Threats:          %d\n", o.Threats)
			fmt.Fprintf(out, "Incidents:        %d\n", o.Incidents)
			fmt.Fprintln(out, "\nRTO distribution:")
			for _, bc := range core.RTODistribution(snap) {
				fmt.Fprintf(out, "  %-9s %d\n", bc.Label, bc.Count)
			}
			fmt.Fprintln(out, "\nTop risks:")
			for _, t := range core.TopRisks(snap, 5) {
				fmt.Fprintf(out, "  %-28s RPN %2d [%s]\n", t.Name, t.RPN, core.TopRiskBand(t.RPN))
			}
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	var toStore bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the plan document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.close()
			if toStore {
				artifacts, err := e.artifacts(cmd.Context())
				if err != nil {
					return err
				}
				info, err := e.service.ExportReport(cmd.Context(), artifacts, time.Now().UTC())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exported %s (%d bytes)\n", info.Key, info.Size)
				return nil
			}
			snap, err := e.service.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(report.Generate(snap))
			return err
		},
	}
	cmd.Flags().BoolVar(&toStore, "store", false, "Write the report to the artifact store instead of stdout")
	return cmd
}

func backupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Export the full snapshot to the artifact store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.close()
			artifacts, err := e.artifacts(cmd.Context())
			if err != nil {
				return err
			}
			info, err := e.service.ExportBackup(cmd.Context(), artifacts, time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %s (%d bytes)\n", info.Key, info.Size)
			return nil
		},
	}
}

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup-key>",
		Short: "Replace all data from a stored backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.close()
			artifacts, err := e.artifacts(cmd.Context())
			if err != nil {
				return err
			}
			snap, err := e.service.RestoreBackup(cmd.Context(), artifacts, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored snapshot for %s\n", snap.Company.Name)
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard all data and restore the example dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.close()
			snap, err := e.service.ResetToSeed(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reset to seed dataset (%d departments)\n", len(snap.Departments))
			return nil
		},
	}
}
