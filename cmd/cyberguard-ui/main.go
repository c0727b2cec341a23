package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/logger"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/client"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/config"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/server"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/types"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/version"
)

func main() {
	cmd := &cobra.Command{
		Use:   "cyberguard-ui",
		Short: "CyberGuard web user interface",
		Long:  `Web UI for the CyberGuard phishing detection and cybersecurity chatbot service`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	cmd.AddCommand(newCheckCmd())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe() error {
	// Load UI configuration
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load UI configuration: %v\n", err)
		return err
	}

	serverLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment, cfg.LogFile)

	serverLogger.Info("starting UI server",
		slog.String("version", version.Get().Version),
		slog.String("environment", cfg.Environment),
	)
	serverLogger.Info("using CyberGuard backend",
		slog.String("api_base_url", cfg.APIBaseURL),
		slog.String("api_contract", cfg.APIContract),
	)

	srv, err := server.NewServer(cfg, serverLogger)
	if err != nil {
		serverLogger.Error("failed to create UI server", slog.String("error", err.Error()))
		return err
	}

	// Set up graceful shutdown handling
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		serverLogger.Error("UI server error", slog.String("error", err.Error()))
		return err
	}

	serverLogger.Info("UI server shutdown complete")
	return nil
}

// newCheckCmd runs a one-off phishing prediction from the terminal, using the same
// client the UI server uses. Handy for smoke-testing a backend deployment.
func newCheckCmd() *cobra.Command {
	var (
		noFeatures bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "check <text>",
		Short: "Analyze a text for phishing indicators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			// keep terminal output clean - only warnings and errors from the client
			quietLogger := logger.InitLogger(slog.LevelWarn, cfg.Environment, cfg.LogFile)

			c := client.NewClient(cfg.APIBaseURL, cfg.APIContract, quietLogger)
			result, err := c.PredictPhishing(args[0], !noFeatures)
			if err != nil {
				return err
			}

			if asJSON {
				out, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Printf("Verdict:    %s\n", types.FormatLabel(result.Label))
			fmt.Printf("Risk:       %s\n", types.FormatRiskLevel(result.RiskLevel))
			fmt.Printf("Probability: %s\n", types.FormatPercent(result.Probability))
			if result.Features != nil {
				fmt.Printf("Signals:    %d urls, urgency %d, threat %d, action %d (suspicion %s)\n",
					result.Features.URLCount,
					result.Features.UrgencyScore,
					result.Features.ThreatScore,
					result.Features.ActionScore,
					types.FormatPercent(result.Features.SuspicionScore),
				)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noFeatures, "no-features", false, "skip the feature analysis breakdown")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw prediction as JSON")

	return cmd
}
