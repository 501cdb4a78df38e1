package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fpang/va-creator/internal/cli"
	"github.com/fpang/va-creator/internal/config"
	"github.com/fpang/va-creator/internal/dispatch"
	"github.com/fpang/va-creator/internal/grammar"
	"github.com/fpang/va-creator/internal/logging"
	"github.com/fpang/va-creator/internal/vaclient"
)

// CLI flags
var (
	baseURLFlag string
	timeoutFlag time.Duration
	dryRunFlag  bool
)

// rootCmd is the main Cobra command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "va-creator [flags] <token> (FROM <start> [TO] <end> | FOR [id1,id2,...]) <type>",
	Short: "Create video analytics for a batch of streams",
	Long: `va-creator creates an analytics configuration on the local video-analytics
server for every stream in a range or list. <type> is 'od' (object detection)
or 'sva' (smart VA). Streams are processed one at a time; a failure for one
stream is reported and the rest are still attempted.

Flags must come before the token. A token that starts with '-' must follow
'--' so it is not read as a flag. Environment variables VA_CREATOR_BASE_URL,
VA_CREATOR_TIMEOUT, VA_CREATOR_DRY_RUN and VA_CREATOR_LOG_LEVEL set defaults.

Examples:
  va-creator abc123 FROM 10 TO 15 od
  va-creator abc123 FOR [2, 5, 8] sva
  va-creator --dry-run abc123 FROM 1 3 sva
  va-creator -- -abc123 FOR [7] od`,
	Args:                  cobra.ArbitraryArgs,
	DisableFlagsInUseLine: true,
	Run:                   runMain,
}

func init() {
	rootCmd.Flags().StringVar(&baseURLFlag, "base-url", vaclient.DefaultBaseURL, "Analytics server address")
	rootCmd.Flags().DurationVar(&timeoutFlag, "timeout", vaclient.DefaultTimeout, "Per-request timeout")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Print each request instead of sending it")
	// Everything after the token is grammar, including negative range bounds.
	rootCmd.Flags().SetInterspersed(false)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runMain is the main execution logic called by Cobra.
func runMain(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		logging.Init("")
		log.Fatal().Err(err).Msg("Invalid environment configuration")
	}
	applyFlags(cmd, cfg)
	logging.Init(cfg.LogLevel)

	startup := logging.NewStartupLogger("va-creator").
		CommitHash(commitHash).
		BuildTime(buildTime).
		Config("baseUrl", cfg.BaseURL).
		Config("timeout", cfg.Timeout.String()).
		Feature("dryRun", cfg.DryRun)
	logger := startup.Logger()
	startup.Log(logger)

	inv, err := grammar.Parse(args)
	if err != nil {
		cli.HandleParseError(os.Stdout, os.Stderr, err)
		return
	}
	logger.Info().
		Str("command", inv.Command.Kind.String()).
		Str("type", inv.Type.String()).
		Int("streams", len(inv.StreamIDs)).
		Msg("Arguments parsed")

	client := vaclient.NewClient(cfg.BaseURL, inv.Token, cfg.Timeout)
	d := dispatch.New(client, dispatch.Options{
		Out:     os.Stdout,
		Err:     os.Stderr,
		DryRun:  cfg.DryRun,
		BaseURL: client.BaseURL(),
	})

	ctx := logger.WithContext(context.Background())
	d.Run(ctx, inv.StreamIDs, inv.Type)
}

// applyFlags overrides environment settings with flags given explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = baseURLFlag
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = timeoutFlag
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = dryRunFlag
	}
}
