// duitbot parses Indonesian chat messages and receipt scans into structured
// transactions.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/duitbot/duitbot/internal/cli"
	"github.com/duitbot/duitbot/internal/common"
	"github.com/duitbot/duitbot/internal/config"
	"github.com/duitbot/duitbot/internal/pipeline"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "duitbot",
		Short: "💸 Chat-to-transaction extraction for Indonesian finance messages",
		Long: `duitbot turns short free-form Indonesian chat messages ("p50k makan",
"catat pengeluaran 50000 untuk makan") and photographed receipts into
validated, provenance-tagged transaction records.`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/duitbot/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("classifier", config.ClassifierRules, "intent classifier (rules, bayes)")
	rootCmd.PersistentFlags().Float64("intent-threshold", 0, "confidence floor before falling back to unrecognized")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("pipeline.classifier", rootCmd.PersistentFlags().Lookup("classifier"))
	_ = viper.BindPFlag("pipeline.intent_threshold", rootCmd.PersistentFlags().Lookup("intent-threshold"))

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		var userErr *common.UserError
		if errors.As(err, &userErr) {
			slog.Error("Command failed", "error", userErr.Err)
			fmt.Fprintln(os.Stderr, cli.FormatError(userErr.UserMessage))
		} else {
			fmt.Fprintln(os.Stderr, cli.FormatError(err.Error()))
		}
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		viper.AddConfigPath(fmt.Sprintf("%s/.config/duitbot", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DUITBOT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	return setupLogging()
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}
	return common.SetupLogger(level, viper.GetString("logging.format"))
}

// buildPipeline assembles the immutable configuration and pipeline once per
// command invocation.
func buildPipeline() (*pipeline.Pipeline, error) {
	cfg := config.Default()
	if kind := viper.GetString("pipeline.classifier"); kind != "" {
		cfg.Classifier = kind
	}
	if threshold := viper.GetFloat64("pipeline.intent_threshold"); threshold > 0 {
		cfg.IntentThreshold = threshold
	}
	return pipeline.New(&cfg, nil)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			slog.Info("duitbot version", "version", version)
		},
	}
}
