package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/schnorr-batch/internal/config"
	"github.com/mahdiidarabi/schnorr-batch/pkg/schnorrbatch"
)

var (
	configFile string
	workers    int
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", -1, "Number of parallel workers (0 = auto-detect based on CPU cores)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(genCmd)
}

var rootCmd = &cobra.Command{
	Use:   "schnorr",
	Short: "Verify address-bound secp256k1 Schnorr signatures and signature batches",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func reportErrorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func validateNoPosArgsFn(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected positional arguments: %v", args)
	}
	return nil
}

// loadSettings merges the config file with command-line overrides.
func loadSettings() (config.Config, *logrus.Logger) {
	cfg, err := config.Load(configFile)
	if err != nil {
		reportErrorf("Error: %v", err)
	}
	if workers >= 0 {
		cfg.Workers = workers
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger, err := cfg.Logger()
	if err != nil {
		reportErrorf("Error: %v", err)
	}
	return cfg, logger
}

func newVerifier(cfg config.Config, logger *logrus.Logger) *schnorrbatch.Verifier {
	return schnorrbatch.NewVerifier().
		WithConfig(schnorrbatch.Config{NumWorkers: cfg.Workers}).
		WithLogger(logger)
}

func decodeHex(name, s string) []byte {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		reportErrorf("Error: --%s is not valid hex: %v", name, err)
	}
	return b
}

func printReport(report *schnorrbatch.Report, perItem bool) {
	if perItem {
		for i, ok := range report.Items {
			status := "valid"
			if !ok {
				status = "invalid"
			}
			fmt.Printf("item %d: %s\n", i, status)
		}
	}
	if report.Valid {
		fmt.Printf("valid (%d signatures)\n", len(report.Items))
		return
	}
	fmt.Printf("invalid (failed: %v)\n", report.Failed())
	os.Exit(1)
}
