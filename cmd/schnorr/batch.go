package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/schnorr-batch/internal/config"
	"github.com/mahdiidarabi/schnorr-batch/pkg/schnorrbatch"
)

var (
	batchFile   string
	batchFormat string
	batchMode   string
	batchReport bool
)

func init() {
	for _, cmd := range []*cobra.Command{batchCmd, depositCmd} {
		cmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to the batch file (JSON or CSV)")
		cmd.Flags().StringVar(&batchFormat, "format", "", "Batch file format (json or csv, default: from extension)")
		cmd.Flags().BoolVar(&batchReport, "report", false, "Check every item and print per-item results")
		_ = cmd.MarkFlagRequired("file")
	}
	batchCmd.Flags().StringVar(&batchMode, "mode", "", "Batch mode (joint or independent, default: from config)")
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Verify a batch of signatures over one or more payloads",
	Long:  "In joint mode every signer attests to the hash of all payloads concatenated in file order. In independent mode each signer attests to the hash of its own payload.",
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := loadSettings()
		name := batchMode
		if name == "" {
			name = cfg.Mode
		}
		mode, err := schnorrbatch.ParseMode(name)
		if err != nil {
			reportErrorf("Error: %v", err)
		}
		if mode == schnorrbatch.ModeDeposit {
			reportErrorf("Error: use the deposit command for deposit batches")
		}
		runBatch(cfg, logger, mode)
	},
}

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Verify co-signers of a single five-field deposit payload",
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := loadSettings()
		runBatch(cfg, logger, schnorrbatch.ModeDeposit)
	},
}

func runBatch(cfg config.Config, logger *logrus.Logger, mode schnorrbatch.Mode) {
	var parser schnorrbatch.BatchParser = &schnorrbatch.JSONParser{}
	format := batchFormat
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(batchFile)), ".")
	}
	if format == "csv" {
		parser = &schnorrbatch.CSVParser{}
	}

	client := schnorrbatch.NewClient().
		WithVerifier(newVerifier(cfg, logger)).
		WithParser(parser)

	logger.WithField("mode", mode.String()).Infof("verifying %s", batchFile)
	report, err := client.VerifyFile(context.Background(), batchFile, mode)
	if err != nil {
		reportErrorf("Error: %v", err)
	}
	printReport(report, batchReport)
}
