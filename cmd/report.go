package cmd

import (
	"fmt"
	"time"

	"wiring-guard/core/storage"
	"wiring-guard/feature/drift"
	"wiring-guard/feature/drift/checks"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var uploadFlag bool
var outputDir string

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Check asset wiring and save a JSON report",
	Long: `Runs the same check as the root command, prints the same diagnostics and
saves drift_report_<unix>.json. With --upload the report is also published to
the configured S3/MinIO bucket.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = logg.Sync() }()

		fs := afero.NewOsFs()
		svc := drift.NewService(fs, checks.DefaultLayout(), logg)
		report, err := svc.Check(ctx)
		if err != nil {
			return fmt.Errorf("drift check failed: %w", err)
		}

		if err := drift.WriteDiagnostics(cmd.OutOrStdout(), report); err != nil {
			return fmt.Errorf("failed to write diagnostics: %w", err)
		}

		doc := drift.NewDocument(report, time.Now())
		name, data, err := drift.SaveDocument(fs, outputDir, doc)
		if err != nil {
			return err
		}
		logg.Info("Drift report saved", zap.String("file", name), zap.Int("missing", len(doc.Missing)))

		if uploadFlag {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			publisher := drift.NewPublisher(client, cfg.Storage.Bucket, cfg.Storage.ReportPrefix, logg)
			if _, err := publisher.Publish(ctx, doc, data); err != nil {
				return err
			}
		}

		if !report.OK() {
			return drift.ErrDriftDetected
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(reportCmd)

	reportCmd.Flags().BoolVar(&uploadFlag, "upload", false, "Upload the report to the configured storage bucket")
	reportCmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory the JSON report is written to")
}
