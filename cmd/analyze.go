package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/metrics"
	"github.com/spigell/cv-assistant/internal/scoring"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Score an uploaded PDF or Word resume",
	Long: "Score an uploaded PDF or Word resume. The document type is detected from its content; " +
		"the text to score is read from the file given with --text.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("text", "t", "", "file with the text extracted from the document")
	analyzeCmd.Flags().Bool("simulate", false, "score with random values instead of the text heuristics")
	analyzeCmd.Flags().StringSlice("keywords", nil, "keywords the document is expected to mention")

	viper.BindPFlag("analysis.keywords", analyzeCmd.Flags().Lookup("keywords"))
}

func analyze(cmd *cobra.Command, path string) {
	logger, config := setup()

	detected, err := mimetype.DetectFile(path)
	if err != nil {
		logger.Fatal("detecting the document type", zap.String("file", path), zap.Error(err))
	}

	upload := scoring.Upload{
		Name:     filepath.Base(path),
		MIMEType: detected.String(),
	}

	if textFile, _ := cmd.Flags().GetString("text"); textFile != "" {
		text, err := os.ReadFile(textFile)
		if err != nil {
			logger.Fatal("reading the extracted text", zap.Error(err))
		}
		upload.Text = string(text)
	}

	simulate, _ := cmd.Flags().GetBool("simulate")
	analyzer := newAnalyzer(config, logger, simulate)

	report, err := analyzer.Analyze(context.Background(), upload)
	if err != nil {
		var rejected *scoring.RejectionError
		if errors.As(err, &rejected) {
			metrics.UploadsRejected.Inc()
			logger.Fatal(rejected.Reason, zap.String("mime_type", rejected.MIMEType))
		}
		logger.Fatal("analyzing the document", zap.Error(err))
	}

	metrics.DocumentScore.WithLabelValues(metrics.SourceUpload).Observe(float64(report.Breakdown.Overall))

	pretty, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Fatal("encoding the report", zap.Error(err))
	}
	fmt.Println(string(pretty))
}

// newAnalyzer builds the analyzer with either the text heuristics or the
// random ones.
func newAnalyzer(config *Config, logger *zap.Logger, simulate bool) *scoring.Analyzer {
	keywords := scoring.DefaultKeywords
	if config.Analysis != nil && len(config.Analysis.Keywords) > 0 {
		keywords = config.Analysis.Keywords
	}

	heuristics := scoring.TextHeuristics(keywords)
	if simulate {
		heuristics = scoring.RandomHeuristics(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	for _, status := range scoring.Describe(heuristics) {
		logger.Debug("heuristic enabled",
			zap.String("name", status.Name),
			zap.String("category", string(status.Category)),
			zap.Any("details", status.Details),
		)
	}

	return scoring.NewAnalyzer(logger, heuristics)
}
