package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/metrics"
	"github.com/spigell/cv-assistant/internal/schemas"
	"github.com/spigell/cv-assistant/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score FILE",
	Short: "Score the completeness of a resume draft in JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		score(args[0])
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func score(path string) {
	logger, _ := setup()

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading the draft", zap.Error(err))
	}

	draft, err := schemas.DecodeDraft(data)
	if err != nil {
		var invalid *schemas.ValidationError
		if errors.As(err, &invalid) {
			for _, fe := range invalid.Errors {
				logger.Error("invalid draft field", zap.String("field", fe.Field), zap.String("message", fe.Message))
			}
		}
		logger.Fatal("decoding the draft", zap.String("file", path), zap.Error(err))
	}

	result := scoring.ScoreDraft(draft)
	metrics.DocumentScore.WithLabelValues(metrics.SourceDraft).Observe(float64(result))

	logger.Debug("draft scored", zap.String("file", path), zap.Int("score", result))
	fmt.Printf("Completeness score: %d/100 (%s)\n", result, scoring.Label(result))
}
