package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/assistant"
	"github.com/spigell/cv-assistant/internal/secrets"
	"github.com/spigell/cv-assistant/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assistant over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "address to listen on (default :8080)")
	serveCmd.Flags().String("token-file", "", "file with the bearer token required by the API")
	serveCmd.Flags().Bool("simulate", false, "score uploads with random values instead of the text heuristics")

	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
	viper.BindPFlag("server.token-file", serveCmd.Flags().Lookup("token-file"))
	viper.BindPFlag("server.simulate", serveCmd.Flags().Lookup("simulate"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, config := setup()
	logger.Info("starting the cv-assistant server", zap.String("version", version))

	if !viper.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	seed, err := config.seedProfile()
	if err != nil {
		logger.Fatal("loading the seed profile", zap.Error(err))
	}

	token, err := secrets.Optional(secrets.Source{
		Name: "api token",
		File: config.Server.TokenFile,
		Env:  "CV_ASSISTANT_TOKEN",
	})
	if err != nil {
		logger.Fatal(
			"loading the api token",
			zap.Error(err),
			zap.String("hint", "set CV_ASSISTANT_TOKEN_FILE environment variable or the 'server.token-file' key in the configuration file"),
		)
	}
	if token == "" {
		logger.Warn("api is not protected", zap.String("hint", "configure server.token-file to require a bearer token"))
	}

	a := assistant.New(assistant.Config{
		StrictAnswers:  config.Interview.StrictAnswers,
		SynthesisDelay: config.Interview.SynthesisDelay,
	}, logger)

	srv := server.New(server.Config{
		Listen: config.Server.Listen,
		Token:  token,
		Seed:   seed,
	}, a, newAnalyzer(config, logger, viper.GetBool("server.simulate")), logger)

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("serving", zap.Error(err))
	}

	logger.Info("exiting", zap.String("reason", "server stopped"))
}
