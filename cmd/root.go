package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/logger"
	"github.com/spigell/cv-assistant/internal/profile"
)

const (
	app = "cv-assistant"
)

type Config struct {
	Interview *InterviewConfig `mapstructure:"interview"`
	Analysis  *AnalysisConfig  `mapstructure:"analysis"`
	Server    *ServerConfig    `mapstructure:"server"`
}

type InterviewConfig struct {
	StrictAnswers  bool           `mapstructure:"strict-answers"`
	SynthesisDelay time.Duration  `mapstructure:"synthesis-delay"`
	Profile        map[string]any `mapstructure:"profile"`
}

type AnalysisConfig struct {
	Keywords []string `mapstructure:"keywords"`
}

type ServerConfig struct {
	Listen    string `mapstructure:"listen"`
	TokenFile string `mapstructure:"token-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-assistant interviews you about your career and builds a scored resume",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("server.token-file", "CV_ASSISTANT_TOKEN_FILE"); err != nil {
		log.Fatalf("binding CV_ASSISTANT_TOKEN_FILE environment variable: %v", err)
	}

	viper.SetDefault("server.listen", ":8080")

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-assistant.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to the file instead of stdout")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// Every command works without a config file, but an explicit or broken
	// one must be readable.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	config := &Config{
		Interview: &InterviewConfig{},
		Analysis:  &AnalysisConfig{},
		Server:    &ServerConfig{},
	}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return config, nil
}

// seedProfile decodes interview.profile into the profile sessions start from.
func (c *Config) seedProfile() (profile.Profile, error) {
	if c.Interview == nil {
		return profile.Profile{}, nil
	}

	p, err := profile.Decode(c.Interview.Profile)
	if err != nil {
		return p, fmt.Errorf("interview.profile: %w", err)
	}
	return p, nil
}

func loggerOptions() logger.Options {
	opts := logger.Options{
		App:   app,
		JSON:  viper.GetBool("json"),
		Debug: viper.GetBool("debug"),
	}
	if file := strings.TrimSpace(viper.GetString("log-file")); file != "" {
		opts.Output = []string{file}
	}
	return opts
}

// setup builds the logger and reads the config every command starts with.
func setup() (*zap.Logger, *Config) {
	logger, err := logger.New(loggerOptions())
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", zap.String("file", used))
	}

	return logger, config
}
