package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/interview"
	"github.com/spigell/cv-assistant/internal/logger"
	"github.com/spigell/cv-assistant/internal/profile"
	"github.com/spigell/cv-assistant/internal/scoring"
)

func loadConfig(t *testing.T, yaml string) *Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cv-assistant.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("reading config: %v", err)
	}

	config, err := getConfig()
	if err != nil {
		t.Fatalf("decoding config: %v", err)
	}
	return config
}

func TestGetConfig(t *testing.T) {
	config := loadConfig(t, `
interview:
  strict-answers: true
  synthesis-delay: 1500ms
  profile:
    target-role: Data Engineer
    years-experience: "7"
    personal-info:
      name: Jane Doe
analysis:
  keywords: [go, kafka]
server:
  listen: 127.0.0.1:9000
  token-file: /run/secrets/token
`)

	if !config.Interview.StrictAnswers {
		t.Fatal("expected strict answers to be enabled")
	}
	if config.Interview.SynthesisDelay != 1500*time.Millisecond {
		t.Fatalf("unexpected synthesis delay %s", config.Interview.SynthesisDelay)
	}
	if strings.Join(config.Analysis.Keywords, ",") != "go,kafka" {
		t.Fatalf("unexpected keywords %v", config.Analysis.Keywords)
	}
	if config.Server.Listen != "127.0.0.1:9000" || config.Server.TokenFile != "/run/secrets/token" {
		t.Fatalf("unexpected server config %+v", config.Server)
	}

	seed, err := config.seedProfile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seed.TargetRole != "Data Engineer" || seed.PersonalInfo.Name != "Jane Doe" {
		t.Fatalf("unexpected seed profile %+v", seed)
	}
	if seed.YearsExperience == nil || *seed.YearsExperience != 7 {
		t.Fatalf("expected 7 years of experience, got %v", seed.YearsExperience)
	}
}

func TestSeedProfileRejectsInvalidValues(t *testing.T) {
	config := loadConfig(t, `
interview:
  profile:
    career-level: intern
`)

	if _, err := config.seedProfile(); err == nil || !strings.Contains(err.Error(), "interview.profile") {
		t.Fatalf("expected interview.profile error, got %v", err)
	}
}

func TestNewAnalyzerUsesConfiguredKeywords(t *testing.T) {
	config := loadConfig(t, `
analysis:
  keywords: [terraform]
`)

	statuses := scoring.Describe(newAnalyzer(config, zap.NewNop(), false).Heuristics())
	if len(statuses) != len(scoring.Categories) {
		t.Fatalf("expected %d heuristics, got %d", len(scoring.Categories), len(statuses))
	}

	simulated := newAnalyzer(config, zap.NewNop(), true)
	if err := simulated.Validate(); err != nil {
		t.Fatalf("random heuristics must cover every category: %v", err)
	}
	if name := simulated.Heuristics()[0].Name(); !strings.HasPrefix(name, "random_") {
		t.Fatalf("expected random heuristics, got %s", name)
	}
}

func TestHandleActionExit(t *testing.T) {
	_, err := handleAction(PromptExit, zap.NewNop(), interview.NewSession("test", profile.Profile{}))
	if !errors.Is(err, errExit) {
		t.Fatalf("expected errExit, got %v", err)
	}

	if _, err := handleAction("dance", zap.NewNop(), interview.NewSession("test", profile.Profile{})); err == nil {
		t.Fatal("expected invalid action error")
	}
}

func TestLoggerOptionsWriteToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv-assistant.log")
	loadConfig(t, "log-file: "+path+"\njson: true\n")

	opts := loggerOptions()
	if len(opts.Output) != 1 || opts.Output[0] != path || !opts.JSON {
		t.Fatalf("unexpected logger options %+v", opts)
	}

	log, err := logger.New(opts)
	if err != nil {
		t.Fatalf("building logger: %v", err)
	}
	log.Info("config loaded")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"step":"config loaded"`) {
		t.Fatalf("expected entry in log file, got %q", data)
	}
}

func TestLoggerOptionsDefaultToStdout(t *testing.T) {
	loadConfig(t, "debug: true\n")

	if opts := loggerOptions(); len(opts.Output) != 0 || !opts.Debug {
		t.Fatalf("unexpected logger options %+v", opts)
	}
}
