package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/assistant"
	"github.com/spigell/cv-assistant/internal/interview"
	"github.com/spigell/cv-assistant/internal/resume"
)

const (
	PromptShowJSON    = "Show resume as JSON"
	PromptDumpToFile  = "Dump resume to file"
	PromptCoverLetter = "Write a cover letter"
	PromptStartOver   = "Start over"
	PromptExit        = "Exit"

	greeting = "Hi! I can build a resume with you, draft a cover letter or help you improve an existing resume. What would you like to do?"
)

var errExit = errors.New("exit requested")

var menu = promptui.Select{
	Label: "Your resume is ready. What next?",
	Items: []string{PromptShowJSON, PromptDumpToFile, PromptCoverLetter, PromptStartOver, PromptExit},
}

var input = promptui.Prompt{
	Label: "You",
	Validate: func(s string) error {
		if strings.TrimSpace(s) == "" {
			return assistant.ErrEmptyInput
		}
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Build a resume in an interactive interview",
	Run: func(_ *cobra.Command, _ []string) {
		chat()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().BoolP("strict", "s", false, "validate contact details and numeric answers")
	chatCmd.Flags().Duration("synthesis-delay", 0, "simulated document generation latency")

	viper.BindPFlag("interview.strict-answers", chatCmd.Flags().Lookup("strict"))
	viper.BindPFlag("interview.synthesis-delay", chatCmd.Flags().Lookup("synthesis-delay"))
}

func chat() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, config := setup()

	seed, err := config.seedProfile()
	if err != nil {
		logger.Fatal("loading the seed profile", zap.Error(err))
	}

	a := assistant.New(assistant.Config{
		StrictAnswers:  config.Interview.StrictAnswers,
		SynthesisDelay: config.Interview.SynthesisDelay,
	}, logger)

	session := interview.NewSession(uuid.NewString(), seed)
	logger.Debug("chat started", zap.String("session_id", session.ID), zap.Bool("strict", config.Interview.StrictAnswers))

	fmt.Println(greeting)

	for {
		if session.State == interview.StateComplete {
			_, action, err := menu.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}

			next, err := handleAction(action, logger, session)
			if err != nil {
				if errors.Is(err, errExit) {
					return
				}
				logger.Fatal("exiting", zap.Error(err))
			}
			session = next
			continue
		}

		text, err := input.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				logger.Info("exiting", zap.String("reason", "input closed"))
				return
			}
			logger.Fatal("reading input", zap.Error(err))
		}

		reply, next, err := a.Respond(ctx, text, session)
		if err != nil {
			logger.Fatal("responding", zap.Error(err))
		}
		fmt.Println(reply)
		session = next

		if session.State == interview.StateSynthesizing {
			session, err = a.Finish(ctx, session)
			if err != nil {
				logger.Fatal("building the resume", zap.Error(err))
			}
			fmt.Println(assistant.ReadyMessage(session.Document))
		}
	}
}

func handleAction(action string, logger *zap.Logger, session interview.Session) (interview.Session, error) {
	switch action {
	case PromptShowJSON:
		pretty, err := json.MarshalIndent(session.Document, "", "  ")
		if err != nil {
			return session, fmt.Errorf("encoding resume: %w", err)
		}
		fmt.Println(string(pretty))
		return session, nil
	case PromptDumpToFile:
		filename, err := session.Document.DumpToTmpFile()
		if err != nil {
			return session, fmt.Errorf("dump resume to file: %w", err)
		}
		logger.Info("dumping resume to file", zap.String("filename", filename))
		return session, nil
	case PromptCoverLetter:
		return session, writeCoverLetter(session.Document)
	case PromptStartOver:
		logger.Info("starting over", zap.String("session_id", session.ID))
		fmt.Println(greeting)
		return session.Reset(), nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return session, errExit
	default:
		return session, fmt.Errorf("invalid action: %s", action)
	}
}

// writeCoverLetter asks for the job details and prints a cover letter signed
// with the name from the resume.
func writeCoverLetter(doc *resume.Document) error {
	ask := func(label string) (string, error) {
		p := promptui.Prompt{Label: label}
		return p.Run()
	}

	req := resume.CoverLetterRequest{}
	if doc != nil {
		req.Name = doc.Identity.Name
	}

	var err error
	if req.Company, err = ask("Company"); err != nil {
		return err
	}
	if req.JobTitle, err = ask("Job title"); err != nil {
		return err
	}
	if req.HiringManager, err = ask("Hiring manager (optional)"); err != nil {
		return err
	}
	if strings.TrimSpace(req.Name) == "" {
		if req.Name, err = ask("Your name"); err != nil {
			return err
		}
	}

	letter, err := resume.ComposeCoverLetter(req)
	if err != nil {
		if errors.Is(err, resume.ErrIncompleteRequest) {
			fmt.Println(err)
			return nil
		}
		return err
	}

	fmt.Println(letter)
	return nil
}
